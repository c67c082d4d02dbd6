package models

import "testing"

func intp(v int) *int { return &v }

func validQuizInput() QuizInput {
	return QuizInput{
		Title:       "Capitals",
		Description: "European capitals",
		Category:    "65f0a1b2c3d4e5f601234567",
		Questions: []Question{
			{
				Question:      "Capital of France?",
				Options:       []string{"Paris", "Lyon"},
				CorrectAnswer: intp(0),
			},
		},
	}
}

func TestQuizInputValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*QuizInput)
		wantErr string
	}{
		{"valid", func(in *QuizInput) {}, ""},
		{"missing title", func(in *QuizInput) { in.Title = "" }, "Missing required fields"},
		{"missing description", func(in *QuizInput) { in.Description = "" }, "Missing required fields"},
		{"missing category", func(in *QuizInput) { in.Category = "" }, "Missing required fields"},
		{"no questions", func(in *QuizInput) { in.Questions = nil }, "Missing required fields"},
		{"bad category id", func(in *QuizInput) { in.Category = "not-an-id" }, "Invalid category reference"},
		{"empty question text", func(in *QuizInput) { in.Questions[0].Question = "" }, "Invalid question format"},
		{"single option", func(in *QuizInput) { in.Questions[0].Options = []string{"Paris"} }, "Invalid question format"},
		{"missing correct answer", func(in *QuizInput) { in.Questions[0].CorrectAnswer = nil }, "Invalid question format"},
		{"correct answer out of range", func(in *QuizInput) { in.Questions[0].CorrectAnswer = intp(2) }, "Invalid question format"},
		{"negative correct answer", func(in *QuizInput) { in.Questions[0].CorrectAnswer = intp(-1) }, "Invalid question format"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validQuizInput()
			tc.mutate(&in)
			err := in.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Expected valid input, got %q", err.Message)
				}
				return
			}
			if err == nil {
				t.Fatalf("Expected error %q, got none", tc.wantErr)
			}
			if err.Message != tc.wantErr {
				t.Errorf("Expected error %q, got %q", tc.wantErr, err.Message)
			}
		})
	}
}

func TestQuizInputZeroIndexIsPresent(t *testing.T) {
	// A correctAnswer of 0 is a valid index, not a missing field.
	in := validQuizInput()
	in.Questions[0].CorrectAnswer = intp(0)
	if err := in.Validate(); err != nil {
		t.Errorf("correctAnswer 0 rejected: %q", err.Message)
	}
}

func TestQuestionApplyDefaults(t *testing.T) {
	q := Question{Question: "q", Options: []string{"a", "b"}, CorrectAnswer: intp(1)}
	q.ApplyDefaults()

	if q.TimeLimit != DefaultTimeLimit {
		t.Errorf("Expected default timeLimit %d, got %d", DefaultTimeLimit, q.TimeLimit)
	}
	if q.Points != DefaultPoints {
		t.Errorf("Expected default points %d, got %d", DefaultPoints, q.Points)
	}

	q = Question{TimeLimit: 30, Points: 5}
	q.ApplyDefaults()
	if q.TimeLimit != 30 || q.Points != 5 {
		t.Error("ApplyDefaults overwrote explicit values")
	}
}

func TestWithheldQuestions(t *testing.T) {
	questions := []Question{
		{Question: "a", Options: []string{"x", "y"}, CorrectAnswer: intp(0)},
		{Question: "b", Options: []string{"x", "y"}, CorrectAnswer: intp(1)},
	}
	withheld := WithheldQuestions(questions)

	for i, q := range withheld {
		if q.CorrectAnswer != nil {
			t.Errorf("Question %d still carries its correct answer", i)
		}
	}
	// Source must keep its answers.
	if questions[0].CorrectAnswer == nil || questions[1].CorrectAnswer == nil {
		t.Error("WithheldQuestions mutated the source questions")
	}
}

func TestQuizOwnedBy(t *testing.T) {
	owner := newObjectID(t, "65f0a1b2c3d4e5f601234567")
	other := newObjectID(t, "65f0a1b2c3d4e5f601234568")
	quiz := Quiz{CreatedBy: owner}

	if !quiz.OwnedBy(owner) {
		t.Error("Owner must pass the ownership check")
	}
	if quiz.OwnedBy(other) {
		t.Error("Non-owner must fail the ownership check")
	}
}
