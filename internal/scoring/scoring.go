// Package scoring grades a submitted answer sheet against a quiz's question
// set. Grading is pure: no persistence, no side effects, results emitted in
// question order.
package scoring

import "quiz-platform/internal/models"

// QuestionResult is the per-question breakdown of one graded submission.
// UserAnswer is nil when the submission had no answer at that position.
type QuestionResult struct {
	QuestionID    int  `json:"questionId"`
	UserAnswer    *int `json:"userAnswer,omitempty"`
	CorrectAnswer int  `json:"correctAnswer"`
	IsCorrect     bool `json:"isCorrect"`
	Points        int  `json:"points"`
}

type Summary struct {
	Score       int              `json:"score"`
	TotalPoints int              `json:"totalPoints"`
	Results     []QuestionResult `json:"results"`
}

// Grade walks the question set in order, awarding each question's point
// value when the answer at the same position matches its correct index. A
// submission shorter than the question set scores the missing positions as
// incorrect. Extra trailing answers are ignored.
func Grade(questions []models.Question, answers []int) Summary {
	summary := Summary{Results: make([]QuestionResult, 0, len(questions))}

	for i, question := range questions {
		correct := 0
		if question.CorrectAnswer != nil {
			correct = *question.CorrectAnswer
		}

		var userAnswer *int
		if i < len(answers) {
			a := answers[i]
			userAnswer = &a
		}

		isCorrect := userAnswer != nil && *userAnswer == correct
		awarded := 0
		if isCorrect {
			awarded = question.PointValue()
			summary.Score += awarded
		}
		summary.TotalPoints += question.PointValue()

		summary.Results = append(summary.Results, QuestionResult{
			QuestionID:    i,
			UserAnswer:    userAnswer,
			CorrectAnswer: correct,
			IsCorrect:     isCorrect,
			Points:        awarded,
		})
	}
	return summary
}

// Perfect reports whether every answered position matched.
func (s Summary) Perfect() bool {
	return s.Score == s.TotalPoints
}
