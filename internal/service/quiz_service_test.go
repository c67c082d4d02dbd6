package service

import (
	"context"
	"testing"
	"time"

	"quiz-platform/internal/models"
	"quiz-platform/internal/selection"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func submitTestQuiz() (*models.Quiz, primitive.ObjectID) {
	answer := 0
	quizID := primitive.NewObjectID()
	quiz := &models.Quiz{
		ID:       quizID,
		Title:    "Capitals",
		Category: primitive.NewObjectID(),
		Questions: []models.Question{
			{Question: "Capital of France?", Options: []string{"Paris", "Lyon"}, CorrectAnswer: &answer, Points: 1},
		},
		IsPublic: true,
	}
	return quiz, quizID
}

func newSubmitService(quiz *models.Quiz, leaderboard *stubLeaderboardStore) *QuizService {
	quizzes := &stubQuizStore{byID: map[primitive.ObjectID]*models.Quiz{quiz.ID: quiz}}
	return NewQuizService(quizzes, &stubCategoryStore{}, &stubUserStore{}, leaderboard, selection.NewSeededPicker(1))
}

func TestSubmitClampsNegativeTimeTaken(t *testing.T) {
	quiz, quizID := submitTestQuiz()
	leaderboard := &stubLeaderboardStore{}
	svc := newSubmitService(quiz, leaderboard)

	summary, err := svc.Submit(context.Background(), primitive.NewObjectID(), quizID, SubmitInput{
		Answers:   []int{0},
		TimeTaken: -5,
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if summary.Score != 1 {
		t.Errorf("Expected score 1, got %d", summary.Score)
	}
	if len(leaderboard.upserts) != 1 {
		t.Fatalf("Expected one leaderboard upsert, got %d", len(leaderboard.upserts))
	}
	if got := leaderboard.upserts[0].TimeTaken; got != 0 {
		t.Errorf("Expected timeTaken clamped to 0, got %d", got)
	}
}

func TestSubmitNegativeTimeCannotWinTieBreak(t *testing.T) {
	quiz, quizID := submitTestQuiz()
	userID := primitive.NewObjectID()
	leaderboard := &stubLeaderboardStore{pairEntry: &models.LeaderboardEntry{
		User:        userID,
		Category:    quiz.Category,
		Score:       1,
		TimeTaken:   0,
		CompletedAt: time.Now(),
	}}
	svc := newSubmitService(quiz, leaderboard)

	summary, err := svc.Submit(context.Background(), userID, quizID, SubmitInput{
		Answers:   []int{0},
		TimeTaken: -1,
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if summary.Score != 1 {
		t.Errorf("Expected score 1, got %d", summary.Score)
	}
	if len(leaderboard.upserts) != 0 {
		t.Error("Tied run with clamped time replaced the stored best entry")
	}
}

func TestSubmitNilAnswersRejected(t *testing.T) {
	quiz, quizID := submitTestQuiz()
	leaderboard := &stubLeaderboardStore{}
	svc := newSubmitService(quiz, leaderboard)

	_, err := svc.Submit(context.Background(), primitive.NewObjectID(), quizID, SubmitInput{})
	serr, ok := err.(*Error)
	if !ok || serr.Kind != KindInvalidInput {
		t.Fatalf("Expected invalid-input error, got %v", err)
	}
	if serr.Message != "Invalid answers format" {
		t.Errorf("Expected answers-format message, got %q", serr.Message)
	}
}
