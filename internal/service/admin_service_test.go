package service

import (
	"context"
	"errors"
	"testing"

	"quiz-platform/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDeleteUserSelfGuard(t *testing.T) {
	id := primitive.NewObjectID()
	users := &stubUserStore{byID: map[primitive.ObjectID]*models.User{
		id: {ID: id, Username: "root", Role: models.RoleAdmin},
	}}
	quizzes := &stubQuizStore{}
	leaderboard := &stubLeaderboardStore{}
	svc := NewAdminService(users, quizzes, &stubCategoryStore{}, leaderboard)

	err := svc.DeleteUser(context.Background(), id, id)

	var serr *Error
	if !errors.As(err, &serr) || serr.Kind != KindInvalidInput {
		t.Fatalf("Expected invalid-input error, got %v", err)
	}
	if serr.Message != "Cannot delete yourself" {
		t.Errorf("Expected self-delete message, got %q", serr.Message)
	}
	if len(users.deleted) != 0 || len(quizzes.ownerDeletes) != 0 || len(leaderboard.userDeletes) != 0 {
		t.Error("Self-deletion touched the stores")
	}
}

func TestDeleteUserMissing(t *testing.T) {
	svc := NewAdminService(&stubUserStore{}, &stubQuizStore{}, &stubCategoryStore{}, &stubLeaderboardStore{})

	err := svc.DeleteUser(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())

	var serr *Error
	if !errors.As(err, &serr) || serr.Kind != KindNotFound {
		t.Fatalf("Expected not-found error, got %v", err)
	}
}

func TestDeleteUserCascadeOrder(t *testing.T) {
	actor := primitive.NewObjectID()
	target := primitive.NewObjectID()
	calls := []string{}
	users := &stubUserStore{
		byID:  map[primitive.ObjectID]*models.User{target: {ID: target, Username: "bob"}},
		calls: &calls,
	}
	quizzes := &stubQuizStore{calls: &calls}
	leaderboard := &stubLeaderboardStore{calls: &calls}
	svc := NewAdminService(users, quizzes, &stubCategoryStore{}, leaderboard)

	if err := svc.DeleteUser(context.Background(), actor, target); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}

	// Dependents go first, the user record last.
	want := []string{"quizzes.deleteByOwner", "leaderboard.deleteByUser", "users.delete"}
	if len(calls) != len(want) {
		t.Fatalf("Expected calls %v, got %v", want, calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("Expected calls %v, got %v", want, calls)
		}
	}
}
