package service

import (
	"context"

	"quiz-platform/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Stub stores driving the service tests. Lookups miss and writes succeed
// unless a field says otherwise; destructive writes append to calls when a
// shared log is attached.

type stubUserStore struct {
	byID    map[primitive.ObjectID]*models.User
	deleted []primitive.ObjectID
	calls   *[]string
}

func (s *stubUserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.byID[id], nil
}

func (s *stubUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, nil
}

func (s *stubUserStore) FindConflicting(ctx context.Context, username, email string, excludeID *primitive.ObjectID) (*models.User, error) {
	return nil, nil
}

func (s *stubUserStore) FindAll(ctx context.Context) ([]models.User, error) { return nil, nil }

func (s *stubUserStore) FindRecent(ctx context.Context, limit int64) ([]models.RecentUser, error) {
	return nil, nil
}

func (s *stubUserStore) FindRefs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.UserRef, error) {
	return map[primitive.ObjectID]models.UserRef{}, nil
}

func (s *stubUserStore) Create(ctx context.Context, user *models.User) error { return nil }

func (s *stubUserStore) UpdateFields(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.User, error) {
	return nil, nil
}

func (s *stubUserStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.deleted = append(s.deleted, id)
	if s.calls != nil {
		*s.calls = append(*s.calls, "users.delete")
	}
	return nil
}

func (s *stubUserStore) Count(ctx context.Context, filter bson.M) (int64, error) { return 0, nil }

type stubCategoryStore struct {
	byID    map[primitive.ObjectID]*models.Category
	deleted []primitive.ObjectID
}

func (s *stubCategoryStore) FindAll(ctx context.Context) ([]models.Category, error) {
	return nil, nil
}

func (s *stubCategoryStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	return s.byID[id], nil
}

func (s *stubCategoryStore) FindRefs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.CategoryRef, error) {
	return map[primitive.ObjectID]models.CategoryRef{}, nil
}

func (s *stubCategoryStore) Create(ctx context.Context, category *models.Category) error {
	return nil
}

func (s *stubCategoryStore) Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Category, error) {
	return nil, nil
}

func (s *stubCategoryStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubCategoryStore) Count(ctx context.Context) (int64, error) { return 0, nil }

type stubQuizStore struct {
	byID         map[primitive.ObjectID]*models.Quiz
	count        int64
	ownerDeletes []primitive.ObjectID
	calls        *[]string
}

func (s *stubQuizStore) Find(ctx context.Context, filter bson.M) ([]models.Quiz, error) {
	return nil, nil
}

func (s *stubQuizStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Quiz, error) {
	return s.byID[id], nil
}

func (s *stubQuizStore) FindIDs(ctx context.Context, filter bson.M) ([]primitive.ObjectID, error) {
	return nil, nil
}

func (s *stubQuizStore) FindRecent(ctx context.Context, limit int64) ([]models.Quiz, error) {
	return nil, nil
}

func (s *stubQuizStore) Create(ctx context.Context, quiz *models.Quiz) error { return nil }

func (s *stubQuizStore) Save(ctx context.Context, quiz *models.Quiz) error { return nil }

func (s *stubQuizStore) Delete(ctx context.Context, id primitive.ObjectID) error { return nil }

func (s *stubQuizStore) DeleteByOwner(ctx context.Context, userID primitive.ObjectID) error {
	s.ownerDeletes = append(s.ownerDeletes, userID)
	if s.calls != nil {
		*s.calls = append(*s.calls, "quizzes.deleteByOwner")
	}
	return nil
}

func (s *stubQuizStore) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.count, nil
}

func (s *stubQuizStore) DistinctCreators(ctx context.Context, filter bson.M) ([]interface{}, error) {
	return nil, nil
}

type stubLeaderboardStore struct {
	pairEntry   *models.LeaderboardEntry
	upserts     []*models.LeaderboardEntry
	userDeletes []primitive.ObjectID
	calls       *[]string
}

func (s *stubLeaderboardStore) FindByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.LeaderboardEntry, error) {
	return nil, nil
}

func (s *stubLeaderboardStore) FindBestByUser(ctx context.Context, userID primitive.ObjectID) ([]models.LeaderboardEntry, error) {
	return nil, nil
}

func (s *stubLeaderboardStore) FindByCategory(ctx context.Context, categoryID primitive.ObjectID, limit int64) ([]models.LeaderboardEntry, error) {
	return nil, nil
}

func (s *stubLeaderboardStore) FindForPair(ctx context.Context, userID, categoryID primitive.ObjectID) (*models.LeaderboardEntry, error) {
	return s.pairEntry, nil
}

func (s *stubLeaderboardStore) Upsert(ctx context.Context, entry *models.LeaderboardEntry) error {
	s.upserts = append(s.upserts, entry)
	return nil
}

func (s *stubLeaderboardStore) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	s.userDeletes = append(s.userDeletes, userID)
	if s.calls != nil {
		*s.calls = append(*s.calls, "leaderboard.deleteByUser")
	}
	return nil
}

func (s *stubLeaderboardStore) Count(ctx context.Context) (int64, error) { return 0, nil }

func (s *stubLeaderboardStore) CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return 0, nil
}

func (s *stubLeaderboardStore) DistinctCategories(ctx context.Context) ([]interface{}, error) {
	return nil, nil
}

func (s *stubLeaderboardStore) GlobalTop(ctx context.Context, limit int64) ([]models.GlobalLeaderboardRow, error) {
	return nil, nil
}

func (s *stubLeaderboardStore) MostActiveCategory(ctx context.Context) (primitive.ObjectID, int, error) {
	return primitive.NilObjectID, 0, nil
}

func (s *stubLeaderboardStore) HighestScore(ctx context.Context) (*models.LeaderboardEntry, error) {
	return nil, nil
}
