package service

import (
	"context"

	"quiz-platform/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Storage interfaces consumed by the services. internal/repository provides
// the Mongo-backed implementations; tests drive the services with stubs.

type UserStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindConflicting(ctx context.Context, username, email string, excludeID *primitive.ObjectID) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	FindRecent(ctx context.Context, limit int64) ([]models.RecentUser, error)
	FindRefs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.UserRef, error)
	Create(ctx context.Context, user *models.User) error
	UpdateFields(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context, filter bson.M) (int64, error)
}

type CategoryStore interface {
	FindAll(ctx context.Context) ([]models.Category, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	FindRefs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.CategoryRef, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Category, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

type QuizStore interface {
	Find(ctx context.Context, filter bson.M) ([]models.Quiz, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Quiz, error)
	FindIDs(ctx context.Context, filter bson.M) ([]primitive.ObjectID, error)
	FindRecent(ctx context.Context, limit int64) ([]models.Quiz, error)
	Create(ctx context.Context, quiz *models.Quiz) error
	Save(ctx context.Context, quiz *models.Quiz) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByOwner(ctx context.Context, userID primitive.ObjectID) error
	Count(ctx context.Context, filter bson.M) (int64, error)
	DistinctCreators(ctx context.Context, filter bson.M) ([]interface{}, error)
}

type LeaderboardStore interface {
	FindByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.LeaderboardEntry, error)
	FindBestByUser(ctx context.Context, userID primitive.ObjectID) ([]models.LeaderboardEntry, error)
	FindByCategory(ctx context.Context, categoryID primitive.ObjectID, limit int64) ([]models.LeaderboardEntry, error)
	FindForPair(ctx context.Context, userID, categoryID primitive.ObjectID) (*models.LeaderboardEntry, error)
	Upsert(ctx context.Context, entry *models.LeaderboardEntry) error
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
	CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error)
	DistinctCategories(ctx context.Context) ([]interface{}, error)
	GlobalTop(ctx context.Context, limit int64) ([]models.GlobalLeaderboardRow, error)
	MostActiveCategory(ctx context.Context) (primitive.ObjectID, int, error)
	HighestScore(ctx context.Context) (*models.LeaderboardEntry, error)
}
