package repository

import (
	"context"
	"errors"

	"quiz-platform/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type QuizRepository struct {
	Col *mongo.Collection
}

func NewQuizRepository(db *mongo.Database) *QuizRepository {
	return &QuizRepository{Col: db.Collection("quizzes")}
}

// Find returns quizzes matching the filter, newest first.
func (r *QuizRepository) Find(ctx context.Context, filter bson.M) ([]models.Quiz, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var quizzes []models.Quiz
	if err := cur.All(ctx, &quizzes); err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *QuizRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Quiz, error) {
	var quiz models.Quiz
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&quiz)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &quiz, nil
}

// FindIDs returns just the ids of matching quizzes, for random selection.
func (r *QuizRepository) FindIDs(ctx context.Context, filter bson.M) ([]primitive.ObjectID, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, len(docs))
	for i, doc := range docs {
		ids[i] = doc.ID
	}
	return ids, nil
}

func (r *QuizRepository) FindRecent(ctx context.Context, limit int64) ([]models.Quiz, error) {
	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(limit).
		SetProjection(bson.M{"title": 1, "category": 1, "createdBy": 1, "createdAt": 1})
	cur, err := r.Col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var quizzes []models.Quiz
	if err := cur.All(ctx, &quizzes); err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *QuizRepository) Create(ctx context.Context, quiz *models.Quiz) error {
	_, err := r.Col.InsertOne(ctx, quiz)
	return err
}

// Save replaces the mutable quiz fields. The caller is expected to have
// refreshed UpdatedAt.
func (r *QuizRepository) Save(ctx context.Context, quiz *models.Quiz) error {
	update := bson.M{"$set": bson.M{
		"title":       quiz.Title,
		"description": quiz.Description,
		"emoji":       quiz.Emoji,
		"category":    quiz.Category,
		"questions":   quiz.Questions,
		"isPublic":    quiz.IsPublic,
		"updatedAt":   quiz.UpdatedAt,
	}}
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": quiz.ID}, update)
	return err
}

func (r *QuizRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *QuizRepository) DeleteByOwner(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.Col.DeleteMany(ctx, bson.M{"createdBy": userID})
	return err
}

func (r *QuizRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.Col.CountDocuments(ctx, filter)
}

// DistinctCreators returns the distinct creator ids among quizzes matching
// the filter.
func (r *QuizRepository) DistinctCreators(ctx context.Context, filter bson.M) ([]interface{}, error) {
	return r.Col.Distinct(ctx, "createdBy", filter)
}
