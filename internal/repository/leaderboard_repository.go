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

type LeaderboardRepository struct {
	Col *mongo.Collection
}

func NewLeaderboardRepository(db *mongo.Database) *LeaderboardRepository {
	return &LeaderboardRepository{Col: db.Collection("leaderboard")}
}

// FindByUser returns the user's entries, most recently completed first.
func (r *LeaderboardRepository) FindByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.LeaderboardEntry, error) {
	opts := options.Find().SetSort(bson.M{"completedAt": -1})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return r.find(ctx, bson.M{"user": userID}, opts)
}

// FindBestByUser returns the user's entries ordered by score, best first.
func (r *LeaderboardRepository) FindBestByUser(ctx context.Context, userID primitive.ObjectID) ([]models.LeaderboardEntry, error) {
	opts := options.Find().SetSort(bson.M{"score": -1})
	return r.find(ctx, bson.M{"user": userID}, opts)
}

// FindByCategory returns the category's top entries: score descending,
// ties broken by the faster time.
func (r *LeaderboardRepository) FindByCategory(ctx context.Context, categoryID primitive.ObjectID, limit int64) ([]models.LeaderboardEntry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "score", Value: -1}, {Key: "timeTaken", Value: 1}}).
		SetLimit(limit)
	return r.find(ctx, bson.M{"category": categoryID}, opts)
}

func (r *LeaderboardRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.LeaderboardEntry, error) {
	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var entries []models.LeaderboardEntry
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// FindForPair returns the single entry for a (user, category) pair, nil when
// none exists.
func (r *LeaderboardRepository) FindForPair(ctx context.Context, userID, categoryID primitive.ObjectID) (*models.LeaderboardEntry, error) {
	var entry models.LeaderboardEntry
	err := r.Col.FindOne(ctx, bson.M{"user": userID, "category": categoryID}).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// Upsert writes the entry for its (user, category) pair, relying on the
// unique compound index for concurrent writers.
func (r *LeaderboardRepository) Upsert(ctx context.Context, entry *models.LeaderboardEntry) error {
	filter := bson.M{"user": entry.User, "category": entry.Category}
	update := bson.M{"$set": bson.M{
		"user":        entry.User,
		"category":    entry.Category,
		"score":       entry.Score,
		"timeTaken":   entry.TimeTaken,
		"completedAt": entry.CompletedAt,
	}}
	opts := options.Update().SetUpsert(true)
	_, err := r.Col.UpdateOne(ctx, filter, update, opts)
	return err
}

func (r *LeaderboardRepository) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.Col.DeleteMany(ctx, bson.M{"user": userID})
	return err
}

func (r *LeaderboardRepository) Count(ctx context.Context) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{})
}

func (r *LeaderboardRepository) CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{"user": userID})
}

func (r *LeaderboardRepository) DistinctCategories(ctx context.Context) ([]interface{}, error) {
	return r.Col.Distinct(ctx, "category", bson.M{})
}

// GlobalTop groups all entries by user and returns the top scorers across
// every category.
func (r *LeaderboardRepository) GlobalTop(ctx context.Context, limit int64) ([]models.GlobalLeaderboardRow, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":          "$user",
			"totalScore":   bson.M{"$sum": "$score"},
			"quizzesTaken": bson.M{"$sum": 1},
			"avgScore":     bson.M{"$avg": "$score"},
			"bestScore":    bson.M{"$max": "$score"},
		}}},
		{{Key: "$sort", Value: bson.M{"totalScore": -1}}},
		{{Key: "$limit", Value: limit}},
	}
	cur, err := r.Col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var rows []models.GlobalLeaderboardRow
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// MostActiveCategory returns the category with the most entries, or a zero
// id when the board is empty.
func (r *LeaderboardRepository) MostActiveCategory(ctx context.Context) (primitive.ObjectID, int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$category", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
		{{Key: "$limit", Value: 1}},
	}
	cur, err := r.Col.Aggregate(ctx, pipeline)
	if err != nil {
		return primitive.NilObjectID, 0, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		ID    primitive.ObjectID `bson:"_id"`
		Count int                `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return primitive.NilObjectID, 0, err
	}
	if len(rows) == 0 {
		return primitive.NilObjectID, 0, nil
	}
	return rows[0].ID, rows[0].Count, nil
}

// HighestScore returns the single best entry ever recorded, nil when the
// board is empty.
func (r *LeaderboardRepository) HighestScore(ctx context.Context) (*models.LeaderboardEntry, error) {
	opts := options.FindOne().SetSort(bson.M{"score": -1})
	var entry models.LeaderboardEntry
	err := r.Col.FindOne(ctx, bson.M{}, opts).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}
