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

type CategoryRepository struct {
	Col *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{Col: db.Collection("categories")}
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	cur, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var categories []models.Category
	if err := cur.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	var category models.Category
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// FindRefs resolves a set of category ids to their reference shape in one
// query.
func (r *CategoryRepository) FindRefs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.CategoryRef, error) {
	refs := make(map[primitive.ObjectID]models.CategoryRef, len(ids))
	if len(ids) == 0 {
		return refs, nil
	}
	opts := options.Find().SetProjection(bson.M{"name": 1})
	cur, err := r.Col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var found []models.CategoryRef
	if err := cur.All(ctx, &found); err != nil {
		return nil, err
	}
	for _, ref := range found {
		refs[ref.ID] = ref
	}
	return refs, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	_, err := r.Col.InsertOne(ctx, category)
	return err
}

func (r *CategoryRepository) Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Category, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var category models.Category
	err := r.Col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": update}, opts).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *CategoryRepository) Count(ctx context.Context) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{})
}
