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

type UserRepository struct {
	Col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{Col: db.Collection("users")}
}

func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.Col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindConflicting returns a user holding the given email or username,
// excluding excludeID when non-nil. Used for uniqueness checks at
// registration and profile update.
func (r *UserRepository) FindConflicting(ctx context.Context, username, email string, excludeID *primitive.ObjectID) (*models.User, error) {
	or := bson.A{}
	if username != "" {
		or = append(or, bson.M{"username": username})
	}
	if email != "" {
		or = append(or, bson.M{"email": email})
	}
	if len(or) == 0 {
		return nil, nil
	}
	filter := bson.M{"$or": or}
	if excludeID != nil {
		filter["_id"] = bson.M{"$ne": *excludeID}
	}

	var user models.User
	err := r.Col.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	cur, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) FindRecent(ctx context.Context, limit int64) ([]models.RecentUser, error) {
	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(limit).
		SetProjection(bson.M{"username": 1, "email": 1, "role": 1, "createdAt": 1})
	cur, err := r.Col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var users []models.RecentUser
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// FindRefs resolves a set of user ids to their reference shape in one query.
func (r *UserRepository) FindRefs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.UserRef, error) {
	refs := make(map[primitive.ObjectID]models.UserRef, len(ids))
	if len(ids) == 0 {
		return refs, nil
	}
	opts := options.Find().SetProjection(bson.M{"username": 1})
	cur, err := r.Col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var found []models.UserRef
	if err := cur.All(ctx, &found); err != nil {
		return nil, err
	}
	for _, ref := range found {
		refs[ref.ID] = ref
	}
	return refs, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	_, err := r.Col.InsertOne(ctx, user)
	return err
}

// UpdateFields applies a partial update and returns the new document.
func (r *UserRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user models.User
	err := r.Col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": update}, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *UserRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.Col.CountDocuments(ctx, filter)
}
