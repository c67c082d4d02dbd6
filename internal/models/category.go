package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Category struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
}

// CategoryRef is the populated form of a category reference on joined reads.
type CategoryRef struct {
	ID   primitive.ObjectID `bson:"_id" json:"id"`
	Name string             `bson:"name" json:"name"`
}

func (c *Category) Ref() CategoryRef {
	return CategoryRef{ID: c.ID, Name: c.Name}
}

type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (in *CategoryInput) Validate() *ValidationError {
	if in.Name == "" {
		return &ValidationError{Field: "name", Message: "Category name is required"}
	}
	return nil
}

// CategoryStats is the read-only aggregation over the public quizzes of one
// category.
type CategoryStats struct {
	Category       Category `json:"category"`
	QuizCount      int64    `json:"quizCount"`
	CreatorCount   int      `json:"creatorCount"`
	TotalQuestions int      `json:"totalQuestions"`
}
