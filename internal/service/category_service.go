package service

import (
	"context"
	"fmt"
	"log"

	"quiz-platform/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CategoryService struct {
	CategoryRepo CategoryStore
	QuizRepo     QuizStore
}

func NewCategoryService(categoryRepo CategoryStore, quizRepo QuizStore) *CategoryService {
	return &CategoryService{CategoryRepo: categoryRepo, QuizRepo: quizRepo}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	categories, err := s.CategoryRepo.FindAll(ctx)
	if err != nil {
		log.Printf("Error fetching categories: %v", err)
		return nil, ErrInternal("Error fetching categories")
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

func (s *CategoryService) Get(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	category, err := s.CategoryRepo.FindByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching category: %v", err)
		return nil, ErrInternal("Error fetching category")
	}
	if category == nil {
		return nil, ErrNotFound("Category not found")
	}
	return category, nil
}

func (s *CategoryService) Create(ctx context.Context, input models.CategoryInput) (*models.Category, error) {
	if verr := input.Validate(); verr != nil {
		return nil, ErrInvalid(verr.Message)
	}
	category := &models.Category{
		ID:          primitive.NewObjectID(),
		Name:        input.Name,
		Description: input.Description,
	}
	if err := s.CategoryRepo.Create(ctx, category); err != nil {
		log.Printf("Error creating category: %v", err)
		return nil, ErrInternal("Error creating category")
	}
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id primitive.ObjectID, input models.CategoryInput) (*models.Category, error) {
	if verr := input.Validate(); verr != nil {
		return nil, ErrInvalid(verr.Message)
	}
	update := bson.M{"name": input.Name, "description": input.Description}
	category, err := s.CategoryRepo.Update(ctx, id, update)
	if err != nil {
		log.Printf("Error updating category: %v", err)
		return nil, ErrInternal("Error updating category")
	}
	if category == nil {
		return nil, ErrNotFound("Category not found")
	}
	return category, nil
}

// Delete removes a category unless any quiz still references it; the
// conflict reports the blocking count.
func (s *CategoryService) Delete(ctx context.Context, id primitive.ObjectID) error {
	category, err := s.CategoryRepo.FindByID(ctx, id)
	if err != nil {
		log.Printf("Error deleting category: %v", err)
		return ErrInternal("Error deleting category")
	}
	if category == nil {
		return ErrNotFound("Category not found")
	}

	quizCount, err := s.QuizRepo.Count(ctx, bson.M{"category": id})
	if err != nil {
		log.Printf("Error deleting category: %v", err)
		return ErrInternal("Error deleting category")
	}
	if quizCount > 0 {
		return ErrConflict(fmt.Sprintf("Cannot delete category. It's being used by %d quizzes.", quizCount))
	}

	if err := s.CategoryRepo.Delete(ctx, id); err != nil {
		log.Printf("Error deleting category: %v", err)
		return ErrInternal("Error deleting category")
	}
	return nil
}

// Stats aggregates the public quizzes of a category: quiz count, distinct
// creator count, and total question count.
func (s *CategoryService) Stats(ctx context.Context, id primitive.ObjectID) (*models.CategoryStats, error) {
	category, err := s.CategoryRepo.FindByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching category statistics: %v", err)
		return nil, ErrInternal("Error fetching category statistics")
	}
	if category == nil {
		return nil, ErrNotFound("Category not found")
	}

	publicFilter := bson.M{"category": id, "isPublic": true}

	quizCount, err := s.QuizRepo.Count(ctx, publicFilter)
	if err != nil {
		log.Printf("Error fetching category statistics: %v", err)
		return nil, ErrInternal("Error fetching category statistics")
	}

	creators, err := s.QuizRepo.DistinctCreators(ctx, publicFilter)
	if err != nil {
		log.Printf("Error fetching category statistics: %v", err)
		return nil, ErrInternal("Error fetching category statistics")
	}

	quizzes, err := s.QuizRepo.Find(ctx, publicFilter)
	if err != nil {
		log.Printf("Error fetching category statistics: %v", err)
		return nil, ErrInternal("Error fetching category statistics")
	}
	totalQuestions := 0
	for _, quiz := range quizzes {
		totalQuestions += len(quiz.Questions)
	}

	return &models.CategoryStats{
		Category:       *category,
		QuizCount:      quizCount,
		CreatorCount:   len(creators),
		TotalQuestions: totalQuestions,
	}, nil
}
