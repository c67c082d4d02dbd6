package service

import (
	"context"
	"log"

	"quiz-platform/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AdminService struct {
	UserRepo        UserStore
	QuizRepo        QuizStore
	CategoryRepo    CategoryStore
	LeaderboardRepo LeaderboardStore
}

func NewAdminService(userRepo UserStore, quizRepo QuizStore, categoryRepo CategoryStore, leaderboardRepo LeaderboardStore) *AdminService {
	return &AdminService{
		UserRepo:        userRepo,
		QuizRepo:        quizRepo,
		CategoryRepo:    categoryRepo,
		LeaderboardRepo: leaderboardRepo,
	}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.UserRepo.FindAll(ctx)
	if err != nil {
		log.Printf("Error fetching users: %v", err)
		return nil, ErrInternal("Error fetching users")
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (s *AdminService) UpdateRole(ctx context.Context, userID primitive.ObjectID, role string) (*models.User, error) {
	if !models.ValidRole(role) {
		return nil, ErrInvalid("Invalid role")
	}
	user, err := s.UserRepo.UpdateFields(ctx, userID, bson.M{"role": role})
	if err != nil {
		log.Printf("Error updating user role: %v", err)
		return nil, ErrInternal("Error updating user role")
	}
	if user == nil {
		return nil, ErrNotFound("User not found")
	}
	return user, nil
}

// DeleteUser removes a user and cascades to their quizzes and leaderboard
// entries. The three deletes are not atomic; a failure partway through
// leaves the later collections untouched, so the order goes dependents
// first and the user record last.
func (s *AdminService) DeleteUser(ctx context.Context, actorID, userID primitive.ObjectID) error {
	if actorID == userID {
		return ErrInvalid("Cannot delete yourself")
	}

	user, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil {
		log.Printf("Error deleting user: %v", err)
		return ErrInternal("Error deleting user")
	}
	if user == nil {
		return ErrNotFound("User not found")
	}

	if err := s.QuizRepo.DeleteByOwner(ctx, userID); err != nil {
		log.Printf("Error deleting user quizzes: %v", err)
		return ErrInternal("Error deleting user")
	}
	if err := s.LeaderboardRepo.DeleteByUser(ctx, userID); err != nil {
		log.Printf("Error deleting user leaderboard entries: %v", err)
		return ErrInternal("Error deleting user")
	}
	if err := s.UserRepo.Delete(ctx, userID); err != nil {
		log.Printf("Error deleting user record: %v", err)
		return ErrInternal("Error deleting user")
	}
	return nil
}

func (s *AdminService) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	fail := func(err error) (*models.DashboardStats, error) {
		log.Printf("Error fetching dashboard statistics: %v", err)
		return nil, ErrInternal("Error fetching dashboard statistics")
	}

	totalUsers, err := s.UserRepo.Count(ctx, bson.M{})
	if err != nil {
		return fail(err)
	}
	adminCount, err := s.UserRepo.Count(ctx, bson.M{"role": models.RoleAdmin})
	if err != nil {
		return fail(err)
	}
	totalQuizzes, err := s.QuizRepo.Count(ctx, bson.M{})
	if err != nil {
		return fail(err)
	}
	publicQuizzes, err := s.QuizRepo.Count(ctx, bson.M{"isPublic": true})
	if err != nil {
		return fail(err)
	}
	totalCategories, err := s.CategoryRepo.Count(ctx)
	if err != nil {
		return fail(err)
	}
	totalEntries, err := s.LeaderboardRepo.Count(ctx)
	if err != nil {
		return fail(err)
	}

	recentUsers, err := s.UserRepo.FindRecent(ctx, 5)
	if err != nil {
		return fail(err)
	}
	recentQuizzes, err := s.QuizRepo.FindRecent(ctx, 5)
	if err != nil {
		return fail(err)
	}
	summaries, err := s.quizSummaries(ctx, recentQuizzes)
	if err != nil {
		return fail(err)
	}
	if recentUsers == nil {
		recentUsers = []models.RecentUser{}
	}

	return &models.DashboardStats{
		Counts: models.DashboardCounts{
			Users:              totalUsers,
			Admins:             adminCount,
			Quizzes:            totalQuizzes,
			PublicQuizzes:      publicQuizzes,
			Categories:         totalCategories,
			LeaderboardEntries: totalEntries,
		},
		Recent: models.DashboardRecent{
			Users:   recentUsers,
			Quizzes: summaries,
		},
	}, nil
}

// FlaggedQuizzes is a placeholder: the flag data model is not defined yet.
func (s *AdminService) FlaggedQuizzes(ctx context.Context) ([]models.QuizSummary, error) {
	return []models.QuizSummary{}, nil
}

// Moderate toggles a quiz's public visibility: approval publishes it,
// rejection hides it.
func (s *AdminService) Moderate(ctx context.Context, quizID primitive.ObjectID, approved bool) (*models.ModeratedQuiz, error) {
	quiz, err := s.QuizRepo.FindByID(ctx, quizID)
	if err != nil {
		log.Printf("Error moderating quiz: %v", err)
		return nil, ErrInternal("Error moderating quiz")
	}
	if quiz == nil {
		return nil, ErrNotFound("Quiz not found")
	}

	quiz.IsPublic = approved
	if err := s.QuizRepo.Save(ctx, quiz); err != nil {
		log.Printf("Error moderating quiz: %v", err)
		return nil, ErrInternal("Error moderating quiz")
	}
	return &models.ModeratedQuiz{ID: quiz.ID, Title: quiz.Title, IsPublic: quiz.IsPublic}, nil
}

func (s *AdminService) quizSummaries(ctx context.Context, quizzes []models.Quiz) ([]models.QuizSummary, error) {
	categoryIDs := make([]primitive.ObjectID, 0, len(quizzes))
	userIDs := make([]primitive.ObjectID, 0, len(quizzes))
	for _, quiz := range quizzes {
		categoryIDs = append(categoryIDs, quiz.Category)
		userIDs = append(userIDs, quiz.CreatedBy)
	}
	categoryRefs, err := s.CategoryRepo.FindRefs(ctx, categoryIDs)
	if err != nil {
		return nil, err
	}
	userRefs, err := s.UserRepo.FindRefs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.QuizSummary, 0, len(quizzes))
	for _, quiz := range quizzes {
		categoryRef, ok := categoryRefs[quiz.Category]
		if !ok {
			categoryRef = models.CategoryRef{ID: quiz.Category}
		}
		userRef, ok := userRefs[quiz.CreatedBy]
		if !ok {
			userRef = models.UserRef{ID: quiz.CreatedBy}
		}
		summaries = append(summaries, models.QuizSummary{
			ID:        quiz.ID,
			Title:     quiz.Title,
			Category:  categoryRef,
			CreatedBy: userRef,
			CreatedAt: quiz.CreatedAt,
		})
	}
	return summaries, nil
}
