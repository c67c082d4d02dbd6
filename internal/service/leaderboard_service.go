package service

import (
	"context"
	"log"
	"math"

	"quiz-platform/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	categoryTopLimit = 10
	globalTopLimit   = 20
)

type LeaderboardService struct {
	LeaderboardRepo LeaderboardStore
	UserRepo        UserStore
	CategoryRepo    CategoryStore
}

func NewLeaderboardService(leaderboardRepo LeaderboardStore, userRepo UserStore, categoryRepo CategoryStore) *LeaderboardService {
	return &LeaderboardService{
		LeaderboardRepo: leaderboardRepo,
		UserRepo:        userRepo,
		CategoryRepo:    categoryRepo,
	}
}

// CategoryTop returns a category's top ten: score descending, faster time
// breaking ties, user references resolved.
func (s *LeaderboardService) CategoryTop(ctx context.Context, categoryID primitive.ObjectID) ([]models.LeaderboardView, error) {
	entries, err := s.LeaderboardRepo.FindByCategory(ctx, categoryID, categoryTopLimit)
	if err != nil {
		log.Printf("Error fetching leaderboard: %v", err)
		return nil, ErrInternal("Error fetching leaderboard")
	}

	userIDs := make([]primitive.ObjectID, 0, len(entries))
	for _, entry := range entries {
		userIDs = append(userIDs, entry.User)
	}
	refs, err := s.UserRepo.FindRefs(ctx, userIDs)
	if err != nil {
		log.Printf("Error fetching leaderboard: %v", err)
		return nil, ErrInternal("Error fetching leaderboard")
	}

	views := make([]models.LeaderboardView, 0, len(entries))
	for _, entry := range entries {
		ref, ok := refs[entry.User]
		if !ok {
			ref = models.UserRef{ID: entry.User}
		}
		views = append(views, models.LeaderboardView{
			ID:          entry.ID,
			User:        ref,
			Score:       entry.Score,
			TimeTaken:   entry.TimeTaken,
			CompletedAt: entry.CompletedAt,
		})
	}
	return views, nil
}

// UserScores returns the caller's best scores across categories, highest
// first, with category references resolved.
func (s *LeaderboardService) UserScores(ctx context.Context, userID primitive.ObjectID) ([]models.HistoryView, error) {
	entries, err := s.LeaderboardRepo.FindBestByUser(ctx, userID)
	if err != nil {
		log.Printf("Error fetching user scores: %v", err)
		return nil, ErrInternal("Error fetching user scores")
	}

	categoryIDs := make([]primitive.ObjectID, 0, len(entries))
	for _, entry := range entries {
		categoryIDs = append(categoryIDs, entry.Category)
	}
	refs, err := s.CategoryRepo.FindRefs(ctx, categoryIDs)
	if err != nil {
		log.Printf("Error fetching user scores: %v", err)
		return nil, ErrInternal("Error fetching user scores")
	}

	views := make([]models.HistoryView, 0, len(entries))
	for _, entry := range entries {
		ref, ok := refs[entry.Category]
		if !ok {
			ref = models.CategoryRef{ID: entry.Category}
		}
		views = append(views, models.HistoryView{
			ID:          entry.ID,
			Category:    ref,
			Score:       entry.Score,
			TimeTaken:   entry.TimeTaken,
			CompletedAt: entry.CompletedAt,
		})
	}
	return views, nil
}

// Global returns the top users across all categories, by total score.
func (s *LeaderboardService) Global(ctx context.Context) ([]models.GlobalLeaderboardRow, error) {
	rows, err := s.LeaderboardRepo.GlobalTop(ctx, globalTopLimit)
	if err != nil {
		log.Printf("Error fetching global leaderboard: %v", err)
		return nil, ErrInternal("Error fetching global leaderboard")
	}

	userIDs := make([]primitive.ObjectID, 0, len(rows))
	for _, row := range rows {
		userIDs = append(userIDs, row.UserID)
	}
	refs, err := s.UserRepo.FindRefs(ctx, userIDs)
	if err != nil {
		log.Printf("Error fetching global leaderboard: %v", err)
		return nil, ErrInternal("Error fetching global leaderboard")
	}

	for i := range rows {
		ref, ok := refs[rows[i].UserID]
		if !ok {
			ref = models.UserRef{ID: rows[i].UserID}
		}
		rows[i].User = ref
		rows[i].AvgScore = math.Round(rows[i].AvgScore*100) / 100
	}
	if rows == nil {
		rows = []models.GlobalLeaderboardRow{}
	}
	return rows, nil
}

// Stats summarizes leaderboard activity for reporting.
func (s *LeaderboardService) Stats(ctx context.Context) (*models.LeaderboardStats, error) {
	fail := func(err error) (*models.LeaderboardStats, error) {
		log.Printf("Error fetching leaderboard statistics: %v", err)
		return nil, ErrInternal("Error fetching leaderboard statistics")
	}

	total, err := s.LeaderboardRepo.Count(ctx)
	if err != nil {
		return fail(err)
	}
	activeCategories, err := s.LeaderboardRepo.DistinctCategories(ctx)
	if err != nil {
		return fail(err)
	}

	stats := &models.LeaderboardStats{
		TotalEntries:        total,
		ActiveCategoryCount: len(activeCategories),
	}

	topCategoryID, entryCount, err := s.LeaderboardRepo.MostActiveCategory(ctx)
	if err != nil {
		return fail(err)
	}
	if !topCategoryID.IsZero() {
		category, err := s.CategoryRepo.FindByID(ctx, topCategoryID)
		if err != nil {
			return fail(err)
		}
		if category != nil {
			stats.MostActiveCategory = &models.ActiveCategory{
				ID:         category.ID,
				Name:       category.Name,
				EntryCount: entryCount,
			}
		}
	}

	best, err := s.LeaderboardRepo.HighestScore(ctx)
	if err != nil {
		return fail(err)
	}
	if best != nil {
		record := &models.HighestScoreRecord{Score: best.Score, Date: best.CompletedAt}
		if user, err := s.UserRepo.FindByID(ctx, best.User); err == nil && user != nil {
			record.User = user.Username
		}
		if category, err := s.CategoryRepo.FindByID(ctx, best.Category); err == nil && category != nil {
			record.Category = category.Name
		}
		stats.HighestScore = record
	}

	return stats, nil
}
