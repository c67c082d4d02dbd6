package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LeaderboardEntry records a user's best run in a category. At most one
// entry per (user, category) pair, enforced by a unique compound index.
type LeaderboardEntry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User        primitive.ObjectID `bson:"user" json:"user"`
	Category    primitive.ObjectID `bson:"category" json:"category"`
	Score       int                `bson:"score" json:"score"`
	TimeTaken   int                `bson:"timeTaken" json:"timeTaken"`
	CompletedAt time.Time          `bson:"completedAt" json:"completedAt"`
}

// Supersedes reports whether a new run should replace the stored entry:
// higher score wins, equal score with less time wins.
func (e *LeaderboardEntry) Supersedes(old *LeaderboardEntry) bool {
	if old == nil {
		return true
	}
	if e.Score != old.Score {
		return e.Score > old.Score
	}
	return e.TimeTaken < old.TimeTaken
}

// LeaderboardView is a populated entry for category leaderboards.
type LeaderboardView struct {
	ID          primitive.ObjectID `json:"id"`
	User        UserRef            `json:"user"`
	Score       int                `json:"score"`
	TimeTaken   int                `json:"timeTaken"`
	CompletedAt time.Time          `json:"completedAt"`
}

// HistoryView is a populated entry for a user's quiz history.
type HistoryView struct {
	ID          primitive.ObjectID `json:"id"`
	Category    CategoryRef        `json:"category"`
	Score       int                `json:"score"`
	TimeTaken   int                `json:"timeTaken"`
	CompletedAt time.Time          `json:"completedAt"`
}

// GlobalLeaderboardRow is one $group result of the global aggregation.
type GlobalLeaderboardRow struct {
	UserID       primitive.ObjectID `bson:"_id" json:"-"`
	User         UserRef            `bson:"-" json:"user"`
	TotalScore   int                `bson:"totalScore" json:"totalScore"`
	QuizzesTaken int                `bson:"quizzesTaken" json:"quizzesTaken"`
	AvgScore     float64            `bson:"avgScore" json:"avgScore"`
	BestScore    int                `bson:"bestScore" json:"bestScore"`
}

// LeaderboardStats is the summary reported by the leaderboard stats endpoint.
type LeaderboardStats struct {
	TotalEntries        int64               `json:"totalEntries"`
	ActiveCategoryCount int                 `json:"activeCategoryCount"`
	MostActiveCategory  *ActiveCategory     `json:"mostActiveCategory"`
	HighestScore        *HighestScoreRecord `json:"highestScore"`
}

type ActiveCategory struct {
	ID         primitive.ObjectID `json:"id"`
	Name       string             `json:"name"`
	EntryCount int                `json:"entryCount"`
}

type HighestScoreRecord struct {
	Score    int       `json:"score"`
	User     string    `json:"user"`
	Category string    `json:"category"`
	Date     time.Time `json:"date"`
}
