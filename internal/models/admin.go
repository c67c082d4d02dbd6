package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DashboardCounts struct {
	Users              int64 `json:"users"`
	Admins             int64 `json:"admins"`
	Quizzes            int64 `json:"quizzes"`
	PublicQuizzes      int64 `json:"publicQuizzes"`
	Categories         int64 `json:"categories"`
	LeaderboardEntries int64 `json:"leaderboardEntries"`
}

// RecentUser is the projected user shape on the dashboard.
type RecentUser struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Username  string             `bson:"username" json:"username"`
	Email     string             `bson:"email" json:"email"`
	Role      string             `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type DashboardRecent struct {
	Users   []RecentUser  `json:"users"`
	Quizzes []QuizSummary `json:"quizzes"`
}

type DashboardStats struct {
	Counts DashboardCounts `json:"counts"`
	Recent DashboardRecent `json:"recent"`
}

// ModeratedQuiz is the trimmed quiz shape returned by the moderation endpoint.
type ModeratedQuiz struct {
	ID       primitive.ObjectID `json:"id"`
	Title    string             `json:"title"`
	IsPublic bool               `json:"isPublic"`
}
