package handlers

import (
	"net/http"

	"quiz-platform/internal/middleware"
	"quiz-platform/internal/service"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	Leaderboard *service.LeaderboardService
}

func NewLeaderboardHandler(leaderboard *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{Leaderboard: leaderboard}
}

func (h *LeaderboardHandler) Category(c *gin.Context) {
	categoryID, ok := objectID(c, "categoryId", "Category not found")
	if !ok {
		return
	}
	entries, err := h.Leaderboard.CategoryTop(c.Request.Context(), categoryID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *LeaderboardHandler) MyScores(c *gin.Context) {
	scores, err := h.Leaderboard.UserScores(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, scores)
}

func (h *LeaderboardHandler) Global(c *gin.Context) {
	rows, err := h.Leaderboard.Global(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *LeaderboardHandler) Stats(c *gin.Context) {
	stats, err := h.Leaderboard.Stats(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
