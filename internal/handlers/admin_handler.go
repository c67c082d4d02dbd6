package handlers

import (
	"net/http"

	"quiz-platform/internal/middleware"
	"quiz-platform/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	Admin *service.AdminService
}

func NewAdminHandler(admin *service.AdminService) *AdminHandler {
	return &AdminHandler{Admin: admin}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.Admin.ListUsers(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	userID, ok := objectID(c, "userId", "User not found")
	if !ok {
		return
	}
	var body struct {
		Role string `json:"role"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid role"})
		return
	}
	user, err := h.Admin.UpdateRole(c.Request.Context(), userID, body.Role)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, ok := objectID(c, "userId", "User not found")
	if !ok {
		return
	}
	if err := h.Admin.DeleteUser(c.Request.Context(), middleware.UserID(c), userID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User and associated data deleted successfully"})
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.Admin.Dashboard(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) FlaggedQuizzes(c *gin.Context) {
	flagged, err := h.Admin.FlaggedQuizzes(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, flagged)
}

func (h *AdminHandler) ModerateQuiz(c *gin.Context) {
	quizID, ok := objectID(c, "quizId", "Quiz not found")
	if !ok {
		return
	}
	var body struct {
		Approved bool `json:"approved"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid moderation request"})
		return
	}
	quiz, err := h.Admin.Moderate(c.Request.Context(), quizID, body.Approved)
	if err != nil {
		fail(c, err)
		return
	}
	message := "Quiz rejected"
	if body.Approved {
		message = "Quiz approved"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "quiz": quiz})
}
