package handlers

import (
	"net/http"
	"strconv"

	"quiz-platform/internal/middleware"
	"quiz-platform/internal/models"
	"quiz-platform/internal/service"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	Quizzes *service.QuizService
}

func NewQuizHandler(quizzes *service.QuizService) *QuizHandler {
	return &QuizHandler{Quizzes: quizzes}
}

func (h *QuizHandler) List(c *gin.Context) {
	quizzes, err := h.Quizzes.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, quizzes)
}

func (h *QuizHandler) Mine(c *gin.Context) {
	quizzes, err := h.Quizzes.Mine(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, quizzes)
}

func (h *QuizHandler) Get(c *gin.Context) {
	id, ok := objectID(c, "id", "Quiz not found")
	if !ok {
		return
	}
	includeAnswers := c.Query("includeAnswers") != ""
	quiz, err := h.Quizzes.Get(c.Request.Context(), id, includeAnswers)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, quiz)
}

func (h *QuizHandler) Create(c *gin.Context) {
	var input models.QuizInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}
	quiz, err := h.Quizzes.Create(c.Request.Context(), middleware.UserID(c), input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Quiz created successfully", "quiz": quiz})
}

func (h *QuizHandler) Update(c *gin.Context) {
	id, ok := objectID(c, "id", "Quiz not found")
	if !ok {
		return
	}
	var input models.QuizInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}
	quiz, err := h.Quizzes.Update(c.Request.Context(), middleware.UserID(c), id, input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, quiz)
}

func (h *QuizHandler) Delete(c *gin.Context) {
	id, ok := objectID(c, "id", "Quiz not found")
	if !ok {
		return
	}
	if err := h.Quizzes.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Quiz deleted successfully"})
}

func (h *QuizHandler) Submit(c *gin.Context) {
	id, ok := objectID(c, "id", "Quiz not found")
	if !ok {
		return
	}
	var input service.SubmitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid answers format"})
		return
	}
	summary, err := h.Quizzes.Submit(c.Request.Context(), middleware.UserID(c), id, input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *QuizHandler) Random(c *gin.Context) {
	categoryID, ok := objectID(c, "categoryId", "No quizzes found in this category")
	if !ok {
		return
	}
	limit := models.DefaultRandomLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	quiz, err := h.Quizzes.Random(c.Request.Context(), categoryID, limit)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, quiz)
}

func (h *QuizHandler) History(c *gin.Context) {
	history, err := h.Quizzes.History(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}
