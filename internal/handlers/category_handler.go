package handlers

import (
	"net/http"

	"quiz-platform/internal/models"
	"quiz-platform/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	Categories *service.CategoryService
}

func NewCategoryHandler(categories *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{Categories: categories}
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.Categories.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := objectID(c, "id", "Category not found")
	if !ok {
		return
	}
	category, err := h.Categories.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Stats(c *gin.Context) {
	id, ok := objectID(c, "id", "Category not found")
	if !ok {
		return
	}
	stats, err := h.Categories.Stats(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var input models.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Category name is required"})
		return
	}
	category, err := h.Categories.Create(c.Request.Context(), input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := objectID(c, "id", "Category not found")
	if !ok {
		return
	}
	var input models.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Category name is required"})
		return
	}
	category, err := h.Categories.Update(c.Request.Context(), id, input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := objectID(c, "id", "Category not found")
	if !ok {
		return
	}
	if err := h.Categories.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
