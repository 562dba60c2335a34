package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fashion-marketplace-backend/internal/database"
	"fashion-marketplace-backend/internal/models"
)

type CategoriesHandler struct {
	dbClient *database.Client
}

func NewCategoriesHandler(dbClient *database.Client) *CategoriesHandler {
	return &CategoriesHandler{dbClient: dbClient}
}

func (h *CategoriesHandler) ListCategories(c *gin.Context) {
	categories, err := h.dbClient.ListCategories()
	if err != nil {
		respondError(c, "list categories", err)
		return
	}

	resp := models.CategoryListResponse{Categories: make([]models.CategoryResponse, len(categories))}
	for i := range categories {
		resp.Categories[i] = toCategoryResponse(&categories[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CategoriesHandler) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	category, err := h.dbClient.CreateCategory(&req)
	if err != nil {
		respondError(c, "create category", err)
		return
	}

	c.JSON(http.StatusOK, toCategoryResponse(category))
}

func (h *CategoriesHandler) DeleteCategory(c *gin.Context) {
	categoryID, ok := parseUUIDParam(c, "category_id")
	if !ok {
		return
	}

	if err := h.dbClient.DeleteCategory(categoryID); err != nil {
		respondError(c, "delete category", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "category deleted successfully"})
}
