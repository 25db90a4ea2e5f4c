package api

import (
	"errors"
	"strings"

	"expenses/database"
	"expenses/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CategoryHandler serves the category endpoints.
type CategoryHandler struct{}

// NewCategoryHandler creates a category handler.
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// CreateCategoryRequest is the body for creating a category.
type CreateCategoryRequest struct {
	ID    string `json:"id" binding:"required,max=50" example:"abonnements"`
	Name  string `json:"name" binding:"required,max=100" example:"Abonnements"`
	Color string `json:"color" binding:"required,max=7" example:"#8E44AD"`
	Icon  string `json:"icon" binding:"required,max=10" example:"📺"`
}

// List returns all categories.
// @Summary List categories
// @Description Returns every category, seeded defaults and user-created ones alike. No ordering contract.
// @Tags categories
// @Produce json
// @Success 200 {array} models.Category
// @Router /api/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	categories := make([]models.Category, 0)
	if err := database.DB.Find(&categories).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "query failed"))
		return
	}
	OK(c, categories)
}

// Create creates a new category.
// @Summary Create a category
// @Description Creates a category with a caller-supplied slug id. Fails when the id already exists.
// @Tags categories
// @Accept json
// @Produce json
// @Param request body CreateCategoryRequest true "category"
// @Success 201 {object} models.Category
// @Failure 400 {object} ErrorResponse
// @Router /api/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "invalid request body"))
		return
	}

	req.ID = strings.TrimSpace(req.ID)
	if req.ID == "" {
		BadRequest(c, "category id must not be empty")
		return
	}

	category := models.Category{
		ID:    req.ID,
		Name:  req.Name,
		Color: req.Color,
		Icon:  req.Icon,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Category
		if err := tx.First(&existing, "id = ?", category.ID).Error; err == nil {
			return gorm.ErrDuplicatedKey
		}
		return tx.Create(&category).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			BadRequest(c, "category already exists: "+category.ID)
			return
		}
		BadRequest(c, SafeErrorMessage(err, "create category failed"))
		return
	}

	Created(c, category)
}
