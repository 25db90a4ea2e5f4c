package api

import (
	"errors"
	"strconv"

	"expenses/database"
	"expenses/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ExpenseHandler serves the expense endpoints.
type ExpenseHandler struct{}

// NewExpenseHandler creates an expense handler.
func NewExpenseHandler() *ExpenseHandler {
	return &ExpenseHandler{}
}

// CreateExpenseRequest is the body for creating an expense. Amount is a
// pointer so zero and negative amounts pass while a missing field does not.
type CreateExpenseRequest struct {
	Amount      *float64 `json:"amount" binding:"required" example:"12.5"`
	Description string   `json:"description" binding:"required,max=200" example:"Lunch"`
	Category    string   `json:"category" binding:"required,max=50" example:"alimentation"`
	Date        string   `json:"date" binding:"required" example:"2024-03-15"`
}

// ExpenseListRequest carries the optional list filters.
type ExpenseListRequest struct {
	Category  string `form:"category" example:"alimentation"`
	StartDate string `form:"start_date" example:"2024-01-01"`
	EndDate   string `form:"end_date" example:"2024-12-31"`
}

// List returns expenses with optional filters.
// @Summary List expenses
// @Description Returns expenses, newest insertion first. Filters combine independently: category (the value "all" disables the filter), start_date and end_date (inclusive bounds on the expense date).
// @Tags expenses
// @Produce json
// @Param category query string false "category id, or all"
// @Param start_date query string false "inclusive lower bound (2024-01-01)"
// @Param end_date query string false "inclusive upper bound (2024-12-31)"
// @Success 200 {array} models.Expense
// @Failure 400 {object} ErrorResponse
// @Router /api/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	var req ExpenseListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "invalid query parameters"))
		return
	}

	query := database.DB.Model(&models.Expense{})

	if req.Category != "" && req.Category != models.CategoryFilterAll {
		query = query.Where("category_id = ?", req.Category)
	}
	if req.StartDate != "" {
		start, err := models.ParseDate(req.StartDate)
		if err != nil {
			BadRequest(c, err.Error())
			return
		}
		query = query.Where("date >= ?", start.String())
	}
	if req.EndDate != "" {
		end, err := models.ParseDate(req.EndDate)
		if err != nil {
			BadRequest(c, err.Error())
			return
		}
		query = query.Where("date <= ?", end.String())
	}

	expenses := make([]models.Expense, 0)
	if err := query.Order("timestamp DESC").Find(&expenses).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "query failed"))
		return
	}

	OK(c, expenses)
}

// Create records a new expense.
// @Summary Create an expense
// @Description Records an expense. The category must reference an existing category; the date uses the YYYY-MM-DD format. The insertion timestamp is assigned by the server.
// @Tags expenses
// @Accept json
// @Produce json
// @Param request body CreateExpenseRequest true "expense"
// @Success 201 {object} models.Expense
// @Failure 400 {object} ErrorResponse
// @Router /api/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "invalid request body"))
		return
	}

	date, err := models.ParseDate(req.Date)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	expense := models.Expense{
		Amount:      *req.Amount,
		Description: req.Description,
		CategoryID:  req.Category,
		Date:        date,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var cat models.Category
		if err := tx.First(&cat, "id = ?", expense.CategoryID).Error; err != nil {
			return err
		}
		return tx.Create(&expense).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			BadRequest(c, "unknown category: "+expense.CategoryID)
			return
		}
		BadRequest(c, SafeErrorMessage(err, "create expense failed"))
		return
	}

	Created(c, expense)
}

// Delete removes an expense by id.
// @Summary Delete an expense
// @Description Removes the expense with the given id. The only endpoint with a not-found contract.
// @Tags expenses
// @Produce json
// @Param id path int true "expense id"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "invalid expense id")
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var expense models.Expense
		if err := tx.First(&expense, uint(id)).Error; err != nil {
			return err
		}
		return tx.Delete(&expense).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "expense not found")
			return
		}
		InternalError(c, SafeErrorMessage(err, "delete expense failed"))
		return
	}

	Message(c, "expense deleted")
}
