package api

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"expenses/database"
	"expenses/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BudgetHandler serves the monthly budget endpoints.
type BudgetHandler struct{}

// NewBudgetHandler creates a budget handler.
func NewBudgetHandler() *BudgetHandler {
	return &BudgetHandler{}
}

// UpsertBudgetRequest is the body for creating or updating a budget. Month
// and year default to the current calendar month when omitted.
type UpsertBudgetRequest struct {
	CategoryID string   `json:"category_id" binding:"required,max=50" example:"transport"`
	Amount     *float64 `json:"amount" binding:"required" example:"150"`
	Month      int      `json:"month" binding:"omitempty,min=1,max=12" example:"5"`
	Year       int      `json:"year" binding:"omitempty,min=1000,max=9999" example:"2024"`
}

// BudgetStatus is the spent-vs-budgeted report for one budget row.
type BudgetStatus struct {
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"category_name"`
	CategoryIcon string  `json:"category_icon"`
	Budget       float64 `json:"budget"`
	Spent        float64 `json:"spent"`
	Percentage   float64 `json:"percentage"`
}

// periodFromQuery reads the optional month/year query parameters, defaulting
// both to the current calendar values.
func periodFromQuery(c *gin.Context) (month, year int, err error) {
	now := time.Now()
	month, year = int(now.Month()), now.Year()

	if s := c.Query("month"); s != "" {
		month, err = strconv.Atoi(s)
		if err != nil || month < 1 || month > 12 {
			return 0, 0, fmt.Errorf("invalid month %q", s)
		}
	}
	if s := c.Query("year"); s != "" {
		year, err = strconv.Atoi(s)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid year %q", s)
		}
	}
	return month, year, nil
}

// List returns the budgets for one month.
// @Summary List budgets
// @Description Returns all budget rows for the given month and year, defaulting to the current calendar month.
// @Tags budgets
// @Produce json
// @Param month query int false "month 1-12, default current"
// @Param year query int false "4-digit year, default current"
// @Success 200 {array} models.Budget
// @Failure 400 {object} ErrorResponse
// @Router /api/budgets [get]
func (h *BudgetHandler) List(c *gin.Context) {
	month, year, err := periodFromQuery(c)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	budgets := make([]models.Budget, 0)
	if err := database.DB.Where("month = ? AND year = ?", month, year).Find(&budgets).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "query failed"))
		return
	}

	OK(c, budgets)
}

// Upsert creates a budget or updates an existing one in place.
// @Summary Create or update a budget
// @Description Budgets are keyed by (category_id, month, year). When a row for the triple exists its amount is overwritten, keeping the same id; otherwise a new row is inserted.
// @Tags budgets
// @Accept json
// @Produce json
// @Param request body UpsertBudgetRequest true "budget"
// @Success 201 {object} models.Budget
// @Failure 400 {object} ErrorResponse
// @Router /api/budgets [post]
func (h *BudgetHandler) Upsert(c *gin.Context) {
	var req UpsertBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "invalid request body"))
		return
	}

	now := time.Now()
	if req.Month == 0 {
		req.Month = int(now.Month())
	}
	if req.Year == 0 {
		req.Year = now.Year()
	}

	var budget models.Budget
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("category_id = ? AND month = ? AND year = ?", req.CategoryID, req.Month, req.Year).
			First(&budget).Error
		switch {
		case err == nil:
			// Update in place, same row and id.
			budget.Amount = *req.Amount
			return tx.Model(&budget).Update("amount", budget.Amount).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			budget = models.Budget{
				CategoryID: req.CategoryID,
				Amount:     *req.Amount,
				Month:      req.Month,
				Year:       req.Year,
			}
			return tx.Create(&budget).Error
		default:
			return err
		}
	})
	if err != nil {
		BadRequest(c, SafeErrorMessage(err, "save budget failed"))
		return
	}

	Created(c, budget)
}

// Status reports spending against each budget of one month.
// @Summary Budget status
// @Description For every budget row of the period, sums the matching category's expenses in that calendar month and computes the percentage used. Categories without a budget row are absent; a missing category falls back to an Unknown label.
// @Tags budgets
// @Produce json
// @Param month query int false "month 1-12, default current"
// @Param year query int false "4-digit year, default current"
// @Success 200 {array} BudgetStatus
// @Failure 400 {object} ErrorResponse
// @Router /api/budgets/status [get]
func (h *BudgetHandler) Status(c *gin.Context) {
	month, year, err := periodFromQuery(c)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	var budgets []models.Budget
	if err := database.DB.Where("month = ? AND year = ?", month, year).Find(&budgets).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "query failed"))
		return
	}

	status := make([]BudgetStatus, 0, len(budgets))
	for _, budget := range budgets {
		var spent float64
		err := database.DB.Model(&models.Expense{}).
			Select("COALESCE(SUM(amount), 0)").
			Where("category_id = ?", budget.CategoryID).
			Where("strftime('%Y', date) = ?", fmt.Sprintf("%04d", year)).
			Where("strftime('%m', date) = ?", fmt.Sprintf("%02d", month)).
			Scan(&spent).Error
		if err != nil {
			InternalError(c, SafeErrorMessage(err, "query failed"))
			return
		}

		name, icon := models.UnknownCategoryName, models.UnknownCategoryIcon
		var cat models.Category
		if err := database.DB.First(&cat, "id = ?", budget.CategoryID).Error; err == nil {
			name, icon = cat.Name, cat.Icon
		}

		percentage := 0.0
		if budget.Amount > 0 {
			percentage = spent / budget.Amount * 100
		}

		status = append(status, BudgetStatus{
			CategoryID:   budget.CategoryID,
			CategoryName: name,
			CategoryIcon: icon,
			Budget:       budget.Amount,
			Spent:        spent,
			Percentage:   percentage,
		})
	}

	OK(c, status)
}
