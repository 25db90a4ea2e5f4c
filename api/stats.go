package api

import (
	"errors"
	"fmt"

	"expenses/database"
	"expenses/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// StatsHandler serves the aggregated statistics endpoints.
type StatsHandler struct{}

// NewStatsHandler creates a statistics handler.
func NewStatsHandler() *StatsHandler {
	return &StatsHandler{}
}

// CategoryStat is one by-category aggregation bucket joined with its
// category's display metadata.
type CategoryStat struct {
	CategoryID    string  `json:"category_id"`
	CategoryName  string  `json:"category_name"`
	CategoryIcon  string  `json:"category_icon"`
	CategoryColor string  `json:"category_color"`
	Total         float64 `json:"total"`
}

// TrendPoint is one monthly bucket of the spending trend.
type TrendPoint struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// French three-letter month abbreviations, 1-indexed.
var monthAbbrevFR = [13]string{
	"", "jan", "fév", "mar", "avr", "mai", "jun",
	"jul", "aoû", "sep", "oct", "nov", "déc",
}

// trendWindow limits the monthly trend to the most recent buckets.
const trendWindow = 6

// ByCategory sums expense amounts per category.
// @Summary Spending totals per category
// @Description Groups expenses by category and sums amounts, with the same optional date-range filters as the expense list. Categories without matching expenses are omitted.
// @Tags stats
// @Produce json
// @Param start_date query string false "inclusive lower bound (2024-01-01)"
// @Param end_date query string false "inclusive upper bound (2024-12-31)"
// @Success 200 {array} CategoryStat
// @Failure 400 {object} ErrorResponse
// @Router /api/stats/by-category [get]
func (h *StatsHandler) ByCategory(c *gin.Context) {
	query := database.DB.Model(&models.Expense{}).
		Select("category_id, SUM(amount) AS total").
		Group("category_id")

	if s := c.Query("start_date"); s != "" {
		start, err := models.ParseDate(s)
		if err != nil {
			BadRequest(c, err.Error())
			return
		}
		query = query.Where("date >= ?", start.String())
	}
	if s := c.Query("end_date"); s != "" {
		end, err := models.ParseDate(s)
		if err != nil {
			BadRequest(c, err.Error())
			return
		}
		query = query.Where("date <= ?", end.String())
	}

	type categoryTotal struct {
		CategoryID string
		Total      float64
	}
	var totals []categoryTotal
	if err := query.Scan(&totals).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "query failed"))
		return
	}

	stats := make([]CategoryStat, 0, len(totals))
	for _, t := range totals {
		var cat models.Category
		if err := database.DB.First(&cat, "id = ?", t.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Orphaned bucket, skip it.
				continue
			}
			InternalError(c, SafeErrorMessage(err, "query failed"))
			return
		}
		stats = append(stats, CategoryStat{
			CategoryID:    t.CategoryID,
			CategoryName:  cat.Name,
			CategoryIcon:  cat.Icon,
			CategoryColor: cat.Color,
			Total:         t.Total,
		})
	}

	OK(c, stats)
}

// MonthlyTrend returns per-month spending totals.
// @Summary Monthly spending trend
// @Description Groups all expenses by calendar month of their date, ascending, and returns at most the last 6 buckets. Labels use French month abbreviations, e.g. "mar 2024".
// @Tags stats
// @Produce json
// @Success 200 {array} TrendPoint
// @Router /api/stats/monthly-trend [get]
func (h *StatsHandler) MonthlyTrend(c *gin.Context) {
	type monthlyBucket struct {
		Year  int
		Month int
		Total float64
	}

	var buckets []monthlyBucket
	err := database.DB.Model(&models.Expense{}).
		Select("CAST(strftime('%Y', date) AS INTEGER) AS year, CAST(strftime('%m', date) AS INTEGER) AS month, SUM(amount) AS total").
		Group("year, month").
		Order("year, month").
		Scan(&buckets).Error
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "query failed"))
		return
	}

	if len(buckets) > trendWindow {
		buckets = buckets[len(buckets)-trendWindow:]
	}

	trend := make([]TrendPoint, 0, len(buckets))
	for _, b := range buckets {
		trend = append(trend, TrendPoint{
			Month:  fmt.Sprintf("%s %d", monthAbbrevFR[b.Month], b.Year),
			Amount: b.Total,
		})
	}

	OK(c, trend)
}
