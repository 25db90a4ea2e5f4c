package api

import (
	"testing"
	"time"

	"expenses/database"
	"expenses/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewStatsHandler()
	router.GET("/stats/by-category", h.ByCategory)
	router.GET("/stats/monthly-trend", h.MonthlyTrend)
	return router
}

func TestStatsHandler_ByCategory(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	now := time.Now()
	mustCreateExpense(t, "alimentation", "2024-03-15", 12.5, now)
	mustCreateExpense(t, "alimentation", "2024-03-20", 7.5, now)
	mustCreateExpense(t, "transport", "2024-03-18", 30, now)

	w := performRequest(statsRouter(), "GET", "/stats/by-category", "")
	require.Equal(t, 200, w.Code)

	var stats []CategoryStat
	require.NoError(t, decodeBody(w, &stats))
	require.Len(t, stats, 2)

	byID := make(map[string]CategoryStat)
	for _, s := range stats {
		byID[s.CategoryID] = s
	}
	assert.Equal(t, 20.0, byID["alimentation"].Total)
	assert.Equal(t, "Alimentation", byID["alimentation"].CategoryName)
	assert.Equal(t, "#FF6B6B", byID["alimentation"].CategoryColor)
	assert.Equal(t, 30.0, byID["transport"].Total)
}

func TestStatsHandler_ByCategory_DateRange(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	now := time.Now()
	mustCreateExpense(t, "alimentation", "2024-01-15", 10, now)
	mustCreateExpense(t, "alimentation", "2024-03-15", 25, now)

	w := performRequest(statsRouter(), "GET", "/stats/by-category?start_date=2024-03-01&end_date=2024-03-31", "")
	require.Equal(t, 200, w.Code)

	var stats []CategoryStat
	require.NoError(t, decodeBody(w, &stats))
	require.Len(t, stats, 1)
	assert.Equal(t, 25.0, stats[0].Total)
}

func TestStatsHandler_ByCategory_OrphanBucketOmitted(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	now := time.Now()
	mustCreateExpense(t, "alimentation", "2024-03-15", 10, now)
	// Row pointing at a category that no longer exists.
	orphan := mustCreateExpense(t, "transport", "2024-03-16", 99, now)
	require.NoError(t, database.DB.Delete(&models.Category{ID: orphan.CategoryID}).Error)

	w := performRequest(statsRouter(), "GET", "/stats/by-category", "")
	require.Equal(t, 200, w.Code)

	var stats []CategoryStat
	require.NoError(t, decodeBody(w, &stats))
	require.Len(t, stats, 1)
	assert.Equal(t, "alimentation", stats[0].CategoryID)
}

func TestStatsHandler_ByCategory_MalformedDate(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	w := performRequest(statsRouter(), "GET", "/stats/by-category?start_date=garbage", "")

	assert.Equal(t, 400, w.Code)
}

func TestStatsHandler_ByCategory_Empty(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	w := performRequest(statsRouter(), "GET", "/stats/by-category", "")

	require.Equal(t, 200, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestStatsHandler_MonthlyTrend(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	now := time.Now()
	// Eight monthly buckets spanning a year boundary; only the last six
	// may be returned.
	dates := []string{
		"2023-10-05", "2023-11-05", "2023-12-05", "2024-01-05",
		"2024-02-05", "2024-03-05", "2024-04-05", "2024-05-05",
	}
	for i, d := range dates {
		mustCreateExpense(t, "alimentation", d, float64((i+1)*10), now)
	}

	w := performRequest(statsRouter(), "GET", "/stats/monthly-trend", "")
	require.Equal(t, 200, w.Code)

	var trend []TrendPoint
	require.NoError(t, decodeBody(w, &trend))
	require.Len(t, trend, 6)

	// Chronologically ascending, starting at the third bucket.
	assert.Equal(t, "déc 2023", trend[0].Month)
	assert.Equal(t, 30.0, trend[0].Amount)
	assert.Equal(t, "jan 2024", trend[1].Month)
	assert.Equal(t, "mai 2024", trend[5].Month)
	assert.Equal(t, 80.0, trend[5].Amount)
}

func TestStatsHandler_MonthlyTrend_SumsWithinMonth(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	now := time.Now()
	mustCreateExpense(t, "alimentation", "2024-03-01", 10, now)
	mustCreateExpense(t, "transport", "2024-03-20", 15, now)

	w := performRequest(statsRouter(), "GET", "/stats/monthly-trend", "")
	require.Equal(t, 200, w.Code)

	var trend []TrendPoint
	require.NoError(t, decodeBody(w, &trend))
	require.Len(t, trend, 1)
	assert.Equal(t, "mar 2024", trend[0].Month)
	assert.Equal(t, 25.0, trend[0].Amount)
}

func TestStatsHandler_MonthlyTrend_Empty(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	w := performRequest(statsRouter(), "GET", "/stats/monthly-trend", "")

	require.Equal(t, 200, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}
