package api

import (
	"fmt"
	"testing"
	"time"

	"expenses/database"
	"expenses/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func budgetRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewBudgetHandler()
	router.GET("/budgets", h.List)
	router.POST("/budgets", h.Upsert)
	router.GET("/budgets/status", h.Status)
	return router
}

func TestBudgetHandler_Upsert_InsertThenUpdate(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	router := budgetRouter()

	w := performRequest(router, "POST", "/budgets", `{"category_id":"transport","amount":100,"month":5,"year":2024}`)
	require.Equal(t, 201, w.Code)
	var first models.Budget
	require.NoError(t, decodeBody(w, &first))
	assert.NotZero(t, first.ID)
	assert.Equal(t, 100.0, first.Amount)

	// Same triple again: updated in place, same row and id.
	w = performRequest(router, "POST", "/budgets", `{"category_id":"transport","amount":150,"month":5,"year":2024}`)
	require.Equal(t, 201, w.Code)
	var second models.Budget
	require.NoError(t, decodeBody(w, &second))
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 150.0, second.Amount)

	var count int64
	database.DB.Model(&models.Budget{}).
		Where("category_id = ? AND month = ? AND year = ?", "transport", 5, 2024).
		Count(&count)
	assert.Equal(t, int64(1), count)

	w = performRequest(router, "GET", "/budgets?month=5&year=2024", "")
	require.Equal(t, 200, w.Code)
	var budgets []models.Budget
	require.NoError(t, decodeBody(w, &budgets))
	require.Len(t, budgets, 1)
	assert.Equal(t, 150.0, budgets[0].Amount)
}

func TestBudgetHandler_Upsert_DefaultsToCurrentPeriod(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	router := budgetRouter()

	w := performRequest(router, "POST", "/budgets", `{"category_id":"loisirs","amount":80}`)
	require.Equal(t, 201, w.Code)
	var budget models.Budget
	require.NoError(t, decodeBody(w, &budget))

	now := time.Now()
	assert.Equal(t, int(now.Month()), budget.Month)
	assert.Equal(t, now.Year(), budget.Year)

	// The budget list defaults to the same period.
	w = performRequest(router, "GET", "/budgets", "")
	require.Equal(t, 200, w.Code)
	var budgets []models.Budget
	require.NoError(t, decodeBody(w, &budgets))
	assert.Len(t, budgets, 1)
}

func TestBudgetHandler_Upsert_UnknownCategoryAccepted(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	// Category existence is deliberately not validated for budgets.
	w := performRequest(budgetRouter(), "POST", "/budgets", `{"category_id":"fantome","amount":50,"month":5,"year":2024}`)

	assert.Equal(t, 201, w.Code)
}

func TestBudgetHandler_Upsert_InvalidInput(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	router := budgetRouter()

	w := performRequest(router, "POST", "/budgets", `{"category_id":"transport","month":5,"year":2024}`)
	assert.Equal(t, 400, w.Code)

	w = performRequest(router, "POST", "/budgets", `{"category_id":"transport","amount":50,"month":13,"year":2024}`)
	assert.Equal(t, 400, w.Code)
}

func TestBudgetHandler_List_InvalidPeriod(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	router := budgetRouter()

	w := performRequest(router, "GET", "/budgets?month=0", "")
	assert.Equal(t, 400, w.Code)

	w = performRequest(router, "GET", "/budgets?year=abcd", "")
	assert.Equal(t, 400, w.Code)
}

func TestBudgetHandler_Status(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	router := budgetRouter()
	now := time.Now()

	w := performRequest(router, "POST", "/budgets", `{"category_id":"alimentation","amount":100,"month":3,"year":2024}`)
	require.Equal(t, 201, w.Code)

	mustCreateExpense(t, "alimentation", "2024-03-15", 12.5, now)
	mustCreateExpense(t, "alimentation", "2024-03-20", 7.5, now)
	// Outside the budget period: ignored.
	mustCreateExpense(t, "alimentation", "2024-04-01", 100, now)
	// Other category: ignored.
	mustCreateExpense(t, "transport", "2024-03-10", 40, now)

	w = performRequest(router, "GET", "/budgets/status?month=3&year=2024", "")
	require.Equal(t, 200, w.Code)

	var status []BudgetStatus
	require.NoError(t, decodeBody(w, &status))
	require.Len(t, status, 1)
	assert.Equal(t, "alimentation", status[0].CategoryID)
	assert.Equal(t, "Alimentation", status[0].CategoryName)
	assert.Equal(t, 100.0, status[0].Budget)
	assert.Equal(t, 20.0, status[0].Spent)
	assert.Equal(t, 20.0, status[0].Percentage)
}

func TestBudgetHandler_Status_ZeroBudgetAmount(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	router := budgetRouter()
	now := time.Now()

	w := performRequest(router, "POST", "/budgets", `{"category_id":"transport","amount":0,"month":3,"year":2024}`)
	require.Equal(t, 201, w.Code)
	mustCreateExpense(t, "transport", "2024-03-10", 40, now)

	w = performRequest(router, "GET", "/budgets/status?month=3&year=2024", "")
	require.Equal(t, 200, w.Code)

	var status []BudgetStatus
	require.NoError(t, decodeBody(w, &status))
	require.Len(t, status, 1)
	assert.Equal(t, 40.0, status[0].Spent)
	// Division-by-zero guard.
	assert.Equal(t, 0.0, status[0].Percentage)
}

func TestBudgetHandler_Status_MissingCategoryFallback(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	router := budgetRouter()

	w := performRequest(router, "POST", "/budgets", `{"category_id":"fantome","amount":60,"month":3,"year":2024}`)
	require.Equal(t, 201, w.Code)

	w = performRequest(router, "GET", "/budgets/status?month=3&year=2024", "")
	require.Equal(t, 200, w.Code)

	var status []BudgetStatus
	require.NoError(t, decodeBody(w, &status))
	require.Len(t, status, 1)
	assert.Equal(t, "Unknown", status[0].CategoryName)
	assert.Equal(t, "📦", status[0].CategoryIcon)
	assert.Equal(t, 0.0, status[0].Spent)
}

func TestBudgetHandler_Status_NoBudgets(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	w := performRequest(budgetRouter(), "GET", fmt.Sprintf("/budgets/status?month=3&year=%d", 2024), "")

	require.Equal(t, 200, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}
