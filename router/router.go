package router

import (
	"expenses/api"
	"expenses/config"
	_ "expenses/docs"
	"expenses/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter builds the gin engine with all routes.
func SetupRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// The SPA frontend is served separately; allow it from anywhere.
	r.Use(cors.Default())

	// Swagger docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v := r.Group("/api")
	if cfg.RateLimit.Enabled {
		v.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	{
		categoryHandler := api.NewCategoryHandler()
		v.GET("/categories", categoryHandler.List)
		v.POST("/categories", categoryHandler.Create)

		expenseHandler := api.NewExpenseHandler()
		expenses := v.Group("/expenses")
		{
			expenses.GET("", expenseHandler.List)
			expenses.POST("", expenseHandler.Create)
			expenses.DELETE("/:id", expenseHandler.Delete)
		}

		statsHandler := api.NewStatsHandler()
		stats := v.Group("/stats")
		{
			stats.GET("/by-category", statsHandler.ByCategory)
			stats.GET("/monthly-trend", statsHandler.MonthlyTrend)
		}

		budgetHandler := api.NewBudgetHandler()
		budgets := v.Group("/budgets")
		{
			budgets.GET("", budgetHandler.List)
			budgets.POST("", budgetHandler.Upsert)
			budgets.GET("/status", budgetHandler.Status)
		}

		exportHandler := api.NewExportHandler()
		export := v.Group("/export")
		{
			export.GET("/csv", exportHandler.ExportCSV)
			export.GET("/json", exportHandler.ExportJSON)
			export.GET("/excel", exportHandler.ExportExcel)
		}
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}
