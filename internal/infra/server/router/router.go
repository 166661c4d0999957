// Package router sets up the HTTP routing for the application.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/finanzas-pro/backend/internal/integration/entrypoint/controller"
	"github.com/finanzas-pro/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	transactionController  *controller.TransactionController
	fixedExpenseController *controller.FixedExpenseController
	categoryController     *controller.CategoryController
	dashboardController    *controller.DashboardController
	streamController       *controller.StreamController
	mutationRateLimiter    *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
	allowedOrigins         []string
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	transactionController *controller.TransactionController,
	fixedExpenseController *controller.FixedExpenseController,
	categoryController *controller.CategoryController,
	dashboardController *controller.DashboardController,
	streamController *controller.StreamController,
	mutationRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	allowedOrigins []string,
) *Router {
	return &Router{
		healthController:       healthController,
		transactionController:  transactionController,
		fixedExpenseController: fixedExpenseController,
		categoryController:     categoryController,
		dashboardController:    dashboardController,
		streamController:       streamController,
		mutationRateLimiter:    mutationRateLimiter,
		authMiddleware:         authMiddleware,
		allowedOrigins:         allowedOrigins,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	// Logger and recovery
	r.engine = gin.Default()
	r.engine.Use(cors.New(r.corsConfig()))

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

func (r *Router) corsConfig() cors.Config {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Last-Event-ID"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(r.allowedOrigins) == 0 {
		config.AllowAllOrigins = true
		config.AllowCredentials = false
	} else {
		config.AllowOrigins = r.allowedOrigins
	}
	return config
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Every route requires a
// bearer token; mutations also go through the rate limiter.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	v1.Use(r.authMiddleware.Authenticate())

	limit := r.mutationRateLimiter.Middleware()

	transactions := v1.Group("/transactions")
	{
		transactions.GET("", r.transactionController.List)
		transactions.GET("/export", r.transactionController.Export)
		transactions.POST("", limit, r.transactionController.Create)
		transactions.PUT("/:id", limit, r.transactionController.Update)
		transactions.PATCH("/:id/toggle-status", limit, r.transactionController.ToggleStatus)
		transactions.DELETE("/:id", limit, r.transactionController.Delete)
	}

	fixedExpenses := v1.Group("/fixed-expenses")
	{
		fixedExpenses.GET("", r.fixedExpenseController.List)
		fixedExpenses.GET("/status", r.fixedExpenseController.Status)
		fixedExpenses.POST("", limit, r.fixedExpenseController.Create)
		fixedExpenses.PATCH("/:id", limit, r.fixedExpenseController.Update)
		fixedExpenses.DELETE("/:id", limit, r.fixedExpenseController.Delete)
		fixedExpenses.POST("/:id/pay", limit, r.fixedExpenseController.Pay)
	}

	categories := v1.Group("/categories")
	{
		categories.GET("", r.categoryController.List)
		categories.POST("", limit, r.categoryController.Add)
		categories.DELETE("/:type/:name", limit, r.categoryController.Remove)
	}

	dashboard := v1.Group("/dashboard")
	{
		dashboard.GET("/summary", r.dashboardController.GetSummary)
		dashboard.GET("/evolution", r.dashboardController.GetEvolution)
		dashboard.GET("/breakdown", r.dashboardController.GetBreakdown)
		dashboard.GET("/calendar", r.dashboardController.GetCalendar)
		dashboard.POST("/compare", r.dashboardController.Compare)
		dashboard.GET("/year-over-year", r.dashboardController.GetYearOverYear)
		dashboard.GET("/data-range", r.dashboardController.GetDataRange)
	}

	v1.GET("/stream", r.streamController.Stream)
}
