// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pocketfin/backend/internal/integration/entrypoint/controller"
	"github.com/pocketfin/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	transactionController *controller.TransactionController
	categoryController    *controller.CategoryController
	pocketController      *controller.PocketController
	budgetController      *controller.BudgetController
	recurringController   *controller.RecurringController
	reportController      *controller.ReportController
	preferenceController  *controller.PreferenceController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	transactionController *controller.TransactionController,
	categoryController *controller.CategoryController,
	pocketController *controller.PocketController,
	budgetController *controller.BudgetController,
	recurringController *controller.RecurringController,
	reportController *controller.ReportController,
	preferenceController *controller.PreferenceController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		transactionController: transactionController,
		categoryController:    categoryController,
		pocketController:      pocketController,
		budgetController:      budgetController,
		recurringController:   recurringController,
		reportController:      reportController,
		preferenceController:  preferenceController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			auth.POST("/refresh", r.authController.Refresh)
			auth.POST("/logout", r.authController.Logout)
		}

		transactions := v1.Group("/transactions")
		transactions.Use(r.authMiddleware.Authenticate())
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.transactionController.Create)
			transactions.GET("/summary", r.transactionController.Summary)
			transactions.PATCH("/:id", r.transactionController.Update)
			transactions.DELETE("/:id", r.transactionController.Delete)
		}

		categories := v1.Group("/categories")
		categories.Use(r.authMiddleware.Authenticate())
		{
			categories.GET("", r.categoryController.List)
			categories.POST("", r.categoryController.Create)
			categories.PATCH("/:id", r.categoryController.Update)
			categories.DELETE("/:id", r.categoryController.Delete)
		}

		pockets := v1.Group("/pockets")
		pockets.Use(r.authMiddleware.Authenticate())
		{
			pockets.GET("", r.pocketController.List)
			pockets.POST("", r.pocketController.Create)
			pockets.POST("/transfer", r.pocketController.Transfer)
			pockets.PATCH("/:id", r.pocketController.Update)
			pockets.DELETE("/:id", r.pocketController.Delete)
		}

		budgets := v1.Group("/budgets")
		budgets.Use(r.authMiddleware.Authenticate())
		{
			budgets.GET("", r.budgetController.List)
			budgets.POST("", r.budgetController.Create)
			budgets.GET("/summary", r.budgetController.Summary)
			budgets.PATCH("/:id", r.budgetController.Update)
			budgets.DELETE("/:id", r.budgetController.Delete)
		}

		recurring := v1.Group("/recurring")
		recurring.Use(r.authMiddleware.Authenticate())
		{
			recurring.GET("", r.recurringController.List)
			recurring.POST("", r.recurringController.Create)
			recurring.GET("/upcoming", r.recurringController.Upcoming)
			recurring.PATCH("/:id", r.recurringController.Update)
			recurring.DELETE("/:id", r.recurringController.Delete)
			recurring.POST("/:id/toggle", r.recurringController.Toggle)
		}

		reports := v1.Group("/reports")
		reports.Use(r.authMiddleware.Authenticate())
		{
			reports.GET("/summary", r.reportController.Summary)
			reports.GET("/trends", r.reportController.Trends)
			reports.GET("/categories", r.reportController.Categories)
			reports.GET("/budgets", r.reportController.Budgets)
			reports.POST("/export", r.reportController.Export)
		}

		preferences := v1.Group("/preferences")
		preferences.Use(r.authMiddleware.Authenticate())
		{
			preferences.GET("", r.preferenceController.Get)
			preferences.PUT("", r.preferenceController.Update)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
