// Package main is the entry point for the PocketFin API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/pocketfin/backend/config"
	"github.com/pocketfin/backend/internal/application/usecase/auth"
	"github.com/pocketfin/backend/internal/application/usecase/budget"
	"github.com/pocketfin/backend/internal/application/usecase/category"
	"github.com/pocketfin/backend/internal/application/usecase/pocket"
	"github.com/pocketfin/backend/internal/application/usecase/preference"
	"github.com/pocketfin/backend/internal/application/usecase/recurring"
	"github.com/pocketfin/backend/internal/application/usecase/report"
	"github.com/pocketfin/backend/internal/application/usecase/transaction"
	"github.com/pocketfin/backend/internal/infra/db"
	"github.com/pocketfin/backend/internal/infra/server/router"
	"github.com/pocketfin/backend/internal/integration/adapters"
	"github.com/pocketfin/backend/internal/integration/entrypoint/controller"
	"github.com/pocketfin/backend/internal/integration/entrypoint/middleware"
	"github.com/pocketfin/backend/internal/integration/persistence"
	"github.com/pocketfin/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting PocketFin API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.CategoryModel{},
		&model.PocketModel{},
		&model.TransactionModel{},
		&model.BudgetModel{},
		&model.RecurringTransactionModel{},
		&model.UserPreferencesModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Initialize Redis client for rate limiting. Failures surface at request
	// time and the limiter fails open, so startup does not block on Redis.
	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		slog.Error("Invalid Redis URL", "error", err)
		os.Exit(1)
	}
	redisClient := redis.NewClient(redisOpts)
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Failed to close Redis client", "error", err)
		}
	}()

	// Create repositories
	txManager := persistence.NewTxManager(database.DB())
	userRepo := persistence.NewUserRepository(database.DB())
	tokenRepo := persistence.NewTokenRepository(database.DB())
	transactionRepo := persistence.NewTransactionRepository(database.DB())
	categoryRepo := persistence.NewCategoryRepository(database.DB())
	pocketRepo := persistence.NewPocketRepository(database.DB())
	budgetRepo := persistence.NewBudgetRepository(database.DB())
	recurringRepo := persistence.NewRecurringRepository(database.DB())
	preferenceRepo := persistence.NewPreferenceRepository(database.DB())

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)

	// Create use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, pocketRepo, passwordService, tokenService, txManager)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo, pocketRepo, txManager)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo, pocketRepo, txManager)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, pocketRepo, txManager)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	monthSummaryUseCase := transaction.NewGetMonthSummaryUseCase(transactionRepo)

	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, transactionRepo, budgetRepo, recurringRepo, pocketRepo, txManager)

	listPocketsUseCase := pocket.NewListPocketsUseCase(pocketRepo)
	createPocketUseCase := pocket.NewCreatePocketUseCase(pocketRepo, txManager)
	updatePocketUseCase := pocket.NewUpdatePocketUseCase(pocketRepo, txManager)
	deletePocketUseCase := pocket.NewDeletePocketUseCase(pocketRepo, transactionRepo, txManager)
	transferUseCase := pocket.NewTransferUseCase(pocketRepo, txManager)

	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, categoryRepo)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)
	budgetSummaryUseCase := budget.NewGetBudgetSummaryUseCase(budgetRepo, transactionRepo)

	listRecurringUseCase := recurring.NewListRecurringUseCase(recurringRepo)
	createRecurringUseCase := recurring.NewCreateRecurringUseCase(recurringRepo, categoryRepo)
	updateRecurringUseCase := recurring.NewUpdateRecurringUseCase(recurringRepo, categoryRepo)
	deleteRecurringUseCase := recurring.NewDeleteRecurringUseCase(recurringRepo)
	toggleRecurringUseCase := recurring.NewToggleRecurringUseCase(recurringRepo)
	upcomingUseCase := recurring.NewGetUpcomingUseCase(recurringRepo)

	reportSummaryUseCase := report.NewGetSummaryUseCase(transactionRepo)
	trendsUseCase := report.NewGetTrendsUseCase(transactionRepo)
	breakdownUseCase := report.NewGetCategoryBreakdownUseCase(transactionRepo)
	exportUseCase := report.NewExportTransactionsUseCase(transactionRepo)

	getPreferencesUseCase := preference.NewGetPreferencesUseCase(preferenceRepo)
	updatePreferencesUseCase := preference.NewUpdatePreferencesUseCase(preferenceRepo)

	// Create controllers and middleware
	healthController := controller.NewHealthController(database.DB())
	authController := controller.NewAuthController(registerUseCase, loginUseCase, refreshUseCase, logoutUseCase)
	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		listTransactionsUseCase,
		monthSummaryUseCase,
	)
	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)
	pocketController := controller.NewPocketController(
		listPocketsUseCase,
		createPocketUseCase,
		updatePocketUseCase,
		deletePocketUseCase,
		transferUseCase,
	)
	budgetController := controller.NewBudgetController(
		listBudgetsUseCase,
		createBudgetUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
		budgetSummaryUseCase,
	)
	recurringController := controller.NewRecurringController(
		listRecurringUseCase,
		createRecurringUseCase,
		updateRecurringUseCase,
		deleteRecurringUseCase,
		toggleRecurringUseCase,
		upcomingUseCase,
	)
	reportController := controller.NewReportController(
		reportSummaryUseCase,
		trendsUseCase,
		breakdownUseCase,
		exportUseCase,
		budgetSummaryUseCase,
	)
	preferenceController := controller.NewPreferenceController(getPreferencesUseCase, updatePreferencesUseCase)

	loginRateLimiter := middleware.NewRateLimiter(redisClient)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Setup router
	r := router.NewRouter(
		healthController,
		authController,
		transactionController,
		categoryController,
		pocketController,
		budgetController,
		recurringController,
		reportController,
		preferenceController,
		loginRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
