// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finanzas-pro/backend/config"
	"github.com/finanzas-pro/backend/internal/application/adapter"
	"github.com/finanzas-pro/backend/internal/application/usecase/category"
	"github.com/finanzas-pro/backend/internal/application/usecase/dashboard"
	fixedexpense "github.com/finanzas-pro/backend/internal/application/usecase/fixed_expense"
	"github.com/finanzas-pro/backend/internal/application/usecase/snapshot"
	"github.com/finanzas-pro/backend/internal/application/usecase/transaction"
	"github.com/finanzas-pro/backend/internal/infra/server/router"
	"github.com/finanzas-pro/backend/internal/integration/adapters"
	"github.com/finanzas-pro/backend/internal/integration/entrypoint/controller"
	"github.com/finanzas-pro/backend/internal/integration/entrypoint/middleware"
	"github.com/finanzas-pro/backend/internal/integration/persistence"
	"github.com/finanzas-pro/backend/internal/integration/realtime"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	Observer    *snapshot.Observer
	Notifier    adapter.ChangeNotifier
	RateLimiter *middleware.RateLimiter
}

// NewInjector creates a new dependency injector with all dependencies wired.
// A nil redisClient keeps change events in-process and disables the summary cache.
func NewInjector(cfg *config.Config, db *gorm.DB, dbHealthCheck controller.HealthChecker, redisClient *redis.Client) *Injector {
	return NewInjectorWithClock(cfg, db, dbHealthCheck, redisClient, adapters.NewSystemClock())
}

// NewInjectorWithClock is NewInjector with a caller-provided clock.
func NewInjectorWithClock(cfg *config.Config, db *gorm.DB, dbHealthCheck controller.HealthChecker, redisClient *redis.Client, clock adapter.Clock) *Injector {
	// Create repositories
	transactionRepo := persistence.NewTransactionRepository(db)
	fixedExpenseRepo := persistence.NewFixedExpenseRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	dashboardRepo := persistence.NewDashboardRepository(db)

	// Create realtime adapters
	var (
		notifier      adapter.ChangeNotifier
		metricsCache  adapter.MetricsCache
		redisHealthFn controller.HealthChecker
	)
	if redisClient != nil {
		notifier = realtime.NewRedisNotifier(redisClient, cfg.Redis.Channel)
		metricsCache = realtime.NewMetricsCache(redisClient, cfg.Redis.Channel, cfg.Redis.CacheTTL)
		redisHealthFn = func(ctx context.Context) bool {
			return redisClient.Ping(ctx).Err() == nil
		}
	} else {
		notifier = realtime.NewMemoryNotifier()
	}

	tokenService := adapters.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.Audience)
	observer := snapshot.NewObserver(transactionRepo, fixedExpenseRepo, categoryRepo, notifier, clock)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, notifier)
	editTransactionUseCase := transaction.NewEditTransactionUseCase(transactionRepo, notifier)
	toggleTransactionUseCase := transaction.NewToggleTransactionStatusUseCase(transactionRepo, notifier)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, notifier)
	exportTransactionsUseCase := transaction.NewExportTransactionsUseCase(transactionRepo)

	// Create fixed expense use cases
	listFixedExpensesUseCase := fixedexpense.NewListFixedExpensesUseCase(fixedExpenseRepo)
	createFixedExpenseUseCase := fixedexpense.NewCreateFixedExpenseUseCase(fixedExpenseRepo, notifier)
	updateFixedExpenseUseCase := fixedexpense.NewUpdateFixedExpenseUseCase(fixedExpenseRepo, notifier)
	deleteFixedExpenseUseCase := fixedexpense.NewDeleteFixedExpenseUseCase(fixedExpenseRepo, notifier)
	monthStatusUseCase := fixedexpense.NewGetMonthStatusUseCase(fixedExpenseRepo, transactionRepo, clock)
	payFixedExpenseUseCase := fixedexpense.NewPayFixedExpenseUseCase(fixedExpenseRepo, transactionRepo, notifier, clock)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	addCategoryUseCase := category.NewAddCategoryUseCase(categoryRepo, notifier)
	removeCategoryUseCase := category.NewRemoveCategoryUseCase(categoryRepo, notifier)

	// Create dashboard use cases
	summaryUseCase := dashboard.NewGetSummaryUseCase(transactionRepo, metricsCache, clock)
	evolutionUseCase := dashboard.NewGetEvolutionUseCase(transactionRepo, clock)
	breakdownUseCase := dashboard.NewGetBreakdownUseCase(transactionRepo, clock)
	calendarUseCase := dashboard.NewGetCalendarUseCase(transactionRepo, clock)
	compareUseCase := dashboard.NewComparePeriodsUseCase(transactionRepo, clock)
	yearOverYearUseCase := dashboard.NewGetYearOverYearUseCase(transactionRepo)
	dataRangeUseCase := dashboard.NewGetDataRangeUseCase(dashboardRepo)
	streamUseCase := dashboard.NewStreamSummaryUseCase(observer, clock)

	// Create controllers
	healthController := controller.NewHealthController(dbHealthCheck, redisHealthFn)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		editTransactionUseCase,
		toggleTransactionUseCase,
		deleteTransactionUseCase,
		exportTransactionsUseCase,
	)

	fixedExpenseController := controller.NewFixedExpenseController(
		listFixedExpensesUseCase,
		createFixedExpenseUseCase,
		updateFixedExpenseUseCase,
		deleteFixedExpenseUseCase,
		monthStatusUseCase,
		payFixedExpenseUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		addCategoryUseCase,
		removeCategoryUseCase,
	)

	dashboardController := controller.NewDashboardController(
		summaryUseCase,
		evolutionUseCase,
		breakdownUseCase,
		calendarUseCase,
		compareUseCase,
		yearOverYearUseCase,
		dataRangeUseCase,
	)

	streamController := controller.NewStreamController(streamUseCase)

	// Create middleware
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	if cfg.Server.Environment == "test" {
		rateLimiter.Disable()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		transactionController,
		fixedExpenseController,
		categoryController,
		dashboardController,
		streamController,
		rateLimiter,
		authMiddleware,
		cfg.CORS.AllowedOrigins,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		Observer:    observer,
		Notifier:    notifier,
		RateLimiter: rateLimiter,
	}
}
