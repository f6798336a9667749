// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/fincontrol/backend/config"
	"github.com/fincontrol/backend/internal/application/usecase/alert"
	"github.com/fincontrol/backend/internal/application/usecase/auth"
	"github.com/fincontrol/backend/internal/application/usecase/finance"
	"github.com/fincontrol/backend/internal/application/usecase/record"
	"github.com/fincontrol/backend/internal/application/usecase/recurrence"
	"github.com/fincontrol/backend/internal/application/usecase/report"
	"github.com/fincontrol/backend/internal/infra/server/router"
	"github.com/fincontrol/backend/internal/integration/adapters"
	"github.com/fincontrol/backend/internal/integration/entrypoint/controller"
	"github.com/fincontrol/backend/internal/integration/entrypoint/middleware"
	"github.com/fincontrol/backend/internal/integration/persistence"
	reportintegration "github.com/fincontrol/backend/internal/integration/report"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil; the rate limiter then passes every request through.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	recordRepo := persistence.NewRecordRepository(db)
	reportRepo := persistence.NewReportRepository(db)

	// Create adapters/services
	clock := adapters.NewSystemClock()
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)
	alertService := adapters.NewGeminiService(cfg.Gemini.APIKey)
	reportDispatcher := reportintegration.NewWebhookClient(cfg.ReportWebhook.URL, cfg.ReportWebhook.Timeout)
	reportMailer := reportintegration.NewResendMailer(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)

	// Create recurrence use cases
	createRecurrentUseCase := recurrence.NewCreateRecurrentRecordsUseCase(recordRepo, clock)
	ensureBufferUseCase := recurrence.NewEnsureRecurrenceBufferUseCase(recordRepo, clock)
	syncFlagsUseCase := recurrence.NewSyncFutureFlagsUseCase(recordRepo, clock)

	// Create record use cases
	listRecordsUseCase := record.NewListRecordsUseCase(recordRepo, ensureBufferUseCase, syncFlagsUseCase)
	createRecordUseCase := record.NewCreateRecordUseCase(recordRepo, clock)
	updateRecordUseCase := record.NewUpdateRecordUseCase(recordRepo, clock)
	deleteRecordUseCase := record.NewDeleteRecordUseCase(recordRepo)

	// Create finance use cases
	getKPIsUseCase := finance.NewGetKPIsUseCase(recordRepo, clock)
	getDistributionUseCase := finance.NewGetExpenseDistributionUseCase(recordRepo)
	adjustBalanceUseCase := finance.NewAdjustBalanceUseCase(recordRepo, clock)

	// Create report use cases
	canGenerateUseCase := report.NewCanGenerateReportUseCase(userRepo, reportRepo, recordRepo, clock)
	requestReportUseCase := report.NewRequestReportUseCase(
		canGenerateUseCase,
		getKPIsUseCase,
		userRepo,
		reportRepo,
		reportDispatcher,
		reportMailer,
		clock,
	)

	// Create alert use case
	generateAlertsUseCase := alert.NewGenerateAlertsUseCase(getKPIsUseCase, getDistributionUseCase, userRepo, alertService)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(registerUseCase, loginUseCase)

	recordController := controller.NewRecordController(
		listRecordsUseCase,
		createRecordUseCase,
		createRecurrentUseCase,
		updateRecordUseCase,
		deleteRecordUseCase,
	)

	financeController := controller.NewFinanceController(
		getKPIsUseCase,
		getDistributionUseCase,
		adjustBalanceUseCase,
	)

	reportController := controller.NewReportController(requestReportUseCase, canGenerateUseCase)

	alertController := controller.NewAlertController(generateAlertsUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, 1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter(redisClient)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		recordController,
		financeController,
		reportController,
		alertController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
