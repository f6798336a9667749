// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/fincontrol/backend/internal/integration/entrypoint/controller"
	"github.com/fincontrol/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine            *gin.Engine
	healthController  *controller.HealthController
	authController    *controller.AuthController
	recordController  *controller.RecordController
	financeController *controller.FinanceController
	reportController  *controller.ReportController
	alertController   *controller.AlertController
	loginRateLimiter  *middleware.RateLimiter
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	recordController *controller.RecordController,
	financeController *controller.FinanceController,
	reportController *controller.ReportController,
	alertController *controller.AlertController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:  healthController,
		authController:    authController,
		recordController:  recordController,
		financeController: financeController,
		reportController:  reportController,
		alertController:   alertController,
		loginRateLimiter:  loginRateLimiter,
		authMiddleware:    authMiddleware,
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
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			}
		}

		// Record routes (require authentication)
		if r.recordController != nil && r.authMiddleware != nil {
			records := v1.Group("/records")
			records.Use(r.authMiddleware.Authenticate())
			{
				records.GET("", r.recordController.List)
				records.POST("", r.recordController.Create)
				records.POST("/recurrent", r.recordController.CreateRecurrent)
				records.PATCH("/:id", r.recordController.Update)
				records.DELETE("/:id", r.recordController.Delete)
			}
		}

		// Finance routes (require authentication)
		if r.financeController != nil && r.authMiddleware != nil {
			finance := v1.Group("/finance")
			finance.Use(r.authMiddleware.Authenticate())
			{
				finance.GET("/kpis", r.financeController.GetKPIs)
				finance.GET("/distribution", r.financeController.GetDistribution)
				finance.POST("/adjust-balance", r.financeController.AdjustBalance)
			}
		}

		// Report routes (require authentication)
		if r.reportController != nil && r.authMiddleware != nil {
			reports := v1.Group("/reports")
			reports.Use(r.authMiddleware.Authenticate())
			{
				reports.POST("", r.reportController.Request)
				reports.GET("/eligibility", r.reportController.Eligibility)
			}
		}

		// Alert routes (require authentication)
		if r.alertController != nil && r.authMiddleware != nil {
			alerts := v1.Group("/alerts")
			alerts.Use(r.authMiddleware.Authenticate())
			{
				alerts.GET("", r.alertController.List)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
