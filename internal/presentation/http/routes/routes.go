package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sellbridge/consign-api/internal/config"
	domainRepo "github.com/sellbridge/consign-api/internal/domain/repository"
	"github.com/sellbridge/consign-api/internal/presentation/http/handler"
	"github.com/sellbridge/consign-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Consignor *handler.ConsignorHandler
	Item      *handler.ItemHandler
	Sale      *handler.SaleHandler
	Payout    *handler.PayoutHandler
	Dashboard *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Per-client rate limiter
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		// Dashboard
		v1.GET("/dashboard", h.Dashboard.GetStats)

		registerConsignorRoutes(v1, h, deps)
		registerItemRoutes(v1, h)
		registerSaleRoutes(v1, h, deps)
		registerPayoutRoutes(v1, h)
	}

	return router
}

func registerConsignorRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	consignors := v1.Group("/consignors")
	{
		consignors.GET("", h.Consignor.List)
		consignors.POST("", h.Consignor.Create)
		consignors.GET("/:id", h.Consignor.Get)
		consignors.PUT("/:id", h.Consignor.Update)
		consignors.DELETE("/:id", h.Consignor.Delete)

		// Reconciliation
		consignors.GET("/:id/payout-summary", h.Payout.GetSummary)
		consignors.GET("/:id/payouts", h.Payout.List)
		// Recording a payout moves money; idempotency keys guard
		// against client retries double-paying a period.
		consignors.POST("/:id/payouts", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Payout.Create)
	}
}

func registerItemRoutes(v1 *gin.RouterGroup, h *Handlers) {
	items := v1.Group("/items")
	{
		items.GET("", h.Item.List)
		items.POST("", h.Item.Create)
		items.GET("/:id", h.Item.Get)
		items.PUT("/:id", h.Item.Update)
		items.DELETE("/:id", h.Item.Delete)
	}
}

func registerSaleRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	sales := v1.Group("/sales")
	{
		sales.GET("", h.Sale.List)
		sales.POST("", h.Sale.Create)
		sales.GET("/:id", h.Sale.Get)
		sales.GET("/:id/refunds", h.Sale.ListRefunds)
		sales.POST("/:id/refunds", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Sale.CreateRefund)
	}
}

func registerPayoutRoutes(v1 *gin.RouterGroup, h *Handlers) {
	payouts := v1.Group("/payouts")
	{
		payouts.GET("/:id", h.Payout.Get)
	}
}
