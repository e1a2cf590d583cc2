package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/swiftbill/swiftbill-api/internal/config"
	domainRepo "github.com/swiftbill/swiftbill-api/internal/domain/repository"
	"github.com/swiftbill/swiftbill-api/internal/presentation/http/handler"
	"github.com/swiftbill/swiftbill-api/internal/presentation/http/middleware"
	"github.com/swiftbill/swiftbill-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration. One
// DocumentHandler instance exists per document kind.
type Handlers struct {
	Auth            *handler.AuthHandler
	Company         *handler.CompanyHandler
	Customer        *handler.CustomerHandler
	Vendor          *handler.VendorHandler
	Item            *handler.ItemHandler
	Invoice         *handler.DocumentHandler
	Quotation       *handler.DocumentHandler
	Purchase        *handler.DocumentHandler
	PurchaseOrder   *handler.DocumentHandler
	CreditNote      *handler.DocumentHandler
	DebitNote       *handler.DocumentHandler
	DeliveryChallan *handler.DocumentHandler
	Expense         *handler.ExpenseHandler
	Payment         *handler.PaymentHandler
	BankAccount     *handler.BankAccountHandler
	Inventory       *handler.InventoryHandler
	Chatbot         *handler.ChatbotHandler
	Dashboard       *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
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

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		protected.Use(middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}))

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Profile
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Dashboard and chatbot
	protected.GET("/dashboard", h.Dashboard.GetSummary)
	protected.POST("/chatbot/query", h.Chatbot.Query)

	// Companies
	companies := protected.Group("/companies")
	{
		companies.GET("", h.Company.List)
		companies.POST("", h.Company.Create)
		companies.GET("/:id", h.Company.Get)
		companies.PUT("/:id", h.Company.Update)
		companies.DELETE("/:id", h.Company.Delete)
		companies.PATCH("/:id/set-default", h.Company.SetDefault)
	}

	// Customers
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}

	// Vendors
	vendors := protected.Group("/vendors")
	{
		vendors.GET("", h.Vendor.List)
		vendors.POST("", h.Vendor.Create)
		vendors.GET("/:id", h.Vendor.Get)
		vendors.PUT("/:id", h.Vendor.Update)
		vendors.DELETE("/:id", h.Vendor.Delete)
	}

	// Catalog items
	items := protected.Group("/items")
	{
		items.GET("", h.Item.List)
		items.POST("", h.Item.Create)
		items.GET("/low-stock", h.Item.ListLowStock)
		items.GET("/:id", h.Item.Get)
		items.PUT("/:id", h.Item.Update)
		items.DELETE("/:id", h.Item.Delete)
	}

	// Document resources share one handler type; each group is bound to its
	// own kind.
	registerDocumentRoutes(protected, "/invoices", h.Invoice)
	registerDocumentRoutes(protected, "/quotations", h.Quotation)
	registerDocumentRoutes(protected, "/purchases", h.Purchase)
	registerDocumentRoutes(protected, "/purchase-orders", h.PurchaseOrder)
	registerDocumentRoutes(protected, "/credit-notes", h.CreditNote)
	registerDocumentRoutes(protected, "/debit-notes", h.DebitNote)
	registerDocumentRoutes(protected, "/delivery-challans", h.DeliveryChallan)

	// Expenses
	expenses := protected.Group("/expenses")
	{
		expenses.GET("", h.Expense.List)
		expenses.POST("", h.Expense.Create)
		expenses.GET("/:id", h.Expense.Get)
		expenses.PUT("/:id", h.Expense.Update)
		expenses.DELETE("/:id", h.Expense.Delete)
	}

	// Payments
	payments := protected.Group("/payments")
	{
		payments.GET("", h.Payment.List)
		payments.POST("", h.Payment.Create)
		payments.GET("/:id", h.Payment.Get)
		payments.PUT("/:id", h.Payment.Update)
		payments.DELETE("/:id", h.Payment.Delete)
	}

	// Bank accounts
	bankAccounts := protected.Group("/bank-accounts")
	{
		bankAccounts.GET("", h.BankAccount.List)
		bankAccounts.POST("", h.BankAccount.Create)
		bankAccounts.GET("/:id", h.BankAccount.Get)
		bankAccounts.PUT("/:id", h.BankAccount.Update)
		bankAccounts.DELETE("/:id", h.BankAccount.Delete)
		bankAccounts.PATCH("/:id/set-default", h.BankAccount.SetDefault)
	}

	// Inventory
	inventory := protected.Group("/inventory")
	{
		inventory.GET("", h.Inventory.ListStock)
		inventory.POST("/adjust", h.Inventory.AdjustStock)
		inventory.GET("/adjustments", h.Inventory.ListAdjustments)
	}
}

func registerDocumentRoutes(protected *gin.RouterGroup, path string, h *handler.DocumentHandler) {
	group := protected.Group(path)
	{
		group.GET("", h.List)
		group.POST("", h.Create)
		group.GET("/:id", h.Get)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
		group.PATCH("/:id/status", h.UpdateStatus)
	}
}
