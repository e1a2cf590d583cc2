package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/swiftbill/swiftbill-api/internal/application/service"
	"github.com/swiftbill/swiftbill-api/internal/config"
	"github.com/swiftbill/swiftbill-api/internal/domain/enum"
	"github.com/swiftbill/swiftbill-api/internal/infrastructure/database"
	"github.com/swiftbill/swiftbill-api/internal/infrastructure/repository"
	"github.com/swiftbill/swiftbill-api/internal/presentation/http/handler"
	"github.com/swiftbill/swiftbill-api/internal/presentation/http/routes"
	"github.com/swiftbill/swiftbill-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	itemRepo := repository.NewItemRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	documentLineRepo := repository.NewDocumentLineRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	bankAccountRepo := repository.NewBankAccountRepository(db)
	stockAdjustmentRepo := repository.NewStockAdjustmentRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	companyService := service.NewCompanyService(companyRepo)
	customerService := service.NewCustomerService(customerRepo)
	vendorService := service.NewVendorService(vendorRepo)
	itemService := service.NewItemService(itemRepo)
	documentService := service.NewDocumentService(documentRepo, documentLineRepo, itemRepo, customerRepo, vendorRepo, companyRepo)
	expenseService := service.NewExpenseService(expenseRepo, vendorRepo)
	paymentService := service.NewPaymentService(paymentRepo, documentRepo, customerRepo, vendorRepo, bankAccountRepo)
	bankAccountService := service.NewBankAccountService(bankAccountRepo)
	inventoryService := service.NewInventoryService(itemRepo, stockAdjustmentRepo)
	chatbotService := service.NewChatbotService(analyticsRepo)
	dashboardService := service.NewDashboardService(analyticsRepo)

	// Initialize handlers; the document handler is bound once per kind
	handlers := &routes.Handlers{
		Auth:            handler.NewAuthHandler(authService),
		Company:         handler.NewCompanyHandler(companyService),
		Customer:        handler.NewCustomerHandler(customerService),
		Vendor:          handler.NewVendorHandler(vendorService),
		Item:            handler.NewItemHandler(itemService),
		Invoice:         handler.NewDocumentHandler(documentService, enum.KindInvoice),
		Quotation:       handler.NewDocumentHandler(documentService, enum.KindQuotation),
		Purchase:        handler.NewDocumentHandler(documentService, enum.KindPurchase),
		PurchaseOrder:   handler.NewDocumentHandler(documentService, enum.KindPurchaseOrder),
		CreditNote:      handler.NewDocumentHandler(documentService, enum.KindCreditNote),
		DebitNote:       handler.NewDocumentHandler(documentService, enum.KindDebitNote),
		DeliveryChallan: handler.NewDocumentHandler(documentService, enum.KindDeliveryChallan),
		Expense:         handler.NewExpenseHandler(expenseService),
		Payment:         handler.NewPaymentHandler(paymentService),
		BankAccount:     handler.NewBankAccountHandler(bankAccountService),
		Inventory:       handler.NewInventoryHandler(inventoryService),
		Chatbot:         handler.NewChatbotHandler(chatbotService),
		Dashboard:       handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
