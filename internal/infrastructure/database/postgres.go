package database

import (
	"fmt"
	"log"

	"github.com/swiftbill/swiftbill-api/internal/config"
	"github.com/swiftbill/swiftbill-api/internal/domain/entity"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.Debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	return db, nil
}

// AutoMigrate runs schema migrations for all entities
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		// Account entities
		&entity.User{},
		&entity.Company{},

		// Party entities
		&entity.Customer{},
		&entity.Vendor{},

		// Catalog and inventory entities
		&entity.Item{},
		&entity.StockAdjustment{},

		// Document entities
		&entity.Document{},
		&entity.DocumentLine{},

		// Money movement entities
		&entity.Payment{},
		&entity.Expense{},
		&entity.BankAccount{},

		// System entities
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}
