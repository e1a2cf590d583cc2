package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/swiftbill/swiftbill-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Expense represents a standalone business expense
type Expense struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	VendorID    *uuid.UUID       `gorm:"type:uuid;index" json:"vendor_id,omitempty"`
	Category    string           `gorm:"size:100;not null" json:"category"`
	Amount      float64          `gorm:"type:decimal(15,2);not null" json:"amount"`
	ExpenseDate time.Time        `gorm:"type:date;not null" json:"expense_date"`
	Mode        enum.PaymentMode `gorm:"default:0" json:"mode"`
	Notes       *string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	User   User    `gorm:"foreignKey:UserID" json:"-"`
	Vendor *Vendor `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
}

// BeforeCreate generates a UUID before creating a new expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Expense model
func (Expense) TableName() string {
	return "expenses"
}
