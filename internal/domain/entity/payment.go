package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/swiftbill/swiftbill-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Payment records money received from a customer or paid to a vendor,
// optionally settling a specific document.
type Payment struct {
	ID            uuid.UUID             `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID             `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID    *uuid.UUID            `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	VendorID      *uuid.UUID            `gorm:"type:uuid;index" json:"vendor_id,omitempty"`
	DocumentID    *uuid.UUID            `gorm:"type:uuid;index" json:"document_id,omitempty"`
	BankAccountID *uuid.UUID            `gorm:"type:uuid;index" json:"bank_account_id,omitempty"`
	Direction     enum.PaymentDirection `gorm:"not null" json:"direction"`
	Mode          enum.PaymentMode      `gorm:"default:0" json:"mode"`
	Amount        float64               `gorm:"type:decimal(15,2);not null" json:"amount"`
	PaymentDate   time.Time             `gorm:"type:date;not null" json:"payment_date"`
	Reference     *string               `gorm:"size:100" json:"reference,omitempty"`
	Notes         *string               `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
	DeletedAt     gorm.DeletedAt        `gorm:"index" json:"-"`

	// Relationships
	User        User         `gorm:"foreignKey:UserID" json:"-"`
	Customer    *Customer    `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Vendor      *Vendor      `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
	Document    *Document    `gorm:"foreignKey:DocumentID" json:"document,omitempty"`
	BankAccount *BankAccount `gorm:"foreignKey:BankAccountID" json:"bank_account,omitempty"`
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
