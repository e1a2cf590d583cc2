package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BankAccount represents a bank account payments can be routed through
type BankAccount struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	BankName       string         `gorm:"size:255;not null" json:"bank_name"`
	AccountNumber  string         `gorm:"size:100;not null" json:"account_number"`
	AccountHolder  string         `gorm:"size:255" json:"account_holder"`
	IFSC           *string        `gorm:"size:50;column:ifsc" json:"ifsc,omitempty"`
	OpeningBalance float64        `gorm:"type:decimal(15,2);default:0" json:"opening_balance"`
	IsDefault      bool           `gorm:"default:false" json:"is_default"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID" json:"-"`
	Payments []Payment `gorm:"foreignKey:BankAccountID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new bank account
func (b *BankAccount) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BankAccount model
func (BankAccount) TableName() string {
	return "bank_accounts"
}
