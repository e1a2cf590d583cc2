package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vendor represents a party that purchase-side documents are raised against
type Vendor struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name           string         `gorm:"size:255;not null" json:"name"`
	Email          *string        `gorm:"size:255" json:"email,omitempty"`
	Phone          *string        `gorm:"size:50" json:"phone,omitempty"`
	GSTIN          *string        `gorm:"size:50;column:gstin" json:"gstin,omitempty"`
	Address        *string        `gorm:"type:text" json:"address,omitempty"`
	OpeningBalance float64        `gorm:"type:decimal(15,2);default:0" json:"opening_balance"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User      User       `gorm:"foreignKey:UserID" json:"-"`
	Documents []Document `gorm:"foreignKey:VendorID" json:"-"`
	Payments  []Payment  `gorm:"foreignKey:VendorID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new vendor
func (v *Vendor) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Vendor model
func (Vendor) TableName() string {
	return "vendors"
}
