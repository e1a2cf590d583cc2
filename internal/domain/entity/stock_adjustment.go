package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/swiftbill/swiftbill-api/internal/domain/enum"
	"gorm.io/gorm"
)

// StockAdjustment records a change to an item's stock level. Delta is signed:
// positive for stock in, negative for stock out.
type StockAdjustment struct {
	ID        uuid.UUID             `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID             `gorm:"type:uuid;not null;index" json:"user_id"`
	ItemID    uuid.UUID             `gorm:"type:uuid;not null;index" json:"item_id"`
	Delta     float64               `gorm:"type:decimal(15,3);not null" json:"delta"`
	Reason    enum.AdjustmentReason `gorm:"default:0" json:"reason"`
	Note      *string               `gorm:"type:text" json:"note,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
	DeletedAt gorm.DeletedAt        `gorm:"index" json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
	Item Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

// BeforeCreate generates a UUID before creating a new stock adjustment
func (a *StockAdjustment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StockAdjustment model
func (StockAdjustment) TableName() string {
	return "stock_adjustments"
}
