package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/swiftbill/swiftbill-api/pkg/totals"
	"gorm.io/gorm"
)

// Item is a catalog entry used to prefill document lines. The tax-inclusive
// pricing rule applies only here: when IsTaxIncluded is set, SellingPrice
// already contains the tax component. Document lines always treat unit price
// as tax-exclusive.
type Item struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID            uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name              string         `gorm:"size:255;not null" json:"name"`
	Code              string         `gorm:"size:100;index" json:"code"`
	Description       *string        `gorm:"type:text" json:"description,omitempty"`
	BasePrice         float64        `gorm:"type:decimal(15,2);default:0" json:"base_price"`
	SellingPrice      float64        `gorm:"type:decimal(15,2);default:0" json:"selling_price"`
	TaxPercent        float64        `gorm:"type:decimal(5,2);default:0" json:"tax_percent"`
	IsTaxIncluded     bool           `gorm:"default:false" json:"is_tax_included"`
	PrimaryUnit       string         `gorm:"size:50;default:'pcs'" json:"primary_unit"`
	StockQuantity     float64        `gorm:"type:decimal(15,3);default:0" json:"stock_quantity"`
	LowStockThreshold float64        `gorm:"type:decimal(15,3);default:0" json:"low_stock_threshold"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User        User              `gorm:"foreignKey:UserID" json:"-"`
	Adjustments []StockAdjustment `gorm:"foreignKey:ItemID" json:"-"`
}

// MarshalJSON adds the derived tax component of the selling price
func (i Item) MarshalJSON() ([]byte, error) {
	type Alias Item
	return json.Marshal(&struct {
		Alias
		TaxAmount float64 `json:"tax_amount"`
	}{
		Alias:     Alias(i),
		TaxAmount: totals.Round2(totals.CatalogTaxAmount(i.SellingPrice, i.TaxPercent, i.IsTaxIncluded)),
	})
}

// BeforeCreate generates a UUID before creating a new item
func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Item model
func (Item) TableName() string {
	return "items"
}
