package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/swiftbill/swiftbill-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Document is the unified commercial document: invoices, quotations,
// purchases, purchase orders, credit notes, debit notes and delivery challans
// all share this shape and the same totals engine. The stored totals are a
// snapshot derived from the lines on every create/update; client-supplied
// totals are never trusted.
type Document struct {
	ID         uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID         `gorm:"type:uuid;not null;index;uniqueIndex:idx_documents_user_number" json:"user_id"`
	CompanyID  *uuid.UUID        `gorm:"type:uuid;index" json:"company_id,omitempty"`
	CustomerID *uuid.UUID        `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	VendorID   *uuid.UUID        `gorm:"type:uuid;index" json:"vendor_id,omitempty"`
	Kind       enum.DocumentKind `gorm:"not null;index" json:"kind"`
	// Number is unique per user, not globally: two users can both own INV-000001.
	Number        string              `gorm:"size:100;not null;uniqueIndex:idx_documents_user_number" json:"number"`
	DocumentDate  time.Time           `gorm:"type:date;not null" json:"document_date"`
	DueDate       *time.Time          `gorm:"type:date" json:"due_date,omitempty"`
	Status        enum.DocumentStatus `gorm:"default:0" json:"status"`
	Notes         *string             `gorm:"type:text" json:"notes,omitempty"`
	Subtotal      float64             `gorm:"type:decimal(15,2);default:0" json:"subtotal"`
	TotalDiscount float64             `gorm:"type:decimal(15,2);default:0" json:"total_discount"`
	TaxAmount     float64             `gorm:"type:decimal(15,2);default:0" json:"tax_amount"`
	TotalAmount   float64             `gorm:"type:decimal(15,2);default:0" json:"total_amount"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
	DeletedAt     gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	User     User           `gorm:"foreignKey:UserID" json:"-"`
	Company  *Company       `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Customer *Customer      `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Vendor   *Vendor        `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
	Lines    []DocumentLine `gorm:"foreignKey:DocumentID" json:"lines,omitempty"`
}

// BeforeCreate generates a UUID before creating a new document
func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Document model
func (Document) TableName() string {
	return "documents"
}

// DocumentLine is one priced row of a document. NetAmount is always derived
// from the other four numeric fields, never entered independently.
type DocumentLine struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	DocumentID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"document_id"`
	ItemID          *uuid.UUID     `gorm:"type:uuid;index" json:"item_id,omitempty"`
	Name            string         `gorm:"size:255;not null" json:"name"`
	Description     *string        `gorm:"type:text" json:"description,omitempty"`
	Quantity        float64        `gorm:"type:decimal(15,3);not null" json:"quantity"`
	UnitPrice       float64        `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	DiscountPercent float64        `gorm:"type:decimal(5,2);default:0" json:"discount_percent"`
	TaxPercent      float64        `gorm:"type:decimal(5,2);default:0" json:"tax_percent"`
	NetAmount       float64        `gorm:"type:decimal(15,2);not null" json:"net_amount"`
	Position        int            `gorm:"default:0" json:"position"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Document Document `gorm:"foreignKey:DocumentID" json:"-"`
	Item     *Item    `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

// BeforeCreate generates a UUID before creating a new document line
func (l *DocumentLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DocumentLine model
func (DocumentLine) TableName() string {
	return "document_lines"
}
