package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is the persisted header of a till order. It is written once by the
// invoice service and never updated. Tax and currency fields are a snapshot
// of the settings that were active when the invoice was created.
type Invoice struct {
	ID             uint            `gorm:"primaryKey" json:"-"`
	InvoiceNumber  string          `gorm:"type:varchar(20);uniqueIndex;not null" json:"invoiceNumber"`
	CustomerName   string          `gorm:"type:varchar(255);not null;index" json:"customerName"`
	CustomerPhone  string          `gorm:"type:varchar(50)" json:"customerPhone,omitempty"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"subtotal"`
	TaxAmount      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"taxAmount"`
	TipAmount      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"tipAmount"`
	Total          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`           // subtotal + tax_amount + tip_amount
	TaxRate        decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"taxRate"` // percent, e.g. 8.50
	TaxName        string          `gorm:"type:varchar(100)" json:"taxName"`
	CurrencyCode   string          `gorm:"type:varchar(3)" json:"currencyCode"`
	CurrencySymbol string          `gorm:"type:varchar(10)" json:"currencySymbol"`
	Date           time.Time       `gorm:"not null;index" json:"date"`
	Items          []InvoiceItem   `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// InvoiceItem is a snapshot of a menu item at order time. MenuItemID is kept
// for provenance only; name and price never follow later menu edits.
type InvoiceItem struct {
	ID         uint            `gorm:"primaryKey" json:"-"`
	InvoiceID  uint            `gorm:"not null;index" json:"-"`
	Position   int             `gorm:"not null" json:"-"`
	MenuItemID string          `gorm:"type:varchar(36)" json:"id"`
	ItemName   string          `gorm:"type:varchar(255);not null" json:"name"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	Total      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
}
