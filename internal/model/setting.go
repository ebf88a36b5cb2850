package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Setting kinds, used for logging and metrics labels.
const (
	SettingKindTax      = "tax"
	SettingKindCurrency = "currency"
)

// TaxSetting is one row of the append-only tax history.
// Exactly one row has Active = true; see the partial unique index in database.Migrate.
type TaxSetting struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	TaxRate   decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"taxRate"` // percent, e.g. 8.50
	TaxName   string          `gorm:"type:varchar(100);not null" json:"taxName"`
	Active    bool            `gorm:"not null;default:false" json:"active"`
	CreatedAt time.Time       `json:"createdAt"`
}

// CurrencySetting is one row of the append-only currency history.
type CurrencySetting struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CurrencyCode   string    `gorm:"type:varchar(3);not null" json:"currencyCode"`
	CurrencySymbol string    `gorm:"type:varchar(10);not null" json:"currencySymbol"`
	CurrencyName   string    `gorm:"type:varchar(100);not null" json:"currencyName"`
	Active         bool      `gorm:"not null;default:false" json:"active"`
	CreatedAt      time.Time `json:"createdAt"`
}

// DefaultTaxSetting is served when no tax row exists yet.
func DefaultTaxSetting() TaxSetting {
	return TaxSetting{TaxRate: decimal.Zero, TaxName: "Tax", Active: true}
}

// DefaultCurrencySetting is served when no currency row exists yet.
func DefaultCurrencySetting() CurrencySetting {
	return CurrencySetting{CurrencyCode: "USD", CurrencySymbol: "$", CurrencyName: "US Dollar", Active: true}
}
