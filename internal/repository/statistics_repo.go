package repository

import (
	"context"
	"fmt"

	"palmcafe/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InvoiceTotals is the raw rollup over every stored invoice.
type InvoiceTotals struct {
	TotalRevenue    decimal.Decimal
	TotalOrders     int64
	UniqueCustomers int64
	TotalTax        decimal.Decimal
	TotalTips       decimal.Decimal
}

type StatisticsRepository interface {
	InvoiceTotals(ctx context.Context) (*InvoiceTotals, error)
}

type statisticsRepository struct {
	db *gorm.DB
}

func NewStatisticsRepository(db *gorm.DB) StatisticsRepository {
	return &statisticsRepository{db: db}
}

// InvoiceTotals runs one aggregate statement. It is not snapshot-isolated
// against creates committing in parallel.
func (r *statisticsRepository) InvoiceTotals(ctx context.Context) (*InvoiceTotals, error) {
	var totals InvoiceTotals
	if err := GetDB(ctx, r.db).Model(&model.Invoice{}).
		Select("COALESCE(SUM(total), 0) AS total_revenue, " +
			"COUNT(*) AS total_orders, " +
			"COUNT(DISTINCT customer_name) AS unique_customers, " +
			"COALESCE(SUM(tax_amount), 0) AS total_tax, " +
			"COALESCE(SUM(tip_amount), 0) AS total_tips").
		Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate invoices: %w", err)
	}
	return &totals, nil
}
