package repository

import (
	"context"
	"fmt"

	"palmcafe/internal/model"
	"palmcafe/pkg/pagination"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *model.Invoice) error
	FindByNumber(ctx context.Context, number string) (*model.Invoice, error)
	List(ctx context.Context, p pagination.Params) ([]model.Invoice, int64, error)
}

type invoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

// Create inserts the header and then its items in submission order. Callers
// are expected to wrap it in TransactionManager.RunInTx together with the
// number allocation.
func (r *invoiceRepository) Create(ctx context.Context, invoice *model.Invoice) error {
	db := GetDB(ctx, r.db)
	if err := db.Omit(clause.Associations).Create(invoice).Error; err != nil {
		return fmt.Errorf("failed to insert invoice header: %w", err)
	}
	if len(invoice.Items) == 0 {
		return nil
	}
	for i := range invoice.Items {
		invoice.Items[i].InvoiceID = invoice.ID
		invoice.Items[i].Position = i
	}
	if err := db.Create(&invoice.Items).Error; err != nil {
		return fmt.Errorf("failed to insert invoice items: %w", err)
	}
	return nil
}

func (r *invoiceRepository) FindByNumber(ctx context.Context, number string) (*model.Invoice, error) {
	var invoice model.Invoice
	if err := GetDB(ctx, r.db).
		Preload("Items", orderItems).
		First(&invoice, "invoice_number = ?", number).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

// List returns one window of invoices, newest first, with the total row count.
func (r *invoiceRepository) List(ctx context.Context, p pagination.Params) ([]model.Invoice, int64, error) {
	var invoices []model.Invoice
	var total int64

	db := GetDB(ctx, r.db)
	if err := db.Model(&model.Invoice{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("Items", orderItems).
		Order("date desc, id desc").
		Offset(p.Offset).Limit(p.Limit).
		Find(&invoices).Error; err != nil {
		return nil, 0, err
	}

	return invoices, total, nil
}

func orderItems(db *gorm.DB) *gorm.DB {
	return db.Order("position asc")
}
