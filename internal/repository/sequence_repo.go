package repository

import (
	"context"
	"fmt"
	"strconv"

	"palmcafe/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InvoiceSequencer hands out invoice numbers from a counter row.
//
// Next must run inside the transaction that inserts the invoice: the UPDATE
// holds the counter row lock until commit, so concurrent creates queue on it,
// and a rollback returns the number to the pool.
type InvoiceSequencer interface {
	Next(ctx context.Context) (string, error)
	Ensure(ctx context.Context, baseline int64) error
	Reconcile(ctx context.Context) error
}

type invoiceSequencer struct {
	db   *gorm.DB
	name string
}

func NewInvoiceSequencer(db *gorm.DB) InvoiceSequencer {
	return &invoiceSequencer{db: db, name: model.SequenceInvoice}
}

func (s *invoiceSequencer) Next(ctx context.Context) (string, error) {
	if !InTx(ctx) {
		return "", ErrNoTransaction
	}
	db := GetDB(ctx, s.db)

	res := db.Model(&model.InvoiceSequence{}).
		Where("name = ?", s.name).
		Update("last_value", gorm.Expr("last_value + 1"))
	if res.Error != nil {
		return "", fmt.Errorf("failed to advance invoice sequence: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return "", fmt.Errorf("invoice sequence %q is not initialised", s.name)
	}

	var seq model.InvoiceSequence
	if err := db.Where("name = ?", s.name).First(&seq).Error; err != nil {
		return "", fmt.Errorf("failed to read invoice sequence: %w", err)
	}
	return strconv.FormatInt(seq.LastValue, 10), nil
}

// Ensure creates the counter row so that the next number is baseline, or one
// past the highest invoice already stored, whichever is larger. An existing
// row is left untouched.
func (s *invoiceSequencer) Ensure(ctx context.Context, baseline int64) error {
	maxNumber, err := s.maxInvoiceNumber(ctx)
	if err != nil {
		return err
	}
	start := baseline - 1
	if maxNumber > start {
		start = maxNumber
	}

	seq := model.InvoiceSequence{Name: s.name, LastValue: start}
	if err := GetDB(ctx, s.db).Clauses(clause.OnConflict{DoNothing: true}).Create(&seq).Error; err != nil {
		return fmt.Errorf("failed to initialise invoice sequence: %w", err)
	}
	return nil
}

// Reconcile raises the counter to the highest stored invoice number. It is
// the recovery path after a number conflict caused by rows written around
// the sequencer.
func (s *invoiceSequencer) Reconcile(ctx context.Context) error {
	maxNumber, err := s.maxInvoiceNumber(ctx)
	if err != nil {
		return err
	}
	return GetDB(ctx, s.db).Model(&model.InvoiceSequence{}).
		Where("name = ? AND last_value < ?", s.name, maxNumber).
		Update("last_value", maxNumber).Error
}

func (s *invoiceSequencer) maxInvoiceNumber(ctx context.Context) (int64, error) {
	var result struct {
		MaxNumber int64
	}
	if err := GetDB(ctx, s.db).Model(&model.Invoice{}).
		Select("COALESCE(MAX(CAST(invoice_number AS BIGINT)), 0) AS max_number").
		Scan(&result).Error; err != nil {
		return 0, fmt.Errorf("failed to read highest invoice number: %w", err)
	}
	return result.MaxNumber, nil
}
