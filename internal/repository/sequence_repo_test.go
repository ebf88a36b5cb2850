package repository_test

import (
	"context"
	"testing"
	"time"

	"palmcafe/internal/model"
	"palmcafe/internal/repository"
	"palmcafe/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func nextNumber(t *testing.T, db *gorm.DB) string {
	t.Helper()
	var number string
	err := repository.NewTransactionManager(db).RunInTx(context.Background(), func(ctx context.Context) error {
		var err error
		number, err = repository.NewInvoiceSequencer(db).Next(ctx)
		return err
	})
	require.NoError(t, err)
	return number
}

func TestInvoiceSequencer_StartsAtBaseline(t *testing.T) {
	db := testutil.NewDB(t)

	assert.Equal(t, "1000", nextNumber(t, db))
	assert.Equal(t, "1001", nextNumber(t, db))
}

func TestInvoiceSequencer_CustomBaseline(t *testing.T) {
	db := testutil.NewDBWithBaseline(t, 1)

	assert.Equal(t, "1", nextNumber(t, db))
}

func TestInvoiceSequencer_RequiresTransaction(t *testing.T) {
	db := testutil.NewDB(t)

	_, err := repository.NewInvoiceSequencer(db).Next(context.Background())
	assert.ErrorIs(t, err, repository.ErrNoTransaction)
}

func TestInvoiceSequencer_RollbackReleasesNumber(t *testing.T) {
	db := testutil.NewDB(t)
	seq := repository.NewInvoiceSequencer(db)

	err := repository.NewTransactionManager(db).RunInTx(context.Background(), func(ctx context.Context) error {
		n, err := seq.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, "1000", n)
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	assert.Equal(t, "1000", nextNumber(t, db))
}

func TestInvoiceSequencer_EnsureKeepsExistingCounter(t *testing.T) {
	db := testutil.NewDB(t)
	nextNumber(t, db)

	require.NoError(t, repository.NewInvoiceSequencer(db).Ensure(context.Background(), 1000))
	assert.Equal(t, "1001", nextNumber(t, db))
}

func TestInvoiceSequencer_ReconcileSkipsPastForeignRows(t *testing.T) {
	db := testutil.NewDB(t)

	// a row written without going through the sequencer
	require.NoError(t, db.Create(&model.Invoice{
		InvoiceNumber: "1005",
		CustomerName:  "Walk-in",
		Total:         decimal.Zero,
		Date:          time.Now(),
	}).Error)

	require.NoError(t, repository.NewInvoiceSequencer(db).Reconcile(context.Background()))
	assert.Equal(t, "1006", nextNumber(t, db))
}

func TestInvoiceSequencer_EnsureStartsAfterExistingInvoices(t *testing.T) {
	db := testutil.NewDB(t)
	require.NoError(t, db.Create(&model.Invoice{
		InvoiceNumber: "2500",
		CustomerName:  "Imported",
		Total:         decimal.Zero,
		Date:          time.Now(),
	}).Error)
	require.NoError(t, db.Where("1 = 1").Delete(&model.InvoiceSequence{}).Error)

	require.NoError(t, repository.NewInvoiceSequencer(db).Ensure(context.Background(), 1000))
	assert.Equal(t, "2501", nextNumber(t, db))
}
