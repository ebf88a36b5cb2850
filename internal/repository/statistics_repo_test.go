package repository_test

import (
	"context"
	"testing"
	"time"

	"palmcafe/internal/repository"
	"palmcafe/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatisticsRepository_Empty(t *testing.T) {
	db := testutil.NewDB(t)

	totals, err := repository.NewStatisticsRepository(db).InvoiceTotals(context.Background())
	require.NoError(t, err)
	assert.True(t, totals.TotalRevenue.IsZero())
	assert.Zero(t, totals.TotalOrders)
	assert.Zero(t, totals.UniqueCustomers)
	assert.True(t, totals.TotalTax.IsZero())
	assert.True(t, totals.TotalTips.IsZero())
}

func TestStatisticsRepository_Totals(t *testing.T) {
	db := testutil.NewDB(t)
	invoices := repository.NewInvoiceRepository(db)
	ctx := context.Background()

	require.NoError(t, invoices.Create(ctx, sampleInvoice("1000", "Asha", time.Now())))
	require.NoError(t, invoices.Create(ctx, sampleInvoice("1001", "Asha", time.Now())))
	require.NoError(t, invoices.Create(ctx, sampleInvoice("1002", "Ben", time.Now())))

	totals, err := repository.NewStatisticsRepository(db).InvoiceTotals(ctx)
	require.NoError(t, err)
	assert.Equal(t, "20.91", totals.TotalRevenue.Round(2).StringFixed(2))
	assert.Equal(t, int64(3), totals.TotalOrders)
	assert.Equal(t, int64(2), totals.UniqueCustomers)
	assert.Equal(t, "1.41", totals.TotalTax.Round(2).StringFixed(2))
	assert.Equal(t, "3.00", totals.TotalTips.Round(2).StringFixed(2))
}
