package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"palmcafe/internal/model"
	"palmcafe/internal/repository"
	"palmcafe/internal/testutil"
	"palmcafe/pkg/pagination"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func sampleInvoice(number, customer string, date time.Time) *model.Invoice {
	return &model.Invoice{
		InvoiceNumber: number,
		CustomerName:  customer,
		Subtotal:      decimal.RequireFromString("5.50"),
		TaxAmount:     decimal.RequireFromString("0.47"),
		TipAmount:     decimal.RequireFromString("1.00"),
		Total:         decimal.RequireFromString("6.97"),
		TaxRate:       decimal.RequireFromString("8.5"),
		TaxName:       "Sales Tax",
		CurrencyCode:  "USD",
		Date:          date,
		Items: []model.InvoiceItem{
			{MenuItemID: "m-2", ItemName: "Latte", Price: decimal.RequireFromString("3.50"), Quantity: 1, Total: decimal.RequireFromString("3.50")},
			{MenuItemID: "m-1", ItemName: "Biscotti", Price: decimal.RequireFromString("1.00"), Quantity: 2, Total: decimal.RequireFromString("2.00")},
		},
	}
}

func TestInvoiceRepository_CreateAndFind(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewInvoiceRepository(db)
	ctx := context.Background()

	in := sampleInvoice("1000", "Asha", time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC))
	require.NoError(t, repo.Create(ctx, in))
	assert.NotZero(t, in.ID)

	got, err := repo.FindByNumber(ctx, "1000")
	require.NoError(t, err)
	assert.Equal(t, "Asha", got.CustomerName)
	assert.True(t, got.Total.Equal(decimal.RequireFromString("6.97")))
	require.Len(t, got.Items, 2)
	assert.Equal(t, "Latte", got.Items[0].ItemName)
	assert.Equal(t, "Biscotti", got.Items[1].ItemName)
	assert.Equal(t, 2, got.Items[1].Quantity)
}

func TestInvoiceRepository_FindMissing(t *testing.T) {
	db := testutil.NewDB(t)

	_, err := repository.NewInvoiceRepository(db).FindByNumber(context.Background(), "9999")
	assert.True(t, repository.IsNotFound(err))
}

func TestInvoiceRepository_DuplicateNumber(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewInvoiceRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sampleInvoice("1000", "Asha", time.Now())))
	err := repo.Create(ctx, sampleInvoice("1000", "Ben", time.Now()))
	require.Error(t, err)
	assert.True(t, repository.IsUniqueViolation(err))
}

func TestInvoiceRepository_ItemFailureRollsBackHeader(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.FailCreatesOn(t, db, "invoice_items", errors.New("disk full"))
	repo := repository.NewInvoiceRepository(db)

	err := repository.NewTransactionManager(db).RunInTx(context.Background(), func(ctx context.Context) error {
		return repo.Create(ctx, sampleInvoice("1000", "Asha", time.Now()))
	})
	require.Error(t, err)

	var headers int64
	require.NoError(t, db.Model(&model.Invoice{}).Count(&headers).Error)
	assert.Zero(t, headers)
}

func TestInvoiceRepository_ListNewestFirst(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewInvoiceRepository(db)
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, sampleInvoice("1000", "Asha", base)))
	require.NoError(t, repo.Create(ctx, sampleInvoice("1001", "Ben", base.Add(time.Hour))))
	require.NoError(t, repo.Create(ctx, sampleInvoice("1002", "Chen", base.Add(2*time.Hour))))

	page, total, err := repo.List(ctx, pagination.New(1, 2))
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page, 2)
	assert.Equal(t, "1002", page[0].InvoiceNumber)
	assert.Equal(t, "1001", page[1].InvoiceNumber)
	assert.Len(t, page[0].Items, 2)

	page, _, err = repo.List(ctx, pagination.New(2, 2))
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "1000", page[0].InvoiceNumber)

	page, total, err = repo.List(ctx, pagination.New(3, 2))
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Empty(t, page)
}

func TestInvoiceRepository_ItemsCascadeWithHeader(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewInvoiceRepository(db)
	ctx := context.Background()

	in := sampleInvoice("1000", "Asha", time.Now())
	require.NoError(t, repo.Create(ctx, in))
	require.NoError(t, db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Invoice{}).Error)

	var items int64
	require.NoError(t, db.Model(&model.InvoiceItem{}).Count(&items).Error)
	assert.Zero(t, items)
}
