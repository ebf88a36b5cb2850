package service_test

import (
	"context"
	"sync"
	"testing"

	"palmcafe/internal/metrics"
	"palmcafe/internal/model"
	"palmcafe/internal/pdf"
	"palmcafe/internal/repository"
	"palmcafe/internal/service"
	"palmcafe/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	db        *gorm.DB
	invoices  service.InvoiceService
	tax       service.TaxService
	currency  service.CurrencyService
	publisher *recordingPublisher
	renderer  *capturingRenderer
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	return newFixtureWithLogger(t, zap.NewNop())
}

func newFixtureWithLogger(t *testing.T, log *zap.Logger) fixture {
	t.Helper()
	db := testutil.NewDB(t)
	m := metrics.NewNop()
	txManager := repository.NewTransactionManager(db)
	settings := repository.NewSettingRepository(db)

	f := fixture{
		db:        db,
		tax:       service.NewTaxService(settings, txManager, m, log),
		currency:  service.NewCurrencyService(settings, txManager, m, log),
		publisher: &recordingPublisher{},
		renderer:  &capturingRenderer{next: pdf.NewRenderer(pdf.Config{}, log)},
	}
	f.invoices = service.NewInvoiceService(service.InvoiceServiceParams{
		Invoices:    repository.NewInvoiceRepository(db),
		Sequencer:   repository.NewInvoiceSequencer(db),
		TxManager:   txManager,
		Tax:         f.tax,
		Currency:    f.currency,
		Renderer:    f.renderer,
		Publisher:   f.publisher,
		Metrics:     m,
		Logger:      log,
		MaxAttempts: 3,
	})
	return f
}

func (f fixture) setTax(t *testing.T, rate, name string) {
	t.Helper()
	r := decimal.RequireFromString(rate)
	_, err := f.tax.Update(context.Background(), service.UpdateTaxSettingRequest{TaxRate: &r, TaxName: name})
	require.NoError(t, err)
}

func (f fixture) setCurrency(t *testing.T, code, symbol, name string) {
	t.Helper()
	_, err := f.currency.Update(context.Background(), service.UpdateCurrencySettingRequest{
		CurrencyCode: code, CurrencySymbol: symbol, CurrencyName: name,
	})
	require.NoError(t, err)
}

func (f fixture) invoiceCount(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(&model.Invoice{}).Count(&n).Error)
	return n
}

func latte(qty int) service.InvoiceItemRequest {
	return service.InvoiceItemRequest{
		ID:       "m-1",
		Name:     "Latte",
		Price:    decimal.RequireFromString("3.75"),
		Quantity: qty,
	}
}

func order(customer string, items ...service.InvoiceItemRequest) service.CreateInvoiceRequest {
	return service.CreateInvoiceRequest{CustomerName: customer, Items: items}
}

type publishedEvent struct {
	name    string
	payload any
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *recordingPublisher) Publish(event string, payload any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{name: event, payload: payload})
}

func (p *recordingPublisher) Events() []publishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]publishedEvent(nil), p.events...)
}

// capturingRenderer records the symbol of the last render and delegates to next.
type capturingRenderer struct {
	mu     sync.Mutex
	symbol string
	next   pdf.Renderer
}

func (r *capturingRenderer) Render(inv *model.Invoice, symbol string) (pdf.Document, error) {
	r.mu.Lock()
	r.symbol = symbol
	r.mu.Unlock()
	return r.next.Render(inv, symbol)
}

func (r *capturingRenderer) LastSymbol() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.symbol
}

func repositoryStats(f fixture) repository.StatisticsRepository {
	return repository.NewStatisticsRepository(f.db)
}
