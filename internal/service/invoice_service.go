package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"palmcafe/internal/metrics"
	"palmcafe/internal/model"
	"palmcafe/internal/pdf"
	"palmcafe/internal/repository"
	"palmcafe/pkg/money"
	"palmcafe/pkg/pagination"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// EventInvoiceCreated is published on the order feed after a create commits.
const EventInvoiceCreated = "invoice.created"

// EventPublisher fans events out to connected POS screens.
type EventPublisher interface {
	Publish(event string, payload any)
}

// --- DTOs ---

// ItemRef is a menu item id. Clients send it either as a number or a string.
type ItemRef string

func (r *ItemRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = ItemRef(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("item id must be a string or a number: %w", err)
	}
	*r = ItemRef(n.String())
	return nil
}

type InvoiceItemRequest struct {
	ID       ItemRef         `json:"id" swaggertype:"string"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price" swaggertype:"number"`
	Quantity int             `json:"quantity"`
	Total    decimal.Decimal `json:"total" swaggertype:"number"` // ignored, recomputed from price and quantity
}

type CreateInvoiceRequest struct {
	CustomerName  string               `json:"customerName"`
	CustomerPhone string               `json:"customerPhone"`
	Items         []InvoiceItemRequest `json:"items"`
	TipAmount     json.RawMessage      `json:"tipAmount" swaggertype:"number"`
	Date          string               `json:"date"` // ISO-8601; empty means now
}

type CreateInvoiceResponse struct {
	InvoiceNumber string  `json:"invoiceNumber"`
	PDF           string  `json:"pdf"` // base64
	TaxInfo       TaxInfo `json:"taxInfo"`
}

type DownloadInvoiceResponse struct {
	PDF string `json:"pdf"`
}

type InvoiceItemResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}

type InvoiceResponse struct {
	InvoiceNumber  string                `json:"invoiceNumber"`
	CustomerName   string                `json:"customerName"`
	CustomerPhone  string                `json:"customerPhone,omitempty"`
	Subtotal       float64               `json:"subtotal"`
	TaxAmount      float64               `json:"taxAmount"`
	TipAmount      float64               `json:"tipAmount"`
	Total          float64               `json:"total"`
	TaxRate        float64               `json:"taxRate"`
	TaxName        string                `json:"taxName"`
	CurrencyCode   string                `json:"currencyCode"`
	CurrencySymbol string                `json:"currencySymbol"`
	Date           time.Time             `json:"date"`
	Items          []InvoiceItemResponse `json:"items"`
}

// InvoiceAggregate is a stored invoice with the tax and currency context
// that was in effect when it was created.
type InvoiceAggregate struct {
	Invoice        *model.Invoice
	Tax            TaxCalculation
	CurrencySymbol string
}

// --- Interface ---

type InvoiceService interface {
	Create(ctx context.Context, req CreateInvoiceRequest) (InvoiceAggregate, error)
	CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (CreateInvoiceResponse, error)
	GetInvoice(ctx context.Context, number string) (InvoiceAggregate, error)
	ListInvoices(ctx context.Context, p pagination.Params) ([]InvoiceResponse, int64, error)
	RenderInvoice(ctx context.Context, number string) (DownloadInvoiceResponse, error)
}

type InvoiceServiceParams struct {
	Invoices    repository.InvoiceRepository
	Sequencer   repository.InvoiceSequencer
	TxManager   repository.TransactionManager
	Tax         TaxService
	Currency    CurrencyService
	Renderer    pdf.Renderer
	Publisher   EventPublisher // optional
	Metrics     *metrics.Metrics
	Logger      *zap.Logger
	MaxAttempts int
	Now         func() time.Time
}

type invoiceService struct {
	invoices    repository.InvoiceRepository
	sequencer   repository.InvoiceSequencer
	txManager   repository.TransactionManager
	tax         TaxService
	currency    CurrencyService
	renderer    pdf.Renderer
	publisher   EventPublisher
	metrics     *metrics.Metrics
	log         *zap.Logger
	maxAttempts int
	now         func() time.Time
}

func NewInvoiceService(p InvoiceServiceParams) InvoiceService {
	s := &invoiceService{
		invoices:    p.Invoices,
		sequencer:   p.Sequencer,
		txManager:   p.TxManager,
		tax:         p.Tax,
		currency:    p.Currency,
		renderer:    p.Renderer,
		publisher:   p.Publisher,
		metrics:     p.Metrics,
		log:         p.Logger.Named("invoice"),
		maxAttempts: p.MaxAttempts,
		now:         p.Now,
	}
	if s.maxAttempts < 1 {
		s.maxAttempts = 3
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.metrics == nil {
		s.metrics = metrics.NewNop()
	}
	return s
}

// --- Implementation ---

// Create validates the order, prices it and stores it. The number is taken
// from the sequencer inside the same transaction as the inserts, so a
// rolled-back create gives its number back.
func (s *invoiceService) Create(ctx context.Context, req CreateInvoiceRequest) (InvoiceAggregate, error) {
	start := s.now()

	inv, err := s.buildInvoice(req)
	if err != nil {
		s.metrics.CreateFailed(metrics.ReasonValidation)
		return InvoiceAggregate{}, err
	}

	tax, err := s.tax.Calculate(ctx, inv.Subtotal)
	if err != nil {
		s.metrics.CreateFailed(metrics.ReasonPersistence)
		return InvoiceAggregate{}, err
	}
	inv.TaxRate = tax.TaxRate
	inv.TaxName = tax.TaxName
	inv.TaxAmount = tax.TaxAmount
	inv.Total = money.Sum(inv.Subtotal, inv.TaxAmount, inv.TipAmount)

	if cur, err := s.currency.GetActive(ctx); err != nil {
		// the document falls back to the base symbol at render time
		s.log.Warn("currency lookup failed, invoice stored without currency", zap.Error(err))
	} else {
		inv.CurrencyCode = cur.CurrencyCode
		inv.CurrencySymbol = cur.CurrencySymbol
	}

	if err := s.persist(ctx, inv); err != nil {
		return InvoiceAggregate{}, err
	}

	s.metrics.InvoiceCreated(s.now().Sub(start).Seconds())
	s.log.Info("invoice created",
		zap.String("invoice_number", inv.InvoiceNumber),
		zap.String("total", inv.Total.StringFixed(money.Scale)),
		zap.Int("items", len(inv.Items)))
	if s.publisher != nil {
		s.publisher.Publish(EventInvoiceCreated, toInvoiceResponse(inv))
	}

	return InvoiceAggregate{Invoice: inv, Tax: tax, CurrencySymbol: inv.CurrencySymbol}, nil
}

func (s *invoiceService) persist(ctx context.Context, inv *model.Invoice) error {
	var err error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
			number, err := s.sequencer.Next(txCtx)
			if err != nil {
				return err
			}
			inv.ID = 0
			inv.InvoiceNumber = number
			for i := range inv.Items {
				inv.Items[i].ID = 0
			}
			return s.invoices.Create(txCtx, inv)
		})
		if err == nil {
			return nil
		}
		if !repository.IsUniqueViolation(err) {
			break
		}

		s.metrics.NumberConflict()
		s.log.Warn("invoice number conflict, reconciling sequence",
			zap.String("invoice_number", inv.InvoiceNumber), zap.Int("attempt", attempt))
		if rerr := s.sequencer.Reconcile(ctx); rerr != nil {
			s.log.Error("failed to reconcile invoice sequence", zap.Error(rerr))
			break
		}
	}

	inv.InvoiceNumber = ""
	if repository.IsUniqueViolation(err) {
		s.metrics.CreateFailed(metrics.ReasonConflict)
	} else {
		s.metrics.CreateFailed(metrics.ReasonPersistence)
	}
	s.log.Error("failed to store invoice", zap.Error(err))
	return fmt.Errorf("%w: failed to store invoice", ErrPersistence)
}

func (s *invoiceService) CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (CreateInvoiceResponse, error) {
	agg, err := s.Create(ctx, req)
	if err != nil {
		return CreateInvoiceResponse{}, err
	}

	encoded, err := s.render(ctx, agg.Invoice)
	if err != nil {
		s.metrics.CreateFailed(metrics.ReasonRender)
		return CreateInvoiceResponse{}, err
	}
	return CreateInvoiceResponse{
		InvoiceNumber: agg.Invoice.InvoiceNumber,
		PDF:           encoded,
		TaxInfo:       agg.Tax.Info(),
	}, nil
}

func (s *invoiceService) GetInvoice(ctx context.Context, number string) (InvoiceAggregate, error) {
	inv, err := s.find(ctx, number)
	if err != nil {
		return InvoiceAggregate{}, err
	}
	return InvoiceAggregate{
		Invoice: inv,
		Tax: TaxCalculation{
			TaxRate:   inv.TaxRate,
			TaxName:   inv.TaxName,
			TaxAmount: inv.TaxAmount,
		},
		CurrencySymbol: inv.CurrencySymbol,
	}, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, p pagination.Params) ([]InvoiceResponse, int64, error) {
	invoices, total, err := s.invoices.List(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: failed to list invoices: %v", ErrPersistence, err)
	}
	res := make([]InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		res = append(res, toInvoiceResponse(&invoices[i]))
	}
	return res, total, nil
}

func (s *invoiceService) RenderInvoice(ctx context.Context, number string) (DownloadInvoiceResponse, error) {
	inv, err := s.find(ctx, number)
	if err != nil {
		return DownloadInvoiceResponse{}, err
	}
	encoded, err := s.render(ctx, inv)
	if err != nil {
		return DownloadInvoiceResponse{}, err
	}
	return DownloadInvoiceResponse{PDF: encoded}, nil
}

func (s *invoiceService) find(ctx context.Context, number string) (*model.Invoice, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, fmt.Errorf("%w: invoice number is required", ErrValidation)
	}
	inv, err := s.invoices.FindByNumber(ctx, number)
	if repository.IsNotFound(err) {
		return nil, fmt.Errorf("%w: invoice %s", ErrNotFound, number)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load invoice %s: %v", ErrPersistence, number, err)
	}
	return inv, nil
}

// render prints with the currency snapshot stored on the invoice. Invoices
// stored without one use the currency active now.
func (s *invoiceService) render(ctx context.Context, inv *model.Invoice) (string, error) {
	symbol := money.SymbolOrCode(inv.CurrencySymbol, inv.CurrencyCode)
	if inv.CurrencySymbol == "" && inv.CurrencyCode == "" {
		symbol = s.currency.ResolveSymbol(ctx)
	}

	doc, err := s.renderer.Render(inv, symbol)
	if err != nil {
		s.log.Error("failed to render invoice", zap.String("invoice_number", inv.InvoiceNumber), zap.Error(err))
		return "", fmt.Errorf("%w: could not generate invoice document", ErrRender)
	}
	s.metrics.Rendered(doc.Mark)
	return base64.StdEncoding.EncodeToString(doc.Bytes), nil
}

// buildInvoice validates req and computes line totals and the subtotal.
// Nothing is allocated or written before it succeeds.
func (s *invoiceService) buildInvoice(req CreateInvoiceRequest) (*model.Invoice, error) {
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return nil, fmt.Errorf("%w: customer name is required", ErrValidation)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: at least one item is required", ErrValidation)
	}

	items := make([]model.InvoiceItem, 0, len(req.Items))
	// the subtotal is rounded once over the unrounded line amounts
	amounts := make([]decimal.Decimal, 0, len(req.Items))
	for i, it := range req.Items {
		itemName := strings.TrimSpace(it.Name)
		if itemName == "" {
			return nil, fmt.Errorf("%w: item %d has no name", ErrValidation, i+1)
		}
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item %q must have a positive quantity", ErrValidation, itemName)
		}
		if it.Price.IsNegative() {
			return nil, fmt.Errorf("%w: item %q has a negative price", ErrValidation, itemName)
		}
		items = append(items, model.InvoiceItem{
			MenuItemID: string(it.ID),
			ItemName:   itemName,
			Price:      money.Round2(it.Price),
			Quantity:   it.Quantity,
			Total:      money.LineTotal(it.Price, it.Quantity),
		})
		amounts = append(amounts, it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	tip, err := parseTip(req.TipAmount)
	if err != nil {
		return nil, err
	}
	date, err := s.parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	return &model.Invoice{
		CustomerName:  name,
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		Subtotal:      money.Sum(amounts...),
		TipAmount:     tip,
		Date:          date,
		Items:         items,
	}, nil
}

// parseTip reads a tip sent as a number or numeric string. Anything that is
// not a number counts as no tip; a negative number is rejected.
func parseTip(raw json.RawMessage) (decimal.Decimal, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return decimal.Zero, nil
	}
	var tip decimal.Decimal
	if err := tip.UnmarshalJSON(raw); err != nil {
		return decimal.Zero, nil
	}
	if tip.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: tip amount must not be negative", ErrValidation)
	}
	return money.Round2(tip), nil
}

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

func (s *invoiceService) parseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return s.now(), nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: date %q is not ISO-8601", ErrValidation, v)
}

func toInvoiceResponse(inv *model.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, InvoiceItemResponse{
			ID:       it.MenuItemID,
			Name:     it.ItemName,
			Price:    it.Price.InexactFloat64(),
			Quantity: it.Quantity,
			Total:    it.Total.InexactFloat64(),
		})
	}
	return InvoiceResponse{
		InvoiceNumber:  inv.InvoiceNumber,
		CustomerName:   inv.CustomerName,
		CustomerPhone:  inv.CustomerPhone,
		Subtotal:       inv.Subtotal.InexactFloat64(),
		TaxAmount:      inv.TaxAmount.InexactFloat64(),
		TipAmount:      inv.TipAmount.InexactFloat64(),
		Total:          inv.Total.InexactFloat64(),
		TaxRate:        inv.TaxRate.InexactFloat64(),
		TaxName:        inv.TaxName,
		CurrencyCode:   inv.CurrencyCode,
		CurrencySymbol: inv.CurrencySymbol,
		Date:           inv.Date,
		Items:          items,
	}
}
