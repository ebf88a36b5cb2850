package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"palmcafe/internal/metrics"
	"palmcafe/internal/model"
	"palmcafe/internal/repository"
	"palmcafe/pkg/money"

	"go.uber.org/zap"
)

var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// --- DTOs ---

type UpdateCurrencySettingRequest struct {
	CurrencyCode   string `json:"currencyCode" binding:"required"`
	CurrencySymbol string `json:"currencySymbol" binding:"required"`
	CurrencyName   string `json:"currencyName" binding:"required"`
}

type CurrencySettingResponse struct {
	CurrencyCode   string `json:"currencyCode"`
	CurrencySymbol string `json:"currencySymbol"`
	CurrencyName   string `json:"currencyName"`
}

type CurrencyHistoryResponse struct {
	ID             uint      `json:"id"`
	CurrencyCode   string    `json:"currencyCode"`
	CurrencySymbol string    `json:"currencySymbol"`
	CurrencyName   string    `json:"currencyName"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"createdAt"`
}

// catalog is the fixed list offered on the settings screen.
var catalog = []CurrencySettingResponse{
	{"USD", "$", "US Dollar"},
	{"EUR", "€", "Euro"},
	{"GBP", "£", "British Pound"},
	{"INR", "₹", "Indian Rupee"},
	{"JPY", "¥", "Japanese Yen"},
	{"CAD", "C$", "Canadian Dollar"},
	{"AUD", "A$", "Australian Dollar"},
	{"CNY", "元", "Chinese Yuan"},
	{"KRW", "₩", "South Korean Won"},
	{"SGD", "S$", "Singapore Dollar"},
	{"CHF", "CHF", "Swiss Franc"},
	{"AED", "د.إ", "UAE Dirham"},
	{"MYR", "RM", "Malaysian Ringgit"},
	{"THB", "฿", "Thai Baht"},
	{"PHP", "₱", "Philippine Peso"},
	{"NZD", "NZ$", "New Zealand Dollar"},
}

// --- Interface ---

type CurrencyService interface {
	GetActive(ctx context.Context) (CurrencySettingResponse, error)
	Update(ctx context.Context, req UpdateCurrencySettingRequest) (CurrencySettingResponse, error)
	History(ctx context.Context) ([]CurrencyHistoryResponse, error)
	Catalog() []CurrencySettingResponse
	// ResolveSymbol returns the render-safe symbol of the active currency.
	// It never fails: lookup errors degrade to money.BaseSymbol.
	ResolveSymbol(ctx context.Context) string
}

type currencyService struct {
	settings  repository.SettingRepository
	txManager repository.TransactionManager
	metrics   *metrics.Metrics
	log       *zap.Logger
}

func NewCurrencyService(settings repository.SettingRepository, txManager repository.TransactionManager, m *metrics.Metrics, log *zap.Logger) CurrencyService {
	return &currencyService{settings: settings, txManager: txManager, metrics: m, log: log.Named("currency")}
}

// --- Implementation ---

func (s *currencyService) GetActive(ctx context.Context) (CurrencySettingResponse, error) {
	setting, err := s.active(ctx)
	if err != nil {
		return CurrencySettingResponse{}, err
	}
	return toCurrencySettingResponse(setting), nil
}

func (s *currencyService) Update(ctx context.Context, req UpdateCurrencySettingRequest) (CurrencySettingResponse, error) {
	code := strings.ToUpper(strings.TrimSpace(req.CurrencyCode))
	symbol := strings.TrimSpace(req.CurrencySymbol)
	name := strings.TrimSpace(req.CurrencyName)

	if !currencyCodePattern.MatchString(code) {
		return CurrencySettingResponse{}, fmt.Errorf("%w: currency code must be three letters", ErrValidation)
	}
	if symbol == "" {
		return CurrencySettingResponse{}, fmt.Errorf("%w: currency symbol is required", ErrValidation)
	}
	if name == "" {
		return CurrencySettingResponse{}, fmt.Errorf("%w: currency name is required", ErrValidation)
	}

	setting := model.CurrencySetting{CurrencyCode: code, CurrencySymbol: symbol, CurrencyName: name}
	err := swapWithRetry(ctx, s.txManager, func(txCtx context.Context) error {
		return s.settings.SwapCurrency(txCtx, &setting)
	})
	if err != nil {
		return CurrencySettingResponse{}, fmt.Errorf("%w: failed to update currency setting: %v", ErrPersistence, err)
	}

	if _, ok := money.LookupSafeSymbol(symbol); !ok {
		s.log.Warn("currency symbol has no render-safe form, invoices will print the code",
			zap.String("currency_code", code), zap.String("currency_symbol", symbol))
	}
	s.metrics.SettingsSwapped(model.SettingKindCurrency)
	s.log.Info("currency setting updated", zap.String("currency_code", code))
	return toCurrencySettingResponse(setting), nil
}

func (s *currencyService) History(ctx context.Context) ([]CurrencyHistoryResponse, error) {
	rows, err := s.settings.CurrencyHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch currency history: %v", ErrPersistence, err)
	}
	res := make([]CurrencyHistoryResponse, 0, len(rows))
	for _, r := range rows {
		res = append(res, CurrencyHistoryResponse{
			ID:             r.ID,
			CurrencyCode:   r.CurrencyCode,
			CurrencySymbol: r.CurrencySymbol,
			CurrencyName:   r.CurrencyName,
			Active:         r.Active,
			CreatedAt:      r.CreatedAt,
		})
	}
	return res, nil
}

func (s *currencyService) Catalog() []CurrencySettingResponse {
	out := make([]CurrencySettingResponse, len(catalog))
	copy(out, catalog)
	return out
}

func (s *currencyService) ResolveSymbol(ctx context.Context) string {
	setting, err := s.active(ctx)
	if err != nil {
		s.log.Warn("currency lookup failed, using base symbol", zap.Error(err))
		return money.BaseSymbol
	}
	return money.SymbolOrCode(setting.CurrencySymbol, setting.CurrencyCode)
}

func (s *currencyService) active(ctx context.Context) (model.CurrencySetting, error) {
	setting, err := s.settings.ActiveCurrency(ctx)
	if repository.IsNotFound(err) {
		return model.DefaultCurrencySetting(), nil
	}
	if err != nil {
		return model.CurrencySetting{}, fmt.Errorf("%w: failed to read currency setting: %v", ErrPersistence, err)
	}
	return *setting, nil
}

func toCurrencySettingResponse(s model.CurrencySetting) CurrencySettingResponse {
	return CurrencySettingResponse{
		CurrencyCode:   s.CurrencyCode,
		CurrencySymbol: s.CurrencySymbol,
		CurrencyName:   s.CurrencyName,
	}
}
