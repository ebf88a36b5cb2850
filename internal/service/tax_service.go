package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"palmcafe/internal/metrics"
	"palmcafe/internal/model"
	"palmcafe/internal/repository"
	"palmcafe/pkg/money"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// swapAttempts bounds retries when two settings updates race for the active slot.
const swapAttempts = 3

var maxTaxRate = decimal.NewFromInt(100)

// --- DTOs ---

type UpdateTaxSettingRequest struct {
	TaxRate *decimal.Decimal `json:"taxRate" binding:"required" swaggertype:"number"`
	TaxName string           `json:"taxName" binding:"required"`
}

type CalculateTaxRequest struct {
	Subtotal *decimal.Decimal `json:"subtotal" binding:"required" swaggertype:"number"`
}

type TaxSettingResponse struct {
	TaxRate float64 `json:"taxRate"`
	TaxName string  `json:"taxName"`
}

type TaxHistoryResponse struct {
	ID        uint      `json:"id"`
	TaxRate   float64   `json:"taxRate"`
	TaxName   string    `json:"taxName"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// TaxInfo is the tax part of a create-invoice response.
type TaxInfo struct {
	TaxRate   float64 `json:"taxRate"`
	TaxName   string  `json:"taxName"`
	TaxAmount float64 `json:"taxAmount"`
}

// TaxCalculation is the tax applied to one subtotal.
type TaxCalculation struct {
	TaxRate   decimal.Decimal
	TaxName   string
	TaxAmount decimal.Decimal
}

func (c TaxCalculation) Info() TaxInfo {
	return TaxInfo{
		TaxRate:   c.TaxRate.InexactFloat64(),
		TaxName:   c.TaxName,
		TaxAmount: c.TaxAmount.InexactFloat64(),
	}
}

// --- Interface ---

type TaxService interface {
	GetActive(ctx context.Context) (TaxSettingResponse, error)
	Calculate(ctx context.Context, subtotal decimal.Decimal) (TaxCalculation, error)
	Update(ctx context.Context, req UpdateTaxSettingRequest) (TaxSettingResponse, error)
	History(ctx context.Context) ([]TaxHistoryResponse, error)
}

type taxService struct {
	settings  repository.SettingRepository
	txManager repository.TransactionManager
	metrics   *metrics.Metrics
	log       *zap.Logger
}

func NewTaxService(settings repository.SettingRepository, txManager repository.TransactionManager, m *metrics.Metrics, log *zap.Logger) TaxService {
	return &taxService{settings: settings, txManager: txManager, metrics: m, log: log.Named("tax")}
}

// --- Implementation ---

func (s *taxService) GetActive(ctx context.Context) (TaxSettingResponse, error) {
	setting, err := s.active(ctx)
	if err != nil {
		return TaxSettingResponse{}, err
	}
	return toTaxSettingResponse(setting), nil
}

func (s *taxService) Calculate(ctx context.Context, subtotal decimal.Decimal) (TaxCalculation, error) {
	if subtotal.IsNegative() {
		return TaxCalculation{}, fmt.Errorf("%w: subtotal must not be negative", ErrValidation)
	}
	setting, err := s.active(ctx)
	if err != nil {
		return TaxCalculation{}, err
	}
	return TaxCalculation{
		TaxRate:   setting.TaxRate,
		TaxName:   setting.TaxName,
		TaxAmount: money.Percent(subtotal, setting.TaxRate),
	}, nil
}

func (s *taxService) Update(ctx context.Context, req UpdateTaxSettingRequest) (TaxSettingResponse, error) {
	name := strings.TrimSpace(req.TaxName)
	if req.TaxRate == nil {
		return TaxSettingResponse{}, fmt.Errorf("%w: tax rate is required", ErrValidation)
	}
	rate := *req.TaxRate
	if rate.IsNegative() || rate.GreaterThan(maxTaxRate) {
		return TaxSettingResponse{}, fmt.Errorf("%w: tax rate must be between 0 and 100", ErrValidation)
	}
	if name == "" {
		return TaxSettingResponse{}, fmt.Errorf("%w: tax name is required", ErrValidation)
	}

	setting := model.TaxSetting{TaxRate: money.Round2(rate), TaxName: name}
	err := swapWithRetry(ctx, s.txManager, func(txCtx context.Context) error {
		return s.settings.SwapTax(txCtx, &setting)
	})
	if err != nil {
		return TaxSettingResponse{}, fmt.Errorf("%w: failed to update tax setting: %v", ErrPersistence, err)
	}

	s.metrics.SettingsSwapped(model.SettingKindTax)
	s.log.Info("tax setting updated", zap.String("tax_name", setting.TaxName), zap.String("tax_rate", setting.TaxRate.String()))
	return toTaxSettingResponse(setting), nil
}

func (s *taxService) History(ctx context.Context) ([]TaxHistoryResponse, error) {
	rows, err := s.settings.TaxHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch tax history: %v", ErrPersistence, err)
	}
	res := make([]TaxHistoryResponse, 0, len(rows))
	for _, r := range rows {
		res = append(res, TaxHistoryResponse{
			ID:        r.ID,
			TaxRate:   r.TaxRate.InexactFloat64(),
			TaxName:   r.TaxName,
			Active:    r.Active,
			CreatedAt: r.CreatedAt,
		})
	}
	return res, nil
}

// active returns the active row, or the zero-rate default when the history is empty.
func (s *taxService) active(ctx context.Context) (model.TaxSetting, error) {
	setting, err := s.settings.ActiveTax(ctx)
	if repository.IsNotFound(err) {
		return model.DefaultTaxSetting(), nil
	}
	if err != nil {
		return model.TaxSetting{}, fmt.Errorf("%w: failed to read tax setting: %v", ErrPersistence, err)
	}
	return *setting, nil
}

func toTaxSettingResponse(s model.TaxSetting) TaxSettingResponse {
	return TaxSettingResponse{TaxRate: s.TaxRate.InexactFloat64(), TaxName: s.TaxName}
}

// swapWithRetry runs one settings swap transaction, retrying when a
// concurrent swap wins the race for the active slot.
func swapWithRetry(ctx context.Context, tx repository.TransactionManager, fn func(context.Context) error) error {
	var err error
	for attempt := 0; attempt < swapAttempts; attempt++ {
		err = tx.RunInTx(ctx, fn)
		if err == nil || !repository.IsUniqueViolation(err) {
			return err
		}
	}
	return err
}
