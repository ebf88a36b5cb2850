package service

import (
	"context"
	"fmt"

	"palmcafe/internal/model"
	"palmcafe/internal/repository"
	"palmcafe/pkg/money"
)

type StatisticsService interface {
	GetStatistics(ctx context.Context) (model.StatisticsResponse, error)
}

type statisticsService struct {
	repo repository.StatisticsRepository
}

func NewStatisticsService(repo repository.StatisticsRepository) StatisticsService {
	return &statisticsService{repo: repo}
}

// GetStatistics rolls up every stored invoice. An empty history yields zeros.
func (s *statisticsService) GetStatistics(ctx context.Context) (model.StatisticsResponse, error) {
	totals, err := s.repo.InvoiceTotals(ctx)
	if err != nil {
		return model.StatisticsResponse{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return model.StatisticsResponse{
		TotalRevenue:    money.Round2(totals.TotalRevenue).InexactFloat64(),
		TotalOrders:     totals.TotalOrders,
		UniqueCustomers: totals.UniqueCustomers,
		TotalTax:        money.Round2(totals.TotalTax).InexactFloat64(),
		TotalTips:       money.Round2(totals.TotalTips).InexactFloat64(),
	}, nil
}
