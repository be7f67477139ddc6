package service

import (
	"context"
	"fmt"

	"glowkart/internal/model"
	"glowkart/internal/repository"

	"github.com/rs/zerolog"
)

const topProductsLimit = 5

// analyticsService implements AnalyticsService.
type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	logger        zerolog.Logger
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository, logger zerolog.Logger) AnalyticsService {
	return &analyticsService{
		analyticsRepo: analyticsRepo,
		logger:        logger.With().Str("service", "analytics").Logger(),
	}
}

// Report aggregates order totals, status shares, monthly revenue and top
// products into the admin dashboard summary.
func (s *analyticsService) Report(ctx context.Context) (*model.AnalyticsReport, error) {
	orders, revenue, err := s.analyticsRepo.Totals(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to aggregate order totals")
		return nil, fmt.Errorf("failed to aggregate order totals: %w", err)
	}

	byStatus, err := s.analyticsRepo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders by status: %w", err)
	}

	// Percentages are over every order, cancelled included, so the breakdown
	// sums to 100.
	allOrders := 0
	for _, n := range byStatus {
		allOrders += n
	}

	breakdown := make([]model.StatusBreakdown, 0, len(model.OrderStatuses))
	for _, status := range model.OrderStatuses {
		count := byStatus[status]
		pct := 0.0
		if allOrders > 0 {
			pct = float64(count) / float64(allOrders) * 100
		}
		breakdown = append(breakdown, model.StatusBreakdown{
			Status:     status,
			Count:      count,
			Percentage: pct,
		})
	}

	monthly, err := s.analyticsRepo.MonthlyRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate monthly revenue: %w", err)
	}

	top, err := s.analyticsRepo.TopProducts(ctx, topProductsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank top products: %w", err)
	}

	avg := 0.0
	if orders > 0 {
		avg = revenue / float64(orders)
	}

	report := &model.AnalyticsReport{
		TotalOrders:       orders,
		TotalRevenue:      revenue,
		AverageOrderValue: avg,
		StatusBreakdown:   breakdown,
		MonthlyRevenue:    monthly,
		TopProducts:       top,
	}

	s.logger.Debug().
		Int("total_orders", orders).
		Float64("total_revenue", revenue).
		Msg("analytics report built")

	return report, nil
}
