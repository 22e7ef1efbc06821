package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/shop_pos_app/internal/core/creditledger"
	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	portsrepo "github.com/SscSPs/shop_pos_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shop_pos_app/internal/core/ports/services"
	"github.com/SscSPs/shop_pos_app/internal/dto"
	"github.com/shopspring/decimal"
)

type dashboardService struct {
	BaseService
	productRepo       portsrepo.ProductReader
	saleRepo          portsrepo.SaleReader
	customerRepo      portsrepo.CustomerReader
	lowStockThreshold int
}

// NewDashboardService creates the dashboard summary service.
func NewDashboardService(repos portsrepo.RepositoryProvider, lowStockThreshold int) portssvc.DashboardSvc {
	return &dashboardService{
		productRepo:       repos.ProductRepo,
		saleRepo:          repos.SaleRepo,
		customerRepo:      repos.CustomerRepo,
		lowStockThreshold: lowStockThreshold,
	}
}

var _ portssvc.DashboardSvc = (*dashboardService)(nil)

// Summary reports figures for the day and month containing now, in now's location.
func (s *dashboardService) Summary(ctx context.Context, now time.Time) (*dto.DashboardResponse, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	today, err := s.saleRepo.SummarizeSales(ctx, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		s.LogError(ctx, err, "Failed to summarize today's sales")
		return nil, fmt.Errorf("failed to summarize sales: %w", err)
	}
	month, err := s.saleRepo.SummarizeSales(ctx, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		s.LogError(ctx, err, "Failed to summarize month's sales")
		return nil, fmt.Errorf("failed to summarize sales: %w", err)
	}
	lowStock, err := s.productRepo.CountLowStock(ctx, s.lowStockThreshold)
	if err != nil {
		s.LogError(ctx, err, "Failed to count low stock products")
		return nil, fmt.Errorf("failed to count low stock: %w", err)
	}
	permanent, err := s.customerRepo.SumRemainingDue(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum customer balances")
		return nil, fmt.Errorf("failed to sum balances: %w", err)
	}
	tempSales, err := s.saleRepo.ListSales(ctx, portsrepo.SaleFilter{SaleType: domain.SaleTemporary})
	if err != nil {
		s.LogError(ctx, err, "Failed to list temporary credit sales")
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	temporary := decimal.Zero
	for _, acc := range creditledger.AggregateByCustomer(tempSales, creditledger.TemporaryIdentity) {
		temporary = temporary.Add(acc.RemainingDue)
	}

	return &dto.DashboardResponse{
		TodaySales:         today.Total,
		TodaySaleCount:     today.Count,
		MonthSales:         month.Total,
		MonthSaleCount:     month.Count,
		LowStockCount:      lowStock,
		PermanentRemaining: permanent,
		TemporaryRemaining: temporary,
		TotalRemainingDue:  permanent.Add(temporary),
	}, nil
}
