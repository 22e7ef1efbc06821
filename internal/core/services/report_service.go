package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/shop_pos_app/internal/apperrors"
	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	portsrepo "github.com/SscSPs/shop_pos_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shop_pos_app/internal/core/ports/services"
	"github.com/SscSPs/shop_pos_app/internal/core/reporting"
)

type reportService struct {
	BaseService
	saleRepo     portsrepo.SaleReader
	customerRepo portsrepo.CustomerReader
}

// NewReportService creates the sales reporting service.
func NewReportService(repos portsrepo.RepositoryProvider) portssvc.ReportSvc {
	return &reportService{saleRepo: repos.SaleRepo, customerRepo: repos.CustomerRepo}
}

var _ portssvc.ReportSvc = (*reportService)(nil)

func (s *reportService) SalesReport(ctx context.Context, from, to time.Time) (*domain.SalesReport, error) {
	if !to.After(from) {
		return nil, fmt.Errorf("%w: report end must be after its start", apperrors.ErrValidation)
	}
	s.LogDebug(ctx, "Building sales report", slog.Time("from", from), slog.Time("to", to))

	sales, err := s.saleRepo.ListSales(ctx, portsrepo.SaleFilter{From: &from, To: &to})
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales for report")
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	ledgerPaid, err := s.customerRepo.SumPaymentsBetween(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum ledger payments for report")
		return nil, fmt.Errorf("failed to sum payments: %w", err)
	}

	report := reporting.BuildSalesReport(from, to, sales, ledgerPaid, reporting.DefaultTopProducts)
	return &report, nil
}
