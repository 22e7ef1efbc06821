package services

import (
	"context"
	"time"

	"github.com/SscSPs/shop_pos_app/internal/core/domain"
)

// ReportSvc builds period reports over recorded sales.
type ReportSvc interface {
	// SalesReport summarises sales created in [from, to).
	SalesReport(ctx context.Context, from, to time.Time) (*domain.SalesReport, error)
}
