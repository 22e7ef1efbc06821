package services

import (
	"context"
	"time"

	"github.com/SscSPs/shop_pos_app/internal/dto"
)

// DashboardSvc summarises sales, stock and credit for the dashboard.
type DashboardSvc interface {
	Summary(ctx context.Context, now time.Time) (*dto.DashboardResponse, error)
}
