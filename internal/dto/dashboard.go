package dto

import "github.com/shopspring/decimal"

// DashboardResponse summarises the shop's day.
type DashboardResponse struct {
	TodaySales         decimal.Decimal `json:"todaySales"`
	TodaySaleCount     int             `json:"todaySaleCount"`
	MonthSales         decimal.Decimal `json:"monthSales"`
	MonthSaleCount     int             `json:"monthSaleCount"`
	LowStockCount      int             `json:"lowStockCount"`
	PermanentRemaining decimal.Decimal `json:"permanentRemaining"`
	TemporaryRemaining decimal.Decimal `json:"temporaryRemaining"`
	TotalRemainingDue  decimal.Decimal `json:"totalRemainingDue"`
}
