package dto

// SalesReportParams are the inclusive days a sales report covers. Both default to today.
type SalesReportParams struct {
	Start string `form:"start"` // YYYY-MM-DD
	End   string `form:"end"`   // YYYY-MM-DD
}
