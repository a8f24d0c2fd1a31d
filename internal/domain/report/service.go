package report

import "context"

type ReportService interface {
	// GetMonthlyReport classifies every day of the requested calendar month
	// for one employee and aggregates the result. Recomputed wholesale on
	// every call; the cache layer in front of it is the only shortcut.
	GetMonthlyReport(ctx context.Context, req MonthlyReportRequest) (MonthlyReportResponse, error)

	// InvalidateMonth drops the cached report for an employee/month. Called
	// by the edit-request workflow after an approved correction.
	InvalidateMonth(ctx context.Context, employeeID string, year, month int) error
}
