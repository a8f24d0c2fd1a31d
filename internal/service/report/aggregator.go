package report

import (
	"github.com/workpulse-hq/attendance-board-go/internal/domain/report"
)

// AggregateMonth rolls one employee's classified days into a MonthlySummary.
// Recomputed wholesale from a freshly classified sequence on every refresh;
// there is no incremental path to drift.
//
// TotalHours sums each day's displayed (1-decimal) hours, not the raw
// 2-decimal values, so the day table and the summary card can never
// disagree by a rounding artifact.
func AggregateMonth(days []report.DailyClassification) report.MonthlySummary {
	var summary report.MonthlySummary

	for _, day := range days {
		if day.Status.IsWorked() {
			summary.PresentDays++
		}
		switch day.Status {
		case report.DayLeave:
			summary.LeaveDays++
		case report.DayEarly:
			summary.EarlyLeaveDays++
		case report.DayHalf:
			summary.HalfDays++
		}
		if day.Status != report.DayWeekend && day.Status != report.DayFuture {
			summary.WorkingDays++
		}
		summary.TotalHours += report.Round1(day.HoursWorked)
	}

	summary.TotalHours = report.Round1(summary.TotalHours)

	if summary.PresentDays > 0 {
		summary.AvgHours = report.Round2(summary.TotalHours / float64(summary.PresentDays))
	}
	if summary.WorkingDays > 0 {
		summary.AttendanceRate = report.Round1(float64(summary.PresentDays) / float64(summary.WorkingDays) * 100)
	}

	return summary
}
