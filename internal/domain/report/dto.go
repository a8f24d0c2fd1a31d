package report

import (
	"math"
	"time"

	"github.com/workpulse-hq/attendance-board-go/internal/pkg/validator"
)

// DayStatus is the per-day classification. Mutually exclusive and total:
// every date in a queried range receives exactly one status.
type DayStatus string

const (
	DayWeekend DayStatus = "weekend"
	DayFuture  DayStatus = "future"
	DayPresent DayStatus = "present"
	DayLate    DayStatus = "late"
	DayEarly   DayStatus = "early"
	DayHalf    DayStatus = "half"
	DayLeave   DayStatus = "leave"
	DayAbsent  DayStatus = "absent"
)

// IsWorked reports whether the status counts as a present day.
func (s DayStatus) IsWorked() bool {
	switch s {
	case DayPresent, DayLate, DayEarly, DayHalf:
		return true
	}
	return false
}

// DailyClassification is derived, never persisted.
type DailyClassification struct {
	Date    time.Time `json:"-"`
	DateStr string    `json:"date"`
	Status  DayStatus `json:"status"`
	ClockIn string    `json:"clock_in,omitempty"`
	ClockOut string   `json:"clock_out,omitempty"`

	// HoursWorked is rounded to 2 decimals.
	HoursWorked float64 `json:"hours_worked"`

	// HoursDisplay is the 1-decimal rendering used by the dashboard table.
	// Monthly totals accumulate this displayed precision, never the raw
	// deltas, so the table and the summary card can never disagree.
	HoursDisplay string `json:"hours_display"`
}

type MonthlySummary struct {
	PresentDays    int     `json:"present_days"`
	LeaveDays      int     `json:"leave_days"`
	EarlyLeaveDays int     `json:"early_leave_days"`
	HalfDays       int     `json:"half_days"`
	WorkingDays    int     `json:"working_days"`
	TotalHours     float64 `json:"total_hours"`
	AvgHours       float64 `json:"avg_hours"`

	// AttendanceRate is presentDays/workingDays*100, one decimal, in
	// [0, 100]. Defined as 0.0 when workingDays is zero.
	AttendanceRate float64 `json:"attendance_rate"`
}

type MonthlyReportRequest struct {
	EmployeeID string
	Year       int
	Month      int
}

func (r MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}
	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year is out of range"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthlyReportResponse struct {
	EmployeeID string                `json:"employee_id"`
	Year       int                   `json:"year"`
	Month      int                   `json:"month"`
	Days       []DailyClassification `json:"days"`
	Summary    MonthlySummary        `json:"summary"`
}

// Round2 rounds to 2 decimals, the internal precision of per-day hours.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds to 1 decimal, the display precision of rates and totals.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
