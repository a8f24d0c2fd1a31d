package report

import (
	"fmt"
	"time"

	"github.com/workpulse-hq/attendance-board-go/internal/domain/attendance"
	"github.com/workpulse-hq/attendance-board-go/internal/domain/report"
)

// Classification thresholds. Company policy, not per-employee schedule:
// check-in after 09:30 is late, check-out before 17:00 with under 6 hours
// worked is an early leave, 2 to under 4.5 hours is a half day.
const (
	lateThresholdHour    = 9
	lateThresholdMinute  = 30
	earlyThresholdHour   = 17
	earlyThresholdMinute = 0

	earlyLeaveMaxHours = 6.0
	halfDayMinHours    = 2.0
	halfDayMaxHours    = 4.5

	clockDisplayFormat = "15:04"
)

// ClassifyInput carries everything needed to classify one employee-day.
type ClassifyInput struct {
	Date      time.Time
	IsWeekend bool
	IsFuture  bool
	IsToday   bool

	// Record is nil when the employee has no attendance row for the day.
	Record *attendance.Attendance

	// LeaveApproved is true when an approved leave request covers the day.
	LeaveApproved bool
}

// ClassifyDay turns a raw attendance record, leave overlap and calendar
// context into exactly one DailyClassification. Pure and stateless; safe to
// call concurrently.
//
// Precedence, first match wins: weekend, future, authoritative Leave/Holiday
// tag, authoritative Absent tag, clock-time derivation, approved leave,
// absent.
func ClassifyDay(in ClassifyInput) report.DailyClassification {
	out := report.DailyClassification{
		Date:         in.Date,
		DateStr:      in.Date.Format("2006-01-02"),
		HoursDisplay: "0.0",
	}

	if in.IsWeekend {
		out.Status = report.DayWeekend
		return out
	}
	if in.IsFuture {
		out.Status = report.DayFuture
		return out
	}

	rec := in.Record
	if rec != nil && rec.StatusTag != nil {
		switch *rec.StatusTag {
		case attendance.TagLeave, attendance.TagHoliday:
			out.Status = report.DayLeave
			return out
		case attendance.TagAbsent:
			out.Status = report.DayAbsent
			return out
		}
		// TagPresent falls through to the clock-time derivation below.
	}

	if rec != nil {
		if !rec.HasClockIn() {
			// Malformed record: tagged or created without a check-in.
			// Treated as a data-quality edge case, not rejected.
			out.Status = report.DayPresent
			return out
		}

		clockIn := *rec.ClockIn
		out.ClockIn = clockIn.Format(clockDisplayFormat)
		isLate := clockIn.After(lateThreshold(in.Date, clockIn.Location()))

		if rec.ClockOut == nil {
			// Still clocked in today: provisional status, zero contributed
			// hours until checkout. A past day without checkout is an
			// abandoned session; shown as present with zero hours.
			if in.IsToday && isLate {
				out.Status = report.DayLate
				return out
			}
			out.Status = report.DayPresent
			return out
		}

		clockOut := *rec.ClockOut
		out.ClockOut = clockOut.Format(clockDisplayFormat)

		hours := clockOut.Sub(clockIn).Hours()
		if hours < 0 {
			hours = 0
		}
		hours = report.Round2(hours)
		out.HoursWorked = hours
		// The display value is what monthly totals accumulate, so the day
		// table and the summary card always agree.
		out.HoursDisplay = fmt.Sprintf("%.1f", report.Round1(hours))

		isEarly := clockOut.Before(earlyThreshold(in.Date, clockOut.Location())) && hours < earlyLeaveMaxHours
		isHalf := hours >= halfDayMinHours && hours < halfDayMaxHours

		switch {
		case isHalf:
			out.Status = report.DayHalf
		case isEarly:
			out.Status = report.DayEarly
		case isLate:
			out.Status = report.DayLate
		default:
			out.Status = report.DayPresent
		}
		return out
	}

	if in.LeaveApproved {
		out.Status = report.DayLeave
		return out
	}
	out.Status = report.DayAbsent
	return out
}

func lateThreshold(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		lateThresholdHour, lateThresholdMinute, 0, 0, loc)
}

func earlyThreshold(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		earlyThresholdHour, earlyThresholdMinute, 0, 0, loc)
}
