package report

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workpulse-hq/attendance-board-go/internal/domain/report"
)

func day(status report.DayStatus, hours float64) report.DailyClassification {
	return report.DailyClassification{Status: status, HoursWorked: hours}
}

func TestAggregateMonth_Empty(t *testing.T) {
	summary := AggregateMonth(nil)

	assert.Zero(t, summary.PresentDays)
	assert.Zero(t, summary.WorkingDays)
	assert.Zero(t, summary.TotalHours)
	assert.Zero(t, summary.AvgHours)
	assert.Zero(t, summary.AttendanceRate)
}

func TestAggregateMonth_MixedMonth(t *testing.T) {
	days := []report.DailyClassification{
		day(report.DayPresent, 8.5),
		day(report.DayLate, 7.75),
		day(report.DayHalf, 3.5),
		day(report.DayEarly, 5.5),
		day(report.DayLeave, 0),
		day(report.DayAbsent, 0),
		day(report.DayWeekend, 0),
		day(report.DayWeekend, 0),
		day(report.DayFuture, 0),
	}

	summary := AggregateMonth(days)

	// late, early and half still count as worked days.
	assert.Equal(t, 4, summary.PresentDays)
	assert.Equal(t, 1, summary.LeaveDays)
	assert.Equal(t, 1, summary.EarlyLeaveDays)
	assert.Equal(t, 1, summary.HalfDays)
	// Weekends and future days are not working days.
	assert.Equal(t, 6, summary.WorkingDays)
	// 8.5 + 7.8 + 3.5 + 5.5, at displayed precision.
	assert.Equal(t, 25.3, summary.TotalHours)
	assert.Equal(t, 6.33, summary.AvgHours)
	assert.Equal(t, 66.7, summary.AttendanceRate)
}

func TestAggregateMonth_TotalsMatchDayTable(t *testing.T) {
	// Summing the displayed per-day values keeps the summary consistent
	// with what the table shows, even for awkward fractions.
	days := []report.DailyClassification{
		day(report.DayPresent, 7.33),
		day(report.DayPresent, 7.33),
		day(report.DayPresent, 7.33),
	}

	summary := AggregateMonth(days)

	assert.Equal(t, 21.9, summary.TotalHours)
	assert.Equal(t, 7.3, summary.AvgHours)
}

func TestAggregateMonth_TotalMatchesDisplayedHours(t *testing.T) {
	// A 09:45–17:30 day works 7.75h and displays as "7.8"; two of them
	// must total 15.6, never the raw-sum 15.5.
	classified := []report.DailyClassification{
		ClassifyDay(ClassifyInput{Date: testDay, Record: recordWith(at(9, 45), at(17, 30))}),
		ClassifyDay(ClassifyInput{Date: testDay.AddDate(0, 0, 1), Record: recordWith(at(9, 45), at(17, 30))}),
	}

	summary := AggregateMonth(classified)

	var displayedSum float64
	for _, d := range classified {
		assert.Equal(t, "7.8", d.HoursDisplay)
		parsed, err := strconv.ParseFloat(d.HoursDisplay, 64)
		require.NoError(t, err)
		displayedSum += parsed
	}

	assert.Equal(t, 15.6, summary.TotalHours)
	assert.Equal(t, report.Round1(displayedSum), summary.TotalHours)
}

func TestAggregateMonth_FullAttendanceRate(t *testing.T) {
	days := []report.DailyClassification{
		day(report.DayPresent, 8),
		day(report.DayLate, 8),
		day(report.DayWeekend, 0),
	}

	summary := AggregateMonth(days)

	assert.Equal(t, 100.0, summary.AttendanceRate)
}

func TestAggregateMonth_AllAbsentKeepsRateAtZero(t *testing.T) {
	days := []report.DailyClassification{
		day(report.DayAbsent, 0),
		day(report.DayAbsent, 0),
	}

	summary := AggregateMonth(days)

	assert.Equal(t, 2, summary.WorkingDays)
	assert.Zero(t, summary.AttendanceRate)
	assert.Zero(t, summary.AvgHours)
}
