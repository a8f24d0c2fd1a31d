package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/workpulse-hq/attendance-board-go/internal/domain/attendance"
	"github.com/workpulse-hq/attendance-board-go/internal/domain/report"
)

// 2026-03-02 is a Monday.
var testDay = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) *time.Time {
	t := time.Date(testDay.Year(), testDay.Month(), testDay.Day(), hour, minute, 0, 0, time.UTC)
	return &t
}

func recordWith(clockIn, clockOut *time.Time) *attendance.Attendance {
	return &attendance.Attendance{
		ID:         "att-1",
		EmployeeID: "emp-1",
		Date:       testDay,
		ClockIn:    clockIn,
		ClockOut:   clockOut,
	}
}

func TestClassifyDay_FullDayOnTime(t *testing.T) {
	out := ClassifyDay(ClassifyInput{Date: testDay, Record: recordWith(at(9, 15), at(17, 45))})

	assert.Equal(t, report.DayPresent, out.Status)
	assert.Equal(t, 8.5, out.HoursWorked)
	assert.Equal(t, "8.5", out.HoursDisplay)
	assert.Equal(t, "09:15", out.ClockIn)
	assert.Equal(t, "17:45", out.ClockOut)
}

func TestClassifyDay_LateArrival(t *testing.T) {
	out := ClassifyDay(ClassifyInput{Date: testDay, Record: recordWith(at(9, 45), at(17, 30))})

	assert.Equal(t, report.DayLate, out.Status)
	assert.Equal(t, 7.75, out.HoursWorked)
	assert.Equal(t, "7.8", out.HoursDisplay)
}

func TestClassifyDay_ExactThresholdIsNotLate(t *testing.T) {
	out := ClassifyDay(ClassifyInput{Date: testDay, Record: recordWith(at(9, 30), at(17, 30))})

	assert.Equal(t, report.DayPresent, out.Status)
}

func TestClassifyDay_HalfDay(t *testing.T) {
	out := ClassifyDay(ClassifyInput{Date: testDay, Record: recordWith(at(9, 0), at(12, 30))})

	assert.Equal(t, report.DayHalf, out.Status)
	assert.Equal(t, 3.5, out.HoursWorked)
}

func TestClassifyDay_EarlyLeave(t *testing.T) {
	// 5.5 hours: too long for a half day, out before 17:00 with under 6h.
	out := ClassifyDay(ClassifyInput{Date: testDay, Record: recordWith(at(9, 0), at(14, 30))})

	assert.Equal(t, report.DayEarly, out.Status)
	assert.Equal(t, 5.5, out.HoursWorked)
}

func TestClassifyDay_HalfDayWinsOverEarlyAndLate(t *testing.T) {
	// Late arrival and early departure, but 2.5 hours worked: half day.
	out := ClassifyDay(ClassifyInput{Date: testDay, Record: recordWith(at(10, 0), at(12, 30))})

	assert.Equal(t, report.DayHalf, out.Status)
}

func TestClassifyDay_Weekend(t *testing.T) {
	saturday := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	// Weekend wins even when a record exists.
	out := ClassifyDay(ClassifyInput{
		Date:      saturday,
		IsWeekend: true,
		Record:    recordWith(at(9, 0), at(17, 0)),
	})

	assert.Equal(t, report.DayWeekend, out.Status)
	assert.Zero(t, out.HoursWorked)
}

func TestClassifyDay_Future(t *testing.T) {
	out := ClassifyDay(ClassifyInput{Date: testDay, IsFuture: true, LeaveApproved: true})

	assert.Equal(t, report.DayFuture, out.Status)
}

func TestClassifyDay_ApprovedLeaveWithoutRecord(t *testing.T) {
	out := ClassifyDay(ClassifyInput{Date: testDay, LeaveApproved: true})

	assert.Equal(t, report.DayLeave, out.Status)
	assert.Equal(t, "0.0", out.HoursDisplay)
}

func TestClassifyDay_NoRecordNoLeave(t *testing.T) {
	out := ClassifyDay(ClassifyInput{Date: testDay})

	assert.Equal(t, report.DayAbsent, out.Status)
}

func TestClassifyDay_LeaveTagBeatsClockTimes(t *testing.T) {
	tag := attendance.TagLeave
	rec := recordWith(at(9, 0), at(17, 0))
	rec.StatusTag = &tag

	out := ClassifyDay(ClassifyInput{Date: testDay, Record: rec})

	assert.Equal(t, report.DayLeave, out.Status)
	assert.Zero(t, out.HoursWorked)
}

func TestClassifyDay_AbsentTagBeatsApprovedLeave(t *testing.T) {
	tag := attendance.TagAbsent
	rec := recordWith(nil, nil)
	rec.StatusTag = &tag

	out := ClassifyDay(ClassifyInput{Date: testDay, Record: rec, LeaveApproved: true})

	assert.Equal(t, report.DayAbsent, out.Status)
}

func TestClassifyDay_PresentTagFallsThroughToClocks(t *testing.T) {
	tag := attendance.TagPresent
	rec := recordWith(at(9, 45), at(17, 30))
	rec.StatusTag = &tag

	out := ClassifyDay(ClassifyInput{Date: testDay, Record: rec})

	assert.Equal(t, report.DayLate, out.Status)
}

func TestClassifyDay_OpenSessionToday(t *testing.T) {
	onTime := ClassifyDay(ClassifyInput{Date: testDay, IsToday: true, Record: recordWith(at(9, 0), nil)})
	late := ClassifyDay(ClassifyInput{Date: testDay, IsToday: true, Record: recordWith(at(10, 0), nil)})

	assert.Equal(t, report.DayPresent, onTime.Status)
	assert.Equal(t, report.DayLate, late.Status)
	// Hours contribute only after checkout.
	assert.Zero(t, onTime.HoursWorked)
	assert.Zero(t, late.HoursWorked)
}

func TestClassifyDay_AbandonedPastSession(t *testing.T) {
	out := ClassifyDay(ClassifyInput{Date: testDay, Record: recordWith(at(10, 0), nil)})

	assert.Equal(t, report.DayPresent, out.Status)
	assert.Zero(t, out.HoursWorked)
}

func TestClassifyDay_RecordWithoutClockIn(t *testing.T) {
	out := ClassifyDay(ClassifyInput{Date: testDay, Record: recordWith(nil, at(17, 0))})

	assert.Equal(t, report.DayPresent, out.Status)
	assert.Zero(t, out.HoursWorked)
}

func TestClassifyDay_NegativeDurationClampedToZero(t *testing.T) {
	out := ClassifyDay(ClassifyInput{Date: testDay, Record: recordWith(at(17, 0), at(9, 0))})

	assert.Zero(t, out.HoursWorked)
	assert.Equal(t, "0.0", out.HoursDisplay)
}
