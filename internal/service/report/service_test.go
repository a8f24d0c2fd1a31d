package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workpulse-hq/attendance-board-go/internal/domain/attendance"
	"github.com/workpulse-hq/attendance-board-go/internal/domain/leave"
	"github.com/workpulse-hq/attendance-board-go/internal/domain/report"
	"github.com/workpulse-hq/attendance-board-go/internal/pkg/cache"
	"github.com/workpulse-hq/attendance-board-go/internal/pkg/validator"
)

type fakeMonthSource struct {
	attendance.AttendanceRepository

	records []attendance.Attendance
	calls   int
}

func (f *fakeMonthSource) ListForMonth(_ context.Context, _ string, _ int, _ time.Month) ([]attendance.Attendance, error) {
	f.calls++
	return f.records, nil
}

type fakeLeaveSource struct {
	approved []leave.LeaveRequest
}

func (f *fakeLeaveSource) ListApprovedInRange(_ context.Context, _ string, _, _ time.Time) ([]leave.LeaveRequest, error) {
	return f.approved, nil
}

func monthRecord(employeeID string, day, inHour, inMinute, outHour, outMinute int) attendance.Attendance {
	date := time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC)
	clockIn := date.Add(time.Duration(inHour)*time.Hour + time.Duration(inMinute)*time.Minute)
	clockOut := date.Add(time.Duration(outHour)*time.Hour + time.Duration(outMinute)*time.Minute)
	return attendance.Attendance{
		ID:         "att-" + date.Format("02"),
		EmployeeID: employeeID,
		Date:       date,
		ClockIn:    &clockIn,
		ClockOut:   &clockOut,
	}
}

func newTestReportService(source *fakeMonthSource, leaves *fakeLeaveSource) *ReportServiceImpl {
	return &ReportServiceImpl{
		attendanceRepo: source,
		leaveRepo:      leaves,
		cache:          cache.NewMemoryCache(),
		// Pinned to mid-March 2026 so the month has past, present and
		// future days.
		now: func() time.Time { return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC) },
	}
}

func TestReportService_GetMonthlyReport_ClassifiesWholeMonth(t *testing.T) {
	source := &fakeMonthSource{records: []attendance.Attendance{
		monthRecord("emp-1", 2, 9, 15, 17, 45),  // Monday, on time
		monthRecord("emp-1", 3, 9, 45, 17, 30),  // Tuesday, late
		monthRecord("emp-1", 4, 9, 0, 12, 30),   // Wednesday, half day
	}}
	leaves := &fakeLeaveSource{approved: []leave.LeaveRequest{{
		EmployeeID: "emp-1",
		StartDate:  time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC),
		Status:     leave.LeaveRequestStatusApproved,
	}}}
	service := newTestReportService(source, leaves)

	resp, err := service.GetMonthlyReport(context.Background(), report.MonthlyReportRequest{
		EmployeeID: "emp-1", Year: 2026, Month: 3,
	})
	require.NoError(t, err)

	// Every calendar day classified exactly once.
	require.Len(t, resp.Days, 31)

	byDate := make(map[string]report.DailyClassification)
	for _, d := range resp.Days {
		byDate[d.DateStr] = d
	}

	assert.Equal(t, report.DayWeekend, byDate["2026-03-01"].Status) // Sunday
	assert.Equal(t, report.DayPresent, byDate["2026-03-02"].Status)
	assert.Equal(t, report.DayLate, byDate["2026-03-03"].Status)
	assert.Equal(t, report.DayHalf, byDate["2026-03-04"].Status)
	assert.Equal(t, report.DayLeave, byDate["2026-03-05"].Status)
	assert.Equal(t, report.DayLeave, byDate["2026-03-06"].Status)
	assert.Equal(t, report.DayAbsent, byDate["2026-03-09"].Status)
	assert.Equal(t, report.DayFuture, byDate["2026-03-16"].Status)
	assert.Equal(t, report.DayFuture, byDate["2026-03-31"].Status)

	assert.Equal(t, 3, resp.Summary.PresentDays)
	assert.Equal(t, 2, resp.Summary.LeaveDays)
	assert.Equal(t, 1, resp.Summary.HalfDays)
	assert.Equal(t, report.Round1(8.5+7.8+3.5), resp.Summary.TotalHours)
}

func TestReportService_GetMonthlyReport_CachesSecondRead(t *testing.T) {
	source := &fakeMonthSource{records: []attendance.Attendance{
		monthRecord("emp-1", 2, 9, 0, 17, 30),
	}}
	service := newTestReportService(source, &fakeLeaveSource{})
	req := report.MonthlyReportRequest{EmployeeID: "emp-1", Year: 2026, Month: 3}

	first, err := service.GetMonthlyReport(context.Background(), req)
	require.NoError(t, err)
	second, err := service.GetMonthlyReport(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1, source.calls)
	assert.Equal(t, first.Summary, second.Summary)
}

func TestReportService_InvalidateMonth_ForcesRecompute(t *testing.T) {
	source := &fakeMonthSource{records: []attendance.Attendance{
		monthRecord("emp-1", 2, 9, 45, 17, 30),
	}}
	service := newTestReportService(source, &fakeLeaveSource{})
	req := report.MonthlyReportRequest{EmployeeID: "emp-1", Year: 2026, Month: 3}

	before, err := service.GetMonthlyReport(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, report.DayLate, before.Days[1].Status)

	// An approved correction rewrote the day: 09:45 becomes 09:15.
	source.records = []attendance.Attendance{monthRecord("emp-1", 2, 9, 15, 17, 30)}
	require.NoError(t, service.InvalidateMonth(context.Background(), "emp-1", 2026, 3))

	after, err := service.GetMonthlyReport(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 2, source.calls)
	assert.Equal(t, report.DayPresent, after.Days[1].Status)
}

func TestReportService_GetMonthlyReport_LocalDayEastOfUTC(t *testing.T) {
	// 01:30 on March 2 in UTC+7 is still March 1 in UTC. The current local
	// day must classify as today, not future, so an open check-in shows up.
	bangkok := time.FixedZone("UTC+7", 7*60*60)
	clockIn := time.Date(2026, 3, 2, 1, 15, 0, 0, bangkok)

	source := &fakeMonthSource{records: []attendance.Attendance{{
		ID:         "att-02",
		EmployeeID: "emp-1",
		Date:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		ClockIn:    &clockIn,
	}}}
	service := newTestReportService(source, &fakeLeaveSource{})
	service.now = func() time.Time { return time.Date(2026, 3, 2, 1, 30, 0, 0, bangkok) }

	resp, err := service.GetMonthlyReport(context.Background(), report.MonthlyReportRequest{
		EmployeeID: "emp-1", Year: 2026, Month: 3,
	})
	require.NoError(t, err)

	byDate := make(map[string]report.DailyClassification)
	for _, d := range resp.Days {
		byDate[d.DateStr] = d
	}

	assert.Equal(t, report.DayPresent, byDate["2026-03-02"].Status)
	assert.Equal(t, report.DayFuture, byDate["2026-03-03"].Status)
}

func TestReportService_GetMonthlyReport_SkipsMalformedRecords(t *testing.T) {
	source := &fakeMonthSource{records: []attendance.Attendance{
		{ID: "att-broken", EmployeeID: "emp-1"}, // no date at all
		monthRecord("emp-1", 2, 9, 0, 17, 30),
	}}
	service := newTestReportService(source, &fakeLeaveSource{})

	resp, err := service.GetMonthlyReport(context.Background(), report.MonthlyReportRequest{
		EmployeeID: "emp-1", Year: 2026, Month: 3,
	})
	require.NoError(t, err)

	require.Len(t, resp.Days, 31)
	assert.Equal(t, 1, resp.Summary.PresentDays)
}

func TestReportService_GetMonthlyReport_ValidatesRequest(t *testing.T) {
	service := newTestReportService(&fakeMonthSource{}, &fakeLeaveSource{})

	cases := []report.MonthlyReportRequest{
		{EmployeeID: "", Year: 2026, Month: 3},
		{EmployeeID: "emp-1", Year: 2026, Month: 0},
		{EmployeeID: "emp-1", Year: 2026, Month: 13},
		{EmployeeID: "emp-1", Year: 1900, Month: 3},
	}
	for _, req := range cases {
		_, err := service.GetMonthlyReport(context.Background(), req)
		var verrs validator.ValidationErrors
		assert.ErrorAs(t, err, &verrs, "request %+v should fail validation", req)
	}
}
