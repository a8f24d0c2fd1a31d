package report

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/workpulse-hq/attendance-board-go/internal/domain/attendance"
	"github.com/workpulse-hq/attendance-board-go/internal/domain/leave"
	"github.com/workpulse-hq/attendance-board-go/internal/domain/report"
	"github.com/workpulse-hq/attendance-board-go/internal/pkg/cache"
	"golang.org/x/sync/errgroup"
)

const monthlyReportTTL = 15 * time.Minute

type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRequestRepository
	cache          cache.Cache

	// now is swapped out in tests to pin "today".
	now func() time.Time
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRequestRepository,
	c cache.Cache,
) report.ReportService {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		cache:          c,
		now:            time.Now,
	}
}

// GetMonthlyReport classifies every day of the month and aggregates the
// result. Cached per employee/month; the cache is invalidated when an
// approved edit request rewrites a day.
func (s *ReportServiceImpl) GetMonthlyReport(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyReportResponse{}, err
	}

	key := monthlyReportKey(req.EmployeeID, req.Year, req.Month)
	if raw, err := s.cache.Get(ctx, key); err == nil {
		var cached report.MonthlyReportResponse
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		// Corrupt cache entry: fall through and recompute.
		_ = s.cache.Invalidate(ctx, key)
	}

	monthStart := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	var (
		records  []attendance.Attendance
		approved []leave.LeaveRequest
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.ListForMonth(gCtx, req.EmployeeID, req.Year, time.Month(req.Month))
		if err != nil {
			return fmt.Errorf("failed to get attendance records: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		approved, err = s.leaveRepo.ListApprovedInRange(gCtx, req.EmployeeID, monthStart, monthEnd)
		if err != nil {
			return fmt.Errorf("failed to get approved leave: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return report.MonthlyReportResponse{}, err
	}

	days := s.classifyMonth(req.EmployeeID, monthStart, monthEnd, records, approved)

	resp := report.MonthlyReportResponse{
		EmployeeID: req.EmployeeID,
		Year:       req.Year,
		Month:      req.Month,
		Days:       days,
		Summary:    AggregateMonth(days),
	}

	if raw, err := json.Marshal(resp); err == nil {
		if err := s.cache.Set(ctx, key, raw, monthlyReportTTL); err != nil {
			slog.Warn("failed to cache monthly report", "key", key, "error", err)
		}
	}

	return resp, nil
}

// InvalidateMonth drops the cached report for an employee/month.
func (s *ReportServiceImpl) InvalidateMonth(ctx context.Context, employeeID string, year, month int) error {
	return s.cache.Invalidate(ctx, monthlyReportKey(employeeID, year, month))
}

func (s *ReportServiceImpl) classifyMonth(
	employeeID string,
	monthStart, monthEnd time.Time,
	records []attendance.Attendance,
	approved []leave.LeaveRequest,
) []report.DailyClassification {
	// Latest record per day wins; malformed records are skipped with a
	// data-quality warning, never abort the batch.
	byDate := make(map[string]attendance.Attendance, len(records))
	for _, rec := range records {
		if rec.Date.IsZero() {
			slog.Warn("skipping attendance record without date",
				"attendance_id", rec.ID, "employee_id", employeeID)
			continue
		}
		byDate[rec.Date.Format("2006-01-02")] = rec
	}

	// "Today" is the wall-clock calendar day where the service runs, not
	// the UTC day; Truncate would lag behind local midnight on any server
	// east of UTC.
	nowLocal := s.now()
	today := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, time.UTC)
	days := make([]report.DailyClassification, 0, monthEnd.Day())

	for d := monthStart; !d.After(monthEnd); d = d.AddDate(0, 0, 1) {
		input := ClassifyInput{
			Date:      d,
			IsWeekend: d.Weekday() == time.Saturday || d.Weekday() == time.Sunday,
			IsFuture:  d.After(today),
			IsToday:   d.Equal(today),
		}

		if rec, ok := byDate[d.Format("2006-01-02")]; ok {
			recCopy := rec
			input.Record = &recCopy
		}
		for _, lr := range approved {
			if lr.Covers(d) {
				input.LeaveApproved = true
				break
			}
		}

		days = append(days, ClassifyDay(input))
	}

	return days
}

func monthlyReportKey(employeeID string, year, month int) string {
	return fmt.Sprintf("report:monthly:%s:%04d-%02d", employeeID, year, month)
}
