package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/workpulse-hq/attendance-board-go/internal/domain/attendance"
	"github.com/workpulse-hq/attendance-board-go/internal/domain/employee"
	"github.com/workpulse-hq/attendance-board-go/internal/domain/leave"
)

// AttendanceJobs owns the nightly backfill that writes an authoritative tag
// for every active employee who has no record for yesterday: Leave when an
// approved leave request covers the day, Absent otherwise. Weekends are
// skipped; the classifier handles them without a record.
type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	leaveRepo      leave.LeaveRequestRepository
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	leaveRepo leave.LeaveRequestRepository,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		leaveRepo:      leaveRepo,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("backfill_missing_attendance", 1*time.Hour, j.BackfillMissingAttendance)
}

func (j *AttendanceJobs) BackfillMissingAttendance(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}
	return j.backfillFor(ctx, time.Now().UTC().AddDate(0, 0, -1))
}

func (j *AttendanceJobs) backfillFor(ctx context.Context, day time.Time) error {
	// Normalize by calendar components so a zoned input cannot shift the
	// targeted day across a UTC boundary.
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
		return nil
	}

	employees, err := j.employeeRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active employees: %w", err)
	}

	backfilled := 0
	for _, emp := range employees {
		hasRecord, err := j.attendanceRepo.HasRecordForDate(ctx, emp.ID, day)
		if err != nil {
			slog.Error("cron: failed to check attendance", "employee_id", emp.ID, "error", err)
			continue
		}
		if hasRecord {
			continue
		}

		tag := attendance.TagAbsent
		approved, err := j.leaveRepo.ListApprovedInRange(ctx, emp.ID, day, day)
		if err != nil {
			slog.Error("cron: failed to check leave", "employee_id", emp.ID, "error", err)
		} else if len(approved) > 0 {
			tag = attendance.TagLeave
		}

		record := attendance.Attendance{
			EmployeeID: emp.ID,
			Date:       day,
			StatusTag:  &tag,
		}
		if _, err := j.attendanceRepo.Create(ctx, record); err != nil {
			slog.Error("cron: failed to backfill attendance", "employee_id", emp.ID, "date", day.Format("2006-01-02"), "error", err)
			continue
		}
		backfilled++
	}

	if backfilled > 0 {
		slog.Info("cron: backfilled missing attendance", "date", day.Format("2006-01-02"), "count", backfilled)
	}
	return nil
}
