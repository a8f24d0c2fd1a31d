package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// GetByID returns a single record or ErrAttendanceNotFound.
	GetByID(ctx context.Context, id string) (Attendance, error)

	// ListForDate returns every employee's record for one calendar day.
	// Employees without a record for the day are simply absent from the
	// result; the caller decides what that means.
	ListForDate(ctx context.Context, date time.Time) ([]Attendance, error)

	// ListForMonth returns one employee's records for a calendar month,
	// ordered by date ascending.
	ListForMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]Attendance, error)

	// HasRecordForDate reports whether the employee already has a record
	// (clocked in or tagged) for the given day.
	HasRecordForDate(ctx context.Context, employeeID string, date time.Time) (bool, error)

	Create(ctx context.Context, att Attendance) (Attendance, error)

	// UpdateClockTimes overwrites the clock instants of an existing record.
	// Used by the edit-request workflow only.
	UpdateClockTimes(ctx context.Context, id string, clockIn, clockOut *time.Time) error
}
