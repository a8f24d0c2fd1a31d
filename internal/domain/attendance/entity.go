package attendance

import (
	"time"
)

// StatusTag is the authoritative status set on a record by the attendance
// collaborator (kiosk import, admin correction, nightly job). Empty when the
// record only carries raw clock times.
type StatusTag string

const (
	TagPresent StatusTag = "Present"
	TagAbsent  StatusTag = "Absent"
	TagLeave   StatusTag = "Leave"
	TagHoliday StatusTag = "Holiday"
)

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	ClockIn    *time.Time
	ClockOut   *time.Time
	Location   *string
	StatusTag  *StatusTag
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
	Department   *string
}

// HasClockIn reports whether the record carries a check-in instant.
func (a Attendance) HasClockIn() bool {
	return a.ClockIn != nil
}

// IsOpen reports whether the employee is clocked in with no checkout yet.
func (a Attendance) IsOpen() bool {
	return a.ClockIn != nil && a.ClockOut == nil
}
