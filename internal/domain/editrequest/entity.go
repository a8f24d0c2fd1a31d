package editrequest

import (
	"time"
)

type EditRequestStatus string

const (
	EditRequestStatusPending  EditRequestStatus = "pending"
	EditRequestStatusApproved EditRequestStatus = "approved"
	EditRequestStatusRejected EditRequestStatus = "rejected"
)

// IsTerminal reports whether the request can no longer transition.
func (s EditRequestStatus) IsTerminal() bool {
	return s == EditRequestStatusApproved || s == EditRequestStatusRejected
}

// EditRequest is an employee-submitted correction to a day's recorded clock
// times. Created by the employee-facing collaborator; this service only
// reviews it.
type EditRequest struct {
	ID           string
	EmployeeID   string
	AttendanceID string
	Date         time.Time

	OriginalClockIn   *time.Time
	OriginalClockOut  *time.Time
	RequestedClockIn  *time.Time
	RequestedClockOut *time.Time

	Reason     string
	Status     EditRequestStatus
	ReviewedBy *string
	ReviewedAt *time.Time
	Comment    *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	EmployeeName *string
}
