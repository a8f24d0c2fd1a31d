package leave

import (
	"time"
)

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "rejected"
)

type LeaveRequest struct {
	ID         string
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	Status     LeaveRequestStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Covers reports whether the request's date range spans the given day.
// Only approved requests influence classification; the caller filters.
func (l LeaveRequest) Covers(date time.Time) bool {
	d := date.Truncate(24 * time.Hour)
	start := l.StartDate.Truncate(24 * time.Hour)
	end := l.EndDate.Truncate(24 * time.Hour)
	return !d.Before(start) && !d.After(end)
}
