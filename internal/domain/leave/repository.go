package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	// ListApprovedInRange returns the employee's approved requests that
	// overlap [start, end].
	ListApprovedInRange(ctx context.Context, employeeID string, start, end time.Time) ([]LeaveRequest, error)
}
