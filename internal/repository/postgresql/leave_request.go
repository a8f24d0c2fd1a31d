package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/workpulse-hq/attendance-board-go/internal/domain/leave"
	"github.com/workpulse-hq/attendance-board-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

// ListApprovedInRange implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) ListApprovedInRange(ctx context.Context, employeeID string, start, end time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, employee_id, start_date, end_date, status, created_at, updated_at
		FROM leave_requests
		WHERE employee_id = $1
		  AND status = $2
		  AND start_date <= $3
		  AND end_date >= $4
		ORDER BY start_date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, leave.LeaveRequestStatusApproved, end, start)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leave requests: %w", err)
	}
	defer rows.Close()

	var result []leave.LeaveRequest
	for rows.Next() {
		var lr leave.LeaveRequest
		if err := rows.Scan(&lr.ID, &lr.EmployeeID, &lr.StartDate, &lr.EndDate, &lr.Status, &lr.CreatedAt, &lr.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan leave request row: %w", err)
		}
		result = append(result, lr)
	}

	return result, rows.Err()
}
