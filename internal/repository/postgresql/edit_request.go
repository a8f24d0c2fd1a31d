package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/workpulse-hq/attendance-board-go/internal/domain/editrequest"
	"github.com/workpulse-hq/attendance-board-go/internal/pkg/database"
)

type editRequestRepository struct {
	db *database.DB
}

func NewEditRequestRepository(db *database.DB) editrequest.EditRequestRepository {
	return &editRequestRepository{db: db}
}

const editRequestColumns = `
	r.id, r.employee_id, r.attendance_id, r.date,
	r.original_clock_in, r.original_clock_out,
	r.requested_clock_in, r.requested_clock_out,
	r.reason, r.status, r.reviewed_by, r.reviewed_at, r.comment,
	r.created_at, r.updated_at,
	e.full_name AS employee_name
`

func scanEditRequest(row pgx.Row) (editrequest.EditRequest, error) {
	var req editrequest.EditRequest
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.AttendanceID, &req.Date,
		&req.OriginalClockIn, &req.OriginalClockOut,
		&req.RequestedClockIn, &req.RequestedClockOut,
		&req.Reason, &req.Status, &req.ReviewedBy, &req.ReviewedAt, &req.Comment,
		&req.CreatedAt, &req.UpdatedAt,
		&req.EmployeeName,
	)
	return req, err
}

// GetByID implements editrequest.EditRequestRepository.
func (r *editRequestRepository) GetByID(ctx context.Context, id string) (editrequest.EditRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + editRequestColumns + `
		FROM edit_requests r
		LEFT JOIN employees e ON e.id = r.employee_id
		WHERE r.id = $1
	`

	req, err := scanEditRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return editrequest.EditRequest{}, editrequest.ErrEditRequestNotFound
		}
		return editrequest.EditRequest{}, fmt.Errorf("failed to get edit request by ID: %w", err)
	}

	return req, nil
}

// List implements editrequest.EditRequestRepository.
func (r *editRequestRepository) List(ctx context.Context, filter editrequest.ListFilter) ([]editrequest.EditRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND r.status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}

	countQuery := `SELECT COUNT(*) FROM edit_requests r WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count edit requests: %w", err)
	}

	query := `
		SELECT ` + editRequestColumns + `
		FROM edit_requests r
		LEFT JOIN employees e ON e.id = r.employee_id
		WHERE ` + baseWhere + `
		ORDER BY r.created_at DESC
	` + fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list edit requests: %w", err)
	}
	defer rows.Close()

	var result []editrequest.EditRequest
	for rows.Next() {
		req, err := scanEditRequest(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan edit request row: %w", err)
		}
		result = append(result, req)
	}

	return result, total, rows.Err()
}

// Update implements editrequest.EditRequestRepository.
func (r *editRequestRepository) Update(ctx context.Context, req editrequest.EditRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE edit_requests
		SET status = $2, reviewed_by = $3, reviewed_at = $4, comment = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, req.ID, req.Status, req.ReviewedBy, req.ReviewedAt, req.Comment)
	if err != nil {
		return fmt.Errorf("failed to update edit request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return editrequest.ErrEditRequestNotFound
	}

	return nil
}
