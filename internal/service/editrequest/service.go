package editrequest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/workpulse-hq/attendance-board-go/internal/domain/attendance"
	"github.com/workpulse-hq/attendance-board-go/internal/domain/editrequest"
	"github.com/workpulse-hq/attendance-board-go/internal/domain/report"
	"github.com/workpulse-hq/attendance-board-go/internal/pkg/database"
	"github.com/workpulse-hq/attendance-board-go/internal/pkg/validator"
	"github.com/workpulse-hq/attendance-board-go/internal/repository/postgresql"
)

type EditRequestServiceImpl struct {
	editRequestRepo editrequest.EditRequestRepository
	attendanceRepo  attendance.AttendanceRepository
	reportService   report.ReportService

	// now is swapped out in tests to pin review timestamps.
	now func() time.Time

	// runTx executes fn with every enclosed repository call on one
	// transaction; swapped out in tests that use in-memory fakes.
	runTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewEditRequestService(
	db *database.DB,
	editRequestRepo editrequest.EditRequestRepository,
	attendanceRepo attendance.AttendanceRepository,
	reportService report.ReportService,
) editrequest.EditRequestService {
	return &EditRequestServiceImpl{
		editRequestRepo: editRequestRepo,
		attendanceRepo:  attendanceRepo,
		reportService:   reportService,
		now:             time.Now,
		runTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, func(tx pgx.Tx) error {
				return fn(postgresql.WithTx(ctx, tx))
			})
		},
	}
}

// reviewerID extracts the reviewing user from JWT claims.
func reviewerID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return userID, nil
}

// List implements editrequest.EditRequestService.
func (s *EditRequestServiceImpl) List(ctx context.Context, filter editrequest.ListFilter) (editrequest.ListEditRequestResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	requests, total, err := s.editRequestRepo.List(ctx, filter)
	if err != nil {
		return editrequest.ListEditRequestResponse{}, fmt.Errorf("failed to list edit requests: %w", err)
	}

	responses := make([]editrequest.EditRequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, mapToResponse(req))
	}

	return editrequest.ListEditRequestResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Requests:   responses,
	}, nil
}

// Approve implements editrequest.EditRequestService. On success the
// referenced attendance record's clock times are overwritten with the
// requested values and the affected month's cached report is invalidated so
// the next read re-derives classification and summary.
func (s *EditRequestServiceImpl) Approve(ctx context.Context, requestID string) (editrequest.EditRequestResponse, error) {
	reviewer, err := reviewerID(ctx)
	if err != nil {
		return editrequest.EditRequestResponse{}, err
	}

	request, err := s.editRequestRepo.GetByID(ctx, requestID)
	if err != nil {
		return editrequest.EditRequestResponse{}, err
	}

	if request.Status.IsTerminal() {
		return editrequest.EditRequestResponse{}, editrequest.ErrInvalidStateTransition
	}

	reviewedAt := s.now()
	request.Status = editrequest.EditRequestStatusApproved
	request.ReviewedBy = &reviewer
	request.ReviewedAt = &reviewedAt

	// The approval stamp and the clock-time rewrite must land together:
	// a terminally approved request with stale clock times has no retry
	// path.
	err = s.runTx(ctx, func(txCtx context.Context) error {
		if err := s.editRequestRepo.Update(txCtx, request); err != nil {
			return fmt.Errorf("failed to update edit request: %w", err)
		}
		if err := s.attendanceRepo.UpdateClockTimes(txCtx, request.AttendanceID, request.RequestedClockIn, request.RequestedClockOut); err != nil {
			return fmt.Errorf("failed to apply requested clock times: %w", err)
		}
		return nil
	})
	if err != nil {
		return editrequest.EditRequestResponse{}, err
	}

	// Derived summaries must reflect the edit on the next read.
	if err := s.reportService.InvalidateMonth(ctx, request.EmployeeID, request.Date.Year(), int(request.Date.Month())); err != nil {
		slog.Warn("failed to invalidate month report after approval",
			"employee_id", request.EmployeeID, "date", request.Date.Format("2006-01-02"), "error", err)
	}

	return mapToResponse(request), nil
}

// Reject implements editrequest.EditRequestService. The comment is mandatory
// and checked before any state mutation; the attendance record is left
// untouched.
func (s *EditRequestServiceImpl) Reject(ctx context.Context, requestID, comment string) (editrequest.EditRequestResponse, error) {
	if validator.IsEmpty(comment) {
		return editrequest.EditRequestResponse{}, editrequest.ErrCommentRequired
	}

	reviewer, err := reviewerID(ctx)
	if err != nil {
		return editrequest.EditRequestResponse{}, err
	}

	request, err := s.editRequestRepo.GetByID(ctx, requestID)
	if err != nil {
		return editrequest.EditRequestResponse{}, err
	}

	if request.Status.IsTerminal() {
		return editrequest.EditRequestResponse{}, editrequest.ErrInvalidStateTransition
	}

	reviewedAt := s.now()
	request.Status = editrequest.EditRequestStatusRejected
	request.ReviewedBy = &reviewer
	request.ReviewedAt = &reviewedAt
	request.Comment = &comment

	if err := s.editRequestRepo.Update(ctx, request); err != nil {
		return editrequest.EditRequestResponse{}, fmt.Errorf("failed to update edit request: %w", err)
	}

	return mapToResponse(request), nil
}

func mapToResponse(req editrequest.EditRequest) editrequest.EditRequestResponse {
	var employeeName string
	if req.EmployeeName != nil {
		employeeName = *req.EmployeeName
	}

	return editrequest.EditRequestResponse{
		ID:                req.ID,
		EmployeeID:        req.EmployeeID,
		EmployeeName:      employeeName,
		AttendanceID:      req.AttendanceID,
		Date:              req.Date.Format("2006-01-02"),
		OriginalClockIn:   timePtrToString(req.OriginalClockIn),
		OriginalClockOut:  timePtrToString(req.OriginalClockOut),
		RequestedClockIn:  timePtrToString(req.RequestedClockIn),
		RequestedClockOut: timePtrToString(req.RequestedClockOut),
		Reason:            req.Reason,
		Status:            string(req.Status),
		ReviewedBy:        req.ReviewedBy,
		ReviewedAt:        timePtrToString(req.ReviewedAt),
		Comment:           req.Comment,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}
