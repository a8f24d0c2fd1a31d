package response

import (
	"errors"
	"net/http"

	"github.com/workpulse-hq/attendance-board-go/internal/domain/attendance"
	"github.com/workpulse-hq/attendance-board-go/internal/domain/editrequest"
	"github.com/workpulse-hq/attendance-board-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Edit request domain errors
	case errors.Is(err, editrequest.ErrEditRequestNotFound):
		NotFound(w, "Edit request not found")
	case errors.Is(err, editrequest.ErrInvalidStateTransition):
		Conflict(w, "Edit request already processed")
	case errors.Is(err, editrequest.ErrCommentRequired):
		ValidationError(w, map[string]string{"comment": "comment is required when rejecting"})

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
