package editrequest

import (
	"context"
)

type EditRequestService interface {
	List(ctx context.Context, filter ListFilter) (ListEditRequestResponse, error)

	// Approve transitions pending → approved, overwrites the attendance
	// record's clock times with the requested values and invalidates the
	// affected month's cached report.
	Approve(ctx context.Context, requestID string) (EditRequestResponse, error)

	// Reject transitions pending → rejected. The comment is mandatory and
	// validated before any state mutation. The attendance record is left
	// untouched.
	Reject(ctx context.Context, requestID, comment string) (EditRequestResponse, error)
}
