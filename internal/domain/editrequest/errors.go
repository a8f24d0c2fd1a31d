package editrequest

import "errors"

// Edit request domain errors
var (
	ErrEditRequestNotFound = errors.New("edit request not found")

	// ErrInvalidStateTransition is returned when approving or rejecting a
	// request that is already terminal. Never a silent no-op.
	ErrInvalidStateTransition = errors.New("edit request has already been approved or rejected")

	// ErrCommentRequired is returned by reject before any state mutation.
	ErrCommentRequired = errors.New("a comment is required when rejecting an edit request")
)
