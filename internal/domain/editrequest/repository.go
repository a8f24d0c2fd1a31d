package editrequest

import (
	"context"
)

type ListFilter struct {
	Status EditRequestStatus
	Page   int
	Limit  int
}

type EditRequestRepository interface {
	// GetByID returns a request or ErrEditRequestNotFound.
	GetByID(ctx context.Context, id string) (EditRequest, error)

	// List returns requests filtered by status ("" for all), newest first.
	List(ctx context.Context, filter ListFilter) ([]EditRequest, int64, error)

	// Update persists a review decision (status, reviewer, timestamp,
	// comment).
	Update(ctx context.Context, req EditRequest) error
}
