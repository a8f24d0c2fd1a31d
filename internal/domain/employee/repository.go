package employee

import "context"

type EmployeeRepository interface {
	// ListActive returns all active employees.
	ListActive(ctx context.Context) ([]Employee, error)
}
