package employee

import "time"

type Employee struct {
	ID         string
	FullName   string
	Department *string
	HireDate   time.Time
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
