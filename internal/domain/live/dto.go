package live

import (
	"time"

	"github.com/workpulse-hq/attendance-board-go/internal/pkg/validator"
)

// LiveStatus is the current-state classification of one employee. Owned
// exclusively by the reconciler; push events never write it.
type LiveStatus string

const (
	StatusActive    LiveStatus = "active"
	StatusCompleted LiveStatus = "completed"
	StatusAbsent    LiveStatus = "absent"
	StatusLate      LiveStatus = "late"
	StatusLeave     LiveStatus = "leave"
)

type EmployeeLiveStatus struct {
	EmployeeID   string     `json:"employee_id"`
	EmployeeName string     `json:"employee_name"`
	Department   string     `json:"department,omitempty"`
	Status       LiveStatus `json:"status"`
	CheckIn      string     `json:"check_in,omitempty"`
	CheckOut     string     `json:"check_out,omitempty"`
	HoursWorked  float64    `json:"hours_worked"`
	Location     string     `json:"location,omitempty"`
}

// PushEventType names the advisory events delivered by the clock-in
// collaborator.
type PushEventType string

const (
	EventCheckedIn  PushEventType = "checked-in"
	EventCheckedOut PushEventType = "checked-out"
)

// PushEvent is advisory only: a possibly-incomplete payload used to
// accelerate the activity feed and trigger an authoritative poll. Canonical
// state is never derived from it.
type PushEvent struct {
	Type         PushEventType `json:"type"`
	EmployeeID   string        `json:"employee_id"`
	EmployeeName string        `json:"employee_name"`
	Department   string        `json:"department"`
	Timestamp    time.Time     `json:"timestamp"`
}

func (e PushEvent) Validate() error {
	var errs validator.ValidationErrors
	if e.Type != EventCheckedIn && e.Type != EventCheckedOut {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be checked-in or checked-out"})
	}
	if validator.IsEmpty(e.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if e.Timestamp.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "timestamp", Message: "timestamp is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DedupeKey identifies a feed entry: one event per employee per instant.
func (e PushEvent) DedupeKey() string {
	return e.EmployeeID + "|" + e.Timestamp.UTC().Format(time.RFC3339)
}

type FeedEntry struct {
	ID           string        `json:"id"`
	EmployeeID   string        `json:"employee_id"`
	EmployeeName string        `json:"employee_name"`
	Department   string        `json:"department,omitempty"`
	Event        PushEventType `json:"event"`
	Timestamp    time.Time     `json:"timestamp"`
}

// DedupeKey mirrors PushEvent.DedupeKey for the entry the event produced.
func (f FeedEntry) DedupeKey() string {
	return f.EmployeeID + "|" + f.Timestamp.UTC().Format(time.RFC3339)
}
