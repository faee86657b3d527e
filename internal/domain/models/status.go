// internal/domain/models/status.go
package models

import "fmt"

// Status is the lifecycle state of a work order. The set is closed; see AllStatuses.
type Status string

const (
	StatusTodo       Status = "Todo"
	StatusAssigned   Status = "Assigned"
	StatusInProgress Status = "In progress"
	StatusOnHold     Status = "On Hold"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
)

// AllStatuses returns the six statuses in display order.
func AllStatuses() []Status {
	return []Status{
		StatusTodo,
		StatusAssigned,
		StatusInProgress,
		StatusOnHold,
		StatusCompleted,
		StatusCancelled,
	}
}

// Valid reports whether s is one of the six known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusAssigned, StatusInProgress, StatusOnHold, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func (s Status) String() string { return string(s) }

// ParseStatus resolves an exact status value. Anything else is an error.
func ParseStatus(v string) (Status, error) {
	s := Status(v)
	if !s.Valid() {
		return "", fmt.Errorf("unknown work order status %q", v)
	}
	return s, nil
}
