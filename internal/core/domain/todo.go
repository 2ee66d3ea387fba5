package domain

import "time"

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
)

// ParseStatus converts a raw string into a Status. Invalid values never make
// it past this boundary.
func ParseStatus(value string) (Status, bool) {
	switch Status(value) {
	case StatusPending, StatusCompleted:
		return Status(value), true
	}
	return "", false
}

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

func ParsePriority(value string) (Priority, bool) {
	switch Priority(value) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(value), true
	}
	return "", false
}

// Todo is the sole entity of the system: a flat, independent task record.
type Todo struct {
	ID       uint
	Title    string
	Status   Status
	DueDate  time.Time
	Priority Priority
	Tags     string
}

// TodoInput is a normalized, defaulted payload produced by the validation
// gate. The service layer never sees raw request data.
type TodoInput struct {
	Title    string
	Status   Status
	DueDate  time.Time
	Priority Priority
	Tags     string
}
