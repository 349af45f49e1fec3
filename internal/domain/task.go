package domain

import "time"

// Defaults applied at creation. Update accepts arbitrary strings for
// priority and status, so these are not an exhaustive enum.
const (
	DefaultPriority = "medium"
	DefaultStatus   = "pending"
)

// Task is the domain entity for a single task, always owned by one user.
// DueDate carries only the calendar date and DueTime only the clock part;
// the two are independent optional fields.
type Task struct {
	ID          int64
	UserID      int64
	Title       string
	Description *string
	DueDate     *time.Time
	DueTime     *time.Time
	Priority    string
	Status      string
	CreatedAt   time.Time
}
