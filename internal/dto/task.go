package dto

import "time"

// CreateTaskRequest is the JSON body for POST /tasks. due_date ("2006-01-02")
// and due_time ("15:04:05") are raw strings parsed by the service, each one
// independently optional. Status is not settable at creation.
type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=100"`
	Description *string `json:"description"`
	DueDate     string  `json:"due_date"`
	DueTime     string  `json:"due_time"`
	Priority    string  `json:"priority" binding:"max=20"`
}

// UpdateTaskRequest is the JSON body for PUT /tasks/{id}. Every field is
// optional and an empty string means "leave unchanged", never "clear".
// due_date and due_time only take effect when both are supplied.
type UpdateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	DueTime     string `json:"due_time"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

// TaskResponse is the wire shape of a task. DueDate renders as "2006-01-02"
// and DueTime as "15:04", both null when unset.
type TaskResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	DueDate     *string   `json:"due_date"`
	DueTime     *string   `json:"due_time"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
