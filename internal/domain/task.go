package domain

import (
	"time"
)

// Task is a to-do item owned by a user. Priority runs 1 (high) to 3 (low).
type Task struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"userId"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Completed   bool       `json:"completed"`
	Priority    int        `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TaskFilter narrows a task listing.
type TaskFilter struct {
	Status   string // "", "active", "completed"
	Overdue  bool
	Upcoming bool
	Search   string
}
