package domain

import (
	"time"
)

// FocusSession records one completed focus timer run.
type FocusSession struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Duration    int       `json:"duration"` // seconds
	Task        string    `json:"task,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CompletedAt time.Time `json:"completedAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FocusStats aggregates a user's focus history.
type FocusStats struct {
	TotalSeconds    int64   `json:"totalSeconds"`
	TodaySeconds    int64   `json:"todaySeconds"`
	WeekSeconds     int64   `json:"weekSeconds"`
	SessionCount    int64   `json:"sessionCount"`
	AverageSeconds  float64 `json:"averageSeconds"`
}
