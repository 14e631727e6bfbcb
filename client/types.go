package client

import (
	"fmt"
	"time"
)

// User is an account summary as returned by the API.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TokenPair is the refresh endpoint response.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthResult is the login response payload.
type AuthResult struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Page is the paginated list envelope.
type Page[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// Journal is a journal entry.
type Journal struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Task is a to-do item.
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

// FocusSession is a logged focus timer run.
type FocusSession struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Duration    int       `json:"duration"`
	Task        string    `json:"task,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CompletedAt time.Time `json:"completedAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FocusStats aggregates focus time for the dashboard.
type FocusStats struct {
	TotalSeconds int64 `json:"totalSeconds"`
	TodaySeconds int64 `json:"todaySeconds"`
	WeekSeconds  int64 `json:"weekSeconds"`
	SessionCount int64 `json:"sessionCount"`
}

// UserStats aggregates a user's activity counts.
type UserStats struct {
	Journals      int64 `json:"journals"`
	Tasks         int64 `json:"tasks"`
	WorkoutPlans  int64 `json:"workoutPlans"`
	FocusSessions int64 `json:"focusSessions"`
}

// WorkoutExercise is one exercise inside a plan.
type WorkoutExercise struct {
	ID            int64     `json:"id"`
	WorkoutPlanID int64     `json:"workoutPlanId"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Sets          int       `json:"sets"`
	Reps          int       `json:"reps"`
	Completed     bool      `json:"completed"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// WorkoutPlan is a weekly workout plan with its exercises.
type WorkoutPlan struct {
	ID          int64             `json:"id"`
	UserID      int64             `json:"userId"`
	Name        string            `json:"name"`
	Week        int               `json:"week"`
	Description string            `json:"description,omitempty"`
	Equipment   string            `json:"equipment,omitempty"`
	Goal        string            `json:"goal,omitempty"`
	Exercises   []WorkoutExercise `json:"exercises"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// ListParams are pagination controls for list calls.
type ListParams struct {
	Page  int
	Limit int
}

func (p ListParams) query() string {
	switch {
	case p.Page > 0 && p.Limit > 0:
		return fmt.Sprintf("?page=%d&limit=%d", p.Page, p.Limit)
	case p.Page > 0:
		return fmt.Sprintf("?page=%d", p.Page)
	case p.Limit > 0:
		return fmt.Sprintf("?limit=%d", p.Limit)
	default:
		return ""
	}
}
