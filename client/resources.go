package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// --- Journals ---

// JournalInput is the payload for creating or updating an entry. Nil fields
// are left unchanged on update.
type JournalInput struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// ListJournals returns a page of journal entries.
func (c *Client) ListJournals(ctx context.Context, p ListParams) (*Page[Journal], error) {
	var page Page[Journal]
	if err := c.do(ctx, http.MethodGet, "/api/journals/"+p.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateJournal creates a journal entry.
func (c *Client) CreateJournal(ctx context.Context, title, content string) (*Journal, error) {
	body := map[string]string{"title": title, "content": content}
	var j Journal
	if err := c.do(ctx, http.MethodPost, "/api/journals/", body, &j); err != nil {
		return nil, err
	}
	return &j, nil
}

// GetJournal fetches a single journal entry.
func (c *Client) GetJournal(ctx context.Context, id int64) (*Journal, error) {
	var j Journal
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/journals/%d", id), nil, &j); err != nil {
		return nil, err
	}
	return &j, nil
}

// UpdateJournal applies a partial update to a journal entry.
func (c *Client) UpdateJournal(ctx context.Context, id int64, input JournalInput) (*Journal, error) {
	var j Journal
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/journals/%d", id), input, &j); err != nil {
		return nil, err
	}
	return &j, nil
}

// DeleteJournal removes a journal entry.
func (c *Client) DeleteJournal(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/journals/%d", id), nil, nil)
}

// --- Tasks ---

// TaskInput is the payload for creating or updating a task. Nil fields are
// left unchanged on update.
type TaskInput struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Completed   *bool      `json:"completed,omitempty"`
	Priority    *int       `json:"priority,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}

// TaskListFilter narrows ListTasks. Status is "active" or "completed";
// Overdue and Upcoming select on due date; Search matches against titles.
// The zero value returns every task.
type TaskListFilter struct {
	Status   string
	Overdue  bool
	Upcoming bool
	Search   string
}

func (f TaskListFilter) query() string {
	v := url.Values{}
	if f.Status != "" {
		v.Set("status", f.Status)
	}
	if f.Overdue {
		v.Set("overdue", "true")
	}
	if f.Upcoming {
		v.Set("upcoming", "true")
	}
	if f.Search != "" {
		v.Set("q", f.Search)
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

// ListTasks returns tasks matching the filter.
func (c *Client) ListTasks(ctx context.Context, filter TaskListFilter) ([]Task, error) {
	var tasks []Task
	if err := c.do(ctx, http.MethodGet, "/api/tasks/"+filter.query(), nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask creates a task.
func (c *Client) CreateTask(ctx context.Context, input TaskInput) (*Task, error) {
	var t Task
	if err := c.do(ctx, http.MethodPost, "/api/tasks/", input, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTask applies a partial update to a task.
func (c *Client) UpdateTask(ctx context.Context, id int64, input TaskInput) (*Task, error) {
	var t Task
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/tasks/%d", id), input, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", id), nil, nil)
}

// --- Workout plans ---

// ListWorkoutPlans returns a page of plans with their exercises.
func (c *Client) ListWorkoutPlans(ctx context.Context, p ListParams) (*Page[WorkoutPlan], error) {
	var page Page[WorkoutPlan]
	if err := c.do(ctx, http.MethodGet, "/api/workout-plans/"+p.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetWorkoutPlan fetches a single plan with its exercises.
func (c *Client) GetWorkoutPlan(ctx context.Context, id int64) (*WorkoutPlan, error) {
	var p WorkoutPlan
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/workout-plans/%d", id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CompleteExercise marks an exercise done, optionally recording notes.
func (c *Client) CompleteExercise(ctx context.Context, id int64, notes string) error {
	var body any
	if notes != "" {
		body = map[string]string{"notes": notes}
	}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/workout-exercises/%d/complete", id), body, nil)
}

// --- Focus ---

// LogFocusSession records a finished focus timer run. duration is seconds.
func (c *Client) LogFocusSession(ctx context.Context, duration int, task, notes string) (*FocusSession, error) {
	body := map[string]any{"duration": duration, "task": task, "notes": notes}
	var s FocusSession
	if err := c.do(ctx, http.MethodPost, "/api/focus/", body, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// FocusStats returns the focus time aggregates.
func (c *Client) FocusStats(ctx context.Context) (*FocusStats, error) {
	var s FocusStats
	if err := c.do(ctx, http.MethodGet, "/api/focus/stats", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// --- Users ---

// UserStats returns the account's activity counters.
func (c *Client) UserStats(ctx context.Context) (*UserStats, error) {
	var s UserStats
	if err := c.do(ctx, http.MethodGet, "/api/users/stats", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
