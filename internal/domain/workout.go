package domain

import (
	"time"
)

// WorkoutPlan is a weekly training plan owned by a user.
type WorkoutPlan struct {
	ID          int64             `json:"id"`
	UserID      int64             `json:"userId"`
	Name        string            `json:"name"`
	Week        int               `json:"week"`
	Description string            `json:"description,omitempty"`
	Equipment   string            `json:"equipment,omitempty"`
	Goal        string            `json:"goal,omitempty"`
	Exercises   []WorkoutExercise `json:"exercises,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// WorkoutExercise is a single exercise inside a plan.
type WorkoutExercise struct {
	ID          int64         `json:"id"`
	PlanID      int64         `json:"workoutPlanId"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Sets        int           `json:"sets"`
	Reps        int           `json:"reps"`
	Completed   bool          `json:"completed"`
	Logs        []ExerciseLog `json:"logs,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// ExerciseLog records one completion of an exercise.
type ExerciseLog struct {
	ID          int64     `json:"id"`
	ExerciseID  int64     `json:"exerciseId"`
	CompletedAt time.Time `json:"completedAt"`
	Notes       string    `json:"notes,omitempty"`
}

// WorkoutTemplate is a reusable plan blueprint. Built-in templates have
// UserID nil; user templates carry their owner's id.
type WorkoutTemplate struct {
	ID          int64              `json:"id"`
	UserID      *int64             `json:"userId,omitempty"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Equipment   string             `json:"equipment,omitempty"`
	Goal        string             `json:"goal,omitempty"`
	Exercises   []TemplateExercise `json:"exercises,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// TemplateExercise is an exercise blueprint inside a template.
type TemplateExercise struct {
	ID          int64  `json:"id"`
	TemplateID  int64  `json:"templateId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Sets        int    `json:"sets"`
	Reps        int    `json:"reps"`
}

// TemplateFilter narrows a template listing.
type TemplateFilter struct {
	Equipment string
	Goal      string
}
