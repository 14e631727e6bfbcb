package domain

import (
	"time"
)

// Media is an uploaded file's metadata. At most one of the relation ids is
// set; the file itself lives in external storage addressed by URL.
type Media struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	URL        string    `json:"url"`
	PublicID   string    `json:"publicId"`
	TaskID     *int64    `json:"taskId,omitempty"`
	JournalID  *int64    `json:"journalId,omitempty"`
	ExerciseID *int64    `json:"workoutExerciseId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
