package domain

import (
	"time"
)

// Journal is a free-form journal entry owned by a user.
type Journal struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// JournalFilter narrows a journal listing.
type JournalFilter struct {
	Search string
}
