// Package entity defines the core domain entities of the application.
// It contains the User and Article records, the entity kind tags used by the
// record factory, and the sentinel errors shared by every layer.
package entity

import "time"

// Article represents a blog article owned by exactly one user.
// UserID must reference an existing user when the article is persisted.
type Article struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Status    bool      `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks the fields the datastore treats as required.
// A missing owner is reported as a constraint violation.
func (a *Article) Validate() error {
	if a.UserID <= 0 {
		return &ValidationError{Field: "user_id", Message: "owner is required"}
	}
	if a.Title == "" {
		return &ValidationError{Field: "title", Message: "title is required"}
	}
	return nil
}
