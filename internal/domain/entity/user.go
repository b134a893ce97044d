package entity

import "time"

// User represents an account that owns articles.
// Password and RememberToken are excluded from every JSON representation.
type User struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Password      string    `json:"-"`
	RememberToken string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Validate checks the fields the datastore treats as required.
// Email uniqueness is not checked here.
func (u *User) Validate() error {
	if u.Name == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if u.Email == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	if u.Password == "" {
		return &ValidationError{Field: "password", Message: "password is required"}
	}
	return nil
}
