// Package user provides use cases for users and the articles they own.
package user

import "errors"

// ErrUnsavedUser indicates that a relation was traversed from a user that
// has not been persisted yet and so has no ID to match on.
var ErrUnsavedUser = errors.New("user has not been persisted")
