// Package seed populates the datastore with sample users and articles.
package seed

import "errors"

// ErrAborted wraps the first failure of a run. Records persisted before the
// failure are kept.
var ErrAborted = errors.New("seed aborted")
