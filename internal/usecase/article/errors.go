// Package article provides use cases for articles and their owning user.
package article

import "errors"

// ErrArticleNotFound indicates that the requested article was not found.
var ErrArticleNotFound = errors.New("article not found")
