// Package slugid generates the string identifiers used across the service:
// nanoid primary keys and URL-safe slugs with a random suffix.
package slugid

import (
	"github.com/gosimple/slug"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// suffixLen keeps slugs short while making collisions between similar
// titles practically impossible.
const suffixLen = 10

// NewID returns a fresh nanoid suitable as a primary key.
func NewID() string {
	return gonanoid.Must()
}

// WithSuffix normalizes s into a lower-case hyphenated slug and appends
// a random suffix.
func WithSuffix(s string) string {
	return slug.Make(s) + "-" + gonanoid.Must(suffixLen)
}
