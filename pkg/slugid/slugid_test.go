package slugid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID_Length(t *testing.T) {
	id := NewID()
	assert.Len(t, id, 21)
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestWithSuffix_NormalizesTitle(t *testing.T) {
	s := WithSuffix("Java Jazz Festival 2026")

	assert.True(t, strings.HasPrefix(s, "java-jazz-festival-2026-"), "got %s", s)
	suffix := strings.TrimPrefix(s, "java-jazz-festival-2026-")
	assert.Len(t, suffix, 10)
}

func TestWithSuffix_DifferentForSameInput(t *testing.T) {
	a := WithSuffix("Same Title")
	b := WithSuffix("Same Title")
	assert.NotEqual(t, a, b)
}
