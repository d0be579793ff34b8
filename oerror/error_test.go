package oerror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindMatching(t *testing.T) {
	err := Newf(KindNotWalkable, "hit at %v", 3)
	assert.ErrorIs(t, err, ErrNotWalkable)
	assert.NotErrorIs(t, err, ErrQueryMiss)
	assert.Equal(t, "not walkable: hit at 3", err.Error())

	wrapped := fmt.Errorf("resolve: %w", ErrQueryMiss)
	assert.True(t, errors.Is(wrapped, ErrQueryMiss))
}

func TestUnknownKindNeverMatches(t *testing.T) {
	a, b := New("a"), New("a")
	assert.False(t, errors.Is(a, b))
	assert.Equal(t, "a", a.Error())
}
