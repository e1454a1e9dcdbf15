package span

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionBefore(t *testing.T) {
	assert.True(t, Position{Line: 1, Column: 9}.Before(Position{Line: 2, Column: 0}))
	assert.True(t, Position{Line: 1, Column: 3}.Before(Position{Line: 1, Column: 4}))
	assert.False(t, Position{Line: 1, Column: 4}.Before(Position{Line: 1, Column: 4}))
	assert.False(t, Position{Line: 2, Column: 0}.Before(Position{Line: 1, Column: 9}))
}

func TestSpanContainsIsInclusive(t *testing.T) {
	s := Span{
		Start: Position{Line: 1, Column: 4},
		End:   Position{Line: 1, Column: 7},
	}

	assert.True(t, s.Contains(Position{Line: 1, Column: 4}))
	assert.True(t, s.Contains(Position{Line: 1, Column: 5}))
	assert.True(t, s.Contains(Position{Line: 1, Column: 7}))
	assert.False(t, s.Contains(Position{Line: 1, Column: 3}))
	assert.False(t, s.Contains(Position{Line: 1, Column: 8}))
	assert.False(t, s.Contains(Position{Line: 0, Column: 5}))
}

func TestSpanContainsAcrossLines(t *testing.T) {
	s := Span{
		Start: Position{Line: 0, Column: 10},
		End:   Position{Line: 3, Column: 1},
	}

	assert.True(t, s.Contains(Position{Line: 1, Column: 0}))
	assert.True(t, s.Contains(Position{Line: 2, Column: 80}))
	assert.False(t, s.Contains(Position{Line: 0, Column: 9}))
	assert.False(t, s.Contains(Position{Line: 3, Column: 2}))
}

func TestSpanString(t *testing.T) {
	s := Span{
		Start: Position{Line: 4, Column: 8},
		End:   Position{Line: 4, Column: 12},
	}
	assert.Equal(t, "4:8-4:12", s.String())
}
