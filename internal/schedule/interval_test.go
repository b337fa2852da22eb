package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(t *testing.T, hour, min int) time.Time {
	t.Helper()
	return time.Date(2026, 3, 1, hour, min, 0, 0, time.UTC)
}

func TestNewIntervalRejectsInverted(t *testing.T) {
	_, err := NewInterval(at(t, 10, 0), at(t, 9, 0))
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = NewInterval(at(t, 9, 0), at(t, 9, 0))
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name         string
		aStart, aEnd time.Time
		bStart, bEnd time.Time
		want         bool
	}{
		{"partial overlap", at(t, 9, 0), at(t, 10, 0), at(t, 9, 30), at(t, 10, 30), true},
		{"contained", at(t, 9, 0), at(t, 11, 0), at(t, 9, 30), at(t, 10, 0), true},
		{"identical", at(t, 9, 0), at(t, 10, 0), at(t, 9, 0), at(t, 10, 0), true},
		{"back to back", at(t, 9, 0), at(t, 10, 0), at(t, 10, 0), at(t, 11, 0), false},
		{"back to back reversed", at(t, 10, 0), at(t, 11, 0), at(t, 9, 0), at(t, 10, 0), false},
		{"disjoint", at(t, 9, 0), at(t, 10, 0), at(t, 12, 0), at(t, 13, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewInterval(tt.aStart, tt.aEnd)
			require.NoError(t, err)
			b, err := NewInterval(tt.bStart, tt.bEnd)
			require.NoError(t, err)

			assert.Equal(t, tt.want, a.Overlaps(b))
			assert.Equal(t, tt.want, b.Overlaps(a), "overlap must be symmetric")
		})
	}
}

func TestContains(t *testing.T) {
	window, err := NewInterval(at(t, 9, 0), at(t, 12, 0))
	require.NoError(t, err)

	inside, _ := NewInterval(at(t, 10, 0), at(t, 11, 0))
	exact, _ := NewInterval(at(t, 9, 0), at(t, 12, 0))
	spillsOver, _ := NewInterval(at(t, 11, 0), at(t, 13, 0))
	before, _ := NewInterval(at(t, 8, 0), at(t, 9, 30))

	assert.True(t, window.Contains(inside))
	assert.True(t, window.Contains(exact))
	assert.False(t, window.Contains(spillsOver))
	assert.False(t, window.Contains(before))
}
