package kempe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChainStats(t *testing.T) {
	s := NewChainStats()
	assert.Equal(t, 0, s.Min())
	assert.Equal(t, 0, s.Max())
	assert.Zero(t, s.Mean())

	for _, n := range []int{3, 6, 3, 9, 3} {
		s.Observe(n)
	}
	assert.Equal(t, 5, s.Moves())
	assert.Equal(t, 3, s.Min())
	assert.Equal(t, 9, s.Max())
	assert.InDelta(t, 4.8, s.Mean(), 1e-9)
	assert.Equal(t, []Bucket{{3, 3}, {6, 1}, {9, 1}}, s.Histogram())
	assert.Equal(t, "moves=5 mean=4.80 min=3 max=9 3:3 6:1 9:1", s.String())

	s.Reset()
	assert.Equal(t, 0, s.Moves())
	assert.Empty(t, s.Histogram())
}
