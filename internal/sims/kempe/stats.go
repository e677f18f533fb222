package kempe

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// Bucket is one row of the chain length histogram.
type Bucket struct {
	Length int
	Count  int
}

// ChainStats accumulates the lengths of applied Kempe chains, kept ordered by
// length.
type ChainStats struct {
	lengths *redblacktree.Tree
	moves   int
	total   int
}

// NewChainStats returns an empty accumulator.
func NewChainStats() *ChainStats {
	return &ChainStats{lengths: redblacktree.NewWithIntComparator()}
}

// Observe records one chain.
func (s *ChainStats) Observe(length int) {
	count := 0
	if v, ok := s.lengths.Get(length); ok {
		count = v.(int)
	}
	s.lengths.Put(length, count+1)
	s.moves++
	s.total += length
}

// Moves returns the number of chains observed.
func (s *ChainStats) Moves() int { return s.moves }

// Mean returns the average chain length, 0 when empty.
func (s *ChainStats) Mean() float64 {
	if s.moves == 0 {
		return 0
	}
	return float64(s.total) / float64(s.moves)
}

// Min returns the shortest observed chain, 0 when empty.
func (s *ChainStats) Min() int {
	if n := s.lengths.Left(); n != nil {
		return n.Key.(int)
	}
	return 0
}

// Max returns the longest observed chain, 0 when empty.
func (s *ChainStats) Max() int {
	if n := s.lengths.Right(); n != nil {
		return n.Key.(int)
	}
	return 0
}

// Histogram returns the observed lengths in ascending order.
func (s *ChainStats) Histogram() []Bucket {
	out := make([]Bucket, 0, s.lengths.Size())
	it := s.lengths.Iterator()
	for it.Next() {
		out = append(out, Bucket{Length: it.Key().(int), Count: it.Value().(int)})
	}
	return out
}

// Reset discards all observations.
func (s *ChainStats) Reset() {
	s.lengths.Clear()
	s.moves, s.total = 0, 0
}

func (s *ChainStats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "moves=%d mean=%.2f min=%d max=%d", s.moves, s.Mean(), s.Min(), s.Max())
	for _, bk := range s.Histogram() {
		fmt.Fprintf(&b, " %d:%d", bk.Length, bk.Count)
	}
	return b.String()
}
