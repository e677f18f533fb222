package core

import "math/rand/v2"

// RandomSource supplies uniform variates in [0, 1). Implementations carry
// generator state, so a source must be owned by a single run.
type RandomSource interface {
	Next(n int) []float64
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG from a seed pair as stored in seed files.
func NewRNG(seed1, seed2 int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed1), uint64(seed2)))}
}

// NewRNGFromPair is NewRNG for a SeedPair.
func NewRNGFromPair(p SeedPair) *RNG {
	return NewRNG(p.Seed1, p.Seed2)
}

// Next returns n fresh variates.
func (r *RNG) Next(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = r.r.Float64()
	}
	return out
}

// Draws replays a fixed sequence of variates. It is useful for scripted
// moves and tests; once exhausted it keeps returning zeros.
type Draws struct {
	vals []float64
	pos  int
}

// NewDraws returns a RandomSource that yields vals in order.
func NewDraws(vals ...float64) *Draws {
	return &Draws{vals: append([]float64(nil), vals...)}
}

// Next returns the next n scripted variates.
func (d *Draws) Next(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		if d.pos < len(d.vals) {
			out[i] = d.vals[d.pos]
			d.pos++
		}
	}
	return out
}

// Remaining reports how many scripted variates are left.
func (d *Draws) Remaining() int { return len(d.vals) - d.pos }
