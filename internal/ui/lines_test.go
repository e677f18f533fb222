package ui

import (
	"testing"

	"honeycomb/internal/core"
	_ "honeycomb/internal/sims/kempe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinesForKempe(t *testing.T) {
	sim := core.Sims()["kempe"](nil)
	sim.Reset(1)
	sim.Step()

	lines := Lines(sim)
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "KEMPE", lines[0])
	assert.Contains(t, lines[1], "iteration 1")
	assert.Contains(t, lines, "[Lattice]")
	assert.Contains(t, lines, "  Size: 3")
}

func TestLinesNilSim(t *testing.T) {
	assert.Nil(t, Lines(nil))
}
