package core

import "bytes"

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// At returns the value at (x, y).
func (g *ByteGrid) At(x, y int) uint8 { return g.data[y*g.W+x] }

// Set stores v at (x, y).
func (g *ByteGrid) Set(x, y int, v uint8) { g.data[y*g.W+x] = v }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *ByteGrid) Wrap(x, y int) (int, int) {
	return Wrap(x, g.W), Wrap(y, g.H)
}

// Wrap reduces i into [0, n) with periodic boundaries.
func Wrap(i, n int) int {
	return (i%n + n) % n
}

// Clone returns an independent copy of the grid.
func (g *ByteGrid) Clone() *ByteGrid {
	return &ByteGrid{W: g.W, H: g.H, data: append([]uint8(nil), g.data...)}
}

// CopyFrom overwrites g with src. Both grids must share dimensions.
func (g *ByteGrid) CopyFrom(src *ByteGrid) bool {
	if g.W != src.W || g.H != src.H {
		return false
	}
	copy(g.data, src.data)
	return true
}

// Equal reports whether both grids hold identical dimensions and values.
func (g *ByteGrid) Equal(o *ByteGrid) bool {
	return g.W == o.W && g.H == o.H && bytes.Equal(g.data, o.data)
}
