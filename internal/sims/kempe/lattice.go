package kempe

import (
	"fmt"

	"honeycomb/internal/core"

	"github.com/pkg/errors"
)

const (
	// NumColours is the number of edge colours.
	NumColours = 3

	// VerticesPerSite is the number of edges stored per site.
	VerticesPerSite = 3

	// DefaultSize is the reference linear system size.
	DefaultSize = 3

	// MaxSize bounds L so a lattice fits its binary snapshot header.
	MaxSize = 4096
)

// Colour is one of the three edge colours 0, 1, 2.
type Colour uint8

// Vertex indexes the three edges leaving an A site.
//
// Edge a of site (i,j) ends at a B vertex:
//
//	a=0 -> B(i, j)
//	a=1 -> B(i, j+1)
//	a=2 -> B(i-1, j+1)
//
// so B(i,j) is bounded by the edges (i,j,0), (i,j-1,1) and (i+1,j-1,2).
type Vertex uint8

// Lattice holds the edge colouring of an L x L honeycomb with periodic
// boundaries, stored per A site. Row i of the backing grid holds the sites
// (i, 0..L-1), three cells each.
type Lattice struct {
	size int
	grid *core.ByteGrid
}

// NewLattice allocates a lattice of linear size n, 2 <= n <= MaxSize, in the
// trivial colouring lat[i][j][a] = a.
func NewLattice(n int) (*Lattice, error) {
	if n < 2 || n > MaxSize {
		return nil, errors.Wrapf(ErrBadSize, "size %d", n)
	}
	l := &Lattice{size: n, grid: core.NewByteGrid(VerticesPerSite*n, n)}
	l.Initialize()
	return l, nil
}

// Initialize resets every site to the trivial colouring.
func (l *Lattice) Initialize() {
	for i := 0; i < l.size; i++ {
		for j := 0; j < l.size; j++ {
			for a := 0; a < VerticesPerSite; a++ {
				l.grid.Set(VerticesPerSite*j+a, i, uint8(a))
			}
		}
	}
}

// Size returns the linear size L.
func (l *Lattice) Size() int { return l.size }

// Sites returns L*L.
func (l *Lattice) Sites() int { return l.size * l.size }

// Wrap reduces a site index modulo L.
func (l *Lattice) Wrap(i int) int { return core.Wrap(i, l.size) }

// At returns the colour of vertex a at site (i, j). Indices wrap.
func (l *Lattice) At(i, j int, a Vertex) Colour {
	return Colour(l.grid.At(VerticesPerSite*l.Wrap(j)+int(a), l.Wrap(i)))
}

// Set stores c at vertex a of site (i, j). Indices wrap.
func (l *Lattice) Set(i, j int, a Vertex, c Colour) {
	l.grid.Set(VerticesPerSite*l.Wrap(j)+int(a), l.Wrap(i), uint8(c))
}

// Site returns the three colours of site (i, j).
func (l *Lattice) Site(i, j int) [VerticesPerSite]Colour {
	return [VerticesPerSite]Colour{l.At(i, j, 0), l.At(i, j, 1), l.At(i, j, 2)}
}

// SetSite overwrites the three colours of site (i, j).
func (l *Lattice) SetSite(i, j int, c [VerticesPerSite]Colour) {
	for a, col := range c {
		l.Set(i, j, Vertex(a), col)
	}
}

// BVertex returns the colours of the three edges meeting at B(i, j).
func (l *Lattice) BVertex(i, j int) [VerticesPerSite]Colour {
	return [VerticesPerSite]Colour{l.At(i, j, 0), l.At(i, j-1, 1), l.At(i+1, j-1, 2)}
}

// noVertex is passed to find when no vertex should be skipped.
const noVertex Vertex = VerticesPerSite

// find returns the vertex of site (i, j) holding c, ignoring skip.
func (l *Lattice) find(i, j int, c Colour, skip Vertex) (Vertex, bool) {
	for a := Vertex(0); a < VerticesPerSite; a++ {
		if a == skip {
			continue
		}
		if l.At(i, j, a) == c {
			return a, true
		}
	}
	return 0, false
}

// Clone returns an independent copy, used for pre-move snapshots.
func (l *Lattice) Clone() *Lattice {
	return &Lattice{size: l.size, grid: l.grid.Clone()}
}

// CopyFrom overwrites l with src. Sizes must match.
func (l *Lattice) CopyFrom(src *Lattice) error {
	if l.size != src.size || !l.grid.CopyFrom(src.grid) {
		return errors.Wrapf(ErrBadSize, "copy %d into %d", src.size, l.size)
	}
	return nil
}

// Equal reports whether both lattices hold the same colouring.
func (l *Lattice) Equal(o *Lattice) bool {
	return l.size == o.size && l.grid.Equal(o.grid)
}

// Cells exposes the backing buffer, one byte per vertex in row-major order.
func (l *Lattice) Cells() []uint8 { return l.grid.Cells() }

func (l *Lattice) String() string {
	return fmt.Sprintf("lattice(L=%d)", l.size)
}
