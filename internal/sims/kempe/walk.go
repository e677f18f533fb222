package kempe

import (
	"fmt"

	pcore "honeycomb/pkg/core"

	"github.com/pkg/errors"
)

// Move is one Kempe-chain swap: the chain through site (I0, J0) alternating
// Col1 and Col2 has its two colours exchanged.
type Move struct {
	I0, J0 int
	Col1   Colour
	Col2   Colour

	// AA1 is the vertex of the start site that held Col1 before the move.
	AA1 Vertex

	// Length counts the Col1 edges recoloured, i.e. the A sites on the chain.
	Length int
}

func (m Move) String() string {
	return fmt.Sprintf("site (%d,%d) %d<->%d from vertex %d, length %d", m.I0, m.J0, m.Col1, m.Col2, m.AA1, m.Length)
}

// DrawsPerMove is the number of variates Step consumes.
const DrawsPerMove = 4

// DefaultBudget bounds the number of recolour steps of one walk.
func DefaultBudget(size int) int {
	return 3 * size * size * VerticesPerSite
}

// pick maps a variate to floor(r*n), clamped to [0, n).
func pick(r float64, n int) int {
	k := int(r * float64(n))
	if k < 0 {
		return 0
	}
	if k >= n {
		return n - 1
	}
	return k
}

// SelectMove turns four variates into a start site and an ordered colour pair
// with Col2 != Col1.
func SelectMove(draws []float64, size int) Move {
	var r [DrawsPerMove]float64
	copy(r[:], draws)
	col1 := pick(r[2], NumColours)
	return Move{
		I0:   pick(r[0], size),
		J0:   pick(r[1], size),
		Col1: Colour(col1),
		Col2: Colour((col1 + pick(r[3], 2) + 1) % NumColours),
	}
}

// Step draws a move from src and applies it to l in place.
func Step(l *Lattice, src pcore.RandomSource) (Move, error) {
	return Apply(l, SelectMove(src.Next(DrawsPerMove), l.size))
}

// Apply runs the Kempe chain selected by m.I0, m.J0, m.Col1, m.Col2 on l.
// On error l is left untouched.
func Apply(l *Lattice, m Move) (Move, error) {
	return applyBudget(l, m, DefaultBudget(l.size))
}

func applyBudget(l *Lattice, m Move, budget int) (Move, error) {
	if m.Col1 == m.Col2 || m.Col1 >= NumColours || m.Col2 >= NumColours {
		return m, errors.Wrapf(ErrBrokenChain, "colour pair %d,%d", m.Col1, m.Col2)
	}
	m.I0, m.J0 = l.Wrap(m.I0), l.Wrap(m.J0)
	m.Length = 0
	w := walker{lat: l.Clone(), move: m, budget: budget}
	if err := w.run(); err != nil {
		return w.move, err
	}
	// the working copy always matches l's size
	_ = l.CopyFrom(w.lat)
	return w.move, nil
}

// walkState enumerates the states of one chain walk.
type walkState uint8

const (
	walkStart walkState = iota
	walkRecolour
	walkDecide
	walkMove
	walkClose
)

var walkStateNames = [...]string{"start", "recolour", "decide", "move", "close"}

func (s walkState) String() string {
	if int(s) < len(walkStateNames) {
		return walkStateNames[s]
	}
	return "invalid"
}

// branch is an edge relative to the current site: (i+di, j+dj, v).
type branch struct {
	di, dj int
	v      Vertex
}

// transitions[a] lists the other two edges of the B vertex reached through
// vertex a. The chain continues along whichever holds the second colour.
var transitions = [VerticesPerSite][2]branch{
	0: {{di: 0, dj: -1, v: 1}, {di: 1, dj: -1, v: 2}},
	1: {{di: 0, dj: 1, v: 0}, {di: 1, dj: 0, v: 2}},
	2: {{di: -1, dj: 1, v: 0}, {di: -1, dj: 0, v: 1}},
}

type walker struct {
	lat    *Lattice
	move   Move
	budget int

	state walkState
	i, j  int
	aa    Vertex
	next  branch
}

func (w *walker) run() error {
	m := &w.move
	for w.state = walkStart; w.state != walkClose; {
		switch w.state {
		case walkStart:
			w.i, w.j = m.I0, m.J0
			aa, ok := w.lat.find(m.I0, m.J0, m.Col1, noVertex)
			if !ok {
				return w.broken("start site has no vertex of colour %d", m.Col1)
			}
			m.AA1, w.aa = aa, aa
			w.state = walkRecolour

		case walkRecolour:
			if m.Length >= w.budget {
				return errors.Wrapf(ErrWalkNonTermination, "%d steps from (%d,%d)", m.Length, m.I0, m.J0)
			}
			w.lat.Set(w.i, w.j, w.aa, m.Col2)
			m.Length++
			w.state = walkDecide

		case walkDecide:
			found := false
			for _, b := range transitions[w.aa] {
				if w.lat.At(w.i+b.di, w.j+b.dj, b.v) == m.Col2 {
					w.next, found = b, true
					break
				}
			}
			if !found {
				return w.broken("no edge of colour %d beyond vertex %d", m.Col2, w.aa)
			}
			w.state = walkMove

		case walkMove:
			w.i, w.j = w.lat.Wrap(w.i+w.next.di), w.lat.Wrap(w.j+w.next.dj)
			w.lat.Set(w.i, w.j, w.next.v, m.Col1)
			if w.i == m.I0 && w.j == m.J0 {
				w.state = walkClose
				break
			}
			aa, ok := w.lat.find(w.i, w.j, m.Col1, w.next.v)
			if !ok {
				return w.broken("no second vertex of colour %d", m.Col1)
			}
			w.aa = aa
			w.state = walkRecolour
		}
	}
	return nil
}

func (w *walker) broken(format string, args ...any) error {
	return errors.Wrapf(ErrBrokenChain, "%s at (%d,%d) in state %v: %s",
		w.move, w.i, w.j, w.state, fmt.Sprintf(format, args...))
}
