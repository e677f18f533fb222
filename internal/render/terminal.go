package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"honeycomb/internal/sims/kempe"

	"github.com/muesli/termenv"
)

// Terminal prints lattices as coloured digits, one lattice row per line and
// one bracketed triple per site.
type Terminal struct {
	out     io.Writer
	profile termenv.Profile
	palette []string
}

// NewTerminal writes to out using the colour profile detected for it.
func NewTerminal(out io.Writer) *Terminal {
	return NewTerminalWithProfile(out, termenv.NewOutput(out).Profile)
}

// NewTerminalWithProfile fixes the colour profile, termenv.Ascii for none.
func NewTerminalWithProfile(out io.Writer, p termenv.Profile) *Terminal {
	t := &Terminal{out: out, profile: p}
	for _, c := range EdgePalette {
		t.palette = append(t.palette, Hex(c))
	}
	return t
}

func (t *Terminal) colour(c kempe.Colour) string {
	s := t.profile.String(strconv.Itoa(int(c)))
	if int(c) < len(t.palette) {
		s = s.Foreground(t.profile.Color(t.palette[c]))
	}
	return s.String()
}

// Print writes l followed by a blank line.
func (t *Terminal) Print(l *kempe.Lattice) error {
	var b strings.Builder
	for i := 0; i < l.Size(); i++ {
		for j := 0; j < l.Size(); j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			site := l.Site(i, j)
			b.WriteByte('[')
			for a, c := range site {
				if a > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(t.colour(c))
			}
			b.WriteByte(']')
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	_, err := io.WriteString(t.out, b.String())
	return err
}

// Violations lists vs with the kind in bold.
func (t *Terminal) Violations(vs []kempe.Violation) error {
	for _, v := range vs {
		kind := t.profile.String(string(v.Kind)).Bold().String()
		if _, err := fmt.Fprintf(t.out, "%s (%d,%d): %s %s %s\n", kind, v.I, v.J,
			t.colour(v.Colours[0]), t.colour(v.Colours[1]), t.colour(v.Colours[2])); err != nil {
			return err
		}
	}
	return nil
}
