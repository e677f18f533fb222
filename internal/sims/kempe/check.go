package kempe

import (
	"fmt"

	"github.com/plan-systems/klog"
)

// ViolationKind tells which invariant a Violation breaks.
type ViolationKind string

const (
	// SiteViolation: the three edges stored at an A site are not a permutation.
	SiteViolation ViolationKind = "site"
	// VertexViolation: the three edges meeting at a B vertex are not a permutation.
	VertexViolation ViolationKind = "vertex"
)

// Violation locates one broken 3-colour constraint.
type Violation struct {
	Kind    ViolationKind
	I, J    int
	Colours [VerticesPerSite]Colour
}

func (v Violation) String() string {
	return fmt.Sprintf("%s (%d,%d) colours %d %d %d", v.Kind, v.I, v.J, v.Colours[0], v.Colours[1], v.Colours[2])
}

func isPermutation(c [VerticesPerSite]Colour) bool {
	var seen uint8
	for _, col := range c {
		if col >= NumColours {
			return false
		}
		seen |= 1 << col
	}
	return seen == 0b111
}

// CheckConstraint reports whether every site holds a permutation of the three
// colours. It stops at the first bad site and logs it.
func CheckConstraint(l *Lattice) bool {
	for i := 0; i < l.size; i++ {
		for j := 0; j < l.size; j++ {
			if c := l.Site(i, j); !isPermutation(c) {
				klog.Warningf("There is a problem! %v", Violation{Kind: SiteViolation, I: i, J: j, Colours: c})
				return false
			}
		}
	}
	return true
}

// CheckAdjacency reports whether every B vertex sees three distinct colours,
// i.e. whether neighbouring sites agree along their shared vertices.
func CheckAdjacency(l *Lattice) bool {
	for i := 0; i < l.size; i++ {
		for j := 0; j < l.size; j++ {
			if c := l.BVertex(i, j); !isPermutation(c) {
				klog.Warningf("There is a problem! %v", Violation{Kind: VertexViolation, I: i, J: j, Colours: c})
				return false
			}
		}
	}
	return true
}

// Validate lists every violation of both invariants without logging.
func Validate(l *Lattice) []Violation {
	var out []Violation
	for i := 0; i < l.size; i++ {
		for j := 0; j < l.size; j++ {
			if c := l.Site(i, j); !isPermutation(c) {
				out = append(out, Violation{Kind: SiteViolation, I: i, J: j, Colours: c})
			}
		}
	}
	for i := 0; i < l.size; i++ {
		for j := 0; j < l.size; j++ {
			if c := l.BVertex(i, j); !isPermutation(c) {
				out = append(out, Violation{Kind: VertexViolation, I: i, J: j, Colours: c})
			}
		}
	}
	return out
}

// Valid reports whether both invariants hold everywhere.
func Valid(l *Lattice) bool {
	return len(Validate(l)) == 0
}
