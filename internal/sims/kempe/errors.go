package kempe

import "github.com/pkg/errors"

// Errors
var (
	ErrBadSize             = errors.New("lattice size must be between 2 and 4096")
	ErrConstraintViolation = errors.New("3-colour constraint violated")
	ErrWalkNonTermination  = errors.New("kempe chain did not close within its step budget")
	ErrBrokenChain         = errors.New("kempe chain cannot continue: colouring is inconsistent")
	ErrMalformedLattice    = errors.New("malformed lattice data")
	ErrBadConfig           = errors.New("bad config")
)
