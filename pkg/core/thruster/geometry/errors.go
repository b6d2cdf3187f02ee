package geometry

import "errors"

// ErrInvalidGeometry wraps every condition that aborts Config construction:
// a non-convergent SVD, a dimension mismatch, or a thruster set that
// dedup leaves empty. No partially-built Config is ever returned alongside
// this error.
var ErrInvalidGeometry = errors.New("geometry: invalid geometry")

// ErrUnerase is returned when an erased u8 id does not decode back to a
// known typed id.
var ErrUnerase = errors.New("geometry: unerase failed: unknown id")
