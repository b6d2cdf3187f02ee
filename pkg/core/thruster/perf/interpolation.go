package perf

import "github.com/itohio/thrustalloc/pkg/core/thruster/geometry"

type method int8

const (
	methodLerp method = iota
	methodNearest
)

// Interpolation selects how a Table lookup produces a record between two
// tabulated rows, and optionally carries a spin Direction that triggers the
// CCW pwm reflection pwm <- 3000 - pwm after the value is produced. It is
// the only place a thruster's spin direction enters the lookup pipeline.
type Interpolation struct {
	method method
	dir    geometry.Direction
	hasDir bool
}

// Lerp linearly interpolates every field between the bracketing rows, with
// no pwm reflection. alpha is allowed outside [0,1] for out-of-range
// inputs: extrapolation is deliberate.
func Lerp() Interpolation { return Interpolation{method: methodLerp} }

// LerpDirection is Lerp plus a CCW pwm reflection.
func LerpDirection(dir geometry.Direction) Interpolation {
	return Interpolation{method: methodLerp, dir: dir, hasDir: true}
}

// OriginalData picks whichever bracketing row is closer to the query value
// and widens its fields, with no pwm reflection.
func OriginalData() Interpolation { return Interpolation{method: methodNearest} }

// Direction is OriginalData plus a CCW pwm reflection.
func Direction(dir geometry.Direction) Interpolation {
	return Interpolation{method: methodNearest, dir: dir, hasDir: true}
}
