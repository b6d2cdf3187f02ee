package geometry

import (
	"github.com/itohio/thrustalloc/pkg/core/math/scalar"
	"github.com/itohio/thrustalloc/pkg/core/math/vec"
)

// Plane names one of the three coordinate planes a seed thruster can be
// reflected across when generating a canonical layout.
type Plane int8

const (
	PlaneXY Plane = iota // negates Z
	PlaneYZ              // negates X
	PlaneXZ              // negates Y
)

// reflectVec negates the vector component orthogonal to p.
func reflectVec(v vec.Vector3[scalar.F32], p Plane) vec.Vector3[scalar.F32] {
	switch p {
	case PlaneXY:
		v[2] = v[2].Neg()
	case PlaneYZ:
		v[0] = v[0].Neg()
	case PlaneXZ:
		v[1] = v[1].Neg()
	}
	return v
}

// reflect applies every plane in planes, in order, to a seed thruster's
// position and orientation, flipping its spin direction once per
// reflection applied (an even number of reflections is the identity on
// direction).
func reflect(seed Thruster, planes ...Plane) Thruster {
	out := seed
	for _, p := range planes {
		out.Position = reflectVec(out.Position, p)
		out.Orientation = reflectVec(out.Orientation, p)
	}
	return Thruster{
		Position:    out.Position,
		Orientation: out.Orientation,
		Direction:   seed.Direction.FlipN(len(planes)),
	}
}
