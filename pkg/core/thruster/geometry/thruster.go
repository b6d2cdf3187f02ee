package geometry

import (
	"errors"

	"github.com/itohio/thrustalloc/pkg/core/math/scalar"
	"github.com/itohio/thrustalloc/pkg/core/math/vec"
)

// OrientationTolerance is the slack allowed when checking that a thruster's
// orientation is a unit vector.
const OrientationTolerance = 1e-3

var ErrNotUnitOrientation = errors.New("geometry: orientation is not a unit vector")

// Thruster is a single propeller assembly: a body-frame position, a unit
// orientation it pushes along, and a fixed spin direction. The body frame
// convention is +X right, +Y forward, +Z up; rotations follow +XR pitch-up,
// +YR roll-CW, +ZR yaw-CCW.
type Thruster struct {
	Position    vec.Vector3[scalar.F32]
	Orientation vec.Vector3[scalar.F32]
	Direction   Direction
}

// NewThruster validates the unit-orientation invariant before returning a
// Thruster.
func NewThruster(position, orientation vec.Vector3[scalar.F32], dir Direction) (Thruster, error) {
	if n := orientation.Norm(); n < 1-OrientationTolerance || n > 1+OrientationTolerance {
		return Thruster{}, ErrNotUnitOrientation
	}
	return Thruster{Position: position, Orientation: orientation, Direction: dir}, nil
}
