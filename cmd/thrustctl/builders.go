package main

import (
	"github.com/chewxy/math32"
	"github.com/itohio/thrustalloc/pkg/core/math/scalar"
	"github.com/itohio/thrustalloc/pkg/core/math/vec"
	"github.com/itohio/thrustalloc/pkg/core/thruster/geometry"
)

// defaultX3D builds an X3D layout from a front-right-top seed at
// (1,1,1)/√3, unit distance from the origin, oriented at 60 degrees azimuth
// and 40 degrees elevation — a stand-in for the real vehicle's measured
// seed. The command line has no option to supply a different seed.
func defaultX3D() (*geometry.Config[geometry.X3DPosition], error) {
	inv := 1 / math32.Sqrt(3)
	seed, err := geometry.NewThruster(
		vec.Vector3[scalar.F32]{scalar.F32(inv), scalar.F32(inv), scalar.F32(inv)},
		vec.FromAngles(math32.Pi/3, math32.Pi*40/180),
		geometry.Clockwise,
	)
	if err != nil {
		return nil, err
	}
	return geometry.NewX3D(seed, vec.Vector3[scalar.F32]{})
}

// defaultBlueROVHeavy builds a BlueROV-Heavy layout from the canonical
// lateral and vertical seeds used throughout this module's tests.
func defaultBlueROVHeavy() (*geometry.Config[geometry.BlueROVHeavyPosition], error) {
	invSqrt2 := 1 / math32.Sqrt(2)
	lateral, err := geometry.NewThruster(
		vec.Vector3[scalar.F32]{1, 1, 0},
		vec.Vector3[scalar.F32]{scalar.F32(-invSqrt2), scalar.F32(invSqrt2), 0},
		geometry.Clockwise,
	)
	if err != nil {
		return nil, err
	}
	vertical, err := geometry.NewThruster(
		vec.Vector3[scalar.F32]{1, 1, 0},
		vec.Vector3[scalar.F32]{0, 0, 1},
		geometry.Clockwise,
	)
	if err != nil {
		return nil, err
	}
	return geometry.NewBlueROVHeavy(lateral, vertical, vec.Vector3[scalar.F32]{})
}
