package geometry

import (
	"github.com/itohio/thrustalloc/pkg/core/math/scalar"
	"github.com/itohio/thrustalloc/pkg/core/math/vec"
)

// X3DPosition names the eight canonical mounting points of an X3D thruster
// layout. Values follow the rows of x3dReflections: the seed, then the
// one-, two- and three-reflection positions. This is also the
// Config.Thrusters() iteration order once sorted.
type X3DPosition int

const (
	X3DFrontRightTop X3DPosition = iota
	X3DFrontRightBottom
	X3DFrontLeftTop
	X3DBackRightTop
	X3DFrontLeftBottom
	X3DBackLeftTop
	X3DBackRightBottom
	X3DBackLeftBottom
)

func (p X3DPosition) String() string {
	switch p {
	case X3DFrontRightTop:
		return "FrontRightTop"
	case X3DFrontRightBottom:
		return "FrontRightBottom"
	case X3DFrontLeftTop:
		return "FrontLeftTop"
	case X3DBackRightTop:
		return "BackRightTop"
	case X3DFrontLeftBottom:
		return "FrontLeftBottom"
	case X3DBackLeftTop:
		return "BackLeftTop"
	case X3DBackRightBottom:
		return "BackRightBottom"
	case X3DBackLeftBottom:
		return "BackLeftBottom"
	default:
		return "Unknown"
	}
}

// x3dReflections is the canonical reflection set applied to the seed
// thruster to produce each of the other seven mounting points.
var x3dReflections = map[X3DPosition][]Plane{
	X3DFrontRightTop:    {},
	X3DFrontRightBottom: {PlaneXY},
	X3DFrontLeftTop:     {PlaneYZ},
	X3DBackRightTop:     {PlaneXZ},
	X3DFrontLeftBottom:  {PlaneXY, PlaneYZ},
	X3DBackLeftTop:      {PlaneYZ, PlaneXZ},
	X3DBackRightBottom:  {PlaneXZ, PlaneXY},
	X3DBackLeftBottom:   {PlaneXY, PlaneYZ, PlaneXZ},
}

// NewX3D builds the canonical 8-thruster X3D layout by reflecting a single
// front-right-top seed thruster across the XY, YZ and XZ planes.
func NewX3D(seed Thruster, centerOfMass vec.Vector3[scalar.F32]) (*Config[X3DPosition], error) {
	entries := make([]Entry[X3DPosition], 0, len(x3dReflections))
	for id, planes := range x3dReflections {
		entries = append(entries, Entry[X3DPosition]{Id: id, Thruster: reflect(seed, planes...)})
	}
	return NewRaw(entries, centerOfMass)
}
