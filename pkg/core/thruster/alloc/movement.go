// Package alloc implements the forward and reverse solvers that sit between
// a desired 6-DOF wrench and per-thruster forces: forward_solve for
// observability/closed-loop feedback, reverse_solve for commanding.
package alloc

import (
	"github.com/itohio/thrustalloc/pkg/core/math/scalar"
	"github.com/itohio/thrustalloc/pkg/core/math/vec"
)

// Movement is a 6-DOF wrench: a 3-axis force paired with a 3-axis torque.
// It forms an additive, scalar-multiplicative module over D.
type Movement[D scalar.Number[D]] struct {
	Force  vec.Vector3[D]
	Torque vec.Vector3[D]
}

func (m Movement[D]) Add(o Movement[D]) Movement[D] {
	return Movement[D]{Force: m.Force.Add(o.Force), Torque: m.Torque.Add(o.Torque)}
}

func (m Movement[D]) Sub(o Movement[D]) Movement[D] {
	return Movement[D]{Force: m.Force.Sub(o.Force), Torque: m.Torque.Sub(o.Torque)}
}

func (m Movement[D]) Scale(c D) Movement[D] {
	return Movement[D]{Force: m.Force.Scale(c), Torque: m.Torque.Scale(c)}
}

// ToVector6 packs the movement into the [Fx,Fy,Fz,Tx,Ty,Tz] convention the
// wrench matrix uses.
func (m Movement[D]) ToVector6() vec.Vector6[D] {
	return vec.ToVector6(m.Force, m.Torque)
}

// MovementFromVector6 is the inverse of ToVector6.
func MovementFromVector6[D scalar.Number[D]](w vec.Vector6[D]) Movement[D] {
	force, torque := vec.SplitVector6(w)
	return Movement[D]{Force: force, Torque: torque}
}

// Axis enumerates the six degrees of freedom a wrench spans.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
	AxisXRot
	AxisYRot
	AxisZRot
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	case AxisXRot:
		return "XRot"
	case AxisYRot:
		return "YRot"
	case AxisZRot:
		return "ZRot"
	default:
		return "Unknown"
	}
}

// Axes lists every Axis in enumeration order, for callers that need to walk
// all six (axis_maximums does).
var Axes = [6]Axis{AxisX, AxisY, AxisZ, AxisXRot, AxisYRot, AxisZRot}

// UnitMovement returns the canonical unit wrench for axis: magnitude in the
// force or torque component named by axis, zero elsewhere.
func UnitMovement[D scalar.Number[D]](axis Axis, magnitude D) Movement[D] {
	var m Movement[D]
	switch axis {
	case AxisX:
		m.Force[0] = magnitude
	case AxisY:
		m.Force[1] = magnitude
	case AxisZ:
		m.Force[2] = magnitude
	case AxisXRot:
		m.Torque[0] = magnitude
	case AxisYRot:
		m.Torque[1] = magnitude
	case AxisZRot:
		m.Torque[2] = magnitude
	}
	return m
}
