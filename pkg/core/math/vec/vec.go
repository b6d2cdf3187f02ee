// Package vec provides the fixed-size vector types the allocator builds on:
// Vector3 for thruster position/orientation and per-axis force or torque,
// Vector6 for a packed wrench. Both are generic over scalar.Number so that
// the same code assembles a plain-float32 wrench for commanding motors or a
// Dual-valued one for propagating sensitivities.
package vec

import (
	"github.com/chewxy/math32"
	"github.com/itohio/thrustalloc/pkg/core/math/scalar"
)

// Vector3 is a 3-component vector over scalar S: body-frame position or unit
// orientation (S = scalar.F32), or a force/torque axis triple (any S).
type Vector3[S scalar.Number[S]] [3]S

// Vector6 packs a 6-DOF wrench: [Fx, Fy, Fz, Tx, Ty, Tz].
type Vector6[S scalar.Number[S]] [6]S

func (v Vector3[S]) Add(o Vector3[S]) Vector3[S] {
	return Vector3[S]{v[0].Add(o[0]), v[1].Add(o[1]), v[2].Add(o[2])}
}

func (v Vector3[S]) Sub(o Vector3[S]) Vector3[S] {
	return Vector3[S]{v[0].Sub(o[0]), v[1].Sub(o[1]), v[2].Sub(o[2])}
}

func (v Vector3[S]) Scale(c S) Vector3[S] {
	return Vector3[S]{v[0].Mul(c), v[1].Mul(c), v[2].Mul(c)}
}

func (v Vector3[S]) Dot(o Vector3[S]) S {
	return v[0].Mul(o[0]).Add(v[1].Mul(o[1])).Add(v[2].Mul(o[2]))
}

// Cross computes the 3-D cross product v x o.
func (v Vector3[S]) Cross(o Vector3[S]) Vector3[S] {
	return Vector3[S]{
		v[1].Mul(o[2]).Sub(v[2].Mul(o[1])),
		v[2].Mul(o[0]).Sub(v[0].Mul(o[2])),
		v[0].Mul(o[1]).Sub(v[1].Mul(o[0])),
	}
}

// Norm returns the Euclidean norm's real part. Only ever called on
// scalar.F32 geometry vectors (orientation normalization), never inside the
// Dual-valued solve path, so dropping to a plain float32 here costs nothing.
func (v Vector3[S]) Norm() float32 {
	sumSq := v[0].Mul(v[0]).Add(v[1].Mul(v[1])).Add(v[2].Mul(v[2])).Re()
	return math32.Sqrt(sumSq)
}

// ToVector6 packs a force/torque pair into a single 6-vector matching the
// [Fx,Fy,Fz,Tx,Ty,Tz] convention used by the wrench matrix.
func ToVector6[S scalar.Number[S]](force, torque Vector3[S]) Vector6[S] {
	return Vector6[S]{force[0], force[1], force[2], torque[0], torque[1], torque[2]}
}

// SplitVector6 is the inverse of ToVector6.
func SplitVector6[S scalar.Number[S]](w Vector6[S]) (force, torque Vector3[S]) {
	return Vector3[S]{w[0], w[1], w[2]}, Vector3[S]{w[3], w[4], w[5]}
}
