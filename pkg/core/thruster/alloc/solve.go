package alloc

import (
	"cmp"

	"github.com/itohio/thrustalloc/pkg/core/math/mat"
	"github.com/itohio/thrustalloc/pkg/core/math/scalar"
	"github.com/itohio/thrustalloc/pkg/core/math/vec"
	"github.com/itohio/thrustalloc/pkg/core/thruster/geometry"
)

// ForwardSolve assembles the length-N force vector implied by forces (zero
// for any thruster it omits), multiplies it through config's wrench matrix,
// and splits the result into the achieved Movement. Used for
// observability/closed-loop feedback: actual per-thruster forces in,
// achieved wrench out.
func ForwardSolve[Id cmp.Ordered, D scalar.Number[D]](config *geometry.Config[Id], forces map[Id]D) Movement[D] {
	entries := config.Thrusters()
	fHat := make([]D, len(entries))
	for k, e := range entries {
		if f, ok := forces[e.Id]; ok {
			fHat[k] = f
		}
	}
	w := matVec[D](config.Matrix(), fHat)
	return MovementFromVector6(vec.Vector6[D](w))
}

// ReverseSolve packs movement into a length-6 vector and multiplies it
// through config's damped pseudo-inverse to get a per-thruster signed
// force, in the same order as config.Thrusters(). This is what a control
// tick calls to turn a desired wrench into commandable forces.
func ReverseSolve[Id cmp.Ordered, D scalar.Number[D]](config *geometry.Config[Id], movement Movement[D]) Forces[Id, D] {
	w := movement.ToVector6()
	fHat := matVec[D](config.PseudoInverse(), w[:])

	entries := config.Thrusters()
	out := make(Forces[Id, D], len(entries))
	for k, e := range entries {
		out[k] = ForceEntry[Id, D]{Id: e.Id, Force: fHat[k]}
	}
	return out
}

// matVec multiplies a plain float32 matrix (the wrench matrix or its
// pseudo-inverse, both computed once at geometry construction time) by a
// vector of the caller's scalar type, lifting each coefficient through
// D.FromF32 at multiply time. This is what lets a single solve path serve
// both plain-f32 commanding and Dual-valued sensitivity analysis without a
// generic matrix type.
func matVec[D scalar.Number[D]](m mat.Matrix, v []D) []D {
	var zero D
	out := make([]D, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		sum := zero.FromF32(0)
		row := m[i]
		for j, vj := range v {
			sum = sum.Add(zero.FromF32(row[j]).Mul(vj))
		}
		out[i] = sum
	}
	return out
}
