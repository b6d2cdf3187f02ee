package vec

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/itohio/thrustalloc/pkg/core/math/scalar"
	"github.com/stretchr/testify/assert"
)

func TestCrossProduct(t *testing.T) {
	x := Vector3[scalar.F32]{1, 0, 0}
	y := Vector3[scalar.F32]{0, 1, 0}
	z := x.Cross(y)
	assert.Equal(t, Vector3[scalar.F32]{0, 0, 1}, z)
}

func TestNormOfUnitVector(t *testing.T) {
	v := Vector3[scalar.F32]{1, 0, 0}
	assert.InDelta(t, 1, v.Norm(), 1e-6)
}

func TestFromAnglesIsUnit(t *testing.T) {
	o := FromAngles(math32.Pi/3, math32.Pi*40/180)
	assert.InDelta(t, 1, o.Norm(), 1e-5)
}

func TestFromAnglesZeroPointsAlongX(t *testing.T) {
	o := FromAngles(0, 0)
	assert.InDelta(t, 1, float32(o[0]), 1e-6)
	assert.InDelta(t, 0, float32(o[1]), 1e-6)
	assert.InDelta(t, 0, float32(o[2]), 1e-6)
}

func TestToVector6RoundTrip(t *testing.T) {
	force := Vector3[scalar.F32]{1, 2, 3}
	torque := Vector3[scalar.F32]{4, 5, 6}
	w := ToVector6(force, torque)
	gotForce, gotTorque := SplitVector6(w)
	assert.Equal(t, force, gotForce)
	assert.Equal(t, torque, gotTorque)
}
