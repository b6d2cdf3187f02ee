package scalar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDualArithmeticMatchesValue(t *testing.T) {
	a := NewDual(3, 2, 0)
	b := NewDual(4, 2, 1)

	sum := a.Add(b)
	assert.InDelta(t, 7, sum.Re(), 1e-6)
	assert.InDelta(t, 1, float32(sum.Grad[0]), 1e-6)
	assert.InDelta(t, 1, float32(sum.Grad[1]), 1e-6)

	prod := a.Mul(b)
	assert.InDelta(t, 12, prod.Re(), 1e-6)
	// d(ab)/da = b = 4, d(ab)/db = a = 3
	assert.InDelta(t, 4, float32(prod.Grad[0]), 1e-6)
	assert.InDelta(t, 3, float32(prod.Grad[1]), 1e-6)
}

func TestDualMismatchedGradientWidthsPanic(t *testing.T) {
	a := NewDual(1, 2, 0)
	b := NewDual(1, 3, 0)
	assert.Panics(t, func() { a.Add(b) })
}

func TestDualConstantHasNoGradient(t *testing.T) {
	c := Constant(5)
	require.Nil(t, c.Grad)
	widened := c.Add(NewDual(1, 3, 1))
	assert.Len(t, widened.Grad, 3)
}

func TestDualFromF32IsConstant(t *testing.T) {
	var zero Dual
	lifted := zero.FromF32(2.5)
	assert.InDelta(t, 2.5, lifted.Re(), 1e-6)
	assert.Nil(t, lifted.Grad)
}
