package scalar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestF32Signum(t *testing.T) {
	assert.Equal(t, F32(1), F32(4).Signum())
	assert.Equal(t, F32(-1), F32(-4).Signum())
	assert.Equal(t, F32(0), F32(0).Signum())
}

func TestF32Copysign(t *testing.T) {
	assert.Equal(t, F32(3), F32(3).Copysign(1))
	assert.Equal(t, F32(-3), F32(3).Copysign(-1))
}

func TestF32Re(t *testing.T) {
	assert.Equal(t, float32(2.5), F32(2.5).Re())
}
