package vec

import (
	"github.com/chewxy/math32"
	"github.com/itohio/thrustalloc/pkg/core/math/scalar"
)

// FromAngles builds a unit orientation vector from an azimuth and elevation,
// both in radians: at (0,0) the result points along +X, azimuth rotates it
// from +X toward +Y, and elevation tilts it toward +Z.
func FromAngles(azimuthRad, elevationRad float32) Vector3[scalar.F32] {
	cosEl := math32.Cos(elevationRad)
	return Vector3[scalar.F32]{
		scalar.F32(math32.Cos(azimuthRad) * cosEl),
		scalar.F32(math32.Sin(azimuthRad) * cosEl),
		scalar.F32(math32.Sin(elevationRad)),
	}
}
