// Package perf holds tabulated thruster performance data — PWM, RPM,
// current, voltage, power, force and efficiency sampled off a dynamometer —
// and the lookups the allocator and saturator run against it.
package perf

import (
	"github.com/chewxy/math32"
	"github.com/itohio/thrustalloc/pkg/core/math/scalar"
)

// Record is one measured or interpolated thruster operating point. Stored
// rows are always scalar.F32; lookups widen every field to the caller's
// scalar type D (e.g. scalar.Dual) via D.FromF32 so a Dual-valued alpha can
// interpolate between two real rows without losing the wider type.
type Record[D scalar.Number[D]] struct {
	PWM        D // microseconds, neutral at 1500
	RPM        D
	Current    D // amperes, unsigned magnitude as stored in the table
	Voltage    D
	Power      D
	Force      D // newtons, signed
	Efficiency D
}

// widen lifts a float32 Record into Record[D].
func widen[D scalar.Number[D]](r Record[scalar.F32]) Record[D] {
	var zero D
	return Record[D]{
		PWM:        zero.FromF32(float32(r.PWM)),
		RPM:        zero.FromF32(float32(r.RPM)),
		Current:    zero.FromF32(float32(r.Current)),
		Voltage:    zero.FromF32(float32(r.Voltage)),
		Power:      zero.FromF32(float32(r.Power)),
		Force:      zero.FromF32(float32(r.Force)),
		Efficiency: zero.FromF32(float32(r.Efficiency)),
	}
}

// signedCurrent is current * sign(force), the sort key the by-signed-current
// index uses.
func (r Record[D]) signedCurrent() float32 {
	return math32.Copysign(r.Current.Re(), r.Force.Re())
}
