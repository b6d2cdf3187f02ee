package scalar

import "github.com/chewxy/math32"

// F32 is the real instantiation of Number: ordinary single precision
// arithmetic with no tracked gradient. This is what drives the ESCs.
type F32 float32

var _ Number[F32] = F32(0)

func (f F32) Add(o F32) F32 { return f + o }
func (f F32) Sub(o F32) F32 { return f - o }
func (f F32) Mul(o F32) F32 { return f * o }
func (f F32) Div(o F32) F32 { return f / o }
func (f F32) Neg() F32      { return -f }

func (f F32) Sin() F32 { return F32(math32.Sin(float32(f))) }
func (f F32) Cos() F32 { return F32(math32.Cos(float32(f))) }
func (f F32) Abs() F32 { return F32(math32.Abs(float32(f))) }

func (f F32) Signum() F32 {
	if f > 0 {
		return 1
	}
	if f < 0 {
		return -1
	}
	return 0
}

func (f F32) Copysign(sign F32) F32 {
	return F32(math32.Copysign(float32(f), float32(sign)))
}

func (f F32) Powi(n int) F32 {
	return F32(math32.Pow(float32(f), float32(n)))
}

func (f F32) Re() float32 { return float32(f) }

func (f F32) FromF32(v float32) F32 { return F32(v) }
