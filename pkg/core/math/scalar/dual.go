package scalar

// Dual is a forward-mode automatic-differentiation scalar: a value paired
// with a fixed-width vector of partial derivatives. Every arithmetic method
// implements the usual dual-number rule (the product rule, chain rule for
// sin/cos/pow, ...) so that running the allocator's generic solve path with
// Dual operands instead of F32 yields the Jacobian of the allocation with
// respect to whatever seeded the gradient, at no extra bookkeeping cost to
// the caller.
//
// Grad is nil for a "constant" Dual (e.g. a lifted matrix coefficient) until
// it is combined with a non-nil-gradient operand, at which point operations
// widen to the wider operand's width. Combining two Duals with different
// non-zero gradient widths panics: that is a programmer error, not a data
// error recoverable at runtime.
type Dual struct {
	Value F32
	Grad  []F32
}

var _ Number[Dual] = Dual{}

// NewDual builds a Dual seeded with a one-hot gradient at index `wrt` out of
// `width` independent variables, the idiom for "differentiate with respect
// to the k-th input".
func NewDual(value float32, width, wrt int) Dual {
	grad := make([]F32, width)
	if wrt >= 0 && wrt < width {
		grad[wrt] = 1
	}
	return Dual{Value: F32(value), Grad: grad}
}

// Constant builds a Dual with no gradient contribution, suitable for lifting
// plain table/matrix coefficients into dual arithmetic.
func Constant(value float32) Dual {
	return Dual{Value: F32(value)}
}

func (d Dual) width() int {
	if d.Grad == nil {
		return 0
	}
	return len(d.Grad)
}

// combinedWidth resolves the gradient width two operands should share,
// panicking only when both carry a non-zero, mismatched width.
func combinedWidth(a, b Dual) int {
	wa, wb := a.width(), b.width()
	if wa == 0 {
		return wb
	}
	if wb == 0 {
		return wa
	}
	if wa != wb {
		panic("scalar: mismatched dual gradient widths")
	}
	return wa
}

func gradAt(d Dual, width, i int) F32 {
	if i >= d.width() {
		return 0
	}
	return d.Grad[i]
}

func (d Dual) Add(o Dual) Dual {
	w := combinedWidth(d, o)
	out := Dual{Value: d.Value + o.Value}
	if w > 0 {
		out.Grad = make([]F32, w)
		for i := 0; i < w; i++ {
			out.Grad[i] = gradAt(d, w, i) + gradAt(o, w, i)
		}
	}
	return out
}

func (d Dual) Sub(o Dual) Dual {
	w := combinedWidth(d, o)
	out := Dual{Value: d.Value - o.Value}
	if w > 0 {
		out.Grad = make([]F32, w)
		for i := 0; i < w; i++ {
			out.Grad[i] = gradAt(d, w, i) - gradAt(o, w, i)
		}
	}
	return out
}

// Mul applies the product rule: d(uv) = u'v + uv'.
func (d Dual) Mul(o Dual) Dual {
	w := combinedWidth(d, o)
	out := Dual{Value: d.Value * o.Value}
	if w > 0 {
		out.Grad = make([]F32, w)
		for i := 0; i < w; i++ {
			out.Grad[i] = gradAt(d, w, i)*o.Value + d.Value*gradAt(o, w, i)
		}
	}
	return out
}

// Div applies the quotient rule: d(u/v) = (u'v - uv') / v^2.
func (d Dual) Div(o Dual) Dual {
	w := combinedWidth(d, o)
	out := Dual{Value: d.Value / o.Value}
	if w > 0 {
		out.Grad = make([]F32, w)
		denom := o.Value * o.Value
		for i := 0; i < w; i++ {
			out.Grad[i] = (gradAt(d, w, i)*o.Value - d.Value*gradAt(o, w, i)) / denom
		}
	}
	return out
}

func (d Dual) Neg() Dual {
	out := Dual{Value: -d.Value}
	if d.Grad != nil {
		out.Grad = make([]F32, len(d.Grad))
		for i, g := range d.Grad {
			out.Grad[i] = -g
		}
	}
	return out
}

// Sin applies the chain rule: d(sin(u)) = cos(u) * u'.
func (d Dual) Sin() Dual {
	out := Dual{Value: d.Value.Sin()}
	if d.Grad != nil {
		c := d.Value.Cos()
		out.Grad = make([]F32, len(d.Grad))
		for i, g := range d.Grad {
			out.Grad[i] = c * g
		}
	}
	return out
}

// Cos applies the chain rule: d(cos(u)) = -sin(u) * u'.
func (d Dual) Cos() Dual {
	out := Dual{Value: d.Value.Cos()}
	if d.Grad != nil {
		s := d.Value.Sin()
		out.Grad = make([]F32, len(d.Grad))
		for i, g := range d.Grad {
			out.Grad[i] = -s * g
		}
	}
	return out
}

// Abs applies the chain rule using the sign of the value; the derivative is
// undefined at exactly zero, so like most autodiff systems we pick signum=0.
func (d Dual) Abs() Dual {
	sign := d.Value.Signum()
	out := Dual{Value: d.Value.Abs()}
	if d.Grad != nil {
		out.Grad = make([]F32, len(d.Grad))
		for i, g := range d.Grad {
			out.Grad[i] = sign * g
		}
	}
	return out
}

// Signum has zero derivative everywhere it's defined (it's piecewise
// constant); the gradient of the result is always empty.
func (d Dual) Signum() Dual {
	return Dual{Value: d.Value.Signum()}
}

// Copysign carries the gradient of the magnitude operand only: the sign bit
// contributes no derivative.
func (d Dual) Copysign(sign Dual) Dual {
	out := Dual{Value: d.Value.Copysign(sign.Value)}
	if d.Grad != nil {
		flip := d.Value.Copysign(sign.Value).Signum() * d.Value.Signum()
		out.Grad = make([]F32, len(d.Grad))
		for i, g := range d.Grad {
			out.Grad[i] = flip * g
		}
	}
	return out
}

// Powi applies the power rule: d(u^n) = n*u^(n-1) * u'.
func (d Dual) Powi(n int) Dual {
	out := Dual{Value: d.Value.Powi(n)}
	if d.Grad != nil {
		coeff := F32(n) * d.Value.Powi(n-1)
		out.Grad = make([]F32, len(d.Grad))
		for i, g := range d.Grad {
			out.Grad[i] = coeff * g
		}
	}
	return out
}

func (d Dual) Re() float32 { return float32(d.Value) }

func (d Dual) FromF32(v float32) Dual { return Constant(v) }
