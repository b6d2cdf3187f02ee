// Package scalar provides a numeric capability trait used throughout the
// thruster allocator so that the same geometry, interpolation and solver
// code works unmodified over plain reals and over forward-mode dual numbers.
//
// Real commands to an ESC only ever need plain float32 arithmetic. The
// PID/optimiser layer that sits above the allocator wants the analytic
// Jacobian of the allocation with respect to its inputs, which forward-mode
// autodiff gives for free if every arithmetic op in the solve path is
// generic over this trait instead of hardcoding float32.
package scalar

// Number is the capability set a type must provide to stand in for a scalar
// inside the allocator's matrices and tables. T is the type itself, so that
// every method returns a concrete T rather than the interface.
type Number[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Neg() T

	Sin() T
	Cos() T
	Abs() T
	Signum() T
	Copysign(T) T
	Powi(int) T

	// Re projects the scalar onto its real part. For F32 this is the
	// identity; for Dual it drops the gradient.
	Re() float32

	// FromF32 lifts a plain real constant (a matrix coefficient, a table
	// column) into this scalar's type, carrying a zero gradient for Dual.
	FromF32(float32) T
}
