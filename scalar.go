package symdiff

import (
	"math"
	"math/cmplx"
	"strconv"
)

// Scalar is the set of operations the engine needs from a numeric domain.
// Implementations are value types; the engine calls methods on the zero value
// of T to build constants, so Lit must not depend on its receiver.
type Scalar[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Pow(T) T
	// Log is the natural logarithm.
	Log() T
	Exp() T
	Sin() T
	Cos() T
	// Lit returns the scalar re + im·i. The second result is false if the
	// domain cannot represent the value.
	Lit(re, im float64) (T, bool)
	String() string
}

// Real is the real domain. Arithmetic follows IEEE 754: division by zero
// gives an infinity or NaN, and so do logarithms of non-positive numbers.
type Real float64

var _ Scalar[Real] = Real(0)

func (x Real) Add(y Real) Real { return x + y }
func (x Real) Sub(y Real) Real { return x - y }
func (x Real) Mul(y Real) Real { return x * y }
func (x Real) Div(y Real) Real { return x / y }

// Pow follows math.Pow, so a negative base with a non-integer exponent is NaN
// rather than a complex result.
func (x Real) Pow(y Real) Real { return Real(math.Pow(float64(x), float64(y))) }

func (x Real) Log() Real { return Real(math.Log(float64(x))) }
func (x Real) Exp() Real { return Real(math.Exp(float64(x))) }
func (x Real) Sin() Real { return Real(math.Sin(float64(x))) }
func (x Real) Cos() Real { return Real(math.Cos(float64(x))) }

func (Real) Lit(re, im float64) (Real, bool) {
	return Real(re), im == 0
}

// String formats x in positional notation so that finite values parse back to
// the same number.
func (x Real) String() string {
	return strconv.FormatFloat(float64(x), 'f', -1, 64)
}

// Complex is the complex domain, with the semantics of package math/cmplx.
type Complex complex128

var _ Scalar[Complex] = Complex(0)

func (z Complex) Add(w Complex) Complex { return z + w }
func (z Complex) Sub(w Complex) Complex { return z - w }
func (z Complex) Mul(w Complex) Complex { return z * w }
func (z Complex) Div(w Complex) Complex { return z / w }

func (z Complex) Pow(w Complex) Complex {
	return Complex(cmplx.Pow(complex128(z), complex128(w)))
}

func (z Complex) Log() Complex { return Complex(cmplx.Log(complex128(z))) }
func (z Complex) Exp() Complex { return Complex(cmplx.Exp(complex128(z))) }
func (z Complex) Sin() Complex { return Complex(cmplx.Sin(complex128(z))) }
func (z Complex) Cos() Complex { return Complex(cmplx.Cos(complex128(z))) }

func (Complex) Lit(re, im float64) (Complex, bool) {
	return Complex(complex(re, im)), true
}

// String formats z as "(re + imi)", e.g. "(1 + 2i)" or "(0.5 + -3i)".
func (z Complex) String() string {
	return "(" + Real(real(z)).String() + " + " + Real(imag(z)).String() + "i)"
}

// constant builds a real-valued constant of the domain T.
func constant[T Scalar[T]](v float64) T {
	var zero T
	r, _ := zero.Lit(v, 0)
	return r
}
