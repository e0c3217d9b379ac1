// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package cplx implements an immutable complex number made of two float64 parts,
// with elementary arithmetic and integer powers computed by repeated squaring.
// The values follow IEEE-754 semantics: NaN and infinite parts are allowed and propagate.
package cplx

import (
	"math"

	mu "github.com/avdva/elemath/internal/mathutil"
)

var (
	zero Complex
	one  = Complex{Re: 1}
	// I is the imaginary unit.
	I = Complex{Im: 1}
)

// Complex is a complex number Re + Im*i.
// All the methods have value receivers and return new values.
type Complex struct {
	Re, Im float64
}

// New returns re + im*i.
func New(re, im float64) Complex {
	return Complex{Re: re, Im: im}
}

// FromComplex128 converts a builtin complex number.
func FromComplex128(z complex128) Complex {
	return Complex{Re: real(z), Im: imag(z)}
}

// Complex128 converts z to a builtin complex number.
func (z Complex) Complex128() complex128 {
	return complex(z.Re, z.Im)
}

// Real returns the real part of z.
func (z Complex) Real() float64 {
	return z.Re
}

// Imag returns the imaginary part of z.
func (z Complex) Imag() float64 {
	return z.Im
}

// Abs returns the modulus of z, sqrt(re^2 + im^2).
// It is computed directly, so it overflows for parts larger than ~1e154.
func (z Complex) Abs() float64 {
	reSquared := z.Re * z.Re
	imSquared := z.Im * z.Im
	return math.Sqrt(reSquared + imSquared)
}

// Arg returns the principal argument of z, in range (-Pi, Pi].
// Arg of zero is zero, whatever the signs of its parts are.
func (z Complex) Arg() float64 {
	if z.Re == 0 && z.Im == 0 {
		return 0
	}
	theta := math.Atan2(z.Im, z.Re)
	if theta == -math.Pi { // negative real axis with a -0 imaginary part.
		return math.Pi
	}
	return theta
}

// Add returns z + w.
func (z Complex) Add(w Complex) Complex {
	return Complex{Re: z.Re + w.Re, Im: z.Im + w.Im}
}

// Sub returns z - w.
func (z Complex) Sub(w Complex) Complex {
	return Complex{Re: z.Re - w.Re, Im: z.Im - w.Im}
}

// Neg returns -z.
func (z Complex) Neg() Complex {
	return Complex{Re: -z.Re, Im: -z.Im}
}

// Conj returns the complex conjugate of z.
func (z Complex) Conj() Complex {
	return Complex{Re: z.Re, Im: -z.Im}
}

// Scale multiplies both parts of z by a real number.
func (z Complex) Scale(s float64) Complex {
	return Complex{Re: z.Re * s, Im: z.Im * s}
}

// Mul returns z * w = (ac - bd) + (ad + bc)i.
func (z Complex) Mul(w Complex) Complex {
	return Complex{
		Re: z.Re*w.Re - z.Im*w.Im,
		Im: z.Re*w.Im + z.Im*w.Re,
	}
}

// Square returns z * z.
// Both parts are computed from the original real part.
func (z Complex) Square() Complex {
	re := z.Re
	return Complex{
		Re: re*re - z.Im*z.Im,
		Im: z.Im * (2 * re),
	}
}

// Reciprocal returns 1 / z = conj(z) / |z|^2.
// The reciprocal of zero has NaN parts.
func (z Complex) Reciprocal() Complex {
	normSquared := z.Re*z.Re + z.Im*z.Im
	rcpr := 1 / normSquared
	return Complex{Re: z.Re * rcpr, Im: z.Im * -rcpr}
}

// Quo returns z / w.
func (z Complex) Quo(w Complex) Complex {
	return z.Mul(w.Reciprocal())
}

// Eq returns true, if both parts of z and w are equal.
// As for floats, a value with a NaN part is not equal to anything.
func (z Complex) Eq(w Complex) bool {
	return z.Re == w.Re && z.Im == w.Im
}

// IsNaN returns true if any of the parts is NaN and none is infinite.
// The rule is the same as in math/cmplx.
func (z Complex) IsNaN() bool {
	if z.IsInf() {
		return false
	}
	return math.IsNaN(z.Re) || math.IsNaN(z.Im)
}

// IsInf returns true if any of the parts is infinite.
func (z Complex) IsInf() bool {
	return math.IsInf(z.Re, 0) || math.IsInf(z.Im, 0)
}

func (z Complex) isFinite() bool {
	return mu.IsFinite(z.Re) && mu.IsFinite(z.Im)
}
