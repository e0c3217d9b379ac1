// Copyright 2020 Aleksandr Demakin. All rights reserved.

package cplx

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
)

var negZero = math.Copysign(0, -1)

// newFuzzer returns a fuzzer producing values with modulus in [0.5, 2).
// Any integer power up to 48 of such a value stays well inside the float64 range.
func newFuzzer(seed int64) *fuzz.Fuzzer {
	return fuzz.NewWithSeed(seed).Funcs(
		func(z *Complex, c fuzz.Continue) {
			r := 0.5 + 1.5*c.Float64()
			theta := (2*c.Float64() - 1) * math.Pi
			*z = Complex{Re: r * math.Cos(theta), Im: r * math.Sin(theta)}
		},
		func(e *smallExp, c fuzz.Continue) {
			*e = smallExp(c.Intn(49) - 24)
		},
	)
}

type smallExp int

func assertClose(a *assert.Assertions, expected, actual Complex, rel float64, msgAndArgs ...interface{}) bool {
	diff := expected.Sub(actual).Abs()
	return a.LessOrEqual(diff, rel*math.Max(1, expected.Abs()), msgAndArgs...)
}

func TestParts(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		z        Complex
		re, im   float64
		modulus  float64
		argument float64
	}{
		{New(1, 1), 1, 1, math.Sqrt2, math.Pi / 4},
		{New(3, 4), 3, 4, 5, math.Atan2(4, 3)},
		{New(1, 2), 1, 2, math.Sqrt(5), math.Atan2(2, 1)},
		{New(-1, 0), -1, 0, 1, math.Pi},
		{New(-1, negZero), -1, negZero, 1, math.Pi},
		{New(0, -2), 0, -2, 2, -math.Pi / 2},
		{New(-1, -1), -1, -1, math.Sqrt2, -3 * math.Pi / 4},
		{zero, 0, 0, 0, 0},
		{New(negZero, 0), negZero, 0, 0, 0},
		{New(negZero, negZero), negZero, negZero, 0, 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.re, test.z.Real())
			a.Equal(test.im, test.z.Imag())
			a.InDelta(test.modulus, test.z.Abs(), 1e-15)
			a.InDelta(test.argument, test.z.Arg(), 1e-15)
			a.True(test.z.Arg() > -math.Pi && test.z.Arg() <= math.Pi)
		})
	}
}

func TestArithmetic(t *testing.T) {
	a := assert.New(t)
	z, w := New(1, 2), New(1, -1)
	a.Equal(New(-1, -2), z.Neg())
	a.Equal(New(2, 1), z.Add(w))
	a.Equal(New(0, 3), z.Sub(w))
	a.Equal(New(3, 1), z.Mul(w))
	a.Equal(New(3, 1), w.Mul(z))
	a.Equal(New(4, 8), z.Scale(4))
	a.Equal(New(1, -2), z.Conj())
	a.Equal(New(-0.5, 1.5), z.Quo(w))
	a.Equal(New(-7, 24), New(3, 4).Square())
}

func TestSquare(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		z, res Complex
	}{
		{New(1, 1), New(0, 2)},
		{New(3, 4), New(-7, 24)},
		{New(0, 1), New(-1, 0)},
		{New(2, 0), New(4, 0)},
		{New(-1, 3), New(-8, -6)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, test.z.Square())
		})
	}
}

func TestSquareMatchesMul(t *testing.T) {
	a := assert.New(t)
	f := newFuzzer(1)
	for i := 0; i < 1000; i++ {
		var z Complex
		f.Fuzz(&z)
		a.True(z.Square().Eq(z.Mul(z)), "z = %v", z)
	}
}

func TestReciprocal(t *testing.T) {
	a := assert.New(t)
	a.Equal(New(0.5, -0.5), New(1, 1).Reciprocal())
	a.Equal(New(0, -1), I.Reciprocal())
	a.Equal(New(0.25, 0), New(4, 0).Reciprocal())

	r := zero.Reciprocal()
	a.True(math.IsNaN(r.Re))
	a.True(math.IsNaN(r.Im))
	a.True(r.IsNaN())

	f := newFuzzer(2)
	for i := 0; i < 1000; i++ {
		var z Complex
		f.Fuzz(&z)
		assertClose(a, one, z.Mul(z.Reciprocal()), 1e-14, "z = %v", z)
		assertClose(a, FromComplex128(1/z.Complex128()), z.Reciprocal(), 1e-14, "z = %v", z)
	}
}

func TestMulMatchesBuiltin(t *testing.T) {
	a := assert.New(t)
	f := newFuzzer(3)
	for i := 0; i < 1000; i++ {
		var z, w Complex
		f.Fuzz(&z)
		f.Fuzz(&w)
		assertClose(a, FromComplex128(z.Complex128()*w.Complex128()), z.Mul(w), 1e-14)
		a.InDelta(cmplx.Abs(z.Complex128()), z.Abs(), 1e-15)
		a.InDelta(cmplx.Phase(z.Complex128()), z.Arg(), 1e-15)
	}
}

func TestNaNInf(t *testing.T) {
	a := assert.New(t)
	nan, inf := math.NaN(), math.Inf(1)
	a.True(New(nan, 0).IsNaN())
	a.False(New(nan, 0).IsInf())
	a.True(New(nan, inf).IsInf())
	a.False(New(nan, inf).IsNaN())
	a.False(New(1, 2).IsNaN())
	a.False(New(nan, 1).Eq(New(nan, 1)))
	a.True(New(nan, 1).Add(one).IsNaN())
}

func TestComplex128(t *testing.T) {
	a := assert.New(t)
	z := FromComplex128(3 - 4i)
	a.Equal(New(3, -4), z)
	a.Equal(3-4i, z.Complex128())
}
