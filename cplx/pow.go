// Copyright 2020 Aleksandr Demakin. All rights reserved.

package cplx

import (
	mu "github.com/avdva/elemath/internal/mathutil"
)

// powStep is called at the start of every squaring step with the current state.
// z^n == output^k * scale holds for every call.
type powStep func(output Complex, k uint64, scale Complex)

// Pow returns z^n, using O(log|n|) multiplications.
// z^0 is 1 for every z, including zero and NaN.
// For negative n the result is (1/z)^-n, so zero raised to a negative power has NaN parts.
func (z Complex) Pow(n int) Complex {
	return pow(z, n, nil)
}

// Pow returns z^n, see Complex.Pow.
func Pow(z Complex, n int) Complex {
	return pow(z, n, nil)
}

func pow(z Complex, n int, step powStep) Complex {
	if n == 0 {
		return one
	}
	output := z
	if n < 0 {
		output = output.Reciprocal()
	}
	k, scale := mu.UnsignedAbs(int64(n)), one
	for k > 1 {
		if step != nil {
			step(output, k, scale)
		}
		if k&1 == 1 {
			scale = scale.Mul(output)
			k--
		}
		output = output.Square()
		k >>= 1
	}
	return output.Mul(scale)
}
