// Copyright 2020 Aleksandr Demakin. All rights reserved.

package roots

import "math"

var (
	// DefaultHeron is the method used by HeronSqrt.
	DefaultHeron = Heron{MaxIterations: HeronMaxIterations, Epsilon: HeronEpsilon}
	// TightHeron is the method used by HeronSqrtTight.
	TightHeron = Heron{MaxIterations: HeronMaxIterations, Epsilon: HeronTightEpsilon}
)

// Heron is a configurable Heron's (Babylonian) method for square roots.
type Heron struct {
	MaxIterations int
	Epsilon       float64
}

// HeronSqrt returns the square root of a positive x, with the relative error tolerance of HeronEpsilon.
// The result is not defined for x <= 0.
func HeronSqrt(x float64) float64 {
	return DefaultHeron.Sqrt(x).Root
}

// HeronSqrtTight is like HeronSqrt, but uses HeronTightEpsilon.
func HeronSqrtTight(x float64) float64 {
	return TightHeron.Sqrt(x).Root
}

// Sqrt computes the square root of x starting with x as the initial guess.
// It stops when |(x - r^2) / x| <= Epsilon, or after MaxIterations updates r = (r + x/r) / 2.
// The convergence is quadratic, but for large x the initial guess is poor,
// and MaxIterations may be reached before the tolerance is.
func (m Heron) Sqrt(x float64) Result {
	res := Result{Root: x}
	for ; res.Iterations < m.MaxIterations; res.Iterations++ {
		res.Residual = math.Abs((x - res.Root*res.Root) / x)
		if res.Residual <= m.Epsilon {
			res.Converged = true
			break
		}
		res.Root = 0.5 * (res.Root + x/res.Root)
	}
	return res
}
