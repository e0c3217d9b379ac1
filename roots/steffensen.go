// Copyright 2020 Aleksandr Demakin. All rights reserved.

package roots

import "math"

var (
	// DefaultSteffensen is the method used by Steffensen.
	DefaultSteffensen = SteffensenMethod{MaxIterations: SteffensenMaxIterations, Epsilon: SteffensenEpsilon}
)

// SteffensenMethod is a configurable Steffensen's method.
type SteffensenMethod struct {
	MaxIterations int
	Epsilon       float64
}

// Steffensen finds a root of f near x0.
// The convergence is quadratic, but only local: x0 must be close enough to a root.
func Steffensen(f RealFunc, x0 float64) float64 {
	return DefaultSteffensen.Solve(f, x0).Root
}

// Solve runs Steffensen's method starting at x0.
// Each step computes g(x) = f(x + f(x))/f(x) - 1, which plays the role of f'(x),
// and moves to x - f(x)/g(x). The step is made before |f(x)| is compared against Epsilon.
// If f(x) is exactly zero, g(x) is 0/0 and the root becomes NaN.
func (m SteffensenMethod) Solve(f RealFunc, x0 float64) Result {
	res := Result{Root: x0}
	for res.Iterations < m.MaxIterations {
		fx := f(res.Root)
		g := f(res.Root+fx)/fx - 1
		res.Root -= fx / g
		res.Iterations++
		res.Residual = math.Abs(fx)
		if res.Residual < m.Epsilon {
			res.Converged = true
			break
		}
	}
	return res
}
