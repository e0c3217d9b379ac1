// Copyright 2020 Aleksandr Demakin. All rights reserved.

package roots

import (
	"errors"
	"math"

	mu "github.com/avdva/elemath/internal/mathutil"
)

var (
	// ErrNoSignChange is returned, if f does not change its sign between the bracket endpoints,
	// or if any of the endpoint evaluations is NaN.
	ErrNoSignChange = errors.New("f(a) and f(b) must have opposite signs")

	// DefaultBisection is the method used by Bisect.
	DefaultBisection = Bisection{MaxIterations: BisectionMaxIterations, Epsilon: BisectionEpsilon}
)

// Bisection is a configurable bisection method.
type Bisection struct {
	MaxIterations int
	Epsilon       float64
}

// Bisect finds a root of a continuous function f in the interval bracketed by a and b.
// Neither a < b nor f(a) < f(b) are required, but f(a) and f(b) must have opposite signs,
// otherwise NaN is returned.
// If f(a) or f(b) is zero, the corresponding endpoint is returned.
func Bisect(f RealFunc, a, b float64) float64 {
	res, _ := DefaultBisection.Solve(f, a, b)
	return res.Root
}

// Solve runs the bisection method on [a, b].
// For an invalid bracket it returns NaN as the root and ErrNoSignChange.
// The iterations stop when |f(midpoint)| <= Epsilon, or after MaxIterations steps.
// In the latter case the last midpoint is returned.
func (m Bisection) Solve(f RealFunc, a, b float64) (Result, error) {
	aEval, bEval := f(a), f(b)
	if aEval == 0 {
		return Result{Root: a, Converged: true}, nil
	}
	if bEval == 0 {
		return Result{Root: b, Converged: true}, nil
	}
	if math.IsNaN(aEval) || math.IsNaN(bEval) || mu.FloatSign(aEval) == mu.FloatSign(bEval) {
		return Result{Root: mu.NaNFrom(a), Residual: math.NaN()}, ErrNoSignChange
	}
	// left is the endpoint where f is negative.
	left, right := a, b
	if aEval > bEval {
		left, right = b, a
	}
	res := Result{Root: mu.Midpoint(a, b)}
	for res.Iterations < m.MaxIterations {
		eval := f(res.Root)
		res.Iterations++
		res.Residual = math.Abs(eval)
		if res.Residual <= m.Epsilon {
			res.Converged = true
			break
		}
		if eval < 0 {
			left = res.Root
			res.Root = mu.Midpoint(res.Root, right)
		} else {
			right = res.Root
			res.Root = mu.Midpoint(left, res.Root)
		}
	}
	return res, nil
}
