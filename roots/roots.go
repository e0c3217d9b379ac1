// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package roots implements iterative root finders for real functions:
// the bisection method, Steffensen's method, and Heron's method for square roots.
//
// Every method stops after a fixed number of iterations and returns the best estimate
// it has reached. The plain functions (Bisect, Steffensen, HeronSqrt, HeronSqrtTight)
// do not report whether the tolerance was met, the Solve and Sqrt methods return a Result, which does.
package roots

import (
	mu "github.com/avdva/elemath/internal/mathutil"
)

// RealFunc is a function f: R -> R.
type RealFunc func(x float64) float64

// Result describes the outcome of an iterative method.
type Result struct {
	// Root is the estimate returned by the method.
	Root float64
	// Iterations is the number of iterations performed.
	Iterations int
	// Residual is the error measure of the last checked point:
	// |f(x)| for bisection and Steffensen's method, |x - r^2| / x for Heron's method.
	Residual float64
	// Converged is true if the method stopped because Residual was within tolerance.
	Converged bool
}

const (
	// BisectionMaxIterations limits the number of bisection steps.
	BisectionMaxIterations = 64
	// BisectionEpsilon is the tolerance for |f(midpoint)|.
	BisectionEpsilon = mu.DoubleEpsilon

	// SteffensenMaxIterations limits the number of Steffensen's steps.
	SteffensenMaxIterations = 16
	// SteffensenEpsilon is the tolerance for |f(x)|, 4x double precision epsilon.
	SteffensenEpsilon = 4 * mu.DoubleEpsilon

	// HeronMaxIterations limits the number of Heron's steps.
	HeronMaxIterations = 16
	// HeronEpsilon is the tolerance for the relative error of HeronSqrt, 4x double precision epsilon.
	HeronEpsilon = 4 * mu.DoubleEpsilon
	// HeronTightEpsilon is the tolerance for the relative error of HeronSqrtTight, double precision epsilon.
	HeronTightEpsilon = mu.DoubleEpsilon
)
