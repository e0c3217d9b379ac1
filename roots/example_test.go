// Copyright 2020 Aleksandr Demakin. All rights reserved.

package roots

import (
	"fmt"
	"math"
)

func ExampleBisect() {
	// pi is somewhere between 3 and 4, and it is a root of sine.
	pi := Bisect(math.Sin, 3, 4)
	fmt.Printf("pi = %.16f\n", pi)

	// sin is positive at both 1 and 2.
	fmt.Println(Bisect(math.Sin, 1, 2))

	// Output:
	// pi = 3.1415926535897931
	// NaN
}

func ExampleSteffensen() {
	sqrt2 := Steffensen(func(x float64) float64 { return 2 - x*x }, 2)
	fmt.Printf("sqrt(2) = %.16f\n", sqrt2)

	// Output:
	// sqrt(2) = 1.4142135623730951
}

func ExampleHeronSqrt() {
	fmt.Printf("sqrt(2) = %.16f\n", HeronSqrt(2))
	fmt.Printf("sqrt(9) = %.16f\n", HeronSqrtTight(9))

	res := DefaultHeron.Sqrt(1e10)
	fmt.Printf("converged: %v after %d iterations\n", res.Converged, res.Iterations)

	// Output:
	// sqrt(2) = 1.4142135623730949
	// sqrt(9) = 3.0000000000000000
	// converged: false after 16 iterations
}
