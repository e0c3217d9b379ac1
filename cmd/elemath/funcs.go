// Copyright 2020 Aleksandr Demakin. All rights reserved.

package main

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/avdva/elemath/roots"
)

// namedFuncs are the functions available to the root finders.
var namedFuncs = map[string]roots.RealFunc{
	"sin": math.Sin,
	"cos": math.Cos,
	"tan": math.Tan,
	"log": math.Log,
	// sqrt2 has roots at +-sqrt(2).
	"sqrt2": func(x float64) float64 {
		return 2 - x*x
	},
	"cubic": func(x float64) float64 {
		return x*x*x - x - 2
	},
}

func funcNames() []string {
	names := maps.Keys(namedFuncs)
	slices.Sort(names)
	return names
}

func lookupFunc(name string) (roots.RealFunc, error) {
	f, found := namedFuncs[name]
	if !found {
		return nil, fmt.Errorf("unknown function %q, available: %s", name, strings.Join(funcNames(), ", "))
	}
	return f, nil
}
