// Copyright 2020 Aleksandr Demakin. All rights reserved.

package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/avdva/elemath/cplx"
	mu "github.com/avdva/elemath/internal/mathutil"
)

const (
	formatSci     = "sci"
	formatFixed   = "fixed"
	formatDecimal = "decimal"
)

func checkFormat(format string) error {
	switch format {
	case formatSci, formatFixed, formatDecimal:
		return nil
	default:
		return fmt.Errorf("unknown format %q, expected %s, %s or %s", format, formatSci, formatFixed, formatDecimal)
	}
}

func formatFloat(v float64, format string) string {
	switch format {
	case formatFixed:
		return strconv.FormatFloat(v, 'f', 16, 64)
	case formatDecimal:
		// decimal.NewFromFloat panics on NaN and infinities.
		if !mu.IsFinite(v) {
			return strconv.FormatFloat(v, 'g', -1, 64)
		}
		return decimal.NewFromFloat(v).String()
	default:
		return strconv.FormatFloat(v, 'E', 16, 64)
	}
}

func formatComplex(z cplx.Complex, format string) string {
	switch format {
	case formatFixed:
		return z.Text('f', 16)
	case formatDecimal:
		im, sep := z.Im, " + "
		if math.Signbit(im) && !math.IsNaN(im) {
			im, sep = -im, " - "
		}
		return formatFloat(z.Re, format) + sep + strings.TrimPrefix(formatFloat(im, format), "+") + "*i"
	default:
		return z.Text('E', 16)
	}
}
