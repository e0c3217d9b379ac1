// Copyright 2020 Aleksandr Demakin. All rights reserved.

package cplx

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeObject
)

const (
	// JSONModeObject marshals values as objects, like `{"re":1,"im":-2}`.
	JSONModeObject = iota
	// JSONModeArray marshals values as two-element arrays, like `[1,-2]`.
	JSONModeArray
	// JSONModeString produces values as strings, like `"(1-2i)"`.
	// This is the only mode, which can represent NaNs and infinities.
	JSONModeString
)

var (
	errNotFinite = errors.New("non-finite value requires JSONModeString")
)

var jsonNull = []byte("null")

type jsonObject struct {
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

// String returns z in a form like "1 + 2 i" or "1 - 2 i".
func (z Complex) String() string {
	return z.join('g', -1, " i")
}

// Text converts z to a string like "X + Y*i", where both parts are formatted
// according to format and prec, see strconv.FormatFloat.
// Text('E', 16) gives the same output as C's "%.16E + %.16E*i" for non-negative imaginary parts.
func (z Complex) Text(format byte, prec int) string {
	return z.join(format, prec, "*i")
}

func (z Complex) join(format byte, prec int, unit string) string {
	var builder strings.Builder
	builder.WriteString(strconv.FormatFloat(z.Re, format, prec, 64))
	im := z.Im
	if math.Signbit(im) && !math.IsNaN(im) {
		builder.WriteString(" - ")
		im = -im
	} else {
		builder.WriteString(" + ")
	}
	// the sign is in the separator, so "+Inf" loses its own.
	builder.WriteString(strings.TrimPrefix(strconv.FormatFloat(im, format, prec, 64), "+"))
	builder.WriteString(unit)
	return builder.String()
}

// FromString parses a complex number.
// Accepts the forms returned by String and Text, and the ones accepted by strconv.ParseComplex,
// like "1+2i", "(1+2i)", "-3.5", "2i". The string may be quoted.
func FromString(s string) (Complex, error) {
	prepared, err := prepareString(s)
	if err != nil {
		return zero, err
	}
	c, err := strconv.ParseComplex(prepared, 128)
	if err != nil {
		return zero, fmt.Errorf("parsing failed: %w", err)
	}
	return FromComplex128(c), nil
}

// MustFromString is like FromString, but panics on error.
func MustFromString(s string) Complex {
	z, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return z
}

// prepareString removes quotes and spaces, and replaces "*i" with "i".
func prepareString(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if len(s) == 0 {
		return "", fmt.Errorf("empty input")
	}
	return strings.ReplaceAll(s, "*i", "i"), nil
}

// MarshalJSON marshals value according to current JSONMode.
// See JSONMode and JSONMode* constants.
func (z Complex) MarshalJSON() ([]byte, error) {
	return z.toJSON(JSONMode)
}

func (z Complex) toJSON(mode int) ([]byte, error) {
	if mode != JSONModeString && !z.isFinite() {
		return nil, errNotFinite
	}
	switch mode {
	case JSONModeArray:
		return json.Marshal([2]float64{z.Re, z.Im})
	case JSONModeString:
		return []byte(strconv.Quote(strconv.FormatComplex(z.Complex128(), 'g', -1, 128))), nil
	default:
		return json.Marshal(jsonObject{Re: z.Re, Im: z.Im})
	}
}

// UnmarshalJSON unmarshals an object, an array, a string, or a real number into a value.
// null leaves the value unchanged.
func (z *Complex) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty json")
	}
	if bytes.Equal(data, jsonNull) {
		return nil
	}
	switch data[0] {
	case '{':
		var obj jsonObject
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*z = Complex{Re: obj.Re, Im: obj.Im}
	case '[':
		var arr []float64
		if err := json.Unmarshal(data, &arr); err != nil {
			return err
		}
		if len(arr) != 2 {
			return fmt.Errorf("expected 2 array elements, got %d", len(arr))
		}
		*z = Complex{Re: arr[0], Im: arr[1]}
	default:
		value, err := FromString(string(data))
		if err != nil {
			return err
		}
		*z = value
	}
	return nil
}
