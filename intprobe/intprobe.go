// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package intprobe finds the width and the largest value of fixed-width unsigned integer types
// using only their wraparound arithmetic: 1 is doubled until it overflows to zero.
package intprobe

import (
	"github.com/holiman/uint256"
	"golang.org/x/exp/constraints"
)

// Report is the result of a probe.
type Report[T any] struct {
	// Bits is the number of bits in the type.
	Bits int
	// Max is the largest value of the type.
	Max T
	// MaxPlusOne is Max + 1, which wraps around to zero.
	MaxPlusOne T
}

// BitWidth returns the number of bits in T.
func BitWidth[T constraints.Unsigned]() int {
	var exponent int
	for powerOfTwo := T(1); powerOfTwo != 0; powerOfTwo <<= 1 {
		exponent++
	}
	return exponent
}

// MaxValue returns the largest value of T as the sum of 2^i for i in [0, BitWidth).
func MaxValue[T constraints.Unsigned]() T {
	var maxValue T
	numberOfBits := BitWidth[T]()
	for index := 0; index < numberOfBits; index++ {
		maxValue += T(1) << index
	}
	return maxValue
}

// Probe returns the report for T.
func Probe[T constraints.Unsigned]() Report[T] {
	maxValue := MaxValue[T]()
	return Report[T]{
		Bits:       BitWidth[T](),
		Max:        maxValue,
		MaxPlusOne: maxValue + 1,
	}
}

// BitWidth256 returns the number of bits in a uint256.Int.
func BitWidth256() int {
	var exponent int
	for powerOfTwo := uint256.NewInt(1); !powerOfTwo.IsZero(); powerOfTwo.Lsh(powerOfTwo, 1) {
		exponent++
	}
	return exponent
}

// MaxValue256 returns the largest uint256.Int.
func MaxValue256() *uint256.Int {
	maxValue, term := new(uint256.Int), new(uint256.Int)
	one, numberOfBits := uint256.NewInt(1), BitWidth256()
	for index := 0; index < numberOfBits; index++ {
		maxValue.Add(maxValue, term.Lsh(one, uint(index)))
	}
	return maxValue
}

// ProbeUint256 returns the report for 256-bit words.
func ProbeUint256() Report[*uint256.Int] {
	maxValue := MaxValue256()
	return Report[*uint256.Int]{
		Bits:       BitWidth256(),
		Max:        maxValue,
		MaxPlusOne: new(uint256.Int).AddUint64(maxValue, 1),
	}
}
