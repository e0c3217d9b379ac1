// Copyright 2020 Aleksandr Demakin. All rights reserved.

package intprobe

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"testing"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	mu "github.com/avdva/elemath/internal/mathutil"
)

func TestProbeUint32(t *testing.T) {
	a := assert.New(t)
	r := Probe[uint32]()
	a.Equal(32, r.Bits)
	a.Equal(uint32(4294967295), r.Max)
	a.Equal(uint32(0), r.MaxPlusOne)
}

func TestProbe(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		bits       int
		max        uint64
		maxPlusOne uint64
		probe      func() (int, uint64, uint64)
	}{
		{8, math.MaxUint8, 0, probeAsUint64[uint8]},
		{16, math.MaxUint16, 0, probeAsUint64[uint16]},
		{32, math.MaxUint32, 0, probeAsUint64[uint32]},
		{64, math.MaxUint64, 0, probeAsUint64[uint64]},
		{bits.UintSize, math.MaxUint, 0, probeAsUint64[uint]},
		{bits.UintSize, math.MaxUint, 0, probeAsUint64[uintptr]},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			b, m, mp := test.probe()
			a.Equal(test.bits, b)
			a.Equal(test.max, m)
			a.Equal(test.maxPlusOne, mp)
			a.Equal(test.bits, mu.BinaryDigits(m))
			// 2^bits - 1 computed in decimal arithmetic.
			expected := decimal.New(2, 0).Pow(decimal.New(int64(b), 0)).Sub(decimal.New(1, 0))
			a.Equal(expected.String(), strconv.FormatUint(m, 10))
		})
	}
}

func probeAsUint64[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr]() (int, uint64, uint64) {
	r := Probe[T]()
	return r.Bits, uint64(r.Max), uint64(r.MaxPlusOne)
}

type myByte uint8

func TestProbeNamedType(t *testing.T) {
	a := assert.New(t)
	r := Probe[myByte]()
	a.Equal(Report[myByte]{Bits: 8, Max: 255, MaxPlusOne: 0}, r)
}

func TestProbeUint256(t *testing.T) {
	a := assert.New(t)
	r := ProbeUint256()
	a.Equal(256, r.Bits)
	a.True(r.MaxPlusOne.IsZero())
	a.True(r.Max.Eq(new(uint256.Int).SetAllOne()))
	a.Equal(256, r.Max.BitLen())
	expected := decimal.New(2, 0).Pow(decimal.New(256, 0)).Sub(decimal.New(1, 0))
	a.Equal(expected.String(), r.Max.ToBig().String())
	a.Equal("115792089237316195423570985008687907853269984665640564039457584007913129639935", r.Max.ToBig().String())
}

func BenchmarkProbeUint64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Probe[uint64]()
	}
}

func BenchmarkProbeUint256(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = ProbeUint256()
	}
}
