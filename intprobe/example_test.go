// Copyright 2020 Aleksandr Demakin. All rights reserved.

package intprobe

import "fmt"

func ExampleProbe() {
	r := Probe[uint32]()
	fmt.Printf("Total Number of Bits: %d\n", r.Bits)
	fmt.Printf("Largest Integer Value: %d\n", r.Max)
	fmt.Printf("Largest Value Plus One: %d\n", r.MaxPlusOne)

	// Output:
	// Total Number of Bits: 32
	// Largest Integer Value: 4294967295
	// Largest Value Plus One: 0
}

func ExampleProbeUint256() {
	r := ProbeUint256()
	fmt.Printf("%d bits, max = %s, max + 1 = %s\n", r.Bits, r.Max.Hex(), r.MaxPlusOne.Hex())

	// Output:
	// 256 bits, max = 0xffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff, max + 1 = 0x0
}
