// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package hwy provides the 16-lane float32 vector layer used by the array
// engine, with runtime CPU dispatch.
//
// A Vec is one register: 16 float32 lanes. A Mask is the matching 16-bit
// lane predicate, one bit per lane, bit i for lane i. Register-packed buffers
// are plain []float32 slices whose length is a multiple of Lanes; the slice
// kernels in this package (BinaryRegisters, CompareRegisters, ...) walk such
// buffers one register at a time and are replaced at init by AVX-512
// implementations when the binary is built with GOEXPERIMENT=simd and the CPU
// supports them.
//
// Basic usage:
//
//	a := hwy.Load(data1)
//	b := hwy.Load(data2)
//	m := hwy.Less(a, b)
//	r := hwy.IfThenElse(m, hwy.Add(a, b), a)
//	r.Store(out)
package hwy

import "math/bits"

// Lanes is the number of float32 lanes in one register.
const Lanes = 16

// Vec is one 16-lane float32 register.
type Vec [Lanes]float32

// Mask is a per-lane predicate for a Vec. Bit i is set when lane i is active.
type Mask uint16

// AllLanes has every lane active.
const AllLanes Mask = 0xFFFF

// Bit reports whether lane i is active. Lanes outside [0, Lanes) are inactive.
func (m Mask) Bit(i int) bool {
	if i < 0 || i >= Lanes {
		return false
	}
	return (m>>uint(i))&1 == 1
}

// With returns m with lane i set to v.
func (m Mask) With(i int, v bool) Mask {
	if i < 0 || i >= Lanes {
		return m
	}
	if v {
		return m | 1<<uint(i)
	}
	return m &^ (1 << uint(i))
}

// CountTrue returns the number of active lanes.
func (m Mask) CountTrue() int {
	return bits.OnesCount16(uint16(m))
}

// AllTrue reports whether every lane is active.
func (m Mask) AllTrue() bool {
	return m == AllLanes
}

// AnyTrue reports whether at least one lane is active.
func (m Mask) AnyTrue() bool {
	return m != 0
}

// Not returns the complement of m over all 16 lanes.
func (m Mask) Not() Mask {
	return ^m
}
