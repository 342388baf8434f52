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

// Package random provides a 16-stream linear congruential generator.
//
// Each lane runs its own stream seed' = (Multiplier*seed + Increment) & Modulus
// in wrapping 32-bit arithmetic, and every output is scaled by 2^-31 into
// [0, 1). One Next call advances all 16 streams and fills one register.
//
// Generation is register-shaped: a row of cols elements consumes
// hwy.RegistersFor(cols) steps, and the lanes past cols in the last step are
// discarded. UniformRegisters and UniformRows therefore produce the same
// values for the same logical matrix and seed, padded or not.
package random

import (
	"math"

	"github.com/ajroetker/hwyarray/hwy"
)

const (
	Multiplier uint32 = 1103515245
	Increment  uint32 = 12345
	Modulus    uint32 = 0x7fffffff
)

// scale maps a 31-bit state to [0, 1).
const scale = 1.0 / (1 << 31)

// maxBelowOne is the largest float32 less than 1. A state close to Modulus
// rounds up to 2^31 when converted to float32; such outputs are clamped here.
var maxBelowOne = math.Nextafter32(1, 0)

// Seed holds the state of the 16 streams, one per lane.
type Seed [hwy.Lanes]uint32

// Next advances every stream once and returns the new states as uniform
// floats in [0, 1).
func (s *Seed) Next() hwy.Vec {
	var v hwy.Vec
	for i, x := range s {
		x = (Multiplier*x + Increment) & Modulus
		s[i] = x
		v[i] = min(float32(x)*scale, maxBelowOne)
	}
	return v
}

// UniformRegisters fills a register-packed buffer with one Next call per register
// and returns the advanced seed.
func UniformRegisters(dst []float32, seed Seed) Seed {
	regs := hwy.AsRegisters(dst)
	for i := range regs {
		regs[i] = seed.Next()
	}
	return seed
}

// UniformRows fills a flat rows x cols buffer with the same values
// UniformRegisters would give the register-packed layout, and returns the
// advanced seed.
func UniformRows(dst []float32, rows, cols int, seed Seed) Seed {
	perRow := hwy.RegistersFor(cols)
	for r := range rows {
		row := dst[r*cols : (r+1)*cols]
		for j := range perRow {
			v := seed.Next()
			v.Store(row[j*hwy.Lanes:])
		}
	}
	return seed
}
