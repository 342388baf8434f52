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

package hwy

import (
	"os"
	"strconv"
)

// DispatchLevel represents the instruction set the register kernels run on.
type DispatchLevel int

const (
	// DispatchScalar indicates the portable pure Go 16-lane kernels.
	DispatchScalar DispatchLevel = iota

	// DispatchAVX2 indicates a CPU with AVX2. The register kernels still run
	// the portable code since a Vec is wider than one AVX2 register.
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 kernels over archsimd.Float32x16.
	DispatchAVX512

	// DispatchNEON indicates an ARM CPU with NEON. Kernels are portable.
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the detected level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentName is the human-readable name of the current level.
var currentName = "scalar"

// CurrentLevel returns the instruction set the register kernels run on.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentName returns a human-readable name for the current level.
func CurrentName() string {
	return currentName
}

// Accelerated reports whether the register kernels use hardware vector
// instructions instead of the portable implementation.
func Accelerated() bool {
	return currentLevel == DispatchAVX512
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, the portable kernels are used regardless of CPU capabilities and
// the array package defaults to its scalar backend.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentName = "scalar"
}

func logDispatch() {
	Logger().Debug("hwy: dispatch selected",
		"level", currentName,
		"accelerated", Accelerated(),
		"lanes", Lanes)
}
