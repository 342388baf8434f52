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

//go:build amd64 && goexperiment.simd

package hwy

import (
	"simd/archsimd"

	"golang.org/x/sys/cpu"
)

var hasAVX512F bool

func init() {
	hasAVX512F = cpu.X86.HasAVX512F && archsimd.X86.AVX512()

	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		setScalarMode()
		logDispatch()
		return
	}

	detectCPUFeatures()
	if currentLevel == DispatchAVX512 {
		installAVX512Kernels()
	}
	logDispatch()
}

func detectCPUFeatures() {
	// Use actual CPU detection from archsimd package
	if hasAVX512F {
		currentLevel = DispatchAVX512
		currentName = "avx512"
	} else if archsimd.X86.AVX2() {
		currentLevel = DispatchAVX2
		currentName = "avx2"
	} else {
		setScalarMode()
	}
}

// HasAVX512 reports whether the CPU supports AVX-512F.
func HasAVX512() bool {
	return hasAVX512F
}
