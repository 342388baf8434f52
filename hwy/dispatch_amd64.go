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

//go:build amd64 && !goexperiment.simd

package hwy

import "golang.org/x/sys/cpu"

// Fallback for when GOEXPERIMENT=simd is not enabled. archsimd is not
// available, so the kernels stay portable; x/sys/cpu still reports what the
// CPU could do so callers can log it.

var hasAVX512F bool

func init() {
	hasAVX512F = cpu.X86.HasAVX512F

	if NoSimdEnv() {
		setScalarMode()
		logDispatch()
		return
	}

	detectCPUFeatures()
	logDispatch()
}

func detectCPUFeatures() {
	// Without archsimd the 16-lane kernels are pure Go whatever the CPU has.
	setScalarMode()
	if cpu.X86.HasAVX2 {
		Logger().Debug("hwy: AVX2 present but archsimd unavailable; build with GOEXPERIMENT=simd",
			"avx512f", hasAVX512F)
	}
}

// HasAVX512 reports whether the CPU supports AVX-512F.
func HasAVX512() bool {
	return hasAVX512F
}
