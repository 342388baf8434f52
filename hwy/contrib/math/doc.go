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

// Package math provides the vectorized exponential used by the array engine.
//
// # Algorithm
//
// ExpApprox trades accuracy for speed (relative error below 1e-5 in the
// normal range, well inside the engine's 1e-3 tolerance):
//
//  1. Range reduction: r = round(x * log2(e)), f = x - r*ln2Hi - r*ln2Lo
//  2. Degree-4 minimax polynomial for e^f, evaluated with Horner's method
//  3. Reconstruction: r << 23 is added to the bit pattern of the polynomial
//
// Inputs above ExpOverflow give +Inf, inputs below ExpUnderflow give 0 and NaN
// propagates.
//
// # Entry Points
//
//   - ExpApprox(v hwy.Vec) hwy.Vec - one register, portable
//   - ExpRegisters(dst []float32) - in place over register-packed buffers
//   - ExpRegistersMasked(dst []float32, masks []hwy.Mask) - active lanes only
//
// With GOEXPERIMENT=simd on an AVX-512 CPU, the register kernels run
// ExpApprox_AVX512_F32x16, which computes the same bits as ExpApprox.
package math
