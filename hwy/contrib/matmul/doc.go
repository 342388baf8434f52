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

// Package matmul provides the register-blocked transpose and matrix
// multiplication used by the array engine.
//
// Register-packed matrices store each row of cols elements in
// hwy.RegistersFor(cols) registers; lanes past cols in the last register are
// padding. Flat matrices are plain row-major slices without padding.
//
// Multiplication transposes B once with 16x16 block transposes so that every
// output element becomes a contiguous fused multiply-accumulate sweep over a
// row of A and a row of B transposed:
//
//	// C = A * B where A is MxK, B is KxN, C is MxN, all register-packed
//	bT := make([]float32, n*hwy.AlignedSize(k))
//	matmul.TransposeRegisters(b, k, n, bT)
//	matmul.MatMulRegisters(a, bT, c, m, n, k)
//
// MatMul wraps both steps. Flat variants (TransposeFlat, MatMulFlat) serve
// the scalar backend.
package matmul
