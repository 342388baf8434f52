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

// Package array provides dense row-major float32 tensors of fixed rank with
// elementwise arithmetic, boolean masks, reductions and matrix products.
//
// # Backends
//
// Every Array and Mask is stored by one of two backends:
//
//   - Vector: each row (all elements sharing every index but the last) is
//     padded to whole 16-lane registers and processed by the hwy register
//     kernels, which run on AVX-512 when available. Masks are packed one bit
//     per lane into one hwy.Mask word per register.
//   - Scalar: a flat, unpadded element sequence processed one element at a
//     time. Masks are flat []bool.
//
// Both backends give identical results, except Exp (the vector backend uses a
// polynomial approximation), reductions and matrix products (summation order
// differs).
// Operands of different backends may be mixed; the argument is converted to
// the receiver's backend.
//
// The default backend is Vector unless HWY_NO_SIMD is set. Use
// SetDefaultBackend or the WithBackend option to choose explicitly.
//
// # Errors
//
// Operations never panic on caller input. Shape disagreements return a
// *ShapeMismatchError (errors.Is(err, ErrShapeMismatch)) and out-of-range
// indices return an *IndexOutOfRangeError (errors.Is(err, ErrIndexOutOfRange)).
// All checks run before any operand is modified.
//
// # Example
//
//	a, _ := array.Zeros(array.Shape{3, 4})
//	for i := range 3 {
//	    for j := range 4 {
//	        _ = a.Set2(float32(i*4+j), i, j)
//	    }
//	}
//	m := a.GreaterScalar(5)
//	_ = a.SetMasked(0, m)
//	fmt.Println(a.Sum())
package array
