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

// Package dot provides tail-masked reductions and dot products.
//
// The Registers functions work on register-packed row buffers: every row of
// rowLen logical elements occupies hwy.RegistersFor(rowLen) registers, and the
// lanes past rowLen in the last register of a row hold arbitrary values. Those
// lanes are forced to the fold's identity (or excluded from the accumulator)
// before folding, so padding never contributes to a result.
//
// The Flat functions are the scalar-backend equivalents over unpadded
// slices, folding left to right.
package dot
