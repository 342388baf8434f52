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

// InterleaveLower interleaves the lower halves of a and b:
// [a0, b0, a1, b1, ..., a7, b7].
func InterleaveLower(a, b Vec) Vec {
	var r Vec
	for i := 0; i < Lanes/2; i++ {
		r[2*i] = a[i]
		r[2*i+1] = b[i]
	}
	return r
}

// InterleaveUpper interleaves the upper halves of a and b:
// [a8, b8, a9, b9, ..., a15, b15].
func InterleaveUpper(a, b Vec) Vec {
	var r Vec
	for i := 0; i < Lanes/2; i++ {
		r[2*i] = a[Lanes/2+i]
		r[2*i+1] = b[Lanes/2+i]
	}
	return r
}

// Transpose16 transposes a 16×16 block held in 16 registers in place.
//
// Each of the log2(16) rounds is a perfect shuffle: row i is interleaved
// with row i+8 and the two halves land in rows 2i and 2i+1. After four rounds
// lane r of row c holds what was lane c of row r.
func Transpose16(block *[Lanes]Vec) {
	var next [Lanes]Vec
	for round := 1; round < Lanes; round *= 2 {
		for i := 0; i < Lanes/2; i++ {
			next[2*i] = InterleaveLower(block[i], block[i+Lanes/2])
			next[2*i+1] = InterleaveUpper(block[i], block[i+Lanes/2])
		}
		*block = next
	}
}
