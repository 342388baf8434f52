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


package matmul

import "github.com/ajroetker/hwyarray/hwy"

// TransposeBlock transposes one 16x16 block held in registers.
var TransposeBlock func(block *[hwy.Lanes]hwy.Vec) = hwy.Transpose16

// TransposeRegisters writes the transpose of the register-packed rows x cols
// matrix src into dst, a register-packed cols x rows matrix.
//
// The matrix is walked in 16x16 blocks. Rows past the end of src enter the
// block as zeros, so padding lanes of dst are always zero.
func TransposeRegisters(src []float32, rows, cols int, dst []float32) {
	srcRegs := hwy.AsRegisters(src)
	dstRegs := hwy.AsRegisters(dst)
	srcPerRow := hwy.RegistersFor(cols)
	dstPerRow := hwy.RegistersFor(rows)

	var block [hwy.Lanes]hwy.Vec
	for bi := range dstPerRow {
		for bj := range srcPerRow {
			for r := range hwy.Lanes {
				row := bi*hwy.Lanes + r
				if row < rows {
					block[r] = srcRegs[row*srcPerRow+bj]
				} else {
					block[r] = hwy.Zero()
				}
			}

			TransposeBlock(&block)

			for c := range hwy.Lanes {
				col := bj*hwy.Lanes + c
				if col >= cols {
					break
				}
				dstRegs[col*dstPerRow+bi] = block[c]
			}
		}
	}
}

// TransposeFlat writes the transpose of the flat rows x cols matrix src into
// dst, walking 16x16 blocks with nested loops.
func TransposeFlat(src []float32, rows, cols int, dst []float32) {
	for bi := 0; bi < rows; bi += hwy.Lanes {
		for bj := 0; bj < cols; bj += hwy.Lanes {
			for i := bi; i < min(bi+hwy.Lanes, rows); i++ {
				for j := bj; j < min(bj+hwy.Lanes, cols); j++ {
					dst[j*rows+i] = src[i*cols+j]
				}
			}
		}
	}
}
