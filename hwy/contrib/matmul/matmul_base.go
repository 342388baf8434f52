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

import (
	"github.com/ajroetker/hwyarray/hwy"
	"github.com/ajroetker/hwyarray/hwy/contrib/dot"
)

// MatMulRegisters computes C = A * B from register-packed A (m x k), the
// register-packed transpose of B (n x k) and writes register-packed C (m x n).
// Padding lanes of C are set to zero.
var MatMulRegisters func(a, bT, c []float32, m, n, k int) = baseMatMulRegisters

// MatMul computes C = A * B for register-packed matrices, transposing B into
// scratch space first.
//
//   - A is M x K
//   - B is K x N
//   - C is M x N
func MatMul(a, b, c []float32, m, n, k int) {
	bT := make([]float32, n*hwy.AlignedSize(k))
	TransposeRegisters(b, k, n, bT)
	MatMulRegisters(a, bT, c, m, n, k)
}

// MatMulFlat computes C = A * B for flat row-major matrices.
func MatMulFlat(a, b, c []float32, m, n, k int) {
	bT := make([]float32, n*k)
	TransposeFlat(b, k, n, bT)
	matMulFlatTransposed(a, bT, c, m, n, k)
}

// matMulFlatTransposed computes C = A * B given B already transposed to n x k.
func matMulFlatTransposed(a, bT, c []float32, m, n, k int) {
	for i := range m {
		aRow := a[i*k : (i+1)*k]
		for j := range n {
			c[i*n+j] = dot.DotFlat(aRow, bT[j*k:(j+1)*k])
		}
	}
}

// MatVec computes out = M * v for a register-packed m x k matrix and a
// register-packed vector of k elements. len(out) must be m.
func MatVec(matrix, vec []float32, m, k int, out []float32) {
	dot.DotRows(matrix, vec, k, out[:m])
}

// MatVecFlat computes out = M * v for a flat m x k matrix.
func MatVecFlat(matrix, vec []float32, m, k int, out []float32) {
	rows := make([][]float32, m)
	vecs := make([][]float32, m)
	for i := range m {
		rows[i] = matrix[i*k : (i+1)*k]
		vecs[i] = vec[:k]
	}
	copy(out[:m], dot.DotBatch(rows, vecs))
}

func baseMatMulRegisters(a, bT, c []float32, m, n, k int) {
	aRegs := hwy.AsRegisters(a)
	bRegs := hwy.AsRegisters(bT)
	cRegs := hwy.AsRegisters(c)
	kRegs := hwy.RegistersFor(k)
	nRegs := hwy.RegistersFor(n)
	tail := hwy.RowTailMask(k)

	for i := range m {
		aRow := aRegs[i*kRegs : (i+1)*kRegs]
		for jb := range nRegs {
			var accs [hwy.Lanes]hwy.Vec
			cols := min(hwy.Lanes, n-jb*hwy.Lanes)
			for kr, av := range aRow {
				if kr == kRegs-1 {
					av = hwy.IfThenElse(tail, av, hwy.Zero())
				}
				for c := range cols {
					j := jb*hwy.Lanes + c
					accs[c] = hwy.MulAdd(av, bRegs[j*kRegs+kr], accs[c])
				}
			}

			var out hwy.Vec
			for c := range cols {
				out[c] = hwy.ReduceSum(accs[c])
			}
			cRegs[i*nRegs+jb] = out
		}
	}
}
