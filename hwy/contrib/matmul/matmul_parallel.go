// Copyright 2024 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package matmul

import (
	"github.com/ajroetker/hwyarray/hwy"
	"github.com/ajroetker/hwyarray/hwy/contrib/workerpool"
)

// MinParallelOps is the minimum number of multiply-adds (m*n*k) before the
// row loop is split across workers.
const MinParallelOps = 64 * 64 * 64

// ParallelMatMul computes C = A * B for register-packed matrices, splitting the
// rows of A into contiguous strips across the pool. Every output row depends
// only on its own row of A, so the result is identical to MatMul.
//
// A nil pool, or a product below MinParallelOps, runs MatMul.
func ParallelMatMul(pool *workerpool.Pool, a, b, c []float32, m, n, k int) {
	if pool == nil || m*n*k < MinParallelOps {
		MatMul(a, b, c, m, n, k)
		return
	}

	kStride := hwy.AlignedSize(k)
	nStride := hwy.AlignedSize(n)
	bT := make([]float32, n*kStride)
	TransposeRegisters(b, k, n, bT)

	pool.ParallelFor(m, func(start, end int) {
		aStrip := a[start*kStride : end*kStride]
		cStrip := c[start*nStride : end*nStride]
		MatMulRegisters(aStrip, bT, cStrip, end-start, n, k)
	})
}

// ParallelMatMulFlat is ParallelMatMul for flat row-major matrices: it splits
// the rows of A across the pool and matches MatMulFlat exactly.
//
// A nil pool, or a product below MinParallelOps, runs MatMulFlat.
func ParallelMatMulFlat(pool *workerpool.Pool, a, b, c []float32, m, n, k int) {
	if pool == nil || m*n*k < MinParallelOps {
		MatMulFlat(a, b, c, m, n, k)
		return
	}

	bT := make([]float32, n*k)
	TransposeFlat(b, k, n, bT)

	pool.ParallelFor(m, func(start, end int) {
		matMulFlatTransposed(a[start*k:end*k], bT, c[start*n:end*n], end-start, n, k)
	})
}
