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

package array

import (
	"fmt"

	"github.com/ajroetker/hwyarray/hwy/contrib/matmul"
)

func checkRank(op string, a *Array, rank int) error {
	if a.Rank() != rank {
		return fmt.Errorf("%w: %s needs rank %d, got shape %v", ErrInvalidShape, op, rank, a.shape)
	}
	return nil
}

// Transpose returns the transpose of a rank-2 Array.
func (a *Array) Transpose() (*Array, error) {
	if err := checkRank("transpose", a, 2); err != nil {
		return nil, err
	}
	out, err := newArray(Shape{a.cols, a.rows}, a.backend)
	if err != nil {
		return nil, err
	}
	if a.backend == Vector {
		matmul.TransposeRegisters(a.data, a.rows, a.cols, out.data)
	} else {
		matmul.TransposeFlat(a.data, a.rows, a.cols, out.data)
	}
	return out, nil
}

// VectorMultiplication returns the rank-1 product a·vec of a rank-2 Array of
// shape [m k] and a rank-1 Array of shape [k].
func (a *Array) VectorMultiplication(vec *Array) (*Array, error) {
	const name = "vector-multiplication"
	if err := checkRank(name, a, 2); err != nil {
		return nil, err
	}
	if err := checkRank(name, vec, 1); err != nil {
		return nil, err
	}
	m, k := a.rows, a.cols
	if vec.cols != k {
		return nil, shapeMismatch(name, Shape{k}, vec.shape)
	}
	v := a.peer(name, vec).data
	out, err := newArray(Shape{m}, a.backend)
	if err != nil {
		return nil, err
	}
	if a.backend == Vector {
		matmul.MatVec(a.data, v, m, k, out.data)
	} else {
		matmul.MatVecFlat(a.data, v, m, k, out.data)
	}
	return out, nil
}

// MatrixMultiplication returns the product of a rank-2 Array of shape [m k]
// and a rank-2 Array of shape [k n], with shape [m n].
//
// The Vector backend transposes b in 16x16 register blocks and accumulates
// each output with fused multiply-adds. Given WithPool, products of at least
// matmul.MinParallelOps multiply-adds are split by output row across the
// pool's workers on either backend. The result always has a's backend;
// WithBackend is ignored.
func (a *Array) MatrixMultiplication(b *Array, opts ...Option) (*Array, error) {
	const name = "matrix-multiplication"
	if err := checkRank(name, a, 2); err != nil {
		return nil, err
	}
	if err := checkRank(name, b, 2); err != nil {
		return nil, err
	}
	m, k, n := a.rows, a.cols, b.cols
	if b.rows != k {
		return nil, shapeMismatch(name, Shape{k, n}, b.shape)
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	bs := a.peer(name, b).data
	out, err := newArray(Shape{m, n}, a.backend)
	if err != nil {
		return nil, err
	}
	if a.backend == Vector {
		matmul.ParallelMatMul(o.pool, a.data, bs, out.data, m, n, k)
	} else {
		matmul.ParallelMatMulFlat(o.pool, a.data, bs, out.data, m, n, k)
	}
	return out, nil
}
