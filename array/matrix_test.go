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
	"math/rand"
	"testing"

	"github.com/ajroetker/hwyarray/hwy/contrib/workerpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// naiveMatMul computes the m x n product of flat a (m x k) and b (k x n) in
// float64.
func naiveMatMul(a, b []float32, m, k, n int) []float32 {
	c := make([]float32, m*n)
	for i := range m {
		for j := range n {
			var sum float64
			for p := range k {
				sum += float64(a[i*k+p]) * float64(b[p*n+j])
			}
			c[i*n+j] = float32(sum)
		}
	}
	return c
}

var matDims = []int{1, 7, 16, 17, 33}

func TestMatrixMultiplication(t *testing.T) {
	rng := rand.New(rand.NewSource(40))
	eachBackend(t, func(t *testing.T, b Backend) {
		for _, m := range matDims {
			for _, k := range matDims {
				for _, n := range []int{1, 17, 33} {
					t.Run(fmt.Sprintf("%dx%dx%d", m, k, n), func(t *testing.T) {
						x, y := randomFlat(rng, m*k), randomFlat(rng, k*n)
						a := mustFromFlat(t, Shape{m, k}, x, b)
						bm := mustFromFlat(t, Shape{k, n}, y, b)

						c, err := a.MatrixMultiplication(bm)
						require.NoError(t, err)
						assert.Equal(t, Shape{m, n}, c.Shape())
						assert.InDeltaSlice(t, naiveMatMul(x, y, m, k, n), c.ToFlat(), 1e-3)
					})
				}
			}
		}
	})
}

func TestMatrixMultiplicationSmall(t *testing.T) {
	eachBackend(t, func(t *testing.T, b Backend) {
		a := mustFromFlat(t, Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6}, b)
		bm := mustFromFlat(t, Shape{3, 2}, []float32{7, 8, 9, 10, 11, 12}, b)
		c, err := a.MatrixMultiplication(bm)
		require.NoError(t, err)
		assert.Equal(t, []float32{58, 64, 139, 154}, c.ToFlat())
	})
}

func TestMatrixMultiplicationWithPool(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	rng := rand.New(rand.NewSource(41))
	const m, k, n = 80, 70, 65
	x, y := randomFlat(rng, m*k), randomFlat(rng, k*n)
	eachBackend(t, func(t *testing.T, b Backend) {
		a := mustFromFlat(t, Shape{m, k}, x, b)
		bm := mustFromFlat(t, Shape{k, n}, y, b)

		serial, err := a.MatrixMultiplication(bm)
		require.NoError(t, err)
		parallel, err := a.MatrixMultiplication(bm, WithPool(pool))
		require.NoError(t, err)
		assert.Equal(t, serial.ToFlat(), parallel.ToFlat())
	})
}

func TestMatrixMultiplicationKeepsReceiverBackend(t *testing.T) {
	a := mustFromFlat(t, Shape{2, 3}, seq(6), Scalar)
	bm := mustFromFlat(t, Shape{3, 2}, seq(6), Vector)
	out, err := a.MatrixMultiplication(bm, WithBackend(Vector))
	require.NoError(t, err)
	assert.Equal(t, Scalar, out.Backend())
	assert.Equal(t, []float32{10, 13, 28, 40}, out.ToFlat())
}

func TestMatrixMultiplicationErrors(t *testing.T) {
	eachBackend(t, func(t *testing.T, b Backend) {
		a, err := Zeros(Shape{2, 3}, WithBackend(b))
		require.NoError(t, err)
		bad, err := Zeros(Shape{2, 3}, WithBackend(b))
		require.NoError(t, err)

		_, err = a.MatrixMultiplication(bad)
		require.ErrorIs(t, err, ErrShapeMismatch)
		var se *ShapeMismatchError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, Shape{3, 3}, se.Expected)
		assert.Equal(t, Shape{2, 3}, se.Actual)

		v, err := Zeros(Shape{6}, WithBackend(b))
		require.NoError(t, err)
		_, err = a.MatrixMultiplication(v)
		require.ErrorIs(t, err, ErrInvalidShape)
		_, err = v.MatrixMultiplication(a)
		require.ErrorIs(t, err, ErrInvalidShape)
		_, err = v.Transpose()
		require.ErrorIs(t, err, ErrInvalidShape)
		_, err = a.VectorMultiplication(v)
		require.ErrorIs(t, err, ErrShapeMismatch)
		_, err = a.VectorMultiplication(a)
		require.ErrorIs(t, err, ErrInvalidShape)
	})
}

func TestMatrixMultiplicationEmptyInner(t *testing.T) {
	eachBackend(t, func(t *testing.T, b Backend) {
		a, err := Zeros(Shape{3, 0}, WithBackend(b))
		require.NoError(t, err)
		bm, err := Zeros(Shape{0, 2}, WithBackend(b))
		require.NoError(t, err)
		c, err := a.MatrixMultiplication(bm)
		require.NoError(t, err)
		assert.Equal(t, make([]float32, 6), c.ToFlat())
	})
}

func TestVectorMultiplication(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	eachBackend(t, func(t *testing.T, b Backend) {
		for _, k := range matDims {
			t.Run(fmt.Sprintf("k=%d", k), func(t *testing.T) {
				const m = 5
				x, y := randomFlat(rng, m*k), randomFlat(rng, k)
				a := mustFromFlat(t, Shape{m, k}, x, b)
				v := mustFromFlat(t, Shape{k}, y, b)

				got, err := a.VectorMultiplication(v)
				require.NoError(t, err)
				assert.Equal(t, Shape{m}, got.Shape())
				assert.InDeltaSlice(t, naiveMatMul(x, y, m, k, 1), got.ToFlat(), 1e-4)
			})
		}
	})
}

func TestTranspose(t *testing.T) {
	rng := rand.New(rand.NewSource(43))
	eachBackend(t, func(t *testing.T, b Backend) {
		for _, rows := range matDims {
			for _, cols := range matDims {
				x := randomFlat(rng, rows*cols)
				a := mustFromFlat(t, Shape{rows, cols}, x, b)
				tr, err := a.Transpose()
				require.NoError(t, err)
				require.Equal(t, Shape{cols, rows}, tr.Shape())

				want := make([]float32, len(x))
				for i := range rows {
					for j := range cols {
						want[j*rows+i] = x[i*cols+j]
					}
				}
				require.Equal(t, want, tr.ToFlat(), "%dx%d", rows, cols)
			}
		}
	})
}
