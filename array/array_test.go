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
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var backends = []Backend{Vector, Scalar}

// eachBackend runs fn as a subtest once per backend.
func eachBackend(t *testing.T, fn func(t *testing.T, b Backend)) {
	t.Helper()
	for _, b := range backends {
		t.Run(b.String(), func(t *testing.T) {
			fn(t, b)
		})
	}
}

// sizes crosses every register boundary of interest.
var sizes = []int{0, 1, 15, 16, 17, 32, 33}

func seq(n int) []float32 {
	xs := make([]float32, n)
	for i := range xs {
		xs[i] = float32(i)
	}
	return xs
}

func randomFlat(rng *rand.Rand, n int) []float32 {
	xs := make([]float32, n)
	for i := range xs {
		xs[i] = rng.Float32()*2 - 1
	}
	return xs
}

func randomBools(rng *rand.Rand, n int) []bool {
	bs := make([]bool, n)
	for i := range bs {
		bs[i] = rng.Intn(2) == 1
	}
	return bs
}

func mustFromFlat(t *testing.T, shape Shape, data []float32, b Backend) *Array {
	t.Helper()
	a, err := FromFlat(shape, data, WithBackend(b))
	require.NoError(t, err)
	return a
}

func mustMask(t *testing.T, shape Shape, data []bool, b Backend) *Mask {
	t.Helper()
	m, err := MaskFromFlat(shape, data, WithBackend(b))
	require.NoError(t, err)
	return m
}

func TestShape(t *testing.T) {
	s := Shape{2, 3, 4}
	assert.Equal(t, 3, s.Rank())
	assert.Equal(t, 24, s.Size())
	assert.Equal(t, 6, s.Rows())
	assert.Equal(t, 4, s.Cols())
	assert.Equal(t, "[2 3 4]", s.String())
	assert.True(t, s.Equal(Shape{2, 3, 4}))
	assert.False(t, s.Equal(Shape{2, 12}))

	c := s.Clone()
	c[0] = 9
	assert.Equal(t, 2, s[0])

	require.NoError(t, Shape{0, 5}.Validate())
	require.ErrorIs(t, Shape{}.Validate(), ErrInvalidShape)
	require.ErrorIs(t, Shape{3, -1}.Validate(), ErrInvalidShape)
	require.ErrorIs(t, Shape{math.MaxInt / 2, 4}.Validate(), ErrInvalidShape)
	require.ErrorIs(t, Shape{2, math.MaxInt}.Validate(), ErrInvalidShape)
	require.ErrorIs(t, Shape{math.MaxInt / 8, 8}.Validate(), ErrInvalidShape)
	require.NoError(t, Shape{math.MaxInt / 8}.Validate())
}

func TestFlatRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	eachBackend(t, func(t *testing.T, b Backend) {
		for _, n := range sizes {
			for _, shape := range []Shape{{n}, {3, n}, {2, 2, n}} {
				t.Run(shape.String(), func(t *testing.T) {
					data := randomFlat(rng, shape.Size())
					a := mustFromFlat(t, shape, data, b)
					assert.Equal(t, data, a.ToFlat())
					assert.Equal(t, shape, a.Shape())
					assert.Equal(t, shape.Size(), a.Len())
					assert.Equal(t, b, a.Backend())
					require.NoError(t, a.CheckInvariants())

					bools := randomBools(rng, shape.Size())
					m := mustMask(t, shape, bools, b)
					assert.Equal(t, bools, m.ToFlat())
					require.NoError(t, m.CheckInvariants())
				})
			}
		}
	})
}

func TestZerosSetGet(t *testing.T) {
	eachBackend(t, func(t *testing.T, b Backend) {
		a, err := Zeros(Shape{3, 4}, WithBackend(b))
		require.NoError(t, err)
		for i := range 3 {
			for j := range 4 {
				require.NoError(t, a.Set2(float32(i*4+j), i, j))
			}
		}
		v, err := a.Get2(2, 3)
		require.NoError(t, err)
		assert.Equal(t, float32(11), v)
		assert.Equal(t, seq(12), a.ToFlat())

		v, err = a.Get(1, 2)
		require.NoError(t, err)
		assert.Equal(t, float32(6), v)
	})
}

func TestIndexOutOfRange(t *testing.T) {
	eachBackend(t, func(t *testing.T, b Backend) {
		a, err := Zeros(Shape{3, 4}, WithBackend(b))
		require.NoError(t, err)

		for _, index := range [][]int{{3, 0}, {0, 4}, {-1, 0}, {1}, {0, 0, 0}} {
			_, err := a.Get(index...)
			require.ErrorIs(t, err, ErrIndexOutOfRange, "index %v", index)
			require.ErrorIs(t, a.Set(1, index...), ErrIndexOutOfRange)

			var ie *IndexOutOfRangeError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, index, ie.Index)
			assert.Equal(t, Shape{3, 4}, ie.Bound)
		}

		v, err := Zeros(Shape{5}, WithBackend(b))
		require.NoError(t, err)
		_, err = v.Get1(5)
		require.ErrorIs(t, err, ErrIndexOutOfRange)
		require.NoError(t, v.Set1(2, 4))
		got, err := v.Get1(4)
		require.NoError(t, err)
		assert.Equal(t, float32(2), got)
	})
}

func TestFactoryErrors(t *testing.T) {
	_, err := Zeros(Shape{})
	require.ErrorIs(t, err, ErrInvalidShape)
	_, err = Zeros(Shape{2, -3})
	require.ErrorIs(t, err, ErrInvalidShape)
	_, err = Zeros(Shape{2}, WithBackend(Backend(7)))
	require.ErrorIs(t, err, ErrInvalidBackend)
	_, err = FromFlat(Shape{2, 3}, seq(5))
	require.ErrorIs(t, err, ErrLengthMismatch)
	_, err = MaskFromFlat(Shape{2}, []bool{true})
	require.ErrorIs(t, err, ErrLengthMismatch)
	_, err = NewMask(Shape{})
	require.ErrorIs(t, err, ErrInvalidShape)

	// The length is checked before any storage is allocated.
	_, err = FromFlat(Shape{math.MaxInt / 8}, nil)
	require.ErrorIs(t, err, ErrLengthMismatch)
	_, err = MaskFromFlat(Shape{math.MaxInt / 8}, nil)
	require.ErrorIs(t, err, ErrLengthMismatch)
	_, err = FromFlat(Shape{math.MaxInt / 2, 4}, seq(1))
	require.ErrorIs(t, err, ErrInvalidShape)
	_, err = MaskFromFlat(Shape{math.MaxInt / 2, 4}, []bool{true})
	require.ErrorIs(t, err, ErrInvalidShape)
}

func TestFilledFillCopyClone(t *testing.T) {
	eachBackend(t, func(t *testing.T, b Backend) {
		a, err := Filled(Shape{2, 17}, 1.5, WithBackend(b))
		require.NoError(t, err)
		for _, v := range a.ToFlat() {
			require.Equal(t, float32(1.5), v)
		}

		c := a.Clone()
		c.Fill(-2)
		assert.Equal(t, float32(1.5), a.ToFlat()[0], "Clone must not share storage")

		require.NoError(t, a.Copy(c))
		assert.Equal(t, c.ToFlat(), a.ToFlat())

		other, err := Zeros(Shape{17, 2}, WithBackend(b))
		require.NoError(t, err)
		require.ErrorIs(t, a.Copy(other), ErrShapeMismatch)
	})
}

func TestToBackend(t *testing.T) {
	data := seq(40)
	a := mustFromFlat(t, Shape{2, 20}, data, Vector)

	same, err := a.ToBackend(Vector)
	require.NoError(t, err)
	assert.Same(t, a, same)

	s, err := a.ToBackend(Scalar)
	require.NoError(t, err)
	assert.Equal(t, Scalar, s.Backend())
	assert.Equal(t, data, s.ToFlat())

	back, err := s.ToBackend(Vector)
	require.NoError(t, err)
	assert.Equal(t, data, back.ToFlat())
}

func TestDefaultBackend(t *testing.T) {
	orig := DefaultBackend()
	t.Cleanup(func() { SetDefaultBackend(orig) })

	for _, b := range backends {
		SetDefaultBackend(b)
		a, err := Zeros(Shape{4})
		require.NoError(t, err)
		assert.Equal(t, b, a.Backend())
		m, err := NewMask(Shape{4})
		require.NoError(t, err)
		assert.Equal(t, b, m.Backend())
	}
}

func TestBackendString(t *testing.T) {
	assert.Equal(t, "vector", Vector.String())
	assert.Equal(t, "scalar", Scalar.String())
	assert.Equal(t, "Backend(9)", Backend(9).String())
	assert.Equal(t, 16, Vector.Lanes())
	assert.Equal(t, 1, Scalar.Lanes())
}

func TestErrorMessages(t *testing.T) {
	err := shapeMismatch("add", Shape{2, 3}, Shape{3, 2})
	assert.Equal(t, "add: shape mismatch: expected [2 3], got [3 2]", err.Error())

	err = &IndexOutOfRangeError{Index: []int{4}, Bound: Shape{3}}
	assert.Equal(t, "index [4] out of range for shape [3]", err.Error())
	assert.Equal(t, fmt.Sprint(err), err.Error())
}
