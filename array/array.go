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
	"slices"

	"github.com/ajroetker/hwyarray/hwy"
)

// Array is a dense row-major float32 tensor.
//
// An Array owns its buffer: Clone copies it, and no two Arrays share storage.
// Methods that modify the receiver must not be passed the receiver itself as
// another operand.
type Array struct {
	shape   Shape
	backend Backend
	rows    int
	cols    int
	stride  int // buffer length of one row
	data    []float32
}

func newArray(shape Shape, b Backend) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if b != Vector && b != Scalar {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBackend, b)
	}
	return allocArray(shape, b), nil
}

// allocArray builds a zero Array for a shape and backend that are known to be
// valid.
func allocArray(shape Shape, b Backend) *Array {
	a := &Array{
		shape:   shape.Clone(),
		backend: b,
		rows:    shape.Rows(),
		cols:    shape.Cols(),
		stride:  b.stride(shape.Cols()),
	}
	a.data = make([]float32, a.rows*a.stride)
	return a
}

// Zeros returns a new Array of the given shape filled with 0.
func Zeros(shape Shape, opts ...Option) (*Array, error) {
	o := buildOptions(opts)
	return newArray(shape, o.backend)
}

// Filled returns a new Array of the given shape with every element set to
// value.
func Filled(shape Shape, value float32, opts ...Option) (*Array, error) {
	a, err := Zeros(shape, opts...)
	if err != nil {
		return nil, err
	}
	a.Fill(value)
	return a, nil
}

// FromFlat returns a new Array holding data in row-major order.
// len(data) must equal shape.Size().
func FromFlat(shape Shape, data []float32, opts ...Option) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.Size() {
		return nil, fmt.Errorf("%w: got %d elements for shape %v", ErrLengthMismatch, len(data), shape)
	}
	a, err := Zeros(shape, opts...)
	if err != nil {
		return nil, err
	}
	if err := a.loadFlat(data); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Array) loadFlat(data []float32) error {
	if len(data) != a.shape.Size() {
		return fmt.Errorf("%w: got %d elements for shape %v", ErrLengthMismatch, len(data), a.shape)
	}
	a.storeFlat(data)
	return nil
}

// storeFlat copies shape.Size() row-major elements into the row buffers.
func (a *Array) storeFlat(data []float32) {
	if a.stride == a.cols {
		copy(a.data, data)
		return
	}
	for r := range a.rows {
		copy(a.data[r*a.stride:], data[r*a.cols:(r+1)*a.cols])
	}
}

// ToFlat returns the logical elements in row-major order, without padding.
func (a *Array) ToFlat() []float32 {
	if a.stride == a.cols {
		return slices.Clone(a.data)
	}
	out := make([]float32, 0, a.rows*a.cols)
	for r := range a.rows {
		out = append(out, a.data[r*a.stride:r*a.stride+a.cols]...)
	}
	return out
}

// Shape returns a copy of the shape.
func (a *Array) Shape() Shape {
	return a.shape.Clone()
}

// Rank returns the number of axes.
func (a *Array) Rank() int {
	return len(a.shape)
}

// Len returns the number of logical elements.
func (a *Array) Len() int {
	return a.rows * a.cols
}

// Backend returns the storage backend.
func (a *Array) Backend() Backend {
	return a.backend
}

// Clone returns a deep copy.
func (a *Array) Clone() *Array {
	c := *a
	c.shape = a.shape.Clone()
	c.data = slices.Clone(a.data)
	return &c
}

// ToBackend returns a copy of a stored by backend b. It returns a itself
// when a already uses b.
func (a *Array) ToBackend(b Backend) (*Array, error) {
	if a.backend == b {
		return a, nil
	}
	return FromFlat(a.shape, a.ToFlat(), WithBackend(b))
}

// peer returns other stored like a, converting when the backends differ.
func (a *Array) peer(op string, other *Array) *Array {
	if other.backend == a.backend {
		return other
	}
	hwy.Logger().Debug("array: converting operand", "op", op, "from", other.backend.String(), "to", a.backend.String())
	c := allocArray(other.shape, a.backend)
	c.storeFlat(other.ToFlat())
	return c
}

// Get returns the element at index, which must have one entry per axis.
func (a *Array) Get(index ...int) (float32, error) {
	row, col, err := a.shape.flatIndex(index)
	if err != nil {
		return 0, err
	}
	return a.data[row*a.stride+col], nil
}

// Set stores value at index, which must have one entry per axis.
func (a *Array) Set(value float32, index ...int) error {
	row, col, err := a.shape.flatIndex(index)
	if err != nil {
		return err
	}
	a.data[row*a.stride+col] = value
	return nil
}

// Get1 returns element i of a rank-1 Array.
func (a *Array) Get1(i int) (float32, error) {
	return a.Get(i)
}

// Get2 returns element (i, j) of a rank-2 Array.
func (a *Array) Get2(i, j int) (float32, error) {
	return a.Get(i, j)
}

// Set1 stores value at element i of a rank-1 Array.
func (a *Array) Set1(value float32, i int) error {
	return a.Set(value, i)
}

// Set2 stores value at element (i, j) of a rank-2 Array.
func (a *Array) Set2(value float32, i, j int) error {
	return a.Set(value, i, j)
}

// Fill sets every element to value.
func (a *Array) Fill(value float32) {
	for i := range a.data {
		a.data[i] = value
	}
}

// Copy overwrites a with the elements of src. The shapes must match.
func (a *Array) Copy(src *Array) error {
	if !a.shape.Equal(src.shape) {
		return shapeMismatch("copy", a.shape, src.shape)
	}
	copy(a.data, a.peer("copy", src).data)
	return nil
}

// CheckInvariants verifies that the buffer matches the shape and backend.
func (a *Array) CheckInvariants() error {
	if err := a.shape.Validate(); err != nil {
		return err
	}
	if want := a.shape.Rows() * a.backend.stride(a.shape.Cols()); len(a.data) != want {
		return fmt.Errorf("%w: buffer holds %d values, shape %v needs %d", ErrLengthMismatch, len(a.data), a.shape, want)
	}
	return nil
}

func (a *Array) checkShape(op string, other *Array) error {
	if !a.shape.Equal(other.shape) {
		return shapeMismatch(op, a.shape, other.shape)
	}
	return nil
}

func (a *Array) checkMask(op string, mask *Mask) error {
	if !a.shape.Equal(mask.shape) {
		return shapeMismatch(op, a.shape, mask.shape)
	}
	return nil
}
