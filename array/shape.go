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
	"slices"
	"strconv"
	"strings"

	"github.com/ajroetker/hwyarray/hwy"
	"github.com/samber/lo"
)

// maxElements bounds the padded element count of a shape so that buffer
// lengths and their byte sizes fit in an int.
const maxElements = math.MaxInt / 4

// Shape is the ordered list of axis sizes of an Array or Mask. Its length is
// the rank, fixed when the value is created.
type Shape []int

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return len(s)
}

// Size returns the number of logical elements.
func (s Shape) Size() int {
	return lo.Reduce(s, func(acc, n, _ int) int { return acc * n }, 1)
}

// Rows returns the number of rows: the product of every axis but the last.
func (s Shape) Rows() int {
	if len(s) == 0 {
		return 0
	}
	return s[:len(s)-1].Size()
}

// Cols returns the length of the last axis.
func (s Shape) Cols() int {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}

// Equal reports whether s and o have the same rank and axis sizes.
func (s Shape) Equal(o Shape) bool {
	return slices.Equal(s, o)
}

// Clone returns a copy of s.
func (s Shape) Clone() Shape {
	return slices.Clone(s)
}

// String formats s as [d0 d1 ...].
func (s Shape) String() string {
	return "[" + strings.Join(lo.Map(s, func(n, _ int) string { return strconv.Itoa(n) }), " ") + "]"
}

// Validate checks that s has at least one axis, no negative sizes, and an
// element count (with the last axis padded to whole registers) that fits in
// an int. Zero-length axes are allowed.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: rank must be at least 1", ErrInvalidShape)
	}
	if !lo.EveryBy(s, func(n int) bool { return n >= 0 }) {
		return fmt.Errorf("%w: negative axis in %v", ErrInvalidShape, s)
	}
	acc := 1
	for axis, n := range s {
		if axis == len(s)-1 && n <= maxElements {
			n = hwy.AlignedSize(n)
		}
		if n > 0 && acc > maxElements/n {
			return fmt.Errorf("%w: %v has too many elements", ErrInvalidShape, s)
		}
		acc *= n
	}
	return nil
}

// flatIndex converts a multi-index to (row, col), checking every axis.
func (s Shape) flatIndex(index []int) (row, col int, err error) {
	if len(index) != len(s) {
		return 0, 0, &IndexOutOfRangeError{Index: slices.Clone(index), Bound: s.Clone()}
	}
	for axis, i := range index {
		if i < 0 || i >= s[axis] {
			return 0, 0, &IndexOutOfRangeError{Index: slices.Clone(index), Bound: s.Clone()}
		}
	}
	for axis := 0; axis < len(s)-1; axis++ {
		row = row*s[axis] + index[axis]
	}
	return row, index[len(index)-1], nil
}
