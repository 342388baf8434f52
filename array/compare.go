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

import "github.com/ajroetker/hwyarray/hwy"

// CompareOp selects an element-wise comparison.
type CompareOp = hwy.CompareOp

// Comparisons. NaN compares unequal to everything, itself included.
const (
	CmpEqual        = hwy.CmpEqual
	CmpNotEqual     = hwy.CmpNotEqual
	CmpGreater      = hwy.CmpGreater
	CmpGreaterEqual = hwy.CmpGreaterEqual
	CmpLess         = hwy.CmpLess
	CmpLessEqual    = hwy.CmpLessEqual
)

// Compare returns a Mask, with a's backend, that is true where op(a, other)
// holds.
func (a *Array) Compare(op CompareOp, other *Array) (*Mask, error) {
	m := allocMask(a.shape, a.backend)
	if err := a.CompareInto(op, other, m); err != nil {
		return nil, err
	}
	return m, nil
}

// CompareScalar returns a Mask, with a's backend, that is true where op(a, s)
// holds.
func (a *Array) CompareScalar(op CompareOp, s float32) *Mask {
	m := allocMask(a.shape, a.backend)
	a.compareInto(m,
		func(words []hwy.Mask) { hwy.CompareScalarRegisters(op, a.data, s, words) },
		func(i int) bool { return op.Scalar(a.data[i], s) })
	return m
}

// CompareInto overwrites dst with op(a, other). dst must have a's shape and
// may use either backend.
func (a *Array) CompareInto(op CompareOp, other *Array, dst *Mask) error {
	name := op.String()
	if err := a.checkShape(name, other); err != nil {
		return err
	}
	if err := a.checkMask(name, dst); err != nil {
		return err
	}
	b := a.peer(name, other).data
	a.compareInto(dst,
		func(words []hwy.Mask) { hwy.CompareRegisters(op, a.data, b, words) },
		func(i int) bool { return op.Scalar(a.data[i], b[i]) })
	return nil
}

// CompareScalarInto overwrites dst with op(a, s). dst must have a's shape and
// may use either backend.
func (a *Array) CompareScalarInto(op CompareOp, s float32, dst *Mask) error {
	if err := a.checkMask(op.String()+"-scalar", dst); err != nil {
		return err
	}
	a.compareInto(dst,
		func(words []hwy.Mask) { hwy.CompareScalarRegisters(op, a.data, s, words) },
		func(i int) bool { return op.Scalar(a.data[i], s) })
	return nil
}

// compareInto fills dst, running vector over dst's words when both sides use
// the Vector backend and elem per buffer index of a otherwise.
func (a *Array) compareInto(dst *Mask, vector func(words []hwy.Mask), elem func(i int) bool) {
	if a.backend == Vector && dst.backend == Vector {
		vector(dst.words)
		dst.clearTail()
		return
	}
	out := dst.bools
	if dst.backend == Vector {
		out = make([]bool, a.rows*a.cols)
	}
	for r := range a.rows {
		for c := range a.cols {
			out[r*a.cols+c] = elem(r*a.stride + c)
		}
	}
	if dst.backend == Vector {
		packWords(dst.words, out, dst.rows, dst.cols)
	}
}

// Equal returns a Mask that is true where a == other.
func (a *Array) Equal(other *Array) (*Mask, error) { return a.Compare(CmpEqual, other) }

// NotEqual returns a Mask that is true where a != other.
func (a *Array) NotEqual(other *Array) (*Mask, error) { return a.Compare(CmpNotEqual, other) }

// Greater returns a Mask that is true where a > other.
func (a *Array) Greater(other *Array) (*Mask, error) { return a.Compare(CmpGreater, other) }

// GreaterEqual returns a Mask that is true where a >= other.
func (a *Array) GreaterEqual(other *Array) (*Mask, error) {
	return a.Compare(CmpGreaterEqual, other)
}

// Less returns a Mask that is true where a < other.
func (a *Array) Less(other *Array) (*Mask, error) { return a.Compare(CmpLess, other) }

// LessEqual returns a Mask that is true where a <= other.
func (a *Array) LessEqual(other *Array) (*Mask, error) { return a.Compare(CmpLessEqual, other) }

// EqualScalar returns a Mask that is true where a == s.
func (a *Array) EqualScalar(s float32) *Mask { return a.CompareScalar(CmpEqual, s) }

// NotEqualScalar returns a Mask that is true where a != s.
func (a *Array) NotEqualScalar(s float32) *Mask { return a.CompareScalar(CmpNotEqual, s) }

// GreaterScalar returns a Mask that is true where a > s.
func (a *Array) GreaterScalar(s float32) *Mask { return a.CompareScalar(CmpGreater, s) }

// GreaterEqualScalar returns a Mask that is true where a >= s.
func (a *Array) GreaterEqualScalar(s float32) *Mask { return a.CompareScalar(CmpGreaterEqual, s) }

// LessScalar returns a Mask that is true where a < s.
func (a *Array) LessScalar(s float32) *Mask { return a.CompareScalar(CmpLess, s) }

// LessEqualScalar returns a Mask that is true where a <= s.
func (a *Array) LessEqualScalar(s float32) *Mask { return a.CompareScalar(CmpLessEqual, s) }
