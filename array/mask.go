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
	"github.com/samber/lo"
)

// Mask is a boolean companion of an Array with the same shape convention.
//
// The Vector backend packs each row into hwy.RegistersFor(cols) words, bit i
// of word w holding column w*16+i. Bits past the end of a row in its last word
// are always zero once any method returns; every mutating method restores
// this before returning.
type Mask struct {
	shape       Shape
	backend     Backend
	rows        int
	cols        int
	wordsPerRow int
	words       []hwy.Mask // Vector
	bools       []bool     // Scalar
}

func newMask(shape Shape, b Backend) (*Mask, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if b != Vector && b != Scalar {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBackend, b)
	}
	return allocMask(shape, b), nil
}

// allocMask builds an all-false Mask for a shape and backend that are known to
// be valid.
func allocMask(shape Shape, b Backend) *Mask {
	m := &Mask{
		shape:       shape.Clone(),
		backend:     b,
		rows:        shape.Rows(),
		cols:        shape.Cols(),
		wordsPerRow: hwy.RegistersFor(shape.Cols()),
	}
	if b == Vector {
		m.words = make([]hwy.Mask, m.rows*m.wordsPerRow)
	} else {
		m.bools = make([]bool, m.rows*m.cols)
	}
	return m
}

// NewMask returns a new all-false Mask of the given shape.
func NewMask(shape Shape, opts ...Option) (*Mask, error) {
	o := buildOptions(opts)
	return newMask(shape, o.backend)
}

// MaskFilled returns a new Mask with every element set to value.
func MaskFilled(shape Shape, value bool, opts ...Option) (*Mask, error) {
	m, err := NewMask(shape, opts...)
	if err != nil {
		return nil, err
	}
	m.Fill(value)
	return m, nil
}

// MaskFromFlat returns a new Mask holding data in row-major order.
// len(data) must equal shape.Size().
func MaskFromFlat(shape Shape, data []bool, opts ...Option) (*Mask, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.Size() {
		return nil, fmt.Errorf("%w: got %d values for shape %v", ErrLengthMismatch, len(data), shape)
	}
	m, err := NewMask(shape, opts...)
	if err != nil {
		return nil, err
	}
	if err := m.loadFlat(data); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Mask) loadFlat(data []bool) error {
	if len(data) != m.shape.Size() {
		return fmt.Errorf("%w: got %d values for shape %v", ErrLengthMismatch, len(data), m.shape)
	}
	if m.backend == Scalar {
		copy(m.bools, data)
		return nil
	}
	packWords(m.words, data, m.rows, m.cols)
	return nil
}

// ToFlat returns the logical values in row-major order.
func (m *Mask) ToFlat() []bool {
	if m.backend == Scalar {
		return slices.Clone(m.bools)
	}
	out := make([]bool, m.rows*m.cols)
	unpackWords(out, m.words, m.rows, m.cols)
	return out
}

// packWords packs rows of cols booleans into words, one bit per lane. Bits
// past the end of each row are left zero.
func packWords(words []hwy.Mask, data []bool, rows, cols int) {
	wpr := hwy.RegistersFor(cols)
	clear(words)
	for r := range rows {
		row := data[r*cols : (r+1)*cols]
		for c, v := range row {
			if v {
				words[r*wpr+c/hwy.Lanes] |= 1 << uint(c%hwy.Lanes)
			}
		}
	}
}

// unpackWords is the inverse of packWords.
func unpackWords(data []bool, words []hwy.Mask, rows, cols int) {
	wpr := hwy.RegistersFor(cols)
	for r := range rows {
		row := data[r*cols : (r+1)*cols]
		for c := range row {
			row[c] = words[r*wpr+c/hwy.Lanes].Bit(c % hwy.Lanes)
		}
	}
}

// clearTailWords zeroes the bits past cols in the last word of every row.
func clearTailWords(words []hwy.Mask, cols int) {
	wpr := hwy.RegistersFor(cols)
	if wpr == 0 {
		return
	}
	tail := hwy.RowTailMask(cols)
	for i := wpr - 1; i < len(words); i += wpr {
		words[i] &= tail
	}
}

func (m *Mask) clearTail() {
	if m.backend == Vector {
		clearTailWords(m.words, m.cols)
	}
}

// Shape returns a copy of the shape.
func (m *Mask) Shape() Shape {
	return m.shape.Clone()
}

// Rank returns the number of axes.
func (m *Mask) Rank() int {
	return len(m.shape)
}

// Len returns the number of logical elements.
func (m *Mask) Len() int {
	return m.rows * m.cols
}

// Backend returns the storage backend.
func (m *Mask) Backend() Backend {
	return m.backend
}

// Clone returns a deep copy.
func (m *Mask) Clone() *Mask {
	c := *m
	c.shape = m.shape.Clone()
	c.words = slices.Clone(m.words)
	c.bools = slices.Clone(m.bools)
	return &c
}

// ToBackend returns a copy of m stored by backend b. It returns m itself
// when m already uses b.
func (m *Mask) ToBackend(b Backend) (*Mask, error) {
	if m.backend == b {
		return m, nil
	}
	return MaskFromFlat(m.shape, m.ToFlat(), WithBackend(b))
}

// masksFor returns the per-register words of mask in the Vector layout,
// converting a Scalar mask when necessary.
func masksFor(op string, mask *Mask) []hwy.Mask {
	if mask.backend == Vector {
		return mask.words
	}
	hwy.Logger().Debug("array: converting mask", "op", op, "from", mask.backend.String(), "to", Vector.String())
	words := make([]hwy.Mask, mask.rows*mask.wordsPerRow)
	packWords(words, mask.bools, mask.rows, mask.cols)
	return words
}

// boolsFor returns the flat values of mask in the Scalar layout, converting a
// Vector mask when necessary.
func boolsFor(op string, mask *Mask) []bool {
	if mask.backend == Scalar {
		return mask.bools
	}
	hwy.Logger().Debug("array: converting mask", "op", op, "from", mask.backend.String(), "to", Scalar.String())
	return mask.ToFlat()
}

// Get returns the value at index, which must have one entry per axis.
func (m *Mask) Get(index ...int) (bool, error) {
	row, col, err := m.shape.flatIndex(index)
	if err != nil {
		return false, err
	}
	if m.backend == Scalar {
		return m.bools[row*m.cols+col], nil
	}
	return m.words[row*m.wordsPerRow+col/hwy.Lanes].Bit(col % hwy.Lanes), nil
}

// Set stores value at index, which must have one entry per axis.
func (m *Mask) Set(value bool, index ...int) error {
	row, col, err := m.shape.flatIndex(index)
	if err != nil {
		return err
	}
	if m.backend == Scalar {
		m.bools[row*m.cols+col] = value
		return nil
	}
	w := &m.words[row*m.wordsPerRow+col/hwy.Lanes]
	*w = w.With(col%hwy.Lanes, value)
	return nil
}

// Get1 returns element i of a rank-1 Mask.
func (m *Mask) Get1(i int) (bool, error) {
	return m.Get(i)
}

// Get2 returns element (i, j) of a rank-2 Mask.
func (m *Mask) Get2(i, j int) (bool, error) {
	return m.Get(i, j)
}

// Set1 stores value at element i of a rank-1 Mask.
func (m *Mask) Set1(value bool, i int) error {
	return m.Set(value, i)
}

// Set2 stores value at element (i, j) of a rank-2 Mask.
func (m *Mask) Set2(value bool, i, j int) error {
	return m.Set(value, i, j)
}

// Fill sets every element to value.
func (m *Mask) Fill(value bool) {
	if m.backend == Scalar {
		for i := range m.bools {
			m.bools[i] = value
		}
		return
	}
	var w hwy.Mask
	if value {
		w = hwy.AllLanes
	}
	for i := range m.words {
		m.words[i] = w
	}
	m.clearTail()
}

// CountTrue returns the number of true elements.
func (m *Mask) CountTrue() int {
	if m.backend == Scalar {
		return lo.Count(m.bools, true)
	}
	return lo.SumBy(m.words, hwy.Mask.CountTrue)
}

// Any reports whether at least one element is true.
func (m *Mask) Any() bool {
	if m.backend == Scalar {
		return lo.Contains(m.bools, true)
	}
	return lo.SomeBy(m.words, hwy.Mask.AnyTrue)
}

// All reports whether every element is true. It is true for an empty Mask.
func (m *Mask) All() bool {
	if m.backend == Scalar {
		return !lo.Contains(m.bools, false)
	}
	padding := hwy.RowTailMask(m.cols).Not()
	for i, w := range m.words {
		if i%m.wordsPerRow == m.wordsPerRow-1 {
			w |= padding
		}
		if !w.AllTrue() {
			return false
		}
	}
	return true
}

// And returns the element-wise conjunction of m and other.
func (m *Mask) And(other *Mask) (*Mask, error) {
	c := m.Clone()
	if err := c.AndInPlace(other); err != nil {
		return nil, err
	}
	return c, nil
}

// AndInPlace sets m to the element-wise conjunction of m and other.
func (m *Mask) AndInPlace(other *Mask) error {
	return m.combine("and", other,
		func(a, b hwy.Mask) hwy.Mask { return a & b },
		func(a, b bool) bool { return a && b })
}

// Or returns the element-wise disjunction of m and other.
func (m *Mask) Or(other *Mask) (*Mask, error) {
	c := m.Clone()
	if err := c.OrInPlace(other); err != nil {
		return nil, err
	}
	return c, nil
}

// OrInPlace sets m to the element-wise disjunction of m and other.
func (m *Mask) OrInPlace(other *Mask) error {
	return m.combine("or", other,
		func(a, b hwy.Mask) hwy.Mask { return a | b },
		func(a, b bool) bool { return a || b })
}

func (m *Mask) combine(op string, other *Mask, word func(a, b hwy.Mask) hwy.Mask, elem func(a, b bool) bool) error {
	if !m.shape.Equal(other.shape) {
		return shapeMismatch(op, m.shape, other.shape)
	}
	if m.backend == Scalar {
		src := boolsFor(op, other)
		for i := range m.bools {
			m.bools[i] = elem(m.bools[i], src[i])
		}
		return nil
	}
	src := masksFor(op, other)
	for i := range m.words {
		m.words[i] = word(m.words[i], src[i])
	}
	m.clearTail()
	return nil
}

// Not returns the element-wise negation of m.
func (m *Mask) Not() *Mask {
	c := m.Clone()
	c.NotInPlace()
	return c
}

// NotInPlace negates every element of m.
func (m *Mask) NotInPlace() {
	if m.backend == Scalar {
		for i := range m.bools {
			m.bools[i] = !m.bools[i]
		}
		return
	}
	for i := range m.words {
		m.words[i] = m.words[i].Not()
	}
	m.clearTail()
}

// CheckInvariants verifies that the storage matches the shape and that no
// bit past the end of a row is set.
func (m *Mask) CheckInvariants() error {
	if err := m.shape.Validate(); err != nil {
		return err
	}
	if m.backend == Scalar {
		if len(m.bools) != m.shape.Size() {
			return fmt.Errorf("%w: mask holds %d values, shape %v needs %d", ErrLengthMismatch, len(m.bools), m.shape, m.shape.Size())
		}
		return nil
	}
	if want := m.rows * m.wordsPerRow; len(m.words) != want {
		return fmt.Errorf("%w: mask holds %d words, shape %v needs %d", ErrLengthMismatch, len(m.words), m.shape, want)
	}
	if m.wordsPerRow == 0 {
		return nil
	}
	padding := hwy.RowTailMask(m.cols).Not()
	for r := range m.rows {
		if w := m.words[(r+1)*m.wordsPerRow-1]; w&padding != 0 {
			return fmt.Errorf("array: mask row %d has padding bits set: %#04x", r, uint16(w&padding))
		}
	}
	return nil
}
