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
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrShapeMismatch   = errors.New("shape mismatch")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidShape    = errors.New("invalid shape")
	ErrLengthMismatch  = errors.New("data length does not match shape")
	ErrInvalidBackend  = errors.New("invalid backend")
)

// ShapeMismatchError reports operands whose shapes disagree.
type ShapeMismatchError struct {
	Op       string // Operation that rejected the operands
	Expected Shape  // Shape required by the receiver
	Actual   Shape  // Shape that was supplied
}

// Error implements the error interface.
func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%s: shape mismatch: expected %v, got %v", e.Op, e.Expected, e.Actual)
}

// Is reports whether target is ErrShapeMismatch.
func (e *ShapeMismatchError) Is(target error) bool {
	return target == ErrShapeMismatch
}

// IndexOutOfRangeError reports a multi-index outside the shape.
type IndexOutOfRangeError struct {
	Index []int // Index that was supplied
	Bound Shape // Shape it was checked against
}

// Error implements the error interface.
func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %v out of range for shape %v", e.Index, e.Bound)
}

// Is reports whether target is ErrIndexOutOfRange.
func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

func shapeMismatch(op string, expected, actual Shape) error {
	return &ShapeMismatchError{Op: op, Expected: expected.Clone(), Actual: actual.Clone()}
}
