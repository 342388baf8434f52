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

package hwy

import (
	"fmt"
	"math"
	"unsafe"
)

// BinaryOp selects a lane-wise binary operation.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMax
	OpMin
)

// String returns the operation name.
func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	case OpMax:
		return "max"
	case OpMin:
		return "min"
	default:
		return fmt.Sprintf("BinaryOp(%d)", int(op))
	}
}

// Apply applies the operation to two registers.
func (op BinaryOp) Apply(a, b Vec) Vec {
	switch op {
	case OpAdd:
		return Add(a, b)
	case OpSub:
		return Sub(a, b)
	case OpMul:
		return Mul(a, b)
	case OpDiv:
		return Div(a, b)
	case OpMax:
		return Max(a, b)
	case OpMin:
		return Min(a, b)
	default:
		panic("hwy: unknown BinaryOp " + op.String())
	}
}

// Scalar applies the operation to one lane, with the same NaN and signed
// zero behavior as Apply.
func (op BinaryOp) Scalar(a, b float32) float32 {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	case OpMax:
		if a > b {
			return a
		}
		return b
	case OpMin:
		if a < b {
			return a
		}
		return b
	default:
		panic("hwy: unknown BinaryOp " + op.String())
	}
}

// UnaryOp selects a lane-wise unary operation.
type UnaryOp int

const (
	OpSqrt UnaryOp = iota
	OpSquare
	OpAbs
)

// String returns the operation name.
func (op UnaryOp) String() string {
	switch op {
	case OpSqrt:
		return "sqrt"
	case OpSquare:
		return "square"
	case OpAbs:
		return "abs"
	default:
		return fmt.Sprintf("UnaryOp(%d)", int(op))
	}
}

// Apply applies the operation to one register.
func (op UnaryOp) Apply(v Vec) Vec {
	switch op {
	case OpSqrt:
		return Sqrt(v)
	case OpSquare:
		return Mul(v, v)
	case OpAbs:
		return Abs(v)
	default:
		panic("hwy: unknown UnaryOp " + op.String())
	}
}

// Scalar applies the operation to one lane, bit-identical to Apply.
func (op UnaryOp) Scalar(x float32) float32 {
	switch op {
	case OpSqrt:
		return float32(math.Sqrt(float64(x)))
	case OpSquare:
		return x * x
	case OpAbs:
		return math.Float32frombits(math.Float32bits(x) &^ signBit)
	default:
		panic("hwy: unknown UnaryOp " + op.String())
	}
}

// CompareOp selects a lane-wise comparison.
type CompareOp int

const (
	CmpEqual CompareOp = iota
	CmpNotEqual
	CmpGreater
	CmpGreaterEqual
	CmpLess
	CmpLessEqual
)

// String returns the comparison name.
func (op CompareOp) String() string {
	switch op {
	case CmpEqual:
		return "equal"
	case CmpNotEqual:
		return "not-equal"
	case CmpGreater:
		return "greater"
	case CmpGreaterEqual:
		return "greater-equal"
	case CmpLess:
		return "less"
	case CmpLessEqual:
		return "less-equal"
	default:
		return fmt.Sprintf("CompareOp(%d)", int(op))
	}
}

// Apply compares two registers.
func (op CompareOp) Apply(a, b Vec) Mask {
	switch op {
	case CmpEqual:
		return Equal(a, b)
	case CmpNotEqual:
		return NotEqual(a, b)
	case CmpGreater:
		return Greater(a, b)
	case CmpGreaterEqual:
		return GreaterEqual(a, b)
	case CmpLess:
		return Less(a, b)
	case CmpLessEqual:
		return LessEqual(a, b)
	default:
		panic("hwy: unknown CompareOp " + op.String())
	}
}

// Scalar compares one lane.
func (op CompareOp) Scalar(a, b float32) bool {
	switch op {
	case CmpEqual:
		return a == b
	case CmpNotEqual:
		return a != b
	case CmpGreater:
		return a > b
	case CmpGreaterEqual:
		return a >= b
	case CmpLess:
		return a < b
	case CmpLessEqual:
		return a <= b
	default:
		panic("hwy: unknown CompareOp " + op.String())
	}
}

// Register kernels over register-packed buffers. Every buffer length must be
// a multiple of Lanes and all buffers passed to one call must hold the same
// number of registers; masks hold one entry per register.
//
// These are variables so dispatch can install hardware implementations at
// init; the defaults are the portable base* functions below.
var (
	// BinaryRegisters computes dst = op(dst, src).
	BinaryRegisters func(op BinaryOp, dst, src []float32) = baseBinaryRegisters

	// BinaryRegistersMasked computes dst = op(dst, src) on active lanes only.
	BinaryRegistersMasked func(op BinaryOp, dst, src []float32, masks []Mask) = baseBinaryRegistersMasked

	// BinaryScalarRegisters computes dst = op(dst, s).
	BinaryScalarRegisters func(op BinaryOp, dst []float32, s float32) = baseBinaryScalarRegisters

	// BinaryScalarRegistersMasked computes dst = op(dst, s) on active lanes only.
	BinaryScalarRegistersMasked func(op BinaryOp, dst []float32, s float32, masks []Mask) = baseBinaryScalarRegistersMasked

	// MulAddRegisters computes dst = a*b + dst.
	MulAddRegisters func(dst, a, b []float32) = baseMulAddRegisters

	// MulAddRegistersMasked computes dst = a*b + dst on active lanes only.
	MulAddRegistersMasked func(dst, a, b []float32, masks []Mask) = baseMulAddRegistersMasked

	// MulAddScalarRegisters computes dst = a*s + dst.
	MulAddScalarRegisters func(dst, a []float32, s float32) = baseMulAddScalarRegisters

	// MulAddScalarRegistersMasked computes dst = a*s + dst on active lanes only.
	MulAddScalarRegistersMasked func(dst, a []float32, s float32, masks []Mask) = baseMulAddScalarRegistersMasked

	// UnaryRegisters computes dst = op(dst).
	UnaryRegisters func(op UnaryOp, dst []float32) = baseUnaryRegisters

	// UnaryRegistersMasked computes dst = op(dst) on active lanes only.
	UnaryRegistersMasked func(op UnaryOp, dst []float32, masks []Mask) = baseUnaryRegistersMasked

	// CompareRegisters writes op(a, b) per register into out.
	CompareRegisters func(op CompareOp, a, b []float32, out []Mask) = baseCompareRegisters

	// CompareScalarRegisters writes op(a, s) per register into out.
	CompareScalarRegisters func(op CompareOp, a []float32, s float32, out []Mask) = baseCompareScalarRegisters

	// BlendRegisters copies src into dst on active lanes.
	BlendRegisters func(dst, src []float32, masks []Mask) = baseBlendRegisters

	// Blend2Registers sets dst to onTrue on active lanes and onFalse elsewhere.
	Blend2Registers func(dst, onFalse, onTrue []float32, masks []Mask) = baseBlend2Registers
)

// AsRegisters views a register-packed buffer as a slice of Vec without
// copying. len(buf) must be a multiple of Lanes.
func AsRegisters(buf []float32) []Vec {
	if len(buf) == 0 {
		return nil
	}
	if len(buf)%Lanes != 0 {
		panic(fmt.Sprintf("hwy: buffer length %d is not a multiple of %d", len(buf), Lanes))
	}
	return unsafe.Slice((*Vec)(unsafe.Pointer(&buf[0])), len(buf)/Lanes)
}

func baseBinaryRegisters(op BinaryOp, dst, src []float32) {
	d, s := AsRegisters(dst), AsRegisters(src)
	for i := range d {
		d[i] = op.Apply(d[i], s[i])
	}
}

func baseBinaryRegistersMasked(op BinaryOp, dst, src []float32, masks []Mask) {
	d, s := AsRegisters(dst), AsRegisters(src)
	for i := range d {
		d[i] = IfThenElse(masks[i], op.Apply(d[i], s[i]), d[i])
	}
}

func baseBinaryScalarRegisters(op BinaryOp, dst []float32, s float32) {
	sv := Set(s)
	d := AsRegisters(dst)
	for i := range d {
		d[i] = op.Apply(d[i], sv)
	}
}

func baseBinaryScalarRegistersMasked(op BinaryOp, dst []float32, s float32, masks []Mask) {
	sv := Set(s)
	d := AsRegisters(dst)
	for i := range d {
		d[i] = IfThenElse(masks[i], op.Apply(d[i], sv), d[i])
	}
}

func baseMulAddRegisters(dst, a, b []float32) {
	d, av, bv := AsRegisters(dst), AsRegisters(a), AsRegisters(b)
	for i := range d {
		d[i] = MulAdd(av[i], bv[i], d[i])
	}
}

func baseMulAddRegistersMasked(dst, a, b []float32, masks []Mask) {
	d, av, bv := AsRegisters(dst), AsRegisters(a), AsRegisters(b)
	for i := range d {
		d[i] = IfThenElse(masks[i], MulAdd(av[i], bv[i], d[i]), d[i])
	}
}

func baseMulAddScalarRegisters(dst, a []float32, s float32) {
	sv := Set(s)
	d, av := AsRegisters(dst), AsRegisters(a)
	for i := range d {
		d[i] = MulAdd(av[i], sv, d[i])
	}
}

func baseMulAddScalarRegistersMasked(dst, a []float32, s float32, masks []Mask) {
	sv := Set(s)
	d, av := AsRegisters(dst), AsRegisters(a)
	for i := range d {
		d[i] = IfThenElse(masks[i], MulAdd(av[i], sv, d[i]), d[i])
	}
}

func baseUnaryRegisters(op UnaryOp, dst []float32) {
	d := AsRegisters(dst)
	for i := range d {
		d[i] = op.Apply(d[i])
	}
}

func baseUnaryRegistersMasked(op UnaryOp, dst []float32, masks []Mask) {
	d := AsRegisters(dst)
	for i := range d {
		d[i] = IfThenElse(masks[i], op.Apply(d[i]), d[i])
	}
}

func baseCompareRegisters(op CompareOp, a, b []float32, out []Mask) {
	av, bv := AsRegisters(a), AsRegisters(b)
	for i := range av {
		out[i] = op.Apply(av[i], bv[i])
	}
}

func baseCompareScalarRegisters(op CompareOp, a []float32, s float32, out []Mask) {
	sv := Set(s)
	av := AsRegisters(a)
	for i := range av {
		out[i] = op.Apply(av[i], sv)
	}
}

func baseBlendRegisters(dst, src []float32, masks []Mask) {
	d, s := AsRegisters(dst), AsRegisters(src)
	for i := range d {
		d[i] = IfThenElse(masks[i], s[i], d[i])
	}
}

func baseBlend2Registers(dst, onFalse, onTrue []float32, masks []Mask) {
	d, f, t := AsRegisters(dst), AsRegisters(onFalse), AsRegisters(onTrue)
	for i := range d {
		d[i] = IfThenElse(masks[i], t[i], f[i])
	}
}
