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

//go:build amd64 && goexperiment.simd

package hwy

import (
	"simd/archsimd"
)

// This file provides the AVX-512 register kernels. One Vec maps to exactly
// one archsimd.Float32x16 and one Mask to one Mask32x16, so every kernel is a
// straight loop of load, operate, store.
//
// Note: Merge semantics - a.Merge(b, mask) returns a where mask is TRUE and b
// where it is FALSE.

func installAVX512Kernels() {
	BinaryRegisters = binaryRegistersAVX512
	BinaryRegistersMasked = binaryRegistersMaskedAVX512
	BinaryScalarRegisters = binaryScalarRegistersAVX512
	BinaryScalarRegistersMasked = binaryScalarRegistersMaskedAVX512
	MulAddRegisters = mulAddRegistersAVX512
	MulAddRegistersMasked = mulAddRegistersMaskedAVX512
	MulAddScalarRegisters = mulAddScalarRegistersAVX512
	MulAddScalarRegistersMasked = mulAddScalarRegistersMaskedAVX512
	UnaryRegisters = unaryRegistersAVX512
	UnaryRegistersMasked = unaryRegistersMaskedAVX512
	CompareRegisters = compareRegistersAVX512
	CompareScalarRegisters = compareScalarRegistersAVX512
	BlendRegisters = blendRegistersAVX512
	Blend2Registers = blend2RegistersAVX512
}

// ToMask32x16 converts a lane mask to the archsimd mask type.
func ToMask32x16(m Mask) archsimd.Mask32x16 {
	return archsimd.Mask32x16FromBits(uint16(m))
}

// FromMask32x16 converts an archsimd mask to a lane mask.
func FromMask32x16(m archsimd.Mask32x16) Mask {
	return Mask(m.ToBits())
}

// LoadVec_AVX512 loads a Vec into a Float32x16.
func LoadVec_AVX512(v *Vec) archsimd.Float32x16 {
	return archsimd.LoadFloat32x16Slice(v[:])
}

// StoreVec_AVX512 stores a Float32x16 into a Vec.
func StoreVec_AVX512(x archsimd.Float32x16, v *Vec) {
	x.StoreSlice(v[:])
}

// BinaryOp_AVX512_F32x16 applies a binary operation to one register.
func BinaryOp_AVX512_F32x16(op BinaryOp, a, b archsimd.Float32x16) archsimd.Float32x16 {
	switch op {
	case OpAdd:
		return a.Add(b)
	case OpSub:
		return a.Sub(b)
	case OpMul:
		return a.Mul(b)
	case OpDiv:
		return a.Div(b)
	case OpMax:
		return a.Max(b)
	case OpMin:
		return a.Min(b)
	default:
		panic("hwy: unknown BinaryOp " + op.String())
	}
}

// UnaryOp_AVX512_F32x16 applies a unary operation to one register.
func UnaryOp_AVX512_F32x16(op UnaryOp, v archsimd.Float32x16) archsimd.Float32x16 {
	switch op {
	case OpSqrt:
		return v.Sqrt()
	case OpSquare:
		return v.Mul(v)
	case OpAbs:
		absMask := archsimd.BroadcastInt32x16(0x7FFFFFFF)
		return v.AsInt32x16().And(absMask).AsFloat32x16()
	default:
		panic("hwy: unknown UnaryOp " + op.String())
	}
}

// CompareOp_AVX512_F32x16 compares two registers.
func CompareOp_AVX512_F32x16(op CompareOp, a, b archsimd.Float32x16) archsimd.Mask32x16 {
	switch op {
	case CmpEqual:
		return a.Equal(b)
	case CmpNotEqual:
		return a.NotEqual(b)
	case CmpGreater:
		return a.Greater(b)
	case CmpGreaterEqual:
		return a.GreaterEqual(b)
	case CmpLess:
		return a.Less(b)
	case CmpLessEqual:
		return a.LessEqual(b)
	default:
		panic("hwy: unknown CompareOp " + op.String())
	}
}

func binaryRegistersAVX512(op BinaryOp, dst, src []float32) {
	d, s := AsRegisters(dst), AsRegisters(src)
	for i := range d {
		a := LoadVec_AVX512(&d[i])
		b := LoadVec_AVX512(&s[i])
		StoreVec_AVX512(BinaryOp_AVX512_F32x16(op, a, b), &d[i])
	}
}

func binaryRegistersMaskedAVX512(op BinaryOp, dst, src []float32, masks []Mask) {
	d, s := AsRegisters(dst), AsRegisters(src)
	for i := range d {
		a := LoadVec_AVX512(&d[i])
		b := LoadVec_AVX512(&s[i])
		r := BinaryOp_AVX512_F32x16(op, a, b)
		StoreVec_AVX512(r.Merge(a, ToMask32x16(masks[i])), &d[i])
	}
}

func binaryScalarRegistersAVX512(op BinaryOp, dst []float32, s float32) {
	sv := archsimd.BroadcastFloat32x16(s)
	d := AsRegisters(dst)
	for i := range d {
		a := LoadVec_AVX512(&d[i])
		StoreVec_AVX512(BinaryOp_AVX512_F32x16(op, a, sv), &d[i])
	}
}

func binaryScalarRegistersMaskedAVX512(op BinaryOp, dst []float32, s float32, masks []Mask) {
	sv := archsimd.BroadcastFloat32x16(s)
	d := AsRegisters(dst)
	for i := range d {
		a := LoadVec_AVX512(&d[i])
		r := BinaryOp_AVX512_F32x16(op, a, sv)
		StoreVec_AVX512(r.Merge(a, ToMask32x16(masks[i])), &d[i])
	}
}

func mulAddRegistersAVX512(dst, a, b []float32) {
	d, av, bv := AsRegisters(dst), AsRegisters(a), AsRegisters(b)
	for i := range d {
		acc := LoadVec_AVX512(&d[i])
		x := LoadVec_AVX512(&av[i])
		y := LoadVec_AVX512(&bv[i])
		StoreVec_AVX512(x.MulAdd(y, acc), &d[i])
	}
}

func mulAddRegistersMaskedAVX512(dst, a, b []float32, masks []Mask) {
	d, av, bv := AsRegisters(dst), AsRegisters(a), AsRegisters(b)
	for i := range d {
		acc := LoadVec_AVX512(&d[i])
		x := LoadVec_AVX512(&av[i])
		y := LoadVec_AVX512(&bv[i])
		StoreVec_AVX512(x.MulAdd(y, acc).Merge(acc, ToMask32x16(masks[i])), &d[i])
	}
}

func mulAddScalarRegistersAVX512(dst, a []float32, s float32) {
	sv := archsimd.BroadcastFloat32x16(s)
	d, av := AsRegisters(dst), AsRegisters(a)
	for i := range d {
		acc := LoadVec_AVX512(&d[i])
		x := LoadVec_AVX512(&av[i])
		StoreVec_AVX512(x.MulAdd(sv, acc), &d[i])
	}
}

func mulAddScalarRegistersMaskedAVX512(dst, a []float32, s float32, masks []Mask) {
	sv := archsimd.BroadcastFloat32x16(s)
	d, av := AsRegisters(dst), AsRegisters(a)
	for i := range d {
		acc := LoadVec_AVX512(&d[i])
		x := LoadVec_AVX512(&av[i])
		StoreVec_AVX512(x.MulAdd(sv, acc).Merge(acc, ToMask32x16(masks[i])), &d[i])
	}
}

func unaryRegistersAVX512(op UnaryOp, dst []float32) {
	d := AsRegisters(dst)
	for i := range d {
		v := LoadVec_AVX512(&d[i])
		StoreVec_AVX512(UnaryOp_AVX512_F32x16(op, v), &d[i])
	}
}

func unaryRegistersMaskedAVX512(op UnaryOp, dst []float32, masks []Mask) {
	d := AsRegisters(dst)
	for i := range d {
		v := LoadVec_AVX512(&d[i])
		r := UnaryOp_AVX512_F32x16(op, v)
		StoreVec_AVX512(r.Merge(v, ToMask32x16(masks[i])), &d[i])
	}
}

func compareRegistersAVX512(op CompareOp, a, b []float32, out []Mask) {
	av, bv := AsRegisters(a), AsRegisters(b)
	for i := range av {
		x := LoadVec_AVX512(&av[i])
		y := LoadVec_AVX512(&bv[i])
		out[i] = FromMask32x16(CompareOp_AVX512_F32x16(op, x, y))
	}
}

func compareScalarRegistersAVX512(op CompareOp, a []float32, s float32, out []Mask) {
	sv := archsimd.BroadcastFloat32x16(s)
	av := AsRegisters(a)
	for i := range av {
		x := LoadVec_AVX512(&av[i])
		out[i] = FromMask32x16(CompareOp_AVX512_F32x16(op, x, sv))
	}
}

func blendRegistersAVX512(dst, src []float32, masks []Mask) {
	d, s := AsRegisters(dst), AsRegisters(src)
	for i := range d {
		old := LoadVec_AVX512(&d[i])
		v := LoadVec_AVX512(&s[i])
		StoreVec_AVX512(v.Merge(old, ToMask32x16(masks[i])), &d[i])
	}
}

func blend2RegistersAVX512(dst, onFalse, onTrue []float32, masks []Mask) {
	d, f, t := AsRegisters(dst), AsRegisters(onFalse), AsRegisters(onTrue)
	for i := range d {
		x := LoadVec_AVX512(&f[i])
		y := LoadVec_AVX512(&t[i])
		StoreVec_AVX512(y.Merge(x, ToMask32x16(masks[i])), &d[i])
	}
}
