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
	"math"

	"github.com/ajroetker/hwyarray/hwy"
	mathx "github.com/ajroetker/hwyarray/hwy/contrib/math"
)

// Every binary operation comes in six forms. For Add:
//
//	c, err := a.Add(b)              // new Array, a + b
//	err := a.AddInPlace(b)          // a = a + b
//	err := a.AddMasked(b, m)        // a = a + b where m is true
//	c := a.AddScalar(s)             // new Array, a + s
//	a.AddScalarInPlace(s)           // a = a + s
//	err := a.AddScalarMasked(s, m)  // a = a + s where m is true
//
// Operands must have the receiver's shape; a mismatch returns a
// *ShapeMismatchError and leaves the receiver untouched. Masked forms blend:
// lanes where the mask is false keep their prior value.

func (a *Array) binaryInPlace(op hwy.BinaryOp, other *Array) error {
	name := op.String()
	if err := a.checkShape(name, other); err != nil {
		return err
	}
	src := a.peer(name, other).data
	if a.backend == Vector {
		hwy.BinaryRegisters(op, a.data, src)
		return nil
	}
	for i, x := range src {
		a.data[i] = op.Scalar(a.data[i], x)
	}
	return nil
}

func (a *Array) binaryMasked(op hwy.BinaryOp, other *Array, mask *Mask) error {
	name := op.String() + "-masked"
	if err := a.checkShape(name, other); err != nil {
		return err
	}
	if err := a.checkMask(name, mask); err != nil {
		return err
	}
	src := a.peer(name, other).data
	if a.backend == Vector {
		hwy.BinaryRegistersMasked(op, a.data, src, masksFor(name, mask))
		return nil
	}
	for i, m := range boolsFor(name, mask) {
		if m {
			a.data[i] = op.Scalar(a.data[i], src[i])
		}
	}
	return nil
}

func (a *Array) binaryScalarInPlace(op hwy.BinaryOp, s float32) {
	if a.backend == Vector {
		hwy.BinaryScalarRegisters(op, a.data, s)
		return
	}
	for i, x := range a.data {
		a.data[i] = op.Scalar(x, s)
	}
}

func (a *Array) binaryScalarMasked(op hwy.BinaryOp, s float32, mask *Mask) error {
	name := op.String() + "-scalar-masked"
	if err := a.checkMask(name, mask); err != nil {
		return err
	}
	if a.backend == Vector {
		hwy.BinaryScalarRegistersMasked(op, a.data, s, masksFor(name, mask))
		return nil
	}
	for i, m := range boolsFor(name, mask) {
		if m {
			a.data[i] = op.Scalar(a.data[i], s)
		}
	}
	return nil
}

func (a *Array) binary(op hwy.BinaryOp, other *Array) (*Array, error) {
	c := a.Clone()
	if err := c.binaryInPlace(op, other); err != nil {
		return nil, err
	}
	return c, nil
}

func (a *Array) binaryScalar(op hwy.BinaryOp, s float32) *Array {
	c := a.Clone()
	c.binaryScalarInPlace(op, s)
	return c
}

// Add returns a + other.
func (a *Array) Add(other *Array) (*Array, error) { return a.binary(hwy.OpAdd, other) }

// AddInPlace sets a = a + other.
func (a *Array) AddInPlace(other *Array) error { return a.binaryInPlace(hwy.OpAdd, other) }

// AddMasked sets a = a + other where mask is true.
func (a *Array) AddMasked(other *Array, mask *Mask) error {
	return a.binaryMasked(hwy.OpAdd, other, mask)
}

// AddScalar returns a + s.
func (a *Array) AddScalar(s float32) *Array { return a.binaryScalar(hwy.OpAdd, s) }

// AddScalarInPlace sets a = a + s.
func (a *Array) AddScalarInPlace(s float32) { a.binaryScalarInPlace(hwy.OpAdd, s) }

// AddScalarMasked sets a = a + s where mask is true.
func (a *Array) AddScalarMasked(s float32, mask *Mask) error {
	return a.binaryScalarMasked(hwy.OpAdd, s, mask)
}

// Sub returns a - other.
func (a *Array) Sub(other *Array) (*Array, error) { return a.binary(hwy.OpSub, other) }

// SubInPlace sets a = a - other.
func (a *Array) SubInPlace(other *Array) error { return a.binaryInPlace(hwy.OpSub, other) }

// SubMasked sets a = a - other where mask is true.
func (a *Array) SubMasked(other *Array, mask *Mask) error {
	return a.binaryMasked(hwy.OpSub, other, mask)
}

// SubScalar returns a - s.
func (a *Array) SubScalar(s float32) *Array { return a.binaryScalar(hwy.OpSub, s) }

// SubScalarInPlace sets a = a - s.
func (a *Array) SubScalarInPlace(s float32) { a.binaryScalarInPlace(hwy.OpSub, s) }

// SubScalarMasked sets a = a - s where mask is true.
func (a *Array) SubScalarMasked(s float32, mask *Mask) error {
	return a.binaryScalarMasked(hwy.OpSub, s, mask)
}

// Mul returns a * other.
func (a *Array) Mul(other *Array) (*Array, error) { return a.binary(hwy.OpMul, other) }

// MulInPlace sets a = a * other.
func (a *Array) MulInPlace(other *Array) error { return a.binaryInPlace(hwy.OpMul, other) }

// MulMasked sets a = a * other where mask is true.
func (a *Array) MulMasked(other *Array, mask *Mask) error {
	return a.binaryMasked(hwy.OpMul, other, mask)
}

// MulScalar returns a * s.
func (a *Array) MulScalar(s float32) *Array { return a.binaryScalar(hwy.OpMul, s) }

// MulScalarInPlace sets a = a * s.
func (a *Array) MulScalarInPlace(s float32) { a.binaryScalarInPlace(hwy.OpMul, s) }

// MulScalarMasked sets a = a * s where mask is true.
func (a *Array) MulScalarMasked(s float32, mask *Mask) error {
	return a.binaryScalarMasked(hwy.OpMul, s, mask)
}

// Div returns a / other.
func (a *Array) Div(other *Array) (*Array, error) { return a.binary(hwy.OpDiv, other) }

// DivInPlace sets a = a / other.
func (a *Array) DivInPlace(other *Array) error { return a.binaryInPlace(hwy.OpDiv, other) }

// DivMasked sets a = a / other where mask is true.
func (a *Array) DivMasked(other *Array, mask *Mask) error {
	return a.binaryMasked(hwy.OpDiv, other, mask)
}

// DivScalar returns a / s.
func (a *Array) DivScalar(s float32) *Array { return a.binaryScalar(hwy.OpDiv, s) }

// DivScalarInPlace sets a = a / s.
func (a *Array) DivScalarInPlace(s float32) { a.binaryScalarInPlace(hwy.OpDiv, s) }

// DivScalarMasked sets a = a / s where mask is true.
func (a *Array) DivScalarMasked(s float32, mask *Mask) error {
	return a.binaryScalarMasked(hwy.OpDiv, s, mask)
}

// Max returns the element-wise maximum of a and other. Where the two compare
// unordered (a NaN is involved) the result is other's element.
func (a *Array) Max(other *Array) (*Array, error) { return a.binary(hwy.OpMax, other) }

// MaxInPlace sets a = max(a, other).
func (a *Array) MaxInPlace(other *Array) error { return a.binaryInPlace(hwy.OpMax, other) }

// MaxMasked sets a = max(a, other) where mask is true.
func (a *Array) MaxMasked(other *Array, mask *Mask) error {
	return a.binaryMasked(hwy.OpMax, other, mask)
}

// MaxScalar returns max(a, s).
func (a *Array) MaxScalar(s float32) *Array { return a.binaryScalar(hwy.OpMax, s) }

// MaxScalarInPlace sets a = max(a, s).
func (a *Array) MaxScalarInPlace(s float32) { a.binaryScalarInPlace(hwy.OpMax, s) }

// MaxScalarMasked sets a = max(a, s) where mask is true.
func (a *Array) MaxScalarMasked(s float32, mask *Mask) error {
	return a.binaryScalarMasked(hwy.OpMax, s, mask)
}

// Min returns the element-wise minimum of a and other, with the same NaN
// behavior as Max.
func (a *Array) Min(other *Array) (*Array, error) { return a.binary(hwy.OpMin, other) }

// MinInPlace sets a = min(a, other).
func (a *Array) MinInPlace(other *Array) error { return a.binaryInPlace(hwy.OpMin, other) }

// MinMasked sets a = min(a, other) where mask is true.
func (a *Array) MinMasked(other *Array, mask *Mask) error {
	return a.binaryMasked(hwy.OpMin, other, mask)
}

// MinScalar returns min(a, s).
func (a *Array) MinScalar(s float32) *Array { return a.binaryScalar(hwy.OpMin, s) }

// MinScalarInPlace sets a = min(a, s).
func (a *Array) MinScalarInPlace(s float32) { a.binaryScalarInPlace(hwy.OpMin, s) }

// MinScalarMasked sets a = min(a, s) where mask is true.
func (a *Array) MinScalarMasked(s float32, mask *Mask) error {
	return a.binaryScalarMasked(hwy.OpMin, s, mask)
}

// FMA returns a + x*y, computed with a single rounding per element.
func (a *Array) FMA(x, y *Array) (*Array, error) {
	c := a.Clone()
	if err := c.FMAInPlace(x, y); err != nil {
		return nil, err
	}
	return c, nil
}

// FMAInPlace sets a = a + x*y.
func (a *Array) FMAInPlace(x, y *Array) error {
	const name = "fma"
	if err := a.checkShape(name, x); err != nil {
		return err
	}
	if err := a.checkShape(name, y); err != nil {
		return err
	}
	xs, ys := a.peer(name, x).data, a.peer(name, y).data
	if a.backend == Vector {
		hwy.MulAddRegisters(a.data, xs, ys)
		return nil
	}
	for i := range a.data {
		a.data[i] = hwy.FMA(xs[i], ys[i], a.data[i])
	}
	return nil
}

// FMAMasked sets a = a + x*y where mask is true.
func (a *Array) FMAMasked(x, y *Array, mask *Mask) error {
	const name = "fma-masked"
	if err := a.checkShape(name, x); err != nil {
		return err
	}
	if err := a.checkShape(name, y); err != nil {
		return err
	}
	if err := a.checkMask(name, mask); err != nil {
		return err
	}
	xs, ys := a.peer(name, x).data, a.peer(name, y).data
	if a.backend == Vector {
		hwy.MulAddRegistersMasked(a.data, xs, ys, masksFor(name, mask))
		return nil
	}
	for i, m := range boolsFor(name, mask) {
		if m {
			a.data[i] = hwy.FMA(xs[i], ys[i], a.data[i])
		}
	}
	return nil
}

// FMAScalar returns a + x*s.
func (a *Array) FMAScalar(x *Array, s float32) (*Array, error) {
	c := a.Clone()
	if err := c.FMAScalarInPlace(x, s); err != nil {
		return nil, err
	}
	return c, nil
}

// FMAScalarInPlace sets a = a + x*s.
func (a *Array) FMAScalarInPlace(x *Array, s float32) error {
	const name = "fma-scalar"
	if err := a.checkShape(name, x); err != nil {
		return err
	}
	xs := a.peer(name, x).data
	if a.backend == Vector {
		hwy.MulAddScalarRegisters(a.data, xs, s)
		return nil
	}
	for i := range a.data {
		a.data[i] = hwy.FMA(xs[i], s, a.data[i])
	}
	return nil
}

// FMAScalarMasked sets a = a + x*s where mask is true.
func (a *Array) FMAScalarMasked(x *Array, s float32, mask *Mask) error {
	const name = "fma-scalar-masked"
	if err := a.checkShape(name, x); err != nil {
		return err
	}
	if err := a.checkMask(name, mask); err != nil {
		return err
	}
	xs := a.peer(name, x).data
	if a.backend == Vector {
		hwy.MulAddScalarRegistersMasked(a.data, xs, s, masksFor(name, mask))
		return nil
	}
	for i, m := range boolsFor(name, mask) {
		if m {
			a.data[i] = hwy.FMA(xs[i], s, a.data[i])
		}
	}
	return nil
}

func (a *Array) unaryInPlace(op hwy.UnaryOp) {
	if a.backend == Vector {
		hwy.UnaryRegisters(op, a.data)
		return
	}
	for i, x := range a.data {
		a.data[i] = op.Scalar(x)
	}
}

func (a *Array) unaryMasked(op hwy.UnaryOp, mask *Mask) error {
	name := op.String() + "-masked"
	if err := a.checkMask(name, mask); err != nil {
		return err
	}
	if a.backend == Vector {
		hwy.UnaryRegistersMasked(op, a.data, masksFor(name, mask))
		return nil
	}
	for i, m := range boolsFor(name, mask) {
		if m {
			a.data[i] = op.Scalar(a.data[i])
		}
	}
	return nil
}

func (a *Array) unary(op hwy.UnaryOp) *Array {
	c := a.Clone()
	c.unaryInPlace(op)
	return c
}

// Sqrt returns the element-wise square root. Negative elements give NaN.
func (a *Array) Sqrt() *Array { return a.unary(hwy.OpSqrt) }

// SqrtInPlace replaces every element by its square root.
func (a *Array) SqrtInPlace() { a.unaryInPlace(hwy.OpSqrt) }

// SqrtMasked replaces the elements where mask is true by their square root.
func (a *Array) SqrtMasked(mask *Mask) error { return a.unaryMasked(hwy.OpSqrt, mask) }

// Square returns the element-wise square.
func (a *Array) Square() *Array { return a.unary(hwy.OpSquare) }

// SquareInPlace replaces every element by its square.
func (a *Array) SquareInPlace() { a.unaryInPlace(hwy.OpSquare) }

// SquareMasked replaces the elements where mask is true by their square.
func (a *Array) SquareMasked(mask *Mask) error { return a.unaryMasked(hwy.OpSquare, mask) }

// Abs returns the element-wise absolute value.
func (a *Array) Abs() *Array { return a.unary(hwy.OpAbs) }

// AbsInPlace replaces every element by its absolute value.
func (a *Array) AbsInPlace() { a.unaryInPlace(hwy.OpAbs) }

// AbsMasked replaces the elements where mask is true by their absolute value.
func (a *Array) AbsMasked(mask *Mask) error { return a.unaryMasked(hwy.OpAbs, mask) }

// Exp returns the element-wise exponential.
//
// The Vector backend uses a degree-4 polynomial approximation with a relative
// error below 1e-5; the Scalar backend uses math.Exp. Results of the two
// backends are close but not bit-identical.
func (a *Array) Exp() *Array {
	c := a.Clone()
	c.ExpInPlace()
	return c
}

// ExpInPlace replaces every element by its exponential.
func (a *Array) ExpInPlace() {
	if a.backend == Vector {
		mathx.ExpRegisters(a.data)
		return
	}
	for i, x := range a.data {
		a.data[i] = float32(math.Exp(float64(x)))
	}
}

// ExpMasked replaces the elements where mask is true by their exponential.
func (a *Array) ExpMasked(mask *Mask) error {
	const name = "exp-masked"
	if err := a.checkMask(name, mask); err != nil {
		return err
	}
	if a.backend == Vector {
		mathx.ExpRegistersMasked(a.data, masksFor(name, mask))
		return nil
	}
	for i, m := range boolsFor(name, mask) {
		if m {
			a.data[i] = float32(math.Exp(float64(a.data[i])))
		}
	}
	return nil
}

// CopyMasked sets a = src where mask is true.
func (a *Array) CopyMasked(src *Array, mask *Mask) error {
	const name = "copy-masked"
	if err := a.checkShape(name, src); err != nil {
		return err
	}
	if err := a.checkMask(name, mask); err != nil {
		return err
	}
	s := a.peer(name, src).data
	if a.backend == Vector {
		hwy.BlendRegisters(a.data, s, masksFor(name, mask))
		return nil
	}
	for i, m := range boolsFor(name, mask) {
		if m {
			a.data[i] = s[i]
		}
	}
	return nil
}

// CopyMasked2 sets a = onTrue where mask is true and a = onFalse elsewhere.
func (a *Array) CopyMasked2(onFalse, onTrue *Array, mask *Mask) error {
	const name = "copy-masked2"
	if err := a.checkShape(name, onFalse); err != nil {
		return err
	}
	if err := a.checkShape(name, onTrue); err != nil {
		return err
	}
	if err := a.checkMask(name, mask); err != nil {
		return err
	}
	f, t := a.peer(name, onFalse).data, a.peer(name, onTrue).data
	if a.backend == Vector {
		hwy.Blend2Registers(a.data, f, t, masksFor(name, mask))
		return nil
	}
	for i, m := range boolsFor(name, mask) {
		if m {
			a.data[i] = t[i]
		} else {
			a.data[i] = f[i]
		}
	}
	return nil
}

// SetMasked sets a = value where mask is true.
func (a *Array) SetMasked(value float32, mask *Mask) error {
	const name = "set-masked"
	if err := a.checkMask(name, mask); err != nil {
		return err
	}
	if a.backend == Vector {
		v := hwy.Set(value)
		masks := masksFor(name, mask)
		regs := hwy.AsRegisters(a.data)
		for i := range regs {
			regs[i] = hwy.IfThenElse(masks[i], v, regs[i])
		}
		return nil
	}
	for i, m := range boolsFor(name, mask) {
		if m {
			a.data[i] = value
		}
	}
	return nil
}

// SetMasked2 sets a = onTrue where mask is true and a = onFalse elsewhere.
func (a *Array) SetMasked2(onFalse, onTrue float32, mask *Mask) error {
	const name = "set-masked2"
	if err := a.checkMask(name, mask); err != nil {
		return err
	}
	if a.backend == Vector {
		f, t := hwy.Set(onFalse), hwy.Set(onTrue)
		masks := masksFor(name, mask)
		regs := hwy.AsRegisters(a.data)
		for i := range regs {
			regs[i] = hwy.IfThenElse(masks[i], t, f)
		}
		return nil
	}
	for i, m := range boolsFor(name, mask) {
		if m {
			a.data[i] = onTrue
		} else {
			a.data[i] = onFalse
		}
	}
	return nil
}
