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
	"math"
)

// This file provides the pure Go implementations of the per-register
// operations. The AVX-512 kernels in kernels_avx512.go must agree with these
// lane for lane, including NaN and signed-zero behavior of Max and Min.

// Load creates a vector from the first Lanes elements of src.
// If src is shorter, the remaining lanes are zero.
func Load(src []float32) Vec {
	var v Vec
	copy(v[:], src)
	return v
}

// Store writes the vector's lanes to dst, up to len(dst).
func (v Vec) Store(dst []float32) {
	copy(dst, v[:])
}

// Set creates a vector with all lanes set to the same value.
func Set(value float32) Vec {
	var v Vec
	for i := range v {
		v[i] = value
	}
	return v
}

// Zero creates a vector with all lanes set to zero.
func Zero() Vec {
	return Vec{}
}

// Add performs element-wise addition.
func Add(a, b Vec) Vec {
	for i := range a {
		a[i] += b[i]
	}
	return a
}

// Sub performs element-wise subtraction.
func Sub(a, b Vec) Vec {
	for i := range a {
		a[i] -= b[i]
	}
	return a
}

// Mul performs element-wise multiplication.
func Mul(a, b Vec) Vec {
	for i := range a {
		a[i] *= b[i]
	}
	return a
}

// Div performs element-wise division.
func Div(a, b Vec) Vec {
	for i := range a {
		a[i] /= b[i]
	}
	return a
}

// Max returns the element-wise maximum. Like VMAXPS, the second operand is
// returned when the lanes compare unordered or equal.
func Max(a, b Vec) Vec {
	for i := range a {
		if !(a[i] > b[i]) {
			a[i] = b[i]
		}
	}
	return a
}

// Min returns the element-wise minimum. Like VMINPS, the second operand is
// returned when the lanes compare unordered or equal.
func Min(a, b Vec) Vec {
	for i := range a {
		if !(a[i] < b[i]) {
			a[i] = b[i]
		}
	}
	return a
}

// MulAdd computes a*b + c per lane with a single rounding.
func MulAdd(a, b, c Vec) Vec {
	for i := range a {
		a[i] = FMA(a[i], b[i], c[i])
	}
	return a
}

// FMA computes x*y + z for one lane. The product of two float32 values is
// exact in float64.
func FMA(x, y, z float32) float32 {
	return float32(math.FMA(float64(x), float64(y), float64(z)))
}

// Sqrt computes the square root of each lane, correctly rounded.
func Sqrt(v Vec) Vec {
	for i := range v {
		v[i] = float32(math.Sqrt(float64(v[i])))
	}
	return v
}

// signBit is the IEEE 754 sign bit of a float32.
const signBit = 1 << 31

// Abs clears the sign bit of each lane.
func Abs(v Vec) Vec {
	for i := range v {
		v[i] = math.Float32frombits(math.Float32bits(v[i]) &^ signBit)
	}
	return v
}

// IfThenElse selects lanes from a where mask is active, else from b.
// It never branches on lane data, only on the mask bits.
func IfThenElse(mask Mask, a, b Vec) Vec {
	for i := range a {
		if (mask>>uint(i))&1 == 0 {
			a[i] = b[i]
		}
	}
	return a
}

// Equal performs element-wise equality comparison.
func Equal(a, b Vec) Mask {
	var m Mask
	for i := range a {
		if a[i] == b[i] {
			m |= 1 << uint(i)
		}
	}
	return m
}

// NotEqual performs element-wise inequality comparison. NaN lanes compare
// not-equal.
func NotEqual(a, b Vec) Mask {
	var m Mask
	for i := range a {
		if a[i] != b[i] {
			m |= 1 << uint(i)
		}
	}
	return m
}

// Less performs element-wise less-than comparison.
func Less(a, b Vec) Mask {
	var m Mask
	for i := range a {
		if a[i] < b[i] {
			m |= 1 << uint(i)
		}
	}
	return m
}

// LessEqual performs element-wise less-than-or-equal comparison.
func LessEqual(a, b Vec) Mask {
	var m Mask
	for i := range a {
		if a[i] <= b[i] {
			m |= 1 << uint(i)
		}
	}
	return m
}

// Greater performs element-wise greater-than comparison.
func Greater(a, b Vec) Mask {
	var m Mask
	for i := range a {
		if a[i] > b[i] {
			m |= 1 << uint(i)
		}
	}
	return m
}

// GreaterEqual performs element-wise greater-than-or-equal comparison.
func GreaterEqual(a, b Vec) Mask {
	var m Mask
	for i := range a {
		if a[i] >= b[i] {
			m |= 1 << uint(i)
		}
	}
	return m
}

// ReduceSum sums all lanes pairwise, halving the width each step the way a
// register reduction does.
func ReduceSum(v Vec) float32 {
	for width := Lanes / 2; width > 0; width /= 2 {
		for i := 0; i < width; i++ {
			v[i] += v[i+width]
		}
	}
	return v[0]
}

// ReduceMul multiplies all lanes pairwise.
func ReduceMul(v Vec) float32 {
	for width := Lanes / 2; width > 0; width /= 2 {
		for i := 0; i < width; i++ {
			v[i] *= v[i+width]
		}
	}
	return v[0]
}

// ReduceMax returns the maximum lane.
func ReduceMax(v Vec) float32 {
	for width := Lanes / 2; width > 0; width /= 2 {
		for i := 0; i < width; i++ {
			if !(v[i] > v[i+width]) {
				v[i] = v[i+width]
			}
		}
	}
	return v[0]
}

// ReduceMin returns the minimum lane.
func ReduceMin(v Vec) float32 {
	for width := Lanes / 2; width > 0; width /= 2 {
		for i := 0; i < width; i++ {
			if !(v[i] < v[i+width]) {
				v[i] = v[i+width]
			}
		}
	}
	return v[0]
}
