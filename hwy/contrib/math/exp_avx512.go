//go:build amd64 && goexperiment.simd

package math

import (
	stdmath "math"
	"simd/archsimd"
	"sync"

	"github.com/ajroetker/hwyarray/hwy"
)

// Lazy initialization for AVX-512 constants to avoid executing AVX-512
// instructions at package load time on machines without AVX-512 support.

var exp512Init sync.Once

var (
	exp512_log2E     archsimd.Float32x16
	exp512_negLn2Hi  archsimd.Float32x16
	exp512_negLn2Lo  archsimd.Float32x16
	exp512_c0        archsimd.Float32x16
	exp512_c1        archsimd.Float32x16
	exp512_c2        archsimd.Float32x16
	exp512_c3        archsimd.Float32x16
	exp512_c4        archsimd.Float32x16
	exp512_zero      archsimd.Float32x16
	exp512_inf       archsimd.Float32x16
	exp512_overflow  archsimd.Float32x16
	exp512_underflow archsimd.Float32x16
)

func initExp512Constants() {
	exp512_log2E = archsimd.BroadcastFloat32x16(expLog2E)
	exp512_negLn2Hi = archsimd.BroadcastFloat32x16(expNegLn2Hi)
	exp512_negLn2Lo = archsimd.BroadcastFloat32x16(expNegLn2Lo)
	exp512_c0 = archsimd.BroadcastFloat32x16(expC0)
	exp512_c1 = archsimd.BroadcastFloat32x16(expC1)
	exp512_c2 = archsimd.BroadcastFloat32x16(expC2)
	exp512_c3 = archsimd.BroadcastFloat32x16(expC3)
	exp512_c4 = archsimd.BroadcastFloat32x16(expC4)
	exp512_zero = archsimd.BroadcastFloat32x16(0)
	exp512_inf = archsimd.BroadcastFloat32x16(float32(stdmath.Inf(1)))
	exp512_overflow = archsimd.BroadcastFloat32x16(ExpOverflow)
	exp512_underflow = archsimd.BroadcastFloat32x16(ExpUnderflow)
}

func init() {
	if hwy.CurrentLevel() != hwy.DispatchAVX512 {
		return
	}
	ExpRegisters = expRegistersAVX512
	ExpRegistersMasked = expRegistersMaskedAVX512
}

// ExpApprox_AVX512_F32x16 computes ExpApprox for a single Float32x16 vector.
func ExpApprox_AVX512_F32x16(x archsimd.Float32x16) archsimd.Float32x16 {
	exp512Init.Do(initExp512Constants)

	overflowMask := x.Greater(exp512_overflow)
	underflowMask := x.Less(exp512_underflow)
	nanMask := x.NotEqual(x)

	r := x.Mul(exp512_log2E).RoundToEvenScaled(0)
	f := r.MulAdd(exp512_negLn2Hi, x)
	f = r.MulAdd(exp512_negLn2Lo, f)

	p := exp512_c0.MulAdd(f, exp512_c1)
	p = p.MulAdd(f, exp512_c2)
	p = p.MulAdd(f, exp512_c3)
	p = p.MulAdd(f, exp512_c4)

	// Add r to the exponent field of p.
	bits := p.AsInt32x16().Add(r.ConvertToInt32().ShiftAllLeft(expMantBits))
	result := bits.AsFloat32x16()

	// Merge semantics: a.Merge(b, mask) returns a where mask is set.
	result = exp512_inf.Merge(result, overflowMask)
	result = exp512_zero.Merge(result, underflowMask)
	return x.Merge(result, nanMask)
}

func expRegistersAVX512(dst []float32) {
	d := hwy.AsRegisters(dst)
	for i := range d {
		hwy.StoreVec_AVX512(ExpApprox_AVX512_F32x16(hwy.LoadVec_AVX512(&d[i])), &d[i])
	}
}

func expRegistersMaskedAVX512(dst []float32, masks []hwy.Mask) {
	d := hwy.AsRegisters(dst)
	for i := range d {
		x := hwy.LoadVec_AVX512(&d[i])
		r := ExpApprox_AVX512_F32x16(x).Merge(x, hwy.ToMask32x16(masks[i]))
		hwy.StoreVec_AVX512(r, &d[i])
	}
}
