//go:build amd64 && goexperiment.simd

package dot

import (
	"simd/archsimd"

	"github.com/ajroetker/hwyarray/hwy"
)

func init() {
	if hwy.CurrentLevel() != hwy.DispatchAVX512 {
		return
	}
	ReduceRegisters = reduceRegistersAVX512
	DotRegisters = dotRegistersAVX512
}

func reduceRegistersAVX512(r Reduction, buf []float32, rowLen int) float32 {
	regs := hwy.AsRegisters(buf)
	perRow := hwy.RegistersFor(rowLen)
	if len(regs) == 0 || perRow == 0 {
		return r.Identity()
	}

	op := r.Op()
	identity := archsimd.BroadcastFloat32x16(r.Identity())
	tail := hwy.ToMask32x16(hwy.RowTailMask(rowLen))
	acc := identity
	for i := range regs {
		v := hwy.LoadVec_AVX512(&regs[i])
		if i%perRow == perRow-1 {
			v = v.Merge(identity, tail)
		}
		acc = hwy.BinaryOp_AVX512_F32x16(op, acc, v)
	}

	var out hwy.Vec
	hwy.StoreVec_AVX512(acc, &out)
	return r.Horizontal(out)
}

func dotRegistersAVX512(a, b []float32, rowLen int) float32 {
	av, bv := hwy.AsRegisters(a), hwy.AsRegisters(b)
	perRow := hwy.RegistersFor(rowLen)
	if len(av) == 0 || perRow == 0 {
		return 0
	}

	tail := hwy.ToMask32x16(hwy.RowTailMask(rowLen))
	acc := archsimd.BroadcastFloat32x16(0)
	for i := range av {
		x := hwy.LoadVec_AVX512(&av[i])
		y := hwy.LoadVec_AVX512(&bv[i])
		sum := x.MulAdd(y, acc)
		if i%perRow == perRow-1 {
			sum = sum.Merge(acc, tail)
		}
		acc = sum
	}

	var out hwy.Vec
	hwy.StoreVec_AVX512(acc, &out)
	return hwy.ReduceSum(out)
}
