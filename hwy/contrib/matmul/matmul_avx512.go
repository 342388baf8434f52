//go:build amd64 && goexperiment.simd

package matmul

import (
	"simd/archsimd"

	"github.com/ajroetker/hwyarray/hwy"
)

func init() {
	if hwy.CurrentLevel() != hwy.DispatchAVX512 {
		return
	}
	MatMulRegisters = matMulRegistersAVX512
}

func matMulRegistersAVX512(a, bT, c []float32, m, n, k int) {
	aRegs := hwy.AsRegisters(a)
	bRegs := hwy.AsRegisters(bT)
	cRegs := hwy.AsRegisters(c)
	kRegs := hwy.RegistersFor(k)
	nRegs := hwy.RegistersFor(n)
	tail := hwy.ToMask32x16(hwy.RowTailMask(k))
	zero := archsimd.BroadcastFloat32x16(0)

	var accs [hwy.Lanes]archsimd.Float32x16
	for i := range m {
		aRow := aRegs[i*kRegs : (i+1)*kRegs]
		for jb := range nRegs {
			cols := min(hwy.Lanes, n-jb*hwy.Lanes)
			for ci := range cols {
				accs[ci] = zero
			}
			for kr := range aRow {
				av := hwy.LoadVec_AVX512(&aRow[kr])
				if kr == kRegs-1 {
					av = av.Merge(zero, tail)
				}
				for ci := range cols {
					j := jb*hwy.Lanes + ci
					bv := hwy.LoadVec_AVX512(&bRegs[j*kRegs+kr])
					accs[ci] = av.MulAdd(bv, accs[ci])
				}
			}

			var out, lanes hwy.Vec
			for ci := range cols {
				hwy.StoreVec_AVX512(accs[ci], &lanes)
				out[ci] = hwy.ReduceSum(lanes)
			}
			cRegs[i*nRegs+jb] = out
		}
	}
}
