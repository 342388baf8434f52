package math

import (
	stdmath "math"

	"github.com/ajroetker/hwyarray/hwy"
)

var (
	// ExpRegisters replaces every lane of a register-packed buffer with its
	// ExpApprox.
	ExpRegisters func(dst []float32) = baseExpRegisters

	// ExpRegistersMasked applies ExpApprox on active lanes only.
	ExpRegistersMasked func(dst []float32, masks []hwy.Mask) = baseExpRegistersMasked
)

// ExpApprox computes an approximation of e^x for each lane.
func ExpApprox(v hwy.Vec) hwy.Vec {
	for i, x := range v {
		v[i] = expLane(x)
	}
	return v
}

// ExpScalar is the single-lane form of ExpApprox.
func ExpScalar(x float32) float32 {
	return expLane(x)
}

func expLane(x float32) float32 {
	switch {
	case stdmath.IsNaN(float64(x)):
		return x
	case x > ExpOverflow:
		return float32(stdmath.Inf(1))
	case x < ExpUnderflow:
		return 0
	}

	r := float32(stdmath.RoundToEven(float64(float32(x * expLog2E))))
	f := hwy.FMA(r, expNegLn2Hi, x)
	f = hwy.FMA(r, expNegLn2Lo, f)

	p := expC0
	p = hwy.FMA(p, f, expC1)
	p = hwy.FMA(p, f, expC2)
	p = hwy.FMA(p, f, expC3)
	p = hwy.FMA(p, f, expC4)

	bits := int32(stdmath.Float32bits(p)) + int32(r)<<expMantBits
	return stdmath.Float32frombits(uint32(bits))
}

func baseExpRegisters(dst []float32) {
	d := hwy.AsRegisters(dst)
	for i := range d {
		d[i] = ExpApprox(d[i])
	}
}

func baseExpRegistersMasked(dst []float32, masks []hwy.Mask) {
	d := hwy.AsRegisters(dst)
	for i := range d {
		d[i] = hwy.IfThenElse(masks[i], ExpApprox(d[i]), d[i])
	}
}
