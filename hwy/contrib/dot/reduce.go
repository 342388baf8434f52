package dot

import (
	"fmt"
	"math"

	"github.com/ajroetker/hwyarray/hwy"
)

// Reduction selects an associative fold.
type Reduction int

const (
	Sum Reduction = iota
	Product
	Max
	Min
)

// String returns the reduction name.
func (r Reduction) String() string {
	switch r {
	case Sum:
		return "sum"
	case Product:
		return "product"
	case Max:
		return "max"
	case Min:
		return "min"
	default:
		return fmt.Sprintf("Reduction(%d)", int(r))
	}
}

// Identity returns the seed of the fold, which is also its result over no
// elements.
func (r Reduction) Identity() float32 {
	switch r {
	case Sum:
		return 0
	case Product:
		return 1
	case Max:
		return float32(math.Inf(-1))
	case Min:
		return float32(math.Inf(1))
	default:
		panic("dot: unknown Reduction " + r.String())
	}
}

// Op returns the lane-wise operation folded by r.
func (r Reduction) Op() hwy.BinaryOp {
	switch r {
	case Sum:
		return hwy.OpAdd
	case Product:
		return hwy.OpMul
	case Max:
		return hwy.OpMax
	case Min:
		return hwy.OpMin
	default:
		panic("dot: unknown Reduction " + r.String())
	}
}

// Horizontal folds the 16 lanes of v.
func (r Reduction) Horizontal(v hwy.Vec) float32 {
	switch r {
	case Sum:
		return hwy.ReduceSum(v)
	case Product:
		return hwy.ReduceMul(v)
	case Max:
		return hwy.ReduceMax(v)
	case Min:
		return hwy.ReduceMin(v)
	default:
		panic("dot: unknown Reduction " + r.String())
	}
}

var (
	// ReduceRegisters folds every valid lane of a register-packed buffer of
	// rows holding rowLen elements each.
	ReduceRegisters func(r Reduction, buf []float32, rowLen int) float32 = baseReduceRegisters

	// DotRegisters computes the sum of a[i]*b[i] over every valid lane of two
	// register-packed buffers with the same geometry.
	DotRegisters func(a, b []float32, rowLen int) float32 = baseDotRegisters
)

// ReduceFlat folds xs left to right, starting from the identity.
func ReduceFlat(r Reduction, xs []float32) float32 {
	op := r.Op()
	acc := r.Identity()
	for _, x := range xs {
		acc = op.Scalar(acc, x)
	}
	return acc
}

func baseReduceRegisters(r Reduction, buf []float32, rowLen int) float32 {
	regs := hwy.AsRegisters(buf)
	perRow := hwy.RegistersFor(rowLen)
	if len(regs) == 0 || perRow == 0 {
		return r.Identity()
	}

	op := r.Op()
	identity := hwy.Set(r.Identity())
	tail := hwy.RowTailMask(rowLen)
	acc := identity
	for i, v := range regs {
		if i%perRow == perRow-1 {
			v = hwy.IfThenElse(tail, v, identity)
		}
		acc = op.Apply(acc, v)
	}
	return r.Horizontal(acc)
}
