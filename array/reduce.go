package array

import "github.com/ajroetker/hwyarray/hwy/contrib/dot"

func (a *Array) reduce(r dot.Reduction) float32 {
	if a.backend == Vector {
		return dot.ReduceRegisters(r, a.data, a.cols)
	}
	return dot.ReduceFlat(r, a.data)
}

// Sum returns the sum of every element, or 0 for an empty Array.
func (a *Array) Sum() float32 {
	return a.reduce(dot.Sum)
}

// Product returns the product of every element, or 1 for an empty Array.
func (a *Array) Product() float32 {
	return a.reduce(dot.Product)
}

// MaxReduce returns the largest element, or -Inf for an empty Array.
func (a *Array) MaxReduce() float32 {
	return a.reduce(dot.Max)
}

// MinReduce returns the smallest element, or +Inf for an empty Array.
func (a *Array) MinReduce() float32 {
	return a.reduce(dot.Min)
}

// DotProduct returns the sum of a[i]*other[i] over every element, or 0 for
// empty Arrays. The shapes must match.
func (a *Array) DotProduct(other *Array) (float32, error) {
	const name = "dot-product"
	if err := a.checkShape(name, other); err != nil {
		return 0, err
	}
	b := a.peer(name, other).data
	if a.backend == Vector {
		return dot.DotRegisters(a.data, b, a.cols), nil
	}
	return dot.DotFlat(a.data, b), nil
}
