package dot

import "github.com/ajroetker/hwyarray/hwy"

// DotFlat computes the dot product of two unpadded slices, folding left to
// right with fused multiply-adds. Extra elements of the longer slice are
// ignored.
func DotFlat(a, b []float32) float32 {
	n := min(len(a), len(b))
	var acc float32
	for i := range n {
		acc = hwy.FMA(a[i], b[i], acc)
	}
	return acc
}

// DotRows computes out[r] = dot(matrix row r, vec) for a register-packed
// matrix whose rows hold rowLen elements, against a register-packed vector of
// rowLen elements. len(out) must equal the number of rows.
func DotRows(matrix, vec []float32, rowLen int, out []float32) {
	stride := hwy.AlignedSize(rowLen)
	if stride == 0 {
		clear(out)
		return
	}
	for r := range out {
		out[r] = DotRegisters(matrix[r*stride:(r+1)*stride], vec[:stride], rowLen)
	}
}

// DotBatch computes multiple dot products over unpadded slices.
// For each i, computes the dot product of queries[i] and keys[i].
// Returns a slice of results with length min(len(queries), len(keys)).
func DotBatch(queries, keys [][]float32) []float32 {
	n := min(len(queries), len(keys))
	results := make([]float32, n)

	for i := range n {
		results[i] = DotFlat(queries[i], keys[i])
	}

	return results
}

func baseDotRegisters(a, b []float32, rowLen int) float32 {
	av, bv := hwy.AsRegisters(a), hwy.AsRegisters(b)
	perRow := hwy.RegistersFor(rowLen)
	if len(av) == 0 || perRow == 0 {
		return 0
	}

	tail := hwy.RowTailMask(rowLen)
	var acc hwy.Vec
	for i := range av {
		sum := hwy.MulAdd(av[i], bv[i], acc)
		if i%perRow == perRow-1 {
			sum = hwy.IfThenElse(tail, sum, acc)
		}
		acc = sum
	}
	return hwy.ReduceSum(acc)
}
