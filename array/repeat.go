package array

import "fmt"

// Tile and repeat copy a rank-1 source into a larger output:
//
//	src = [a b c], k = 2
//	TileInto           -> [a b c a b c]
//	RepeatInto         -> [a a b b c c]
//	RepeatAsRowInto    -> [[a b c] [a b c]]
//	RepeatAsColumnInto -> [[a a] [b b] [c c]]
//
// The output must already have the resulting shape. Mask has the same
// methods.

func checkRank1(op string, shape Shape) error {
	if len(shape) != 1 {
		return fmt.Errorf("%w: %s needs a rank-1 source, got %v", ErrInvalidShape, op, shape)
	}
	return nil
}

func checkK(op string, k int) error {
	if k < 0 {
		return fmt.Errorf("%w: %s: negative repeat count %d", ErrInvalidShape, op, k)
	}
	return nil
}

// outputShape returns the shape the output of op must have for a source of n
// elements repeated k times.
func outputShape(op string, n, k int) Shape {
	switch op {
	case "tile", "repeat":
		return Shape{n * k}
	case "repeat-as-row":
		return Shape{k, n}
	default:
		return Shape{n, k}
	}
}

// sourceIndex maps the flat index of an output element of op to the source
// element it copies.
func sourceIndex(op string, n, k int) func(i int) int {
	switch op {
	case "tile", "repeat-as-row":
		return func(i int) int { return i % n }
	default:
		return func(i int) int { return i / k }
	}
}

func (a *Array) repeatInto(op string, k int, out *Array) error {
	if err := checkRank1(op, a.shape); err != nil {
		return err
	}
	if err := checkK(op, k); err != nil {
		return err
	}
	n := a.cols
	if want := outputShape(op, n, k); !want.Equal(out.shape) {
		return shapeMismatch(op, want, out.shape)
	}
	src := a.data
	idx := sourceIndex(op, n, k)
	for r := range out.rows {
		row := out.data[r*out.stride : r*out.stride+out.cols]
		for c := range row {
			row[c] = src[idx(r*out.cols+c)]
		}
	}
	return nil
}

// TileInto writes k consecutive copies of the rank-1 Array a into out, which
// must have shape [len(a)*k].
func (a *Array) TileInto(k int, out *Array) error { return a.repeatInto("tile", k, out) }

// RepeatInto writes every element of the rank-1 Array a k times in a row into
// out, which must have shape [len(a)*k].
func (a *Array) RepeatInto(k int, out *Array) error { return a.repeatInto("repeat", k, out) }

// RepeatAsRowInto writes a into each of the k rows of out, which must have
// shape [k len(a)].
func (a *Array) RepeatAsRowInto(k int, out *Array) error {
	return a.repeatInto("repeat-as-row", k, out)
}

// RepeatAsColumnInto writes a into each of the k columns of out, which must
// have shape [len(a) k].
func (a *Array) RepeatAsColumnInto(k int, out *Array) error {
	return a.repeatInto("repeat-as-column", k, out)
}

func (m *Mask) repeatInto(op string, k int, out *Mask) error {
	if err := checkRank1(op, m.shape); err != nil {
		return err
	}
	if err := checkK(op, k); err != nil {
		return err
	}
	n := m.cols
	if want := outputShape(op, n, k); !want.Equal(out.shape) {
		return shapeMismatch(op, want, out.shape)
	}
	src := m.ToFlat()
	idx := sourceIndex(op, n, k)
	flat := make([]bool, out.Len())
	for i := range flat {
		flat[i] = src[idx(i)]
	}
	return out.loadFlat(flat)
}

// TileInto writes k consecutive copies of the rank-1 Mask m into out.
func (m *Mask) TileInto(k int, out *Mask) error { return m.repeatInto("tile", k, out) }

// RepeatInto writes every element of the rank-1 Mask m k times in a row into
// out.
func (m *Mask) RepeatInto(k int, out *Mask) error { return m.repeatInto("repeat", k, out) }

// RepeatAsRowInto writes m into each of the k rows of out.
func (m *Mask) RepeatAsRowInto(k int, out *Mask) error {
	return m.repeatInto("repeat-as-row", k, out)
}

// RepeatAsColumnInto writes m into each of the k columns of out.
func (m *Mask) RepeatAsColumnInto(k int, out *Mask) error {
	return m.repeatInto("repeat-as-column", k, out)
}
