package array

import "github.com/ajroetker/hwyarray/hwy"

// WordsGuard is a scoped mutable view of a Mask's packed words.
//
// While the guard is held the caller may write any bit pattern into Words.
// Release clears the bits past the end of every row and, for a Scalar mask,
// writes the words back; it runs once, and later calls are no-ops.
//
//	g := m.AcquireWords()
//	defer g.Release()
//	for i, w := range g.Words() { ... }
type WordsGuard struct {
	mask     *Mask
	words    []hwy.Mask
	released bool
}

// AcquireWords returns a guard over m's words in the Vector layout: one
// hwy.Mask per register, WordsPerRow per row. For a Scalar mask the words are
// a packed copy that Release writes back.
func (m *Mask) AcquireWords() *WordsGuard {
	g := &WordsGuard{mask: m}
	if m.backend == Vector {
		g.words = m.words
	} else {
		g.words = make([]hwy.Mask, m.rows*m.wordsPerRow)
		packWords(g.words, m.bools, m.rows, m.cols)
	}
	return g
}

// Words returns the mutable words. It returns nil after Release.
func (g *WordsGuard) Words() []hwy.Mask {
	return g.words
}

// WordsPerRow returns the number of words in each row.
func (g *WordsGuard) WordsPerRow() int {
	return g.mask.wordsPerRow
}

// Release restores the mask invariants and ends the view.
func (g *WordsGuard) Release() {
	if g.released {
		return
	}
	g.released = true

	m := g.mask
	clearTailWords(g.words, m.cols)
	if m.backend == Scalar {
		unpackWords(m.bools, g.words, m.rows, m.cols)
	}
	g.words = nil
}

// MutableWords calls fn with a mutable view of m's words and restores the
// mask invariants when fn returns, including when it returns an error or
// panics. It returns fn's error.
func (m *Mask) MutableWords(fn func(words []hwy.Mask) error) error {
	g := m.AcquireWords()
	defer g.Release()
	return fn(g.Words())
}
