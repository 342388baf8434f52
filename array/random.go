package array

import (
	"math/rand/v2"

	"github.com/ajroetker/hwyarray/hwy/contrib/random"
)

// Seed is the state of the 16 interleaved generator streams.
type Seed = random.Seed

// RandomSeed returns a Seed drawn from the process-wide entropy source.
func RandomSeed() Seed {
	var s Seed
	for i := range s {
		s[i] = rand.Uint32() & random.Modulus
	}
	return s
}

// RandomUniform returns a new Array of the given shape filled with uniform
// values in [0, 1), and the advanced seed. Both backends produce the same
// values for the same shape and seed.
func RandomUniform(shape Shape, seed Seed, opts ...Option) (*Array, Seed, error) {
	a, err := Zeros(shape, opts...)
	if err != nil {
		return nil, seed, err
	}
	return a, a.RandomUniformInPlace(seed), nil
}

// RandomUniformInPlace overwrites a with uniform values in [0, 1) and returns
// the advanced seed. Each row consumes one generator step per 16 elements,
// rounded up.
func (a *Array) RandomUniformInPlace(seed Seed) Seed {
	if a.backend == Vector {
		return random.UniformRegisters(a.data, seed)
	}
	return random.UniformRows(a.data, a.rows, a.cols, seed)
}
