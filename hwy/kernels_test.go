// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func randomRegisters(rng *rand.Rand, n int) []float32 {
	buf := make([]float32, n*Lanes)
	for i := range buf {
		buf[i] = rng.Float32()*20 - 10
	}
	return buf
}

func randomMasks(rng *rand.Rand, n int) []Mask {
	masks := make([]Mask, n)
	for i := range masks {
		masks[i] = Mask(rng.Uint32())
	}
	return masks
}

// The kernels in use may be the AVX-512 ones; they must agree with the
// per-lane scalar definition of each operation.

func TestBinaryRegisters(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, op := range []BinaryOp{OpAdd, OpSub, OpMul, OpDiv, OpMax, OpMin} {
		t.Run(op.String(), func(t *testing.T) {
			a := randomRegisters(rng, 3)
			b := randomRegisters(rng, 3)
			masks := randomMasks(rng, 3)

			want := make([]float32, len(a))
			wantMasked := make([]float32, len(a))
			for i := range a {
				want[i] = op.Scalar(a[i], b[i])
				wantMasked[i] = a[i]
				if masks[i/Lanes].Bit(i % Lanes) {
					wantMasked[i] = want[i]
				}
			}

			got := append([]float32(nil), a...)
			BinaryRegisters(op, got, b)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("BinaryRegisters mismatch (-want +got):\n%s", diff)
			}

			got = append([]float32(nil), a...)
			BinaryRegistersMasked(op, got, b, masks)
			if diff := cmp.Diff(wantMasked, got); diff != "" {
				t.Errorf("BinaryRegistersMasked mismatch (-want +got):\n%s", diff)
			}

			got = append([]float32(nil), a...)
			BinaryScalarRegisters(op, got, 3)
			for i := range got {
				if w := op.Scalar(a[i], 3); got[i] != w {
					t.Fatalf("BinaryScalarRegisters index %d: got %v, want %v", i, got[i], w)
				}
			}

			got = append([]float32(nil), a...)
			BinaryScalarRegistersMasked(op, got, 3, masks)
			for i := range got {
				w := a[i]
				if masks[i/Lanes].Bit(i % Lanes) {
					w = op.Scalar(a[i], 3)
				}
				if got[i] != w {
					t.Fatalf("BinaryScalarRegistersMasked index %d: got %v, want %v", i, got[i], w)
				}
			}
		})
	}
}

func TestUnaryRegisters(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, op := range []UnaryOp{OpSqrt, OpSquare, OpAbs} {
		t.Run(op.String(), func(t *testing.T) {
			a := randomRegisters(rng, 2)
			if op == OpSqrt {
				for i := range a {
					a[i] = a[i] * a[i]
				}
			}
			masks := randomMasks(rng, 2)

			got := append([]float32(nil), a...)
			UnaryRegisters(op, got)
			for i := range got {
				if w := op.Scalar(a[i]); got[i] != w {
					t.Fatalf("index %d: got %v, want %v", i, got[i], w)
				}
			}

			got = append([]float32(nil), a...)
			UnaryRegistersMasked(op, got, masks)
			for i := range got {
				w := a[i]
				if masks[i/Lanes].Bit(i % Lanes) {
					w = op.Scalar(a[i])
				}
				if got[i] != w {
					t.Fatalf("masked index %d: got %v, want %v", i, got[i], w)
				}
			}
		})
	}
}

func TestMulAddRegisters(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a := randomRegisters(rng, 2)
	b := randomRegisters(rng, 2)
	c := randomRegisters(rng, 2)
	masks := randomMasks(rng, 2)

	got := append([]float32(nil), c...)
	MulAddRegisters(got, a, b)
	for i := range got {
		if w := FMA(a[i], b[i], c[i]); got[i] != w {
			t.Fatalf("MulAddRegisters index %d: got %v, want %v", i, got[i], w)
		}
	}

	got = append([]float32(nil), c...)
	MulAddRegistersMasked(got, a, b, masks)
	for i := range got {
		w := c[i]
		if masks[i/Lanes].Bit(i % Lanes) {
			w = FMA(a[i], b[i], c[i])
		}
		if got[i] != w {
			t.Fatalf("MulAddRegistersMasked index %d: got %v, want %v", i, got[i], w)
		}
	}

	got = append([]float32(nil), c...)
	MulAddScalarRegisters(got, a, 0.5)
	for i := range got {
		if w := FMA(a[i], 0.5, c[i]); got[i] != w {
			t.Fatalf("MulAddScalarRegisters index %d: got %v, want %v", i, got[i], w)
		}
	}

	got = append([]float32(nil), c...)
	MulAddScalarRegistersMasked(got, a, 0.5, masks)
	for i := range got {
		w := c[i]
		if masks[i/Lanes].Bit(i % Lanes) {
			w = FMA(a[i], 0.5, c[i])
		}
		if got[i] != w {
			t.Fatalf("MulAddScalarRegistersMasked index %d: got %v, want %v", i, got[i], w)
		}
	}
}

func TestCompareRegisters(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	ops := []CompareOp{CmpEqual, CmpNotEqual, CmpGreater, CmpGreaterEqual, CmpLess, CmpLessEqual}
	for _, op := range ops {
		t.Run(op.String(), func(t *testing.T) {
			a := randomRegisters(rng, 2)
			b := append([]float32(nil), a...)
			for i := 0; i < len(b); i += 3 {
				b[i] += 1
			}

			out := make([]Mask, 2)
			CompareRegisters(op, a, b, out)
			for i := range a {
				if got, want := out[i/Lanes].Bit(i%Lanes), op.Scalar(a[i], b[i]); got != want {
					t.Fatalf("index %d: got %v, want %v", i, got, want)
				}
			}

			CompareScalarRegisters(op, a, 0, out)
			for i := range a {
				if got, want := out[i/Lanes].Bit(i%Lanes), op.Scalar(a[i], 0); got != want {
					t.Fatalf("scalar index %d: got %v, want %v", i, got, want)
				}
			}
		})
	}
}

func TestBlendRegisters(t *testing.T) {
	for n := 1; n <= 3; n++ {
		t.Run(fmt.Sprintf("registers=%d", n), func(t *testing.T) {
			rng := rand.New(rand.NewSource(int64(n)))
			dst := randomRegisters(rng, n)
			src := randomRegisters(rng, n)
			other := randomRegisters(rng, n)
			masks := randomMasks(rng, n)

			got := append([]float32(nil), dst...)
			BlendRegisters(got, src, masks)
			for i := range got {
				w := dst[i]
				if masks[i/Lanes].Bit(i % Lanes) {
					w = src[i]
				}
				if got[i] != w {
					t.Fatalf("BlendRegisters index %d: got %v, want %v", i, got[i], w)
				}
			}

			Blend2Registers(got, other, src, masks)
			for i := range got {
				w := other[i]
				if masks[i/Lanes].Bit(i % Lanes) {
					w = src[i]
				}
				if got[i] != w {
					t.Fatalf("Blend2Registers index %d: got %v, want %v", i, got[i], w)
				}
			}
		})
	}
}

func TestAsRegisters(t *testing.T) {
	if AsRegisters(nil) != nil {
		t.Error("AsRegisters(nil) should be nil")
	}
	buf := make([]float32, 2*Lanes)
	regs := AsRegisters(buf)
	regs[1][3] = 7
	if buf[Lanes+3] != 7 {
		t.Error("AsRegisters must alias the buffer")
	}

	defer func() {
		if recover() == nil {
			t.Error("AsRegisters with a ragged buffer should panic")
		}
	}()
	AsRegisters(make([]float32, Lanes+1))
}

func TestOpStrings(t *testing.T) {
	if OpAdd.String() != "add" || CmpLessEqual.String() != "less-equal" || OpAbs.String() != "abs" {
		t.Error("unexpected op names")
	}
	if BinaryOp(99).String() != "BinaryOp(99)" {
		t.Errorf("got %q", BinaryOp(99).String())
	}
}
