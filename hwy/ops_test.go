package hwy

import (
	"math"
	"testing"
)

func iota16(start float32) Vec {
	var v Vec
	for i := range v {
		v[i] = start + float32(i)
	}
	return v
}

func TestLoad(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	v := Load(data)

	for i := 0; i < Lanes; i++ {
		want := float32(0)
		if i < len(data) {
			want = data[i]
		}
		if v[i] != want {
			t.Errorf("Load: lane %d: got %v, want %v", i, v[i], want)
		}
	}
}

func TestSet(t *testing.T) {
	v := Set(42.0)

	for i := 0; i < Lanes; i++ {
		if v[i] != 42.0 {
			t.Errorf("Set: lane %d: got %v, want %v", i, v[i], 42.0)
		}
	}
}

func TestStore(t *testing.T) {
	v := iota16(0)
	dst := make([]float32, 5)
	v.Store(dst)
	for i, got := range dst {
		if got != float32(i) {
			t.Errorf("Store: index %d: got %v, want %v", i, got, float32(i))
		}
	}
}

func TestArithmetic(t *testing.T) {
	a := iota16(1)
	b := Set(2)

	tests := []struct {
		name string
		got  Vec
		want func(x float32) float32
	}{
		{"Add", Add(a, b), func(x float32) float32 { return x + 2 }},
		{"Sub", Sub(a, b), func(x float32) float32 { return x - 2 }},
		{"Mul", Mul(a, b), func(x float32) float32 { return x * 2 }},
		{"Div", Div(a, b), func(x float32) float32 { return x / 2 }},
		{"Max", Max(a, b), func(x float32) float32 { return float32(math.Max(float64(x), 2)) }},
		{"Min", Min(a, b), func(x float32) float32 { return float32(math.Min(float64(x), 2)) }},
		{"MulAdd", MulAdd(a, b, b), func(x float32) float32 { return x*2 + 2 }},
		{"Sqrt", Sqrt(a), func(x float32) float32 { return float32(math.Sqrt(float64(x))) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < Lanes; i++ {
				if want := tt.want(a[i]); tt.got[i] != want {
					t.Errorf("lane %d: got %v, want %v", i, tt.got[i], want)
				}
			}
		})
	}
}

func TestAbs(t *testing.T) {
	v := Set(-3)
	v[1] = 4
	v[2] = float32(math.Copysign(0, -1))
	r := Abs(v)
	if r[0] != 3 || r[1] != 4 {
		t.Errorf("Abs: got %v", r[:3])
	}
	if math.Signbit(float64(r[2])) {
		t.Error("Abs(-0) kept the sign bit")
	}
}

func TestMaxMinNaN(t *testing.T) {
	nan := float32(math.NaN())
	a := Set(nan)
	b := Set(1)

	// The second operand wins when the comparison is unordered.
	if got := Max(a, b)[0]; got != 1 {
		t.Errorf("Max(NaN, 1) = %v, want 1", got)
	}
	if got := Max(b, a)[0]; !math.IsNaN(float64(got)) {
		t.Errorf("Max(1, NaN) = %v, want NaN", got)
	}
	if got := Min(a, b)[0]; got != 1 {
		t.Errorf("Min(NaN, 1) = %v, want 1", got)
	}
}

func TestComparisons(t *testing.T) {
	a := iota16(0)
	b := Set(7)

	tests := []struct {
		name string
		got  Mask
		pred func(x float32) bool
	}{
		{"Equal", Equal(a, b), func(x float32) bool { return x == 7 }},
		{"NotEqual", NotEqual(a, b), func(x float32) bool { return x != 7 }},
		{"Less", Less(a, b), func(x float32) bool { return x < 7 }},
		{"LessEqual", LessEqual(a, b), func(x float32) bool { return x <= 7 }},
		{"Greater", Greater(a, b), func(x float32) bool { return x > 7 }},
		{"GreaterEqual", GreaterEqual(a, b), func(x float32) bool { return x >= 7 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < Lanes; i++ {
				if tt.got.Bit(i) != tt.pred(a[i]) {
					t.Errorf("lane %d: got %v, want %v", i, tt.got.Bit(i), tt.pred(a[i]))
				}
			}
		})
	}
}

func TestIfThenElse(t *testing.T) {
	a := Set(1)
	b := Set(2)
	m := Mask(0b1010_0000_0000_0101)
	r := IfThenElse(m, a, b)
	for i := 0; i < Lanes; i++ {
		want := float32(2)
		if m.Bit(i) {
			want = 1
		}
		if r[i] != want {
			t.Errorf("lane %d: got %v, want %v", i, r[i], want)
		}
	}
}

func TestReductions(t *testing.T) {
	v := iota16(1)
	if got := ReduceSum(v); got != 136 {
		t.Errorf("ReduceSum = %v, want 136", got)
	}
	if got := ReduceMax(v); got != 16 {
		t.Errorf("ReduceMax = %v, want 16", got)
	}
	if got := ReduceMin(v); got != 1 {
		t.Errorf("ReduceMin = %v, want 1", got)
	}
	if got := ReduceMul(Set(2)); got != 65536 {
		t.Errorf("ReduceMul = %v, want 65536", got)
	}
}

func TestMaskHelpers(t *testing.T) {
	var m Mask
	m = m.With(3, true).With(15, true)
	if !m.Bit(3) || !m.Bit(15) || m.Bit(0) {
		t.Errorf("With/Bit: got %016b", m)
	}
	if m.CountTrue() != 2 {
		t.Errorf("CountTrue = %d, want 2", m.CountTrue())
	}
	if m.Bit(16) || m.Bit(-1) {
		t.Error("out-of-range lanes must read inactive")
	}
	if !AllLanes.AllTrue() || Mask(0).AnyTrue() {
		t.Error("AllTrue/AnyTrue")
	}
	if m.Not().Bit(3) || !m.Not().Bit(0) {
		t.Error("Not")
	}
}
