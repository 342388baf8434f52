package hwy

import (
	"fmt"
	"testing"
)

func TestTailMask(t *testing.T) {
	for count := -1; count <= Lanes+1; count++ {
		t.Run(fmt.Sprintf("count=%d", count), func(t *testing.T) {
			m := TailMask(count)
			for i := 0; i < Lanes; i++ {
				want := i < count
				if m.Bit(i) != want {
					t.Errorf("lane %d: got %v, want %v", i, m.Bit(i), want)
				}
			}
		})
	}
}

func TestRowTailMask(t *testing.T) {
	tests := []struct {
		n    int
		want Mask
	}{
		{0, 0},
		{1, 0x0001},
		{15, 0x7FFF},
		{16, 0xFFFF},
		{17, 0x0001},
		{32, 0xFFFF},
		{33, 0x0001},
	}
	for _, tt := range tests {
		if got := RowTailMask(tt.n); got != tt.want {
			t.Errorf("RowTailMask(%d) = %#04x, want %#04x", tt.n, got, tt.want)
		}
	}
}

func TestRegistersFor(t *testing.T) {
	tests := []struct{ n, want int }{{0, 0}, {1, 1}, {15, 1}, {16, 1}, {17, 2}, {32, 2}, {33, 3}}
	for _, tt := range tests {
		if got := RegistersFor(tt.n); got != tt.want {
			t.Errorf("RegistersFor(%d) = %d, want %d", tt.n, got, tt.want)
		}
		if got := AlignedSize(tt.n); got != tt.want*Lanes {
			t.Errorf("AlignedSize(%d) = %d, want %d", tt.n, got, tt.want*Lanes)
		}
	}
}
