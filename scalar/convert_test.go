package scalar

import (
	"math"
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestDFix64_Int26_6(t *testing.T) {
	tests := []struct {
		s    string
		want fixed.Int26_6
	}{
		{"0", 0},
		{"1", 64},
		{"1.5", 96},
		{"-0.25", -16},
		{"100.015625", 6401},
	}
	for _, tt := range tests {
		if got := MustParseDFix64(tt.s).Int26_6(); got != tt.want {
			t.Errorf("%q.Int26_6() = %v, want %v", tt.s, got, tt.want)
		}
	}

	t.Run("half to even", func(t *testing.T) {
		// Half of a 26.6 step ties to the even neighbor.
		if got := DFix64FromRaw(1 << 25).Int26_6(); got != 0 {
			t.Errorf("tie at even: got %v, want 0", got)
		}
		if got := DFix64FromRaw(3 << 25).Int26_6(); got != 2 {
			t.Errorf("tie at odd: got %v, want 2", got)
		}
	})

	t.Run("saturation", func(t *testing.T) {
		if got := MaxDFix64.Int26_6(); got != fixed.Int26_6(math.MaxInt32) {
			t.Errorf("MaxDFix64.Int26_6() = %v, want MaxInt32", got)
		}
		if got := MinDFix64.Int26_6(); got != fixed.Int26_6(math.MinInt32) {
			t.Errorf("MinDFix64.Int26_6() = %v, want MinInt32", got)
		}
	})
}

func TestDFix64_Int52_12(t *testing.T) {
	tests := []struct {
		s    string
		want fixed.Int52_12
	}{
		{"0", 0},
		{"1", 4096},
		{"1.5", 6144},
		{"-0.25", -1024},
	}
	for _, tt := range tests {
		if got := MustParseDFix64(tt.s).Int52_12(); got != tt.want {
			t.Errorf("%q.Int52_12() = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestDFix64FromInt26_6(t *testing.T) {
	// Every 26.6 value converts exactly and round-trips.
	for _, v := range []fixed.Int26_6{0, 1, -1, 64, 96, -1600, math.MaxInt32, math.MinInt32} {
		d := DFix64FromInt26_6(v)
		if got := d.Int26_6(); got != v {
			t.Errorf("round-tripping %v: got %v", v, got)
		}
	}
	if got, want := DFix64FromInt26_6(96), MustParseDFix64("1.5"); got != want {
		t.Errorf("DFix64FromInt26_6(96) = %q, want %q", got, want)
	}
}

func TestDFix64FromInt52_12(t *testing.T) {
	if got, want := DFix64FromInt52_12(6144), MustParseDFix64("1.5"); got != want {
		t.Errorf("DFix64FromInt52_12(6144) = %q, want %q", got, want)
	}
	if got := DFix64FromInt52_12(fixed.Int52_12(math.MaxInt64)); got != MaxDFix64 {
		t.Errorf("out-of-range positive = %v, want MaxDFix64", got.Raw())
	}
	if got := DFix64FromInt52_12(fixed.Int52_12(math.MinInt64)); got != MinDFix64 {
		t.Errorf("out-of-range negative = %v, want MinDFix64", got.Raw())
	}
}
