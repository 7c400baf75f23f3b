package prng

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt32In_GoldenRegression(t *testing.T) {
	// Frozen output of AlgoVersion 1. A mismatch here means the generator
	// no longer replays old timelines.
	s := FromSeed(0xDEADBEEF, 0xFACEFEED)
	want := []int32{1501347292, 1946982111, -117316573}
	for i, w := range want {
		got := s.Int32In(math.MinInt32, math.MaxInt32)
		require.Equal(t, w, got, "draw %d", i)
	}
}

func TestInt32In_SingleValueRange(t *testing.T) {
	s := FromSeed(42, 99)
	assert.Equal(t, int32(7), s.Int32In(7, 7))
}

func TestInt32In_Deterministic(t *testing.T) {
	a := FromSeed(123, 456)
	b := FromSeed(123, 456)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Int32In(-10, 10), b.Int32In(-10, 10), "draw %d", i)
	}
}

func TestInt32In_RespectsBounds(t *testing.T) {
	s := FromSeed(42, 99)
	for i := 0; i < 1000; i++ {
		v := s.Int32In(-10, 10)
		require.GreaterOrEqual(t, v, int32(-10))
		require.LessOrEqual(t, v, int32(10))
	}
	// The full span exercises the power-of-two fast path; every int32 is
	// valid output.
	for i := 0; i < 1000; i++ {
		_ = s.Int32In(math.MinInt32, math.MaxInt32)
	}
}

func TestInt32In_PanicsOnInvalidRange(t *testing.T) {
	s := FromSeed(1, 2)
	assert.Panics(t, func() { s.Int32In(5, 4) })
}

func TestFloat32_Range(t *testing.T) {
	s := FromSeed64(0xC0FFEE)
	for i := 0; i < 10000; i++ {
		f := s.Float32()
		require.GreaterOrEqual(t, f, float32(0))
		require.Less(t, f, float32(1))
	}
}

func TestFloat32_Deterministic(t *testing.T) {
	a := FromSeed64(7)
	b := FromSeed64(7)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Float32(), b.Float32(), "draw %d", i)
	}
}

func TestFromSeed_ZeroStateRemapped(t *testing.T) {
	s := FromSeed(0, 0)
	// The all-zero state would produce only zeros; the remapped state must
	// not.
	var nonzero bool
	for i := 0; i < 4; i++ {
		if s.Uint64() != 0 {
			nonzero = true
		}
	}
	assert.True(t, nonzero)
}

func TestFromSeed64_ExpandsState(t *testing.T) {
	// Adjacent single seeds must not produce adjacent streams.
	a := FromSeed64(1)
	b := FromSeed64(2)
	assert.NotEqual(t, a.Uint64(), b.Uint64())

	// Seeding is part of the frozen behavior: the SplitMix64 expansion of
	// zero is a fixed, documented state.
	z := FromSeed64(0)
	assert.NotEqual(t, uint64(0), z.Uint64())
}
