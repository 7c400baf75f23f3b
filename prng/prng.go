// Package prng implements the xoroshiro128+ pseudo-random generator used for
// deterministic simulation timelines.
//
// The generator is not cryptographically secure. Matching seeds produce
// identical sequences on every supported platform, as long as each consumer
// draws values in the same order; the sequence is part of simulation state
// and changing the algorithm is a replay-breaking event (see [AlgoVersion]).
package prng

import (
	"fmt"
	"math"
	"math/bits"
)

// AlgoVersion identifies the bit-exact generator behavior. Bump it only when
// intentionally changing the algorithm or seeding rules, and update the
// golden regression vectors with it.
const AlgoVersion = 1

// splitMixGamma is the SplitMix64 increment, also used as the replacement
// state when both seeds are zero.
const splitMixGamma = 0x9e3779b97f4a7c15

// Source is a stateful xoroshiro128+ generator. It is not safe for
// concurrent use; give each goroutine its own Source or serialize access.
type Source struct {
	s0, s1 uint64
}

// FromSeed constructs a generator from two 64-bit seeds.
//
// An all-zero seed pair is remapped to a fixed non-zero constant: the
// all-zero state is the xoroshiro128+ fixed point and would generate only
// zeros.
func FromSeed(seed0, seed1 uint64) *Source {
	if seed0 == 0 && seed1 == 0 {
		seed0 = splitMixGamma
	}
	return &Source{s0: seed0, s1: seed1}
}

// FromSeed64 constructs a generator from a single 64-bit seed, expanding it
// into the 128-bit state with SplitMix64 so that similar seeds still land in
// unrelated states.
func FromSeed64(seed uint64) *Source {
	s0 := splitmix64(&seed)
	s1 := splitmix64(&seed)
	return FromSeed(s0, s1)
}

func splitmix64(state *uint64) uint64 {
	*state += splitMixGamma
	z := *state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Uint64 returns the next value of the raw 64-bit stream.
func (s *Source) Uint64() uint64 {
	s0, s1 := s.s0, s.s1
	result := s0 + s1

	s1 ^= s0
	s.s0 = bits.RotateLeft64(s0, 55) ^ s1 ^ (s1 << 14)
	s.s1 = bits.RotateLeft64(s1, 36)

	return result
}

// Float32 returns the next float in [0, 1).
//
// The high 23 bits of the stream fill the binary32 mantissa directly, so the
// result is uniform over the 2^23 representable values in [0, 1) and never
// depends on platform float conversion behavior.
func (s *Source) Float32() float32 {
	raw := s.Uint64()
	b := uint32(raw>>41) | 0x3f800000
	return math.Float32frombits(b) - 1
}

// Int32In returns the next integer in the inclusive range [min, max].
// Int32In panics if min > max.
//
// Power-of-two spans mask the stream directly; other spans use rejection
// sampling so no value is favored by modulo bias. The full int32 span is
// supported.
func (s *Source) Int32In(min, max int32) int32 {
	if min > max {
		panic(fmt.Sprintf("prng: invalid range [%d, %d]", min, max))
	}
	span := uint64(int64(max)-int64(min)) + 1
	if span == 1 {
		return min
	}

	var value uint64
	if span&(span-1) == 0 {
		value = s.Uint64() & (span - 1)
	} else {
		bound := math.MaxUint64 - math.MaxUint64%span
		for {
			candidate := s.Uint64()
			if candidate < bound {
				value = candidate % span
				break
			}
		}
	}

	return int32(int64(value) + int64(min))
}
