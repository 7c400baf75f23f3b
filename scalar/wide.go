package scalar

import "math/bits"

// This file holds the wide-integer kernels behind DFix64. All intermediate
// arithmetic runs in 128 bits on unsigned magnitudes; signs are carried
// separately and reapplied when the result is narrowed back to 64 bits.

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = [...]uint64{
	1,                          // 10^0
	10,                         // 10^1
	100,                        // 10^2
	1_000,                      // 10^3
	10_000,                     // 10^4
	100_000,                    // 10^5
	1_000_000,                  // 10^6
	10_000_000,                 // 10^7
	100_000_000,                // 10^8
	1_000_000_000,              // 10^9
	10_000_000_000,             // 10^10
	100_000_000_000,            // 10^11
	1_000_000_000_000,          // 10^12
	10_000_000_000_000,         // 10^13
	100_000_000_000_000,        // 10^14
	1_000_000_000_000_000,      // 10^15
	10_000_000_000_000_000,     // 10^16
	100_000_000_000_000_000,    // 10^17
	1_000_000_000_000_000_000,  // 10^18
	10_000_000_000_000_000_000, // 10^19
}

// magnitude returns |x| as a uint64. It is total: the magnitude of
// math.MinInt64 is 1<<63, which does not fit an int64 but fits a uint64.
func magnitude(x int64) uint64 {
	u := uint64(x)
	if x < 0 {
		u = -u
	}
	return u
}

// mulShift32 calculates round(x * y / 2^32) on magnitudes, rounding half to
// even, and reports overflow past 64 bits.
func mulShift32(x, y uint64) (z uint64, ok bool) {
	hi, lo := bits.Mul64(x, y)
	if hi>>32 != 0 {
		return 0, false
	}
	z = hi<<32 | lo>>32
	rem := lo & (1<<32 - 1)
	const half = 1 << 31
	if rem > half || (rem == half && z&1 == 1) {
		if z == maxUint64 {
			return 0, false
		}
		z++
	}
	return z, true
}

// divShift32 calculates round(x * 2^32 / y) on magnitudes, rounding half to
// even, and reports overflow past 64 bits. y must not be zero.
func divShift32(x, y uint64) (z uint64, ok bool) {
	hi, lo := x>>32, x<<32
	if hi >= y {
		return 0, false
	}
	z, rem := bits.Div64(hi, lo, y)
	// Compare rem against y/2 as rem vs y-rem; doubling rem could wrap.
	if rem > y-rem || (rem == y-rem && z&1 == 1) {
		if z == maxUint64 {
			return 0, false
		}
		z++
	}
	return z, true
}

// divPow10 calculates round(x * 2^32 / 10^shift), rounding half to even,
// and reports overflow past 64 bits. shift must be within the pow10 table.
func divPow10(x uint64, shift int) (z uint64, ok bool) {
	hi, lo := bits.Mul64(x, 1<<32)
	y := pow10[shift]
	if hi >= y {
		return 0, false
	}
	z, rem := bits.Div64(hi, lo, y)
	// 10^19 exceeds 1<<63, so 2*rem can wrap; compare rem against y-rem.
	if rem > y-rem || (rem == y-rem && z&1 == 1) {
		if z == maxUint64 {
			return 0, false
		}
		z++
	}
	return z, true
}

// fsa (Fused Shift and Addition) calculates x * 10 + b and checks overflow.
func fsa(x uint64, b byte) (z uint64, ok bool) {
	if x > (maxUint64-uint64(b))/10 {
		return 0, false
	}
	return x*10 + uint64(b), true
}

const maxUint64 = 1<<64 - 1

// sqrtShift32 calculates the square root of the Q31.32 value with magnitude
// x, returning the Q31.32 magnitude of the result rounded to nearest.
//
// The radicand is widened to x * 2^32 and the root extracted with a
// restoring (digit-by-digit) iteration. The loop runs a fixed 64 rounds
// regardless of input, so execution cost and result are data-independent.
func sqrtShift32(x uint64) uint64 {
	hi, lo := x>>32, x<<32
	var root, rem uint64
	for i := 0; i < 64; i++ {
		rem = rem<<2 | hi>>62
		hi = hi<<2 | lo>>62
		lo <<= 2
		root <<= 1
		if d := root*2 + 1; rem >= d {
			rem -= d
			root++
		}
	}
	// The loop yields the floor; (root+1)^2 overshoots the radicand by
	// 2*root+1-rem, so rem > root means root+1 is the nearer value.
	if rem > root {
		root++
	}
	return root
}
