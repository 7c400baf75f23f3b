package scalar

import "math"

// Float32 renditions of the CORDIC kernels in cordic.go. The shift steps of
// the fixed-point kernels become multiplications by exact powers of two, so
// the only rounding is the IEEE-754 rounding of each addition, which is
// identical on every platform. Iteration counts are fixed; every result in
// every loop iteration passes through an explicit float32 conversion so the
// compiler can never fuse the multiply-add pairs into an FMA.

// cordic32Rounds matches the float32 mantissa: past 24 rounds the rotation
// steps fall below one ulp of the accumulated angle.
const cordic32Rounds = 24

const (
	pi32     = float32(math.Pi)
	halfPi32 = float32(math.Pi / 2)

	// invGain32 is the reciprocal CORDIC gain over cordic32Rounds
	// iterations, rounded to the nearest float32.
	invGain32 = float32(0.6072529350088827)
)

// atan32[i] = atan(2^-i) rounded to the nearest float32.
var atan32 = [cordic32Rounds]float32{
	0.7853981633974483, 0.4636476090008061, 0.24497866312686414, 0.12435499454676144,
	0.06241880999595735, 0.031239833430268277, 0.015623728620476831, 0.007812341060101111,
	0.0039062301319669718, 0.0019531225164788188, 0.0009765621895593195, 0.0004882812111948983,
	0.00024414062014936177, 0.00012207031189367021, 6.103515617420877e-05, 3.0517578115526096e-05,
	1.5258789061315762e-05, 7.62939453110197e-06, 3.814697265606496e-06, 1.907348632810187e-06,
	9.536743164059608e-07, 4.7683715820308884e-07, 2.3841857910155797e-07, 1.1920928955078068e-07,
}

// pow2n32[i] = 2^-i, exact in binary floating point.
var pow2n32 = func() (t [cordic32Rounds]float32) {
	p := float32(1)
	for i := range t {
		t[i] = p
		p /= 2
	}
	return t
}()

// sincos32 returns sine and cosine of the radian angle x, each clamped to
// [-1, 1].
//
// Argument reduction runs in float64: Floor and the arithmetic around it
// are exactly specified IEEE operations, and the extra mantissa bits keep
// the reduced angle accurate for large inputs before the narrowing back to
// float32.
func sincos32(x float32) (sin, cos float32) {
	r := float64(x)
	if r > math.Pi || r <= -math.Pi {
		r -= float64(math.Floor(r/(2*math.Pi)) * (2 * math.Pi))
		// Floor-based reduction lands in [0, 2π); wrap into (-π, π].
		if r > math.Pi {
			r -= 2 * math.Pi
		}
	}

	if r == 0 {
		return 0, 1
	}

	negCos := false
	switch {
	case r > math.Pi/2:
		r = math.Pi - r
		negCos = true
	case r < -math.Pi/2:
		r = -math.Pi - r
		negCos = true
	}

	c, s := cordicRotate32(float32(r))
	if negCos {
		c = float32(-c)
	}
	return clampUnit32(s), clampUnit32(c)
}

// cordicRotate32 rotates (1/gain, 0) by the radian angle z, which must be
// within [-π/2, π/2], returning cosine in x and sine in y.
func cordicRotate32(z float32) (x, y float32) {
	x = invGain32
	for i := 0; i < cordic32Rounds; i++ {
		p := pow2n32[i]
		dx, dy := float32(x*p), float32(y*p)
		if z >= 0 {
			x, y, z = float32(x-dy), float32(y+dx), float32(z-atan32[i])
		} else {
			x, y, z = float32(x+dy), float32(y-dx), float32(z+atan32[i])
		}
	}
	return x, y
}

// atan232 returns the angle of the vector (x, y) in (-π, π].
// atan232(0, 0) is 0.
func atan232(y, x float32) float32 {
	if y == 0 {
		if x < 0 {
			return pi32
		}
		return 0
	}
	if x == 0 {
		if y < 0 {
			return float32(-halfPi32)
		}
		return halfPi32
	}

	// Scale very large operands down by an exact power of two so the
	// CORDIC gain cannot push the intermediates to infinity. atan2
	// depends only on the ratio, so the scaling is free.
	if ax, ay := abs32(x), abs32(y); ax > 0x1p96 || ay > 0x1p96 {
		x = float32(x * 0x1p-32)
		y = float32(y * 0x1p-32)
	}

	var offset float32
	if x < 0 {
		if y >= 0 {
			offset = pi32
		} else {
			offset = float32(-pi32)
		}
		x, y = float32(-x), float32(-y)
	}

	var z float32
	for i := 0; i < cordic32Rounds; i++ {
		p := pow2n32[i]
		dx, dy := float32(x*p), float32(y*p)
		if y >= 0 {
			x, y, z = float32(x+dy), float32(y-dx), float32(z+atan32[i])
		} else {
			x, y, z = float32(x-dy), float32(y+dx), float32(z-atan32[i])
		}
	}

	z = float32(z + offset)
	switch {
	case z > pi32:
		z = pi32
	case z <= -pi32:
		z = float32(z + float32(2*math.Pi))
	}
	return z
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func clampUnit32(v float32) float32 {
	switch {
	case v > 1:
		return 1
	case v < -1:
		return -1
	}
	return v
}
