package scalar

import "fmt"

// MustParseDFix64 is like [ParseDFix64] but panics if the string cannot be
// parsed. It simplifies safe initialization of global variables holding
// fixed-point numbers.
func MustParseDFix64(s string) DFix64 {
	d, err := ParseDFix64(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseDFix64(%q) failed: %v", s, err))
	}
	return d
}

// MustNewDFix64 is like [NewDFix64] but panics if i is out of range.
func MustNewDFix64(i int64) DFix64 {
	d, err := NewDFix64(i)
	if err != nil {
		panic(fmt.Sprintf("MustNewDFix64(%v) failed: %v", i, err))
	}
	return d
}

// MustNewF32Det is like [NewF32Det] but panics if f is not finite.
func MustNewF32Det(f float32) F32Det {
	d, err := NewF32Det(f)
	if err != nil {
		panic(fmt.Sprintf("MustNewF32Det(%v) failed: %v", f, err))
	}
	return d
}

// MustDiv is like [DFix64.Div] but panics if e is zero.
func (d DFix64) MustDiv(e DFix64) DFix64 {
	f, err := d.Div(e)
	if err != nil {
		panic(fmt.Sprintf("MustDiv(%v) failed: %v", e, err))
	}
	return f
}

// MustSqrt is like [DFix64.Sqrt] but panics if d is negative.
func (d DFix64) MustSqrt() DFix64 {
	f, err := d.Sqrt()
	if err != nil {
		panic(fmt.Sprintf("%v.MustSqrt() failed: %v", d, err))
	}
	return f
}

// MustDiv is like [F32Det.Div] but panics if e is zero.
func (d F32Det) MustDiv(e F32Det) F32Det {
	f, err := d.Div(e)
	if err != nil {
		panic(fmt.Sprintf("MustDiv(%v) failed: %v", e, err))
	}
	return f
}

// MustSqrt is like [F32Det.Sqrt] but panics if d is negative.
func (d F32Det) MustSqrt() F32Det {
	f, err := d.Sqrt()
	if err != nil {
		panic(fmt.Sprintf("%v.MustSqrt() failed: %v", d, err))
	}
	return f
}
