package scalar_test

import (
	"fmt"

	"github.com/flyingrobots/echo-math/scalar"
)

func ExampleParseDFix64() {
	d, err := scalar.ParseDFix64("1.5")
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output: 1.5
}

func ExampleDFix64_Add() {
	a := scalar.MustParseDFix64("1.5")
	b := scalar.MustParseDFix64("2.25")
	fmt.Println(a.Add(b))
	// Output: 3.75
}

func ExampleDFix64_Sqrt() {
	d := scalar.MustParseDFix64("4")
	r, err := d.Sqrt()
	if err != nil {
		panic(err)
	}
	fmt.Println(r)
	// Output: 2
}

func ExampleDFix64_Div() {
	a := scalar.MustParseDFix64("3.75")
	b := scalar.MustParseDFix64("1.5")
	q, err := a.Div(b)
	if err != nil {
		panic(err)
	}
	fmt.Println(q)
	// Output: 2.5
}

func ExampleDFix64_SinCos() {
	sin, cos := scalar.DFix64{}.SinCos()
	fmt.Println(sin, cos)
	// Output: 0 1
}

func ExampleNewF32Det() {
	d, err := scalar.NewF32Det(1.5)
	if err != nil {
		panic(err)
	}
	fmt.Println(d.Mul(d))
	// Output: 2.25
}
