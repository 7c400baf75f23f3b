// This file is not part of the build. It documents the compile-time
// determinism gate: instantiating a Deterministic-constrained function with
// the native float adapter must be rejected by the compiler.
//
//	go build nondet_gate.go
//	F32 does not satisfy scalar.DetTrig[scalar.F32]
//	(missing method deterministicScalar)
package main

import (
	"fmt"

	"github.com/flyingrobots/echo-math/scalar"
)

func heading[T scalar.DetTrig[T]](y, x T) T {
	return y.Atan2(x)
}

func main() {
	fmt.Println(heading(scalar.F32(0), scalar.F32(1)))
}
