/*
Package scalar implements deterministic scalar arithmetic for lockstep
simulations, networked state synchronization, and reproducible numerical
pipelines: a small set of immutable value types guaranteed to produce
bit-identical results across machines, compilers, and optimization levels.

# Capability levels

Three generic interfaces classify what a numeric type can do:

  - [Scalar]: the four arithmetic operations, negation, comparison, and the
    two identities.
  - [Real]: [Scalar] plus Abs, Min, Max, Clamp, Sqrt, and Rsqrt.
  - [Trig]: [Real] plus Sin, Cos, SinCos, Tan, Asin, Acos, and Atan2.

Generic code declares the smallest level it needs. A physics integrator, for
example, wants [Real]; only code that rotates needs [Trig].

# Determinism markers

Two marker interfaces classify a type's reproducibility guarantee:

  - [Deterministic]: identical inputs give bit-identical results on every
    supported platform and build.
  - [Nondet]: results may vary across platforms, compilers, or optimization
    levels.

Every concrete type carries exactly one marker, and the marker methods are
unexported, so the classification is sealed inside this package. Generic
code that must be reproducible constrains itself with [DetScalar],
[DetReal], or [DetTrig]; handing such code a non-deterministic type is a
compile error, not a runtime check. This gate is the load-bearing safety
property of the package: a render-only scalar cannot leak into a simulation
step by accident.

# Concrete types

[DFix64] is the canonical deterministic scalar: a signed Q31.32 fixed-point
number over int64 storage. All arithmetic computes in a 128-bit intermediate
width, rounds half to even, and saturates to [MaxDFix64] or [MinDFix64]
instead of wrapping. Square root and trigonometry run on fixed-iteration
integer kernels (a 64-round restoring root, 32-round CORDIC) compiled into
every build.

[F32Det] wraps a float32 and restricts it to the operation subset that
IEEE-754 makes bit-reproducible. Basic arithmetic delegates to the hardware;
explicit float32 conversions on every result keep the compiler from fusing
operations. Trigonometry reuses the CORDIC kernels over float32 storage and
never calls the platform math library.

[F32] adapts the native float32 with the full capability stack and the
[Nondet] marker, for rendering and other approximate consumers.

# Errors

All operations are panic-free and pure. Errors are returned in the
following cases:

  - Division by zero. Div returns [ErrDivisionByZero] instead of panicking
    or producing an infinity.

  - Negative square root. Sqrt and Rsqrt return [ErrNegativeSqrt] instead
    of a NaN.

  - Domain violations. Asin and Acos return [ErrRange] for arguments
    outside [-1, 1].

  - Invalid construction. The validated constructors return
    [ErrInvalidNumber] for malformed strings, NaNs, and infinities, and
    [ErrRange] for values outside the representable range.

Errors are not returned for arithmetic overflow: fixed-point results
saturate deterministically, and the Checked operation variants report
whether clamping occurred without changing control flow.

# Concurrency

All types are immutable values with no shared state; every operation is a
pure function of its inputs, allocates nothing, and is safe to call from
any number of goroutines without coordination.
*/
package scalar
