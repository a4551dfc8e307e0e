// Package ring gives a matrix's element type the capability to add,
// subtract, multiply, and test for the additive identity. Because Go
// cannot attach arithmetic methods to external types like float64 or
// complex128, the capability is passed as an explicit dictionary
// value (a Ring[T]) rather than required as a method set on T — the
// same dictionary-passing shape used elsewhere for heap.Interface and
// for functional-options Option[T].
//
// Ring[T] also covers storage strategy: Go generics already give
// contiguous, unboxed backing for primitive T (float64, complex128,
// …), and a composite T (including Matrix[T] itself, see zmat's
// MatrixRing) simply stores by value or pointer as any other generic
// slice element would — no separate boxed/unboxed array type is
// needed.
package ring
