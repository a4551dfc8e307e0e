// Package zmat is the matrix façade and recursive multiplication
// kernel: it layers construction, point access, and elementwise
// arithmetic over varray.Array, and implements quadtree-style
// multiplication directly on Morton-ordered storage via the
// go11/go12/go21/go22 split-bit dispatch.
//
// A Matrix[T] is never mutated after construction; every operation
// below returns a new value. The element type T is polymorphic over
// a ring.Ring[T] supplied explicitly at construction time (dictionary
// passing, matching ring's design — see ring/doc.go), which is what
// lets Matrix[T] itself become a ring.Ring[Matrix[T]] via MatrixRing
// and compose as matrix-of-matrix without any change to the kernel.
package zmat
