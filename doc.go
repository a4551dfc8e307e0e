// Package zmorton stores sparse two-dimensional matrices in Morton
// (Z-order) key order and multiplies them by descending an implicit
// quadtree over that order, without ever materializing a dense
// intermediate or an explicit tree.
//
// The core is three tightly coupled subsystems, each its own package:
//
//	morton  — bit-interleave a (row, col) pair into a 64-bit Morton
//	          code; lexicographic order on codes is pre-order
//	          quadtree traversal.
//	varray  — the sorted (keys, values) container: binary-search
//	          lookup, O(1) contiguous split along a chosen bit.
//	zmat    — the matrix façade (construction, arithmetic) and the
//	          go11/go12/go21/go22 recursive multiplication kernel
//	          that picks a split bit, recurses into two halves, and
//	          combines them by concatenation ("fby") or merge-add,
//	          never both at once.
//
// zstream and pqueue are the plumbing underneath: a pull-driven
// stream merge for addition, and a min-heap merge that orders a
// multiplication's partial products and coalesces equal keys into one
// sorted result. The kernel computes every partial product as soon as
// Mul is called; the heaps then only order and coalesce them.
//
// Matrices are immutable values. Every operation — Add, Sub, Mul,
// Transpose, MapValues — returns a new Matrix; none mutates its
// receiver or arguments. Element types are supplied a ring.Ring[T]
// dictionary explicitly (Float64Ring, Int64Ring, Complex128Ring, or a
// zmat.MatrixRing[T] for matrix-of-matrix composition) rather than
// via a method set, since Go generics can't attach arithmetic methods
// to primitive types like float64.
package zmorton
