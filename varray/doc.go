// Package varray implements the parallel-array container that
// realizes a sparse matrix's stored entries as two equal-length,
// Morton-sorted slices — keys and values — supporting binary-search
// point access, O(1) contiguous splits, and the bit-targeted splits
// the recursive multiplication kernel needs.
//
// Array[T] shares its backing slices on every split (Go slice headers
// already provide this for free), so recursive multiplication stays
// O(result-size) in allocation rather than O(operand-size) per level.
package varray
