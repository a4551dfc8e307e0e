// Package morton packs and unpacks 2-D (row, col) coordinates into a
// single 64-bit Morton (Z-order) code, and provides the branch-free
// comparisons and bit-level primitives the multiplication kernel in
// package zmat relies on.
//
// Bit convention: bit 2i of the code holds bit i of col, bit 2i+1
// holds bit i of row. Lexicographic (unsigned) order on codes therefore
// coincides with a pre-order traversal of the implicit quadtree over
// the (row, col) plane: the highest differing bit between two codes
// names the smallest quadrant containing both.
package morton
