package morton

import "math/bits"

// BitLength returns the position (1-based, 0 for x == 0) of the
// highest set bit of x, i.e. the number of bits needed to represent
// x. For x = Xor(a, b) this names the smallest quadtree node
// containing both a and b.
// Complexity: O(1).
func BitLength(x uint64) int {
	return bits.Len64(x)
}

// CriticalBit returns the index (0-based from the LSB) of the highest
// set bit of x, or -1 if x is zero (a and b were equal). This is the
// split bit the recursive multiplication kernel partitions on.
// Complexity: O(1).
func CriticalBit(x uint64) int {
	return bits.Len64(x) - 1
}
