package zmat

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/zmorton/morton"
)

// String renders m as its sorted triplet list, e.g.
// "zmat.Matrix{(0,0):1 (1,1):2}" — a debugging aid, not part of m's
// algebraic surface.
func (m Matrix[T]) String() string {
	var b strings.Builder
	b.WriteString("zmat.Matrix{")
	keys, vals := m.Keys(), m.Values()
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "(%d,%d):%v", k.Row, k.Col, vals[i])
	}
	b.WriteByte('}')
	return b.String()
}

// GoString additionally reports the critical bit of m's span — the
// 0-based index of the highest set bit of the XOR of m's low and high
// key codes, which names the smallest quadtree node that bounds every
// stored entry — since that span is exactly what the multiplication
// kernel bisects on. A single-entry matrix reports bit -1.
func (m Matrix[T]) GoString() string {
	if m.IsEmpty() {
		return "zmat.Matrix{} /* empty, no bounding quadrant */"
	}
	span := morton.Xor(m.LowKey().Code, m.HighKey().Code)
	return fmt.Sprintf("%s /* bounding quadrant: bit %d */", m.String(), morton.CriticalBit(span))
}
