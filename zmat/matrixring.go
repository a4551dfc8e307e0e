package zmat

import "github.com/katalvlaran/zmorton/ring"

// MatrixRing makes Matrix[T] itself a ring.Ring[Matrix[T]], so a
// Matrix[Matrix[T]] (blocks of blocks) can be built and multiplied by
// the same kernel with no changes — recursive matrix-of-matrix
// algebra. Width fixes the dimension One() builds its identity block
// at; Inner is the element-type Ring new blocks (Zero, One) are
// constructed with.
type MatrixRing[T any] struct {
	Inner ring.Ring[T]
	Width int
}

func (mr MatrixRing[T]) Add(a, b Matrix[T]) Matrix[T] { return Add(a, b) }
func (mr MatrixRing[T]) Sub(a, b Matrix[T]) Matrix[T] { return Sub(a, b) }
func (mr MatrixRing[T]) Mul(a, b Matrix[T]) Matrix[T] { return Mul(a, b) }

func (mr MatrixRing[T]) Zero() Matrix[T] { return Empty(mr.Inner) }

func (mr MatrixRing[T]) One() Matrix[T] {
	m, err := Identity(mr.Inner, mr.Width)
	if err != nil {
		// Width is fixed at construction time by the caller of
		// MatrixRing; an invalid value here is a programmer error,
		// not a runtime condition callers can recover from.
		panic(err)
	}
	return m
}

func (mr MatrixRing[T]) IsZero(v Matrix[T]) bool { return v.IsEmpty() }

func (mr MatrixRing[T]) FromInteger(n int64) (Matrix[T], error) {
	if n != 0 {
		return Matrix[T]{}, ring.ErrUnsupportedFromInteger
	}
	return mr.Zero(), nil
}
