package zstream_test

import (
	"testing"

	"github.com/katalvlaran/zmorton/morton"
	"github.com/katalvlaran/zmorton/zstream"
	"github.com/stretchr/testify/require"
)

func keys(pairs ...[2]uint32) []morton.Key {
	out := make([]morton.Key, len(pairs))
	for i, p := range pairs {
		out[i] = morton.NewKey(p[0], p[1])
	}
	return out
}

func nonZeroAdd(a, b float64) (float64, bool) {
	s := a + b
	return s, s != 0
}

func TestMerge_DisjointKeysPassThrough(t *testing.T) {
	l := zstream.FromSlice(keys([2]uint32{0, 0}, [2]uint32{2, 2}), []float64{1, 3})
	r := zstream.FromSlice(keys([2]uint32{1, 1}), []float64{2})

	ks, vs := zstream.ToSlices(zstream.Merge(l, r, nonZeroAdd))
	require.Len(t, ks, 3)
	require.Equal(t, []float64{1, 2, 3}, vs)
	for i := 0; i < len(ks)-1; i++ {
		require.Less(t, ks[i].Code, ks[i+1].Code)
	}
}

func TestMerge_CollidingKeysCombine(t *testing.T) {
	l := zstream.FromSlice(keys([2]uint32{0, 0}), []float64{1})
	r := zstream.FromSlice(keys([2]uint32{0, 0}), []float64{10})

	ks, vs := zstream.ToSlices(zstream.Merge(l, r, nonZeroAdd))
	require.Len(t, ks, 1)
	require.Equal(t, 11.0, vs[0])
}

func TestMerge_ZeroThinning(t *testing.T) {
	l := zstream.FromSlice(keys([2]uint32{0, 0}), []float64{1})
	r := zstream.FromSlice(keys([2]uint32{0, 0}), []float64{-1})

	ks, _ := zstream.ToSlices(zstream.Merge(l, r, nonZeroAdd))
	require.Empty(t, ks)
}

func TestMerge_EmptySides(t *testing.T) {
	l := zstream.FromSlice(keys([2]uint32{0, 0}), []float64{1})
	ks, vs := zstream.ToSlices(zstream.Merge(l, zstream.Empty[float64](), nonZeroAdd))
	require.Len(t, ks, 1)
	require.Equal(t, 1.0, vs[0])

	ks2, vs2 := zstream.ToSlices(zstream.Merge(zstream.Empty[float64](), l, nonZeroAdd))
	require.Len(t, ks2, 1)
	require.Equal(t, 1.0, vs2[0])
}

func TestCombineAlways_KeepsEvenZero(t *testing.T) {
	l := zstream.FromSlice(keys([2]uint32{0, 0}), []float64{1})
	r := zstream.FromSlice(keys([2]uint32{0, 0}), []float64{-1})
	combine := zstream.CombineAlways(func(a, b float64) float64 { return a + b })

	ks, vs := zstream.ToSlices(zstream.Merge(l, r, combine))
	require.Len(t, ks, 1)
	require.Equal(t, 0.0, vs[0])
}
