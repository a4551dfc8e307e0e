package zmat_test

import (
	"testing"

	"github.com/katalvlaran/zmorton/morton"
	"github.com/katalvlaran/zmorton/ring"
	"github.com/katalvlaran/zmorton/zmat"
	"github.com/stretchr/testify/require"
)

func entries(coords ...[2]uint32) []zmat.Entry[float64] {
	out := make([]zmat.Entry[float64], len(coords))
	for i, c := range coords {
		out[i] = zmat.Entry[float64]{Key: morton.NewKey(c[0], c[1]), Val: float64(i + 1)}
	}
	return out
}

func TestEmpty_HasNoEntries(t *testing.T) {
	m := zmat.Empty[float64](ring.Float64Ring{})
	require.True(t, m.IsEmpty())
	require.Equal(t, 0, m.Size())
}

func TestSingleton_HasOneEntry(t *testing.T) {
	m := zmat.Singleton(ring.Float64Ring{}, morton.NewKey(2, 3), 5.0)
	require.Equal(t, 1, m.Size())
	v, ok := m.Lookup(morton.NewKey(2, 3))
	require.True(t, ok)
	require.Equal(t, 5.0, v)
}

func TestIdentity_FourByFourDiagonal(t *testing.T) {
	// size 4, diagonal ones in ascending key order.
	m, err := zmat.Identity(ring.Float64Ring{}, 4)
	require.NoError(t, err)
	require.Equal(t, 4, m.Size())

	wantKeys := []morton.Key{morton.NewKey(0, 0), morton.NewKey(1, 1), morton.NewKey(2, 2), morton.NewKey(3, 3)}
	require.Equal(t, wantKeys, m.Keys())
	for _, v := range m.Values() {
		require.Equal(t, 1.0, v)
	}
}

func TestIdentity_RejectsNegativeWidth(t *testing.T) {
	_, err := zmat.Identity[float64](ring.Float64Ring{}, -1)
	require.ErrorIs(t, err, zmat.ErrInvalidDimension)
}

func TestIdentity_Zero(t *testing.T) {
	m, err := zmat.Identity(ring.Float64Ring{}, 0)
	require.NoError(t, err)
	require.True(t, m.IsEmpty())
}

func TestFromList_SortsAndDefaultsToKeepLast(t *testing.T) {
	unsorted := []zmat.Entry[float64]{
		{Key: morton.NewKey(5, 5), Val: 1},
		{Key: morton.NewKey(0, 0), Val: 2},
		{Key: morton.NewKey(0, 0), Val: 3},
	}
	m, err := zmat.FromList(ring.Float64Ring{}, unsorted)
	require.NoError(t, err)
	require.Equal(t, 2, m.Size())
	v, ok := m.Lookup(morton.NewKey(0, 0))
	require.True(t, ok)
	require.Equal(t, 3.0, v) // later occurrence wins
}

func TestFromList_KeepFirst(t *testing.T) {
	unsorted := []zmat.Entry[float64]{
		{Key: morton.NewKey(0, 0), Val: 2},
		{Key: morton.NewKey(0, 0), Val: 3},
	}
	m, err := zmat.FromList(ring.Float64Ring{}, unsorted, zmat.WithKeepFirst())
	require.NoError(t, err)
	v, ok := m.Lookup(morton.NewKey(0, 0))
	require.True(t, ok)
	require.Equal(t, 2.0, v)
}

func TestFromList_ErrorOnDuplicate(t *testing.T) {
	unsorted := []zmat.Entry[float64]{
		{Key: morton.NewKey(0, 0), Val: 2},
		{Key: morton.NewKey(0, 0), Val: 3},
	}
	_, err := zmat.FromList(ring.Float64Ring{}, unsorted, zmat.WithErrorOnDuplicate())
	require.ErrorIs(t, err, zmat.ErrDuplicateKey)
}

func TestTranspose_InvolutionAndSwapsCoords(t *testing.T) {
	m, err := zmat.FromList(ring.Float64Ring{}, entries([2]uint32{0, 1}, [2]uint32{1, 0}, [2]uint32{2, 2}))
	require.NoError(t, err)

	tr := zmat.Transpose(m)
	v, ok := tr.Lookup(morton.NewKey(1, 0))
	require.True(t, ok)
	require.Equal(t, 1.0, v) // was at (0,1)

	require.Equal(t, m.Keys(), zmat.Transpose(tr).Keys())
	require.Equal(t, m.Values(), zmat.Transpose(tr).Values())
}

func TestAdd_DisjointAndOverlappingKeys(t *testing.T) {
	a, err := zmat.FromList(ring.Float64Ring{}, []zmat.Entry[float64]{
		{Key: morton.NewKey(0, 0), Val: 1}, {Key: morton.NewKey(1, 1), Val: 2},
	})
	require.NoError(t, err)
	b, err := zmat.FromList(ring.Float64Ring{}, []zmat.Entry[float64]{
		{Key: morton.NewKey(0, 0), Val: 10}, {Key: morton.NewKey(2, 2), Val: 3},
	})
	require.NoError(t, err)

	sum := zmat.Add(a, b)
	require.Equal(t, 3, sum.Size())
	v00, _ := sum.Lookup(morton.NewKey(0, 0))
	require.Equal(t, 11.0, v00)
	v11, _ := sum.Lookup(morton.NewKey(1, 1))
	require.Equal(t, 2.0, v11)
	v22, _ := sum.Lookup(morton.NewKey(2, 2))
	require.Equal(t, 3.0, v22)
}

func TestAdd_OppositeValuesThinToZero(t *testing.T) {
	a := zmat.Singleton(ring.Float64Ring{}, morton.NewKey(0, 0), 1.0)
	b := zmat.Singleton(ring.Float64Ring{}, morton.NewKey(0, 0), -1.0)
	require.True(t, zmat.Add(a, b).IsEmpty())
}

func TestAdd_IdentityLaw(t *testing.T) {
	a, err := zmat.FromList(ring.Float64Ring{}, entries([2]uint32{0, 0}, [2]uint32{1, 1}))
	require.NoError(t, err)
	empty := zmat.Empty[float64](ring.Float64Ring{})
	require.Equal(t, a.Keys(), zmat.Add(a, empty).Keys())
	require.Equal(t, a.Values(), zmat.Add(a, empty).Values())
	require.Equal(t, a.Keys(), zmat.Add(empty, a).Keys())
}

func TestNegate_FlipsValues(t *testing.T) {
	a, err := zmat.FromList(ring.Float64Ring{}, entries([2]uint32{0, 0}, [2]uint32{1, 1}))
	require.NoError(t, err)
	neg := zmat.Negate(a)
	for i, v := range a.Values() {
		require.Equal(t, -v, neg.Values()[i])
	}
}

func TestEachValue_VisitsInAscendingOrder(t *testing.T) {
	a, err := zmat.FromList(ring.Float64Ring{}, entries([2]uint32{3, 3}, [2]uint32{0, 0}))
	require.NoError(t, err)
	var seen []morton.Key
	a.EachValue(func(k morton.Key, _ float64) { seen = append(seen, k) })
	require.Equal(t, a.Keys(), seen)
}
