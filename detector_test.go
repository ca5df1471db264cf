package broadphase

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectorTracksPairs(t *testing.T) {
	d := NewDetector(0)

	var added, removed int
	d.OnPairAdded = func(a, b *Body) { added++ }
	d.OnPairRemoved = func(a, b *Body) { removed++ }

	a := NewBody()
	b := NewBody()
	require.NoError(t, d.AddBody(a, NewAABB(0, 0, 0, 1, 1, 1)))
	require.NoError(t, d.AddBody(b, NewAABB(0.5, 0, 0, 1.5, 1, 1)))

	require.Equal(t, 2, d.Count())
	require.Equal(t, 1, d.PairCount())
	require.Equal(t, 1, added)
	require.True(t, d.Overlapping(a, b))
	require.True(t, d.Overlapping(b, a))

	pairs := d.OverlappingPairs()
	require.Len(t, pairs, 1)
	require.ElementsMatch(t, []*Body{a, b}, []*Body{pairs[0][0], pairs[0][1]})

	require.NoError(t, d.RemoveBody(b))
	require.Equal(t, 1, removed)
	require.Equal(t, 0, d.PairCount())
	require.False(t, d.Overlapping(a, b))
}

func TestDetectorForwardsErrors(t *testing.T) {
	d := NewDetector(0)

	body := NewBody()
	require.NoError(t, d.AddBody(body, NewAABB(0, 0, 0, 1, 1, 1)))
	require.ErrorIs(t, d.AddBody(body, NewAABB(0, 0, 0, 1, 1, 1)), ErrDuplicateBody)
	require.ErrorIs(t, d.UpdateBody(NewBody(), NewAABB(0, 0, 0, 1, 1, 1)), ErrUnknownBody)
}

func TestDetectorWithBruteForce(t *testing.T) {
	d := NewDetectorWith(func(listener PairListener) BroadPhase {
		return NewBruteForce(listener, 8)
	})

	a := NewBody()
	b := NewBody()
	require.NoError(t, d.AddBody(a, NewAABB(0, 0, 0, 1, 1, 1)))
	require.NoError(t, d.AddBody(b, NewAABB(2, 0, 0, 3, 1, 1)))
	require.Equal(t, 0, d.PairCount())

	require.NoError(t, d.UpdateBody(b, NewAABB(0.5, 0, 0, 1.5, 1, 1)))
	require.Equal(t, 1, d.PairCount())
	require.True(t, d.Overlapping(a, b))
}
