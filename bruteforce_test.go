package broadphase

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBruteForceTransitions(t *testing.T) {
	rec := newRecorder(t)
	bf := NewBruteForce(rec, 0)

	a := NewBody()
	b := NewBody()
	c := NewBody()
	require.NoError(t, bf.AddObject(a, NewAABB(0, 0, 0, 1, 1, 1)))
	require.NoError(t, bf.AddObject(b, NewAABB(0.5, 0, 0, 1.5, 1, 1)))
	require.NoError(t, bf.AddObject(c, NewAABB(10, 10, 10, 11, 11, 11)))
	require.Equal(t, 1, rec.adds)
	require.True(t, rec.overlapping(a, b))
	require.Equal(t, 3, bf.Count())

	require.NoError(t, bf.UpdateObject(c, NewAABB(0.75, 0, 0, 1.75, 1, 1)))
	require.Equal(t, 3, rec.adds)
	require.True(t, rec.overlapping(a, c))
	require.True(t, rec.overlapping(b, c))

	require.NoError(t, bf.UpdateObject(c, NewAABB(10, 10, 10, 11, 11, 11)))
	require.Equal(t, 2, rec.removes)

	require.NoError(t, bf.RemoveObject(a))
	require.Equal(t, 3, rec.removes)
	require.Empty(t, rec.live)
	require.Equal(t, 2, bf.Count())
}

func TestBruteForceErrors(t *testing.T) {
	rec := newRecorder(t)
	bf := NewBruteForce(rec, 0)

	body := NewBody()
	require.NoError(t, bf.AddObject(body, NewAABB(0, 0, 0, 1, 1, 1)))
	require.ErrorIs(t, bf.AddObject(body, NewAABB(0, 0, 0, 1, 1, 1)), ErrDuplicateBody)
	require.ErrorIs(t, bf.UpdateObject(NewBody(), NewAABB(0, 0, 0, 1, 1, 1)), ErrUnknownBody)
	require.ErrorIs(t, bf.RemoveObject(NewBody()), ErrUnknownBody)
}
