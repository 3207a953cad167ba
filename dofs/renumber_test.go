package dofs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-meshdofs/dofs"
	"github.com/forestrie/go-meshdofs/meshtesting"
)

// cellIndices gathers DofIndices of every active cell in iterator order.
func cellIndices(t *testing.T, h *dofs.Handler) [][]int {
	var all [][]int
	for c := range h.Cells(dofs.FilterActive) {
		n, err := c.NDofs()
		require.NoError(t, err)
		out := make([]int, n)
		require.NoError(t, c.DofIndices(out))
		all = append(all, out)
	}
	return all
}

func TestRenumberReverses(t *testing.T) {
	tc := newTestContext(t)
	tr, err := meshtesting.UnitSquare(2)
	require.NoError(t, err)
	h := tc.NumberedHandler(tr, meshtesting.Element(2, 1, 1, 1))
	n := h.NDofs()

	before := cellIndices(t, h)
	reverse := make([]int, n)
	for i := range reverse {
		reverse[i] = n - 1 - i
	}
	require.NoError(t, h.Renumber(reverse))

	after := cellIndices(t, h)
	require.Len(t, after, len(before))
	for c := range before {
		for k := range before[c] {
			require.Equal(t, n-1-before[c][k], after[c][k])
		}
	}
	require.Equal(t, n, h.NDofs())
}

func TestRenumberRejectsBadPermutation(t *testing.T) {
	tc := newTestContext(t)
	tr, err := meshtesting.UnitInterval(2)
	require.NoError(t, err)
	h := tc.NumberedHandler(tr, meshtesting.Element(1, 1, 0, 0))
	require.Equal(t, 3, h.NDofs())
	before := cellIndices(t, h)

	require.ErrorIs(t, h.Renumber([]int{0, 1}), dofs.ErrSizeMismatch)
	require.ErrorIs(t, h.Renumber([]int{0, 0, 1}), dofs.ErrIndexOutOfRange)
	require.ErrorIs(t, h.Renumber([]int{0, 1, 3}), dofs.ErrIndexOutOfRange)

	require.Equal(t, before, cellIndices(t, h))
}
