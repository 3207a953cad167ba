package meshtesting

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-meshdofs/dofs"
	"github.com/forestrie/go-meshdofs/tria"
)

func TestEnumerate(t *testing.T) {
	square, err := UnitSquare(2)
	require.NoError(t, err)
	interval, err := UnitInterval(3)
	require.NoError(t, err)

	tests := []struct {
		name string
		tr   *tria.Triangulation
		dpv  int
		dpl  int
		dpq  int
		want int
	}{
		{name: "q1 square", tr: square, dpv: 1, want: 9},
		{name: "q2 square", tr: square, dpv: 1, dpl: 1, dpq: 1, want: 25},
		{name: "dgq0 square", tr: square, dpq: 1, want: 4},
		{name: "q1 interval", tr: interval, dpv: 1, want: 5},
		{name: "q2 interval", tr: interval, dpv: 1, dpl: 1, want: 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := NewTestContext(t, TestConfig{TestLabelPrefix: "enumerate"})
			h := tc.NewHandler(tt.tr, Element(tt.tr.Dim(), tt.dpv, tt.dpl, tt.dpq), true)
			n, err := Enumerate(h)
			require.NoError(t, err)
			require.Equal(t, tt.want, n)
			require.Equal(t, tt.want, h.NDofs())

			// every active cell is fully numbered and every index is reached
			seen := make([]bool, n)
			for c := range h.Cells(dofs.FilterActive) {
				total, err := c.NDofs()
				require.NoError(t, err)
				out := make([]int, total)
				require.NoError(t, c.DofIndices(out))
				for _, index := range out {
					require.GreaterOrEqual(t, index, 0)
					require.Less(t, index, n)
					seen[index] = true
				}
			}
			for i, ok := range seen {
				require.True(t, ok, "dof %d", i)
			}
		})
	}
}
