package dofs_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/forestrie/go-meshdofs/dofs"
	"github.com/forestrie/go-meshdofs/meshtesting"
	"github.com/forestrie/go-meshdofs/tria"
)

// numberedInterval returns a single cell with dofs [3, 7, 1] and n_dofs 8.
func numberedInterval(t *testing.T) (*dofs.Handler, dofs.CellAccessor) {
	tc := newTestContext(t)
	tr, err := meshtesting.UnitInterval(1)
	require.NoError(t, err)
	h := tc.NewHandler(tr, meshtesting.Element(1, 1, 1, 0), true)
	c, err := h.Cell(tria.Position{})
	require.NoError(t, err)
	require.NoError(t, c.SetVertexDofIndex(0, 0, 3))
	require.NoError(t, c.SetVertexDofIndex(1, 0, 7))
	require.NoError(t, c.SetDofIndex(0, 1))
	require.NoError(t, h.SetNDofs(8))
	return h, c
}

func TestDofValues(t *testing.T) {
	_, c := numberedInterval(t)
	global := mat.NewVecDense(8, []float64{0, 10, 20, 30, 40, 50, 60, 70})

	out := make([]float64, 3)
	require.NoError(t, c.DofValues(global, out))
	require.Equal(t, []float64{30, 70, 10}, out)

	require.ErrorIs(t, c.DofValues(global, make([]float64, 2)), dofs.ErrSizeMismatch)
	require.ErrorIs(t, c.DofValues(mat.NewVecDense(7, nil), out), dofs.ErrSizeMismatch)
}

func TestDofValuesUnassigned(t *testing.T) {
	tc := newTestContext(t)
	tr, err := meshtesting.UnitInterval(1)
	require.NoError(t, err)
	h := tc.NewHandler(tr, meshtesting.Element(1, 1, 1, 0), true)
	require.NoError(t, h.SetNDofs(8))
	c, err := h.Cell(tria.Position{})
	require.NoError(t, err)

	err = c.DofValues(mat.NewVecDense(8, nil), make([]float64, 3))
	require.ErrorIs(t, err, dofs.ErrNotNumbered)
	require.ErrorIs(t, err, dofs.ErrIndexOutOfRange)
}

func TestSetDofValues(t *testing.T) {
	_, c := numberedInterval(t)
	global := mat.NewVecDense(8, nil)

	require.NoError(t, c.SetDofValues([]float64{1, 2, 3}, global))
	require.Equal(t, []float64{0, 3, 0, 1, 0, 0, 0, 2}, global.RawVector().Data)

	// overwrites rather than adds
	require.NoError(t, c.SetDofValues([]float64{1, 2, 3}, global))
	require.Equal(t, 3.0, global.AtVec(1))

	require.ErrorIs(t, c.SetDofValues([]float64{1, 2}, global), dofs.ErrSizeMismatch)
	require.ErrorIs(t, c.SetDofValues([]float64{1, 2, 3}, mat.NewVecDense(9, nil)), dofs.ErrSizeMismatch)
}

func TestDistributeLocalToGlobal(t *testing.T) {
	tc := newTestContext(t)
	tr, err := meshtesting.UnitSquare(2)
	require.NoError(t, err)
	h := tc.NumberedHandler(tr, meshtesting.Element(2, 1, 0, 0))
	require.Equal(t, 9, h.NDofs())

	global := mat.NewVecDense(h.NDofs(), nil)
	ones := []float64{1, 1, 1, 1}
	for c := range h.Cells(dofs.FilterActive) {
		require.NoError(t, c.DistributeLocalToGlobal(ones, global))
	}

	// each vertex receives one contribution per cell touching it: four
	// corners, four edge midpoints and the center
	require.Equal(t, 16.0, mat.Sum(global))
	counts := map[float64]int{}
	for i := 0; i < global.Len(); i++ {
		counts[global.AtVec(i)]++
	}
	require.Equal(t, map[float64]int{1: 4, 2: 4, 4: 1}, counts)

	first, err := h.Cell(tria.Position{Level: 1, Index: 0})
	require.NoError(t, err)
	require.NoError(t, first.SetDofValues([]float64{5, 5, 5, 5}, global))
	out := make([]float64, 4)
	require.NoError(t, first.DofValues(global, out))
	require.Equal(t, []float64{5, 5, 5, 5}, out)
}

func TestScatterFailureLeavesGlobalUnchanged(t *testing.T) {
	tc := newTestContext(t)
	tr, err := meshtesting.UnitInterval(1)
	require.NoError(t, err)
	h := tc.NewHandler(tr, meshtesting.Element(1, 1, 1, 0), true)
	c, err := h.Cell(tria.Position{})
	require.NoError(t, err)
	// vertex 1 and the line dof stay unassigned
	require.NoError(t, c.SetVertexDofIndex(0, 0, 3))
	require.NoError(t, h.SetNDofs(8))

	global := mat.NewVecDense(8, nil)
	err = c.DistributeLocalToGlobal([]float64{1, 1, 1}, global)
	require.ErrorIs(t, err, dofs.ErrNotNumbered)
	require.Equal(t, 0.0, mat.Sum(global))

	err = c.SetDofValues([]float64{1, 1, 1}, global)
	require.ErrorIs(t, err, dofs.ErrNotNumbered)
	require.Equal(t, 0.0, mat.Sum(global))

	out := []float64{-1, -1, -1}
	require.ErrorIs(t, c.DofValues(global, out), dofs.ErrNotNumbered)
	require.Equal(t, []float64{-1, -1, -1}, out)
}
