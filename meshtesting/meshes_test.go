package meshtesting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-meshdofs/tria"
)

func TestUnitInterval(t *testing.T) {
	tr, err := UnitInterval(3)
	require.NoError(t, err)
	require.Equal(t, 3, tr.NLevels())
	require.Equal(t, 5, tr.NVertices())
	for level, want := range []int{1, 2, 4} {
		require.Equal(t, want, tr.NSlots(tria.KindLine, level))
	}

	// level 2 runs left to right
	for i := 0; i < 4; i++ {
		pos := tria.Position{Level: 2, Index: i}
		left := tr.Vertex(tr.VertexIndex(tria.KindLine, pos, 0))
		right := tr.Vertex(tr.VertexIndex(tria.KindLine, pos, 1))
		assert.InDelta(t, float64(i)/4, left[0], 1e-12)
		assert.InDelta(t, float64(i+1)/4, right[0], 1e-12)
	}
	require.True(t, tr.Neighbor(tria.Position{Level: 2, Index: 0}, 0).IsPastEnd())
	require.Equal(t, tria.Position{Level: 2, Index: 1}, tr.Neighbor(tria.Position{Level: 2, Index: 0}, 1))
	require.Equal(t, 2, tr.ChildIndex(tria.KindLine, tria.Position{Level: 1, Index: 1}, 0))
}

func TestUnitSquare(t *testing.T) {
	tr, err := UnitSquare(3)
	require.NoError(t, err)
	require.Equal(t, 25, tr.NVertices())
	for level, want := range []struct{ lines, quads int }{{4, 1}, {12, 4}, {40, 16}} {
		require.Equal(t, want.lines, tr.NSlots(tria.KindLine, level), "level %d", level)
		require.Equal(t, want.quads, tr.NSlots(tria.KindQuad, level), "level %d", level)
	}

	// bounding lines run bottom, right, top, left and share the quad's
	// corners
	for q := 0; q < 16; q++ {
		pos := tria.Position{Level: 2, Index: q}
		v := func(i int) tria.Point { return tr.Vertex(tr.VertexIndex(tria.KindQuad, pos, i)) }
		line := func(i int) [2]tria.Point {
			l := tria.Position{Level: 2, Index: tr.LineIndex(pos, i)}
			return [2]tria.Point{
				tr.Vertex(tr.VertexIndex(tria.KindLine, l, 0)),
				tr.Vertex(tr.VertexIndex(tria.KindLine, l, 1)),
			}
		}
		assert.Equal(t, [2]tria.Point{v(0), v(1)}, line(0))
		assert.Equal(t, [2]tria.Point{v(1), v(2)}, line(1))
		assert.Equal(t, [2]tria.Point{v(3), v(2)}, line(2))
		assert.Equal(t, [2]tria.Point{v(0), v(3)}, line(3))
	}

	// children of the root quad cover it counterclockwise from the origin
	root := tria.Position{}
	corners := []tria.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	for c := 0; c < 4; c++ {
		child := tria.Position{Level: 1, Index: tr.ChildIndex(tria.KindQuad, root, c)}
		got := tr.Vertex(tr.VertexIndex(tria.KindQuad, child, c))
		assert.Equal(t, corners[c], got)
	}
}

func TestLocallyRefinedSquare(t *testing.T) {
	tr, err := LocallyRefinedSquare()
	require.NoError(t, err)

	used := 0
	for q := 0; q < tr.NSlots(tria.KindQuad, 2); q++ {
		if tr.Used(tria.KindQuad, tria.Position{Level: 2, Index: q}) {
			used++
		}
	}
	require.Equal(t, 4, used)
	require.True(t, tr.HasChildren(tria.KindQuad, tria.Position{Level: 1, Index: 0}))
	for i := 1; i < 4; i++ {
		require.False(t, tr.HasChildren(tria.KindQuad, tria.Position{Level: 1, Index: i}))
	}
	// fine cells on the edge of the refined quarter see coarse neighbors
	require.Equal(t, tria.Position{Level: 1, Index: 1}, tr.Neighbor(tria.Position{Level: 2, Index: 1}, 1))
	require.Equal(t, tria.Position{Level: 1, Index: 3}, tr.Neighbor(tria.Position{Level: 2, Index: 3}, 2))
}
