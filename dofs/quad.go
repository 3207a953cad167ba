package dofs

import (
	"github.com/cockroachdb/errors"

	"github.com/forestrie/go-meshdofs/tria"
)

// QuadAccessor addresses the dofs of one quad of a 2d triangulation.
type QuadAccessor struct {
	accessor
}

func (a QuadAccessor) Used() bool        { return a.used(tria.KindQuad) }
func (a QuadAccessor) HasChildren() bool { return a.hasChildren(tria.KindQuad) }

// DofIndex returns the quad's own (interior) dof i.
func (a QuadAccessor) DofIndex(i int) (int, error) {
	return a.dofIndex(tria.KindQuad, i)
}

func (a QuadAccessor) SetDofIndex(i int, index int) error {
	return a.setDofIndex(tria.KindQuad, i, index)
}

func (a QuadAccessor) VertexIndex(vertex int) (int, error) {
	return a.vertexIndex(tria.KindQuad, vertex)
}

// VertexDofIndex returns dof i of vertex 0..3 of the quad.
func (a QuadAccessor) VertexDofIndex(vertex, i int) (int, error) {
	return a.vertexDofIndex(tria.KindQuad, vertex, i)
}

func (a QuadAccessor) SetVertexDofIndex(vertex, i int, index int) error {
	return a.setVertexDofIndex(tria.KindQuad, vertex, i, index)
}

func (a QuadAccessor) NDofs() (int, error) {
	if err := a.bound(); err != nil {
		return 0, err
	}
	if err := a.h.checkElement(); err != nil {
		return 0, err
	}
	return a.nDofs(tria.KindQuad), nil
}

// DofIndices fills out with the dofs of the four vertices, the four lines
// and the interior, in that order. len(out) must be
// 4*dofs_per_vertex + 4*dofs_per_line + dofs_per_quad.
func (a QuadAccessor) DofIndices(out []int) error {
	return a.dofIndices(tria.KindQuad, out)
}

// Line returns bounding line i (bottom, right, top, left) on the quad's
// level.
func (a QuadAccessor) Line(i int) (LineAccessor, error) {
	return a.line(i)
}

func (a accessor) line(i int) (LineAccessor, error) {
	if err := a.bound(); err != nil {
		return LineAccessor{}, err
	}
	if i < 0 || i >= 4 {
		return LineAccessor{}, errors.Wrapf(ErrIndexOutOfRange, "quad line %d not in [0,4)", i)
	}
	pos := tria.Position{Level: a.pos.Level, Index: a.h.tria.LineIndex(a.pos, i)}
	return LineAccessor{accessor{pos: pos, h: a.h}}, nil
}

// Child returns child i (0..3) on the next level, or a past the end accessor
// if the quad is not refined.
func (a QuadAccessor) Child(i int) (QuadAccessor, error) {
	c, err := a.child(tria.KindQuad, i)
	return QuadAccessor{c}, err
}

func (a *QuadAccessor) CopyFrom(other QuadAccessor) {
	a.accessor = other.accessor
}
