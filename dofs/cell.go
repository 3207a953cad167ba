package dofs

import (
	"github.com/cockroachdb/errors"

	"github.com/forestrie/go-meshdofs/tria"
)

// CellAccessor addresses a cell: a line in 1d, a quad in 2d. In addition to
// the object operations it can reach neighbors and faces, and gather or
// scatter global vector entries.
type CellAccessor struct {
	accessor
}

// kind is the object kind backing the cell. The zero accessor reports lines;
// every operation on it fails the binding check anyway.
func (a CellAccessor) kind() tria.Kind {
	if a.h == nil {
		return tria.KindLine
	}
	return a.h.tria.CellKind()
}

func (a CellAccessor) Used() bool        { return a.used(a.kind()) }
func (a CellAccessor) HasChildren() bool { return a.hasChildren(a.kind()) }

// IsActive reports whether the cell is a used leaf.
func (a CellAccessor) IsActive() bool {
	return a.bound() == nil && a.Used() && !a.HasChildren()
}

// DofIndex returns the cell's own dof i: line dofs in 1d, quad dofs in 2d.
func (a CellAccessor) DofIndex(i int) (int, error) {
	return a.dofIndex(a.kind(), i)
}

func (a CellAccessor) SetDofIndex(i int, index int) error {
	return a.setDofIndex(a.kind(), i, index)
}

func (a CellAccessor) VertexIndex(vertex int) (int, error) {
	return a.vertexIndex(a.kind(), vertex)
}

func (a CellAccessor) VertexDofIndex(vertex, i int) (int, error) {
	return a.vertexDofIndex(a.kind(), vertex, i)
}

func (a CellAccessor) SetVertexDofIndex(vertex, i int, index int) error {
	return a.setVertexDofIndex(a.kind(), vertex, i, index)
}

// NDofs is the element's total dof count per cell.
func (a CellAccessor) NDofs() (int, error) {
	if err := a.bound(); err != nil {
		return 0, err
	}
	if err := a.h.checkElement(); err != nil {
		return 0, err
	}
	return a.h.fe.TotalDofs(), nil
}

// DofIndices fills out with the local to global map of the cell in the
// canonical order. len(out) must equal the element's total dofs.
func (a CellAccessor) DofIndices(out []int) error {
	return a.dofIndices(a.kind(), out)
}

// Child returns child i on the next level, or a past the end accessor if the
// cell is active.
func (a CellAccessor) Child(i int) (CellAccessor, error) {
	c, err := a.child(a.kind(), i)
	return CellAccessor{c}, err
}

// Neighbor returns the cell across face i. The neighbor may be on a coarser
// or finer level than a; at the boundary the past the end accessor is
// returned.
func (a CellAccessor) Neighbor(i int) (CellAccessor, error) {
	if err := a.bound(); err != nil {
		return CellAccessor{}, err
	}
	t := a.h.tria
	if n := t.FacesPerCell(); i < 0 || i >= n {
		return CellAccessor{}, errors.Wrapf(ErrIndexOutOfRange, "neighbor %d not in [0,%d)", i, n)
	}
	pos := t.Neighbor(a.pos, i)
	if pos.IsPastEnd() {
		return CellAccessor{accessor{pos: tria.PastEnd, h: a.h}}, nil
	}
	n := CellAccessor{accessor{pos: pos, h: a.h}}
	if a.h.opts.Checks && !n.Used() {
		return CellAccessor{}, errors.Wrapf(ErrUnusedEntity, "neighbor %d of cell %v is %v", i, a.pos, pos)
	}
	return n, nil
}

// Face returns bounding line i of a 2d cell. The faces of a 1d cell are
// points, which carry no accessor.
func (a CellAccessor) Face(i int) (LineAccessor, error) {
	if err := a.bound(); err != nil {
		return LineAccessor{}, err
	}
	if a.h.tria.Dim() == 1 {
		return LineAccessor{}, errors.Wrap(ErrUnsupportedOperation, "face of a 1d cell")
	}
	return a.line(i)
}

// Line is Face for 2d cells.
func (a CellAccessor) Line(i int) (LineAccessor, error) {
	return a.Face(i)
}

// Quad views a 2d cell as a quad.
func (a CellAccessor) Quad() (QuadAccessor, error) {
	if err := a.bound(); err != nil {
		return QuadAccessor{}, err
	}
	if a.h.tria.Dim() != 2 {
		return QuadAccessor{}, errors.Wrap(ErrUnsupportedOperation, "quad view of a 1d cell")
	}
	return QuadAccessor{a.accessor}, nil
}

// AsLine views a 1d cell as a line.
func (a CellAccessor) AsLine() (LineAccessor, error) {
	if err := a.bound(); err != nil {
		return LineAccessor{}, err
	}
	if a.h.tria.Dim() != 1 {
		return LineAccessor{}, errors.Wrap(ErrUnsupportedOperation, "line view of a 2d cell")
	}
	return LineAccessor{a.accessor}, nil
}

func (a *CellAccessor) CopyFrom(other CellAccessor) {
	a.accessor = other.accessor
}
