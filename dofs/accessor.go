package dofs

import (
	"github.com/cockroachdb/errors"

	"github.com/forestrie/go-meshdofs/fe"
	"github.com/forestrie/go-meshdofs/tria"
)

// accessor is the state shared by the line, quad and cell accessors: an
// object position and the handler it is resolved against. It owns nothing;
// every call reads the handler's storage afresh.
type accessor struct {
	pos tria.Position
	h   *Handler
}

func (a accessor) Position() tria.Position { return a.pos }
func (a accessor) Level() int              { return a.pos.Level }
func (a accessor) Index() int              { return a.pos.Index }
func (a accessor) Handler() *Handler       { return a.h }

// IsPastEnd reports whether this is the terminal sentinel returned by
// navigation that found nothing. Such an accessor must not be dereferenced.
func (a accessor) IsPastEnd() bool { return a.pos.IsPastEnd() }

// bound fails for the zero accessor and for the past the end sentinel.
func (a accessor) bound() error {
	if a.h == nil {
		return ErrUnbound
	}
	if a.pos.IsPastEnd() {
		return ErrPastEnd
	}
	return nil
}

func (a accessor) used(kind tria.Kind) bool {
	return a.h != nil && a.h.tria.Used(kind, a.pos)
}

func (a accessor) hasChildren(kind tria.Kind) bool {
	return a.bound() == nil && a.h.tria.HasChildren(kind, a.pos)
}

func (a accessor) dofIndex(kind tria.Kind, i int) (int, error) {
	if err := a.bound(); err != nil {
		return Invalid, err
	}
	return a.h.read(kind, a.pos, i)
}

func (a accessor) setDofIndex(kind tria.Kind, i int, index int) error {
	if err := a.bound(); err != nil {
		return err
	}
	return a.h.write(kind, a.pos, i, index)
}

func (a accessor) vertexIndex(kind tria.Kind, vertex int) (int, error) {
	if err := a.bound(); err != nil {
		return 0, err
	}
	if n := tria.VerticesPerObject(kind); vertex < 0 || vertex >= n {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "%s vertex %d not in [0,%d)", kind, vertex, n)
	}
	return a.h.tria.VertexIndex(kind, a.pos, vertex), nil
}

func (a accessor) vertexDofIndex(kind tria.Kind, vertex, i int) (int, error) {
	v, err := a.vertexIndex(kind, vertex)
	if err != nil {
		return Invalid, err
	}
	return a.h.readVertex(v, i)
}

func (a accessor) setVertexDofIndex(kind tria.Kind, vertex, i int, index int) error {
	v, err := a.vertexIndex(kind, vertex)
	if err != nil {
		return err
	}
	return a.h.writeVertex(v, i, index)
}

// nDofs is the gathered length for an object of kind under the selected
// element.
func (a accessor) nDofs(kind tria.Kind) int {
	el := a.h.fe
	if kind == tria.KindQuad {
		return fe.QuadDofs(el.DofsPerVertex, el.DofsPerLine, el.DofsPerQuad)
	}
	return fe.LineDofs(el.DofsPerVertex, el.DofsPerLine)
}

// walk visits every dof of the object in the canonical order: the dofs of
// each bounding vertex, then of each bounding line (quads only), then the
// object's own. local counts from zero.
func (a accessor) walk(kind tria.Kind, visit func(local, index int) error) error {
	if err := a.bound(); err != nil {
		return err
	}
	if err := a.h.checkElement(); err != nil {
		return err
	}
	h, t := a.h, a.h.tria
	dpv := h.fe.DofsPerVertex
	local := 0
	for vertex := 0; vertex < tria.VerticesPerObject(kind); vertex++ {
		v := t.VertexIndex(kind, a.pos, vertex)
		for d := 0; d < dpv; d++ {
			index, err := h.readVertex(v, d)
			if err != nil {
				return err
			}
			if err := visit(local, index); err != nil {
				return err
			}
			local++
		}
	}
	if kind == tria.KindQuad {
		dpl := h.fe.DofsPerLine
		for line := 0; line < 4; line++ {
			lp := tria.Position{Level: a.pos.Level, Index: t.LineIndex(a.pos, line)}
			for d := 0; d < dpl; d++ {
				index, err := h.read(tria.KindLine, lp, d)
				if err != nil {
					return err
				}
				if err := visit(local, index); err != nil {
					return err
				}
				local++
			}
		}
	}
	for d := 0; d < h.dofsPer(kind); d++ {
		index, err := h.read(kind, a.pos, d)
		if err != nil {
			return err
		}
		if err := visit(local, index); err != nil {
			return err
		}
		local++
	}
	return nil
}

func (a accessor) dofIndices(kind tria.Kind, out []int) error {
	if err := a.bound(); err != nil {
		return err
	}
	if err := a.h.checkElement(); err != nil {
		return err
	}
	if want := a.nDofs(kind); len(out) != want {
		return errors.Wrapf(ErrSizeMismatch, "dof indices: have %d, want %d", len(out), want)
	}
	return a.walk(kind, func(local, index int) error {
		out[local] = index
		return nil
	})
}

// child resolves child i one level down. A leaf yields the past the end
// sentinel.
func (a accessor) child(kind tria.Kind, i int) (accessor, error) {
	if err := a.bound(); err != nil {
		return accessor{}, err
	}
	if n := tria.ChildrenPerObject(kind); i < 0 || i >= n {
		return accessor{}, errors.Wrapf(ErrIndexOutOfRange, "%s child %d not in [0,%d)", kind, i, n)
	}
	index := a.h.tria.ChildIndex(kind, a.pos, i)
	if index == tria.NoChild {
		return accessor{pos: tria.PastEnd, h: a.h}, nil
	}
	c := accessor{pos: tria.Position{Level: a.pos.Level + 1, Index: index}, h: a.h}
	if a.h.opts.Checks && !c.used(kind) {
		return accessor{}, errors.Wrapf(ErrUnusedEntity, "child %d of %s %v is %v", i, kind, a.pos, c.pos)
	}
	return c, nil
}

// LineAccessor addresses the dofs of one line.
type LineAccessor struct {
	accessor
}

func (a LineAccessor) Used() bool        { return a.used(tria.KindLine) }
func (a LineAccessor) HasChildren() bool { return a.hasChildren(tria.KindLine) }

// DofIndex returns the line's own dof i.
func (a LineAccessor) DofIndex(i int) (int, error) {
	return a.dofIndex(tria.KindLine, i)
}

func (a LineAccessor) SetDofIndex(i int, index int) error {
	return a.setDofIndex(tria.KindLine, i, index)
}

// VertexIndex returns the global index of vertex 0 or 1.
func (a LineAccessor) VertexIndex(vertex int) (int, error) {
	return a.vertexIndex(tria.KindLine, vertex)
}

// VertexDofIndex returns dof i of vertex 0 or 1 of the line.
func (a LineAccessor) VertexDofIndex(vertex, i int) (int, error) {
	return a.vertexDofIndex(tria.KindLine, vertex, i)
}

func (a LineAccessor) SetVertexDofIndex(vertex, i int, index int) error {
	return a.setVertexDofIndex(tria.KindLine, vertex, i, index)
}

// NDofs is the length DofIndices expects.
func (a LineAccessor) NDofs() (int, error) {
	if err := a.bound(); err != nil {
		return 0, err
	}
	if err := a.h.checkElement(); err != nil {
		return 0, err
	}
	return a.nDofs(tria.KindLine), nil
}

// DofIndices fills out with the vertex dofs of both ends followed by the
// line's own dofs. len(out) must be 2*dofs_per_vertex + dofs_per_line.
func (a LineAccessor) DofIndices(out []int) error {
	return a.dofIndices(tria.KindLine, out)
}

// Child returns child 0 or 1 on the next level, or a past the end accessor
// if the line is not refined.
func (a LineAccessor) Child(i int) (LineAccessor, error) {
	c, err := a.child(tria.KindLine, i)
	return LineAccessor{c}, err
}

// CopyFrom repositions a onto other, including its handler.
func (a *LineAccessor) CopyFrom(other LineAccessor) {
	a.accessor = other.accessor
}
