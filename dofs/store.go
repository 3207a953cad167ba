package dofs

import (
	"github.com/cockroachdb/errors"

	"github.com/forestrie/go-meshdofs/tria"
)

// levelDofs holds the indices of the objects on one level. The indices of the
// object in slot s occupy [s*n, (s+1)*n) where n is the per object count of
// the selected element.
type levelDofs struct {
	lineDofs []int
	quadDofs []int
}

func filledInvalid(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = Invalid
	}
	return s
}

// reserve allocates storage for every slot of the triangulation under the
// selected element.
func (h *Handler) reserve() {
	el := h.fe
	h.vertexDofs = filledInvalid(h.tria.NVertices() * el.DofsPerVertex)
	h.levels = make([]*levelDofs, h.tria.NLevels())
	for level := range h.levels {
		ld := &levelDofs{
			lineDofs: filledInvalid(h.tria.NSlots(tria.KindLine, level) * el.DofsPerLine),
		}
		if h.tria.Dim() == 2 {
			ld.quadDofs = filledInvalid(h.tria.NSlots(tria.KindQuad, level) * el.DofsPerQuad)
		}
		h.levels[level] = ld
	}
}

// checkElement fails when no element is selected. Elided when checks are
// off; the caller then guarantees an element is bound.
func (h *Handler) checkElement() error {
	if h.opts.Checks && h.fe == nil {
		return ErrNoElement
	}
	return nil
}

// dofsPer returns the per object count of kind under the selected element.
func (h *Handler) dofsPer(kind tria.Kind) int {
	switch kind {
	case tria.KindVertex:
		return h.fe.DofsPerVertex
	case tria.KindLine:
		return h.fe.DofsPerLine
	case tria.KindQuad:
		return h.fe.DofsPerQuad
	}
	return 0
}

// slot returns the backing array and offset of local dof i of the object at
// pos.
func (h *Handler) slot(kind tria.Kind, pos tria.Position, i int) ([]int, int, error) {
	if err := h.checkElement(); err != nil {
		return nil, 0, err
	}
	n := h.dofsPer(kind)
	if i < 0 || i >= n {
		return nil, 0, errors.Wrapf(ErrIndexOutOfRange, "%s dof %d not in [0,%d)", kind, i, n)
	}
	if pos.Level >= len(h.levels) {
		return nil, 0, errors.Wrapf(ErrStaleStore, "level %d", pos.Level)
	}
	var dofs []int
	if kind == tria.KindQuad {
		dofs = h.levels[pos.Level].quadDofs
	} else {
		dofs = h.levels[pos.Level].lineDofs
	}
	off := pos.Index*n + i
	if off >= len(dofs) {
		return nil, 0, errors.Wrapf(ErrStaleStore, "%s %v", kind, pos)
	}
	return dofs, off, nil
}

// read returns local dof i of the object at pos.
func (h *Handler) read(kind tria.Kind, pos tria.Position, i int) (int, error) {
	dofs, off, err := h.slot(kind, pos, i)
	if err != nil {
		return Invalid, err
	}
	return dofs[off], nil
}

// write overwrites local dof i of the object at pos.
func (h *Handler) write(kind tria.Kind, pos tria.Position, i int, index int) error {
	dofs, off, err := h.slot(kind, pos, i)
	if err != nil {
		return err
	}
	dofs[off] = index
	return nil
}

func (h *Handler) vertexSlot(vertex int, i int) (int, error) {
	if err := h.checkElement(); err != nil {
		return 0, err
	}
	n := h.fe.DofsPerVertex
	if i < 0 || i >= n {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "vertex dof %d not in [0,%d)", i, n)
	}
	off := vertex*n + i
	if vertex < 0 || off >= len(h.vertexDofs) {
		return 0, errors.Wrapf(ErrStaleStore, "vertex %d", vertex)
	}
	return off, nil
}

// readVertex returns dof i of the global vertex.
func (h *Handler) readVertex(vertex int, i int) (int, error) {
	off, err := h.vertexSlot(vertex, i)
	if err != nil {
		return Invalid, err
	}
	return h.vertexDofs[off], nil
}

// writeVertex overwrites dof i of the global vertex.
func (h *Handler) writeVertex(vertex int, i int, index int) error {
	off, err := h.vertexSlot(vertex, i)
	if err != nil {
		return err
	}
	h.vertexDofs[off] = index
	return nil
}

// checkStored fails if any index in arrays is neither Invalid nor in [0,n).
func checkStored(arrays [][]int, n int) error {
	for _, dofs := range arrays {
		for _, index := range dofs {
			if index != Invalid && (index < 0 || index >= n) {
				return errors.Wrapf(ErrIndexOutOfRange, "stored index %d outside n_dofs=%d", index, n)
			}
		}
	}
	return nil
}
