package meshtesting

import (
	"github.com/forestrie/go-meshdofs/dofs"
	"github.com/forestrie/go-meshdofs/fe"
)

// Enumerate is a minimal numbering pass: it walks the active cells in
// iterator order and gives each still unassigned vertex, line and interior
// dof the next free index. Objects shared between cells get one index. It
// records and returns the number of dofs.
func Enumerate(h *dofs.Handler) (int, error) {
	el := h.Element()
	dim := h.Triangulation().Dim()
	next := 0
	assign := func(get func(i int) (int, error), set func(i, index int) error, n int) error {
		for i := 0; i < n; i++ {
			index, err := get(i)
			if err != nil {
				return err
			}
			if index != dofs.Invalid {
				continue
			}
			if err := set(i, next); err != nil {
				return err
			}
			next++
		}
		return nil
	}

	for cell := range h.Cells(dofs.FilterActive) {
		for v := 0; v < fe.VerticesPerCell(dim); v++ {
			err := assign(
				func(i int) (int, error) { return cell.VertexDofIndex(v, i) },
				func(i, index int) error { return cell.SetVertexDofIndex(v, i, index) },
				el.DofsPerVertex)
			if err != nil {
				return 0, err
			}
		}
		for l := 0; l < fe.LinesPerCell(dim); l++ {
			line, err := cell.Line(l)
			if err != nil {
				return 0, err
			}
			if err := assign(line.DofIndex, line.SetDofIndex, el.DofsPerLine); err != nil {
				return 0, err
			}
		}
		own := el.DofsPerLine
		if dim == 2 {
			own = el.DofsPerQuad
		}
		if err := assign(cell.DofIndex, cell.SetDofIndex, own); err != nil {
			return 0, err
		}
	}
	if err := h.SetNDofs(next); err != nil {
		return 0, err
	}
	return next, nil
}
