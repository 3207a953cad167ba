package tria

import "github.com/cockroachdb/errors"

// Validate checks every stored reference of the hierarchy: vertices and
// bounding lines exist, children fit on the next level and neighbor links
// point at existing cells. It does not check geometric consistency.
func (t *Triangulation) Validate() error {
	for level, l := range t.levels {
		kinds := []Kind{KindLine}
		if t.dim == 2 {
			kinds = append(kinds, KindQuad)
		}
		for _, kind := range kinds {
			o := t.objects(kind, level)
			for i := 0; i < o.Len(); i++ {
				pos := Position{Level: level, Index: i}
				if err := t.checkVertices(o.Vertices[i][:VerticesPerObject(kind)]...); err != nil {
					return errors.Wrapf(err, "%s %v", kind, pos)
				}
				if kind == KindQuad {
					for _, line := range o.Lines[i] {
						if line < 0 || line >= l.Lines.Len() {
							return errors.Wrapf(ErrBadIndex, "quad %v line %d", pos, line)
						}
					}
				}
				if first := o.Children[i]; first != NoChild {
					if level+1 >= len(t.levels) ||
						first < 0 || first+ChildrenPerObject(kind) > t.objects(kind, level+1).Len() {
						return errors.Wrapf(ErrBadChildren, "%s %v first child %d", kind, pos, first)
					}
				}
			}
		}
		cells := t.objects(t.CellKind(), level)
		if len(l.Neighbors) != cells.Len()*t.FacesPerCell() {
			return errors.Wrapf(ErrBadNeighbor, "level %d has %d neighbor links for %d cells",
				level, len(l.Neighbors), cells.Len())
		}
		for i, n := range l.Neighbors {
			if n.IsPastEnd() {
				continue
			}
			if _, err := t.objectsAt(t.CellKind(), n); err != nil {
				return errors.Wrapf(ErrBadNeighbor, "cell %d face %d: %v",
					i/t.FacesPerCell(), i%t.FacesPerCell(), n)
			}
		}
	}
	return nil
}
