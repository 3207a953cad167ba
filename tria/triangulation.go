package tria

import "github.com/cockroachdb/errors"

// Objects holds the per slot topology of all objects of one kind on one
// level. Slots are append only; a slot that is no longer part of the mesh is
// kept with Used set to false.
type Objects struct {
	Used []bool
	// Children holds the slot of the first child on the next level, or
	// NoChild.
	Children []int
	// Vertices holds the global vertex indices. Lines use the first two
	// entries.
	Vertices [][4]int
	// Lines holds the same level line slots bounding a quad. Unused for
	// lines.
	Lines [][4]int
}

// Len returns the number of slots, used or not.
func (o *Objects) Len() int { return len(o.Used) }

func (o *Objects) add(vertices, lines [4]int) int {
	o.Used = append(o.Used, true)
	o.Children = append(o.Children, NoChild)
	o.Vertices = append(o.Vertices, vertices)
	o.Lines = append(o.Lines, lines)
	return len(o.Used) - 1
}

// Level is one depth of the refinement hierarchy.
type Level struct {
	Lines Objects
	Quads Objects
	// Neighbors holds FacesPerCell entries per cell slot. A boundary face
	// holds PastEnd. The neighbor may live on any level.
	Neighbors []Position
}

// Triangulation is the geometric hierarchy the degrees of freedom are
// attached to. It is built and refined by its owner; the dofs package only
// reads it.
type Triangulation struct {
	dim        int
	vertices   []Point
	vertexUsed []bool
	levels     []*Level
}

// New returns an empty triangulation of dimension dim (1 or 2).
func New(dim int) (*Triangulation, error) {
	if dim != 1 && dim != 2 {
		return nil, errors.Wrapf(ErrBadDimension, "dim=%d", dim)
	}
	return &Triangulation{dim: dim}, nil
}

func (t *Triangulation) Dim() int { return t.dim }

// CellKind is the object kind of the cells: lines in 1d, quads in 2d.
func (t *Triangulation) CellKind() Kind {
	if t.dim == 1 {
		return KindLine
	}
	return KindQuad
}

// FacesPerCell is the number of neighbor links per cell.
func (t *Triangulation) FacesPerCell() int { return 2 * t.dim }

func (t *Triangulation) NLevels() int   { return len(t.levels) }
func (t *Triangulation) NVertices() int { return len(t.vertices) }

func (t *Triangulation) Vertex(v int) Point { return t.vertices[v] }

func (t *Triangulation) VertexUsed(v int) bool {
	return v >= 0 && v < len(t.vertexUsed) && t.vertexUsed[v]
}

// Level returns the raw level storage. Callers must not mutate it.
func (t *Triangulation) Level(level int) *Level { return t.levels[level] }

// AddVertex appends a vertex and returns its global index.
func (t *Triangulation) AddVertex(p Point) int {
	t.vertices = append(t.vertices, p)
	t.vertexUsed = append(t.vertexUsed, true)
	return len(t.vertices) - 1
}

// AddLevel appends an empty level and returns its number.
func (t *Triangulation) AddLevel() int {
	t.levels = append(t.levels, &Level{})
	return len(t.levels) - 1
}

// AddLine appends a line from v0 to v1 on level.
func (t *Triangulation) AddLine(level, v0, v1 int) (int, error) {
	if err := t.checkLevel(level); err != nil {
		return 0, err
	}
	if err := t.checkVertices(v0, v1); err != nil {
		return 0, err
	}
	l := t.levels[level]
	index := l.Lines.add([4]int{v0, v1, -1, -1}, [4]int{-1, -1, -1, -1})
	if t.dim == 1 {
		l.Neighbors = append(l.Neighbors, PastEnd, PastEnd)
	}
	return index, nil
}

// AddQuad appends a quad on level. Vertices are counter clockwise from the
// lower left corner; lines are bottom, right, top, left and must already
// exist on the same level.
func (t *Triangulation) AddQuad(level int, lines [4]int, vertices [4]int) (int, error) {
	if t.dim < 2 {
		return 0, errors.Wrapf(ErrBadKind, "quad in dim=%d", t.dim)
	}
	if err := t.checkLevel(level); err != nil {
		return 0, err
	}
	if err := t.checkVertices(vertices[:]...); err != nil {
		return 0, err
	}
	l := t.levels[level]
	for _, line := range lines {
		if line < 0 || line >= l.Lines.Len() {
			return 0, errors.Wrapf(ErrBadIndex, "line %d on level %d", line, level)
		}
	}
	index := l.Quads.add(vertices, lines)
	l.Neighbors = append(l.Neighbors, PastEnd, PastEnd, PastEnd, PastEnd)
	return index, nil
}

// SetChildren records firstChild as the first of the ChildrenPerObject
// consecutive children of the object at pos. NoChild clears the link.
func (t *Triangulation) SetChildren(kind Kind, pos Position, firstChild int) error {
	o, err := t.objectsAt(kind, pos)
	if err != nil {
		return err
	}
	if firstChild != NoChild {
		if err := t.checkLevel(pos.Level + 1); err != nil {
			return errors.Wrap(ErrBadChildren, err.Error())
		}
		next := t.objects(kind, pos.Level+1)
		if firstChild < 0 || firstChild+ChildrenPerObject(kind) > next.Len() {
			return errors.Wrapf(ErrBadChildren, "%s %v first child %d", kind, pos, firstChild)
		}
	}
	o.Children[pos.Index] = firstChild
	return nil
}

// SetUsed sets the used flag of the object at pos.
func (t *Triangulation) SetUsed(kind Kind, pos Position, used bool) error {
	o, err := t.objectsAt(kind, pos)
	if err != nil {
		return err
	}
	o.Used[pos.Index] = used
	return nil
}

// SetNeighbor links face of the cell at pos to neighbor. PastEnd marks a
// boundary face.
func (t *Triangulation) SetNeighbor(pos Position, face int, neighbor Position) error {
	if _, err := t.objectsAt(t.CellKind(), pos); err != nil {
		return err
	}
	if face < 0 || face >= t.FacesPerCell() {
		return errors.Wrapf(ErrBadNeighbor, "face %d", face)
	}
	if !neighbor.IsPastEnd() {
		if _, err := t.objectsAt(t.CellKind(), neighbor); err != nil {
			return errors.Wrapf(ErrBadNeighbor, "neighbor %v", neighbor)
		}
	}
	t.levels[pos.Level].Neighbors[pos.Index*t.FacesPerCell()+face] = neighbor
	return nil
}

// NSlots returns the number of slots of kind on level. Levels that do not
// exist have no slots.
func (t *Triangulation) NSlots(kind Kind, level int) int {
	if level < 0 || level >= len(t.levels) {
		return 0
	}
	if kind == KindVertex {
		return len(t.vertices)
	}
	return t.objects(kind, level).Len()
}

// Used reports whether the slot at pos holds a live object. Positions
// outside the hierarchy are not used.
func (t *Triangulation) Used(kind Kind, pos Position) bool {
	if kind == KindVertex {
		return t.VertexUsed(pos.Index)
	}
	o, err := t.objectsAt(kind, pos)
	if err != nil {
		return false
	}
	return o.Used[pos.Index]
}

func (t *Triangulation) HasChildren(kind Kind, pos Position) bool {
	return t.objects(kind, pos.Level).Children[pos.Index] != NoChild
}

// ChildIndex returns the slot of child i on level pos.Level+1, or NoChild.
func (t *Triangulation) ChildIndex(kind Kind, pos Position, i int) int {
	first := t.objects(kind, pos.Level).Children[pos.Index]
	if first == NoChild {
		return NoChild
	}
	return first + i
}

// VertexIndex returns the global index of bounding vertex i.
func (t *Triangulation) VertexIndex(kind Kind, pos Position, i int) int {
	return t.objects(kind, pos.Level).Vertices[pos.Index][i]
}

// LineIndex returns the same level slot of bounding line i of a quad.
func (t *Triangulation) LineIndex(pos Position, i int) int {
	return t.levels[pos.Level].Quads.Lines[pos.Index][i]
}

// Neighbor returns the position of the cell across face i.
func (t *Triangulation) Neighbor(pos Position, i int) Position {
	return t.levels[pos.Level].Neighbors[pos.Index*t.FacesPerCell()+i]
}

func (t *Triangulation) objects(kind Kind, level int) *Objects {
	if kind == KindQuad {
		return &t.levels[level].Quads
	}
	return &t.levels[level].Lines
}

func (t *Triangulation) objectsAt(kind Kind, pos Position) (*Objects, error) {
	if kind == KindVertex || (kind == KindQuad && t.dim < 2) {
		return nil, errors.Wrapf(ErrBadKind, "%s in dim=%d", kind, t.dim)
	}
	if err := t.checkLevel(pos.Level); err != nil {
		return nil, err
	}
	o := t.objects(kind, pos.Level)
	if pos.Index < 0 || pos.Index >= o.Len() {
		return nil, errors.Wrapf(ErrBadIndex, "%s %v", kind, pos)
	}
	return o, nil
}

func (t *Triangulation) checkLevel(level int) error {
	if level < 0 || level >= len(t.levels) {
		return errors.Wrapf(ErrBadLevel, "level %d of %d", level, len(t.levels))
	}
	return nil
}

func (t *Triangulation) checkVertices(vs ...int) error {
	for _, v := range vs {
		if v < 0 || v >= len(t.vertices) {
			return errors.Wrapf(ErrBadVertex, "vertex %d of %d", v, len(t.vertices))
		}
	}
	return nil
}
