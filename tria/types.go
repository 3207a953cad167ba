package tria

import "github.com/cockroachdb/errors"

// Kind identifies the dimension of a geometric object.
type Kind uint8

const (
	KindVertex Kind = iota
	KindLine
	KindQuad
)

func (k Kind) String() string {
	switch k {
	case KindVertex:
		return "vertex"
	case KindLine:
		return "line"
	case KindQuad:
		return "quad"
	}
	return "unknown"
}

// NoChild marks an object slot that has not been refined.
const NoChild = -1

// Position identifies an object by refinement level and slot index within the
// level.
type Position struct {
	Level int
	Index int
}

// PastEnd is the terminal position. It never equals the position of a real
// object and is also what navigation returns for a missing child or a
// boundary neighbor.
var PastEnd = Position{Level: -1, Index: -1}

// IsPastEnd reports whether p is the terminal position.
func (p Position) IsPastEnd() bool {
	return p.Level < 0 || p.Index < 0
}

// Point is a vertex location. Only the first Dim() coordinates are
// meaningful.
type Point [2]float64

// VerticesPerObject returns the number of bounding vertices of kind k.
func VerticesPerObject(k Kind) int {
	switch k {
	case KindLine:
		return 2
	case KindQuad:
		return 4
	}
	return 1
}

// LinesPerObject returns the number of bounding lines of kind k.
func LinesPerObject(k Kind) int {
	if k == KindQuad {
		return 4
	}
	return 0
}

// ChildrenPerObject returns the number of children produced by refining an
// object of kind k. Children always occupy consecutive slots.
func ChildrenPerObject(k Kind) int {
	switch k {
	case KindLine:
		return 2
	case KindQuad:
		return 4
	}
	return 0
}

var (
	ErrBadDimension = errors.New("tria: dimension must be 1 or 2")
	ErrBadLevel     = errors.New("tria: level out of range")
	ErrBadIndex     = errors.New("tria: object index out of range")
	ErrBadVertex    = errors.New("tria: vertex index out of range")
	ErrBadKind      = errors.New("tria: object kind not valid for this dimension")
	ErrBadChildren  = errors.New("tria: children do not fit on the next level")
	ErrBadNeighbor  = errors.New("tria: neighbor reference invalid")
)
