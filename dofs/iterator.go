package dofs

import (
	"iter"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/forestrie/go-meshdofs/tria"
)

// Filter is the advancement policy of an Iterator: which slots it stops on.
type Filter uint8

const (
	// FilterRaw stops on every slot, used or not.
	FilterRaw Filter = iota
	// FilterUsed stops on used slots.
	FilterUsed
	// FilterActive stops on used slots without children.
	FilterActive
)

func (f Filter) String() string {
	switch f {
	case FilterRaw:
		return "raw"
	case FilterUsed:
		return "used"
	case FilterActive:
		return "active"
	}
	return "unknown"
}

// Iterator walks the slots of one object kind level by level, in increasing
// index order, stopping on the slots its Filter accepts. Once every level in
// its range is exhausted it holds the past the end position, which is
// terminal.
//
// An Iterator is a plain value: copying it copies the position, and a new
// one can be made from any position, so walks are independent of each
// other. It reads the triangulation on every step and must not be used while
// the triangulation is being modified.
type Iterator struct {
	acc       accessor
	kind      tria.Kind
	filter    Filter
	lastLevel int
}

// NewIterator returns an iterator over kind positioned at the first slot at
// or after start that filter accepts, walking no further than lastLevel.
func (h *Handler) NewIterator(kind tria.Kind, start tria.Position, filter Filter, lastLevel int) Iterator {
	it := Iterator{
		acc:       accessor{pos: start, h: h},
		kind:      kind,
		filter:    filter,
		lastLevel: min(lastLevel, h.tria.NLevels()-1),
	}
	if start.IsPastEnd() {
		it.acc.pos = tria.PastEnd
		return it
	}
	it.settle()
	return it
}

// Begin walks every level.
func (h *Handler) Begin(kind tria.Kind, filter Filter) Iterator {
	return h.NewIterator(kind, tria.Position{}, filter, h.tria.NLevels()-1)
}

// BeginLevel walks the single level.
func (h *Handler) BeginLevel(kind tria.Kind, level int, filter Filter) Iterator {
	return h.NewIterator(kind, tria.Position{Level: level}, filter, level)
}

func (h *Handler) BeginCells(filter Filter) Iterator {
	return h.Begin(h.tria.CellKind(), filter)
}

func (h *Handler) BeginCellsOnLevel(level int, filter Filter) Iterator {
	return h.BeginLevel(h.tria.CellKind(), level, filter)
}

// End returns the past the end iterator of h.
func (h *Handler) End() Iterator {
	return Iterator{acc: accessor{pos: tria.PastEnd, h: h}, lastLevel: -1}
}

func (it *Iterator) accepts(pos tria.Position) bool {
	switch it.filter {
	case FilterUsed:
		return it.acc.h.tria.Used(it.kind, pos)
	case FilterActive:
		t := it.acc.h.tria
		return t.Used(it.kind, pos) && !t.HasChildren(it.kind, pos)
	}
	return true
}

// settle moves forward from the current position, inclusive, to the first
// accepted slot.
func (it *Iterator) settle() {
	t := it.acc.h.tria
	pos := it.acc.pos
	for pos.Level <= it.lastLevel {
		for ; pos.Index < t.NSlots(it.kind, pos.Level); pos.Index++ {
			if it.accepts(pos) {
				it.acc.pos = pos
				return
			}
		}
		pos = tria.Position{Level: pos.Level + 1}
	}
	it.acc.pos = tria.PastEnd
}

// Next advances to the next accepted slot. It is a no-op past the end.
func (it *Iterator) Next() {
	if it.acc.pos.IsPastEnd() {
		return
	}
	it.acc.pos.Index++
	it.settle()
}

// Valid reports whether the iterator points at an object.
func (it Iterator) Valid() bool {
	return it.acc.h != nil && !it.acc.pos.IsPastEnd()
}

func (it Iterator) Position() tria.Position { return it.acc.pos }
func (it Iterator) Filter() Filter          { return it.filter }

// Equal compares positions. Iterators are only comparable when they walk the
// same handler, identified by its ID. With checks on a mismatch is an
// assertion failure; without checks the result is meaningless.
func (it Iterator) Equal(other Iterator) bool {
	if h := it.acc.h; h != nil && h.opts.Checks && handlerID(other.acc.h) != h.id {
		panic(errors.AssertionFailedf("comparing iterators of handlers %s and %s",
			h.id, handlerID(other.acc.h)))
	}
	return it.acc.pos == other.acc.pos
}

func handlerID(h *Handler) uuid.UUID {
	if h == nil {
		return uuid.Nil
	}
	return h.id
}

// Assign repositions it onto other without allocating.
func (it *Iterator) Assign(other Iterator) {
	it.acc.pos = other.acc.pos
	it.acc.h = other.acc.h
	it.kind, it.filter, it.lastLevel = other.kind, other.filter, other.lastLevel
}

func (it Iterator) deref(kind tria.Kind) (accessor, error) {
	if err := it.acc.bound(); err != nil {
		return accessor{}, err
	}
	if it.kind != kind {
		return accessor{}, errors.Wrapf(ErrKindMismatch, "iterator over %s, want %s", it.kind, kind)
	}
	return it.acc, nil
}

func (it Iterator) Line() (LineAccessor, error) {
	a, err := it.deref(tria.KindLine)
	return LineAccessor{a}, err
}

func (it Iterator) Quad() (QuadAccessor, error) {
	a, err := it.deref(tria.KindQuad)
	return QuadAccessor{a}, err
}

func (it Iterator) Cell() (CellAccessor, error) {
	if it.acc.h == nil {
		return CellAccessor{}, ErrUnbound
	}
	a, err := it.deref(it.acc.h.tria.CellKind())
	return CellAccessor{a}, err
}

func cells(begin Iterator) iter.Seq[CellAccessor] {
	return func(yield func(CellAccessor) bool) {
		for it := begin; it.Valid(); it.Next() {
			if !yield(CellAccessor{it.acc}) {
				return
			}
		}
	}
}

// Cells ranges over the cells of every level accepted by filter.
func (h *Handler) Cells(filter Filter) iter.Seq[CellAccessor] {
	return cells(h.BeginCells(filter))
}

// CellsOnLevel ranges over the cells of one level accepted by filter.
func (h *Handler) CellsOnLevel(level int, filter Filter) iter.Seq[CellAccessor] {
	return cells(h.BeginCellsOnLevel(level, filter))
}

// Lines ranges over the lines of every level accepted by filter.
func (h *Handler) Lines(filter Filter) iter.Seq[LineAccessor] {
	return func(yield func(LineAccessor) bool) {
		for it := h.Begin(tria.KindLine, filter); it.Valid(); it.Next() {
			if !yield(LineAccessor{it.acc}) {
				return
			}
		}
	}
}

// Quads ranges over the quads of every level accepted by filter.
func (h *Handler) Quads(filter Filter) iter.Seq[QuadAccessor] {
	return func(yield func(QuadAccessor) bool) {
		if h.tria.Dim() < 2 {
			return
		}
		for it := h.Begin(tria.KindQuad, filter); it.Valid(); it.Next() {
			if !yield(QuadAccessor{it.acc}) {
				return
			}
		}
	}
}
