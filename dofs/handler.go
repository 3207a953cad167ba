package dofs

import (
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/forestrie/go-meshdofs/fe"
	"github.com/forestrie/go-meshdofs/tria"
)

// Invalid is the value of a dof index that has not been assigned.
const Invalid = -1

// Handler owns the dof index storage for one triangulation and the element
// currently selected on it. Accessors and iterators are values referring back
// to the handler; it performs no locking, so writes (numbering, renumbering)
// must complete before readers traverse it.
type Handler struct {
	id    uuid.UUID
	tria  *tria.Triangulation
	fe    *fe.FiniteElement
	nDofs int

	// source is the handler whose numbering is held: id itself, or the
	// handler a restored snapshot was taken from.
	source uuid.UUID

	// levels[l] holds the line and quad indices of level l.
	levels []*levelDofs
	// vertexDofs is shared by all levels.
	vertexDofs []int

	opts Options
}

// NewHandler returns a handler for t with no element selected.
func NewHandler(t *tria.Triangulation, opts ...Option) (*Handler, error) {
	if t == nil {
		return nil, errors.Wrap(ErrInvalidState, "nil triangulation")
	}
	h := &Handler{
		id:   uuid.New(),
		tria: t,
		opts: defaultOptions(),
	}
	for _, opt := range opts {
		opt(&h.opts)
	}
	return h, nil
}

// SelectElement binds el and sizes the storage for the current
// triangulation. Every previously stored index is discarded and NDofs is
// reset to zero: indices are only meaningful for the element they were
// assigned under.
func (h *Handler) SelectElement(el *fe.FiniteElement) error {
	if el == nil {
		return errors.Wrap(ErrInvalidState, "nil element")
	}
	if err := el.Validate(); err != nil {
		return err
	}
	if el.Dim != h.tria.Dim() {
		return errors.Wrapf(ErrElementMismatch, "element dim=%d, triangulation dim=%d", el.Dim, h.tria.Dim())
	}
	h.fe = el
	h.nDofs = 0
	h.source = h.id
	h.reserve()
	h.debugf("select %s: levels=%d vertices=%d", el, h.tria.NLevels(), h.tria.NVertices())
	return nil
}

func (h *Handler) ID() uuid.UUID                      { return h.id }

// NumberedBy returns the ID of the handler that produced the held numbering.
// It is h.ID() unless a snapshot of another handler was restored. It is the
// zero UUID before an element is selected.
func (h *Handler) NumberedBy() uuid.UUID { return h.source }
func (h *Handler) Triangulation() *tria.Triangulation { return h.tria }

// Element returns the selected element, or nil.
func (h *Handler) Element() *fe.FiniteElement { return h.fe }

// Checks reports whether the binding and used flag checks are active.
func (h *Handler) Checks() bool { return h.opts.Checks }

// NDofs is the number of global unknowns, as recorded by the numbering pass.
func (h *Handler) NDofs() int { return h.nDofs }

// SetNDofs records the number of global unknowns once a numbering pass has
// assigned every index. n must exceed every index already stored.
func (h *Handler) SetNDofs(n int) error {
	if n < 0 {
		return errors.Wrapf(ErrIndexOutOfRange, "n_dofs=%d", n)
	}
	if h.fe != nil {
		if err := checkStored(h.storage(), n); err != nil {
			return err
		}
	}
	h.nDofs = n
	return nil
}

// Line returns an accessor for the line at pos.
func (h *Handler) Line(pos tria.Position) (LineAccessor, error) {
	if err := h.checkPosition(tria.KindLine, pos); err != nil {
		return LineAccessor{}, err
	}
	return LineAccessor{accessor{pos: pos, h: h}}, nil
}

// Quad returns an accessor for the quad at pos.
func (h *Handler) Quad(pos tria.Position) (QuadAccessor, error) {
	if err := h.checkPosition(tria.KindQuad, pos); err != nil {
		return QuadAccessor{}, err
	}
	return QuadAccessor{accessor{pos: pos, h: h}}, nil
}

// Cell returns an accessor for the cell at pos.
func (h *Handler) Cell(pos tria.Position) (CellAccessor, error) {
	if err := h.checkPosition(h.tria.CellKind(), pos); err != nil {
		return CellAccessor{}, err
	}
	return CellAccessor{accessor{pos: pos, h: h}}, nil
}

func (h *Handler) checkPosition(kind tria.Kind, pos tria.Position) error {
	if kind == tria.KindQuad && h.tria.Dim() < 2 {
		return errors.Wrap(ErrUnsupportedOperation, "quads in 1d")
	}
	if pos.Level < 0 || pos.Index < 0 || pos.Index >= h.tria.NSlots(kind, pos.Level) {
		return errors.Wrapf(ErrIndexOutOfRange, "%s %v", kind, pos)
	}
	return nil
}

func (h *Handler) debugf(format string, args ...any) {
	if h.opts.Log != nil {
		h.opts.Log.Debugf(format, args...)
	}
}
