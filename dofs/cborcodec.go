package dofs

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
)

var ErrSnapshotMismatch = errors.New("dofs: numbering snapshot does not fit the handler")

// numbering is the encoded form of a handler's index storage. The element
// counts are carried so a snapshot is only restored under the element it was
// taken with. Source identifies the handler that produced the numbering.
type numbering struct {
	DofsPerVertex int       `cbor:"1,keyasint"`
	DofsPerLine   int       `cbor:"2,keyasint"`
	DofsPerQuad   int       `cbor:"3,keyasint"`
	NDofs         int       `cbor:"4,keyasint"`
	VertexDofs    []int     `cbor:"5,keyasint"`
	LineDofs      [][]int   `cbor:"6,keyasint"`
	QuadDofs      [][]int   `cbor:"7,keyasint,omitempty"`
	Source        uuid.UUID `cbor:"8,keyasint"`
}

// NumberingCodec encodes handler numberings deterministically, so equal
// numberings produce equal bytes.
type NumberingCodec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

func NewNumberingCodec() (NumberingCodec, error) {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return NumberingCodec{}, err
	}
	dec, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return NumberingCodec{}, err
	}
	return NumberingCodec{enc: enc, dec: dec}, nil
}

var defaultCodec = sync.OnceValues(NewNumberingCodec)

// Marshal snapshots the numbering of h.
func (c NumberingCodec) Marshal(h *Handler) ([]byte, error) {
	if h.fe == nil {
		return nil, ErrNoElement
	}
	n := numbering{
		DofsPerVertex: h.fe.DofsPerVertex,
		DofsPerLine:   h.fe.DofsPerLine,
		DofsPerQuad:   h.fe.DofsPerQuad,
		NDofs:         h.nDofs,
		VertexDofs:    h.vertexDofs,
		Source:        h.source,
	}
	for _, ld := range h.levels {
		n.LineDofs = append(n.LineDofs, ld.lineDofs)
		if ld.quadDofs != nil {
			n.QuadDofs = append(n.QuadDofs, ld.quadDofs)
		}
	}
	return c.enc.Marshal(n)
}

// Unmarshal restores a snapshot into h. h must have the same element
// selected and the same triangulation shape as when the snapshot was taken.
// Every stored index must be Invalid or below the snapshot's NDofs. On
// success h reports the snapshot's source through NumberedBy.
func (c NumberingCodec) Unmarshal(data []byte, h *Handler) error {
	if h.fe == nil {
		return ErrNoElement
	}
	var n numbering
	if err := c.dec.Unmarshal(data, &n); err != nil {
		return errors.Wrap(err, "decode numbering")
	}
	if n.DofsPerVertex != h.fe.DofsPerVertex || n.DofsPerLine != h.fe.DofsPerLine || n.DofsPerQuad != h.fe.DofsPerQuad {
		return errors.Wrapf(ErrSnapshotMismatch, "snapshot counts v=%d l=%d q=%d, selected %s",
			n.DofsPerVertex, n.DofsPerLine, n.DofsPerQuad, h.fe)
	}
	if len(n.VertexDofs) != len(h.vertexDofs) || len(n.LineDofs) != len(h.levels) {
		return errors.Wrap(ErrSnapshotMismatch, "vertex or level count differs")
	}
	if h.tria.Dim() == 2 && len(n.QuadDofs) != len(h.levels) {
		return errors.Wrap(ErrSnapshotMismatch, "quad level count differs")
	}
	for level, ld := range h.levels {
		if len(n.LineDofs[level]) != len(ld.lineDofs) {
			return errors.Wrapf(ErrSnapshotMismatch, "level %d line storage differs", level)
		}
		if ld.quadDofs != nil && len(n.QuadDofs[level]) != len(ld.quadDofs) {
			return errors.Wrapf(ErrSnapshotMismatch, "level %d quad storage differs", level)
		}
	}

	if n.Source == uuid.Nil {
		return errors.Wrap(ErrSnapshotMismatch, "snapshot has no source handler")
	}
	if n.NDofs < 0 {
		return errors.Wrapf(ErrSnapshotMismatch, "snapshot n_dofs=%d", n.NDofs)
	}
	arrays := append([][]int{n.VertexDofs}, n.LineDofs...)
	arrays = append(arrays, n.QuadDofs...)
	if err := checkStored(arrays, n.NDofs); err != nil {
		return errors.Mark(errors.Wrap(err, "snapshot"), ErrSnapshotMismatch)
	}

	copy(h.vertexDofs, n.VertexDofs)
	for level, ld := range h.levels {
		copy(ld.lineDofs, n.LineDofs[level])
		if ld.quadDofs != nil {
			copy(ld.quadDofs, n.QuadDofs[level])
		}
	}
	h.nDofs = n.NDofs
	h.source = n.Source
	h.debugf("restored numbering of %s: n_dofs=%d levels=%d", n.Source, n.NDofs, len(h.levels))
	return nil
}

// MarshalCBOR snapshots the numbering with the default codec.
func (h *Handler) MarshalCBOR() ([]byte, error) {
	codec, err := defaultCodec()
	if err != nil {
		return nil, err
	}
	return codec.Marshal(h)
}

// UnmarshalNumbering restores a snapshot taken with MarshalCBOR.
func (h *Handler) UnmarshalNumbering(data []byte) error {
	codec, err := defaultCodec()
	if err != nil {
		return err
	}
	return codec.Unmarshal(data, h)
}
