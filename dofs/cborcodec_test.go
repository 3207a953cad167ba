package dofs_test

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-meshdofs/dofs"
	"github.com/forestrie/go-meshdofs/meshtesting"
	"github.com/forestrie/go-meshdofs/tria"
)

func TestNumberingSnapshot(t *testing.T) {
	tc := newTestContext(t)
	tr, err := meshtesting.UnitSquare(2)
	require.NoError(t, err)
	el := meshtesting.Element(2, 1, 1, 1)
	h := tc.NumberedHandler(tr, el)

	data, err := h.MarshalCBOR()
	require.NoError(t, err)
	again, err := h.MarshalCBOR()
	require.NoError(t, err)
	require.Equal(t, data, again)

	restored := tc.NewHandler(tr, el, true)
	require.Equal(t, restored.ID(), restored.NumberedBy())
	require.NoError(t, restored.UnmarshalNumbering(data))
	require.Equal(t, h.NDofs(), restored.NDofs())
	require.Equal(t, cellIndices(t, h), cellIndices(t, restored))

	// the restored handler keeps its own identity but reports where the
	// numbering came from, and passes that on in its own snapshots
	require.NotEqual(t, h.ID(), restored.ID())
	require.Equal(t, h.ID(), restored.NumberedBy())
	relayed, err := restored.MarshalCBOR()
	require.NoError(t, err)
	require.Equal(t, data, relayed)

	// selecting an element again starts a numbering of its own
	require.NoError(t, restored.SelectElement(el))
	require.Equal(t, restored.ID(), restored.NumberedBy())
}

func TestNumberingSnapshotMismatch(t *testing.T) {
	tc := newTestContext(t)
	tr, err := meshtesting.UnitSquare(2)
	require.NoError(t, err)
	h := tc.NumberedHandler(tr, meshtesting.Element(2, 1, 1, 1))
	data, err := h.MarshalCBOR()
	require.NoError(t, err)

	other := tc.NewHandler(tr, meshtesting.Element(2, 1, 0, 0), true)
	require.ErrorIs(t, other.UnmarshalNumbering(data), dofs.ErrSnapshotMismatch)

	smaller, err := meshtesting.UnitSquare(1)
	require.NoError(t, err)
	coarse := tc.NewHandler(smaller, meshtesting.Element(2, 1, 1, 1), true)
	require.ErrorIs(t, coarse.UnmarshalNumbering(data), dofs.ErrSnapshotMismatch)

	unselected, err := dofs.NewHandler(tr)
	require.NoError(t, err)
	_, err = unselected.MarshalCBOR()
	require.ErrorIs(t, err, dofs.ErrNoElement)

	require.Error(t, other.UnmarshalNumbering([]byte{0xff}))
}

func TestNumberingCodec(t *testing.T) {
	tc := newTestContext(t)
	tr, err := meshtesting.UnitInterval(3)
	require.NoError(t, err)
	el := meshtesting.Element(1, 1, 2, 0)
	h := tc.NumberedHandler(tr, el)

	codec, err := dofs.NewNumberingCodec()
	require.NoError(t, err)
	data, err := codec.Marshal(h)
	require.NoError(t, err)

	restored := tc.NewHandler(tr, el, false)
	require.NoError(t, codec.Unmarshal(data, restored))
	require.Equal(t, cellIndices(t, h), cellIndices(t, restored))
}

// snapshot mirrors the encoded numbering so tests can build malformed ones.
type snapshot struct {
	DofsPerVertex int       `cbor:"1,keyasint"`
	DofsPerLine   int       `cbor:"2,keyasint"`
	DofsPerQuad   int       `cbor:"3,keyasint"`
	NDofs         int       `cbor:"4,keyasint"`
	VertexDofs    []int     `cbor:"5,keyasint"`
	LineDofs      [][]int   `cbor:"6,keyasint"`
	QuadDofs      [][]int   `cbor:"7,keyasint,omitempty"`
	Source        uuid.UUID `cbor:"8,keyasint"`
}

func TestNumberingSnapshotRejectsBadContent(t *testing.T) {
	tc := newTestContext(t)
	tr, err := meshtesting.UnitInterval(1)
	require.NoError(t, err)
	el := meshtesting.Element(1, 1, 0, 0)

	valid := func() snapshot {
		return snapshot{
			DofsPerVertex: 1,
			NDofs:         2,
			VertexDofs:    []int{0, 1},
			LineDofs:      [][]int{{}},
			Source:        uuid.New(),
		}
	}
	encode := func(s snapshot) []byte {
		data, err := cbor.Marshal(s)
		require.NoError(t, err)
		return data
	}

	h := tc.NewHandler(tr, el, true)
	good := valid()
	require.NoError(t, h.UnmarshalNumbering(encode(good)))
	require.Equal(t, good.Source, h.NumberedBy())
	require.Equal(t, 2, h.NDofs())

	tests := []struct {
		name   string
		mutate func(*snapshot)
	}{
		{name: "negative n_dofs", mutate: func(s *snapshot) { s.NDofs = -1 }},
		{name: "index beyond n_dofs", mutate: func(s *snapshot) { s.VertexDofs[1] = 2 }},
		{name: "negative index", mutate: func(s *snapshot) { s.VertexDofs[0] = -5 }},
		{name: "no source", mutate: func(s *snapshot) { s.Source = uuid.Nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := tc.NewHandler(tr, el, true)
			s := valid()
			tt.mutate(&s)
			require.ErrorIs(t, target.UnmarshalNumbering(encode(s)), dofs.ErrSnapshotMismatch)

			// nothing was restored
			require.Equal(t, 0, target.NDofs())
			require.Equal(t, target.ID(), target.NumberedBy())
			c, err := target.Cell(tria.Position{})
			require.NoError(t, err)
			got := make([]int, 2)
			require.NoError(t, c.DofIndices(got))
			require.Equal(t, []int{dofs.Invalid, dofs.Invalid}, got)
		})
	}
}
