package dofs

import "github.com/cockroachdb/errors"

// Renumber replaces every assigned index i with newNumbers[i]. newNumbers
// must be a permutation of [0, NDofs). Unassigned indices stay Invalid.
//
// Nothing is written unless the whole permutation and every stored index are
// valid.
func (h *Handler) Renumber(newNumbers []int) error {
	if err := h.checkElement(); err != nil {
		return err
	}
	if len(newNumbers) != h.nDofs {
		return errors.Wrapf(ErrSizeMismatch, "renumbering: have %d, want n_dofs=%d", len(newNumbers), h.nDofs)
	}
	seen := make([]bool, h.nDofs)
	for i, n := range newNumbers {
		if n < 0 || n >= h.nDofs {
			return errors.Wrapf(ErrIndexOutOfRange, "renumbering: %d -> %d", i, n)
		}
		if seen[n] {
			return errors.Wrapf(ErrIndexOutOfRange, "renumbering: %d used twice", n)
		}
		seen[n] = true
	}

	arrays := h.storage()
	if err := checkStored(arrays, h.nDofs); err != nil {
		return err
	}
	for _, dofs := range arrays {
		for k, index := range dofs {
			if index != Invalid {
				dofs[k] = newNumbers[index]
			}
		}
	}
	h.debugf("renumbered %d dofs", h.nDofs)
	return nil
}

// storage returns every backing array: vertices first, then lines and quads
// level by level.
func (h *Handler) storage() [][]int {
	arrays := [][]int{h.vertexDofs}
	for _, ld := range h.levels {
		arrays = append(arrays, ld.lineDofs)
		if ld.quadDofs != nil {
			arrays = append(arrays, ld.quadDofs)
		}
	}
	return arrays
}
