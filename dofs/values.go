package dofs

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"
)

// checkVectors validates the local and global lengths for a gather or
// scatter on the cell.
func (a CellAccessor) checkVectors(local int, global int) error {
	if err := a.bound(); err != nil {
		return err
	}
	if err := a.h.checkElement(); err != nil {
		return err
	}
	if want := a.h.fe.TotalDofs(); local != want {
		return errors.Wrapf(ErrSizeMismatch, "local vector: have %d, want %d", local, want)
	}
	if want := a.h.nDofs; global != want {
		return errors.Wrapf(ErrSizeMismatch, "global vector: have %d, want n_dofs=%d", global, want)
	}
	return nil
}

// numbered gathers the cell's indices and fails unless every one of them is
// assigned and below NDofs. Nothing is read from or written to a global
// vector before this succeeds.
func (a CellAccessor) numbered() ([]int, error) {
	indices := make([]int, a.h.fe.TotalDofs())
	if err := a.dofIndices(a.kind(), indices); err != nil {
		return nil, err
	}
	for local, index := range indices {
		if index < 0 || index >= a.h.nDofs {
			return nil, errors.Wrapf(ErrNotNumbered, "cell %v local dof %d has index %d", a.pos, local, index)
		}
	}
	return indices, nil
}

// DofValues gathers the entries of global belonging to the cell into out, in
// the order of DofIndices. len(out) must be the element's total dofs and
// global must have NDofs entries.
func (a CellAccessor) DofValues(global mat.Vector, out []float64) error {
	if err := a.checkVectors(len(out), global.Len()); err != nil {
		return err
	}
	indices, err := a.numbered()
	if err != nil {
		return err
	}
	for local, index := range indices {
		out[local] = global.AtVec(index)
	}
	return nil
}

// SetDofValues writes local into the entries of global belonging to the
// cell, overwriting what was there. Entries shared with neighboring cells are
// overwritten by whichever cell is written last. On error global is
// unchanged.
func (a CellAccessor) SetDofValues(local []float64, global *mat.VecDense) error {
	if err := a.checkVectors(len(local), global.Len()); err != nil {
		return err
	}
	indices, err := a.numbered()
	if err != nil {
		return err
	}
	for l, index := range indices {
		global.SetVec(index, local[l])
	}
	return nil
}

// DistributeLocalToGlobal adds local into the entries of global belonging to
// the cell. This is the scatter used when assembling cell contributions. On
// error global is unchanged.
func (a CellAccessor) DistributeLocalToGlobal(local []float64, global *mat.VecDense) error {
	if err := a.checkVectors(len(local), global.Len()); err != nil {
		return err
	}
	indices, err := a.numbered()
	if err != nil {
		return err
	}
	for l, index := range indices {
		global.SetVec(index, global.AtVec(index)+local[l])
	}
	return nil
}
