package fe

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	ErrBadDimension = errors.New("fe: dimension must be 1 or 2")
	ErrBadCount     = errors.New("fe: dof counts must not be negative")
	ErrBadDegree    = errors.New("fe: polynomial degree out of range")
	ErrNotFound     = errors.New("fe: element not in catalog")
)

// FiniteElement describes how many degrees of freedom the active element
// attaches to each kind of mesh object. The dofs package consults it on every
// access and never copies the counts.
type FiniteElement struct {
	Name          string `koanf:"name"`
	Dim           int    `koanf:"dim"`
	DofsPerVertex int    `koanf:"dofs_per_vertex"`
	DofsPerLine   int    `koanf:"dofs_per_line"`
	DofsPerQuad   int    `koanf:"dofs_per_quad"`
}

// Validate rejects descriptors that cannot be laid out on a mesh.
func (fe *FiniteElement) Validate() error {
	if fe.Dim != 1 && fe.Dim != 2 {
		return errors.Wrapf(ErrBadDimension, "%s: dim=%d", fe.Name, fe.Dim)
	}
	if fe.DofsPerVertex < 0 || fe.DofsPerLine < 0 || fe.DofsPerQuad < 0 {
		return errors.Wrapf(ErrBadCount, "%s: vertex=%d line=%d quad=%d",
			fe.Name, fe.DofsPerVertex, fe.DofsPerLine, fe.DofsPerQuad)
	}
	if fe.Dim == 1 && fe.DofsPerQuad != 0 {
		return errors.Wrapf(ErrBadCount, "%s: quad dofs on a 1d element", fe.Name)
	}
	return nil
}

// TotalDofs is the number of degrees of freedom on one cell.
func (fe *FiniteElement) TotalDofs() int {
	return CellDofs(fe.Dim, fe.DofsPerVertex, fe.DofsPerLine, fe.DofsPerQuad)
}

func (fe *FiniteElement) String() string {
	return fmt.Sprintf("%s(dim=%d, v=%d, l=%d, q=%d)",
		fe.Name, fe.Dim, fe.DofsPerVertex, fe.DofsPerLine, fe.DofsPerQuad)
}

// Q returns the continuous Lagrange element of the given degree.
func Q(dim, degree int) (*FiniteElement, error) {
	if degree < 1 {
		return nil, errors.Wrapf(ErrBadDegree, "Q%d", degree)
	}
	fe := &FiniteElement{
		Name:          fmt.Sprintf("FE_Q<%d>(%d)", dim, degree),
		Dim:           dim,
		DofsPerVertex: 1,
		DofsPerLine:   degree - 1,
	}
	if dim == 2 {
		fe.DofsPerQuad = (degree - 1) * (degree - 1)
	}
	if err := fe.Validate(); err != nil {
		return nil, err
	}
	return fe, nil
}

// DGQ returns the discontinuous Lagrange element of the given degree. All of
// its dofs are interior to the cell.
func DGQ(dim, degree int) (*FiniteElement, error) {
	if degree < 0 {
		return nil, errors.Wrapf(ErrBadDegree, "DGQ%d", degree)
	}
	fe := &FiniteElement{
		Name: fmt.Sprintf("FE_DGQ<%d>(%d)", dim, degree),
		Dim:  dim,
	}
	switch dim {
	case 1:
		fe.DofsPerLine = degree + 1
	case 2:
		fe.DofsPerQuad = (degree + 1) * (degree + 1)
	}
	if err := fe.Validate(); err != nil {
		return nil, err
	}
	return fe, nil
}
