package dofs

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidState reports use of an unbound accessor or of a handler with
	// no element selected. It is a programming error in the caller.
	ErrInvalidState = errors.New("dofs: accessor or handler not in a usable state")
	// ErrIndexOutOfRange reports a local dof position, vertex slot or
	// sub-object number beyond what the element or object kind allows.
	ErrIndexOutOfRange = errors.New("dofs: index out of range")
	// ErrSizeMismatch reports a caller buffer or global vector of the wrong
	// length.
	ErrSizeMismatch = errors.New("dofs: vector size does not match")
	// ErrUnsupportedOperation reports a request that has no meaning in the
	// dimension of the mesh.
	ErrUnsupportedOperation = errors.New("dofs: operation not useful for this dimension")
	// ErrUnusedEntity reports navigation onto a slot that is not in use.
	// Only raised by handlers with checks enabled.
	ErrUnusedEntity = errors.New("dofs: navigation reached an unused object")
)

var (
	ErrPastEnd         = errors.Mark(errors.New("dofs: dereferenced a past the end position"), ErrInvalidState)
	ErrNoElement       = errors.Mark(errors.New("dofs: no finite element selected"), ErrInvalidState)
	ErrUnbound         = errors.Mark(errors.New("dofs: accessor is not bound to a handler"), ErrInvalidState)
	ErrStaleStore      = errors.Mark(errors.New("dofs: storage does not cover the triangulation, select the element again"), ErrInvalidState)
	ErrKindMismatch    = errors.Mark(errors.New("dofs: iterator does not walk this object kind"), ErrInvalidState)
	ErrElementMismatch = errors.New("dofs: element dimension does not match the triangulation")
	ErrNotNumbered     = errors.Mark(errors.New("dofs: dof index not assigned"), ErrIndexOutOfRange)
)
