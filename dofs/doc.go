package dofs

/*

Package dofs maps the objects of a refined triangulation to the global
degree of freedom indices of the selected finite element.

# Storage

A Handler keeps one flat index array per object kind and level, and a single
vertex array shared by all levels (vertices are not per level):

	levels[l].lineDofs[s*dofs_per_line + i]   dof i of line s on level l
	levels[l].quadDofs[s*dofs_per_quad + i]   dof i of quad s on level l
	vertexDofs[v*dofs_per_vertex + i]         dof i of global vertex v

The per object counts come from the selected fe.FiniteElement and are read on
every access. Selecting another element reallocates the arrays and discards
every index.

# Accessors

LineAccessor, QuadAccessor and CellAccessor are small values: a position and
the handler. They hold no copy of the indices, so a renumbering is visible
through any accessor made before it. A cell is a line in 1d and a quad in 2d.

The canonical gather order, used by DofIndices, DofValues, SetDofValues and
DistributeLocalToGlobal, is

	vertex 0 dofs, vertex 1 dofs, ...      (2 or 4 vertices)
	line 0 dofs, line 1 dofs, ...          (4 lines, quads only)
	own dofs

so a quad with one dof per vertex, two per line and three interior gathers
4*1 + 4*2 + 3 = 15 indices. Assembly code relies on this order being stable.

# Iterators

An Iterator walks one object kind level by level and stops on the slots its
Filter accepts: every slot, used slots, or active (used, unrefined) slots.
After the last accepted slot it holds the past the end position, which never
equals a real object. Navigation (Child, Neighbor) returns a past the end
accessor when there is nothing to navigate to.

# Checks

Handlers built with checks (the default under the invariants build tag, or
WithChecks(true)) verify that an element is selected before indexing and that
navigation lands on used slots, failing with ErrInvalidState and
ErrUnusedEntity, and panic when iterators of different handlers are compared.
Without checks these faults are not diagnosed and are the caller's
responsibility:

	no element selected        indexing panics on the missing element
	navigation to unused slot  an accessor for the unused slot is returned
	cross handler comparison   Equal compares positions; the result is meaningless

Index ranges, buffer sizes and dimension restrictions are always checked.

*/
