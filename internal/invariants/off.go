//go:build !invariants

package invariants

// Enabled is true when the module is built with the invariants tag. Checked
// builds validate handler binding and the used flag of navigation targets;
// see dofs.WithChecks for the per-handler override.
const Enabled = false
