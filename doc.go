// Package shadow provides the root of a background "shadow" layout tree.
//
// A shadow tree mirrors a native view hierarchy and computes its geometry
// off the rendering thread. Users build a tree of [Node]s under a
// [RootNode], feed the root size constraints and a base writing direction,
// and call [RootNode.RunLayoutPass] to solve the tree. The pass reports the
// exact set of nodes whose geometry changed so the caller can apply
// targeted native updates.
//
// RootNode does no locking of its own. [Registry] provides the single-writer
// discipline when several surfaces are laid out from different goroutines.
package shadow
