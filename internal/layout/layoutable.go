package layout

// Layoutable is the interface for anything that can participate in layout calculation.
// The solver works entirely with this interface, enabling custom implementations.
// Implementations must be comparable (pointer types in practice); the solver
// keys its results by node.
type Layoutable interface {
	// LayoutStyle returns the layout style properties for this node.
	LayoutStyle() Style

	// LayoutChildren returns the children to be laid out.
	LayoutChildren() []Layoutable

	// GetLayout returns the last committed layout.
	GetLayout() Layout

	// IsDirty returns whether this node needs layout recalculation.
	IsDirty() bool

	// ContentSize returns the natural size of leaf content (text, images),
	// excluding padding. ok is false for plain containers.
	ContentSize() (width, height int, ok bool)
}
