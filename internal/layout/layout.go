package layout

// Layout holds the computed position and size after layout calculation.
type Layout struct {
	// Rect is the border box in absolute coordinates: the space allocated by
	// the parent after applying this node's margin.
	Rect Rect

	// ContentRect is Rect minus padding, the area where children are placed.
	ContentRect Rect

	// Available is the rect the parent offered this node. Together with
	// Direction it keys the clean-subtree short-circuit.
	Available Rect

	// Direction is the resolved writing direction of this node.
	Direction WritingDirection

	// Solved is false until the node has been through a successful solve.
	Solved bool
}

// Insets returns the distance from each side of Rect to ContentRect.
func (l Layout) Insets() Edges {
	return Edges{
		Top:    l.ContentRect.Y - l.Rect.Y,
		Left:   l.ContentRect.X - l.Rect.X,
		Right:  l.Rect.Right() - l.ContentRect.Right(),
		Bottom: l.Rect.Bottom() - l.ContentRect.Bottom(),
	}
}

// RelativeFrame returns child's border box relative to parent's border box.
// A zero parent yields the absolute rect, which is what a root expects.
func RelativeFrame(child, parent Layout) Rect {
	return child.Rect.Translate(-parent.Rect.X, -parent.Rect.Y)
}

// GeometryChanged reports whether a node must be re-synchronized after
// moving from prev to next. prevParent/nextParent are the parent's layouts
// at the same two moments (zero for a root). Absolute movement caused only
// by an ancestor moving does not count.
func GeometryChanged(prev, prevParent, next, nextParent Layout) bool {
	if !prev.Solved {
		return true
	}
	if RelativeFrame(prev, prevParent) != RelativeFrame(next, nextParent) {
		return true
	}
	if prev.Insets() != next.Insets() {
		return true
	}
	return prev.Direction != next.Direction
}
