package shadow

// NodeOption configures a Node.
type NodeOption func(*Node)

// --- Dimension Options ---

// WithStyle replaces the whole style. Later options still apply on top.
func WithStyle(style Style) NodeOption {
	return func(n *Node) {
		n.style = style
	}
}

// WithWidth sets a fixed width in layout units.
func WithWidth(units int) NodeOption {
	return func(n *Node) {
		n.style.Width = Fixed(units)
	}
}

// WithWidthPercent sets width as a percentage of parent's available width.
func WithWidthPercent(percent float64) NodeOption {
	return func(n *Node) {
		n.style.Width = Percent(percent)
	}
}

// WithHeight sets a fixed height in layout units.
func WithHeight(units int) NodeOption {
	return func(n *Node) {
		n.style.Height = Fixed(units)
	}
}

// WithHeightPercent sets height as a percentage of parent's available height.
func WithHeightPercent(percent float64) NodeOption {
	return func(n *Node) {
		n.style.Height = Percent(percent)
	}
}

// WithSize sets both width and height in layout units.
func WithSize(width, height int) NodeOption {
	return func(n *Node) {
		n.style.Width = Fixed(width)
		n.style.Height = Fixed(height)
	}
}

// WithMinSize sets the minimum width and height.
func WithMinSize(width, height int) NodeOption {
	return func(n *Node) {
		n.style.MinWidth = Fixed(width)
		n.style.MinHeight = Fixed(height)
	}
}

// WithMaxSize sets the maximum width and height.
func WithMaxSize(width, height int) NodeOption {
	return func(n *Node) {
		n.style.MaxWidth = Fixed(width)
		n.style.MaxHeight = Fixed(height)
	}
}

// WithMinWidth sets the minimum width in layout units.
func WithMinWidth(units int) NodeOption {
	return func(n *Node) {
		n.style.MinWidth = Fixed(units)
	}
}

// WithMinHeight sets the minimum height in layout units.
func WithMinHeight(units int) NodeOption {
	return func(n *Node) {
		n.style.MinHeight = Fixed(units)
	}
}

// WithMaxWidth sets the maximum width in layout units.
func WithMaxWidth(units int) NodeOption {
	return func(n *Node) {
		n.style.MaxWidth = Fixed(units)
	}
}

// WithMaxHeight sets the maximum height in layout units.
func WithMaxHeight(units int) NodeOption {
	return func(n *Node) {
		n.style.MaxHeight = Fixed(units)
	}
}

// --- Flex Options ---

// WithFlexDirection sets the main axis for children.
func WithFlexDirection(d FlexDirection) NodeOption {
	return func(n *Node) {
		n.style.FlexDirection = d
	}
}

// WithJustify sets main-axis distribution of children.
func WithJustify(j Justify) NodeOption {
	return func(n *Node) {
		n.style.JustifyContent = j
	}
}

// WithAlign sets cross-axis alignment of children.
func WithAlign(a Align) NodeOption {
	return func(n *Node) {
		n.style.AlignItems = a
	}
}

// WithAlignSelf overrides the parent's AlignItems for this node.
func WithAlignSelf(a Align) NodeOption {
	return func(n *Node) {
		n.style.AlignSelf = &a
	}
}

// WithGap sets the main-axis space between children.
func WithGap(units int) NodeOption {
	return func(n *Node) {
		n.style.Gap = units
	}
}

// WithFlexGrow sets the grow factor.
func WithFlexGrow(grow float64) NodeOption {
	return func(n *Node) {
		n.style.FlexGrow = grow
	}
}

// WithFlexShrink sets the shrink factor.
func WithFlexShrink(shrink float64) NodeOption {
	return func(n *Node) {
		n.style.FlexShrink = shrink
	}
}

// --- Spacing Options ---

// WithPadding sets the padding on all physical and logical sides given.
func WithPadding(e Edges) NodeOption {
	return func(n *Node) {
		n.style.Padding = e
	}
}

// WithMargin sets the margin on all physical and logical sides given.
func WithMargin(e Edges) NodeOption {
	return func(n *Node) {
		n.style.Margin = e
	}
}

// --- Direction and Content Options ---

// WithDirection overrides the inherited writing direction for the subtree.
func WithDirection(d WritingDirection) NodeOption {
	return func(n *Node) {
		n.style.Direction = d
	}
}

// WithContentSize makes the node a leaf with the given natural size.
func WithContentSize(width, height int) NodeOption {
	return func(n *Node) {
		n.content = &Size{Width: width, Height: height}
	}
}

// WithNaturalDirection makes a text node take its writing direction from
// the first strong character of its text.
func WithNaturalDirection() NodeOption {
	return func(n *Node) {
		n.natural = true
	}
}
