package layout

// intrinsicSize returns the natural border-box size of node: fixed style
// dimensions where set, otherwise leaf content or the children's combined
// outer sizes, plus padding. Only fixed min/max values apply here since no
// available space is known. Results are memoized for the duration of a solve.
func (s *solver) intrinsicSize(node Layoutable) Size {
	if size, ok := s.intrinsic[node]; ok {
		return size
	}

	style := node.LayoutStyle()
	content := s.contentSize(node, style)

	width := style.Width.fixedOr(content.Width)
	height := style.Height.fixedOr(content.Height)
	width = clamp(width, style.MinWidth.fixedOr(0), style.MaxWidth.fixedOr(Unbounded))
	height = clamp(height, style.MinHeight.fixedOr(0), style.MaxHeight.fixedOr(Unbounded))

	size := Size{Width: width, Height: height}
	s.intrinsic[node] = size
	return size
}

// contentSize sums children along the main axis and takes the maximum on
// the cross axis, margins and gaps included, then adds padding.
// Leaf content reported by the node takes precedence over children.
func (s *solver) contentSize(node Layoutable, style Style) Size {
	padH := style.Padding.Horizontal()
	padV := style.Padding.Vertical()

	if w, h, ok := node.ContentSize(); ok {
		return Size{Width: w + padH, Height: h + padV}
	}

	children := node.LayoutChildren()
	isRow := style.FlexDirection.isRow()
	var width, height int

	for i, child := range children {
		childSize := s.intrinsicSize(child)
		childStyle := child.LayoutStyle()
		outerW := childSize.Width + childStyle.Margin.Horizontal()
		outerH := childSize.Height + childStyle.Margin.Vertical()

		if isRow {
			width += outerW
			height = max(height, outerH)
		} else {
			width = max(width, outerW)
			height += outerH
		}

		// Gap between children, not before the first
		if i > 0 {
			if isRow {
				width += style.Gap
			} else {
				height += style.Gap
			}
		}
	}

	return Size{Width: width + padH, Height: height + padV}
}
