package layout

// flexItem holds intermediate calculation state for a child.
// This is stack-allocated per layout call, not stored on nodes.
type flexItem struct {
	node        Layoutable
	style       Style
	margin      Edges // physical, resolved with the child's direction
	mainMargin  int
	crossMargin int
	baseSize    int
	mainSize    int
	crossSize   int
	mainPos     int
	crossPos    int
	grow        float64
	shrink      float64
}

// layoutChildren arranges children within the given content rect.
// Positions are computed start-to-end and mirrored afterwards for reverse
// flex directions and right-to-left rows.
func (s *solver) layoutChildren(style Style, children []Layoutable, contentRect Rect, dir WritingDirection) {
	isRow := style.FlexDirection.isRow()

	// Determine main/cross axis dimensions
	mainSize := contentRect.Width
	crossSize := contentRect.Height
	if !isRow {
		mainSize, crossSize = crossSize, mainSize
	}

	// Phase 1: Compute base sizes and flex factors.
	// Base size is the child's outer size: content or explicit size plus margin.
	items := make([]flexItem, len(children))
	totalBase := 0
	totalGrow := 0.0
	totalShrink := 0.0

	for i, child := range children {
		item := &items[i]
		item.node = child
		item.style = child.LayoutStyle()
		item.margin = item.style.Margin.Physical(resolveDirection(item.style.Direction, dir))

		if isRow {
			item.mainMargin = item.margin.Left + item.margin.Right
			item.crossMargin = item.margin.Top + item.margin.Bottom
		} else {
			item.mainMargin = item.margin.Top + item.margin.Bottom
			item.crossMargin = item.margin.Left + item.margin.Right
		}

		mainValue, intrinsicMain := item.style.Height, 0
		if isRow {
			mainValue = item.style.Width
		}
		if mainValue.IsAuto() {
			intrinsic := s.intrinsicSize(child)
			intrinsicMain = intrinsic.Height
			if isRow {
				intrinsicMain = intrinsic.Width
			}
		}
		item.baseSize = mainValue.Resolve(mainSize, intrinsicMain) + item.mainMargin

		item.grow = item.style.FlexGrow
		item.shrink = item.style.FlexShrink

		totalBase += item.baseSize
		totalGrow += item.grow
		totalShrink += item.shrink
	}

	// Account for gaps
	totalGap := style.Gap * max(0, len(children)-1)
	freeSpace := mainSize - totalBase - totalGap

	// Phase 2: Distribute free space
	switch {
	case freeSpace > 0 && totalGrow > 0:
		for i := range items {
			items[i].mainSize = items[i].baseSize
			if items[i].grow > 0 {
				items[i].mainSize += int(float64(freeSpace) * items[i].grow / totalGrow)
			}
		}
	case freeSpace < 0 && totalShrink > 0:
		deficit := -freeSpace
		for i := range items {
			items[i].mainSize = items[i].baseSize
			if items[i].shrink > 0 {
				reduction := int(float64(deficit) * items[i].shrink / totalShrink)
				items[i].mainSize = max(0, items[i].baseSize-reduction)
			}
		}
	default:
		for i := range items {
			items[i].mainSize = items[i].baseSize
		}
	}

	// Phase 3: Apply min/max constraints to the content part of each item
	for i := range items {
		item := &items[i]
		minMain := resolveMinMain(item.style, isRow, mainSize)
		maxMain := resolveMaxMain(item.style, isRow, mainSize)
		item.mainSize = max(0, clamp(item.mainSize-item.mainMargin, minMain, maxMain)) + item.mainMargin
	}

	// Recalculate free space after min/max constraints
	totalUsed := 0
	for i := range items {
		totalUsed += items[i].mainSize
	}
	freeSpace = mainSize - totalUsed - totalGap

	// Phase 4: Position children along main axis (justify)
	offset := calculateJustifyOffset(style.JustifyContent, freeSpace, len(items))
	spacing := calculateJustifySpacing(style.JustifyContent, freeSpace, len(items))

	for i := range items {
		items[i].mainPos = offset
		offset += items[i].mainSize + style.Gap + spacing
	}

	// Phase 5: Cross-axis sizing and alignment
	for i := range items {
		item := &items[i]
		align := style.AlignItems
		if item.style.AlignSelf != nil {
			align = *item.style.AlignSelf
		}

		crossValue := item.style.Width
		if isRow {
			crossValue = item.style.Height
		}
		availableCross := crossSize - item.crossMargin

		if align == AlignStretch && crossValue.IsAuto() {
			// Stretch: slot fills the cross axis, margin included
			item.crossSize = crossSize
			item.crossPos = 0
			continue
		}

		var contentCross int
		if crossValue.IsAuto() {
			intrinsic := s.intrinsicSize(item.node)
			contentCross = intrinsic.Width
			if isRow {
				contentCross = intrinsic.Height
			}
			contentCross = min(contentCross, max(0, availableCross))
		} else {
			contentCross = crossValue.Resolve(availableCross, availableCross)
		}
		item.crossSize = contentCross + item.crossMargin
		item.crossPos = calculateAlignOffset(align, crossSize, item.crossSize)
	}

	// Phase 6: Mirror for direction, convert to rects and recurse
	mirrorMain := style.FlexDirection.isReverse()
	if isRow && dir == RTL {
		mirrorMain = !mirrorMain
	}
	mirrorCross := !isRow && dir == RTL

	for i := range items {
		item := &items[i]
		mainPos, crossPos := item.mainPos, item.crossPos
		if mirrorMain {
			mainPos = mainSize - mainPos - item.mainSize
		}
		if mirrorCross {
			crossPos = crossSize - crossPos - item.crossSize
		}

		// Compute the slot allocated to this child (before margin)
		var slot Rect
		if isRow {
			slot = Rect{
				X:      contentRect.X + mainPos,
				Y:      contentRect.Y + crossPos,
				Width:  item.mainSize,
				Height: item.crossSize,
			}
		} else {
			slot = Rect{
				X:      contentRect.X + crossPos,
				Y:      contentRect.Y + mainPos,
				Width:  item.crossSize,
				Height: item.mainSize,
			}
		}

		// The child receives its border box and does NOT re-apply margin.
		s.solveNode(item.node, slot.Inset(item.margin), dir)
	}
}

// calculateJustifyOffset returns the initial offset for positioning children
// based on the justify mode and available free space.
func calculateJustifyOffset(justify Justify, freeSpace, itemCount int) int {
	if freeSpace <= 0 || itemCount == 0 {
		return 0
	}

	switch justify {
	case JustifyEnd:
		return freeSpace
	case JustifyCenter:
		return freeSpace / 2
	case JustifySpaceAround:
		return freeSpace / (itemCount * 2)
	case JustifySpaceEvenly:
		return freeSpace / (itemCount + 1)
	default: // JustifyStart, JustifySpaceBetween
		return 0
	}
}

// calculateJustifySpacing returns the extra spacing between children
// based on the justify mode and available free space.
func calculateJustifySpacing(justify Justify, freeSpace, itemCount int) int {
	if freeSpace <= 0 || itemCount <= 1 {
		return 0
	}

	switch justify {
	case JustifySpaceBetween:
		return freeSpace / (itemCount - 1)
	case JustifySpaceAround:
		return freeSpace / itemCount
	case JustifySpaceEvenly:
		return freeSpace / (itemCount + 1)
	default: // JustifyStart, JustifyEnd, JustifyCenter
		return 0
	}
}

// calculateAlignOffset returns the offset for positioning a child on the cross axis.
func calculateAlignOffset(align Align, crossSize, itemSize int) int {
	switch align {
	case AlignEnd:
		return crossSize - itemSize
	case AlignCenter:
		return (crossSize - itemSize) / 2
	default: // AlignStart, AlignStretch
		return 0
	}
}

// resolveMinMain resolves the minimum size constraint for the main axis.
func resolveMinMain(style Style, isRow bool, available int) int {
	if isRow {
		return style.MinWidth.Resolve(available, 0)
	}
	return style.MinHeight.Resolve(available, 0)
}

// resolveMaxMain resolves the maximum size constraint for the main axis.
// Without a max the available space is the upper bound.
func resolveMaxMain(style Style, isRow bool, available int) int {
	if isRow {
		return style.MaxWidth.Resolve(available, available)
	}
	return style.MaxHeight.Resolve(available, available)
}
