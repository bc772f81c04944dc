package layout

import "testing"

func TestSolve_JustifyModes(t *testing.T) {
	type tc struct {
		justify    Justify
		expectedX1 int // First child X position
		expectedX2 int // Second child X position
		expectedX3 int // Third child X position
	}

	// Container: 100 wide, Children: 20 each = 60 total, Free space: 40
	tests := map[string]tc{
		"JustifyStart":  {justify: JustifyStart, expectedX1: 0, expectedX2: 20, expectedX3: 40},
		"JustifyEnd":    {justify: JustifyEnd, expectedX1: 40, expectedX2: 60, expectedX3: 80},
		"JustifyCenter": {justify: JustifyCenter, expectedX1: 20, expectedX2: 40, expectedX3: 60},
		"JustifySpaceBetween": {
			// 40 / (3-1) = 20 between each
			justify: JustifySpaceBetween, expectedX1: 0, expectedX2: 40, expectedX3: 80,
		},
		"JustifySpaceAround": {
			// Start offset: 40 / 6 = 6, between: 40 / 3 = 13
			justify: JustifySpaceAround, expectedX1: 6, expectedX2: 39, expectedX3: 72,
		},
		"JustifySpaceEvenly": {
			// 40 / 4 = 10 everywhere
			justify: JustifySpaceEvenly, expectedX1: 10, expectedX2: 40, expectedX3: 70,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			style := rowStyle()
			style.JustifyContent = tt.justify
			parent := newTestNode(style)

			child1 := newTestNode(fixedStyle(20, 50))
			child2 := newTestNode(fixedStyle(20, 50))
			child3 := newTestNode(fixedStyle(20, 50))
			parent.AddChild(child1, child2, child3)

			solveAndCommit(t, parent, exact(100, 50), LTR)

			if child1.layout.Rect.X != tt.expectedX1 {
				t.Errorf("child1.X = %d, want %d", child1.layout.Rect.X, tt.expectedX1)
			}
			if child2.layout.Rect.X != tt.expectedX2 {
				t.Errorf("child2.X = %d, want %d", child2.layout.Rect.X, tt.expectedX2)
			}
			if child3.layout.Rect.X != tt.expectedX3 {
				t.Errorf("child3.X = %d, want %d", child3.layout.Rect.X, tt.expectedX3)
			}
		})
	}
}

func TestSolve_JustifyEnd_Column(t *testing.T) {
	style := DefaultStyle()
	style.JustifyContent = JustifyEnd
	parent := newTestNode(style)

	child1 := newTestNode(fixedStyle(50, 20))
	child2 := newTestNode(fixedStyle(50, 20))
	parent.AddChild(child1, child2)

	solveAndCommit(t, parent, exact(50, 100), LTR)

	// Free space: 100 - 40 = 60, JustifyEnd pushes children to end
	if child1.layout.Rect.Y != 60 {
		t.Errorf("child1.Y = %d, want 60", child1.layout.Rect.Y)
	}
	if child2.layout.Rect.Y != 80 {
		t.Errorf("child2.Y = %d, want 80", child2.layout.Rect.Y)
	}
}

func TestSolve_AlignModes(t *testing.T) {
	type tc struct {
		align     Align
		expectedY int
	}

	// Container: 80 high, child 30 high
	tests := map[string]tc{
		"AlignStart":            {align: AlignStart, expectedY: 0},
		"AlignEnd":              {align: AlignEnd, expectedY: 50},
		"AlignCenter":           {align: AlignCenter, expectedY: 25},
		"AlignStretch_explicit": {align: AlignStretch, expectedY: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			style := rowStyle()
			style.AlignItems = tt.align
			parent := newTestNode(style)

			child := newTestNode(fixedStyle(30, 30))
			parent.AddChild(child)

			solveAndCommit(t, parent, exact(100, 80), LTR)

			if child.layout.Rect.Y != tt.expectedY {
				t.Errorf("child.Y = %d, want %d", child.layout.Rect.Y, tt.expectedY)
			}
			if child.layout.Rect.Height != 30 {
				t.Errorf("child.Height = %d, want 30", child.layout.Rect.Height)
			}
		})
	}
}

func TestSolve_AlignStretch_AutoHeight(t *testing.T) {
	parent := newTestNode(rowStyle())

	childStyle := DefaultStyle()
	childStyle.Width = Fixed(30)
	child := newTestNode(childStyle)
	parent.AddChild(child)

	solveAndCommit(t, parent, exact(100, 80), LTR)

	if child.layout.Rect.Height != 80 {
		t.Errorf("child.Height = %d, want 80 (stretched)", child.layout.Rect.Height)
	}
}

func TestSolve_AlignSelf_Override(t *testing.T) {
	style := rowStyle()
	style.AlignItems = AlignStart
	parent := newTestNode(style)

	alignEnd := AlignEnd
	child1 := newTestNode(fixedStyle(30, 30))
	child2 := newTestNode(fixedStyle(30, 30))
	child2.style.AlignSelf = &alignEnd
	parent.AddChild(child1, child2)

	solveAndCommit(t, parent, exact(100, 80), LTR)

	if child1.layout.Rect.Y != 0 {
		t.Errorf("child1.Y = %d, want 0 (AlignStart)", child1.layout.Rect.Y)
	}
	if child2.layout.Rect.Y != 50 {
		t.Errorf("child2.Y = %d, want 50 (AlignEnd)", child2.layout.Rect.Y)
	}
}

func TestSolve_FlexGrowAndShrink(t *testing.T) {
	type tc struct {
		widths   [2]int
		grow     [2]float64
		shrink   [2]float64
		expected [2]int
	}

	tests := map[string]tc{
		"grow proportionally": {
			widths:   [2]int{20, 20},
			grow:     [2]float64{1, 3},
			shrink:   [2]float64{1, 1},
			expected: [2]int{35, 65},
		},
		"shrink evenly": {
			widths:   [2]int{80, 80},
			shrink:   [2]float64{1, 1},
			expected: [2]int{50, 50},
		},
		"no shrink keeps first": {
			widths:   [2]int{80, 80},
			shrink:   [2]float64{0, 1},
			expected: [2]int{80, 20},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent := newTestNode(rowStyle())
			var children [2]*testNode
			for i := range children {
				style := fixedStyle(tt.widths[i], 10)
				style.FlexGrow = tt.grow[i]
				style.FlexShrink = tt.shrink[i]
				children[i] = newTestNode(style)
				parent.AddChild(children[i])
			}

			solveAndCommit(t, parent, exact(100, 10), LTR)

			for i, child := range children {
				if child.layout.Rect.Width != tt.expected[i] {
					t.Errorf("child%d.Width = %d, want %d", i, child.layout.Rect.Width, tt.expected[i])
				}
			}
			if children[1].layout.Rect.X != tt.expected[0] {
				t.Errorf("child1.X = %d, want %d", children[1].layout.Rect.X, tt.expected[0])
			}
		})
	}
}

func TestSolve_Gap(t *testing.T) {
	style := rowStyle()
	style.Gap = 10
	parent := newTestNode(style)

	children := []*testNode{
		newTestNode(fixedStyle(20, 10)),
		newTestNode(fixedStyle(20, 10)),
		newTestNode(fixedStyle(20, 10)),
	}
	parent.AddChild(children...)

	solveAndCommit(t, parent, exact(100, 10), LTR)

	for i, want := range []int{0, 30, 60} {
		if got := children[i].layout.Rect.X; got != want {
			t.Errorf("child%d.X = %d, want %d", i, got, want)
		}
	}
}

func TestSolve_Margin(t *testing.T) {
	parent := newTestNode(rowStyle())

	childStyle := fixedStyle(50, 50)
	childStyle.Margin = EdgeAll(10)
	child := newTestNode(childStyle)
	parent.AddChild(child)

	solveAndCommit(t, parent, exact(100, 100), LTR)

	if child.layout.Rect != NewRect(10, 10, 50, 50) {
		t.Errorf("child Rect = %+v, want {10 10 50 50}", child.layout.Rect)
	}
}

func TestSolve_MinMaxMain(t *testing.T) {
	type tc struct {
		style    func() Style
		expected int
	}

	tests := map[string]tc{
		"min width raises fixed width": {
			style: func() Style {
				s := fixedStyle(20, 10)
				s.MinWidth = Fixed(40)
				return s
			},
			expected: 40,
		},
		"max width caps growth": {
			style: func() Style {
				s := DefaultStyle()
				s.Height = Fixed(10)
				s.FlexGrow = 1
				s.MaxWidth = Fixed(30)
				return s
			},
			expected: 30,
		},
		"min wins over max": {
			style: func() Style {
				s := fixedStyle(20, 10)
				s.MinWidth = Fixed(50)
				s.MaxWidth = Fixed(30)
				return s
			},
			expected: 50,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent := newTestNode(rowStyle())
			child := newTestNode(tt.style())
			parent.AddChild(child)

			solveAndCommit(t, parent, exact(100, 10), LTR)

			if child.layout.Rect.Width != tt.expected {
				t.Errorf("child.Width = %d, want %d", child.layout.Rect.Width, tt.expected)
			}
		})
	}
}

func TestSolve_IntrinsicAutoChild(t *testing.T) {
	style := rowStyle()
	style.AlignItems = AlignStart
	parent := newTestNode(style)

	text := newTestNode(DefaultStyle())
	text.content = &Size{Width: 25, Height: 5}
	text.style.Padding = EdgeSymmetric(0, 1)
	parent.AddChild(text)

	solveAndCommit(t, parent, exact(100, 50), LTR)

	if text.layout.Rect != NewRect(0, 0, 27, 5) {
		t.Errorf("text Rect = %+v, want {0 0 27 5}", text.layout.Rect)
	}
	if text.layout.ContentRect != NewRect(1, 0, 25, 5) {
		t.Errorf("text ContentRect = %+v, want {1 0 25 5}", text.layout.ContentRect)
	}
}

func TestSolve_IntrinsicContainer(t *testing.T) {
	// An auto-sized row sums its children plus gap and padding.
	rowS := rowStyle()
	rowS.Gap = 2
	rowS.Padding = EdgeAll(1)
	row := newTestNode(rowS)
	row.AddChild(newTestNode(fixedStyle(10, 4)), newTestNode(fixedStyle(5, 6)))

	root := newTestNode(DefaultStyle())
	root.AddChild(row)

	result := solveAndCommit(t, root, Constraints{Max: Size{Width: Unbounded, Height: Unbounded}}, LTR)

	if want := (Size{Width: 19, Height: 8}); result.Size != want {
		t.Errorf("Result.Size = %+v, want %+v", result.Size, want)
	}
}

func TestSolve_NestedContainers(t *testing.T) {
	root := newTestNode(rowStyle())

	column := newTestNode(fixedStyle(100, 100))
	grandchild1 := newTestNode(fixedStyle(100, 40))
	grandchild2 := newTestNode(fixedStyle(100, 60))
	column.AddChild(grandchild1, grandchild2)
	root.AddChild(column)

	solveAndCommit(t, root, exact(200, 100), LTR)

	if grandchild2.layout.Rect.Y != 40 {
		t.Errorf("grandchild2.Y = %d, want 40", grandchild2.layout.Rect.Y)
	}
	if column.layout.Rect.X != 0 || column.layout.Rect.Y != 0 {
		t.Errorf("column position = (%d, %d), want (0, 0)", column.layout.Rect.X, column.layout.Rect.Y)
	}
}
