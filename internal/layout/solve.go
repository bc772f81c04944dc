package layout

import (
	"fmt"
	"math"
)

// Constraints bound the root's border box. Max components may be Unbounded.
type Constraints struct {
	Min Size
	Max Size
}

// Result is the outcome of a successful Solve. It lists only the nodes the
// solver visited; skipped clean subtrees keep their committed layouts.
type Result struct {
	// Size is the root's resolved border-box size.
	Size Size

	layouts map[Layoutable]Layout
	order   []Layoutable
}

// Nodes returns the visited nodes in pre-order (parents before children).
func (r *Result) Nodes() []Layoutable {
	return r.order
}

// Layout returns the solved layout for node, if it was visited.
func (r *Result) Layout(node Layoutable) (Layout, bool) {
	l, ok := r.layouts[node]
	return l, ok
}

// Len returns the number of visited nodes.
func (r *Result) Len() int {
	return len(r.order)
}

func (r *Result) record(node Layoutable, l Layout) {
	r.layouts[node] = l
	r.order = append(r.order, node)
}

// SolveError reports a style graph the solver cannot resolve.
type SolveError struct {
	Node   Layoutable
	Reason string
}

func (e *SolveError) Error() string {
	if s, ok := e.Node.(fmt.Stringer); ok {
		return fmt.Sprintf("layout: node %q: %s", s.String(), e.Reason)
	}
	return "layout: " + e.Reason
}

// Solve lays out the tree rooted at root under c and the base direction.
// It does not mutate any node. Clean nodes whose committed layout was
// computed for the same available rect and direction are skipped along
// with their subtree.
func Solve(root Layoutable, c Constraints, base WritingDirection) (*Result, error) {
	if root == nil {
		return nil, &SolveError{Reason: "nil root"}
	}
	if base != LTR && base != RTL {
		return nil, &SolveError{Node: root, Reason: fmt.Sprintf("base direction %s is not ltr or rtl", base)}
	}
	if err := validateTree(root); err != nil {
		return nil, err
	}

	s := &solver{
		result:    &Result{layouts: make(map[Layoutable]Layout)},
		intrinsic: make(map[Layoutable]Size),
	}

	size := s.rootSize(root, c)
	s.solveNode(root, NewRect(0, 0, size.Width, size.Height), base)
	s.result.Size = size
	return s.result, nil
}

type solver struct {
	result    *Result
	intrinsic map[Layoutable]Size
}

// rootSize resolves the root border box. Explicit style sizes win over
// content; both are clamped by the style min/max and then by c.
func (s *solver) rootSize(root Layoutable, c Constraints) Size {
	style := root.LayoutStyle()
	content := s.intrinsicSize(root)

	resolve := func(v, minV, maxV Value, bound, intrinsic, lo, hi int) int {
		if bound == Unbounded {
			bound = intrinsic
		}
		size := v.Resolve(bound, intrinsic)
		size = clamp(size, minV.Resolve(bound, 0), maxV.Resolve(bound, Unbounded))
		return clamp(size, lo, hi)
	}

	return Size{
		Width:  resolve(style.Width, style.MinWidth, style.MaxWidth, c.Max.Width, content.Width, c.Min.Width, c.Max.Width),
		Height: resolve(style.Height, style.MinHeight, style.MaxHeight, c.Max.Height, content.Height, c.Min.Height, c.Max.Height),
	}
}

// solveNode computes the layout for a single node within the available space.
// The available rect represents the border box space allocated by the parent
// (after the parent has already applied this node's margin).
func (s *solver) solveNode(node Layoutable, available Rect, parentDir WritingDirection) {
	style := node.LayoutStyle()
	dir := resolveDirection(style.Direction, parentDir)

	// Dirty propagates up, so a clean node with unchanged inputs
	// guarantees an unchanged subtree.
	prev := node.GetLayout()
	if !node.IsDirty() && prev.Solved && prev.Available == available && prev.Direction == dir {
		return
	}

	borderBox := computeBorderBox(style, available)
	contentRect := borderBox.Inset(style.Padding.Physical(dir))
	contentRect.Width = max(0, contentRect.Width)
	contentRect.Height = max(0, contentRect.Height)

	s.result.record(node, Layout{
		Rect:        borderBox,
		ContentRect: contentRect,
		Available:   available,
		Direction:   dir,
		Solved:      true,
	})

	if children := node.LayoutChildren(); len(children) > 0 {
		s.layoutChildren(style, children, contentRect, dir)
	}
}

// computeBorderBox calculates the border box dimensions for a node.
// The available rect is the space allocated by the parent (after margin and flex).
// Only min/max constraints are applied; Width/Height were already used by the
// flex algorithm to compute the slot size.
func computeBorderBox(style Style, available Rect) Rect {
	width := clamp(available.Width,
		style.MinWidth.Resolve(available.Width, 0),
		style.MaxWidth.Resolve(available.Width, available.Width))
	height := clamp(available.Height,
		style.MinHeight.Resolve(available.Height, 0),
		style.MaxHeight.Resolve(available.Height, available.Height))

	return Rect{
		X:      available.X,
		Y:      available.Y,
		Width:  max(0, width),
		Height: max(0, height),
	}
}

// clamp restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins (matches CSS behavior).
func clamp(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}

// validateTree walks the whole tree once, rejecting nil children, nodes
// reachable more than once (including cycles) and unresolvable styles.
func validateTree(root Layoutable) error {
	seen := make(map[Layoutable]bool)
	var walk func(node Layoutable) error
	walk = func(node Layoutable) error {
		if seen[node] {
			return &SolveError{Node: node, Reason: "node is reachable more than once"}
		}
		seen[node] = true
		if err := validateStyle(node.LayoutStyle()); err != "" {
			return &SolveError{Node: node, Reason: err}
		}
		for _, child := range node.LayoutChildren() {
			if child == nil {
				return &SolveError{Node: node, Reason: "nil child"}
			}
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(root)
}

func validateStyle(s Style) string {
	values := []struct {
		name string
		v    Value
	}{
		{"width", s.Width},
		{"height", s.Height},
		{"min width", s.MinWidth},
		{"min height", s.MinHeight},
		{"max width", s.MaxWidth},
		{"max height", s.MaxHeight},
	}
	for _, f := range values {
		if !f.v.valid() {
			return fmt.Sprintf("invalid %s %+v", f.name, f.v)
		}
	}
	switch {
	case s.Padding.negative():
		return "negative padding"
	case s.Margin.negative():
		return "negative margin"
	case s.Gap < 0:
		return "negative gap"
	case math.IsNaN(s.FlexGrow) || s.FlexGrow < 0:
		return "invalid flex grow"
	case math.IsNaN(s.FlexShrink) || s.FlexShrink < 0:
		return "invalid flex shrink"
	case s.FlexDirection > ColumnReverse:
		return "unknown flex direction"
	case s.JustifyContent > JustifySpaceEvenly:
		return "unknown justify mode"
	case s.AlignItems > AlignStretch || (s.AlignSelf != nil && *s.AlignSelf > AlignStretch):
		return "unknown align mode"
	case s.Direction > RTL:
		return "unknown writing direction"
	}
	return ""
}
