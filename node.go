package shadow

import "github.com/grindlemire/go-shadow/internal/layout"

var _ Layoutable = (*Node)(nil)

// Node is a shadow tree node: layout style, child links, and the geometry
// committed by the last successful layout pass.
type Node struct {
	// Tree structure
	children []*Node
	parent   *Node
	root     bool

	// Layout properties
	name   string
	style  Style
	layout LayoutResult
	dirty  bool

	// Leaf content
	content *Size
	text    string
	natural bool // style direction follows the text's first strong character
}

// NewNode creates a dirty node with the default style and the given options applied.
func NewNode(name string, opts ...NodeOption) *Node {
	n := &Node{
		name:  name,
		style: DefaultStyle(),
		dirty: true,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Name returns the node's name.
func (n *Node) Name() string {
	return n.name
}

// String implements fmt.Stringer with the node's name.
func (n *Node) String() string {
	return n.name
}

// Style returns a copy of the node's style.
func (n *Node) Style() Style {
	return n.style
}

// SetStyle replaces the style and marks the node dirty.
func (n *Node) SetStyle(style Style) {
	n.style = style
	n.MarkDirty()
}

// UpdateStyle applies fn to the node's style and marks the node dirty.
func (n *Node) UpdateStyle(fn func(*Style)) {
	fn(&n.style)
	n.MarkDirty()
}

// SetContentSize sets the natural size of leaf content and marks the node dirty.
func (n *Node) SetContentSize(width, height int) {
	n.content = &Size{Width: width, Height: height}
	n.MarkDirty()
}

// ClearContentSize turns the node back into a plain container.
func (n *Node) ClearContentSize() {
	if n.content == nil {
		return
	}
	n.content = nil
	n.MarkDirty()
}

// Layout returns the layout committed by the last successful pass.
func (n *Node) Layout() LayoutResult {
	return n.layout
}

// Frame returns the border box relative to the parent's border box.
// For a root it is the absolute border box.
func (n *Node) Frame() Rect {
	if n.parent == nil {
		return n.layout.Rect
	}
	return layout.RelativeFrame(n.layout, n.parent.layout)
}

// AbsoluteRect returns the border box in root coordinates.
func (n *Node) AbsoluteRect() Rect {
	return n.layout.Rect
}

// ContentRect returns the border box minus padding, in root coordinates.
func (n *Node) ContentRect() Rect {
	return n.layout.ContentRect
}

// ResolvedDirection returns the writing direction the last pass resolved
// for this node, or Inherit before the first pass.
func (n *Node) ResolvedDirection() WritingDirection {
	return n.layout.Direction
}

// --- Implement Layoutable interface ---

// LayoutStyle returns the layout style properties for this node.
func (n *Node) LayoutStyle() Style {
	return n.style
}

// LayoutChildren returns the children to be laid out.
func (n *Node) LayoutChildren() []Layoutable {
	result := make([]Layoutable, len(n.children))
	for i, child := range n.children {
		result[i] = child
	}
	return result
}

// GetLayout returns the last committed layout.
func (n *Node) GetLayout() LayoutResult {
	return n.layout
}

// IsDirty returns whether this node needs layout recalculation.
func (n *Node) IsDirty() bool {
	return n.dirty
}

// ContentSize returns the leaf content size, if any.
func (n *Node) ContentSize() (width, height int, ok bool) {
	if n.content == nil {
		return 0, 0, false
	}
	return n.content.Width, n.content.Height, true
}

// commit stores a solved layout and clears the dirty flag.
func (n *Node) commit(l LayoutResult) {
	n.layout = l
	n.dirty = false
}
