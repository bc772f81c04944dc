package shadow

import "github.com/grindlemire/go-shadow/internal/measure"

// NewTextNode creates a leaf whose content size is the measured text.
func NewTextNode(name, text string, opts ...NodeOption) *Node {
	n := NewNode(name, opts...)
	n.setText(text)
	return n
}

// Text returns the node's text.
func (n *Node) Text() string {
	return n.text
}

// SetText replaces the text, re-measures it, and marks the node dirty.
func (n *Node) SetText(text string) {
	if text == n.text && n.content != nil {
		return
	}
	n.setText(text)
	n.MarkDirty()
}

func (n *Node) setText(text string) {
	n.text = text
	w, h := measure.Text(text)
	n.content = &Size{Width: w, Height: h}
	if n.natural {
		n.style.Direction = measure.Direction(text)
	}
}
