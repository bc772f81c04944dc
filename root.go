package shadow

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/grindlemire/go-shadow/internal/layout"
	"github.com/grindlemire/go-shadow/internal/locale"
)

// RootNode is the top of one shadow tree, corresponding to one rendering
// surface. It owns the surface's size constraints and base direction,
// exposes the intrinsic size resolved by the last pass, and runs layout
// passes over its subtree.
//
// RootNode is not safe for concurrent use: constraint and direction
// mutations and RunLayoutPass must be serialized by the caller.
// A RootNode must not be copied after children are attached.
type RootNode struct {
	Node

	minimumSize   Size
	maximumSize   Size
	intrinsicSize Size
	baseDirection WritingDirection

	delegate DelegateRef
	engine   Engine
	logger   *zap.Logger
}

// NewRootNode creates a dirty root with no minimum, an unbounded maximum,
// and a base direction inferred from the process locale.
func NewRootNode(opts ...RootOption) *RootNode {
	r := &RootNode{
		Node: Node{
			name:  "root",
			style: DefaultStyle(),
			dirty: true,
			root:  true,
		},
		maximumSize:   Size{Width: Unbounded, Height: Unbounded},
		baseDirection: locale.DirectionFor(locale.FromEnv(os.LookupEnv)),
		engine:        FlexEngine(),
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Root returns the embedded node, the key the root has in an AffectedSet.
func (r *RootNode) Root() *Node {
	return &r.Node
}

// MinimumSize returns the minimum size constraint.
func (r *RootNode) MinimumSize() Size {
	return r.minimumSize
}

// MaximumSize returns the maximum size constraint.
func (r *RootNode) MaximumSize() Size {
	return r.maximumSize
}

// IntrinsicSize returns the root size resolved by the last successful pass:
// the content size clamped to the constraints (explicit root style sizes
// take the place of content). It is zero before the first pass.
func (r *RootNode) IntrinsicSize() Size {
	return r.intrinsicSize
}

// BaseDirection returns the direction inherited by the subtree.
func (r *RootNode) BaseDirection() WritingDirection {
	return r.baseDirection
}

// SetSizeConstraints sets both constraints as one operation and marks the
// root dirty. Invalid input (a negative component, or minimum exceeding
// maximum on either axis) is rejected with an error wrapping
// ErrInvalidConstraint and leaves the node untouched; nothing is clamped.
func (r *RootNode) SetSizeConstraints(minimum, maximum Size) error {
	if err := validateConstraints(minimum, maximum); err != nil {
		return err
	}
	if minimum == r.minimumSize && maximum == r.maximumSize {
		return nil
	}
	r.minimumSize = minimum
	r.maximumSize = maximum
	r.MarkDirty()
	r.logger.Debug("size constraints set",
		zap.String("root", r.name),
		zap.Any("minimum", minimum),
		zap.Any("maximum", maximum))
	return nil
}

// SetBaseDirection sets the direction inherited by the subtree and marks
// the root dirty when it changes. Only LTR and RTL are accepted.
func (r *RootNode) SetBaseDirection(dir WritingDirection) error {
	if dir != LTR && dir != RTL {
		return fmt.Errorf("%w: %s", ErrInvalidDirection, dir)
	}
	if dir == r.baseDirection {
		return nil
	}
	r.baseDirection = dir
	r.MarkDirty()
	r.logger.Debug("base direction set", zap.String("root", r.name), zap.Stringer("direction", dir))
	return nil
}

// SetDelegate replaces the delegate reference.
func (r *RootNode) SetDelegate(ref DelegateRef) {
	r.delegate = ref
}

// Delegate returns the delegate if it is still alive.
func (r *RootNode) Delegate() Delegate {
	return r.delegate.Get()
}

// RunLayoutPass solves the subtree if anything in it is dirty and inserts
// into affected every node whose frame (relative to its parent), content
// insets, or resolved direction changed. affected is written in place and
// must not be nil.
//
// On an engine failure the error wraps ErrLayoutSolveFailure, no node is
// modified, affected is left as it was, and the root stays dirty.
// When the intrinsic size changes the live delegate is notified before
// RunLayoutPass returns.
func (r *RootNode) RunLayoutPass(affected AffectedSet) error {
	if affected == nil {
		panic("shadow: nil AffectedSet in RunLayoutPass")
	}
	if !r.dirty {
		return nil
	}

	constraints := Constraints{Min: r.minimumSize, Max: r.maximumSize}
	solution, err := r.engine.Solve(&r.Node, constraints, r.baseDirection)
	if err != nil {
		r.logger.Warn("layout pass failed", zap.String("root", r.name), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrLayoutSolveFailure, err)
	}

	nodes := make([]*Node, 0, solution.Len())
	for _, l := range solution.Nodes() {
		n, ok := l.(*Node)
		if !ok {
			return fmt.Errorf("%w: engine returned foreign node %v", ErrLayoutSolveFailure, l)
		}
		nodes = append(nodes, n)
	}

	// Diff against the committed layouts before anything is written.
	var changed []*Node
	for _, n := range nodes {
		next, _ := solution.Layout(n)
		var prevParent, nextParent LayoutResult
		if n.parent != nil {
			prevParent = n.parent.layout
			nextParent = prevParent
			if l, ok := solution.Layout(n.parent); ok {
				nextParent = l
			}
		}
		if layout.GeometryChanged(n.layout, prevParent, next, nextParent) {
			changed = append(changed, n)
		}
		// A skipped child keeps its absolute rect, but its frame moves
		// with this node.
		for _, child := range n.children {
			if _, solved := solution.Layout(child); solved {
				continue
			}
			if layout.GeometryChanged(child.layout, n.layout, child.layout, next) {
				changed = append(changed, child)
			}
		}
	}

	for _, n := range nodes {
		l, _ := solution.Layout(n)
		n.commit(l)
	}
	for _, n := range changed {
		affected.Add(n)
	}

	previous := r.intrinsicSize
	r.intrinsicSize = solution.Size

	r.logger.Debug("layout pass finished",
		zap.String("root", r.name),
		zap.Int("solved", len(nodes)),
		zap.Int("affected", len(changed)),
		zap.Any("intrinsic_size", r.intrinsicSize))

	if previous != r.intrinsicSize {
		if d := r.delegate.Get(); d != nil {
			d.IntrinsicSizeChanged(r, r.intrinsicSize)
		}
	}
	return nil
}
