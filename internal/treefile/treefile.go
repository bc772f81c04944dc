// Package treefile reads YAML descriptions of shadow trees and turns them
// into live trees or Go source that builds them.
//
// A description looks like:
//
//	version: v1
//	constraints:
//	  min: [0, 0]
//	  max: [300, 300]
//	direction: rtl
//	root:
//	  style:
//	    flex_direction: row
//	    padding: [1, 2]
//	  children:
//	    - name: title
//	      text: "Hello"
//	    - name: body
//	      content: [400, 50]
//	      style:
//	        grow: 1
//
// A missing max constraint means unbounded. Width and height accept an
// integer, a percentage such as "50%", or "auto". Edges accept one integer,
// a list of 1, 2 or 4 integers, or a mapping of top, right, bottom, left,
// start and end.
package treefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	shadow "github.com/grindlemire/go-shadow"
)

// SupportedVersion is the newest document version this package reads.
// Documents with the same major version are accepted.
const SupportedVersion = "v1.0.0"

// Document is a parsed tree description.
type Document struct {
	Version     string          `yaml:"version"`
	Constraints ConstraintsSpec `yaml:"constraints"`
	Direction   string          `yaml:"direction"`
	Root        NodeSpec        `yaml:"root"`
}

// ConstraintsSpec holds the root's size constraints.
type ConstraintsSpec struct {
	Min *SizeSpec `yaml:"min"`
	Max *SizeSpec `yaml:"max"`
}

// SizeSpec is a [width, height] pair.
type SizeSpec [2]int

// Size converts the pair.
func (s SizeSpec) Size() shadow.Size {
	return shadow.Size{Width: s[0], Height: s[1]}
}

// NodeSpec describes one node and its subtree.
type NodeSpec struct {
	Name     string     `yaml:"name"`
	Style    StyleSpec  `yaml:"style"`
	Text     *string    `yaml:"text"`
	Natural  bool       `yaml:"natural"`
	Content  *SizeSpec  `yaml:"content"`
	Children []NodeSpec `yaml:"children"`
}

// StyleSpec describes a node's style. Unset fields keep the defaults.
type StyleSpec struct {
	Width         *ValueSpec `yaml:"width"`
	Height        *ValueSpec `yaml:"height"`
	MinWidth      *int       `yaml:"min_width"`
	MinHeight     *int       `yaml:"min_height"`
	MaxWidth      *int       `yaml:"max_width"`
	MaxHeight     *int       `yaml:"max_height"`
	FlexDirection string     `yaml:"flex_direction"`
	Justify       string     `yaml:"justify"`
	Align         string     `yaml:"align"`
	AlignSelf     string     `yaml:"align_self"`
	Gap           *int       `yaml:"gap"`
	Grow          *float64   `yaml:"grow"`
	Shrink        *float64   `yaml:"shrink"`
	Padding       *EdgesSpec `yaml:"padding"`
	Margin        *EdgesSpec `yaml:"margin"`
	Direction     string     `yaml:"direction"`
}

// ValueSpec is a dimension: an integer, a percentage, or "auto".
type ValueSpec struct {
	shadow.Value
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *ValueSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: dimension must be a scalar", node.Line)
	}
	s := strings.TrimSpace(node.Value)
	switch {
	case s == "auto":
		v.Value = shadow.Auto()
	case strings.HasSuffix(s, "%"):
		p, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil || p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			return fmt.Errorf("line %d: invalid percentage %q", node.Line, s)
		}
		v.Value = shadow.Percent(p)
	default:
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return fmt.Errorf("line %d: invalid dimension %q", node.Line, s)
		}
		v.Value = shadow.Fixed(n)
	}
	return nil
}

// EdgesSpec is padding or margin.
type EdgesSpec struct {
	shadow.Edges
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *EdgesSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var n int
		if err := node.Decode(&n); err != nil {
			return err
		}
		e.Edges = shadow.EdgeAll(n)
	case yaml.SequenceNode:
		var ns []int
		if err := node.Decode(&ns); err != nil {
			return err
		}
		switch len(ns) {
		case 1:
			e.Edges = shadow.EdgeAll(ns[0])
		case 2:
			e.Edges = shadow.EdgeSymmetric(ns[0], ns[1])
		case 4:
			e.Edges = shadow.EdgeTRBL(ns[0], ns[1], ns[2], ns[3])
		default:
			return fmt.Errorf("line %d: edges need 1, 2 or 4 values, got %d", node.Line, len(ns))
		}
	case yaml.MappingNode:
		var m map[string]int
		if err := node.Decode(&m); err != nil {
			return err
		}
		for k, n := range m {
			switch k {
			case "top":
				e.Top = n
			case "right":
				e.Right = n
			case "bottom":
				e.Bottom = n
			case "left":
				e.Left = n
			case "start":
				e.Start = n
			case "end":
				e.End = n
			default:
				return fmt.Errorf("line %d: unknown edge %q", node.Line, k)
			}
		}
	default:
		return fmt.Errorf("line %d: invalid edges", node.Line)
	}
	return nil
}

// Parse reads a tree description. Unknown fields, unknown enum values,
// missing or duplicate node names and unsupported versions are errors.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("treefile: empty document")
		}
		return nil, fmt.Errorf("treefile: %w", err)
	}
	if err := doc.check(); err != nil {
		return nil, fmt.Errorf("treefile: %w", err)
	}
	return &doc, nil
}

func (d *Document) check() error {
	if d.Version == "" {
		d.Version = SupportedVersion
	}
	if !semver.IsValid(d.Version) {
		return fmt.Errorf("invalid version %q", d.Version)
	}
	if semver.Major(d.Version) != semver.Major(SupportedVersion) {
		return fmt.Errorf("unsupported version %s (want %s.x)", d.Version, semver.Major(SupportedVersion))
	}
	if _, ok := baseDirections[d.Direction]; !ok {
		return fmt.Errorf("unknown base direction %q", d.Direction)
	}
	if d.Root.Name == "" {
		d.Root.Name = "root"
	}
	if d.Root.Text != nil || d.Root.Content != nil {
		return fmt.Errorf("root %q cannot have content", d.Root.Name)
	}

	seen := make(map[string]bool)
	var walk func(n *NodeSpec) error
	walk = func(n *NodeSpec) error {
		if n.Name == "" {
			return fmt.Errorf("node without a name")
		}
		if seen[n.Name] {
			return fmt.Errorf("duplicate node name %q", n.Name)
		}
		seen[n.Name] = true
		if n.Text != nil && n.Content != nil {
			return fmt.Errorf("node %q has both text and content", n.Name)
		}
		if n.Natural && n.Text == nil {
			return fmt.Errorf("node %q: natural direction needs text", n.Name)
		}
		if _, err := n.options(); err != nil {
			return fmt.Errorf("node %q: %w", n.Name, err)
		}
		for i := range n.Children {
			if err := walk(&n.Children[i]); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(&d.Root)
}

// Build constructs the described tree. opts are applied after the
// document's own root settings. The returned map holds every node by name,
// the root's embedded node included.
func (d *Document) Build(opts ...shadow.RootOption) (*shadow.RootNode, map[string]*shadow.Node, error) {
	rootOpts, err := d.Root.options()
	if err != nil {
		return nil, nil, err
	}

	ro := []shadow.RootOption{
		shadow.WithName(d.Root.Name),
		shadow.WithRootStyle(applyAll(rootOpts)...),
	}
	if dir := baseDirections[d.Direction]; dir.code != "" {
		ro = append(ro, shadow.WithBaseDirection(dir.v))
	}
	root := shadow.NewRootNode(append(ro, opts...)...)

	minimum, maximum := d.Constraints.sizes()
	if err := root.SetSizeConstraints(minimum, maximum); err != nil {
		return nil, nil, err
	}

	nodes := map[string]*shadow.Node{d.Root.Name: root.Root()}
	var build func(parent *shadow.Node, specs []NodeSpec) error
	build = func(parent *shadow.Node, specs []NodeSpec) error {
		for i := range specs {
			spec := &specs[i]
			o, err := spec.options()
			if err != nil {
				return err
			}
			var n *shadow.Node
			if spec.Text != nil {
				n = shadow.NewTextNode(spec.Name, *spec.Text, applyAll(o)...)
			} else {
				n = shadow.NewNode(spec.Name, applyAll(o)...)
			}
			if err := parent.AddChild(n); err != nil {
				return err
			}
			nodes[spec.Name] = n
			if err := build(n, spec.Children); err != nil {
				return err
			}
		}
		return nil
	}
	if err := build(root.Root(), d.Root.Children); err != nil {
		return nil, nil, err
	}
	return root, nodes, nil
}

// sizes returns the constraints with defaults filled in: a zero minimum
// and an unbounded maximum.
func (c ConstraintsSpec) sizes() (minimum, maximum shadow.Size) {
	maximum = shadow.Size{Width: shadow.Unbounded, Height: shadow.Unbounded}
	if c.Min != nil {
		minimum = c.Min.Size()
	}
	if c.Max != nil {
		maximum = c.Max.Size()
	}
	return minimum, maximum
}
