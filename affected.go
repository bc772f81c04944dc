package shadow

import (
	"cmp"
	"slices"
)

// AffectedSet collects the nodes whose geometry changed during a layout
// pass. It is owned by the caller and written in place by the pass.
type AffectedSet map[*Node]struct{}

// NewAffectedSet returns an empty set.
func NewAffectedSet() AffectedSet {
	return make(AffectedSet)
}

// Add inserts n.
func (s AffectedSet) Add(n *Node) {
	s[n] = struct{}{}
}

// Contains reports whether n is in the set.
func (s AffectedSet) Contains(n *Node) bool {
	_, ok := s[n]
	return ok
}

// Len returns the number of nodes in the set.
func (s AffectedSet) Len() int {
	return len(s)
}

// Nodes returns the members sorted by name, for stable output.
func (s AffectedSet) Nodes() []*Node {
	nodes := make([]*Node, 0, len(s))
	for n := range s {
		nodes = append(nodes, n)
	}
	slices.SortFunc(nodes, func(a, b *Node) int {
		return cmp.Compare(a.name, b.name)
	})
	return nodes
}

// Names returns the sorted names of the members.
func (s AffectedSet) Names() []string {
	nodes := s.Nodes()
	names := make([]string, len(nodes))
	for i, n := range nodes {
		names[i] = n.name
	}
	return names
}
