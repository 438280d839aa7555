package layout

import "slices"

// MeasureFunc reports the content size of a leaf given the space available
// inside its padding. It may be called several times per Arrange with
// different constraints and must not mutate the tree.
type MeasureFunc func(width float64, widthMode MeasureMode, height float64, heightMode MeasureMode) Size

// BaselineFunc returns the distance from the top of a node to its baseline.
type BaselineFunc func(width, height float64) float64

// Node is an element of the layout tree. It owns its Plan and Actual and
// keeps a back-pointer to its parent for dirty propagation.
type Node struct {
	name     string
	plan     Plan
	actual   Actual
	parent   *Node
	children []*Node
	measure  MeasureFunc
	baseline BaselineFunc
}

// NewNode creates a dirty node with the given plan.
func NewNode(plan Plan) *Node {
	n := &Node{actual: newActual()}
	n.adopt(plan)
	n.plan.dirty = true
	return n
}

func (n *Node) adopt(plan Plan) {
	n.plan = plan
	n.plan.owner = n
	n.plan.margin.owner = &n.plan
	n.plan.padding.owner = &n.plan
	n.plan.position.owner = &n.plan
}

// Name returns the label used in logs and dumps.
func (n *Node) Name() string {
	return n.name
}

// SetName sets the label used in logs and dumps.
func (n *Node) SetName(name string) {
	n.name = name
}

// Plan returns the node's layout intent. Mutations through the returned
// pointer mark the node dirty.
func (n *Node) Plan() *Plan {
	return &n.plan
}

// SetPlan replaces the plan, marking the node dirty if it differs.
func (n *Node) SetPlan(plan Plan) {
	if n.plan.Equal(&plan) {
		return
	}
	dirty := n.plan.dirty
	n.adopt(plan)
	n.plan.dirty = dirty
	n.MarkDirty()
}

// Actual returns the computed layout.
func (n *Node) Actual() *Actual {
	return &n.actual
}

// Bounds is shorthand for Actual().Bounds().
func (n *Node) Bounds() Rect {
	return n.actual.Bounds()
}

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the child slice. Callers must not modify it.
func (n *Node) Children() []*Node {
	return n.children
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Child returns the child at index i.
func (n *Node) Child(i int) *Node {
	return n.children[i]
}

// AddChild appends children and marks this node dirty.
func (n *Node) AddChild(children ...*Node) {
	for _, child := range children {
		n.InsertChild(child, len(n.children))
	}
}

// InsertChild inserts child at index i. It panics if child already has a
// parent, if n has a measure func, or if the insert would create a cycle.
func (n *Node) InsertChild(child *Node, i int) {
	if child == nil {
		panic("layout: nil child")
	}
	if child.parent != nil {
		panic("layout: child already has a parent")
	}
	if n.measure != nil {
		panic("layout: cannot add children to a node with a measure func")
	}
	for p := n; p != nil; p = p.parent {
		if p == child {
			panic("layout: adding child would create a cycle")
		}
	}
	child.parent = n
	n.children = slices.Insert(n.children, i, child)
	n.MarkDirty()
}

// RemoveChild removes child, keeping the order of the others.
// Returns true if the child was found.
func (n *Node) RemoveChild(child *Node) bool {
	i := slices.Index(n.children, child)
	if i < 0 {
		return false
	}
	n.children = slices.Delete(n.children, i, i+1)
	child.parent = nil
	n.MarkDirty()
	return true
}

// RemoveAllChildren detaches every child.
func (n *Node) RemoveAllChildren() {
	if len(n.children) == 0 {
		return
	}
	for _, child := range n.children {
		child.parent = nil
	}
	n.children = nil
	n.MarkDirty()
}

// SetMeasureFunc installs the content measure callback. It panics if the
// node has children.
func (n *Node) SetMeasureFunc(fn MeasureFunc) {
	if fn != nil && len(n.children) > 0 {
		panic("layout: cannot set a measure func on a node with children")
	}
	n.measure = fn
	n.MarkDirty()
}

// HasMeasureFunc reports whether a measure callback is installed.
func (n *Node) HasMeasureFunc() bool {
	return n.measure != nil
}

// SetBaselineFunc installs the baseline callback used for baseline alignment.
func (n *Node) SetBaselineFunc(fn BaselineFunc) {
	n.baseline = fn
	n.MarkDirty()
}

// MarkDirty marks this node and all ancestors as needing layout.
func (n *Node) MarkDirty() {
	for node := n; node != nil && !node.plan.dirty; node = node.parent {
		node.plan.dirty = true
	}
}

// IsDirty returns whether this node needs layout.
func (n *Node) IsDirty() bool {
	return n.plan.dirty
}

// ClearDirtyFlags clears the dirty flag on this node and its descendants.
func (n *Node) ClearDirtyFlags() {
	n.plan.SetDirty(false)
	for _, child := range n.children {
		child.ClearDirtyFlags()
	}
}

// layoutChildren returns the children that take part in layout. Atomic
// nodes have none.
func (n *Node) layoutChildren() []*Node {
	if n.plan.atomic {
		return nil
	}
	return n.children
}
