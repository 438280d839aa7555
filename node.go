package flex

// New creates a plain container and applies opts in order.
func New(opts ...Option) *Node {
	return build(DefaultPlan(), opts)
}

func build(plan Plan, opts []Option) *Node {
	n := NewNode(plan)
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Walk visits n and its descendants depth-first, parents before children.
// Returning false from fn skips that node's subtree.
func Walk(n *Node, fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.Children() {
		Walk(child, fn)
	}
}

// Find returns the first node named name in depth-first order, or nil.
func Find(root *Node, name string) *Node {
	var found *Node
	Walk(root, func(n *Node) bool {
		if found != nil {
			return false
		}
		if n.Name() == name {
			found = n
			return false
		}
		return true
	})
	return found
}
