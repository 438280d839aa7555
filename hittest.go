package flex

// AbsoluteBounds returns the node's border box in the root's coordinate
// space by adding up the parent-relative offsets of every ancestor.
// It panics with ErrLayoutNotCalculated if the node was never arranged.
func AbsoluteBounds(n *Node) Rect {
	var off Point
	for p := n.Parent(); p != nil; p = p.Parent() {
		b := p.Bounds()
		off = off.Add(Point{X: b.X, Y: b.Y})
	}
	return n.Bounds().Translate(off.X, off.Y)
}

// clips reports whether n hides descendants drawn outside its border box.
func clips(n *Node) bool {
	return n.Plan().Overflow() != OverflowVisible
}

// VisibleBounds returns the part of the node's absolute border box that is
// not cut away by an ancestor with Overflow Hidden or Scroll. The result is
// empty when the node is clipped out entirely.
func VisibleBounds(n *Node) Rect {
	r := AbsoluteBounds(n)
	for p := n.Parent(); p != nil; p = p.Parent() {
		if clips(p) {
			r = r.Intersect(AbsoluteBounds(p))
		}
	}
	return r
}

// ContentExtent returns the union of the arranged children's border boxes,
// relative to n. For a scrolling container this is the scrollable area.
// Children that were never positioned are skipped.
func ContentExtent(n *Node) Rect {
	var r Rect
	for _, child := range n.Children() {
		if child.Actual().Computed() {
			r = r.Union(child.Bounds())
		}
	}
	return r
}

// HitTest finds the deepest node whose visible border box contains p, in
// root coordinates. root acts as the viewport: nothing outside it is hit.
// Children may be hit outside their parent unless an ancestor clips them.
// Children are checked in reverse order since later siblings draw on top.
// Nodes hidden inside an atomic ancestor are never returned.
func HitTest(root *Node, p Point) *Node {
	if root == nil || !root.Actual().Computed() {
		return nil
	}
	b := root.Bounds()
	if root.Parent() != nil {
		b = AbsoluteBounds(root)
	}
	return hitTest(root, b, b, p)
}

func hitTest(n *Node, abs, clip Rect, p Point) *Node {
	visible := abs.Intersect(clip)
	if clips(n) {
		clip = visible
	}
	if !n.Plan().Atomic() {
		children := n.Children()
		for i := len(children) - 1; i >= 0; i-- {
			child := children[i]
			if !child.Actual().Computed() {
				continue
			}
			cb := child.Bounds().Translate(abs.X, abs.Y)
			if hit := hitTest(child, cb, clip, p); hit != nil {
				return hit
			}
		}
	}
	if visible.ContainsPoint(p) {
		return n
	}
	return nil
}
