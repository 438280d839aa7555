package layout

import "testing"

func TestNode_AddChildPanics(t *testing.T) {
	t.Run("nil child", func(t *testing.T) {
		mustPanic(t, "layout: nil child", func() {
			newTestNode().AddChild(nil)
		})
	})

	t.Run("child already has a parent", func(t *testing.T) {
		a, b, child := newTestNode(), newTestNode(), newTestNode()
		a.AddChild(child)
		mustPanic(t, "layout: child already has a parent", func() {
			b.AddChild(child)
		})
	})

	t.Run("parent has a measure func", func(t *testing.T) {
		leaf := newTestNode()
		leaf.SetMeasureFunc(func(float64, MeasureMode, float64, MeasureMode) Size { return Size{} })
		mustPanic(t, "layout: cannot add children to a node with a measure func", func() {
			leaf.AddChild(newTestNode())
		})
	})

	t.Run("cycle", func(t *testing.T) {
		root := newTestNode()
		mid := newTestNode()
		root.AddChild(mid)
		mustPanic(t, "layout: adding child would create a cycle", func() {
			mid.AddChild(root)
		})
	})

	t.Run("measure func on container", func(t *testing.T) {
		root := newTestNode()
		root.AddChild(newTestNode())
		mustPanic(t, "layout: cannot set a measure func on a node with children", func() {
			root.SetMeasureFunc(func(float64, MeasureMode, float64, MeasureMode) Size { return Size{} })
		})
	})
}

func TestNode_InsertAndRemove(t *testing.T) {
	root := newTestNode()
	a, b, c := newTestNode(), newTestNode(), newTestNode()
	a.SetName("a")
	b.SetName("b")
	c.SetName("c")

	root.AddChild(a, c)
	root.InsertChild(b, 1)

	names := func() []string {
		var out []string
		for _, child := range root.Children() {
			out = append(out, child.Name())
		}
		return out
	}
	if got := names(); len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("children = %v, want [a b c]", got)
	}
	if b.Parent() != root {
		t.Error("inserted child has wrong parent")
	}

	if !root.RemoveChild(b) {
		t.Fatal("RemoveChild(b) = false")
	}
	if root.RemoveChild(b) {
		t.Error("second RemoveChild(b) = true")
	}
	if b.Parent() != nil {
		t.Error("removed child still has a parent")
	}
	if got := names(); len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Errorf("children = %v, want [a c]", got)
	}

	root.RemoveAllChildren()
	if root.ChildCount() != 0 || a.Parent() != nil || c.Parent() != nil {
		t.Error("RemoveAllChildren left children attached")
	}
}

func TestNode_MarkDirtyPropagates(t *testing.T) {
	root := newTestNode(size(20, 20))
	mid := newTestNode()
	leaf := newTestNode()
	sibling := newTestNode()
	root.AddChild(mid, sibling)
	mid.AddChild(leaf)
	Arrange(root, 20, 20)

	for name, n := range map[string]*Node{"root": root, "mid": mid, "leaf": leaf, "sibling": sibling} {
		if n.IsDirty() {
			t.Errorf("%s dirty after Arrange", name)
		}
	}

	leaf.MarkDirty()
	if !leaf.IsDirty() || !mid.IsDirty() || !root.IsDirty() {
		t.Error("MarkDirty did not reach the root")
	}
	if sibling.IsDirty() {
		t.Error("MarkDirty dirtied a sibling")
	}
}

func TestNode_ReadDoesNotDirty(t *testing.T) {
	root := newTestNode(size(20, 20))
	child := newTestNode(size(5, 5))
	root.AddChild(child)
	Arrange(root, 20, 20)

	_ = child.Plan().Width()
	_ = child.Plan().Margin().Get(EdgeLeft)
	_ = child.Bounds()
	_ = child.Actual().MeasuredSize()

	if child.IsDirty() || root.IsDirty() {
		t.Error("reading the tree marked it dirty")
	}
}

func TestNode_SetPlan(t *testing.T) {
	root := newTestNode(size(20, 20))
	child := newTestNode(size(5, 5))
	root.AddChild(child)
	Arrange(root, 20, 20)

	child.SetPlan(*child.Plan())
	if root.IsDirty() {
		t.Error("SetPlan with an equal plan dirtied the tree")
	}

	next := DefaultPlan()
	next.SetWidth(Fixed(7))
	next.SetHeight(Fixed(5))
	child.SetPlan(next)
	if !child.IsDirty() || !root.IsDirty() {
		t.Fatal("SetPlan with a new plan did not dirty the tree")
	}

	// Later mutations must still reach the node through the new plan.
	Arrange(root, 20, 20)
	child.Plan().SetWidth(Fixed(9))
	if !root.IsDirty() {
		t.Error("mutating the replaced plan did not dirty the root")
	}
	Arrange(root, 20, 20)
	assertBounds(t, "child", child, Rect{X: 0, Y: 0, Width: 9, Height: 5})
}
