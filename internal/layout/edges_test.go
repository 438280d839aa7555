package layout

import "testing"

func TestEdgeSet_ComputedEdgeValue(t *testing.T) {
	def := Fixed(9)

	type tc struct {
		set  map[Edge]Number
		edge Edge
		want Number
	}

	tests := map[string]tc{
		"explicit side wins": {
			set:  map[Edge]Number{EdgeLeft: Fixed(5), EdgeHorizontal: Fixed(2), EdgeAll: Fixed(1)},
			edge: EdgeLeft,
			want: Fixed(5),
		},
		"horizontal before all": {
			set:  map[Edge]Number{EdgeHorizontal: Fixed(2), EdgeAll: Fixed(1)},
			edge: EdgeRight,
			want: Fixed(2),
		},
		"vertical before all": {
			set:  map[Edge]Number{EdgeVertical: Fixed(3), EdgeAll: Fixed(1)},
			edge: EdgeBottom,
			want: Fixed(3),
		},
		"vertical does not apply to left": {
			set:  map[Edge]Number{EdgeVertical: Fixed(3)},
			edge: EdgeLeft,
			want: def,
		},
		"all applies to top": {
			set:  map[Edge]Number{EdgeAll: Fixed(1)},
			edge: EdgeTop,
			want: Fixed(1),
		},
		"horizontal applies to start": {
			set:  map[Edge]Number{EdgeHorizontal: Percent(10)},
			edge: EdgeStart,
			want: Percent(10),
		},
		"unset side takes default": {
			edge: EdgeTop,
			want: def,
		},
		"unset start stays undefined": {
			edge: EdgeEnd,
			want: Undefined(),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var s EdgeSet
			for edge, v := range tt.set {
				s.Set(edge, v)
			}
			if got := s.ComputedEdgeValue(tt.edge, def); !got.Equal(tt.want) {
				t.Errorf("ComputedEdgeValue(%v) = %v, want %v", tt.edge, got, tt.want)
			}
		})
	}
}

func TestEdgeSet_StartOverridesLeft(t *testing.T) {
	n := newTestNode(func(p *Plan) {
		p.Margin().Set(EdgeLeft, Fixed(5))
		p.Margin().Set(EdgeStart, Fixed(4))
		p.Margin().Set(EdgeRight, Fixed(1))
	})
	if got := n.margin(EdgeLeft, 100, 100); got != 4 {
		t.Errorf("margin(left) = %v, want 4", got)
	}
	if got := n.margin(EdgeRight, 100, 100); got != 1 {
		t.Errorf("margin(right) = %v, want 1", got)
	}
}

func TestEdgeSet_SetMarksOwnerDirty(t *testing.T) {
	parent := newTestNode()
	child := newTestNode()
	parent.AddChild(child)
	parent.ClearDirtyFlags()

	child.Plan().Padding().Set(EdgeTop, Fixed(1))
	if !child.Plan().Padding().IsDirty() {
		t.Error("padding set not dirty after Set")
	}
	if !child.IsDirty() || !parent.IsDirty() {
		t.Errorf("dirty child=%v parent=%v, want both true", child.IsDirty(), parent.IsDirty())
	}

	parent.ClearDirtyFlags()
	if child.Plan().Padding().IsDirty() {
		t.Error("ClearDirtyFlags left the padding set dirty")
	}
	child.Plan().Padding().Set(EdgeTop, Fixed(1))
	if child.IsDirty() || parent.IsDirty() {
		t.Error("setting an equal value dirtied the tree")
	}
}

func TestEdgeSet_PercentResolvesPerAxis(t *testing.T) {
	root := newTestNode(size(100, 50))
	child := newTestNode(size(10, 10), func(p *Plan) {
		p.Margin().Set(EdgeLeft, Percent(10))
		p.Margin().Set(EdgeTop, Percent(10))
	})
	root.AddChild(child)
	Arrange(root, 100, 50)

	assertBounds(t, "child", child, Rect{X: 10, Y: 5, Width: 10, Height: 10})
	if got := child.Actual().Margin; got.Left != 10 || got.Top != 5 {
		t.Errorf("resolved margin = %+v, want left 10 top 5", got)
	}
}

func TestEdges_Sums(t *testing.T) {
	e := Edges{Top: 1, Right: 2, Bottom: 3, Left: 4}
	if e.Horizontal() != 6 {
		t.Errorf("Horizontal() = %d, want 6", e.Horizontal())
	}
	if e.Vertical() != 4 {
		t.Errorf("Vertical() = %d, want 4", e.Vertical())
	}
	if got := EdgeAllOf(2); got != (Edges{2, 2, 2, 2}) {
		t.Errorf("EdgeAllOf(2) = %+v", got)
	}
}
