package layout

import (
	"math"
	"testing"
)

func absolute(p *Plan) { p.SetPositionType(PositionAbsolute) }

func offsets(edges map[Edge]float64) func(*Plan) {
	return func(p *Plan) {
		for e, v := range edges {
			p.Position().Set(e, Fixed(v))
		}
	}
}

func TestArrange_AbsoluteExcludedFromFlow(t *testing.T) {
	root := newTestNode(size(20, 10))
	a := newTestNode(size(5, 5))
	abs := newTestNode(size(3, 3), absolute, offsets(map[Edge]float64{EdgeLeft: 2, EdgeTop: 1}))
	b := newTestNode(size(5, 5))
	root.AddChild(a, abs, b)
	Arrange(root, 20, 10)

	assertBounds(t, "A", a, Rect{X: 0, Width: 5, Height: 5})
	assertBounds(t, "abs", abs, Rect{X: 2, Y: 1, Width: 3, Height: 3})
	assertBounds(t, "B", b, Rect{X: 5, Width: 5, Height: 5})
}

func TestArrange_AbsoluteIgnoredByContentSize(t *testing.T) {
	root := newTestNode()
	root.AddChild(newTestNode(size(5, 5)), newTestNode(size(50, 50), absolute))
	Arrange(root, math.NaN(), math.NaN())

	assertBounds(t, "root", root, Rect{Width: 5, Height: 5})
}

func TestArrange_AbsolutePositioning(t *testing.T) {
	tests := map[string]struct {
		container func(*Plan)
		child     []func(*Plan)
		want      Rect
	}{
		"leading offsets inside padding": {
			container: func(p *Plan) { p.Padding().SetAll(Fixed(1)) },
			child:     []func(*Plan){size(3, 3), offsets(map[Edge]float64{EdgeLeft: 2, EdgeTop: 1})},
			want:      Rect{X: 3, Y: 2, Width: 3, Height: 3},
		},
		"opposing offsets define the size": {
			child: []func(*Plan){
				func(p *Plan) { p.SetHeight(Fixed(1)) },
				offsets(map[Edge]float64{EdgeLeft: 2, EdgeRight: 3, EdgeTop: 0}),
			},
			want: Rect{X: 2, Width: 15, Height: 1},
		},
		"trailing offsets": {
			child: []func(*Plan){size(4, 2), offsets(map[Edge]float64{EdgeRight: 1, EdgeBottom: 1})},
			want:  Rect{X: 15, Y: 7, Width: 4, Height: 2},
		},
		"leading wins over trailing with a size": {
			child: []func(*Plan){size(4, 2), offsets(map[Edge]float64{EdgeLeft: 1, EdgeRight: 1})},
			want:  Rect{X: 1, Width: 4, Height: 2},
		},
		"start overrides left": {
			child: []func(*Plan){size(4, 2), offsets(map[Edge]float64{EdgeLeft: 1, EdgeStart: 6})},
			want:  Rect{X: 6, Width: 4, Height: 2},
		},
		"percent offsets": {
			child: []func(*Plan){size(4, 2), func(p *Plan) {
				p.Position().Set(EdgeLeft, Percent(50))
				p.Position().Set(EdgeTop, Percent(50))
			}},
			want: Rect{X: 10, Y: 5, Width: 4, Height: 2},
		},
		"margin shifts the box": {
			child: []func(*Plan){
				size(4, 2),
				offsets(map[Edge]float64{EdgeLeft: 1, EdgeTop: 1}),
				func(p *Plan) { p.Margin().SetAll(Fixed(1)) },
			},
			want: Rect{X: 2, Y: 2, Width: 4, Height: 2},
		},
		"no offsets follow justify and align": {
			container: func(p *Plan) {
				p.SetJustifyContent(JustifyCenter)
				p.SetAlignItems(AlignEnd)
			},
			child: []func(*Plan){size(4, 2)},
			want:  Rect{X: 8, Y: 8, Width: 4, Height: 2},
		},
		"no offsets in reversed row": {
			container: func(p *Plan) { p.SetDirection(RowReverse) },
			child:     []func(*Plan){size(4, 2)},
			want:      Rect{X: 16, Y: 0, Width: 4, Height: 2},
		},
		"aspect ratio from width": {
			child: []func(*Plan){func(p *Plan) {
				p.SetWidth(Fixed(6))
				p.SetAspectRatio(3)
			}},
			want: Rect{Width: 6, Height: 2},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root := newTestNode(size(20, 10))
			if tt.container != nil {
				tt.container(root.Plan())
			}
			child := newTestNode(append([]func(*Plan){absolute}, tt.child...)...)
			root.AddChild(child)
			Arrange(root, 20, 10)
			assertBounds(t, "child", child, tt.want)
		})
	}
}

func TestArrange_AbsoluteContentSized(t *testing.T) {
	root := newTestNode(size(20, 10))
	abs := newTestNode(absolute, column, offsets(map[Edge]float64{EdgeLeft: 1, EdgeTop: 1}))
	abs.AddChild(newTestNode(size(6, 2)), newTestNode(size(3, 1)))
	root.AddChild(abs)
	Arrange(root, 20, 10)

	assertBounds(t, "abs", abs, Rect{X: 1, Y: 1, Width: 6, Height: 3})
}

func TestArrange_RelativeOffsetNudges(t *testing.T) {
	tests := map[string]struct {
		edges map[Edge]float64
		want  Rect
	}{
		"left and top":     {map[Edge]float64{EdgeLeft: 2, EdgeTop: 1}, Rect{X: 2, Y: 1, Width: 5, Height: 5}},
		"right moves left": {map[Edge]float64{EdgeRight: 2}, Rect{X: -2, Width: 5, Height: 5}},
		"bottom moves up":  {map[Edge]float64{EdgeBottom: 3}, Rect{Y: -3, Width: 5, Height: 5}},
		"left beats right": {map[Edge]float64{EdgeLeft: 1, EdgeRight: 4}, Rect{X: 1, Width: 5, Height: 5}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root := newTestNode(size(20, 10))
			a := newTestNode(size(5, 5), offsets(tt.edges))
			b := newTestNode(size(5, 5))
			root.AddChild(a, b)
			Arrange(root, 20, 10)

			assertBounds(t, "A", a, tt.want)
			// Siblings keep their flow position.
			assertBounds(t, "B", b, Rect{X: 5, Width: 5, Height: 5})
		})
	}
}

func TestArrange_AspectRatio(t *testing.T) {
	t.Run("row derives height", func(t *testing.T) {
		root := newTestNode(size(20, 10), func(p *Plan) { p.SetAlignItems(AlignStart) })
		child := newTestNode(func(p *Plan) {
			p.SetWidth(Fixed(8))
			p.SetAspectRatio(2)
		})
		root.AddChild(child)
		Arrange(root, 20, 10)
		assertBounds(t, "child", child, Rect{Width: 8, Height: 4})
	})

	t.Run("column derives width", func(t *testing.T) {
		root := newTestNode(size(20, 20), column, func(p *Plan) { p.SetAlignItems(AlignStart) })
		child := newTestNode(func(p *Plan) {
			p.SetHeight(Fixed(4))
			p.SetAspectRatio(2)
		})
		root.AddChild(child)
		Arrange(root, 20, 20)
		assertBounds(t, "child", child, Rect{Width: 8, Height: 4})
	})

	t.Run("stretched row child keeps ratio", func(t *testing.T) {
		root := newTestNode(size(20, 10))
		child := newTestNode(func(p *Plan) {
			p.SetWidth(Fixed(6))
			p.SetAspectRatio(3)
		})
		root.AddChild(child)
		Arrange(root, 20, 10)
		assertBounds(t, "child", child, Rect{Width: 6, Height: 2})
	})
}
