package layout

import (
	"math"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestArrange_SingleNode(t *testing.T) {
	type tc struct {
		configure  func(p *Plan)
		availableW float64
		availableH float64
		want       Rect
	}

	tests := map[string]tc{
		"fixed width and height": {
			configure:  size(50, 30),
			availableW: 100,
			availableH: 100,
			want:       Rect{Width: 50, Height: 30},
		},
		"auto fills available space": {
			configure:  func(*Plan) {},
			availableW: 100,
			availableH: 80,
			want:       Rect{Width: 100, Height: 80},
		},
		"percent of available": {
			configure: func(p *Plan) {
				p.SetWidth(Percent(50))
				p.SetHeight(Percent(25))
			},
			availableW: 200,
			availableH: 100,
			want:       Rect{Width: 100, Height: 25},
		},
		"margin offsets the root": {
			configure:  func(p *Plan) { p.Margin().SetAll(Fixed(2)) },
			availableW: 20,
			availableH: 10,
			want:       Rect{X: 2, Y: 2, Width: 16, Height: 6},
		},
		"min width beats available": {
			configure:  func(p *Plan) { p.SetMinWidth(Fixed(30)) },
			availableW: 10,
			availableH: 10,
			want:       Rect{Width: 30, Height: 10},
		},
		"max width bounds auto": {
			configure:  func(p *Plan) { p.SetMaxWidth(Fixed(8)) },
			availableW: 10,
			availableH: 10,
			want:       Rect{Width: 0, Height: 10},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			node := newTestNode(tt.configure)
			Arrange(node, tt.availableW, tt.availableH)
			assertBounds(t, "node", node, tt.want)
		})
	}
}

// Three fixed boxes in an 80x26 row sit flush against each other.
func TestArrange_RowOfFixedBoxes(t *testing.T) {
	build := func() (root, a, b, c *Node) {
		root = newTestNode()
		a = newTestNode(size(15, 4))
		b = newTestNode(size(4, 4))
		c = newTestNode(size(15, 4))
		root.AddChild(a, b, c)
		return root, a, b, c
	}

	t.Run("fixed", func(t *testing.T) {
		root, a, b, c := build()
		Arrange(root, 80, 26)
		assertBounds(t, "root", root, Rect{Width: 80, Height: 26})
		assertBounds(t, "A", a, Rect{X: 0, Width: 15, Height: 4})
		assertBounds(t, "B", b, Rect{X: 15, Width: 4, Height: 4})
		assertBounds(t, "C", c, Rect{X: 19, Width: 15, Height: 4})
		if got := c.Bounds().Right() - 1; got != 33 {
			t.Errorf("C last column = %d, want 33", got)
		}
	})

	t.Run("middle grows", func(t *testing.T) {
		root, a, b, c := build()
		b.Plan().SetFlexGrow(1)
		Arrange(root, 80, 26)
		assertBounds(t, "A", a, Rect{X: 0, Width: 15, Height: 4})
		assertBounds(t, "B", b, Rect{X: 15, Width: 50, Height: 4})
		assertBounds(t, "C", c, Rect{X: 65, Width: 15, Height: 4})
	})
}

func TestArrange_ColumnWithPadding(t *testing.T) {
	root := newTestNode(column, func(p *Plan) { p.Padding().SetAll(Fixed(1)) })
	a := newTestNode(size(5, 2))
	b := newTestNode(size(5, 2))
	root.AddChild(a, b)
	Arrange(root, 20, 10)

	assertBounds(t, "A", a, Rect{X: 1, Y: 1, Width: 5, Height: 2})
	assertBounds(t, "B", b, Rect{X: 1, Y: 3, Width: 5, Height: 2})
	if got, want := root.Actual().ContentBounds(), (Rect{X: 1, Y: 1, Width: 18, Height: 8}); got != want {
		t.Errorf("ContentBounds = %+v, want %+v", got, want)
	}
}

func TestArrange_PaddedChildGrows(t *testing.T) {
	root := newTestNode(size(50, 30), func(p *Plan) { p.Padding().SetAll(Fixed(2)) })
	child := newTestNode(grow(1))
	root.AddChild(child)
	Arrange(root, 100, 100)

	assertBounds(t, "child", child, Rect{X: 2, Y: 2, Width: 46, Height: 26})
}

func TestArrange_TwoChildren(t *testing.T) {
	tests := map[string]struct {
		direction Direction
		wantA     Rect
		wantB     Rect
	}{
		"row": {
			direction: Row,
			wantA:     Rect{X: 0, Y: 0, Width: 10, Height: 4},
			wantB:     Rect{X: 10, Y: 0, Width: 6, Height: 3},
		},
		"column": {
			direction: Column,
			wantA:     Rect{X: 0, Y: 0, Width: 10, Height: 4},
			wantB:     Rect{X: 0, Y: 4, Width: 6, Height: 3},
		},
		"row reverse": {
			direction: RowReverse,
			wantA:     Rect{X: 30, Y: 0, Width: 10, Height: 4},
			wantB:     Rect{X: 24, Y: 0, Width: 6, Height: 3},
		},
		"column reverse": {
			direction: ColumnReverse,
			wantA:     Rect{X: 0, Y: 16, Width: 10, Height: 4},
			wantB:     Rect{X: 0, Y: 13, Width: 6, Height: 3},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root := newTestNode(size(40, 20), func(p *Plan) { p.SetDirection(tt.direction) })
			a := newTestNode(size(10, 4))
			b := newTestNode(size(6, 3))
			root.AddChild(a, b)
			Arrange(root, 40, 20)
			assertBounds(t, "A", a, tt.wantA)
			assertBounds(t, "B", b, tt.wantB)
		})
	}
}

func TestArrange_NestedPercent(t *testing.T) {
	root := newTestNode(size(200, 100))
	child := newTestNode(func(p *Plan) { p.SetWidth(Percent(50)) })
	grandchild := newTestNode(func(p *Plan) { p.SetWidth(Percent(50)) })
	root.AddChild(child)
	child.AddChild(grandchild)
	Arrange(root, 200, 100)

	assertBounds(t, "child", child, Rect{Width: 100, Height: 100})
	assertBounds(t, "grandchild", grandchild, Rect{Width: 50, Height: 100})
}

func TestArrange_ContentSizedRoot(t *testing.T) {
	root := newTestNode(func(p *Plan) { p.SetGap(5) })
	for range 3 {
		root.AddChild(newTestNode(size(10, 5)))
	}
	Arrange(root, math.NaN(), math.NaN())

	assertBounds(t, "root", root, Rect{Width: 40, Height: 5})
}

func buildSampleTree() *Node {
	root := newTestNode(column, func(p *Plan) { p.Padding().SetAll(Fixed(1)) })
	header := newTestNode(func(p *Plan) { p.SetHeight(Fixed(3)) })
	body := newTestNode(grow(1), func(p *Plan) {
		p.SetWrap(WrapLines)
		p.SetGap(1)
		p.SetJustifyContent(JustifySpaceBetween)
	})
	for i := range 7 {
		body.AddChild(newTestNode(size(float64(5+i), 2), grow(float64(i%2))))
	}
	text := newTestNode()
	text.Plan().SetIsText(true)
	text.SetMeasureFunc(func(w float64, wm MeasureMode, h float64, hm MeasureMode) Size {
		cols := 11.0
		if wm != MeasureUndefined && w < cols {
			cols = math.Max(1, w)
		}
		return Size{Width: cols, Height: math.Ceil(11 / cols)}
	})
	footer := newTestNode(func(p *Plan) { p.SetJustifyContent(JustifyCenter) })
	footer.AddChild(text)
	root.AddChild(header, body, footer)
	return root
}

func collectBounds(n *Node, out []Rect) []Rect {
	out = append(out, n.Bounds())
	for _, child := range n.Children() {
		out = collectBounds(child, out)
	}
	return out
}

func TestArrange_Deterministic(t *testing.T) {
	first := buildSampleTree()
	second := buildSampleTree()
	Arrange(first, 37, 19)
	Arrange(second, 37, 19)

	a := collectBounds(first, nil)
	b := collectBounds(second, nil)
	if len(a) != len(b) {
		t.Fatalf("node count %d != %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("node %d: %+v != %+v", i, a[i], b[i])
		}
	}
}

func TestArrange_Idempotent(t *testing.T) {
	root := buildSampleTree()
	var ar Arranger
	first := ar.Arrange(root, 37, 19)
	before := collectBounds(root, nil)

	second := ar.Arrange(root, 37, 19)
	after := collectBounds(root, nil)

	for i := range before {
		if before[i] != after[i] {
			t.Errorf("node %d moved: %+v -> %+v", i, before[i], after[i])
		}
	}
	if first.Visits == 0 {
		t.Error("first pass visited nothing")
	}
	if second.Visits != 0 {
		t.Errorf("second pass Visits = %d, want 0", second.Visits)
	}
	if second.CacheHits != 1 {
		t.Errorf("second pass CacheHits = %d, want 1", second.CacheHits)
	}
	if second.MeasureCalls != 0 {
		t.Errorf("second pass MeasureCalls = %d, want 0", second.MeasureCalls)
	}
	if second.Generation <= first.Generation {
		t.Errorf("generation %d did not advance past %d", second.Generation, first.Generation)
	}
}

func TestArrange_IncrementalLeafChange(t *testing.T) {
	root := newTestNode()
	a := newTestNode(size(15, 4))
	b := newTestNode(size(4, 4))
	c := newTestNode(size(15, 4))
	root.AddChild(a, b, c)

	var ar Arranger
	ar.Arrange(root, 80, 26)

	b.Plan().SetWidth(Fixed(8))
	if a.IsDirty() || c.IsDirty() {
		t.Fatal("siblings dirtied by a leaf change")
	}
	stats := ar.Arrange(root, 80, 26)

	assertBounds(t, "B", b, Rect{X: 15, Width: 8, Height: 4})
	assertBounds(t, "C", c, Rect{X: 23, Width: 15, Height: 4})
	if stats.Visits != 2 {
		t.Errorf("Visits = %d, want 2 (root and B)", stats.Visits)
	}
	if stats.CacheHits != 2 {
		t.Errorf("CacheHits = %d, want 2 (A and C)", stats.CacheHits)
	}
}

func TestArrange_AvailableSizeChange(t *testing.T) {
	root := newTestNode()
	child := newTestNode(grow(1))
	root.AddChild(child)

	Arrange(root, 30, 5)
	assertBounds(t, "child", child, Rect{Width: 30, Height: 5})

	Arrange(root, 50, 6)
	assertBounds(t, "child", child, Rect{Width: 50, Height: 6})
}

func TestArrange_NilRootPanics(t *testing.T) {
	mustPanic(t, "layout: nil root in Arrange", func() { Arrange(nil, 10, 10) })
}

func TestArranger_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ar := Arranger{Logger: zap.New(core)}

	root := newTestNode(size(20, 5))
	root.SetName("root")
	a := newTestNode(size(15, 5), func(p *Plan) { p.SetFlexShrink(0) })
	b := newTestNode(size(15, 5), func(p *Plan) { p.SetFlexShrink(0) })
	root.AddChild(a, b)
	stats := ar.Arrange(root, 20, 5)

	if stats.Overflows != 1 {
		t.Errorf("Overflows = %d, want 1", stats.Overflows)
	}
	warn := logs.FilterMessage("children overflow their container")
	if warn.Len() != 1 {
		t.Fatalf("overflow warnings = %d, want 1", warn.Len())
	}
	if got := warn.All()[0].ContextMap()["containers"]; got != int64(1) {
		t.Errorf("containers field = %v, want 1", got)
	}

	visits := logs.FilterMessage("layout node").Len()
	if visits != stats.Visits+stats.CacheHits {
		t.Errorf("layout node entries = %d, want %d", visits, stats.Visits+stats.CacheHits)
	}
	done := logs.FilterMessage("arrange complete").All()
	if len(done) != 1 {
		t.Fatalf("arrange complete entries = %d, want 1", len(done))
	}
	if got := done[0].ContextMap()["root"]; got != "root" {
		t.Errorf("root field = %v, want root", got)
	}
}

func TestArranger_QuietAtInfo(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ar := Arranger{Logger: zap.New(core)}
	root := newTestNode(size(10, 10))
	root.AddChild(newTestNode(size(5, 5)))
	ar.Arrange(root, 10, 10)
	if logs.Len() != 0 {
		t.Errorf("logged %d entries at info level, want 0", logs.Len())
	}
}
