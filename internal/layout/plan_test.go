package layout

import "testing"

func TestDefaultPlan(t *testing.T) {
	p := DefaultPlan()
	if p.Direction() != Row {
		t.Errorf("Direction = %v, want row", p.Direction())
	}
	if p.AlignItems() != AlignStretch {
		t.Errorf("AlignItems = %v, want stretch", p.AlignItems())
	}
	if p.AlignSelf() != AlignAuto {
		t.Errorf("AlignSelf = %v, want auto", p.AlignSelf())
	}
	if !p.Width().IsAuto() || !p.Height().IsAuto() || !p.Basis().IsAuto() {
		t.Errorf("Width/Height/Basis = %v/%v/%v, want auto", p.Width(), p.Height(), p.Basis())
	}
	if p.MinWidth().IsDefined() || p.MaxHeight().IsDefined() {
		t.Error("min/max sizes should be undefined")
	}
	if got := p.resolvedFlexGrow(); got != 0 {
		t.Errorf("resolvedFlexGrow = %v, want 0", got)
	}
	if got := p.resolvedFlexShrink(); got != 1 {
		t.Errorf("resolvedFlexShrink = %v, want 1", got)
	}
	if !p.IsDirty() {
		t.Error("default plan should start dirty")
	}
}

func TestPlan_FlexShorthand(t *testing.T) {
	type tc struct {
		configure  func(p *Plan)
		wantGrow   float64
		wantShrink float64
		wantBasis  Number
	}

	tests := map[string]tc{
		"positive flex grows from zero": {
			configure:  func(p *Plan) { p.SetFlex(2) },
			wantGrow:   2,
			wantShrink: 1,
			wantBasis:  Fixed(0),
		},
		"negative flex shrinks": {
			configure:  func(p *Plan) { p.SetFlex(-2) },
			wantGrow:   0,
			wantShrink: 2,
			wantBasis:  Auto(),
		},
		"explicit grow beats flex": {
			configure:  func(p *Plan) { p.SetFlex(2); p.SetFlexGrow(3) },
			wantGrow:   3,
			wantShrink: 1,
			wantBasis:  Fixed(0),
		},
		"explicit basis beats flex": {
			configure:  func(p *Plan) { p.SetFlex(1); p.SetBasis(Fixed(7)) },
			wantGrow:   1,
			wantShrink: 1,
			wantBasis:  Fixed(7),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := DefaultPlan()
			tt.configure(&p)
			if got := p.resolvedFlexGrow(); got != tt.wantGrow {
				t.Errorf("resolvedFlexGrow = %v, want %v", got, tt.wantGrow)
			}
			if got := p.resolvedFlexShrink(); got != tt.wantShrink {
				t.Errorf("resolvedFlexShrink = %v, want %v", got, tt.wantShrink)
			}
			if got := p.resolvedBasis(); !got.Equal(tt.wantBasis) {
				t.Errorf("resolvedBasis = %v, want %v", got, tt.wantBasis)
			}
		})
	}
}

func TestPlan_SettersOnlyDirtyOnChange(t *testing.T) {
	n := newTestNode(size(10, 10), grow(1))
	n.ClearDirtyFlags()

	n.Plan().SetWidth(Fixed(10))
	n.Plan().SetFlexGrow(1)
	n.Plan().SetFlexShrink(n.Plan().FlexShrink()) // NaN to NaN
	n.Plan().SetDirection(Row)
	if n.IsDirty() {
		t.Fatal("no-op setters marked the node dirty")
	}

	n.Plan().SetHeight(Fixed(11))
	if !n.IsDirty() {
		t.Error("SetHeight with a new value did not mark the node dirty")
	}
}

func TestPlan_SetDirtyFalseClearsEdges(t *testing.T) {
	p := DefaultPlan()
	p.Margin().Set(EdgeAll, Fixed(1))
	p.Position().Set(EdgeTop, Fixed(1))
	p.SetDirty(false)
	if p.IsDirty() || p.Margin().IsDirty() || p.Position().IsDirty() {
		t.Error("SetDirty(false) left a flag set")
	}
}

func TestPlan_AspectRatioNonPositiveDisables(t *testing.T) {
	p := DefaultPlan()
	p.SetAspectRatio(-1)
	if p.hasAspectRatio() {
		t.Error("negative aspect ratio should be disabled")
	}
	p.SetAspectRatio(2)
	if !p.hasAspectRatio() || p.AspectRatio() != 2 {
		t.Errorf("AspectRatio = %v, want 2", p.AspectRatio())
	}
}

func TestPlan_GapClampedToZero(t *testing.T) {
	p := DefaultPlan()
	p.SetGap(-3)
	if p.Gap() != 0 {
		t.Errorf("Gap = %v, want 0", p.Gap())
	}
}

func TestPlan_Equal(t *testing.T) {
	a := DefaultPlan()
	b := DefaultPlan()
	if !a.Equal(&b) {
		t.Fatal("two default plans differ")
	}
	b.Padding().Set(EdgeLeft, Fixed(1))
	if a.Equal(&b) {
		t.Error("plans with different padding compare equal")
	}
}

func TestEnumStrings(t *testing.T) {
	tests := map[string]struct {
		got  string
		want string
	}{
		"direction":    {ColumnReverse.String(), "column-reverse"},
		"wrap":         {WrapReverse.String(), "wrap-reverse"},
		"justify":      {JustifySpaceEvenly.String(), "space-evenly"},
		"align":        {AlignBaseline.String(), "baseline"},
		"position":     {PositionAbsolute.String(), "absolute"},
		"measure":      {MeasureAtMost.String(), "at-most"},
		"edge":         {EdgeHorizontal.String(), "horizontal"},
		"out of range": {Direction(42).String(), "unknown"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("String() = %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestParseEnums(t *testing.T) {
	for _, name := range directionNames {
		d, ok := ParseDirection(name)
		if !ok || d.String() != name {
			t.Errorf("ParseDirection(%q) = %v, %v", name, d, ok)
		}
	}
	if a, ok := ParseAlign("space-around"); !ok || a != AlignSpaceAround {
		t.Errorf("ParseAlign(space-around) = %v, %v", a, ok)
	}
	if _, ok := ParseWrap("sideways"); ok {
		t.Error("ParseWrap accepted an unknown name")
	}
	if e, ok := ParseEdge("vertical"); !ok || e != EdgeVertical {
		t.Errorf("ParseEdge(vertical) = %v, %v", e, ok)
	}
	if _, ok := ParseEdge("middle"); ok {
		t.Error("ParseEdge accepted an unknown name")
	}
}
