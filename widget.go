package flex

// Widget is implemented by anything that knows its own default layout.
// ForWidget starts from DefaultPlan and applies options on top.
type Widget interface {
	DefaultPlan() Plan
}

// Measurer is implemented by widgets that are leaves with intrinsic content.
type Measurer interface {
	Widget
	MeasureFunc() MeasureFunc
}

// ForWidget creates a node from the widget's default plan, attaches its
// measure callback when it has one, then applies opts.
func ForWidget(w Widget, opts ...Option) *Node {
	n := NewNode(w.DefaultPlan())
	if m, ok := w.(Measurer); ok {
		n.SetMeasureFunc(m.MeasureFunc())
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

var (
	_ Widget   = Box{}
	_ Widget   = RowBox{}
	_ Widget   = ColumnBox{}
	_ Widget   = Spacer{}
	_ Widget   = Divider{}
	_ Measurer = Label{}
)

// Box is a plain container: a row that stretches its children.
type Box struct{}

func (Box) DefaultPlan() Plan {
	return DefaultPlan()
}

// RowBox lays its children out left to right, vertically centered.
type RowBox struct{}

func (RowBox) DefaultPlan() Plan {
	p := DefaultPlan()
	p.SetDirection(Row)
	p.SetAlignItems(AlignCenter)
	return p
}

// ColumnBox stacks its children top to bottom at full width.
type ColumnBox struct{}

func (ColumnBox) DefaultPlan() Plan {
	p := DefaultPlan()
	p.SetDirection(Column)
	return p
}

// Label is a single run of text that wraps to the available width.
type Label struct {
	Text string
}

func (Label) DefaultPlan() Plan {
	p := DefaultPlan()
	p.SetIsText(true)
	return p
}

func (l Label) MeasureFunc() MeasureFunc {
	return TextMeasure(l.Text)
}

// Spacer absorbs free space on its parent's main axis.
type Spacer struct{}

func (Spacer) DefaultPlan() Plan {
	p := DefaultPlan()
	p.SetFlexGrow(1)
	p.SetBasis(Fixed(0))
	return p
}

// Divider is a one-cell rule across its parent's cross axis.
// It is meant for column containers.
type Divider struct{}

func (Divider) DefaultPlan() Plan {
	p := DefaultPlan()
	p.SetHeight(Fixed(1))
	p.SetFlexShrink(0)
	p.SetAlignSelf(AlignStretch)
	return p
}
