package flex

// Option configures a Node built by New or ForWidget.
type Option func(*Node)

// --- Identity ---

// WithName sets the label used in logs, dumps and reports.
func WithName(name string) Option {
	return func(n *Node) {
		n.SetName(name)
	}
}

// --- Dimension Options ---

// WithWidth sets a fixed width in terminal cells.
func WithWidth(cells int) Option {
	return func(n *Node) {
		n.Plan().SetWidth(Fixed(float64(cells)))
	}
}

// WithWidthPercent sets width as a percentage of the parent's inner width.
func WithWidthPercent(percent float64) Option {
	return func(n *Node) {
		n.Plan().SetWidth(Percent(percent))
	}
}

// WithHeight sets a fixed height in terminal cells.
func WithHeight(cells int) Option {
	return func(n *Node) {
		n.Plan().SetHeight(Fixed(float64(cells)))
	}
}

// WithHeightPercent sets height as a percentage of the parent's inner height.
func WithHeightPercent(percent float64) Option {
	return func(n *Node) {
		n.Plan().SetHeight(Percent(percent))
	}
}

// WithSize sets both width and height in terminal cells.
func WithSize(width, height int) Option {
	return func(n *Node) {
		n.Plan().SetWidth(Fixed(float64(width)))
		n.Plan().SetHeight(Fixed(float64(height)))
	}
}

// WithMinWidth sets the minimum width in terminal cells.
func WithMinWidth(cells int) Option {
	return func(n *Node) {
		n.Plan().SetMinWidth(Fixed(float64(cells)))
	}
}

// WithMinHeight sets the minimum height in terminal cells.
func WithMinHeight(cells int) Option {
	return func(n *Node) {
		n.Plan().SetMinHeight(Fixed(float64(cells)))
	}
}

// WithMaxWidth sets the maximum width in terminal cells.
func WithMaxWidth(cells int) Option {
	return func(n *Node) {
		n.Plan().SetMaxWidth(Fixed(float64(cells)))
	}
}

// WithMaxHeight sets the maximum height in terminal cells.
func WithMaxHeight(cells int) Option {
	return func(n *Node) {
		n.Plan().SetMaxHeight(Fixed(float64(cells)))
	}
}

// WithAspectRatio fixes width/height. Non-positive ratios unset it.
func WithAspectRatio(ratio float64) Option {
	return func(n *Node) {
		n.Plan().SetAspectRatio(ratio)
	}
}

// --- Flex Container Options ---

// WithDirection sets the main axis direction for laying out children.
func WithDirection(d Direction) Option {
	return func(n *Node) {
		n.Plan().SetDirection(d)
	}
}

// WithWrap lets children flow onto multiple lines.
func WithWrap(w Wrap) Option {
	return func(n *Node) {
		n.Plan().SetWrap(w)
	}
}

// WithJustify sets how children are distributed along the main axis.
func WithJustify(j Justify) Option {
	return func(n *Node) {
		n.Plan().SetJustifyContent(j)
	}
}

// WithAlign sets how children are aligned on the cross axis.
func WithAlign(a Align) Option {
	return func(n *Node) {
		n.Plan().SetAlignItems(a)
	}
}

// WithAlignContent sets how wrapped lines share the cross axis.
func WithAlignContent(a Align) Option {
	return func(n *Node) {
		n.Plan().SetAlignContent(a)
	}
}

// WithGap sets the space between children on the main axis.
func WithGap(cells int) Option {
	return func(n *Node) {
		n.Plan().SetGap(float64(cells))
	}
}

// WithOverflow sets how the container treats children that do not fit.
func WithOverflow(o Overflow) Option {
	return func(n *Node) {
		n.Plan().SetOverflow(o)
	}
}

// --- Flex Item Options ---

// WithFlex sets the flex shorthand factor.
func WithFlex(factor float64) Option {
	return func(n *Node) {
		n.Plan().SetFlex(factor)
	}
}

// WithFlexGrow sets how much this node grows relative to its siblings.
func WithFlexGrow(factor float64) Option {
	return func(n *Node) {
		n.Plan().SetFlexGrow(factor)
	}
}

// WithFlexShrink sets how much this node shrinks relative to its siblings.
func WithFlexShrink(factor float64) Option {
	return func(n *Node) {
		n.Plan().SetFlexShrink(factor)
	}
}

// WithBasis sets the main-axis size the node starts from before flexing.
func WithBasis(basis Number) Option {
	return func(n *Node) {
		n.Plan().SetBasis(basis)
	}
}

// WithAlignSelf overrides the parent's AlignItems for this node.
func WithAlignSelf(a Align) Option {
	return func(n *Node) {
		n.Plan().SetAlignSelf(a)
	}
}

// --- Spacing Options ---

// WithPadding sets equal padding on all sides.
func WithPadding(cells int) Option {
	return func(n *Node) {
		n.Plan().Padding().SetAll(Fixed(float64(cells)))
	}
}

// WithPaddingTRBL sets padding for each side (top, right, bottom, left).
func WithPaddingTRBL(top, right, bottom, left int) Option {
	return func(n *Node) {
		setTRBL(n.Plan().Padding(), top, right, bottom, left)
	}
}

// WithMargin sets equal margin on all sides.
func WithMargin(cells int) Option {
	return func(n *Node) {
		n.Plan().Margin().SetAll(Fixed(float64(cells)))
	}
}

// WithMarginTRBL sets margin for each side (top, right, bottom, left).
func WithMarginTRBL(top, right, bottom, left int) Option {
	return func(n *Node) {
		setTRBL(n.Plan().Margin(), top, right, bottom, left)
	}
}

// WithMarginAuto sets an auto margin on edge, which absorbs free space.
func WithMarginAuto(edge Edge) Option {
	return func(n *Node) {
		n.Plan().Margin().Set(edge, Auto())
	}
}

func setTRBL(s *EdgeSet, top, right, bottom, left int) {
	s.Set(EdgeTop, Fixed(float64(top)))
	s.Set(EdgeRight, Fixed(float64(right)))
	s.Set(EdgeBottom, Fixed(float64(bottom)))
	s.Set(EdgeLeft, Fixed(float64(left)))
}

// --- Position Options ---

// WithPosition sets an offset on edge. Relative nodes are nudged by it;
// absolute nodes are inset from the parent's padding box.
func WithPosition(edge Edge, cells int) Option {
	return func(n *Node) {
		n.Plan().Position().Set(edge, Fixed(float64(cells)))
	}
}

// WithAbsolute takes the node out of flow.
func WithAbsolute() Option {
	return func(n *Node) {
		n.Plan().SetPositionType(PositionAbsolute)
	}
}

// --- Leaf Options ---

// WithText makes the node a text leaf measured by TextMeasure. The name
// defaults to the text when none was set.
func WithText(content string) Option {
	return func(n *Node) {
		n.Plan().SetIsText(true)
		n.SetMeasureFunc(TextMeasure(content))
		if n.Name() == "" {
			n.SetName(content)
		}
	}
}

// WithMeasure attaches a custom measure callback. The node must stay a leaf.
func WithMeasure(fn MeasureFunc) Option {
	return func(n *Node) {
		n.SetMeasureFunc(fn)
	}
}

// WithBaseline attaches a baseline callback used by AlignBaseline.
func WithBaseline(fn BaselineFunc) Option {
	return func(n *Node) {
		n.SetBaselineFunc(fn)
	}
}

// WithReferenceBaseline makes this node the one its ancestors align on.
func WithReferenceBaseline() Option {
	return func(n *Node) {
		n.Plan().SetReferenceBaseline(true)
	}
}

// WithAtomic lays the node out as a single unit with no visible children.
func WithAtomic() Option {
	return func(n *Node) {
		n.Plan().SetAtomic(true)
	}
}

// --- Tree Options ---

// WithChildren appends children in order.
func WithChildren(children ...*Node) Option {
	return func(n *Node) {
		n.AddChild(children...)
	}
}
