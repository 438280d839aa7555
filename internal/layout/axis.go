package layout

// Axis helpers. A Direction doubles as an axis: Row and RowReverse run
// horizontally, Column and ColumnReverse vertically.

var (
	leadingEdge  = [4]Edge{Row: EdgeLeft, RowReverse: EdgeRight, Column: EdgeTop, ColumnReverse: EdgeBottom}
	trailingEdge = [4]Edge{Row: EdgeRight, RowReverse: EdgeLeft, Column: EdgeBottom, ColumnReverse: EdgeTop}
)

func (d Direction) isRow() bool {
	return d == Row || d == RowReverse
}

func (d Direction) isReversed() bool {
	return d == RowReverse || d == ColumnReverse
}

func (d Direction) cross() Direction {
	if d.isRow() {
		return Column
	}
	return Row
}

// physical returns the Number that applies to a physical side. Start and End
// override Left and Right; other sides fall back through ComputedEdgeValue.
func physical(s *EdgeSet, edge Edge) Number {
	switch edge {
	case EdgeLeft:
		if v := s.values[EdgeStart]; v.Unit != UnitUndefined {
			return v
		}
	case EdgeRight:
		if v := s.values[EdgeEnd]; v.Unit != UnitUndefined {
			return v
		}
	}
	return s.ComputedEdgeValue(edge, Undefined())
}

// ownerBase picks the percent base for a side: width for horizontal sides,
// height for vertical ones.
func ownerBase(edge Edge, ownerWidth, ownerHeight float64) float64 {
	if edge == EdgeTop || edge == EdgeBottom {
		return ownerHeight
	}
	return ownerWidth
}

func resolveSide(s *EdgeSet, edge Edge, ownerWidth, ownerHeight float64) float64 {
	v := physical(s, edge).Resolve(ownerBase(edge, ownerWidth, ownerHeight))
	if isUndefined(v) {
		return 0
	}
	return v
}

func (n *Node) margin(edge Edge, ow, oh float64) float64 {
	return resolveSide(&n.plan.margin, edge, ow, oh)
}

func (n *Node) padding(edge Edge, ow, oh float64) float64 {
	return max(0, resolveSide(&n.plan.padding, edge, ow, oh))
}

func (n *Node) leadingMargin(axis Direction, ow, oh float64) float64 {
	return n.margin(leadingEdge[axis], ow, oh)
}

func (n *Node) trailingMargin(axis Direction, ow, oh float64) float64 {
	return n.margin(trailingEdge[axis], ow, oh)
}

func (n *Node) marginForAxis(axis Direction, ow, oh float64) float64 {
	return n.leadingMargin(axis, ow, oh) + n.trailingMargin(axis, ow, oh)
}

func (n *Node) leadingPadding(axis Direction, ow, oh float64) float64 {
	return n.padding(leadingEdge[axis], ow, oh)
}

func (n *Node) trailingPadding(axis Direction, ow, oh float64) float64 {
	return n.padding(trailingEdge[axis], ow, oh)
}

func (n *Node) paddingForAxis(axis Direction, ow, oh float64) float64 {
	return n.leadingPadding(axis, ow, oh) + n.trailingPadding(axis, ow, oh)
}

func (n *Node) marginIsAuto(edge Edge) bool {
	return physical(&n.plan.margin, edge).IsAuto()
}

func (n *Node) positionDefined(edge Edge) bool {
	return physical(&n.plan.position, edge).IsDefined()
}

func (n *Node) position(edge Edge, ow, oh float64) float64 {
	return resolveSide(&n.plan.position, edge, ow, oh)
}

// relativeOffset is the visual nudge on a physical axis: the leading offset
// if set, else the negated trailing offset.
func (n *Node) relativeOffset(horizontal bool, ow, oh float64) float64 {
	lead, trail := EdgeTop, EdgeBottom
	if horizontal {
		lead, trail = EdgeLeft, EdgeRight
	}
	if n.positionDefined(lead) {
		return n.position(lead, ow, oh)
	}
	if n.positionDefined(trail) {
		return -n.position(trail, ow, oh)
	}
	return 0
}

// resolveDimensions pins a size when its min and max are equal. Negative
// sizes clamp to 0 and stay definite.
func (n *Node) resolveDimensions() {
	p := &n.plan
	n.actual.ResolvedWidth = p.width
	if p.maxWidth.IsDefined() && p.maxWidth.Equal(p.minWidth) {
		n.actual.ResolvedWidth = p.maxWidth
	}
	n.actual.ResolvedHeight = p.height
	if p.maxHeight.IsDefined() && p.maxHeight.Equal(p.minHeight) {
		n.actual.ResolvedHeight = p.maxHeight
	}
	n.actual.ResolvedWidth = clampNegative(n.actual.ResolvedWidth)
	n.actual.ResolvedHeight = clampNegative(n.actual.ResolvedHeight)
}

func clampNegative(v Number) Number {
	if v.IsDefined() && v.Value < 0 {
		v.Value = 0
	}
	return v
}

// styleDimDefined reports whether the resolved size on axis is usable
// against ownerSize.
func (n *Node) styleDimDefined(axis Direction, ownerSize float64) bool {
	v := n.actual.resolvedSize(axis.isRow())
	switch v.Unit {
	case UnitPoint:
		return v.Value >= 0
	case UnitPercent:
		return v.Value >= 0 && !isUndefined(ownerSize)
	default:
		return false
	}
}

func (n *Node) layoutDimDefined(axis Direction) bool {
	v := n.actual.measured(axis.isRow())
	return !isUndefined(v) && v >= 0
}

func (n *Node) boundAxisWithinMinMax(axis Direction, value, axisSize float64) float64 {
	isRow := axis.isRow()
	minV := n.plan.minSize(isRow).Resolve(axisSize)
	maxV := n.plan.maxSize(isRow).Resolve(axisSize)
	if !isUndefined(maxV) && maxV >= 0 && value > maxV {
		value = maxV
	}
	if !isUndefined(minV) && minV >= 0 && value < minV {
		value = minV
	}
	return value
}

// boundAxis clamps value to the node's min/max and never below its padding.
func (n *Node) boundAxis(axis Direction, value, axisSize, ow, oh float64) float64 {
	return fmax(n.boundAxisWithinMinMax(axis, value, axisSize), n.paddingForAxis(axis, ow, oh))
}

// constrainMaxSizeForMode caps size at the node's max (plus margin). An
// undefined mode becomes AtMost when a max exists.
func (n *Node) constrainMaxSizeForMode(axis Direction, ownerAxisSize, ow, oh float64, mode *MeasureMode, size *float64) {
	maxSize := n.plan.maxSize(axis.isRow()).Resolve(ownerAxisSize) + n.marginForAxis(axis, ow, oh)
	switch *mode {
	case MeasureExactly, MeasureAtMost:
		if !isUndefined(maxSize) && *size > maxSize {
			*size = maxSize
		}
	case MeasureUndefined:
		if !isUndefined(maxSize) {
			*mode = MeasureAtMost
			*size = maxSize
		}
	}
}

func (n *Node) resolvedFlexGrow() float64 {
	if n.plan.positionType == PositionAbsolute {
		return 0
	}
	return n.plan.resolvedFlexGrow()
}

func (n *Node) resolvedFlexShrink() float64 {
	if n.plan.positionType == PositionAbsolute {
		return 0
	}
	return n.plan.resolvedFlexShrink()
}

func (n *Node) isFlex() bool {
	return n.resolvedFlexGrow() != 0 || n.resolvedFlexShrink() != 0
}

// alignItem returns the effective cross-axis alignment of child inside n.
func (n *Node) alignItem(child *Node) Align {
	align := child.plan.alignSelf
	if align == AlignAuto {
		align = n.plan.alignItems
	}
	switch align {
	case AlignBaseline:
		if !n.plan.direction.isRow() {
			return AlignStart
		}
	case AlignAuto, AlignSpaceBetween, AlignSpaceAround, AlignSpaceEvenly:
		return AlignStart
	}
	return align
}

func (n *Node) isBaselineLayout() bool {
	if !n.plan.direction.isRow() {
		return false
	}
	if n.plan.alignItems == AlignBaseline {
		return true
	}
	for _, child := range n.children {
		if child.plan.positionType == PositionRelative && child.plan.alignSelf == AlignBaseline {
			return true
		}
	}
	return false
}

func pick(isRow bool, row, column float64) float64 {
	if isRow {
		return row
	}
	return column
}

func pickMode(isRow bool, row, column MeasureMode) MeasureMode {
	if isRow {
		return row
	}
	return column
}
