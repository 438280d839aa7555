package layout

// layoutAbsoluteChild sizes and places an absolutely positioned child
// against n's content box. Opposing offsets imply a size when none is set;
// the leading offset wins when both offsets and a size are given.
func (p *pass) layoutAbsoluteChild(n, child *Node) {
	a := &n.actual
	ca := &child.actual
	innerW := a.measuredWidth - a.Padding.Horizontal()
	innerH := a.measuredHeight - a.Padding.Vertical()

	marginRow := child.marginForAxis(Row, innerW, innerH)
	marginColumn := child.marginForAxis(Column, innerW, innerH)

	childW, childH := nan, nan
	if child.styleDimDefined(Row, innerW) {
		childW = ca.ResolvedWidth.Resolve(innerW) + marginRow
	} else if child.positionDefined(EdgeLeft) && child.positionDefined(EdgeRight) {
		w := innerW - child.position(EdgeLeft, innerW, innerH) - child.position(EdgeRight, innerW, innerH) - marginRow
		childW = child.boundAxis(Row, w, innerW, innerW, innerH) + marginRow
	}
	if child.styleDimDefined(Column, innerH) {
		childH = ca.ResolvedHeight.Resolve(innerH) + marginColumn
	} else if child.positionDefined(EdgeTop) && child.positionDefined(EdgeBottom) {
		h := innerH - child.position(EdgeTop, innerW, innerH) - child.position(EdgeBottom, innerW, innerH) - marginColumn
		childH = child.boundAxis(Column, h, innerH, innerW, innerH) + marginColumn
	}

	// One known side anchors the other through the aspect ratio.
	if isUndefined(childW) != isUndefined(childH) && child.plan.hasAspectRatio() {
		ratio := child.plan.aspectRatio
		if isUndefined(childW) {
			childW = marginRow + fmax((childH-marginColumn)*ratio, child.paddingForAxis(Row, innerW, innerH))
		} else {
			childH = marginColumn + fmax((childW-marginRow)/ratio, child.paddingForAxis(Column, innerW, innerH))
		}
	}

	if isUndefined(childW) || isUndefined(childH) {
		wm, hm := MeasureExactly, MeasureExactly
		if isUndefined(childW) {
			wm = MeasureUndefined
			if innerW > 0 {
				childW, wm = innerW, MeasureAtMost
			}
		}
		if isUndefined(childH) {
			hm = MeasureUndefined
		}
		p.layoutNode(child, childW, childH, wm, hm, innerW, innerH, false, "abs-measure")
		childW = ca.measuredWidth + marginRow
		childH = ca.measuredHeight + marginColumn
	}

	p.layoutNode(child, childW, childH, MeasureExactly, MeasureExactly, innerW, innerH, true, "abs-layout")

	ca.Position = Sides{}
	ca.Position.Left = p.absoluteOffset(n, child, true, innerW, innerH)
	ca.Position.Top = p.absoluteOffset(n, child, false, innerW, innerH)
}

// absoluteOffset returns the child's leading position on one physical axis.
// Without offsets the child follows the container's justify (main axis) or
// align (cross axis) setting.
func (p *pass) absoluteOffset(n, child *Node, horizontal bool, innerW, innerH float64) float64 {
	a := &n.actual
	ca := &child.actual
	lead, trail := EdgeTop, EdgeBottom
	axis := Column
	if horizontal {
		lead, trail = EdgeLeft, EdgeRight
		axis = Row
	}
	padLead := a.Padding.get(lead)
	padTrail := a.Padding.get(trail)
	size := a.measured(horizontal)
	childSize := ca.measured(horizontal)
	marginLead := child.margin(lead, innerW, innerH)
	marginTrail := child.margin(trail, innerW, innerH)

	if child.positionDefined(lead) {
		return padLead + child.position(lead, innerW, innerH) + marginLead
	}
	if child.positionDefined(trail) {
		return size - padTrail - child.position(trail, innerW, innerH) - marginTrail - childSize
	}

	start := padLead + marginLead
	end := size - padTrail - marginTrail - childSize
	main := n.plan.direction
	if main.isRow() == axis.isRow() {
		switch n.plan.justify {
		case JustifyCenter:
			return (start + end) / 2
		case JustifyEnd:
			if main.isReversed() {
				return start
			}
			return end
		default:
			if main.isReversed() {
				return end
			}
			return start
		}
	}
	atEnd := false
	switch n.alignItem(child) {
	case AlignCenter:
		return (start + end) / 2
	case AlignEnd:
		atEnd = true
	}
	if n.plan.wrap == WrapReverse {
		atEnd = !atEnd
	}
	if atEnd {
		return end
	}
	return start
}
