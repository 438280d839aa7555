package layout

// measureLeaf sizes a node that has a MeasureFunc. The callback sees the
// space inside the node's padding; it is skipped when both axes are exact.
func (p *pass) measureLeaf(n *Node, availW, availH float64, wm, hm MeasureMode, ow, oh float64) {
	a := &n.actual
	padRow := n.paddingForAxis(Row, ow, oh)
	padColumn := n.paddingForAxis(Column, ow, oh)
	marginRow := n.marginForAxis(Row, ow, oh)
	marginColumn := n.marginForAxis(Column, ow, oh)

	if wm == MeasureExactly && hm == MeasureExactly {
		a.measuredWidth = n.boundAxis(Row, availW-marginRow, ow, ow, oh)
		a.measuredHeight = n.boundAxis(Column, availH-marginColumn, oh, ow, oh)
		return
	}

	innerW := availW
	if !isUndefined(availW) {
		innerW = max(0, availW-marginRow-padRow)
	}
	innerH := availH
	if !isUndefined(availH) {
		innerH = max(0, availH-marginColumn-padColumn)
	}

	p.stats.MeasureCalls++
	size := n.measure(innerW, wm, innerH, hm)

	width := availW - marginRow
	if wm != MeasureExactly {
		width = sanitize(size.Width) + padRow
	}
	height := availH - marginColumn
	if hm != MeasureExactly {
		height = sanitize(size.Height) + padColumn
	}
	a.measuredWidth = n.boundAxis(Row, width, ow, ow, oh)
	a.measuredHeight = n.boundAxis(Column, height, oh, ow, oh)
}

// sanitize turns NaN and negative measure results into zero.
func sanitize(v float64) float64 {
	if isUndefined(v) || v < 0 {
		return 0
	}
	return v
}

// emptyLeaf sizes a node with no children that take part in layout: the
// available size when exact, else just its padding.
func emptyLeaf(n *Node, availW, availH float64, wm, hm MeasureMode, ow, oh float64) {
	a := &n.actual
	width := availW - n.marginForAxis(Row, ow, oh)
	if wm != MeasureExactly {
		width = n.paddingForAxis(Row, ow, oh)
	}
	height := availH - n.marginForAxis(Column, ow, oh)
	if hm != MeasureExactly {
		height = n.paddingForAxis(Column, ow, oh)
	}
	a.measuredWidth = n.boundAxis(Row, width, ow, ow, oh)
	a.measuredHeight = n.boundAxis(Column, height, oh, ow, oh)
}

// fixedSizeLeaf short-circuits measurement when the size is already known:
// both axes exact, or an at-most bound of zero or less. It reports whether
// the size was set.
func fixedSizeLeaf(n *Node, availW, availH float64, wm, hm MeasureMode, ow, oh float64) bool {
	if !(wm == MeasureAtMost && availW <= 0) &&
		!(hm == MeasureAtMost && availH <= 0) &&
		!(wm == MeasureExactly && hm == MeasureExactly) {
		return false
	}
	a := &n.actual
	width := availW - n.marginForAxis(Row, ow, oh)
	if isUndefined(availW) || (wm == MeasureAtMost && availW < 0) {
		width = 0
	}
	height := availH - n.marginForAxis(Column, ow, oh)
	if isUndefined(availH) || (hm == MeasureAtMost && availH < 0) {
		height = 0
	}
	a.measuredWidth = n.boundAxis(Row, width, ow, ow, oh)
	a.measuredHeight = n.boundAxis(Column, height, oh, ow, oh)
	return true
}
