package layout

// justifyOffset returns the space before the first item and the extra
// space between items for a justify mode. Space-around and space-evenly
// center an overflowing line; space-between packs it at the start.
func justifyOffset(justify Justify, freeSpace float64, itemCount int) (leading, between float64) {
	if itemCount == 0 {
		return 0, 0
	}
	switch justify {
	case JustifyEnd:
		return freeSpace, 0
	case JustifyCenter:
		return freeSpace / 2, 0
	case JustifySpaceBetween:
		if freeSpace <= 0 || itemCount == 1 {
			return 0, 0
		}
		return 0, freeSpace / float64(itemCount-1)
	case JustifySpaceAround:
		if freeSpace < 0 {
			return freeSpace / 2, 0
		}
		between = freeSpace / float64(itemCount)
		return between / 2, between
	case JustifySpaceEvenly:
		if freeSpace < 0 {
			return freeSpace / 2, 0
		}
		between = freeSpace / float64(itemCount+1)
		return between, between
	default: // JustifyStart, JustifyStretch
		return 0, 0
	}
}

// justifyLine places the items of one line along the main axis. It returns
// the main-axis extent of the line (starting at lead) and the largest
// outer cross size of its items.
func justifyLine(n *Node, items []flexItem, remaining, lead, innerW, innerH float64, performLayout bool) (mainDim, crossDim float64) {
	main := n.plan.direction
	cross := main.cross()
	isRow := main.isRow()
	gap := n.plan.gap

	autoMargins := 0
	for i := range items {
		if items[i].node.marginIsAuto(leadingEdge[main]) {
			autoMargins++
		}
		if items[i].node.marginIsAuto(trailingEdge[main]) {
			autoMargins++
		}
	}

	var leading, between, autoShare float64
	if autoMargins == 0 {
		leading, between = justifyOffset(n.plan.justify, remaining, len(items))
	} else {
		autoShare = fmax(remaining, 0) / float64(autoMargins)
	}

	mainDim = lead + leading
	for i := range items {
		child := items[i].node
		ca := &child.actual
		if i > 0 {
			mainDim += between + gap
		}
		if child.marginIsAuto(leadingEdge[main]) {
			mainDim += autoShare
		}
		if performLayout {
			edge := leadingEdge[main]
			ca.Position.set(edge, ca.Position.get(edge)+mainDim)
		}
		if child.marginIsAuto(trailingEdge[main]) {
			mainDim += autoShare
		}
		mainDim += ca.measured(isRow) + items[i].marginMain
		crossDim = fmax(crossDim, ca.measured(!isRow)+child.marginForAxis(cross, innerW, innerH))
	}
	return mainDim, crossDim
}

// alignLine positions the items of one line on the cross axis. Stretched
// items without a definite cross size are laid out again at crossDim.
func (p *pass) alignLine(n *Node, items []flexItem, main Direction, crossDim, containerCross, offset, lineMain, innerW, innerH float64) {
	cross := main.cross()
	isRow := main.isRow()
	innerCross := pick(isRow, innerH, innerW)

	for i := range items {
		child := items[i].node
		ca := &child.actual
		lead := offset
		align := n.alignItem(child)
		autoLead := child.marginIsAuto(leadingEdge[cross])
		autoTrail := child.marginIsAuto(trailingEdge[cross])

		if align == AlignStretch && !autoLead && !autoTrail {
			if !child.styleDimDefined(cross, innerCross) {
				p.stretchChild(child, main, crossDim, lineMain, innerW, innerH)
			}
		} else {
			free := containerCross - (ca.measured(!isRow) + child.marginForAxis(cross, innerW, innerH))
			switch {
			case autoLead && autoTrail:
				lead += fmax(0, free/2)
			case autoTrail:
			case autoLead:
				lead += fmax(0, free)
			case align == AlignCenter:
				lead += free / 2
			case align == AlignEnd:
				lead += free
			}
		}
		edge := leadingEdge[cross]
		ca.Position.set(edge, ca.Position.get(edge)+lead)
	}
}

// stretchChild lays child out again with its cross size forced to crossDim
// (or derived from its aspect ratio).
func (p *pass) stretchChild(child *Node, main Direction, crossDim, lineMain, innerW, innerH float64) {
	cross := main.cross()
	isRow := main.isRow()
	innerCross := pick(isRow, innerH, innerW)
	ca := &child.actual

	childMain := ca.measured(isRow)
	childCross := crossDim
	if child.plan.hasAspectRatio() {
		childCross = child.marginForAxis(cross, innerW, innerH)
		if isRow {
			childCross += childMain / child.plan.aspectRatio
		} else {
			childCross += childMain * child.plan.aspectRatio
		}
	}
	childMain += child.marginForAxis(main, innerW, innerH)

	mainMode, crossMode := MeasureExactly, MeasureExactly
	child.constrainMaxSizeForMode(main, lineMain, innerW, innerH, &mainMode, &childMain)
	child.constrainMaxSizeForMode(cross, innerCross, innerW, innerH, &crossMode, &childCross)

	w, h := childMain, childCross
	if !isRow {
		w, h = childCross, childMain
	}
	wMode, hMode := MeasureExactly, MeasureExactly
	if isUndefined(w) {
		wMode = MeasureUndefined
	}
	if isUndefined(h) {
		hMode = MeasureUndefined
	}
	p.layoutNode(child, w, h, wMode, hMode, innerW, innerH, true, "stretch")
}

// alignContent distributes lines across the container's cross size and
// applies per-line alignment, including baseline alignment.
func (p *pass) alignContent(n *Node, lines []flexLine, main Direction, contentCross, totalLineCross, padCrossLead, innerW, innerH float64) {
	cross := main.cross()
	isRow := main.isRow()
	innerCross := pick(isRow, innerH, innerW)
	gap := n.plan.gap
	count := float64(len(lines))
	free := contentCross - totalLineCross

	lead := padCrossLead
	var between, extra float64
	switch n.plan.alignContent {
	case AlignEnd:
		lead += free
	case AlignCenter:
		lead += free / 2
	case AlignStretch:
		if free > 0 {
			extra = free / count
		}
	case AlignSpaceBetween:
		if free > 0 && len(lines) > 1 {
			between = free / (count - 1)
		}
	case AlignSpaceAround:
		if free > 0 {
			lead += free / (2 * count)
			between = free / count
		} else {
			lead += free / 2
		}
	case AlignSpaceEvenly:
		if free > 0 {
			lead += free / (count + 1)
			between = free / (count + 1)
		} else {
			lead += free / 2
		}
	}

	for li := range lines {
		items := lines[li].items
		if li > 0 {
			lead += gap + between
		}

		lineSize := lines[li].crossSize
		var maxAscent, maxDescent float64
		for i := range items {
			child := items[i].node
			ca := &child.actual
			if child.layoutDimDefined(cross) {
				lineSize = fmax(lineSize, ca.measured(!isRow)+child.marginForAxis(cross, innerW, innerH))
			}
			if n.alignItem(child) == AlignBaseline {
				if base, ok := baselineOf(child); ok {
					ascent := base + child.leadingMargin(Column, innerW, innerH)
					descent := ca.measuredHeight + child.marginForAxis(Column, innerW, innerH) - ascent
					maxAscent = fmax(maxAscent, ascent)
					maxDescent = fmax(maxDescent, descent)
					lineSize = fmax(lineSize, maxAscent+maxDescent)
				}
			}
		}
		lineSize += extra

		edge := leadingEdge[cross]
		for i := range items {
			child := items[i].node
			ca := &child.actual
			align := n.alignItem(child)
			if align == AlignBaseline {
				if base, ok := baselineOf(child); ok {
					ca.Position.Top = lead + maxAscent - base
					continue
				}
				align = AlignStart
			}
			switch align {
			case AlignStart:
				ca.Position.set(edge, lead+child.leadingMargin(cross, innerW, innerH))
			case AlignEnd:
				ca.Position.set(edge, lead+lineSize-child.trailingMargin(cross, innerW, innerH)-ca.measured(!isRow))
			case AlignCenter:
				outer := ca.measured(!isRow) + child.marginForAxis(cross, innerW, innerH)
				ca.Position.set(edge, lead+child.leadingMargin(cross, innerW, innerH)+(lineSize-outer)/2)
			case AlignStretch:
				ca.Position.set(edge, lead+child.leadingMargin(cross, innerW, innerH))
				if child.styleDimDefined(cross, innerCross) {
					continue
				}
				marginCross := child.marginForAxis(cross, innerW, innerH)
				if floatsEqual(lineSize-marginCross, ca.measured(!isRow)) {
					continue
				}
				marginMain := child.marginForAxis(main, innerW, innerH)
				w, h := ca.measuredWidth+marginMain, lineSize
				if !isRow {
					w, h = lineSize, ca.measuredHeight+marginMain
				}
				p.layoutNode(child, w, h, MeasureExactly, MeasureExactly, innerW, innerH, true, "multiline-stretch")
			}
		}
		lead += lineSize
	}
}

// baselineOf returns the distance from the top of child's border box to
// the baseline of its reference node: the shallowest, then leftmost, node
// in child's subtree (child included) with IsReferenceBaseline set. The
// reference baseline is its BaselineFunc result, else its height. ok is
// false when the subtree has no reference node.
func baselineOf(child *Node) (baseline float64, ok bool) {
	type entry struct {
		node *Node
		top  float64
	}
	queue := []entry{{node: child}}
	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		if e.node.plan.referenceBaseline {
			a := &e.node.actual
			if e.node.baseline != nil {
				return e.top + e.node.baseline(a.Width, a.Height), true
			}
			return e.top + a.Height, true
		}
		for _, c := range e.node.layoutChildren() {
			if c.plan.positionType == PositionAbsolute {
				continue
			}
			queue = append(queue, entry{node: c, top: e.top + c.actual.Position.Top})
		}
	}
	return 0, false
}
