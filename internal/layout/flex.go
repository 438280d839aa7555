package layout

// flexItem holds intermediate calculation state for an in-flow child.
// It lives for one layoutImpl call and is never stored on nodes.
type flexItem struct {
	node       *Node
	basis      float64 // flex basis clamped to min/max
	marginMain float64
	grow       float64
	shrink     float64
	mainSize   float64
	frozen     bool
}

// flexLine is a run of items that share a cross-axis line.
type flexLine struct {
	items     []flexItem
	crossSize float64
}

// layoutImpl sizes n under the given constraints and, when performLayout is
// set, positions its children. Sizes include padding but not margin.
func (p *pass) layoutImpl(n *Node, availW, availH float64, wm, hm MeasureMode, ow, oh float64, performLayout bool) {
	plan := &n.plan
	a := &n.actual
	a.HadOverflow = false

	for _, edge := range [...]Edge{EdgeLeft, EdgeTop, EdgeRight, EdgeBottom} {
		a.Margin.set(edge, n.margin(edge, ow, oh))
		a.Padding.set(edge, n.padding(edge, ow, oh))
	}

	if n.measure != nil {
		p.measureLeaf(n, availW, availH, wm, hm, ow, oh)
		return
	}
	children := n.layoutChildren()
	if len(children) == 0 {
		emptyLeaf(n, availW, availH, wm, hm, ow, oh)
		return
	}
	if !performLayout && fixedSizeLeaf(n, availW, availH, wm, hm, ow, oh) {
		return
	}

	// Step 1: axes, padding and measure modes.
	main := plan.direction
	cross := main.cross()
	isRow := main.isRow()
	wrap := plan.wrap != NoWrap
	gap := plan.gap

	mainOwner, crossOwner := pick(isRow, ow, oh), pick(isRow, oh, ow)
	padMainLead := n.leadingPadding(main, ow, oh)
	padMainTrail := n.trailingPadding(main, ow, oh)
	padCrossLead := n.leadingPadding(cross, ow, oh)
	padMain := padMainLead + padMainTrail
	padCross := n.paddingForAxis(cross, ow, oh)
	padRow := n.paddingForAxis(Row, ow, oh)
	padColumn := n.paddingForAxis(Column, ow, oh)
	marginRow := n.marginForAxis(Row, ow, oh)
	marginColumn := n.marginForAxis(Column, ow, oh)

	mmMain := pickMode(isRow, wm, hm)
	mmCross := pickMode(isRow, hm, wm)

	// Step 2: available inner size, clamped to min/max.
	minInnerW := plan.minWidth.Resolve(ow) - padRow
	maxInnerW := plan.maxWidth.Resolve(ow) - padRow
	minInnerH := plan.minHeight.Resolve(oh) - padColumn
	maxInnerH := plan.maxHeight.Resolve(oh) - padColumn

	innerW := availW - marginRow - padRow
	if !isUndefined(innerW) {
		innerW = fmax(fmin(innerW, maxInnerW), minInnerW)
	}
	innerH := availH - marginColumn - padColumn
	if !isUndefined(innerH) {
		innerH = fmax(fmin(innerH, maxInnerH), minInnerH)
	}
	innerMain, innerCross := pick(isRow, innerW, innerH), pick(isRow, innerH, innerW)
	minInnerMain, maxInnerMain := pick(isRow, minInnerW, minInnerH), pick(isRow, maxInnerW, maxInnerH)

	// Step 3: flex basis for each in-flow child.
	items := make([]flexItem, 0, len(children))
	var absolutes []*Node
	totalOuterBasis := 0.0
	for _, child := range children {
		child.resolveDimensions()
		ca := &child.actual
		ca.LineIndex = 0
		if performLayout {
			ca.Position = Sides{}
			ca.Position.set(leadingEdge[main], child.leadingMargin(main, innerW, innerH))
			ca.Position.set(leadingEdge[cross], child.leadingMargin(cross, innerW, innerH))
		}
		if child.plan.positionType == PositionAbsolute {
			absolutes = append(absolutes, child)
			continue
		}
		p.computeFlexBasis(n, child, innerW, wm, innerH, hm)

		cp := &child.plan
		basis := fmin(cp.maxSize(isRow).Resolve(mainOwner), ca.flexBasis)
		basis = fmax(cp.minSize(isRow).Resolve(mainOwner), basis)
		item := flexItem{
			node:       child,
			basis:      basis,
			marginMain: child.marginForAxis(main, innerW, innerH),
			grow:       child.resolvedFlexGrow(),
			shrink:     child.resolvedFlexShrink(),
		}
		totalOuterBasis += item.basis + item.marginMain
		items = append(items, item)
	}
	if len(items) > 1 {
		totalOuterBasis += gap * float64(len(items)-1)
	}

	basisOverflows := mmMain != MeasureUndefined && totalOuterBasis > innerMain
	if wrap && basisOverflows && mmMain == MeasureAtMost {
		mmMain = MeasureExactly
	}

	// Step 4: collect items into lines.
	lines := collectLines(items, wrap, gap, innerMain)

	totalLineCross := 0.0
	maxLineMain := 0.0
	for li := range lines {
		line := &lines[li]
		consumed := lineConsumed(line.items, gap)
		if li > 0 {
			totalLineCross += gap
		}

		// Step 5: resolve flexible lengths.
		lineMain := innerMain
		if mmMain != MeasureExactly {
			switch {
			case !isUndefined(minInnerMain) && consumed < minInnerMain:
				lineMain = minInnerMain
			case !isUndefined(maxInnerMain) && consumed > maxInnerMain:
				lineMain = maxInnerMain
			case isUndefined(lineMain) || consumed <= lineMain && (totalGrow(line.items) == 0 || n.resolvedFlexGrow() == 0):
				lineMain = consumed
			}
		}

		remaining := 0.0
		if !isUndefined(lineMain) {
			remaining = lineMain - consumed
		} else if consumed < 0 {
			remaining = -consumed
		}
		remaining = resolveFlexibleLengths(line.items, remaining, main, lineMain, innerW, innerH)

		for i := range line.items {
			it := &line.items[i]
			p.layoutFlexItem(n, it, main, lineMain, innerW, innerH, mmCross, wrap && basisOverflows, performLayout)
		}

		if remaining < 0 && !floatsEqual(remaining, 0) {
			a.HadOverflow = true
		}

		// Step 6: main-axis justification and line cross size.
		if mmMain == MeasureAtMost && remaining > 0 {
			if minMain := plan.minSize(isRow).Resolve(mainOwner); !isUndefined(minMain) && minMain >= 0 {
				remaining = fmax(0, minMain-(lineMain-remaining))
			} else {
				remaining = 0
			}
		}

		mainDim, crossDim := justifyLine(n, line.items, remaining, padMainLead, innerW, innerH, performLayout)
		mainDim += padMainTrail

		containerCross := innerCross
		if mmCross != MeasureExactly {
			containerCross = n.boundAxis(cross, crossDim+padCross, crossOwner, ow, oh) - padCross
		}
		// A single line spans the container's cross size.
		if !wrap {
			if mmCross == MeasureExactly {
				crossDim = innerCross
			}
			crossDim = n.boundAxis(cross, crossDim+padCross, crossOwner, ow, oh) - padCross
		}
		line.crossSize = crossDim

		// Step 7: cross-axis alignment within the line.
		if performLayout {
			p.alignLine(n, line.items, main, crossDim, containerCross, totalLineCross+padCrossLead, lineMain, innerW, innerH)
		}

		totalLineCross += crossDim
		maxLineMain = fmax(maxLineMain, mainDim)
	}

	// Step 8: distribute lines and apply baseline alignment.
	contentCross := innerCross
	if mmCross != MeasureExactly {
		contentCross = n.boundAxis(cross, totalLineCross+padCross, crossOwner, ow, oh) - padCross
	}
	if performLayout && (wrap || n.isBaselineLayout()) && !isUndefined(contentCross) {
		p.alignContent(n, lines, main, contentCross, totalLineCross, padCrossLead, innerW, innerH)
	}

	// Step 9: final dimensions.
	a.measuredWidth = n.boundAxis(Row, availW-marginRow, ow, ow, oh)
	a.measuredHeight = n.boundAxis(Column, availH-marginColumn, oh, ow, oh)

	scroll := plan.overflow == OverflowScroll
	if mmMain == MeasureUndefined || (!scroll && mmMain == MeasureAtMost) {
		a.setMeasured(isRow, n.boundAxis(main, maxLineMain, mainOwner, ow, oh))
	} else if mmMain == MeasureAtMost && scroll {
		a.setMeasured(isRow, fmax(fmin(innerMain+padMain, n.boundAxisWithinMinMax(main, maxLineMain, mainOwner)), padMain))
	}
	if mmCross == MeasureUndefined || (!scroll && mmCross == MeasureAtMost) {
		a.setMeasured(!isRow, n.boundAxis(cross, totalLineCross+padCross, crossOwner, ow, oh))
	} else if mmCross == MeasureAtMost && scroll {
		a.setMeasured(!isRow, fmax(fmin(innerCross+padCross, n.boundAxisWithinMinMax(cross, totalLineCross+padCross, crossOwner)), padCross))
	}

	if !performLayout {
		return
	}

	// Lines were stacked top-down; mirror them inside the content box for
	// wrap-reverse. Each child's outer box is mirrored, so its cross margins
	// keep their physical sides.
	if plan.wrap == WrapReverse {
		contentEnd := a.measured(!isRow) - n.trailingPadding(cross, ow, oh)
		lead := leadingEdge[cross]
		for _, child := range children {
			if child.plan.positionType == PositionAbsolute {
				continue
			}
			ca := &child.actual
			mLead := child.leadingMargin(cross, innerW, innerH)
			mTrail := child.trailingMargin(cross, innerW, innerH)
			pos := padCrossLead + contentEnd - ca.Position.get(lead) - ca.measured(!isRow) + mLead - mTrail
			ca.Position.set(lead, pos)
		}
	}

	// Step 10: absolute children.
	for _, child := range absolutes {
		p.layoutAbsoluteChild(n, child)
	}

	// Step 11: trailing edges, reversed axes and relative offsets.
	finishChildPositions(n, children, innerW, innerH)
}

// collectLines splits items into lines. A new line starts when wrapping is
// on and the next item would overflow innerMain.
func collectLines(items []flexItem, wrap bool, gap, innerMain float64) []flexLine {
	var lines []flexLine
	for start := 0; start < len(items); {
		consumed := 0.0
		end := start
		for ; end < len(items); end++ {
			it := &items[end]
			outer := it.basis + it.marginMain
			if end > start {
				outer += gap
			}
			if wrap && end > start && consumed+outer > innerMain {
				break
			}
			consumed += outer
			it.node.actual.LineIndex = len(lines)
		}
		lines = append(lines, flexLine{items: items[start:end]})
		start = end
	}
	return lines
}

func lineConsumed(items []flexItem, gap float64) float64 {
	consumed := 0.0
	for i := range items {
		consumed += items[i].basis + items[i].marginMain
	}
	if len(items) > 1 {
		consumed += gap * float64(len(items)-1)
	}
	return consumed
}

func totalGrow(items []flexItem) float64 {
	total := 0.0
	for i := range items {
		total += items[i].grow
	}
	return total
}

// resolveFlexibleLengths distributes remaining over the items in two passes
// and returns the space left over (negative when the line overflows).
// The first pass freezes items whose min/max clamp triggers and removes
// them from the distribution; the second sizes the rest.
func resolveFlexibleLengths(items []flexItem, remaining float64, main Direction, lineMain, ow, oh float64) float64 {
	var sumGrow, sumShrink float64
	for i := range items {
		items[i].mainSize = items[i].basis
		items[i].frozen = false
		sumGrow += items[i].grow
		sumShrink += items[i].shrink
	}

	free := remaining
	for i := range items {
		it := &items[i]
		var factor, total float64
		switch {
		case free < 0 && it.shrink > 0:
			factor, total = it.shrink, sumShrink
		case free > 0 && it.grow > 0:
			factor, total = it.grow, sumGrow
		default:
			continue
		}
		base := it.basis + free/total*factor
		bound := it.node.boundAxis(main, base, lineMain, ow, oh)
		if !floatsEqual(base, bound) {
			it.frozen = true
			it.mainSize = bound
			remaining -= bound - it.basis
			if free < 0 {
				sumShrink -= it.shrink
			} else {
				sumGrow -= it.grow
			}
		}
	}

	used := 0.0
	for i := range items {
		it := &items[i]
		if !it.frozen {
			switch {
			case remaining < 0 && it.shrink > 0 && sumShrink > 0:
				it.mainSize = it.node.boundAxis(main, it.basis+remaining/sumShrink*it.shrink, lineMain, ow, oh)
			case remaining > 0 && it.grow > 0 && sumGrow > 0:
				it.mainSize = it.node.boundAxis(main, it.basis+remaining/sumGrow*it.grow, lineMain, ow, oh)
			}
		}
		used += it.mainSize - it.basis
	}
	return free - used
}

// computeFlexBasis sets child.actual.flexBasis: the explicit basis, else the
// definite main size, else the aspect-ratio size, else the measured size.
func (p *pass) computeFlexBasis(n, child *Node, innerW float64, wm MeasureMode, innerH float64, hm MeasureMode) {
	main := n.plan.direction
	isRow := main.isRow()
	mainOwner := pick(isRow, innerW, innerH)
	ca := &child.actual

	basis := child.plan.resolvedBasis().Resolve(mainOwner)
	rowDefined := child.styleDimDefined(Row, innerW)
	columnDefined := child.styleDimDefined(Column, innerH)

	switch {
	case !isUndefined(basis):
		ca.flexBasis = fmax(basis, child.paddingForAxis(main, innerW, innerH))
		return
	case isRow && rowDefined:
		ca.flexBasis = fmax(ca.ResolvedWidth.Resolve(innerW), child.paddingForAxis(Row, innerW, innerH))
		return
	case !isRow && columnDefined:
		ca.flexBasis = fmax(ca.ResolvedHeight.Resolve(innerH), child.paddingForAxis(Column, innerW, innerH))
		return
	}

	childW, childH := nan, nan
	childWM, childHM := MeasureUndefined, MeasureUndefined
	marginRow := child.marginForAxis(Row, innerW, innerH)
	marginColumn := child.marginForAxis(Column, innerW, innerH)

	if rowDefined {
		childW = ca.ResolvedWidth.Resolve(innerW) + marginRow
		childWM = MeasureExactly
	}
	if columnDefined {
		childH = ca.ResolvedHeight.Resolve(innerH) + marginColumn
		childHM = MeasureExactly
	}

	// A scrolling container does not constrain its children on the main axis.
	scroll := n.plan.overflow == OverflowScroll
	if (!isRow || !scroll) && isUndefined(childW) && !isUndefined(innerW) {
		childW, childWM = innerW, MeasureAtMost
	}
	if (isRow || !scroll) && isUndefined(childH) && !isUndefined(innerH) {
		childH, childHM = innerH, MeasureAtMost
	}

	// Stretched children measure exactly on the cross axis.
	if !isRow && !isUndefined(innerW) && !rowDefined && wm == MeasureExactly && n.alignItem(child) == AlignStretch {
		childW, childWM = innerW, MeasureExactly
	}
	if isRow && !isUndefined(innerH) && !columnDefined && hm == MeasureExactly && n.alignItem(child) == AlignStretch {
		childH, childHM = innerH, MeasureExactly
	}

	if child.plan.hasAspectRatio() {
		ratio := child.plan.aspectRatio
		if !isRow && childWM == MeasureExactly {
			ca.flexBasis = fmax((childW-marginRow)/ratio, child.paddingForAxis(Column, innerW, innerH))
			return
		}
		if isRow && childHM == MeasureExactly {
			ca.flexBasis = fmax((childH-marginColumn)*ratio, child.paddingForAxis(Row, innerW, innerH))
			return
		}
	}

	child.constrainMaxSizeForMode(Row, innerW, innerW, innerH, &childWM, &childW)
	child.constrainMaxSizeForMode(Column, innerH, innerW, innerH, &childHM, &childH)

	p.layoutNode(child, childW, childH, childWM, childHM, innerW, innerH, false, "measure")

	ca.flexBasis = fmax(ca.measured(isRow), child.paddingForAxis(main, innerW, innerH))
}

// layoutFlexItem lays out one item at its resolved main size and derives
// its cross size from alignment, explicit size or aspect ratio.
func (p *pass) layoutFlexItem(n *Node, it *flexItem, main Direction, lineMain, innerW, innerH float64, mmCross MeasureMode, wrapOverflows, performLayout bool) {
	child := it.node
	cross := main.cross()
	isRow := main.isRow()
	innerCross := pick(isRow, innerH, innerW)
	marginCross := child.marginForAxis(cross, innerW, innerH)

	childMain := it.mainSize + it.marginMain
	childMainMode := MeasureExactly
	var childCross float64
	var childCrossMode MeasureMode

	crossDefined := child.styleDimDefined(cross, innerCross)
	align := n.alignItem(child)
	autoCrossMargin := child.marginIsAuto(leadingEdge[cross]) || child.marginIsAuto(trailingEdge[cross])

	switch {
	case !isUndefined(innerCross) && !crossDefined && mmCross == MeasureExactly && !wrapOverflows && align == AlignStretch:
		childCross, childCrossMode = innerCross, MeasureExactly
	case !crossDefined:
		childCross, childCrossMode = innerCross, MeasureAtMost
		if isUndefined(childCross) {
			childCrossMode = MeasureUndefined
		}
	default:
		resolved := child.actual.resolvedSize(!isRow)
		childCross = resolved.Resolve(innerCross) + marginCross
		childCrossMode = MeasureExactly
		if isUndefined(childCross) || (resolved.Unit == UnitPercent && mmCross != MeasureExactly) {
			childCrossMode = MeasureUndefined
		}
	}

	if child.plan.hasAspectRatio() {
		ratio := child.plan.aspectRatio
		v := (childMain - it.marginMain) * ratio
		if isRow {
			v = (childMain - it.marginMain) / ratio
		}
		childCross = fmax(v, child.paddingForAxis(cross, innerW, innerH))
		childCrossMode = MeasureExactly
		if child.isFlex() {
			childCross = fmin(childCross, innerCross)
			if isRow {
				childMain = it.marginMain + childCross*ratio
			} else {
				childMain = it.marginMain + childCross/ratio
			}
		}
		childCross += marginCross
	}

	child.constrainMaxSizeForMode(main, lineMain, innerW, innerH, &childMainMode, &childMain)
	child.constrainMaxSizeForMode(cross, innerCross, innerW, innerH, &childCrossMode, &childCross)

	requiresStretch := !crossDefined && align == AlignStretch && !autoCrossMargin

	w, h := childMain, childCross
	wMode, hMode := childMainMode, childCrossMode
	if !isRow {
		w, h = childCross, childMain
		wMode, hMode = childCrossMode, childMainMode
	}
	p.layoutNode(child, w, h, wMode, hMode, innerW, innerH, performLayout && !requiresStretch, "flex")
}
