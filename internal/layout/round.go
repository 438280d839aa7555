package layout

import "math"

// finishChildPositions fills in the trailing position of every child,
// resolves reversed main axes and applies relative offsets. Until now each
// child only had its leading edge set along each axis of the flow.
func finishChildPositions(n *Node, children []*Node, innerW, innerH float64) {
	a := &n.actual
	main := n.plan.direction
	for _, child := range children {
		ca := &child.actual
		absolute := child.plan.positionType == PositionAbsolute
		for _, horizontal := range [...]bool{true, false} {
			lead, trail := EdgeTop, EdgeBottom
			size, childSize := a.measuredHeight, ca.Height
			if horizontal {
				lead, trail = EdgeLeft, EdgeRight
				size, childSize = a.measuredWidth, ca.Width
			}
			if !absolute && main.isReversed() && main.isRow() == horizontal {
				ca.Position.set(lead, size-childSize-ca.Position.get(trail))
			} else {
				ca.Position.set(trail, size-childSize-ca.Position.get(lead))
			}
		}
		if absolute {
			continue
		}
		dx := child.relativeOffset(true, innerW, innerH)
		dy := child.relativeOffset(false, innerW, innerH)
		ca.Position.Left += dx
		ca.Position.Right -= dx
		ca.Position.Top += dy
		ca.Position.Bottom -= dy
	}
}

// roundLayout snaps the subtree to whole cells and returns the number of
// nodes that reported overflow. Edges are rounded in absolute coordinates so
// that adjacent siblings neither overlap nor leave a gap; sizes are the
// difference of rounded edges. Text nodes floor their origin and ceil a
// fractional far edge so glyphs are never clipped.
func roundLayout(n *Node, absLeft, absTop float64, parentLeft, parentTop int) int {
	a := &n.actual
	left := absLeft + a.Position.Left
	top := absTop + a.Position.Top
	right := left + a.Width
	bottom := top + a.Height
	text := n.plan.isText

	rl := roundCell(left, false, text)
	rt := roundCell(top, false, text)
	rr := roundCell(right, text && hasFraction(right), text && !hasFraction(right))
	rb := roundCell(bottom, text && hasFraction(bottom), text && !hasFraction(bottom))

	a.bounds = Rect{
		X:      rl - parentLeft,
		Y:      rt - parentTop,
		Width:  max(0, rr-rl),
		Height: max(0, rb-rt),
	}
	a.computed = true

	overflows := 0
	if a.HadOverflow {
		overflows++
	}
	if n.plan.atomic {
		forgetLayout(n.children)
		return overflows
	}
	for _, child := range n.children {
		overflows += roundLayout(child, left, top, rl, rt)
	}
	return overflows
}

// forgetLayout marks the descendants of an atomic node as never laid out.
func forgetLayout(children []*Node) {
	for _, child := range children {
		child.actual.computed = false
		forgetLayout(child.children)
	}
}

func hasFraction(v float64) bool {
	frac := v - math.Floor(v)
	return !floatsEqual(frac, 0) && !floatsEqual(frac, 1)
}

// roundCell rounds v to a whole cell. Values within tolerance of an integer
// snap to it regardless of the forcing flags. NaN rounds to zero.
func roundCell(v float64, forceCeil, forceFloor bool) int {
	if isUndefined(v) {
		return 0
	}
	floor := math.Floor(v)
	frac := v - floor
	switch {
	case floatsEqual(frac, 0):
		return int(floor)
	case floatsEqual(frac, 1):
		return int(floor) + 1
	case forceCeil:
		return int(math.Ceil(v))
	case forceFloor:
		return int(floor)
	default:
		return int(math.Floor(v + 0.5))
	}
}

// roundSides converts resolved per-side values to whole cells.
func roundSides(s Sides) Edges {
	return Edges{
		Top:    roundCell(s.Top, false, false),
		Right:  roundCell(s.Right, false, false),
		Bottom: roundCell(s.Bottom, false, false),
		Left:   roundCell(s.Left, false, false),
	}
}
