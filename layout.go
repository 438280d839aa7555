// layout.go re-exports the engine types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package flex

import "github.com/grindlemire/go-flex/internal/layout"

// Node is an element of the layout tree.
type Node = layout.Node

// Plan holds the layout intent for a node.
type Plan = layout.Plan

// Actual holds the computed layout of a node.
type Actual = layout.Actual

// Stats summarizes one Arrange call.
type Stats = layout.Stats

// Arranger runs layout passes with an optional logger.
type Arranger = layout.Arranger

// Number is a tagged scalar: undefined, auto, cells or percent.
type Number = layout.Number

// Unit specifies how a Number is interpreted.
type Unit = layout.Unit

const (
	UnitUndefined = layout.UnitUndefined
	UnitAuto      = layout.UnitAuto
	UnitPoint     = layout.UnitPoint
	UnitPercent   = layout.UnitPercent
)

// Edge names one side (or group of sides) of a box.
type Edge = layout.Edge

const (
	EdgeLeft       = layout.EdgeLeft
	EdgeTop        = layout.EdgeTop
	EdgeRight      = layout.EdgeRight
	EdgeBottom     = layout.EdgeBottom
	EdgeStart      = layout.EdgeStart
	EdgeEnd        = layout.EdgeEnd
	EdgeHorizontal = layout.EdgeHorizontal
	EdgeVertical   = layout.EdgeVertical
	EdgeAll        = layout.EdgeAll
)

// EdgeSet holds per-side values for margin, padding and position.
type EdgeSet = layout.EdgeSet

// Direction specifies the main axis for laying out children.
type Direction = layout.Direction

const (
	Row           = layout.Row
	RowReverse    = layout.RowReverse
	Column        = layout.Column
	ColumnReverse = layout.ColumnReverse
)

// Wrap specifies whether children may flow onto multiple lines.
type Wrap = layout.Wrap

const (
	NoWrap      = layout.NoWrap
	WrapLines   = layout.WrapLines
	WrapReverse = layout.WrapReverse
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyCenter       = layout.JustifyCenter
	JustifyEnd          = layout.JustifyEnd
	JustifyStretch      = layout.JustifyStretch
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies cross-axis placement of children or lines.
type Align = layout.Align

const (
	AlignAuto         = layout.AlignAuto
	AlignStart        = layout.AlignStart
	AlignCenter       = layout.AlignCenter
	AlignEnd          = layout.AlignEnd
	AlignStretch      = layout.AlignStretch
	AlignBaseline     = layout.AlignBaseline
	AlignSpaceBetween = layout.AlignSpaceBetween
	AlignSpaceAround  = layout.AlignSpaceAround
	AlignSpaceEvenly  = layout.AlignSpaceEvenly
)

// Overflow specifies how a container treats children that do not fit.
type Overflow = layout.Overflow

const (
	OverflowVisible = layout.OverflowVisible
	OverflowHidden  = layout.OverflowHidden
	OverflowScroll  = layout.OverflowScroll
)

// PositionType selects in-flow or absolute placement.
type PositionType = layout.PositionType

const (
	PositionRelative = layout.PositionRelative
	PositionAbsolute = layout.PositionAbsolute
)

// MeasureMode describes how a measure constraint should be read.
type MeasureMode = layout.MeasureMode

const (
	MeasureUndefined = layout.MeasureUndefined
	MeasureExactly   = layout.MeasureExactly
	MeasureAtMost    = layout.MeasureAtMost
)

// MeasureFunc reports the content size of a leaf.
type MeasureFunc = layout.MeasureFunc

// BaselineFunc returns the distance from the top of a node to its baseline.
type BaselineFunc = layout.BaselineFunc

// Sides holds resolved per-side values in cells.
type Sides = layout.Sides

// Size is a width and height in cells.
type Size = layout.Size

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents integer insets on four sides.
type Edges = layout.Edges

// Point represents an x/y coordinate.
type Point = layout.Point

// ErrLayoutNotCalculated is the panic value raised by Bounds before layout.
var ErrLayoutNotCalculated = layout.ErrLayoutNotCalculated

// Fixed returns a Number of terminal cells.
func Fixed(cells float64) Number {
	return layout.Fixed(cells)
}

// Percent returns a Number relative to the parent's size (0-100 scale).
func Percent(p float64) Number {
	return layout.Percent(p)
}

// Auto returns a Number that sizes to content.
func Auto() Number {
	return layout.Auto()
}

// Undefined returns a Number with no value.
func Undefined() Number {
	return layout.Undefined()
}

// DefaultPlan returns the default plan for a plain container.
func DefaultPlan() Plan {
	return layout.DefaultPlan()
}

// NewNode creates a node with the given plan.
func NewNode(plan Plan) *Node {
	return layout.NewNode(plan)
}

// NewRect creates a Rect.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAllOf creates Edges with the same value on all sides.
func EdgeAllOf(n int) Edges {
	return layout.EdgeAllOf(n)
}

// Arrange computes the layout of the tree rooted at root.
func Arrange(root *Node, availableWidth, availableHeight float64) {
	layout.Arrange(root, availableWidth, availableHeight)
}
