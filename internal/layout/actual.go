package layout

import "errors"

// ErrLayoutNotCalculated is the panic value raised when Bounds is read
// from a node that no Arrange pass has reached.
var ErrLayoutNotCalculated = errors.New("layout: layout not calculated")

// Size is a width and height in cells.
type Size struct {
	Width  float64
	Height float64
}

// Actual holds the computed layout of a node. Arrange overwrites it; callers
// only read it.
type Actual struct {
	// Position is the border box offset from each side of the parent's
	// border box, in cells.
	Position Sides

	// Width and Height are the border box size. NaN until computed.
	Width  float64
	Height float64

	// Margin and Padding are the resolved per-side values.
	Margin  Sides
	Padding Sides

	// ResolvedWidth and ResolvedHeight are the Plan sizes after min/max
	// collapsing: equal min and max pin the size.
	ResolvedWidth  Number
	ResolvedHeight Number

	Cache           MeasurementCache
	CachedLayout    CachedMeasurement
	GenerationCount uint64

	// HadOverflow is set when children could not be shrunk to fit. With
	// wrapping it is the OR across lines: one overflowing line sets it.
	HadOverflow bool

	// LineIndex is the wrap line this node was placed on by its parent.
	LineIndex int

	measuredWidth  float64
	measuredHeight float64
	flexBasis      float64

	bounds   Rect
	computed bool
}

func newActual() Actual {
	return Actual{
		Width:          nan,
		Height:         nan,
		measuredWidth:  nan,
		measuredHeight: nan,
		flexBasis:      nan,
	}
}

// Reset drops every computed value and cache entry.
func (a *Actual) Reset() {
	*a = newActual()
}

// Computed reports whether an Arrange pass has positioned this node.
func (a *Actual) Computed() bool {
	return a.computed
}

// Bounds returns the border box in integer cells, relative to the parent's
// border box. It panics with ErrLayoutNotCalculated before the first Arrange
// that reaches the node.
func (a *Actual) Bounds() Rect {
	if !a.computed {
		panic(ErrLayoutNotCalculated)
	}
	return a.bounds
}

// ContentBounds returns Bounds minus the rounded padding.
func (a *Actual) ContentBounds() Rect {
	return a.Bounds().Inset(roundSides(a.Padding))
}

// MeasuredSize returns the size from the most recent measure or layout pass.
func (a *Actual) MeasuredSize() Size {
	return Size{Width: a.measuredWidth, Height: a.measuredHeight}
}

func (a *Actual) measured(isRow bool) float64 {
	if isRow {
		return a.measuredWidth
	}
	return a.measuredHeight
}

func (a *Actual) setMeasured(isRow bool, v float64) {
	if isRow {
		a.measuredWidth = v
	} else {
		a.measuredHeight = v
	}
}

func (a *Actual) resolvedSize(isRow bool) Number {
	if isRow {
		return a.ResolvedWidth
	}
	return a.ResolvedHeight
}
