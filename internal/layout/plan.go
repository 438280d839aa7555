package layout

import "math"

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	Row           Direction = iota // Children laid out left-to-right
	RowReverse                     // Children laid out right-to-left
	Column                         // Children laid out top-to-bottom
	ColumnReverse                  // Children laid out bottom-to-top
)

var directionNames = []string{"row", "row-reverse", "column", "column-reverse"}

func (d Direction) String() string { return enumName(directionNames, int(d)) }

// Wrap specifies whether children may flow onto multiple lines.
type Wrap uint8

const (
	NoWrap      Wrap = iota // Single line, children may overflow
	WrapLines               // Start a new line when the next child does not fit
	WrapReverse             // Like WrapLines, with lines stacked in reverse order
)

var wrapNames = []string{"nowrap", "wrap", "wrap-reverse"}

func (w Wrap) String() string { return enumName(wrapNames, int(w)) }

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyCenter                      // Center children
	JustifyEnd                         // Pack at end
	JustifyStretch                     // Same as start; flexible items absorb the space
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

var justifyNames = []string{"start", "center", "end", "stretch", "space-between", "space-around", "space-evenly"}

func (j Justify) String() string { return enumName(justifyNames, int(j)) }

// Align specifies how children (AlignItems, AlignSelf) or lines
// (AlignContent) are positioned on the cross axis.
type Align uint8

const (
	AlignAuto         Align = iota // AlignSelf only: inherit the container's AlignItems
	AlignStart                     // Align to start of cross axis
	AlignCenter                    // Center on cross axis
	AlignEnd                       // Align to end of cross axis
	AlignStretch                   // Stretch to fill cross axis
	AlignBaseline                  // Align reference baselines (row containers only)
	AlignSpaceBetween              // AlignContent only
	AlignSpaceAround               // AlignContent only
	AlignSpaceEvenly               // AlignContent only
)

var alignNames = []string{"auto", "start", "center", "end", "stretch", "baseline", "space-between", "space-around", "space-evenly"}

func (a Align) String() string { return enumName(alignNames, int(a)) }

// Overflow is recorded for the rendering layer. The engine only looks at
// Scroll, which keeps a container from growing to fit its content.
type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
)

var overflowNames = []string{"visible", "hidden", "scroll"}

func (o Overflow) String() string { return enumName(overflowNames, int(o)) }

// PositionType selects between flow layout and absolute positioning.
type PositionType uint8

const (
	PositionRelative PositionType = iota
	PositionAbsolute
)

var positionTypeNames = []string{"relative", "absolute"}

func (p PositionType) String() string { return enumName(positionTypeNames, int(p)) }

func enumName(names []string, i int) string {
	if i >= 0 && i < len(names) {
		return names[i]
	}
	return "unknown"
}

func parseEnum[T ~uint8](names []string, s string) (T, bool) {
	for i, name := range names {
		if name == s {
			return T(i), true
		}
	}
	return 0, false
}

// ParseDirection, ParseWrap, ParseJustify, ParseAlign, ParseOverflow and
// ParsePositionType map the names printed by String back to values.
func ParseDirection(s string) (Direction, bool) { return parseEnum[Direction](directionNames, s) }
func ParseWrap(s string) (Wrap, bool)           { return parseEnum[Wrap](wrapNames, s) }
func ParseJustify(s string) (Justify, bool)     { return parseEnum[Justify](justifyNames, s) }
func ParseAlign(s string) (Align, bool)         { return parseEnum[Align](alignNames, s) }
func ParseOverflow(s string) (Overflow, bool)   { return parseEnum[Overflow](overflowNames, s) }
func ParsePositionType(s string) (PositionType, bool) {
	return parseEnum[PositionType](positionTypeNames, s)
}

const defaultFlexShrink = 1.0

// Plan holds the layout intent for a node. Fields are read and written
// through accessors; a setter only marks the plan dirty (and bubbles to the
// node's ancestors) when the value actually changes.
type Plan struct {
	direction    Direction
	wrap         Wrap
	justify      Justify
	alignItems   Align
	alignSelf    Align
	alignContent Align
	overflow     Overflow
	positionType PositionType

	margin   EdgeSet
	padding  EdgeSet
	position EdgeSet

	flex       float64 // NaN = unset
	flexGrow   float64 // NaN = unset
	flexShrink float64 // NaN = unset
	basis      Number
	gap        float64

	width     Number
	height    Number
	minWidth  Number
	minHeight Number
	maxWidth  Number
	maxHeight Number

	aspectRatio float64 // NaN = unset

	isText            bool
	atomic            bool
	referenceBaseline bool

	dirty bool
	owner *Node
}

// DefaultPlan returns a Plan with sensible defaults: a row that stretches
// its children, auto-sized, with no flex factors set.
func DefaultPlan() Plan {
	return Plan{
		direction:    Row,
		justify:      JustifyStart,
		alignItems:   AlignStretch,
		alignSelf:    AlignAuto,
		alignContent: AlignStart,
		flex:         math.NaN(),
		flexGrow:     math.NaN(),
		flexShrink:   math.NaN(),
		basis:        Auto(),
		width:        Auto(),
		height:       Auto(),
		aspectRatio:  math.NaN(),
		dirty:        true,
	}
}

// changed records a mutation and bubbles dirtiness through the owner.
func (p *Plan) changed() {
	if p.owner != nil {
		p.owner.MarkDirty()
		return
	}
	p.dirty = true
}

func setField[T comparable](p *Plan, field *T, v T) {
	if *field == v {
		return
	}
	*field = v
	p.changed()
}

func setNumber(p *Plan, field *Number, v Number) {
	if field.Equal(v) {
		return
	}
	*field = v
	p.changed()
}

func setFloat(p *Plan, field *float64, v float64) {
	if floatsEqual(*field, v) {
		return
	}
	*field = v
	p.changed()
}

func (p *Plan) Direction() Direction           { return p.direction }
func (p *Plan) SetDirection(d Direction)       { setField(p, &p.direction, d) }
func (p *Plan) Wrap() Wrap                     { return p.wrap }
func (p *Plan) SetWrap(w Wrap)                 { setField(p, &p.wrap, w) }
func (p *Plan) JustifyContent() Justify        { return p.justify }
func (p *Plan) SetJustifyContent(j Justify)    { setField(p, &p.justify, j) }
func (p *Plan) AlignItems() Align              { return p.alignItems }
func (p *Plan) SetAlignItems(a Align)          { setField(p, &p.alignItems, a) }
func (p *Plan) AlignSelf() Align               { return p.alignSelf }
func (p *Plan) SetAlignSelf(a Align)           { setField(p, &p.alignSelf, a) }
func (p *Plan) AlignContent() Align            { return p.alignContent }
func (p *Plan) SetAlignContent(a Align)        { setField(p, &p.alignContent, a) }
func (p *Plan) Overflow() Overflow             { return p.overflow }
func (p *Plan) SetOverflow(o Overflow)         { setField(p, &p.overflow, o) }
func (p *Plan) PositionType() PositionType     { return p.positionType }
func (p *Plan) SetPositionType(t PositionType) { setField(p, &p.positionType, t) }

// Margin returns the margin edges. Mutations through the returned set mark
// this plan dirty.
func (p *Plan) Margin() *EdgeSet {
	p.margin.owner = p
	return &p.margin
}

// Padding returns the padding edges.
func (p *Plan) Padding() *EdgeSet {
	p.padding.owner = p
	return &p.padding
}

// Position returns the position offsets (relative nudge or absolute insets).
func (p *Plan) Position() *EdgeSet {
	p.position.owner = p
	return &p.position
}

// Flex is the shorthand factor: positive values act as FlexGrow, negative
// values as FlexShrink, unless those are set explicitly.
func (p *Plan) Flex() float64           { return p.flex }
func (p *Plan) SetFlex(f float64)       { setFloat(p, &p.flex, f) }
func (p *Plan) FlexGrow() float64       { return p.flexGrow }
func (p *Plan) SetFlexGrow(f float64)   { setFloat(p, &p.flexGrow, f) }
func (p *Plan) FlexShrink() float64     { return p.flexShrink }
func (p *Plan) SetFlexShrink(f float64) { setFloat(p, &p.flexShrink, f) }

// Basis is the main-axis length used before grow/shrink. Auto falls back to
// the main-axis Width/Height, then to the measured content size.
func (p *Plan) Basis() Number     { return p.basis }
func (p *Plan) SetBasis(n Number) { setNumber(p, &p.basis, n) }
func (p *Plan) Gap() float64      { return p.gap }
func (p *Plan) SetGap(g float64)  { setFloat(p, &p.gap, math.Max(0, g)) }

func (p *Plan) Width() Number         { return p.width }
func (p *Plan) SetWidth(n Number)     { setNumber(p, &p.width, n) }
func (p *Plan) Height() Number        { return p.height }
func (p *Plan) SetHeight(n Number)    { setNumber(p, &p.height, n) }
func (p *Plan) MinWidth() Number      { return p.minWidth }
func (p *Plan) SetMinWidth(n Number)  { setNumber(p, &p.minWidth, n) }
func (p *Plan) MinHeight() Number     { return p.minHeight }
func (p *Plan) SetMinHeight(n Number) { setNumber(p, &p.minHeight, n) }
func (p *Plan) MaxWidth() Number      { return p.maxWidth }
func (p *Plan) SetMaxWidth(n Number)  { setNumber(p, &p.maxWidth, n) }
func (p *Plan) MaxHeight() Number     { return p.maxHeight }
func (p *Plan) SetMaxHeight(n Number) { setNumber(p, &p.maxHeight, n) }

// AspectRatio is width divided by height. NaN or a non-positive value
// disables it.
func (p *Plan) AspectRatio() float64 { return p.aspectRatio }
func (p *Plan) SetAspectRatio(r float64) {
	if r <= 0 {
		r = math.NaN()
	}
	setFloat(p, &p.aspectRatio, r)
}

func (p *Plan) IsText() bool                { return p.isText }
func (p *Plan) SetIsText(b bool)            { setField(p, &p.isText, b) }
func (p *Plan) Atomic() bool                { return p.atomic }
func (p *Plan) SetAtomic(b bool)            { setField(p, &p.atomic, b) }
func (p *Plan) IsReferenceBaseline() bool   { return p.referenceBaseline }
func (p *Plan) SetReferenceBaseline(b bool) { setField(p, &p.referenceBaseline, b) }

// IsDirty reports whether the plan changed since the last layout.
func (p *Plan) IsDirty() bool {
	return p.dirty
}

// SetDirty sets the flag directly. Clearing it also clears the margin,
// padding and position sets; setting it bubbles to ancestors.
func (p *Plan) SetDirty(dirty bool) {
	if dirty {
		if !p.dirty {
			p.changed()
		}
		return
	}
	p.dirty = false
	p.margin.ClearDirty()
	p.padding.ClearDirty()
	p.position.ClearDirty()
}

// Equal compares every intent field. Dirty state and ownership are ignored.
func (p *Plan) Equal(o *Plan) bool {
	return p.direction == o.direction &&
		p.wrap == o.wrap &&
		p.justify == o.justify &&
		p.alignItems == o.alignItems &&
		p.alignSelf == o.alignSelf &&
		p.alignContent == o.alignContent &&
		p.overflow == o.overflow &&
		p.positionType == o.positionType &&
		p.margin.Equal(&o.margin) &&
		p.padding.Equal(&o.padding) &&
		p.position.Equal(&o.position) &&
		floatsEqual(p.flex, o.flex) &&
		floatsEqual(p.flexGrow, o.flexGrow) &&
		floatsEqual(p.flexShrink, o.flexShrink) &&
		p.basis.Equal(o.basis) &&
		floatsEqual(p.gap, o.gap) &&
		p.width.Equal(o.width) &&
		p.height.Equal(o.height) &&
		p.minWidth.Equal(o.minWidth) &&
		p.minHeight.Equal(o.minHeight) &&
		p.maxWidth.Equal(o.maxWidth) &&
		p.maxHeight.Equal(o.maxHeight) &&
		floatsEqual(p.aspectRatio, o.aspectRatio) &&
		p.isText == o.isText &&
		p.atomic == o.atomic &&
		p.referenceBaseline == o.referenceBaseline
}

// resolvedFlexGrow folds the Flex shorthand into FlexGrow.
func (p *Plan) resolvedFlexGrow() float64 {
	if !isUndefined(p.flexGrow) {
		return p.flexGrow
	}
	if !isUndefined(p.flex) && p.flex > 0 {
		return p.flex
	}
	return 0
}

// resolvedFlexShrink folds the Flex shorthand into FlexShrink.
func (p *Plan) resolvedFlexShrink() float64 {
	if !isUndefined(p.flexShrink) {
		return p.flexShrink
	}
	if !isUndefined(p.flex) && p.flex < 0 {
		return -p.flex
	}
	return defaultFlexShrink
}

// resolvedBasis returns the explicit basis. A positive Flex shorthand with
// no explicit basis starts items from zero, as in CSS "flex: 1".
func (p *Plan) resolvedBasis() Number {
	if p.basis.IsDefined() {
		return p.basis
	}
	if !isUndefined(p.flex) && p.flex > 0 {
		return Fixed(0)
	}
	return Auto()
}

func (p *Plan) hasAspectRatio() bool {
	return !isUndefined(p.aspectRatio) && p.aspectRatio > 0
}

func (p *Plan) size(isRow bool) Number {
	if isRow {
		return p.width
	}
	return p.height
}

func (p *Plan) minSize(isRow bool) Number {
	if isRow {
		return p.minWidth
	}
	return p.minHeight
}

func (p *Plan) maxSize(isRow bool) Number {
	if isRow {
		return p.maxWidth
	}
	return p.maxHeight
}
