package layout

import (
	"math"
	"strconv"
)

// Unit specifies how a Number is interpreted.
type Unit uint8

const (
	UnitUndefined Unit = iota // No value set
	UnitAuto                  // Size determined by content/flex
	UnitPoint                 // Absolute terminal cells
	UnitPercent               // Percentage of the parent's inner size on the same axis
)

// Number is a tagged scalar used for every sizing and position field.
// Value is only meaningful for UnitPoint and UnitPercent and is kept at 0
// otherwise so that Numbers compare with ==.
type Number struct {
	Unit  Unit
	Value float64
}

// Undefined returns a Number with no value.
func Undefined() Number {
	return Number{}
}

// Auto returns a Number that should be computed from content/flex.
func Auto() Number {
	return Number{Unit: UnitAuto}
}

// Fixed returns a Number representing an absolute number of terminal cells.
// NaN yields Undefined.
func Fixed(v float64) Number {
	if math.IsNaN(v) {
		return Undefined()
	}
	return Number{Unit: UnitPoint, Value: v}
}

// Percent returns a Number representing a percentage of the parent's size.
// The value is on a 0-100 scale (50.0 = 50%). NaN yields Undefined.
func Percent(p float64) Number {
	if math.IsNaN(p) {
		return Undefined()
	}
	return Number{Unit: UnitPercent, Value: p}
}

// Resolve computes the value in cells against base. Undefined and Auto
// resolve to NaN, which callers treat as "no constraint".
func (n Number) Resolve(base float64) float64 {
	switch n.Unit {
	case UnitPoint:
		return n.Value
	case UnitPercent:
		return n.Value * base / 100
	default:
		return math.NaN()
	}
}

// IsDefined returns true for Point and Percent values.
func (n Number) IsDefined() bool {
	return n.Unit == UnitPoint || n.Unit == UnitPercent
}

// IsAuto returns true if this value should be computed from content/flex.
func (n Number) IsAuto() bool {
	return n.Unit == UnitAuto
}

// Equal compares unit first, then value with a small tolerance.
func (n Number) Equal(other Number) bool {
	if n.Unit != other.Unit {
		return false
	}
	if !n.IsDefined() {
		return true
	}
	return floatsEqual(n.Value, other.Value)
}

func (n Number) String() string {
	switch n.Unit {
	case UnitAuto:
		return "auto"
	case UnitPoint:
		return strconv.FormatFloat(n.Value, 'g', -1, 64)
	case UnitPercent:
		return strconv.FormatFloat(n.Value, 'g', -1, 64) + "%"
	default:
		return "undefined"
	}
}

// floatsEqual treats two NaNs as equal.
func floatsEqual(a, b float64) bool {
	if math.IsNaN(a) {
		return math.IsNaN(b)
	}
	if math.IsNaN(b) {
		return false
	}
	return math.Abs(a-b) < 0.0001
}

// fmax and fmin ignore a NaN operand.
func fmax(a, b float64) float64 {
	if math.IsNaN(a) {
		return b
	}
	if math.IsNaN(b) {
		return a
	}
	return math.Max(a, b)
}

func fmin(a, b float64) float64 {
	if math.IsNaN(a) {
		return b
	}
	if math.IsNaN(b) {
		return a
	}
	return math.Min(a, b)
}

func isUndefined(v float64) bool {
	return math.IsNaN(v)
}

var nan = math.NaN()
