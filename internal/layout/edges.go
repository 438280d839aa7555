package layout

import "strconv"

// Edge names one side (or group of sides) of a box.
type Edge uint8

const (
	EdgeLeft Edge = iota
	EdgeTop
	EdgeRight
	EdgeBottom
	EdgeStart      // Leading edge of the row axis; Left in left-to-right layout
	EdgeEnd        // Trailing edge of the row axis; Right in left-to-right layout
	EdgeHorizontal // Left, Right, Start and End
	EdgeVertical   // Top and Bottom
	EdgeAll        // Every side

	edgeCount = 9
)

var edgeNames = [edgeCount]string{"left", "top", "right", "bottom", "start", "end", "horizontal", "vertical", "all"}

func (e Edge) String() string {
	if int(e) < len(edgeNames) {
		return edgeNames[e]
	}
	return "edge(" + strconv.Itoa(int(e)) + ")"
}

// ParseEdge maps an edge name printed by String back to its value.
func ParseEdge(s string) (Edge, bool) {
	return parseEnum[Edge](edgeNames[:], s)
}

// EdgeSet holds per-side Numbers for margin, padding and position.
// Each side is optional (Undefined) and sides are resolved with
// ComputedEdgeValue. A change to any side marks the owning Plan dirty.
type EdgeSet struct {
	values [edgeCount]Number
	dirty  bool
	owner  *Plan
}

// Get returns the raw value set for edge.
func (s *EdgeSet) Get(edge Edge) Number {
	return s.values[edge]
}

// Set stores n for edge. Setting an equal value is a no-op.
func (s *EdgeSet) Set(edge Edge, n Number) {
	if s.values[edge].Equal(n) {
		return
	}
	s.values[edge] = n
	s.dirty = true
	if s.owner != nil {
		s.owner.changed()
	}
}

// SetAll is shorthand for Set(EdgeAll, n).
func (s *EdgeSet) SetAll(n Number) {
	s.Set(EdgeAll, n)
}

// ComputedEdgeValue resolves the value that applies to edge: the side itself,
// then Vertical (Top/Bottom) or Horizontal (Left/Right/Start/End), then All,
// then def. Start and End never fall back to def so that an explicit Left or
// Right can still apply.
func (s *EdgeSet) ComputedEdgeValue(edge Edge, def Number) Number {
	if s.values[edge].Unit != UnitUndefined {
		return s.values[edge]
	}
	switch edge {
	case EdgeTop, EdgeBottom:
		if s.values[EdgeVertical].Unit != UnitUndefined {
			return s.values[EdgeVertical]
		}
	case EdgeLeft, EdgeRight, EdgeStart, EdgeEnd:
		if s.values[EdgeHorizontal].Unit != UnitUndefined {
			return s.values[EdgeHorizontal]
		}
	}
	if s.values[EdgeAll].Unit != UnitUndefined {
		return s.values[EdgeAll]
	}
	if edge == EdgeStart || edge == EdgeEnd {
		return Undefined()
	}
	return def
}

// IsDirty reports whether a side changed since the last ClearDirty.
func (s *EdgeSet) IsDirty() bool {
	return s.dirty
}

// ClearDirty resets the dirty flag without notifying the owner.
func (s *EdgeSet) ClearDirty() {
	s.dirty = false
}

// Equal compares the configured sides only.
func (s *EdgeSet) Equal(other *EdgeSet) bool {
	for i := range s.values {
		if !s.values[i].Equal(other.values[i]) {
			return false
		}
	}
	return true
}

// IsZero returns true if no side has been set.
func (s *EdgeSet) IsZero() bool {
	for _, v := range s.values {
		if v.Unit != UnitUndefined {
			return false
		}
	}
	return true
}

// Sides holds resolved per-side values in cells.
type Sides struct {
	Left, Top, Right, Bottom float64
}

// Horizontal returns the sum of Left and Right.
func (s Sides) Horizontal() float64 {
	return s.Left + s.Right
}

// Vertical returns the sum of Top and Bottom.
func (s Sides) Vertical() float64 {
	return s.Top + s.Bottom
}

func (s *Sides) set(edge Edge, v float64) {
	switch edge {
	case EdgeLeft:
		s.Left = v
	case EdgeTop:
		s.Top = v
	case EdgeRight:
		s.Right = v
	case EdgeBottom:
		s.Bottom = v
	}
}

func (s Sides) get(edge Edge) float64 {
	switch edge {
	case EdgeLeft:
		return s.Left
	case EdgeTop:
		return s.Top
	case EdgeRight:
		return s.Right
	case EdgeBottom:
		return s.Bottom
	}
	return 0
}

// Edges represents integer insets for four sides of a Rect.
type Edges struct {
	Top, Right, Bottom, Left int
}

// EdgeAllOf creates Edges with the same value on all sides.
func EdgeAllOf(n int) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// Horizontal returns the sum of Left and Right.
func (e Edges) Horizontal() int {
	return e.Left + e.Right
}

// Vertical returns the sum of Top and Bottom.
func (e Edges) Vertical() int {
	return e.Top + e.Bottom
}
