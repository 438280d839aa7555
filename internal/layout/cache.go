package layout

// MeasureMode tells a node how to interpret an available size.
type MeasureMode uint8

const (
	// MeasureUndefined means there is no constraint; size to content.
	MeasureUndefined MeasureMode = iota
	// MeasureExactly means the node must be exactly the given size.
	MeasureExactly
	// MeasureAtMost means the node may be at most the given size.
	MeasureAtMost
)

var measureModeNames = []string{"undefined", "exactly", "at-most"}

func (m MeasureMode) String() string { return enumName(measureModeNames, int(m)) }

// MeasureKey identifies a measurement request. OwnerWidth and OwnerHeight
// are the parent's inner size, which percent margins and paddings resolve
// against.
type MeasureKey struct {
	AvailableWidth  float64
	AvailableHeight float64
	WidthMode       MeasureMode
	HeightMode      MeasureMode
	OwnerWidth      float64
	OwnerHeight     float64
}

// Equal compares modes exactly and sizes with NaN-aware equality.
func (k MeasureKey) Equal(o MeasureKey) bool {
	return k.WidthMode == o.WidthMode &&
		k.HeightMode == o.HeightMode &&
		floatsEqual(k.AvailableWidth, o.AvailableWidth) &&
		floatsEqual(k.AvailableHeight, o.AvailableHeight) &&
		floatsEqual(k.OwnerWidth, o.OwnerWidth) &&
		floatsEqual(k.OwnerHeight, o.OwnerHeight)
}

// CachedMeasurement is one memoized result.
type CachedMeasurement struct {
	MeasureKey
	ComputedWidth  float64
	ComputedHeight float64
	valid          bool
}

// Valid reports whether the entry holds a result.
func (c *CachedMeasurement) Valid() bool {
	return c.valid
}

func (c *CachedMeasurement) matches(k MeasureKey) bool {
	return c.valid && c.MeasureKey.Equal(k)
}

func (c *CachedMeasurement) invalidate() {
	*c = CachedMeasurement{}
}

const maxCachedMeasurements = 8

// MeasurementCache is a fixed ring of recent measure results for one node.
// When all slots are used the oldest entry is overwritten.
type MeasurementCache struct {
	entries [maxCachedMeasurements]CachedMeasurement
	next    int
	count   int
}

// Lookup returns the entry matching k, if any.
func (c *MeasurementCache) Lookup(k MeasureKey) (CachedMeasurement, bool) {
	for i := 0; i < c.count; i++ {
		if c.entries[i].matches(k) {
			return c.entries[i], true
		}
	}
	return CachedMeasurement{}, false
}

// Store records a result in the next slot.
func (c *MeasurementCache) Store(k MeasureKey, width, height float64) {
	c.entries[c.next] = CachedMeasurement{
		MeasureKey:     k,
		ComputedWidth:  width,
		ComputedHeight: height,
		valid:          true,
	}
	c.next = (c.next + 1) % maxCachedMeasurements
	if c.count < maxCachedMeasurements {
		c.count++
	}
}

// Reset drops every entry.
func (c *MeasurementCache) Reset() {
	*c = MeasurementCache{}
}

// Len returns the number of stored entries.
func (c *MeasurementCache) Len() int {
	return c.count
}
