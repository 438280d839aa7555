package layout

import (
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// generation is bumped once per top-level Arrange. A dirty node whose
// GenerationCount differs from it drops its cached measurements before it
// is visited.
var generation atomic.Uint64

// Stats summarizes one Arrange call.
type Stats struct {
	Generation   uint64
	Visits       int // nodes laid out or measured without a cache hit
	CacheHits    int
	MeasureCalls int // calls into MeasureFuncs
	Overflows    int // containers whose children did not fit
}

// Arranger runs layout passes. The zero value is ready to use and logs
// nothing.
type Arranger struct {
	Logger *zap.Logger
}

// Arrange computes the layout of the tree rooted at root within the given
// available size. A NaN size leaves that axis unconstrained.
func Arrange(root *Node, availableWidth, availableHeight float64) {
	var a Arranger
	a.Arrange(root, availableWidth, availableHeight)
}

// Arrange computes the layout of the tree rooted at root and returns
// statistics about the pass.
func (ar *Arranger) Arrange(root *Node, availableWidth, availableHeight float64) Stats {
	if root == nil {
		panic("layout: nil root in Arrange")
	}
	log := ar.Logger
	if log == nil {
		log = zap.NewNop()
	}
	p := &pass{
		log:        log,
		generation: generation.Add(1),
	}
	p.stats.Generation = p.generation

	root.resolveDimensions()
	width, widthMode := root.startSize(true, availableWidth, availableHeight)
	height, heightMode := root.startSize(false, availableWidth, availableHeight)

	p.layoutNode(root, width, height, widthMode, heightMode, availableWidth, availableHeight, true, "initial")

	ra := &root.actual
	ra.Position = Sides{}
	ra.Position.Left = root.margin(EdgeLeft, availableWidth, availableHeight) +
		root.relativeOffset(true, availableWidth, availableHeight)
	ra.Position.Top = root.margin(EdgeTop, availableWidth, availableHeight) +
		root.relativeOffset(false, availableWidth, availableHeight)
	if !isUndefined(availableWidth) {
		ra.Position.Right = availableWidth - ra.Position.Left - ra.Width
	}
	if !isUndefined(availableHeight) {
		ra.Position.Bottom = availableHeight - ra.Position.Top - ra.Height
	}

	p.stats.Overflows = roundLayout(root, 0, 0, 0, 0)

	if p.stats.Overflows > 0 {
		log.Warn("children overflow their container",
			zap.String("root", root.name),
			zap.Int("containers", p.stats.Overflows),
			zap.Uint64("generation", p.generation))
	}
	if ce := log.Check(zapcore.DebugLevel, "arrange complete"); ce != nil {
		ce.Write(
			zap.String("root", root.name),
			zap.Uint64("generation", p.generation),
			zap.Int("visits", p.stats.Visits),
			zap.Int("cache-hits", p.stats.CacheHits),
			zap.Int("measure-calls", p.stats.MeasureCalls))
	}
	return p.stats
}

// startSize picks the root's size and mode on one axis: its own definite
// size, else its max as an upper bound, else the available size.
func (n *Node) startSize(isRow bool, availableWidth, availableHeight float64) (float64, MeasureMode) {
	axis, owner := Column, availableHeight
	if isRow {
		axis, owner = Row, availableWidth
	}
	if n.styleDimDefined(axis, owner) {
		size := n.actual.resolvedSize(isRow).Resolve(owner)
		return size + n.marginForAxis(axis, availableWidth, availableHeight), MeasureExactly
	}
	if maxSize := n.plan.maxSize(isRow).Resolve(owner); !isUndefined(maxSize) && maxSize >= 0 {
		return maxSize, MeasureAtMost
	}
	if isUndefined(owner) {
		return nan, MeasureUndefined
	}
	return owner, MeasureExactly
}

// pass holds the state of one Arrange call.
type pass struct {
	log        *zap.Logger
	generation uint64
	depth      int
	stats      Stats
}

// layoutNode wraps layoutImpl with the measurement cache. When
// performLayout is false only the node's size is needed; otherwise the
// whole subtree is positioned. It returns true if layout ran.
func (p *pass) layoutNode(n *Node, availW, availH float64, wm, hm MeasureMode, ow, oh float64, performLayout bool, reason string) bool {
	a := &n.actual
	p.depth++
	defer func() { p.depth-- }()

	if n.plan.dirty && a.GenerationCount != p.generation {
		a.Cache.Reset()
		a.CachedLayout.invalidate()
	}

	key := MeasureKey{
		AvailableWidth:  availW,
		AvailableHeight: availH,
		WidthMode:       wm,
		HeightMode:      hm,
		OwnerWidth:      ow,
		OwnerHeight:     oh,
	}

	var (
		cached CachedMeasurement
		hit    bool
	)
	if a.CachedLayout.matches(key) {
		cached, hit = a.CachedLayout, true
	} else if !performLayout {
		cached, hit = a.Cache.Lookup(key)
	}

	if ce := p.log.Check(zapcore.DebugLevel, "layout node"); ce != nil {
		ce.Write(
			zap.String("node", n.name),
			zap.String("reason", reason),
			zap.Int("depth", p.depth),
			zap.Bool("layout", performLayout),
			zap.Stringer("width-mode", wm),
			zap.Float64("available-width", availW),
			zap.Stringer("height-mode", hm),
			zap.Float64("available-height", availH),
			zap.Bool("cache-hit", hit))
	}

	if hit {
		p.stats.CacheHits++
		a.measuredWidth = cached.ComputedWidth
		a.measuredHeight = cached.ComputedHeight
	} else {
		p.stats.Visits++
		p.layoutImpl(n, availW, availH, wm, hm, ow, oh, performLayout)
		if performLayout {
			a.CachedLayout = CachedMeasurement{
				MeasureKey:     key,
				ComputedWidth:  a.measuredWidth,
				ComputedHeight: a.measuredHeight,
				valid:          true,
			}
		} else {
			a.Cache.Store(key, a.measuredWidth, a.measuredHeight)
		}
	}

	if performLayout {
		a.Width = a.measuredWidth
		a.Height = a.measuredHeight
		n.plan.SetDirty(false)
	}
	a.GenerationCount = p.generation
	return !hit
}
