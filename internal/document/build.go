package document

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"

	"go.uber.org/multierr"

	flex "github.com/grindlemire/go-flex"
	"github.com/grindlemire/go-flex/internal/layout"
)

// Validate checks every value in the document and returns all problems
// combined with multierr. A nil error means Build will succeed.
func (d *Document) Validate() error {
	_, err := d.compile()
	return err
}

// Build validates the document and creates the node tree. Unnamed elements
// are named after their path from the root, such as "root/1/0".
func (d *Document) Build() (*layout.Node, error) {
	root, err := d.compile()
	if err != nil {
		return nil, err
	}
	return root, nil
}

func (d *Document) compile() (*layout.Node, error) {
	if d.Root == nil {
		return nil, ErrEmptyDocument
	}
	c := &compiler{}
	c.size("width", d.Width)
	c.size("height", d.Height)
	root := c.element(d.Root, "root")
	return root, c.err
}

type compiler struct {
	err error
}

func (c *compiler) fail(path string, v Value, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if v.Line > 0 {
		c.err = multierr.Append(c.err, fmt.Errorf("%s: line %d: %s", path, v.Line, msg))
		return
	}
	c.err = multierr.Append(c.err, fmt.Errorf("%s: %s", path, msg))
}

// size checks a document-level available size.
func (c *compiler) size(key string, v Value) {
	if v.IsZero() {
		return
	}
	n, err := ParseNumber(v.Raw)
	switch {
	case err != nil:
		c.fail(key, v, "%v", err)
	case n.Unit == layout.UnitPercent:
		c.fail(key, v, "available size cannot be a percentage")
	case n.Unit == layout.UnitPoint && n.Value < 0:
		c.fail(key, v, "must not be negative")
	}
}

func (c *compiler) element(el *Element, path string) *layout.Node {
	name := el.Name
	if name == "" {
		name = path
	}

	n := layout.NewNode(layout.DefaultPlan())
	n.SetName(name)
	p := n.Plan()

	applyEnum(c, name, "direction", el.Direction, layout.ParseDirection, p.SetDirection)
	applyEnum(c, name, "wrap", el.Wrap, layout.ParseWrap, p.SetWrap)
	applyEnum(c, name, "justify", el.Justify, layout.ParseJustify, p.SetJustifyContent)
	applyEnum(c, name, "align", el.Align, layout.ParseAlign, p.SetAlignItems)
	applyEnum(c, name, "align-self", el.AlignSelf, layout.ParseAlign, p.SetAlignSelf)
	applyEnum(c, name, "align-content", el.AlignContent, layout.ParseAlign, p.SetAlignContent)
	applyEnum(c, name, "overflow", el.Overflow, layout.ParseOverflow, p.SetOverflow)
	applyEnum(c, name, "position", el.Position, layout.ParsePositionType, p.SetPositionType)

	c.number(name, "width", el.Width, p.SetWidth)
	c.number(name, "height", el.Height, p.SetHeight)
	c.number(name, "min-width", el.MinWidth, p.SetMinWidth)
	c.number(name, "min-height", el.MinHeight, p.SetMinHeight)
	c.number(name, "max-width", el.MaxWidth, p.SetMaxWidth)
	c.number(name, "max-height", el.MaxHeight, p.SetMaxHeight)
	c.number(name, "basis", el.Basis, p.SetBasis)

	c.float(name, "flex", el.Flex, true, p.SetFlex)
	c.float(name, "grow", el.Grow, false, p.SetFlexGrow)
	c.float(name, "shrink", el.Shrink, false, p.SetFlexShrink)
	c.float(name, "gap", el.Gap, false, p.SetGap)
	c.float(name, "aspect-ratio", el.AspectRatio, false, p.SetAspectRatio)

	c.edges(name, "margin", el.Margin, p.Margin(), true)
	c.edges(name, "padding", el.Padding, p.Padding(), false)
	c.edges(name, "offset", el.Offset, p.Position(), true)

	p.SetAtomic(el.Atomic)
	p.SetReferenceBaseline(el.Baseline)

	if el.Text != nil {
		if len(el.Children) > 0 {
			c.fail(name, Value{}, "text element cannot have children")
			return n
		}
		p.SetIsText(true)
		n.SetMeasureFunc(flex.TextMeasure(*el.Text))
		return n
	}

	for i, child := range el.Children {
		childPath := path + "/" + strconv.Itoa(i)
		if child == nil {
			c.fail(childPath, Value{}, "empty child element")
			continue
		}
		n.AddChild(c.element(child, childPath))
	}
	return n
}

func applyEnum[T any](c *compiler, path, key string, v Value, parse func(string) (T, bool), set func(T)) {
	if v.IsZero() {
		return
	}
	e, ok := parse(v.Raw)
	if !ok {
		c.fail(path, v, "%s: unknown value %q", key, v.Raw)
		return
	}
	set(e)
}

// number parses a size. Point sizes must not be negative.
func (c *compiler) number(path, key string, v Value, set func(layout.Number)) {
	if v.IsZero() {
		return
	}
	n, err := ParseNumber(v.Raw)
	if err != nil {
		c.fail(path, v, "%s: %v", key, err)
		return
	}
	if n.IsDefined() && n.Value < 0 {
		c.fail(path, v, "%s: must not be negative, got %s", key, v.Raw)
		return
	}
	set(n)
}

func (c *compiler) float(path, key string, v Value, allowNegative bool, set func(float64)) {
	if v.IsZero() {
		return
	}
	f, err := strconv.ParseFloat(v.Raw, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		c.fail(path, v, "%s: invalid number %q", key, v.Raw)
		return
	}
	if f < 0 && !allowNegative {
		c.fail(path, v, "%s: must not be negative, got %s", key, v.Raw)
		return
	}
	set(f)
}

// edges applies per-side values. Margin and offset may be negative,
// padding may not; only margin accepts auto.
func (c *compiler) edges(path, key string, e Edges, set *layout.EdgeSet, allowNegative bool) {
	for _, side := range slices.Sorted(maps.Keys(e)) {
		v := e[side]
		edge, ok := layout.ParseEdge(side)
		if !ok {
			c.fail(path, v, "%s: unknown edge %q", key, side)
			continue
		}
		n, err := ParseNumber(v.Raw)
		if err != nil {
			c.fail(path, v, "%s.%s: %v", key, side, err)
			continue
		}
		if n.IsAuto() && key != "margin" {
			c.fail(path, v, "%s.%s: auto is only allowed for margins", key, side)
			continue
		}
		if n.IsDefined() && n.Value < 0 && !allowNegative {
			c.fail(path, v, "%s.%s: must not be negative, got %s", key, side, v.Raw)
			continue
		}
		set.Set(edge, n)
	}
}
