package document

import (
	"fmt"

	yaml "gopkg.in/yaml.v3"

	flex "github.com/grindlemire/go-flex"
	"github.com/grindlemire/go-flex/internal/layout"
)

// Box is a rectangle in whole cells.
type Box struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func boxOf(r layout.Rect) Box {
	return Box{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// Report is the arranged result of one node and its positioned descendants.
// Visible is set when an Overflow Hidden or Scroll ancestor cuts the node's
// box; Extent is the children's bounding box for such clipping containers.
type Report struct {
	Name     string    `yaml:"name"`
	Bounds   Box       `yaml:"bounds,flow"`
	Content  Box       `yaml:"content,flow"`
	Absolute Box       `yaml:"absolute,flow"`
	Visible  *Box      `yaml:"visible,omitempty,flow"`
	Extent   *Box      `yaml:"extent,omitempty,flow"`
	Line     int       `yaml:"line,omitempty"`
	Overflow bool      `yaml:"overflow,omitempty"`
	Children []*Report `yaml:"children,omitempty"`
}

// NewReport captures the layout of an arranged tree. Nodes that were not
// positioned, such as the children of an atomic node, are left out.
// It returns nil if root itself was never arranged.
func NewReport(root *layout.Node) *Report {
	if !root.Actual().Computed() {
		return nil
	}
	return newReport(root, flex.AbsoluteBounds(root))
}

func newReport(n *layout.Node, abs layout.Rect) *Report {
	a := n.Actual()
	r := &Report{
		Name:     n.Name(),
		Bounds:   boxOf(a.Bounds()),
		Content:  boxOf(a.ContentBounds()),
		Absolute: boxOf(abs),
		Line:     a.LineIndex,
		Overflow: a.HadOverflow,
	}
	// Only clipped nodes carry a visible box.
	if v := flex.VisibleBounds(n); v != abs {
		b := boxOf(v)
		r.Visible = &b
	}
	if n.Plan().Overflow() != layout.OverflowVisible && n.ChildCount() > 0 {
		b := boxOf(flex.ContentExtent(n))
		r.Extent = &b
	}
	for _, child := range n.Children() {
		if !child.Actual().Computed() {
			continue
		}
		cb := child.Bounds().Translate(abs.X, abs.Y)
		r.Children = append(r.Children, newReport(child, cb))
	}
	return r
}

// Marshal renders the report as YAML.
func (r *Report) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	return data, nil
}

// Find returns the report for the first node named name, depth-first.
func (r *Report) Find(name string) *Report {
	if r == nil {
		return nil
	}
	if r.Name == name {
		return r
	}
	for _, child := range r.Children {
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}
