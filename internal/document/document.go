package document

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/grindlemire/go-flex/internal/layout"
)

// ErrEmptyDocument is returned when a document has no root element.
var ErrEmptyDocument = errors.New("document: no root element")

// Document is a layout tree with an optional available size.
type Document struct {
	Width  Value    `yaml:"width,omitempty"`
	Height Value    `yaml:"height,omitempty"`
	Root   *Element `yaml:"root"`
}

// Element describes one node. Absent fields keep the layout defaults.
type Element struct {
	Name string `yaml:"name,omitempty"`

	Direction    Value `yaml:"direction,omitempty"`
	Wrap         Value `yaml:"wrap,omitempty"`
	Justify      Value `yaml:"justify,omitempty"`
	Align        Value `yaml:"align,omitempty"`
	AlignSelf    Value `yaml:"align-self,omitempty"`
	AlignContent Value `yaml:"align-content,omitempty"`
	Overflow     Value `yaml:"overflow,omitempty"`
	Position     Value `yaml:"position,omitempty"`

	Width     Value `yaml:"width,omitempty"`
	Height    Value `yaml:"height,omitempty"`
	MinWidth  Value `yaml:"min-width,omitempty"`
	MinHeight Value `yaml:"min-height,omitempty"`
	MaxWidth  Value `yaml:"max-width,omitempty"`
	MaxHeight Value `yaml:"max-height,omitempty"`
	Basis     Value `yaml:"basis,omitempty"`

	Flex        Value `yaml:"flex,omitempty"`
	Grow        Value `yaml:"grow,omitempty"`
	Shrink      Value `yaml:"shrink,omitempty"`
	Gap         Value `yaml:"gap,omitempty"`
	AspectRatio Value `yaml:"aspect-ratio,omitempty"`

	Margin  Edges `yaml:"margin,omitempty"`
	Padding Edges `yaml:"padding,omitempty"`
	Offset  Edges `yaml:"offset,omitempty"`

	Text     *string `yaml:"text,omitempty"`
	Atomic   bool    `yaml:"atomic,omitempty"`
	Baseline bool    `yaml:"baseline,omitempty"`

	Children []*Element `yaml:"children,omitempty"`
}

// Load decodes a document. Unknown keys are errors; values are checked
// later by Validate or Build.
func Load(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var d Document
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	if d.Root == nil {
		return nil, ErrEmptyDocument
	}
	return &d, nil
}

// LoadFile opens and decodes the document at path.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()

	d, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Marshal serializes the document back to YAML.
func (d *Document) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	return data, nil
}

// AvailableSize returns the document's width and height in cells. An absent
// or invalid size is NaN; Validate reports invalid ones.
func (d *Document) AvailableSize() (width, height float64) {
	return availableSize(d.Width), availableSize(d.Height)
}

func availableSize(v Value) float64 {
	n, err := ParseNumber(v.Raw)
	if err != nil || n.Unit != layout.UnitPoint || n.Value < 0 {
		return math.NaN()
	}
	return n.Value
}
