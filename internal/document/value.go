package document

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"github.com/grindlemire/go-flex/internal/layout"
)

// Value is a scalar kept as written so that Validate can report every bad
// value with its line instead of failing on the first one while decoding.
type Value struct {
	Raw  string
	Line int
}

func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar value", node.Line)
	}
	v.Raw = node.Value
	v.Line = node.Line
	return nil
}

func (v Value) MarshalYAML() (any, error) {
	return v.Raw, nil
}

// IsZero reports whether the value was absent from the document.
func (v Value) IsZero() bool {
	return v.Raw == ""
}

// ParseNumber converts "12", "12.5", "50%", "auto" and "undefined".
// An empty string is Undefined.
func ParseNumber(s string) (layout.Number, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "", "undefined":
		return layout.Undefined(), nil
	case "auto":
		return layout.Auto(), nil
	}

	pct := strings.HasSuffix(s, "%")
	f, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return layout.Undefined(), fmt.Errorf("invalid number %q", s)
	}
	if pct {
		return layout.Percent(f), nil
	}
	return layout.Fixed(f), nil
}

// Edges holds per-side values keyed by edge name. A bare scalar applies to
// all sides, so "padding: 1" equals "padding: {all: 1}".
type Edges map[string]Value

func (e *Edges) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*e = Edges{"all": {Raw: node.Value, Line: node.Line}}
		return nil
	}
	var m map[string]Value
	if err := node.Decode(&m); err != nil {
		return err
	}
	*e = m
	return nil
}
