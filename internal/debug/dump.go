package debug

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/grindlemire/go-flex/internal/layout"
)

// Mode selects what each line of a dump contains.
type Mode uint8

const (
	ShowPlan Mode = 1 << iota
	ShowActual
	ShowCache

	ShowAll = ShowPlan | ShowActual | ShowCache
)

// Fprint writes an indented tree rooted at root to w.
func Fprint(w io.Writer, root *layout.Node, mode Mode) error {
	var sb strings.Builder
	writeNode(&sb, root, "", "", mode)
	_, err := io.WriteString(w, sb.String())
	return err
}

// String returns the dump as a string.
func String(root *layout.Node, mode Mode) string {
	var sb strings.Builder
	writeNode(&sb, root, "", "", mode)
	return sb.String()
}

func writeNode(sb *strings.Builder, n *layout.Node, prefix, childPrefix string, mode Mode) {
	sb.WriteString(prefix)
	sb.WriteString(displayName(n))

	if mode&ShowPlan != 0 {
		if fields := PlanSummary(n.Plan(), n.ChildCount() > 0); len(fields) > 0 {
			sb.WriteString(" ")
			sb.WriteString(strings.Join(fields, " "))
		}
	}
	if mode&ShowActual != 0 {
		sb.WriteString(" ")
		sb.WriteString(ActualSummary(n.Actual()))
	}
	if mode&ShowCache != 0 {
		fmt.Fprintf(sb, " cache=%d", n.Actual().Cache.Len())
		if n.IsDirty() {
			sb.WriteString(" dirty")
		}
	}
	sb.WriteString("\n")

	children := n.Children()
	for i, child := range children {
		if i == len(children)-1 {
			writeNode(sb, child, childPrefix+"└─ ", childPrefix+"   ", mode)
		} else {
			writeNode(sb, child, childPrefix+"├─ ", childPrefix+"│  ", mode)
		}
	}
}

func displayName(n *layout.Node) string {
	if n.Name() == "" {
		return "<node>"
	}
	return n.Name()
}

// PlanSummary lists the fields of p that differ from DefaultPlan as
// key=value pairs. Container-only fields are listed only for containers.
func PlanSummary(p *layout.Plan, container bool) []string {
	def := layout.DefaultPlan()
	var out []string
	add := func(key string, v fmt.Stringer) {
		out = append(out, key+"="+v.String())
	}

	if container {
		if p.Direction() != def.Direction() {
			add("direction", p.Direction())
		}
		if p.Wrap() != def.Wrap() {
			add("wrap", p.Wrap())
		}
		if p.JustifyContent() != def.JustifyContent() {
			add("justify", p.JustifyContent())
		}
		if p.AlignItems() != def.AlignItems() {
			add("align", p.AlignItems())
		}
		if p.AlignContent() != def.AlignContent() {
			add("align-content", p.AlignContent())
		}
		if p.Gap() != 0 {
			out = append(out, "gap="+formatFloat(p.Gap()))
		}
	}
	if p.AlignSelf() != def.AlignSelf() {
		add("align-self", p.AlignSelf())
	}
	if p.Overflow() != def.Overflow() {
		add("overflow", p.Overflow())
	}
	if p.PositionType() != def.PositionType() {
		add("position", p.PositionType())
	}

	numbers := []struct {
		key string
		v   layout.Number
		def layout.Number
	}{
		{"width", p.Width(), def.Width()},
		{"height", p.Height(), def.Height()},
		{"min-width", p.MinWidth(), def.MinWidth()},
		{"min-height", p.MinHeight(), def.MinHeight()},
		{"max-width", p.MaxWidth(), def.MaxWidth()},
		{"max-height", p.MaxHeight(), def.MaxHeight()},
		{"basis", p.Basis(), def.Basis()},
	}
	for _, num := range numbers {
		if !num.v.Equal(num.def) {
			add(num.key, num.v)
		}
	}

	floats := []struct {
		key string
		v   float64
	}{
		{"flex", p.Flex()},
		{"grow", p.FlexGrow()},
		{"shrink", p.FlexShrink()},
		{"aspect-ratio", p.AspectRatio()},
	}
	for _, f := range floats {
		if !math.IsNaN(f.v) {
			out = append(out, f.key+"="+formatFloat(f.v))
		}
	}

	for _, es := range []struct {
		key string
		set *layout.EdgeSet
	}{
		{"margin", p.Margin()},
		{"padding", p.Padding()},
		{"offset", p.Position()},
	} {
		if s := EdgeSetSummary(es.set); s != "" {
			out = append(out, es.key+"("+s+")")
		}
	}

	if p.IsText() {
		out = append(out, "text")
	}
	if p.Atomic() {
		out = append(out, "atomic")
	}
	if p.IsReferenceBaseline() {
		out = append(out, "baseline")
	}
	return out
}

// EdgeSetSummary lists the sides that have a value, such as "all=1,left=2".
func EdgeSetSummary(s *layout.EdgeSet) string {
	var parts []string
	for e := layout.EdgeLeft; e <= layout.EdgeAll; e++ {
		if v := s.Get(e); v.Unit != layout.UnitUndefined {
			parts = append(parts, e.String()+"="+v.String())
		}
	}
	return strings.Join(parts, ",")
}

// ActualSummary renders the rounded bounds as "[x,y wxh]" plus flags.
func ActualSummary(a *layout.Actual) string {
	if !a.Computed() {
		return "[not computed]"
	}
	b := a.Bounds()
	s := fmt.Sprintf("[%d,%d %dx%d]", b.X, b.Y, b.Width, b.Height)
	if a.LineIndex > 0 {
		s += " line=" + strconv.Itoa(a.LineIndex)
	}
	if a.HadOverflow {
		s += " overflow"
	}
	return s
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
