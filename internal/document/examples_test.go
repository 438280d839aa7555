package document

import (
	"path/filepath"
	"testing"

	"github.com/grindlemire/go-flex/internal/layout"
)

func arrangeExample(t *testing.T, name string) *Report {
	t.Helper()
	d, err := LoadFile(filepath.Join("..", "..", "examples", name))
	if err != nil {
		t.Fatalf("LoadFile(%q) error = %v", name, err)
	}
	root, err := d.Build()
	if err != nil {
		t.Fatalf("Build(%q) error = %v", name, err)
	}
	w, h := d.AvailableSize()
	layout.Arrange(root, w, h)
	r := NewReport(root)
	if r == nil {
		t.Fatalf("%s: root not arranged", name)
	}
	return r
}

func TestExamples_AllArrange(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "*.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatal("no example documents found")
	}

	for _, path := range paths {
		name := filepath.Base(path)
		t.Run(name, func(t *testing.T) {
			d, err := LoadFile(path)
			if err != nil {
				t.Fatalf("LoadFile() error = %v", err)
			}
			if err := d.Validate(); err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			r := arrangeExample(t, name)
			w, h := d.AvailableSize()
			if r.Bounds.Width != int(w) || r.Bounds.Height != int(h) {
				t.Errorf("root = %dx%d, want %vx%v", r.Bounds.Width, r.Bounds.Height, w, h)
			}
		})
	}
}

func TestExamples_Positions(t *testing.T) {
	tests := map[string]struct {
		file string
		node string
		want Box
	}{
		"holy grail main":   {file: "holy-grail.yaml", node: "main", want: Box{X: 20, Y: 3, Width: 45, Height: 20}},
		"holy grail aside":  {file: "holy-grail.yaml", node: "aside", want: Box{X: 65, Y: 3, Width: 15, Height: 20}},
		"holy grail footer": {file: "holy-grail.yaml", node: "footer", want: Box{X: 0, Y: 23, Width: 80, Height: 1}},
		"third card":        {file: "cards.yaml", node: "card-3", want: Box{X: 22, Y: 0, Width: 10, Height: 3}},
		"wrapped card":      {file: "cards.yaml", node: "card-4", want: Box{X: 0, Y: 4, Width: 10, Height: 3}},
		"centered dialog":   {file: "dialog.yaml", node: "dialog", want: Box{X: 15, Y: 7, Width: 30, Height: 6}},
		"dialog message":    {file: "dialog.yaml", node: "message", want: Box{X: 16, Y: 8, Width: 28, Height: 2}},
		"pinned badge":      {file: "dialog.yaml", node: "badge", want: Box{X: 57, Y: 0, Width: 3, Height: 1}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := arrangeExample(t, tt.file).Find(tt.node)
			if r == nil {
				t.Fatalf("node %q missing from report", tt.node)
			}
			if r.Absolute != tt.want {
				t.Errorf("%s absolute = %+v, want %+v", tt.node, r.Absolute, tt.want)
			}
		})
	}
}

func TestExamples_ToolbarSpacer(t *testing.T) {
	r := arrangeExample(t, "toolbar.yaml")
	clock := r.Find("clock")
	if clock == nil {
		t.Fatal("clock missing from report")
	}
	if clock.Absolute.X != 34 || clock.Absolute.Width != 5 {
		t.Errorf("clock = %+v, want X 34 width 5", clock.Absolute)
	}
}

func TestExamples_CardLines(t *testing.T) {
	r := arrangeExample(t, "cards.yaml")
	want := map[string]int{"card-1": 0, "card-3": 0, "card-4": 1, "card-5": 1}
	for name, line := range want {
		if got := r.Find(name).Line; got != line {
			t.Errorf("%s line = %d, want %d", name, got, line)
		}
	}
}
