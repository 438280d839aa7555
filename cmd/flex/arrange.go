package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/grindlemire/go-flex/internal/config"
	"github.com/grindlemire/go-flex/internal/debug"
	"github.com/grindlemire/go-flex/internal/document"
	"github.com/grindlemire/go-flex/internal/layout"
)

// arrangeOptions are the command line settings of one arrange run. Zero
// sizes are unset.
type arrangeOptions struct {
	Width  int
	Height int
	Fit    bool
	Format string
	Stats  bool
}

// terminalSize reports the size of the terminal attached to stdout.
var terminalSize = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

func runArrange(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := envFromContext(ctx)
	log := env.Log.Named("arrange")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no layout document has been specified")
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many documents", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	opts := arrangeOptions{
		Width:  int(cmd.Int("width")),
		Height: int(cmd.Int("height")),
		Fit:    cmd.Bool("fit"),
		Format: cmd.String("format"),
		Stats:  cmd.Bool("stats") || env.Cfg.Arrange.Stats,
	}
	if opts.Format == "" {
		opts.Format = env.Cfg.Arrange.Format
	}
	if !slices.Contains(config.Formats, opts.Format) {
		return fmt.Errorf("unknown output format %q", opts.Format)
	}

	out := cmd.Root().Writer
	if out == nil {
		out = os.Stdout
	}
	arrange := func() error {
		return arrangeFile(src, opts, env.Cfg.Arrange, log, out)
	}

	if !cmd.Bool("watch") {
		return arrange()
	}
	if err := arrange(); err != nil {
		// A broken document is reported and the watch goes on, the next save
		// may fix it.
		log.Error("Unable to arrange document", zap.Error(err))
	}
	return watchFile(ctx, src, log, func() {
		if err := arrange(); err != nil {
			log.Error("Unable to arrange document", zap.Error(err))
		}
	})
}

// arrangeFile loads, builds and arranges one document and writes the result
// to out.
func arrangeFile(path string, opts arrangeOptions, defaults config.ArrangeConfig, log *zap.Logger, out io.Writer) error {
	doc, err := document.LoadFile(path)
	if err != nil {
		return err
	}
	root, err := doc.Build()
	if err != nil {
		return fmt.Errorf("%s: invalid document: %w", path, err)
	}

	width, height := availableSize(doc, opts, defaults, log)
	arranger := layout.Arranger{Logger: log}
	stats := arranger.Arrange(root, width, height)
	log.Debug("Document arranged",
		zap.String("file", path),
		zap.Float64("width", width),
		zap.Float64("height", height),
		zap.Int("visits", stats.Visits))

	return writeResult(out, root, opts, stats)
}

// availableSize picks the size to arrange in: explicit flags, then the
// terminal when fitting, then the document, then configuration defaults.
// Each axis is resolved on its own.
func availableSize(doc *document.Document, opts arrangeOptions, defaults config.ArrangeConfig, log *zap.Logger) (width, height float64) {
	width, height = math.NaN(), math.NaN()
	if opts.Width > 0 {
		width = float64(opts.Width)
	}
	if opts.Height > 0 {
		height = float64(opts.Height)
	}

	if opts.Fit && (math.IsNaN(width) || math.IsNaN(height)) {
		if tw, th, err := terminalSize(); err == nil {
			width = pick(width, float64(tw))
			height = pick(height, float64(th))
		} else {
			log.Warn("Unable to get terminal size, falling back to document size", zap.Error(err))
		}
	}

	dw, dh := doc.AvailableSize()
	width = pick(width, dw)
	height = pick(height, dh)

	if defaults.Width > 0 {
		width = pick(width, float64(defaults.Width))
	}
	if defaults.Height > 0 {
		height = pick(height, float64(defaults.Height))
	}
	return width, height
}

func pick(current, fallback float64) float64 {
	if math.IsNaN(current) {
		return fallback
	}
	return current
}

func writeResult(out io.Writer, root *layout.Node, opts arrangeOptions, stats layout.Stats) error {
	var err error
	switch opts.Format {
	case "yaml":
		var data []byte
		if data, err = document.NewReport(root).Marshal(); err == nil {
			_, err = out.Write(data)
		}
		if err == nil && opts.Stats {
			_, err = fmt.Fprintf(out, "# %s\n", formatStats(stats))
		}
	default:
		err = debug.Fprint(out, root, debug.ShowPlan|debug.ShowActual)
		if err == nil && opts.Stats {
			_, err = fmt.Fprintln(out, formatStats(stats))
		}
	}
	if err != nil {
		return fmt.Errorf("unable to write result: %w", err)
	}
	return nil
}

func formatStats(s layout.Stats) string {
	return fmt.Sprintf("generation=%d visits=%d cache-hits=%d measure-calls=%d overflows=%d",
		s.Generation, s.Visits, s.CacheHits, s.MeasureCalls, s.Overflows)
}
