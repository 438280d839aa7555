package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/grindlemire/go-flex/internal/document"
)

func runCheck(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)
	if cmd.Args().Len() == 0 {
		return errors.New("no layout document has been specified")
	}
	return checkFiles(cmd.Args().Slice(), cmd.Root().Writer, env.Log.Named("check"))
}

// checkFiles validates every file, printing one line per problem, and fails
// if any file has problems.
func checkFiles(paths []string, out io.Writer, log *zap.Logger) error {
	var failed int
	for _, path := range paths {
		problems := checkFile(path)
		if len(problems) == 0 {
			fmt.Fprintf(out, "%s: ok\n", path)
			continue
		}
		failed++
		for _, p := range problems {
			fmt.Fprintf(out, "%s: %v\n", path, p)
		}
		log.Debug("Document has problems", zap.String("file", path), zap.Int("count", len(problems)))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d document(s) failed validation", failed, len(paths))
	}
	return nil
}

func checkFile(path string) []error {
	doc, err := document.LoadFile(path)
	if err != nil {
		return []error{err}
	}
	return multierr.Errors(doc.Validate())
}
