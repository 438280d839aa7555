// Command flex arranges layout trees described in YAML and prints the
// result.
//
// Usage:
//
//	flex arrange [--width W] [--height H] [--fit] [--format text|yaml] [--stats] [--watch] FILE
//	flex check FILE...
//	flex dumpconfig [--default] [DESTINATION]
//	flex version
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/grindlemire/go-flex/internal/config"
)

const appName = "flex"

// version is overridden at link time with -ldflags "-X main.version=...".
var version = ""

func getVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "devel"
}

// initializeAppContext prepares configuration and logging after the command
// line has been parsed.
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error
	env := envFromContext(ctx)

	configFile := cmd.String("config")
	if env.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	log, closer, err := env.Cfg.Logging.Prepare(cmd.Bool("debug"))
	if err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.Log, env.logCloser = log, closer

	env.Log.Debug("Program started",
		zap.Strings("args", os.Args),
		zap.String("ver", getVersion()),
		zap.String("runtime", runtime.Version()))
	if len(configFile) == 0 {
		env.Log.Debug("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) (err error) {
	env := envFromContext(ctx)

	env.Log.Debug("Program ended", zap.Duration("elapsed", env.uptime()), zap.Strings("parsed args", cmd.Args().Slice()))
	_ = env.Log.Sync()

	if env.logCloser != nil {
		if er := env.logCloser.Close(); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to close log file: %w", er))
		}
	}
	return err
}

// errWasHandled is set once an error has been written to the log, so main
// does not print it a second time.
var errWasHandled bool

func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	env := envFromContext(ctx)
	if env.Cfg != nil {
		env.Log.Error("Program ended with error", zap.Error(err))
		errWasHandled = env.Cfg.Logging.Console.Level != config.LevelNone
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:            appName,
		Usage:           "flexible-box layout for terminal cells",
		Version:         getVersion() + " (" + runtime.Version() + ")",
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log every layout pass to the console"},
		},
		Commands: []*cli.Command{
			{
				Name:         "arrange",
				Usage:        "Arranges a layout document and prints the result",
				OnUsageError: usageErrorHandler,
				Action:       runArrange,
				ArgsUsage:    "FILE",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "width", Aliases: []string{"W"}, Usage: "available width in `CELLS`"},
					&cli.IntFlag{Name: "height", Aliases: []string{"H"}, Usage: "available height in `CELLS`"},
					&cli.BoolFlag{Name: "fit", Usage: "use the size of the current terminal"},
					&cli.StringFlag{Name: "format", Aliases: []string{"f"},
						Usage: "output `FORMAT` (supported formats: " + strings.Join(config.Formats, ", ") + ")"},
					&cli.BoolFlag{Name: "stats", Usage: "print layout pass statistics"},
					&cli.BoolFlag{Name: "watch", Aliases: []string{"w"}, Usage: "arrange again whenever FILE changes"},
				},
				CustomHelpTemplate: fmt.Sprintf(`%s
SIZE:
    The available size is taken from --width/--height, then --fit, then the
    document's own width/height, then the configuration defaults.
`, cli.CommandHelpTemplate),
			},
			{
				Name:         "check",
				Usage:        "Validates layout documents without arranging them",
				OnUsageError: usageErrorHandler,
				Action:       runCheck,
				ArgsUsage:    "FILE...",
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				OnUsageError: usageErrorHandler,
				Action:       outputConfiguration,
				ArgsUsage:    "DESTINATION",
				CustomHelpTemplate: fmt.Sprintf(`%s

DESTINATION:
    file name to write configuration to, if absent - STDOUT
`, cli.CommandHelpTemplate),
			},
			{
				Name:  "version",
				Usage: "Prints version information",
				Action: func(_ context.Context, cmd *cli.Command) error {
					_, err := fmt.Fprintf(cmd.Root().Writer, "%s %s (%s)\n", appName, getVersion(), runtime.Version())
					return err
				},
			},
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(contextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	var err error
	// os.Exit is called at the end of main, no deferred functions may follow.
	defer func() {
		stop()
		if err != nil {
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = newApp().Run(ctx, os.Args)
}
