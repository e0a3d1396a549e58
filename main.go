package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tagtree/internal/commands"
	"github.com/colonyops/tagtree/internal/core/config"
	"github.com/colonyops/tagtree/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, build() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var logCloser func()

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "tagtree",
		Usage:     "Find and organize tagged comments in source trees",
		UsageText: "tagtree [global options] command [command options] [path]",
		Description: `Tagtree scans source trees for tagged comments like TODO, FIXME, and
HACK and presents them as a tree, flat list, JSON, or statistics.

Run 'tagtree' with no arguments to scan the current directory.
Configuration is read from the nearest .tagtree.yaml, if present.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("TAGTREE_LOG_LEVEL"),
				Value:       "warn",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to stderr)",
				Sources:     cli.EnvVars("TAGTREE_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file (default: nearest .tagtree.yaml)",
				Sources:     cli.EnvVars("TAGTREE_CONFIG"),
				Destination: &flags.ConfigPath,
			},
			&cli.BoolFlag{
				Name:        "no-color",
				Usage:       "disable colored output",
				Sources:     cli.EnvVars("NO_COLOR"),
				Destination: &flags.NoColor,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			if cfg.Source != "" {
				log.Debug().Str("path", cfg.Source).Msg("loaded config file")
			}

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	app = commands.NewScanCmd(flags).Register(app)
	app = commands.NewListCmd(flags).Register(app)
	app = commands.NewTagsCmd(flags).Register(app)
	app = commands.NewStatsCmd(flags).Register(app)
	app = commands.NewInitCmd(flags).Register(app)

	// Register a second scan instance on the root command so a bare
	// `tagtree [path]` behaves exactly like `tagtree scan [path]`. The
	// subcommand keeps its own flag destinations.
	rootScan := commands.NewScanCmd(flags)
	app.Flags = append(app.Flags, rootScan.Flags()...)
	app.Action = rootScan.Run

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
