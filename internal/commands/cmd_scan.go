package commands

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tagtree/internal/core/config"
	"github.com/colonyops/tagtree/internal/printer"
)

type ScanCmd struct {
	flags *Flags

	// flags
	settings   scanSettings
	jsonOutput bool
	flatOutput bool
	groupByTag bool
	sortOutput bool
}

// NewScanCmd creates a new scan command
func NewScanCmd(flags *Flags) *ScanCmd {
	return &ScanCmd{flags: flags}
}

// Register adds the scan command to the application
func (cmd *ScanCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "scan",
		Aliases:   []string{"s"},
		Usage:     "Scan a directory tree for tagged comments",
		UsageText: "tagtree scan [options] [path]",
		Description: `Walks the given path (default: current directory) and prints every
tagged comment found, grouped by file.

Hidden files and gitignored paths are skipped unless enabled. Results are
rendered as a tree by default; use --flat for grep-style lines or --json
for machine-readable output.`,
		Flags:  cmd.Flags(),
		Action: cmd.Run,
	})

	return app
}

// Flags returns the scan flag set; main registers these on the root
// command as well since scan is the default action.
func (cmd *ScanCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:        "tags",
			Aliases:     []string{"t"},
			Usage:       "tag names to search for (default: built-in catalog)",
			Destination: &cmd.settings.tags,
		},
		&cli.StringSliceFlag{
			Name:        "include",
			Aliases:     []string{"i"},
			Usage:       "glob patterns of files to include",
			Destination: &cmd.settings.include,
		},
		&cli.StringSliceFlag{
			Name:        "exclude",
			Aliases:     []string{"e"},
			Usage:       "glob patterns of files or directories to exclude",
			Destination: &cmd.settings.exclude,
		},
		&cli.BoolFlag{
			Name:        "json",
			Usage:       "output results as JSON",
			Destination: &cmd.jsonOutput,
		},
		&cli.BoolFlag{
			Name:        "flat",
			Usage:       "output one line per item instead of a tree",
			Destination: &cmd.flatOutput,
		},
		&cli.IntFlag{
			Name:        "depth",
			Aliases:     []string{"d"},
			Usage:       "maximum directory depth (0 = unlimited)",
			Destination: &cmd.settings.depth,
		},
		&cli.BoolFlag{
			Name:        "follow-links",
			Usage:       "follow symbolic links",
			Destination: &cmd.settings.followLinks,
		},
		&cli.BoolFlag{
			Name:        "hidden",
			Usage:       "include hidden files and directories",
			Destination: &cmd.settings.hidden,
		},
		&cli.BoolFlag{
			Name:        "case-sensitive",
			Usage:       "match tags case-sensitively",
			Destination: &cmd.settings.caseSensitive,
		},
		&cli.IntFlag{
			Name:        "threads",
			Usage:       "number of parse workers (0 = one per CPU)",
			Destination: &cmd.settings.threads,
		},
		&cli.BoolFlag{
			Name:        "no-gitignore",
			Usage:       "do not respect .gitignore rules",
			Destination: &cmd.settings.noGitignore,
		},
		&cli.BoolFlag{
			Name:        "group-by-tag",
			Usage:       "group tree output by tag instead of by file",
			Destination: &cmd.groupByTag,
		},
		&cli.BoolFlag{
			Name:        "sort",
			Usage:       "sort items by priority, highest first",
			Destination: &cmd.sortOutput,
		},
	}
}

// Run executes a scan; exported so main can use it as the default action.
func (cmd *ScanCmd) Run(ctx context.Context, c *cli.Command) error {
	root := c.Args().First()
	if root == "" {
		root = "."
	}

	result, err := cmd.flags.runScan(root, cmd.settings)
	if err != nil {
		return err
	}

	cfg := cmd.flags.effectiveConfig()
	format := cfg.Format
	switch {
	case cmd.jsonOutput:
		format = config.FormatJSON
	case cmd.flatOutput:
		format = config.FormatFlat
	}

	cwd, _ := os.Getwd()
	p := printer.New(c.Root().Writer, printer.Options{
		Format:         format,
		Colored:        cmd.flags.ColorEnabled() && format != config.FormatJSON,
		GroupByTag:     cmd.groupByTag,
		ShowSummary:    true,
		BasePath:       cwd,
		SortByPriority: cmd.sortOutput,
	})

	return p.Print(result)
}
