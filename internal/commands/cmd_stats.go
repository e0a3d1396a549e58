package commands

import (
	"context"
	"encoding/json"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tagtree/internal/printer"
)

type StatsCmd struct {
	flags *Flags

	// flags
	settings   scanSettings
	jsonOutput bool
}

// NewStatsCmd creates a new stats command
func NewStatsCmd(flags *Flags) *StatsCmd {
	return &StatsCmd{flags: flags}
}

// Register adds the stats command to the application
func (cmd *StatsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "stats",
		Usage:     "Show aggregate statistics for a scan",
		UsageText: "tagtree stats [options] [path]",
		Description: `Scans the given path (default: current directory) and prints totals,
the per-file average, and a per-tag histogram.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output the summary as JSON",
				Destination: &cmd.jsonOutput,
			},
			&cli.StringSliceFlag{
				Name:        "tags",
				Aliases:     []string{"t"},
				Usage:       "tag names to search for (default: built-in catalog)",
				Destination: &cmd.settings.tags,
			},
			&cli.BoolFlag{
				Name:        "hidden",
				Usage:       "include hidden files and directories",
				Destination: &cmd.settings.hidden,
			},
			&cli.BoolFlag{
				Name:        "no-gitignore",
				Usage:       "do not respect .gitignore rules",
				Destination: &cmd.settings.noGitignore,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *StatsCmd) run(ctx context.Context, c *cli.Command) error {
	root := c.Args().First()
	if root == "" {
		root = "."
	}

	result, err := cmd.flags.runScan(root, cmd.settings)
	if err != nil {
		return err
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result.Summary)
	}

	p := printer.New(out, printer.Options{Colored: cmd.flags.ColorEnabled()})
	return p.Stats(result)
}
