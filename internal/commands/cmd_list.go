package commands

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tagtree/internal/core/config"
	"github.com/colonyops/tagtree/internal/printer"
)

type ListCmd struct {
	flags *Flags

	// flags
	settings   scanSettings
	filter     string
	jsonOutput bool
}

// NewListCmd creates a new list command
func NewListCmd(flags *Flags) *ListCmd {
	return &ListCmd{flags: flags}
}

// Register adds the list command to the application
func (cmd *ListCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "list",
		Aliases:   []string{"l", "ls"},
		Usage:     "List tagged comments one per line",
		UsageText: "tagtree list [--filter TAG] [path]",
		Description: `Scans the given path (default: current directory) and prints one
grep-style line per item: path:line:col: TAG (author): message.

Use --filter to restrict output to a single tag.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "filter",
				Aliases:     []string{"f"},
				Usage:       "only show items with this tag",
				Destination: &cmd.filter,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output results as JSON",
				Destination: &cmd.jsonOutput,
			},
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

func (cmd *ListCmd) run(ctx context.Context, c *cli.Command) error {
	root := c.Args().First()
	if root == "" {
		root = "."
	}

	result, err := cmd.flags.runScan(root, cmd.settings)
	if err != nil {
		return err
	}

	if cmd.filter != "" {
		result = result.FilterByTag(cmd.filter)
	}

	format := config.FormatFlat
	if cmd.jsonOutput {
		format = config.FormatJSON
	}

	cwd, _ := os.Getwd()
	p := printer.New(c.Root().Writer, printer.Options{
		Format:   format,
		Colored:  cmd.flags.ColorEnabled() && format != config.FormatJSON,
		BasePath: cwd,
	})

	return p.Print(result)
}
