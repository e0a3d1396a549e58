package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tagtree/internal/core/todo"
)

type TagsCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

// NewTagsCmd creates a new tags command
func NewTagsCmd(flags *Flags) *TagsCmd {
	return &TagsCmd{flags: flags}
}

// Register adds the tags command to the application
func (cmd *TagsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "tags",
		Aliases:   []string{"t"},
		Usage:     "Show the tag catalog and priorities",
		UsageText: "tagtree tags [--json]",
		Description: `Displays every tag the scanner recognizes with its priority and
description. Tags configured in the config file that are not in the
built-in catalog are listed with their classified priority.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output the catalog as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *TagsCmd) run(ctx context.Context, c *cli.Command) error {
	catalog := cmd.catalog()
	out := c.Root().Writer

	if cmd.jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(catalog)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "TAG\tPRIORITY\tDESCRIPTION")
	for _, tag := range catalog {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", tag.Name, tag.Priority, tag.Description)
	}
	return w.Flush()
}

// catalog resolves the configured tag names against the built-in
// definitions; unknown names fall back to the classifier.
func (cmd *TagsCmd) catalog() []todo.TagDefinition {
	cfg := cmd.flags.effectiveConfig()

	catalog := make([]todo.TagDefinition, 0, len(cfg.Tags))
	for _, name := range cfg.Tags {
		if def, ok := todo.FindTag(name); ok {
			catalog = append(catalog, def)
			continue
		}
		catalog = append(catalog, todo.TagDefinition{
			Name:     name,
			Priority: todo.PriorityFromTag(name),
		})
	}
	return catalog
}
