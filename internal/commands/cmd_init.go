package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

type InitCmd struct {
	flags *Flags

	// flags
	force bool
}

// NewInitCmd creates a new init command
func NewInitCmd(flags *Flags) *InitCmd {
	return &InitCmd{flags: flags}
}

// Register adds the init command to the application
func (cmd *InitCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "init",
		Usage:     "Write a starter .tagtree.yaml in the current directory",
		UsageText: "tagtree init [--force]",
		Description: `Creates a commented .tagtree.yaml with the default settings so they
are easy to tweak. Refuses to overwrite an existing file unless --force
is given.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "force",
				Aliases:     []string{"f"},
				Usage:       "overwrite an existing config file",
				Destination: &cmd.force,
			},
		},
		Action: cmd.run,
	})

	return app
}

const starterConfig = `# tagtree configuration
# All keys are optional; unset keys keep their defaults.

# Tags to search for. Uncomment to override the built-in catalog.
# tags:
#   - TODO
#   - FIXME
#   - HACK

# Glob patterns. A pattern without a slash matches basenames anywhere.
# include:
#   - "*.go"
# exclude:
#   - "vendor/**"

# case_sensitive: false
# max_depth: 0          # 0 = unlimited
# follow_links: false
# hidden: false
# threads: 0            # 0 = one worker per CPU
# respect_gitignore: true

# Output: tree, flat, or json.
# format: tree
# no_color: false

# Advanced: custom match pattern. Must contain the $TAGS placeholder.
# custom_pattern: '(//|#)\s*($TAGS)(?:\(([^)]+)\))?[:\s]+(.*)'
`

func (cmd *InitCmd) run(ctx context.Context, c *cli.Command) error {
	const name = ".tagtree.yaml"

	if _, err := os.Stat(name); err == nil && !cmd.force {
		return fmt.Errorf("%s already exists, use --force to overwrite", name)
	}

	if err := os.WriteFile(name, []byte(starterConfig), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Fprintf(c.Root().Writer, "Wrote %s\n", name)
	return nil
}
