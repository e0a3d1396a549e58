package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/colonyops/tagtree/internal/core/config"
	"github.com/colonyops/tagtree/internal/core/parser"
	"github.com/colonyops/tagtree/internal/core/scanner"
	"github.com/colonyops/tagtree/internal/core/todo"
)

// scanSettings carries the per-command flag values layered over the loaded
// config: slices append, booleans turn features on, and positive numbers
// override the file value.
type scanSettings struct {
	tags          []string
	include       []string
	exclude       []string
	caseSensitive bool
	depth         int
	threads       int
	followLinks   bool
	hidden        bool
	noGitignore   bool
}

func (f *Flags) effectiveConfig() *config.Config {
	if f.Config != nil {
		return f.Config
	}
	cfg := config.DefaultConfig()
	return &cfg
}

// runScan builds the parser and scanner from config plus settings and
// scans root.
func (f *Flags) runScan(root string, s scanSettings) (*todo.ScanResult, error) {
	cfg := f.effectiveConfig()

	tags := cfg.Tags
	if len(s.tags) > 0 {
		tags = s.tags
	}
	caseSensitive := cfg.CaseSensitive || s.caseSensitive

	p, err := parser.NewWithTemplate(tags, caseSensitive, cfg.CustomPattern)
	if err != nil {
		return nil, fmt.Errorf("build pattern: %w", err)
	}

	opts := cfg.ScannerOptions()
	opts.Include = append(opts.Include, s.include...)
	opts.Exclude = append(opts.Exclude, s.exclude...)
	if s.depth > 0 {
		opts.MaxDepth = s.depth
	}
	if s.threads > 0 {
		opts.Threads = s.threads
	}
	opts.FollowLinks = opts.FollowLinks || s.followLinks
	opts.Hidden = opts.Hidden || s.hidden
	if s.noGitignore {
		opts.RespectGitignore = false
	}

	log.Debug().
		Str("root", root).
		Strs("tags", tags).
		Int("max_depth", opts.MaxDepth).
		Msg("starting scan")

	return scanner.New(p, opts).Scan(root)
}
