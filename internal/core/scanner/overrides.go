package scanner

import (
	"fmt"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// overrideFilter layers include/exclude globs over the base walk: every
// include pattern is a positive glob, every exclude pattern a negated one.
// Patterns follow gitignore matching for the slash-less case: "*.go"
// matches a basename anywhere in the tree, "vendor/**" matches against the
// root-relative path.
type overrideFilter struct {
	include []string
	exclude []string
}

// newOverrideFilter validates every pattern up front; an invalid glob is a
// fatal configuration error naming the offending pattern.
func newOverrideFilter(include, exclude []string) (*overrideFilter, error) {
	for _, p := range include {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid include pattern %q: %w", p, doublestar.ErrBadPattern)
		}
	}
	for _, p := range exclude {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, doublestar.ErrBadPattern)
		}
	}
	if len(include) == 0 && len(exclude) == 0 {
		return nil, nil
	}
	return &overrideFilter{include: include, exclude: exclude}, nil
}

// matchFile reports whether a root-relative file path survives the filter.
func (f *overrideFilter) matchFile(rel string) bool {
	if f == nil {
		return true
	}
	if len(f.include) > 0 && !matchAny(f.include, rel) {
		return false
	}
	return !matchAny(f.exclude, rel)
}

// skipDir reports whether a directory is excluded outright, pruning the
// walk below it. Only exclude patterns prune: a whitelist still needs the
// walk to descend everywhere to find matching files.
func (f *overrideFilter) skipDir(rel string) bool {
	if f == nil {
		return false
	}
	return matchAny(f.exclude, rel)
}

func matchAny(patterns []string, rel string) bool {
	base := path.Base(rel)
	for _, p := range patterns {
		target := rel
		if !strings.Contains(p, "/") {
			target = base
		}
		// Patterns were validated at construction time.
		if ok, _ := doublestar.Match(p, target); ok {
			return true
		}
	}
	return false
}
