package scanner

import (
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// loadIgnoreMatcher collects VCS-ignore rules for the tree rooted at root:
// system and global excludes first, then .git/info/exclude and every nested
// .gitignore (later patterns take precedence). Returns nil when no rules
// exist. Rules apply whether or not root is an actual git repository;
// a standalone tool is more predictable that way.
func loadIgnoreMatcher(root string) gitignore.Matcher {
	var patterns []gitignore.Pattern

	// Missing config files are the common case, not an error worth surfacing.
	if ps, err := gitignore.LoadSystemPatterns(osfs.New("/")); err == nil {
		patterns = append(patterns, ps...)
	}
	if ps, err := gitignore.LoadGlobalPatterns(osfs.New("/")); err == nil {
		patterns = append(patterns, ps...)
	}
	if ps, err := gitignore.ReadPatterns(osfs.New(root), nil); err == nil {
		patterns = append(patterns, ps...)
	}

	if len(patterns) == 0 {
		return nil
	}
	return gitignore.NewMatcher(patterns)
}

// ignored reports whether a root-relative slash path is matched by the
// ignore rules.
func ignored(matcher gitignore.Matcher, rel string, isDir bool) bool {
	if matcher == nil {
		return false
	}
	return matcher.Match(strings.Split(rel, "/"), isDir)
}
