// Package todo defines the domain model for tagged-comment scanning: the
// matched items, per-scan aggregates, and the tag/priority catalog.
package todo

import "fmt"

// Item is a single matched annotation comment. Items are created once per
// regex match during parsing and are immutable afterwards; they are owned by
// the ScanResult that collected them.
type Item struct {
	// Tag is the matched tag, normalized to the configured spelling when
	// matching was case-insensitive.
	Tag string `json:"tag"`

	// Message is the text following the tag, trimmed of surrounding
	// whitespace. Unicode content passes through unchanged.
	Message string `json:"message"`

	// Line is the 1-indexed line number of the match.
	Line int `json:"line"`

	// Column is the 1-indexed byte offset of the tag itself, not of the
	// comment marker preceding it.
	Column int `json:"column"`

	// LineContent is the full raw line, when the parser retains it.
	LineContent string `json:"line_content,omitempty"`

	// Author is the optional parenthesized assignee, e.g. TODO(john): ...
	Author string `json:"author,omitempty"`

	// Priority is stamped from the normalized tag via PriorityFromTag.
	Priority Priority `json:"priority"`
}

// FormatAuthor renders the author as "(author)", or "" when absent.
func (i Item) FormatAuthor() string {
	if i.Author == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", i.Author)
}
