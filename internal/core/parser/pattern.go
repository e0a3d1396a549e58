package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// TagsPlaceholder is the substitution point for the escaped tag alternation
// inside a pattern template.
const TagsPlaceholder = "$TAGS"

// DefaultTemplate matches a tag only when a comment marker immediately
// precedes it, separated by optional whitespace. Requiring the marker is
// what suppresses false positives from prose and code where a tag-shaped
// word appears outside a comment (JSON keys, npm script names, foreign
// words containing a tag substring).
//
// Capture groups: 1 comment marker, 2 tag, 3 optional author, 4 message.
// Custom templates must preserve this contract for author/message
// extraction to work.
const DefaultTemplate = `(//|#|<!--|;|/\*|\*|--|%|"""|'''|REM\s|::)\s*($TAGS)(?:\(([^)]+)\))?[:\s]+(.*)`

// BuildPattern compiles the matching regex for the given tag list.
//
// It returns (nil, nil) when tags is empty: searching for zero tags
// trivially finds nothing. Tags are escaped so they are always literal
// alternatives. The pattern compiles in multi-line mode, with
// case-insensitivity toggled by caseSensitive. An invalid template is a
// configuration error returned to the caller.
func BuildPattern(tags []string, caseSensitive bool, template string) (*regexp.Regexp, error) {
	if len(tags) == 0 {
		return nil, nil
	}

	if template == "" {
		template = DefaultTemplate
	}
	if !strings.Contains(template, TagsPlaceholder) {
		return nil, fmt.Errorf("pattern template missing %s placeholder", TagsPlaceholder)
	}

	escaped := make([]string, len(tags))
	for i, tag := range tags {
		escaped[i] = regexp.QuoteMeta(tag)
	}

	pattern := strings.Replace(template, TagsPlaceholder, strings.Join(escaped, "|"), 1)

	flags := "(?m)"
	if !caseSensitive {
		flags = "(?mi)"
	}

	re, err := regexp.Compile(flags + pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern template: %w", err)
	}
	return re, nil
}
