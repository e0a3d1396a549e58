// Package parser turns source lines into todo items by applying a single
// compiled tag-matching pattern.
package parser

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/colonyops/tagtree/internal/core/todo"
)

// Parser detects TODO-style tags in source text. The zero value is not
// usable; construct with New or NewWithTemplate. A Parser is immutable and
// safe for concurrent use.
type Parser struct {
	pattern       *regexp.Regexp // nil when there are no tags to search for
	tags          []string
	caseSensitive bool
}

// New builds a parser over the default comment-aware template. It cannot
// fail: tags are escaped before compilation and the default template is
// known-good.
func New(tags []string, caseSensitive bool) *Parser {
	p, err := NewWithTemplate(tags, caseSensitive, "")
	if err != nil {
		// Unreachable with the default template; keep the invariant loud.
		panic(fmt.Sprintf("parser: default template failed to compile: %v", err))
	}
	return p
}

// NewWithTemplate builds a parser over a custom pattern template. The
// template must contain the $TAGS placeholder and, to extract authors and
// messages, preserve the capture-group contract of DefaultTemplate. An
// invalid template is a configuration error.
func NewWithTemplate(tags []string, caseSensitive bool, template string) (*Parser, error) {
	pattern, err := BuildPattern(tags, caseSensitive, template)
	if err != nil {
		return nil, err
	}
	return &Parser{
		pattern:       pattern,
		tags:          append([]string(nil), tags...),
		caseSensitive: caseSensitive,
	}, nil
}

// Tags returns the tag list the parser was configured with.
func (p *Parser) Tags() []string {
	return p.tags
}

// ParseLine matches a single line, returning the first item found. The
// second return is false when the line has no match. lineNumber is
// 1-indexed and stamped onto the item.
func (p *Parser) ParseLine(line string, lineNumber int) (todo.Item, bool) {
	if p.pattern == nil {
		return todo.Item{}, false
	}

	idx := p.pattern.FindStringSubmatchIndex(line)
	if idx == nil {
		return todo.Item{}, false
	}

	tag := groupText(line, idx, 2)
	if tag == "" {
		return todo.Item{}, false
	}

	item := todo.Item{
		Tag:         p.normalizeTag(tag),
		Message:     strings.TrimSpace(groupText(line, idx, 4)),
		Line:        lineNumber,
		Column:      idx[4] + 1, // 1-indexed byte offset of the tag, not the marker
		LineContent: line,
		Author:      groupText(line, idx, 3),
	}
	item.Priority = todo.PriorityFromTag(item.Tag)
	return item, true
}

// ParseContent matches every line of text, 1-indexed. The result is empty
// when no tags are configured.
func (p *Parser) ParseContent(content string) []todo.Item {
	if p.pattern == nil {
		return nil
	}

	var items []todo.Item
	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if item, ok := p.ParseLine(line, i+1); ok {
			items = append(items, item)
		}
	}
	return items
}

// ParseFile reads path as UTF-8 text and matches its lines. Unreadable or
// undecodable files return an error; binary detection beyond UTF-8 validity
// is deliberately not performed.
func (p *Parser) ParseFile(path string) ([]todo.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("read file %s: not valid UTF-8", path)
	}
	return p.ParseContent(string(data)), nil
}

// normalizeTag rewrites a case-insensitive match to the exact spelling in
// the configured tag list, so "todo" and "TODO" both surface as whichever
// casing the caller configured. Case-sensitive mode emits the tag as
// matched.
func (p *Parser) normalizeTag(tag string) string {
	if p.caseSensitive {
		return tag
	}
	for _, t := range p.tags {
		if strings.EqualFold(t, tag) {
			return t
		}
	}
	return tag
}

// groupText extracts capture group g from a FindStringSubmatchIndex result,
// tolerating templates that define fewer groups than the default contract.
func groupText(s string, idx []int, g int) string {
	if 2*g+1 >= len(idx) || idx[2*g] < 0 {
		return ""
	}
	return s[idx[2*g]:idx[2*g+1]]
}
