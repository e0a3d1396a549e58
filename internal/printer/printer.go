// Package printer renders scan results as a file tree, a tag tree, flat
// grep-style lines, JSON, or a stats breakdown.
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/colonyops/tagtree/internal/core/todo"
)

// Options controls how results are rendered.
type Options struct {
	// Format is one of tree, flat, or json.
	Format string

	// Colored enables lipgloss styling. Leave false for pipes and tests.
	Colored bool

	// GroupByTag renders the tree keyed by tag instead of by file.
	GroupByTag bool

	// ShowSummary appends the totals line after tree output.
	ShowSummary bool

	// BasePath shortens displayed paths to be relative to this directory.
	BasePath string

	// SortByPriority orders items within a file by priority, highest
	// first, instead of line order.
	SortByPriority bool
}

// Printer writes formatted scan output to a single writer.
type Printer struct {
	w      io.Writer
	opts   Options
	styles styleSet
}

// New creates a printer for the given writer.
func New(w io.Writer, opts Options) *Printer {
	styles := plainStyles()
	if opts.Colored {
		styles = coloredStyles()
	}
	return &Printer{w: w, opts: opts, styles: styles}
}

// Print renders the result in the configured format.
func (p *Printer) Print(result *todo.ScanResult) error {
	switch p.opts.Format {
	case "json":
		return p.printJSON(result)
	case "flat":
		return p.printFlat(result)
	default:
		if result.IsEmpty() {
			_, err := fmt.Fprintln(p.w, "No tagged comments found.")
			return err
		}
		if p.opts.GroupByTag {
			if err := p.printTagTree(result); err != nil {
				return err
			}
		} else if err := p.printFileTree(result); err != nil {
			return err
		}
		if p.opts.ShowSummary {
			return p.printSummaryLine(result)
		}
		return nil
	}
}

func (p *Printer) printJSON(result *todo.ScanResult) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func (p *Printer) printFlat(result *todo.ScanResult) error {
	for _, file := range result.SortedFiles() {
		path := p.displayPath(file.Path)
		for _, item := range p.ordered(file.Items) {
			_, err := fmt.Fprintf(p.w, "%s:%d:%d: %s%s: %s\n",
				path, item.Line, item.Column,
				p.styles.tagStyle(item.Tag).Render(item.Tag),
				p.renderAuthor(item),
				item.Message,
			)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *Printer) printFileTree(result *todo.ScanResult) error {
	files := result.SortedFiles()
	for i, file := range files {
		header := fmt.Sprintf("%s (%d)",
			p.styles.file.Render(p.displayPath(file.Path)), len(file.Items))
		if _, err := fmt.Fprintln(p.w, header); err != nil {
			return err
		}

		items := p.ordered(file.Items)
		for j, item := range items {
			glyph := treeBranch
			if j == len(items)-1 {
				glyph = treeLeaf
			}
			line := fmt.Sprintf("%s [L%d] %s%s: %s",
				p.styles.branch.Render(glyph),
				item.Line,
				p.styles.tagStyle(item.Tag).Render(item.Tag),
				p.renderAuthor(item),
				item.Message,
			)
			if _, err := fmt.Fprintln(p.w, line); err != nil {
				return err
			}
		}

		if i < len(files)-1 {
			if _, err := fmt.Fprintln(p.w); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *Printer) printTagTree(result *todo.ScanResult) error {
	type located struct {
		path string
		item todo.Item
	}

	groups := map[string][]located{}
	for _, file := range result.SortedFiles() {
		for _, item := range file.Items {
			groups[item.Tag] = append(groups[item.Tag], located{path: file.Path, item: item})
		}
	}

	tags := make([]string, 0, len(groups))
	for tag := range groups {
		tags = append(tags, tag)
	}
	// Highest priority first, alphabetical within a priority.
	sort.Slice(tags, func(i, j int) bool {
		pi, pj := todo.PriorityFromTag(tags[i]), todo.PriorityFromTag(tags[j])
		if pi != pj {
			return pi > pj
		}
		return tags[i] < tags[j]
	})

	for i, tag := range tags {
		entries := groups[tag]
		header := fmt.Sprintf("%s (%d)", p.styles.tagStyle(tag).Render(tag), len(entries))
		if _, err := fmt.Fprintln(p.w, header); err != nil {
			return err
		}

		for j, e := range entries {
			glyph := treeBranch
			if j == len(entries)-1 {
				glyph = treeLeaf
			}
			line := fmt.Sprintf("%s %s:%d%s %s",
				p.styles.branch.Render(glyph),
				p.displayPath(e.path),
				e.item.Line,
				p.renderAuthor(e.item),
				e.item.Message,
			)
			if _, err := fmt.Fprintln(p.w, line); err != nil {
				return err
			}
		}

		if i < len(tags)-1 {
			if _, err := fmt.Fprintln(p.w); err != nil {
				return err
			}
		}
	}
	return nil
}

// Stats renders the aggregate breakdown: totals, the per-file average, and
// a tag histogram sorted by count.
func (p *Printer) Stats(result *todo.ScanResult) error {
	s := result.Summary

	if _, err := fmt.Fprintln(p.w, p.styles.header.Render("Scan Statistics")); err != nil {
		return err
	}
	rows := []struct {
		label string
		value string
	}{
		{"Files scanned", fmt.Sprintf("%d", s.FilesScanned)},
		{"Files with items", fmt.Sprintf("%d", s.FilesWithTodos)},
		{"Total items", fmt.Sprintf("%d", s.TotalCount)},
		{"Avg per file", fmt.Sprintf("%.2f", s.AvgItemsPerFile())},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(p.w, "  %-17s %s\n", row.label+":", row.value); err != nil {
			return err
		}
	}

	if len(s.TagCounts) == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(p.w); err != nil {
		return err
	}

	type tagCount struct {
		tag   string
		count int
	}
	counts := make([]tagCount, 0, len(s.TagCounts))
	maxCount := 0
	tagWidth := 0
	for tag, count := range s.TagCounts {
		counts = append(counts, tagCount{tag: tag, count: count})
		if count > maxCount {
			maxCount = count
		}
		if len(tag) > tagWidth {
			tagWidth = len(tag)
		}
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].tag < counts[j].tag
	})

	for _, tc := range counts {
		bar := strings.Repeat("█", scaleBar(tc.count, maxCount))
		_, err := fmt.Fprintf(p.w, "  %-*s %4d  %5.1f%%  %s\n",
			tagWidth, p.styles.tagStyle(tc.tag).Render(tc.tag),
			tc.count, s.TagPercentage(tc.count), bar)
		if err != nil {
			return err
		}
	}
	return nil
}

const (
	treeBranch = "├──"
	treeLeaf   = "└──"

	maxBarWidth = 20
)

func scaleBar(count, maxCount int) int {
	if maxCount == 0 {
		return 0
	}
	width := count * maxBarWidth / maxCount
	if width == 0 && count > 0 {
		width = 1
	}
	return width
}

func (p *Printer) printSummaryLine(result *todo.ScanResult) error {
	s := result.Summary
	_, err := fmt.Fprintf(p.w, "\n%d item(s) in %d file(s), %d file(s) scanned\n",
		s.TotalCount, s.FilesWithTodos, s.FilesScanned)
	return err
}

func (p *Printer) renderAuthor(item todo.Item) string {
	if item.Author == "" {
		return ""
	}
	return " " + p.styles.author.Render("("+item.Author+")")
}

func (p *Printer) displayPath(path string) string {
	if p.opts.BasePath == "" {
		return path
	}
	rel, err := filepath.Rel(p.opts.BasePath, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}

func (p *Printer) ordered(items []todo.Item) []todo.Item {
	if !p.opts.SortByPriority {
		return items
	}
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b todo.Item) int {
		return int(b.Priority) - int(a.Priority)
	})
	return sorted
}
