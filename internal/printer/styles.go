package printer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/tagtree/internal/core/todo"
)

// styleSet holds the render styles for one output mode. The plain set
// returns text unchanged so piped and --no-color output stays byte-stable.
type styleSet struct {
	tag    map[todo.Priority]lipgloss.Style
	file   lipgloss.Style
	branch lipgloss.Style
	line   lipgloss.Style
	author lipgloss.Style
	header lipgloss.Style
}

func coloredStyles() styleSet {
	return styleSet{
		tag: map[todo.Priority]lipgloss.Style{
			todo.PriorityCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			todo.PriorityHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			todo.PriorityMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			todo.PriorityLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		},
		file:   lipgloss.NewStyle().Bold(true),
		branch: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		line:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		author: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		header: lipgloss.NewStyle().Bold(true).Underline(true),
	}
}

func plainStyles() styleSet {
	plain := lipgloss.NewStyle()
	return styleSet{
		tag: map[todo.Priority]lipgloss.Style{
			todo.PriorityCritical: plain,
			todo.PriorityHigh:     plain,
			todo.PriorityMedium:   plain,
			todo.PriorityLow:      plain,
		},
		file:   plain,
		branch: plain,
		line:   plain,
		author: plain,
		header: plain,
	}
}

// tagStyle picks the style for a tag name through the shared priority
// classification, so colors always agree with the stats breakdown.
func (s styleSet) tagStyle(tag string) lipgloss.Style {
	return s.tag[todo.PriorityFromTag(tag)]
}
