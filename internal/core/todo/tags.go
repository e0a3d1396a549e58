package todo

import "strings"

// TagDefinition describes a known tag: its canonical spelling, a short
// human description for display and completion hints, and its priority.
type TagDefinition struct {
	Name        string
	Description string
	Priority    Priority
}

// DefaultTags is the built-in tag catalog. It is read-only, process-wide
// static configuration; matching itself always uses whatever tag list the
// caller supplies.
var DefaultTags = []TagDefinition{
	{Name: "TODO", Description: "General TODO items", Priority: PriorityMedium},
	{Name: "WIP", Description: "Work in progress", Priority: PriorityMedium},
	{Name: "MAYBE", Description: "Potential future work", Priority: PriorityMedium},
	{Name: "FIXME", Description: "Items that need fixing", Priority: PriorityCritical},
	{Name: "BUG", Description: "Known bugs", Priority: PriorityCritical},
	{Name: "ERROR", Description: "Error handling needed", Priority: PriorityCritical},
	{Name: "HACK", Description: "Hacky solutions", Priority: PriorityHigh},
	{Name: "WARN", Description: "Warnings", Priority: PriorityHigh},
	{Name: "WARNING", Description: "Warning about potential issues", Priority: PriorityHigh},
	{Name: "FIX", Description: "Quick fix needed", Priority: PriorityHigh},
	{Name: "NOTE", Description: "Notes and documentation", Priority: PriorityLow},
	{Name: "XXX", Description: "Items requiring attention", Priority: PriorityLow},
	{Name: "INFO", Description: "Informational notes", Priority: PriorityLow},
	{Name: "DOCS", Description: "Documentation needed", Priority: PriorityLow},
	{Name: "PERF", Description: "Performance issues", Priority: PriorityLow},
	{Name: "TEST", Description: "Test-related items", Priority: PriorityLow},
	{Name: "IDEA", Description: "Ideas for future consideration", Priority: PriorityLow},
}

// DefaultTagNames returns the canonical names of the built-in catalog.
func DefaultTagNames() []string {
	names := make([]string, len(DefaultTags))
	for i, t := range DefaultTags {
		names[i] = t.Name
	}
	return names
}

// FindTag looks up a tag definition by name, case-insensitively.
func FindTag(name string) (TagDefinition, bool) {
	for _, t := range DefaultTags {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return TagDefinition{}, false
}
