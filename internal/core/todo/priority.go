package todo

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Priority classifies how urgent a tagged comment is. The zero value is Low;
// the total order Low < Medium < High < Critical is part of the public
// contract and used for sorting and display emphasis.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
	PriorityCritical
)

var priorityNames = [...]string{
	PriorityLow:      "Low",
	PriorityMedium:   "Medium",
	PriorityHigh:     "High",
	PriorityCritical: "Critical",
}

// PriorityFromTag infers a priority from a tag name, case-insensitively.
// Unknown tags map to Medium.
//
// This is the only tag classification table in the codebase. The parser,
// printer, and stats views all resolve priorities through it so they can
// never disagree about what a tag means.
func PriorityFromTag(tag string) Priority {
	switch strings.ToUpper(tag) {
	case "BUG", "FIXME", "ERROR":
		return PriorityCritical
	case "HACK", "WARN", "WARNING", "FIX":
		return PriorityHigh
	case "TODO", "WIP", "MAYBE":
		return PriorityMedium
	case "NOTE", "XXX", "INFO", "DOCS", "PERF", "TEST", "IDEA":
		return PriorityLow
	default:
		return PriorityMedium
	}
}

// ParsePriority converts a display name back into a Priority.
func ParsePriority(s string) (Priority, error) {
	for p, name := range priorityNames {
		if strings.EqualFold(s, name) {
			return Priority(p), nil
		}
	}
	return PriorityMedium, fmt.Errorf("unknown priority %q", s)
}

func (p Priority) String() string {
	if p < PriorityLow || p > PriorityCritical {
		return fmt.Sprintf("Priority(%d)", int(p))
	}
	return priorityNames[p]
}

// MarshalJSON encodes the priority as its display name ("Low".."Critical").
func (p Priority) MarshalJSON() ([]byte, error) {
	if p < PriorityLow || p > PriorityCritical {
		return nil, fmt.Errorf("invalid priority %d", int(p))
	}
	return json.Marshal(priorityNames[p])
}

// UnmarshalJSON accepts the display-name encoding produced by MarshalJSON.
func (p *Priority) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePriority(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
