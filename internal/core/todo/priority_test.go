package todo

import (
	"encoding/json"
	"testing"
)

func TestPriorityFromTag(t *testing.T) {
	tests := []struct {
		tag  string
		want Priority
	}{
		{"BUG", PriorityCritical},
		{"FIXME", PriorityCritical},
		{"ERROR", PriorityCritical},
		{"HACK", PriorityHigh},
		{"WARN", PriorityHigh},
		{"WARNING", PriorityHigh},
		{"FIX", PriorityHigh},
		{"TODO", PriorityMedium},
		{"WIP", PriorityMedium},
		{"MAYBE", PriorityMedium},
		{"NOTE", PriorityLow},
		{"XXX", PriorityLow},
		{"INFO", PriorityLow},
		{"DOCS", PriorityLow},
		{"PERF", PriorityLow},
		{"TEST", PriorityLow},
		{"IDEA", PriorityLow},
		// Case variations resolve identically.
		{"bug", PriorityCritical},
		{"Bug", PriorityCritical},
		{"hack", PriorityHigh},
		{"wip", PriorityMedium},
		{"info", PriorityLow},
		// Unknown tags default to Medium.
		{"UNKNOWN", PriorityMedium},
		{"CUSTOM", PriorityMedium},
	}

	for _, tt := range tests {
		if got := PriorityFromTag(tt.tag); got != tt.want {
			t.Errorf("PriorityFromTag(%q) = %v, want %v", tt.tag, got, tt.want)
		}
	}
}

func TestPriorityOrdering(t *testing.T) {
	if !(PriorityCritical > PriorityHigh) {
		t.Error("Critical should outrank High")
	}
	if !(PriorityHigh > PriorityMedium) {
		t.Error("High should outrank Medium")
	}
	if !(PriorityMedium > PriorityLow) {
		t.Error("Medium should outrank Low")
	}
}

func TestPriorityString(t *testing.T) {
	tests := []struct {
		p    Priority
		want string
	}{
		{PriorityLow, "Low"},
		{PriorityMedium, "Medium"},
		{PriorityHigh, "High"},
		{PriorityCritical, "Critical"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestPriorityJSONRoundTrip(t *testing.T) {
	for _, p := range []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical} {
		data, err := json.Marshal(p)
		if err != nil {
			t.Fatalf("Marshal(%v): %v", p, err)
		}

		var back Priority
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("Unmarshal(%s): %v", data, err)
		}
		if back != p {
			t.Errorf("round trip %v -> %s -> %v", p, data, back)
		}
	}
}

func TestPriorityJSONEncoding(t *testing.T) {
	data, err := json.Marshal(PriorityCritical)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"Critical"` {
		t.Errorf("got %s, want %q", data, `"Critical"`)
	}
}

func TestParsePriority(t *testing.T) {
	got, err := ParsePriority("high")
	if err != nil {
		t.Fatalf("ParsePriority: %v", err)
	}
	if got != PriorityHigh {
		t.Errorf("got %v, want High", got)
	}

	if _, err := ParsePriority("urgent"); err == nil {
		t.Error("expected error for unknown priority name")
	}
}
