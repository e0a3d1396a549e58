package todo

import "testing"

func TestDefaultTags(t *testing.T) {
	if len(DefaultTags) != 17 {
		t.Fatalf("got %d default tags, want 17", len(DefaultTags))
	}

	counts := map[Priority]int{}
	for _, tag := range DefaultTags {
		if tag.Name == "" {
			t.Error("tag with empty name")
		}
		if tag.Description == "" {
			t.Errorf("tag %s has no description", tag.Name)
		}
		counts[tag.Priority]++

		// The catalog must agree with the classifier; the catalog exists for
		// defaults and completion hints, never as a second priority table.
		if got := PriorityFromTag(tag.Name); got != tag.Priority {
			t.Errorf("catalog priority for %s is %v, classifier says %v", tag.Name, tag.Priority, got)
		}
	}

	if counts[PriorityCritical] != 3 {
		t.Errorf("got %d critical tags, want 3", counts[PriorityCritical])
	}
	if counts[PriorityHigh] != 4 {
		t.Errorf("got %d high tags, want 4", counts[PriorityHigh])
	}
	if counts[PriorityMedium] != 3 {
		t.Errorf("got %d medium tags, want 3", counts[PriorityMedium])
	}
	if counts[PriorityLow] != 7 {
		t.Errorf("got %d low tags, want 7", counts[PriorityLow])
	}
}

func TestDefaultTagNames(t *testing.T) {
	names := DefaultTagNames()
	if len(names) != len(DefaultTags) {
		t.Fatalf("got %d names, want %d", len(names), len(DefaultTags))
	}

	seen := map[string]bool{}
	for _, n := range names {
		seen[n] = true
	}
	for _, want := range []string{"TODO", "FIXME", "BUG"} {
		if !seen[want] {
			t.Errorf("missing %s", want)
		}
	}
}

func TestFindTag(t *testing.T) {
	tag, ok := FindTag("TODO")
	if !ok || tag.Name != "TODO" {
		t.Errorf("FindTag(TODO) = %+v, %v", tag, ok)
	}

	// Case-insensitive lookup resolves to the canonical spelling.
	tag, ok = FindTag("FiXmE")
	if !ok || tag.Name != "FIXME" {
		t.Errorf("FindTag(FiXmE) = %+v, %v", tag, ok)
	}

	if _, ok := FindTag("NONEXISTENT"); ok {
		t.Error("FindTag(NONEXISTENT) should not match")
	}
}
