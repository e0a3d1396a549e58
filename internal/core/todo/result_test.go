package todo

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func testItem(tag, message string, line int) Item {
	return Item{
		Tag:      tag,
		Message:  message,
		Line:     line,
		Column:   4,
		Priority: PriorityFromTag(tag),
	}
}

func TestScanResultAddFile(t *testing.T) {
	t.Run("items update counters and storage", func(t *testing.T) {
		r := NewScanResult("/src")

		err := r.AddFile("a.go", []Item{testItem("TODO", "first", 1), testItem("FIXME", "second", 2)})
		require.NoError(t, err)

		require.Equal(t, 2, r.Summary.TotalCount)
		require.Equal(t, 1, r.Summary.FilesScanned)
		require.Equal(t, 1, r.Summary.FilesWithTodos)
		require.Equal(t, 1, r.Summary.TagCounts["TODO"])
		require.Equal(t, 1, r.Summary.TagCounts["FIXME"])
		require.Len(t, r.Items("a.go"), 2)
	})

	t.Run("empty items count the file only", func(t *testing.T) {
		r := NewScanResult("/src")

		require.NoError(t, r.AddFile("empty.go", nil))

		require.Equal(t, 1, r.Summary.FilesScanned)
		require.Equal(t, 0, r.Summary.FilesWithTodos)
		require.Equal(t, 0, r.Summary.TotalCount)
		require.True(t, r.IsEmpty())
	})

	t.Run("duplicate path rejected", func(t *testing.T) {
		r := NewScanResult("/src")

		require.NoError(t, r.AddFile("a.go", []Item{testItem("TODO", "x", 1)}))
		err := r.AddFile("a.go", []Item{testItem("BUG", "y", 2)})
		require.True(t, errors.Is(err, ErrDuplicatePath))

		// Counters are untouched by the rejected call.
		require.Equal(t, 1, r.Summary.TotalCount)
		require.Equal(t, 1, r.Summary.FilesScanned)
	})

	t.Run("duplicate path without items rejected", func(t *testing.T) {
		r := NewScanResult("/src")

		require.NoError(t, r.AddFile("empty.go", nil))
		err := r.AddFile("empty.go", nil)
		require.True(t, errors.Is(err, ErrDuplicatePath))

		// FilesScanned must not double-count the path.
		require.Equal(t, 1, r.Summary.FilesScanned)
	})
}

func TestScanResultSummaryInvariant(t *testing.T) {
	r := NewScanResult("/src")
	require.NoError(t, r.AddFile("a.go", []Item{testItem("TODO", "a", 1)}))
	require.NoError(t, r.AddFile("b.go", []Item{testItem("FIXME", "b", 1), testItem("NOTE", "c", 2)}))
	require.NoError(t, r.AddFile("c.go", nil))

	sum := 0
	for _, n := range r.Summary.TagCounts {
		sum += n
	}
	require.Equal(t, r.Summary.TotalCount, sum)
	require.LessOrEqual(t, r.Summary.FilesWithTodos, r.Summary.FilesScanned)
}

func TestScanResultFilterByTag(t *testing.T) {
	r := NewScanResult("/src")
	require.NoError(t, r.AddFile("a.go", []Item{
		testItem("TODO", "first", 1),
		testItem("FIXME", "second", 2),
		testItem("TODO", "third", 3),
	}))
	require.NoError(t, r.AddFile("b.go", []Item{testItem("NOTE", "fourth", 1)}))
	require.NoError(t, r.AddFile("c.go", nil))

	filtered := r.FilterByTag("todo")

	require.Equal(t, 2, filtered.Summary.TotalCount)
	require.Equal(t, 1, filtered.Summary.FilesWithTodos)
	require.Equal(t, map[string]int{"TODO": 2}, filtered.Summary.TagCounts)
	// FilesScanned carries over from the source scan.
	require.Equal(t, 3, filtered.Summary.FilesScanned)
	// Filtering never increases the total.
	require.LessOrEqual(t, filtered.Summary.TotalCount, r.Summary.TotalCount)

	// Source is untouched.
	require.Equal(t, 4, r.Summary.TotalCount)
	require.Len(t, r.Items("a.go"), 3)
}

func TestScanResultAllItems(t *testing.T) {
	r := NewScanResult("/src")
	require.NoError(t, r.AddFile("a.go", []Item{testItem("TODO", "a", 1)}))
	require.NoError(t, r.AddFile("b.go", []Item{testItem("TODO", "b", 1)}))

	all := r.AllItems()
	require.Len(t, all, 2)
}

func TestScanResultSortedFiles(t *testing.T) {
	r := NewScanResult("/src")
	require.NoError(t, r.AddFile("z.go", []Item{testItem("TODO", "z", 1)}))
	require.NoError(t, r.AddFile("a.go", []Item{testItem("TODO", "a", 1)}))
	require.NoError(t, r.AddFile("m.go", []Item{testItem("TODO", "m", 1)}))

	files := r.SortedFiles()
	require.Len(t, files, 3)
	require.Equal(t, "a.go", files[0].Path)
	require.Equal(t, "m.go", files[1].Path)
	require.Equal(t, "z.go", files[2].Path)
}

func TestSummaryAvgItemsPerFile(t *testing.T) {
	s := Summary{TotalCount: 10, FilesWithTodos: 2, FilesScanned: 5}
	require.InDelta(t, 5.0, s.AvgItemsPerFile(), 0.001)

	empty := Summary{FilesScanned: 5}
	require.Equal(t, 0.0, empty.AvgItemsPerFile())
}

func TestSummaryTagPercentage(t *testing.T) {
	s := Summary{TotalCount: 10}
	require.InDelta(t, 30.0, s.TagPercentage(3), 0.001)

	empty := Summary{}
	require.Equal(t, 0.0, empty.TagPercentage(0))
}

func TestScanResultJSONRoundTrip(t *testing.T) {
	r := NewScanResult("/src")
	require.NoError(t, r.AddFile("b.go", []Item{testItem("FIXME", "broken", 3)}))
	require.NoError(t, r.AddFile("a.go", []Item{
		{Tag: "TODO", Message: "with author", Line: 1, Column: 4, Author: "alice", Priority: PriorityMedium},
	}))
	require.NoError(t, r.AddFile("no-items.go", nil))

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var back ScanResult
	require.NoError(t, json.Unmarshal(data, &back))

	require.Equal(t, r.Summary, back.Summary)
	require.Equal(t, r.SortedFiles(), back.SortedFiles())
}

func TestScanResultJSONShape(t *testing.T) {
	r := NewScanResult("/src")
	require.NoError(t, r.AddFile("z.go", []Item{testItem("TODO", "z", 1)}))
	require.NoError(t, r.AddFile("a.go", []Item{testItem("BUG", "a", 2)}))

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var wire struct {
		Files []struct {
			Path  string            `json:"path"`
			Items []json.RawMessage `json:"items"`
		} `json:"files"`
		Summary map[string]json.RawMessage `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(data, &wire))

	// Files are sorted by path.
	require.Equal(t, "a.go", wire.Files[0].Path)
	require.Equal(t, "z.go", wire.Files[1].Path)

	for _, key := range []string{"total_count", "files_with_todos", "files_scanned", "tag_counts"} {
		require.Contains(t, wire.Summary, key)
	}

	// Absent author and raw line are omitted, not emitted as null.
	require.NotContains(t, string(wire.Files[0].Items[0]), "author")
	require.NotContains(t, string(wire.Files[0].Items[0]), "line_content")
}

func TestItemFormatAuthor(t *testing.T) {
	item := testItem("TODO", "x", 1)
	if got := item.FormatAuthor(); got != "" {
		t.Errorf("got %q, want empty", got)
	}

	item.Author = "alice"
	if got := item.FormatAuthor(); got != "(alice)" {
		t.Errorf("got %q, want (alice)", got)
	}
}

func TestScanResultEmptyJSON(t *testing.T) {
	r := NewScanResult("/src")

	data, err := json.Marshal(r)
	require.NoError(t, err)

	// An empty result serializes files as an empty array, not null.
	require.True(t, strings.Contains(string(data), `"files":[]`), "got %s", data)
}
