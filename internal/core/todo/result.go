package todo

import (
	"encoding/json"
	"errors"
	"sort"
	"strings"
)

// ErrDuplicatePath is returned by AddFile when a path is added twice.
// Re-adding a path is a caller bug: the counters are append-only and a
// silent overwrite would desynchronize them from the stored items.
var ErrDuplicatePath = errors.New("file already added to scan result")

// Summary holds the aggregate counters of one scan.
//
// Invariants: TotalCount equals the sum of TagCounts values, and
// FilesWithTodos <= FilesScanned.
type Summary struct {
	TotalCount     int            `json:"total_count"`
	FilesWithTodos int            `json:"files_with_todos"`
	FilesScanned   int            `json:"files_scanned"`
	TagCounts      map[string]int `json:"tag_counts"`
}

// AvgItemsPerFile returns TotalCount / FilesWithTodos, or 0.0 when no file
// contained an item.
func (s Summary) AvgItemsPerFile() float64 {
	if s.FilesWithTodos == 0 {
		return 0.0
	}
	return float64(s.TotalCount) / float64(s.FilesWithTodos)
}

// TagPercentage returns count as a percentage of TotalCount, or 0.0 when
// the scan found nothing.
func (s Summary) TagPercentage(count int) float64 {
	if s.TotalCount == 0 {
		return 0.0
	}
	return float64(count) / float64(s.TotalCount) * 100.0
}

// FileResult pairs a file path with its matched items. It is the record
// shape of the JSON serialization boundary.
type FileResult struct {
	Path  string `json:"path"`
	Items []Item `json:"items"`
}

// ScanResult is the aggregate output of one directory scan: a mapping from
// file path to its ordered items, plus summary counters and the scanned
// root. A path appears in the mapping iff its item list is non-empty; files
// with zero matches only count toward FilesScanned.
//
// A ScanResult is built by repeated AddFile calls and treated as immutable
// once scanning completes. It is not safe for concurrent mutation; the
// scanner funnels all AddFile calls through a single reducer goroutine.
type ScanResult struct {
	files   map[string][]Item
	seen    map[string]struct{}
	Summary Summary
	Root    string
}

// NewScanResult returns an empty result for the given root.
func NewScanResult(root string) *ScanResult {
	return &ScanResult{
		files: make(map[string][]Item),
		seen:  make(map[string]struct{}),
		Root:  root,
		Summary: Summary{
			TagCounts: make(map[string]int),
		},
	}
}

// AddFile folds one scanned file into the result. It always increments
// FilesScanned; when items is non-empty it also updates FilesWithTodos,
// TotalCount, the per-tag counters, and stores the item list under path.
// Adding the same path twice returns ErrDuplicatePath and changes nothing,
// whether or not the first add stored any items.
func (r *ScanResult) AddFile(path string, items []Item) error {
	if _, ok := r.seen[path]; ok {
		return ErrDuplicatePath
	}
	r.seen[path] = struct{}{}

	r.Summary.FilesScanned++

	if len(items) == 0 {
		return nil
	}

	r.Summary.FilesWithTodos++
	r.Summary.TotalCount += len(items)
	for _, item := range items {
		r.Summary.TagCounts[item.Tag]++
	}
	r.files[path] = items
	return nil
}

// IsEmpty reports whether the scan found any items.
func (r *ScanResult) IsEmpty() bool {
	return len(r.files) == 0
}

// Items returns the stored item list for a path, or nil.
func (r *ScanResult) Items(path string) []Item {
	return r.files[path]
}

// PathItem pairs a path with one of its items, for callers needing a single
// ungrouped list.
type PathItem struct {
	Path string
	Item Item
}

// AllItems flattens the result into (path, item) pairs. Order is
// unspecified; use SortedFiles for deterministic output.
func (r *ScanResult) AllItems() []PathItem {
	var items []PathItem
	for path, fileItems := range r.files {
		for _, item := range fileItems {
			items = append(items, PathItem{Path: path, Item: item})
		}
	}
	return items
}

// SortedFiles returns the per-file results sorted lexicographically by
// path. Every presentation layer goes through this to guarantee
// deterministic output order.
func (r *ScanResult) SortedFiles() []FileResult {
	files := make([]FileResult, 0, len(r.files))
	for path, items := range r.files {
		files = append(files, FileResult{Path: path, Items: items})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files
}

// FilterByTag returns a new ScanResult containing only items whose tag
// equals tag case-insensitively. FilesScanned is copied from the source;
// every other counter is recomputed by replaying AddFile over the filtered
// items. The source is not mutated.
func (r *ScanResult) FilterByTag(tag string) *ScanResult {
	filtered := NewScanResult(r.Root)

	for path, items := range r.files {
		var keep []Item
		for _, item := range items {
			if strings.EqualFold(item.Tag, tag) {
				keep = append(keep, item)
			}
		}
		if len(keep) > 0 {
			// Paths are unique in the source map, so AddFile cannot fail.
			_ = filtered.AddFile(path, keep)
		}
	}

	filtered.Summary.FilesScanned = r.Summary.FilesScanned
	return filtered
}

// resultJSON is the wire shape consumed by external renderers and editor
// extensions. The files array is derived, never the primary store, and is
// rebuilt sorted by path on every marshal.
type resultJSON struct {
	Files   []FileResult `json:"files"`
	Summary Summary      `json:"summary"`
}

// MarshalJSON implements the serialization boundary:
//
//	{"files": [{"path": ..., "items": [...]}, ...], "summary": {...}}
func (r *ScanResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{
		Files:   r.SortedFiles(),
		Summary: r.Summary,
	})
}

// UnmarshalJSON rebuilds a ScanResult from its JSON view. The summary is
// taken from the payload verbatim rather than recounted, so a round trip
// reproduces the original counters exactly.
func (r *ScanResult) UnmarshalJSON(data []byte) error {
	var wire resultJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	r.files = make(map[string][]Item, len(wire.Files))
	r.seen = make(map[string]struct{}, len(wire.Files))
	for _, f := range wire.Files {
		if _, ok := r.files[f.Path]; ok {
			return ErrDuplicatePath
		}
		r.files[f.Path] = f.Items
		r.seen[f.Path] = struct{}{}
	}
	r.Summary = wire.Summary
	if r.Summary.TagCounts == nil {
		r.Summary.TagCounts = make(map[string]int)
	}
	return nil
}
