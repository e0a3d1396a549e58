// Package scanner walks a source tree and folds per-file tag matches into
// a single ScanResult.
package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/tagtree/internal/core/parser"
	"github.com/colonyops/tagtree/internal/core/todo"
)

// Scanner finds tagged comments under a root directory. Construct with New;
// a Scanner is reusable and safe for concurrent Scan calls.
type Scanner struct {
	parser *parser.Parser
	opts   Options
}

// New creates a scanner with the given parser and options.
func New(p *parser.Parser, opts Options) *Scanner {
	return &Scanner{parser: p, opts: opts}
}

// fileOutcome is the per-file message workers send to the reducer. items is
// nil both for clean files without matches and for files skipped on read
// errors; either way the file counts as scanned.
type fileOutcome struct {
	path  string
	items []todo.Item
}

// Scan walks root and returns the aggregated result.
//
// Configuration problems (missing root, invalid glob) fail fast before any
// walking begins. Per-file read failures skip the file but still count it
// as scanned; entries the walk itself cannot access are skipped without
// being counted. There is no partial or resumable state: Scan either
// returns a complete result or an error.
func (s *Scanner) Scan(root string) (*todo.ScanResult, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve path %s: %w", root, err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("resolve path %s: %w", root, err)
	}

	filter, err := newOverrideFilter(s.opts.Include, s.opts.Exclude)
	if err != nil {
		return nil, err
	}

	result := todo.NewScanResult(absRoot)

	// A root that is a regular file is scanned as a single file.
	if !info.IsDir() {
		s.scanOne(absRoot, result)
		return result, nil
	}

	var matcher gitignore.Matcher
	if s.opts.RespectGitignore {
		matcher = loadIgnoreMatcher(absRoot)
	}

	workers := s.opts.Threads
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	jobs := make(chan string)
	outcomes := make(chan fileOutcome)

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for path := range jobs {
				items, err := s.parser.ParseFile(path)
				if err != nil {
					// Skipped but still counted as scanned.
					log.Debug().Err(err).Str("path", path).Msg("skipping unreadable file")
					outcomes <- fileOutcome{path: path}
					continue
				}
				outcomes <- fileOutcome{path: path, items: items}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(outcomes)
	}()

	// Single-reducer fan-in: this goroutine is the only writer, keeping the
	// summary counters single-threaded without a lock.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for out := range outcomes {
			if err := result.AddFile(out.path, out.items); err != nil {
				log.Error().Err(err).Str("path", out.path).Msg("dropping duplicate walk entry")
			}
		}
	}()

	s.walk(absRoot, matcher, filter, jobs)
	close(jobs)
	<-done

	return result, nil
}

// scanOne handles the single-file root case without the worker pipeline.
func (s *Scanner) scanOne(path string, result *todo.ScanResult) {
	items, err := s.parser.ParseFile(path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("skipping unreadable file")
		_ = result.AddFile(path, nil)
		return
	}
	_ = result.AddFile(path, items)
}

// walk is the producer: it traverses directories applying the hidden,
// symlink, ignore, depth, and override policies, and feeds surviving file
// paths to the workers. Entries directly under root are at depth 1.
//
// When symlinks are followed, every descended directory is recorded by its
// resolved path so a cyclic link (or a second link to an already-walked
// directory) is visited once instead of looping until the kernel's link
// resolution limit.
func (s *Scanner) walk(root string, matcher gitignore.Matcher, filter *overrideFilter, jobs chan<- string) {
	var visited map[string]struct{}
	if s.opts.FollowLinks {
		visited = make(map[string]struct{})
		if resolved, err := filepath.EvalSymlinks(root); err == nil {
			visited[resolved] = struct{}{}
		}
	}

	var walkDir func(dir string, depth int)
	walkDir = func(dir string, depth int) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			// Inaccessible entries are skipped entirely and not counted.
			log.Debug().Err(err).Str("path", dir).Msg("skipping unreadable directory")
			return
		}

		for _, entry := range entries {
			name := entry.Name()
			if !s.opts.Hidden && strings.HasPrefix(name, ".") {
				continue
			}

			full := filepath.Join(dir, name)
			rel, err := filepath.Rel(root, full)
			if err != nil {
				continue
			}
			rel = filepath.ToSlash(rel)

			entryType := entry.Type()
			isDir := entry.IsDir()
			if entryType&fs.ModeSymlink != 0 {
				if !s.opts.FollowLinks {
					continue
				}
				target, err := os.Stat(full)
				if err != nil {
					// Broken symlink: skipped, not counted.
					log.Debug().Err(err).Str("path", full).Msg("skipping broken symlink")
					continue
				}
				isDir = target.IsDir()
			} else if !entryType.IsRegular() && !isDir {
				// Sockets, devices, and other unresolvable entry types.
				continue
			}

			if isDir {
				if name == ".git" {
					continue
				}
				if ignored(matcher, rel, true) || filter.skipDir(rel) {
					continue
				}
				// Files inside this directory would sit one level deeper
				// than the directory itself.
				if s.opts.MaxDepth > 0 && depth+1 >= s.opts.MaxDepth {
					continue
				}
				if visited != nil {
					resolved, err := filepath.EvalSymlinks(full)
					if err != nil {
						log.Debug().Err(err).Str("path", full).Msg("skipping unresolvable directory")
						continue
					}
					if _, ok := visited[resolved]; ok {
						log.Debug().Str("path", full).Msg("skipping already-walked directory")
						continue
					}
					visited[resolved] = struct{}{}
				}
				walkDir(full, depth+1)
				continue
			}

			if ignored(matcher, rel, false) {
				continue
			}
			if !filter.matchFile(rel) {
				continue
			}
			jobs <- full
		}
	}

	walkDir(root, 0)
}
