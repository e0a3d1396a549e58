package scanner

// Options controls one directory scan. It is the sole configuration
// surface of the core; the CLI and config layers populate it and pass it in
// as an opaque value.
type Options struct {
	// Include holds glob patterns acting as a whitelist: when non-empty,
	// only matching files are scanned. A pattern without a slash matches
	// the basename at any depth, gitignore-style.
	Include []string

	// Exclude holds glob patterns removing files from the scan.
	Exclude []string

	// MaxDepth bounds recursion; 0 means unlimited. Entries directly under
	// the root are at depth 1.
	MaxDepth int

	// FollowLinks traverses symbolic links when set.
	FollowLinks bool

	// Hidden includes dot-prefixed entries when set.
	Hidden bool

	// Threads is the parse worker count; 0 uses one worker per CPU.
	Threads int

	// RespectGitignore applies .gitignore, .git/info/exclude, and
	// global/system exclude rules.
	RespectGitignore bool
}

// DefaultOptions scans everything except hidden and gitignored entries,
// without following symlinks, at unbounded depth, with auto worker count.
func DefaultOptions() Options {
	return Options{
		RespectGitignore: true,
	}
}
