package snapshot

import (
	"time"
)

// SkipReason classifies why an entry was left out of the snapshot.
type SkipReason string

const (
	// SkipExcluded marks a file whose name or relative path matched an
	// exclusion pattern.
	SkipExcluded SkipReason = "excluded by pattern"

	// SkipSelf marks the snapshot output file found inside the tree.
	SkipSelf SkipReason = "snapshot output file"

	// SkipBinary marks content that is not valid UTF-8 text.
	SkipBinary SkipReason = "binary or non-UTF-8 content"

	// SkipReadError marks a per-file I/O failure.
	SkipReadError SkipReason = "read error"

	// SkipNotRegular marks sockets, devices, and other non-regular files.
	SkipNotRegular SkipReason = "not a regular file"

	// SkipRelPath marks an entry whose root-relative path could not be
	// computed.
	SkipRelPath SkipReason = "relative path unavailable"
)

// Skip records one entry omitted from the snapshot and why.
type Skip struct {
	Path   string
	Reason SkipReason
	Err    error
}

// Result holds everything a run produced: the ordered content blocks,
// the skip record, and the pruned directories. Blocks keep traversal
// order; Render concatenates them in that order.
type Result struct {
	RunID      string
	Root       string
	Blocks     []Block
	Skips      []Skip
	PrunedDirs []string
	Started    time.Time
	Finished   time.Time
}

// Render concatenates every block's formatted text, in traversal order,
// into the final snapshot body.
func (r *Result) Render(style FenceStyle) []byte {
	var size int
	for _, b := range r.Blocks {
		size += len(b.Path) + len(b.Content) + 12
	}

	out := make([]byte, 0, size)
	for _, b := range r.Blocks {
		out = append(out, b.Render(style)...)
	}
	return out
}

// SkipsFor returns the skips recorded with the given reason.
func (r *Result) SkipsFor(reason SkipReason) []Skip {
	var out []Skip
	for _, s := range r.Skips {
		if s.Reason == reason {
			out = append(out, s)
		}
	}
	return out
}

// Duration returns the wall-clock time the walk took.
func (r *Result) Duration() time.Duration {
	return r.Finished.Sub(r.Started)
}
