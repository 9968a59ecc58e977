// Package snapshot implements the traversal-and-filtering engine that
// flattens a project tree into ordered content blocks.
//
// The engine performs a top-down walk of a root directory. Directories
// whose bare name matches an exclusion pattern are pruned before descent,
// so their contents are never enumerated. Surviving files are matched by
// bare name and by root-relative slash-normalized path, read as UTF-8,
// and appended to the result in traversal order. A single unreadable or
// binary file never aborts the walk; only an invalid root does.
package snapshot

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/harrison/projsnap/internal/ignore"
)

// Logger receives progress and skip reporting during a walk. The
// console logger satisfies it; a nil logger discards everything.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
}

// nopLogger discards all messages.
type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}

// Options configures a snapshot run.
type Options struct {
	// Exclusions is the immutable pattern set for this run. May be empty.
	Exclusions *ignore.Set

	// OutputPath is where the snapshot will be written. Its base name
	// is treated as an implicit exclusion so a re-run cannot ingest its
	// own prior output.
	OutputPath string

	// Logger receives progress reporting. Optional.
	Logger Logger
}

// Engine walks a tree and collects content blocks. It holds no state
// between runs beyond its configuration.
type Engine struct {
	exclusions *ignore.Set
	outputName string
	log        Logger
}

// New creates an Engine from the given options.
func New(opts Options) *Engine {
	excl := opts.Exclusions
	if excl == nil {
		excl = ignore.NewSet()
	}

	log := opts.Logger
	if log == nil {
		log = nopLogger{}
	}

	return &Engine{
		exclusions: excl,
		outputName: filepath.Base(opts.OutputPath),
		log:        log,
	}
}

// Run walks root and returns the collected result. Per-entry failures
// are recorded on the result and reported through the logger; the only
// error Run itself returns is a walk that could not start at all.
func (e *Engine) Run(root string) (*Result, error) {
	root = filepath.Clean(root)

	result := &Result{
		RunID:   uuid.NewString(),
		Root:    root,
		Started: time.Now(),
	}

	e.log.Info("starting traversal of %s", root)
	e.log.Debug("run %s: %d exclusion patterns, output name %q",
		result.RunID, e.exclusions.Len(), e.outputName)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable directory or a file that vanished mid-walk.
			result.Skips = append(result.Skips, Skip{Path: path, Reason: SkipReadError, Err: err})
			e.log.Warn("cannot access %s: %v", path, err)
			return nil
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			if e.exclusions.MatchDir(d.Name()) {
				result.PrunedDirs = append(result.PrunedDirs, path)
				e.log.Debug("pruned directory %s", path)
				return filepath.SkipDir
			}
			return nil
		}

		e.visitFile(path, d, result)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	result.Finished = time.Now()
	e.log.Info("traversal complete: %d files captured, %d skipped, %d directories pruned",
		len(result.Blocks), len(result.Skips), len(result.PrunedDirs))

	return result, nil
}

// visitFile applies the per-file filter chain and, if the file
// qualifies, appends its content block.
func (e *Engine) visitFile(path string, d fs.DirEntry, result *Result) {
	name := d.Name()

	if name == e.outputName {
		result.Skips = append(result.Skips, Skip{Path: path, Reason: SkipSelf})
		e.log.Debug("skipping prior snapshot output %s", path)
		return
	}

	rel, err := filepath.Rel(result.Root, path)
	if err != nil {
		result.Skips = append(result.Skips, Skip{Path: path, Reason: SkipRelPath, Err: err})
		e.log.Warn("cannot compute relative path for %s: %v", path, err)
		return
	}
	rel = filepath.ToSlash(rel)

	if e.exclusions.Match(name, rel) {
		result.Skips = append(result.Skips, Skip{Path: rel, Reason: SkipExcluded})
		e.log.Debug("excluded %s", rel)
		return
	}

	if !d.Type().IsRegular() {
		result.Skips = append(result.Skips, Skip{Path: rel, Reason: SkipNotRegular})
		e.log.Debug("skipping non-regular file %s", rel)
		return
	}

	// os.ReadFile closes the handle on every path, including errors.
	data, err := os.ReadFile(path)
	if err != nil {
		result.Skips = append(result.Skips, Skip{Path: rel, Reason: SkipReadError, Err: err})
		e.log.Warn("error reading %s: %v", rel, err)
		return
	}

	if !utf8.Valid(data) {
		result.Skips = append(result.Skips, Skip{Path: rel, Reason: SkipBinary})
		e.log.Warn("ignoring binary or non-UTF-8 file: %s", rel)
		return
	}

	result.Blocks = append(result.Blocks, Block{Path: rel, Content: string(data)})
}
