package snapfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// RestoreOptions configures re-materializing a snapshot to disk.
type RestoreOptions struct {
	// Dir is the directory entries are written under.
	Dir string

	// Overwrite allows replacing files that already exist.
	Overwrite bool
}

// RestoreResult reports what a restore wrote and what it refused.
type RestoreResult struct {
	Written []string
	Skipped []string
}

// Restore writes the parsed entries of a snapshot under opts.Dir,
// creating parent directories as needed. Entries whose path is absolute
// or escapes the target directory are rejected; existing files are
// skipped unless Overwrite is set.
func Restore(source []byte, opts RestoreOptions) (*RestoreResult, error) {
	entries, err := Parse(source)
	if err != nil {
		return nil, err
	}

	if opts.Dir == "" {
		return nil, fmt.Errorf("restore directory is required")
	}
	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create restore directory: %w", err)
	}

	result := &RestoreResult{}
	for _, e := range entries {
		rel := filepath.FromSlash(e.Path)
		if !filepath.IsLocal(rel) {
			return nil, fmt.Errorf("entry %q escapes the restore directory", e.Path)
		}

		target := filepath.Join(opts.Dir, rel)

		if !opts.Overwrite {
			if _, err := os.Stat(target); err == nil {
				result.Skipped = append(result.Skipped, e.Path)
				continue
			}
		}

		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory for %s: %w", e.Path, err)
		}
		if err := os.WriteFile(target, []byte(e.Content), 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", e.Path, err)
		}
		result.Written = append(result.Written, e.Path)
	}

	return result, nil
}
