package ignore

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// TestNewSetUnion verifies that set construction unions groups, trims
// entries, and collapses duplicates.
func TestNewSetUnion(t *testing.T) {
	s := NewSet(
		[]string{".git", "*.log", " *.log "},
		[]string{"build/", "", ".git"},
	)

	want := []string{"*.log", ".git", "build"}
	if got := s.Patterns(); !reflect.DeepEqual(got, want) {
		t.Errorf("Patterns() = %v, want %v", got, want)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

// TestMatchDir verifies directory pruning matches on bare names only
func TestMatchDir(t *testing.T) {
	s := NewSet(DefaultPatterns, []string{"cache-*"})

	tests := []struct {
		name string
		want bool
	}{
		{".git", true},
		{"node_modules", true},
		{"__pycache__", true},
		{"cache-01", true},
		{"src", false},
		{"gitlab", false},
	}

	for _, tt := range tests {
		if got := s.MatchDir(tt.name); got != tt.want {
			t.Errorf("MatchDir(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

// TestMatchFile verifies the name-or-relative-path file matching rule
func TestMatchFile(t *testing.T) {
	s := NewSet([]string{"*.tmp", "notes.md", "src/logs/*.log", "**/generated.go"})

	tests := []struct {
		name    string
		relPath string
		want    bool
	}{
		{"scratch.tmp", "scratch.tmp", true},
		{"scratch.tmp", "deep/scratch.tmp", true},
		{"notes.md", "docs/notes.md", true},
		{"notes.md.bak", "notes.md.bak", false},
		{"app.log", "src/logs/app.log", true},
		{"app.log", "src/app.log", false},
		{"generated.go", "a/b/c/generated.go", true},
		{"main.go", "main.go", false},
	}

	for _, tt := range tests {
		if got := s.Match(tt.name, tt.relPath); got != tt.want {
			t.Errorf("Match(%q, %q) = %v, want %v", tt.name, tt.relPath, got, tt.want)
		}
	}
}

// TestParseIgnoreFile tests pattern extraction from a gitignore-style file
func TestParseIgnoreFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ".gitignore")

	content := `# ignore
build/

*.log
!keep.log
  dist
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write ignore file: %v", err)
	}

	patterns, err := ParseIgnoreFile(path)
	if err != nil {
		t.Fatalf("ParseIgnoreFile() error = %v", err)
	}

	want := []string{"build/", "*.log", "dist"}
	if !reflect.DeepEqual(patterns, want) {
		t.Errorf("ParseIgnoreFile() = %v, want %v", patterns, want)
	}
}

// TestParseIgnoreFileMissing verifies a missing file surfaces an error
// for the caller to downgrade to a warning
func TestParseIgnoreFileMissing(t *testing.T) {
	patterns, err := ParseIgnoreFile(filepath.Join(t.TempDir(), "absent"))
	if err == nil {
		t.Fatal("ParseIgnoreFile() expected error for missing file")
	}
	if len(patterns) != 0 {
		t.Errorf("ParseIgnoreFile() = %v, want empty contribution", patterns)
	}
}

// TestParseList tests comma-separated manual pattern input
func TestParseList(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"*.tmp, notes.md", []string{"*.tmp", "notes.md"}},
		{" dist ,, build ", []string{"dist", "build"}},
		{"", nil},
		{" , ", nil},
		{"single", []string{"single"}},
	}

	for _, tt := range tests {
		if got := ParseList(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseList(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
