package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVerifyCleanSnapshot verifies a healthy snapshot passes
func TestVerifyCleanSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.txt")
	body := "a.txt\n```\nhello\n```\n\nb.txt\n```\nworld\n```\n\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	out, err := execute(t, "", "verify", path)
	require.NoError(t, err)
	assert.Contains(t, out, "2 block(s)")
	assert.Contains(t, out, "clean")
}

// TestVerifyCorruptSnapshot verifies embedded fences fail verification
func TestVerifyCorruptSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.txt")
	// One captured markdown file whose own fence splits the block.
	body := "README.md\n```\nintro\n```\ninner\n```\nafter\n```\n\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	out, err := execute(t, "", "verify", path)
	require.Error(t, err)
	assert.Contains(t, out, "warning")
}

// TestVerifyMissingFile verifies the read error surfaces
func TestVerifyMissingFile(t *testing.T) {
	_, err := execute(t, "", "verify", filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
}

// TestRestoreCommand verifies restore writes files under --into
func TestRestoreCommand(t *testing.T) {
	snap := filepath.Join(t.TempDir(), "snap.txt")
	body := "a.txt\n```\nhello\n```\n\nsrc/b.txt\n```\nworld\n```\n\n"
	require.NoError(t, os.WriteFile(snap, []byte(body), 0644))

	target := t.TempDir()
	out, err := execute(t, "", "restore", snap, "--into", target)
	require.NoError(t, err)
	assert.Contains(t, out, "restored 2 file(s)")

	data, err := os.ReadFile(filepath.Join(target, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	data, err = os.ReadFile(filepath.Join(target, "src", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "world", string(data))
}

// TestRestoreRequiresInto verifies the --into flag is mandatory
func TestRestoreRequiresInto(t *testing.T) {
	snap := filepath.Join(t.TempDir(), "snap.txt")
	require.NoError(t, os.WriteFile(snap, []byte(""), 0644))

	_, err := execute(t, "", "restore", snap)
	require.Error(t, err)
}
