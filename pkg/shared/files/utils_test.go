package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"tilde prefix", "~/projects/repo", filepath.Join(home, "projects/repo")},
		{"absolute path unchanged", "/var/data", "/var/data"},
		{"relative path unchanged", "./local", "./local"},
		{"bare tilde not expanded", "~user/repo", "~user/repo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPath(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidatePath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "regular.txt")
	require.NoError(t, os.WriteFile(file, []byte("ok"), 0o644))

	assert.NoError(t, ValidatePath(file))
	assert.Error(t, ValidatePath(dir))
	assert.Error(t, ValidatePath(filepath.Join(dir, "missing.txt")))
}

func TestEnsureWithinRoot(t *testing.T) {
	root := t.TempDir()

	inside, err := EnsureWithinRoot(root, filepath.Join(root, "sub", "file.txt"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "sub", "file.txt"), inside)

	_, err = EnsureWithinRoot(root, filepath.Join(root, "..", "escape.txt"))
	assert.Error(t, err)

	cleaned, err := EnsureWithinRoot("", "a/b/../c")
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean("a/c"), cleaned)
}
