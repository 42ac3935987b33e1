package filetype

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0o644))
}

func TestGuess(t *testing.T) {
	tests := []struct {
		name     string
		files    []string
		expected FileType
	}{
		{"js project", []string{"README.md", "src/app.js"}, JS},
		{"ts project", []string{"src/app.tsx"}, JS},
		{"php project", []string{"composer.json", "src/index.php"}, PHP},
		{"rust project", []string{"Cargo.toml", "src/lib.rs"}, Rust},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, f := range tt.files {
				touch(t, dir, f)
			}

			ft, err := Guess([]string{dir}, true)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ft)
		})
	}
}

func TestGuess_NoCandidates(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "notes.txt")

	_, err := Guess([]string{dir}, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot guess file type")
}

func TestGuess_IgnoredFilesDoNotCount(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("dist/\n"), 0o644))
	touch(t, dir, "dist/bundle.js")
	touch(t, dir, "index.php")

	ft, err := Guess([]string{dir}, true)
	require.NoError(t, err)
	assert.Equal(t, PHP, ft)
}

func TestGuess_FileRoot(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "lib.rs")

	ft, err := Guess([]string{filepath.Join(dir, "lib.rs")}, true)
	require.NoError(t, err)
	assert.Equal(t, Rust, ft)
}
