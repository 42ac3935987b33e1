package walker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIgnoreList(patterns ...string) *IgnoreList {
	list := &IgnoreList{}
	for _, p := range patterns {
		list.AddPattern(p)
	}
	return list
}

func TestLoadIgnoreFile_MissingFileIgnoresNothing(t *testing.T) {
	list, err := LoadIgnoreFile(t.TempDir())
	require.NoError(t, err)
	assert.False(t, list.Ignored("anything.js", false))
}

func TestLoadIgnoreFile_ReadsRules(t *testing.T) {
	dir := t.TempDir()
	content := "# build output\ndist/\n*.log\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(content), 0o644))

	list, err := LoadIgnoreFile(dir)
	require.NoError(t, err)
	assert.True(t, list.Ignored("dist", true))
	assert.True(t, list.Ignored("dist/bundle.js", false))
	assert.True(t, list.Ignored("debug.log", false))
	assert.False(t, list.Ignored("src/app.js", false))
}

func TestIgnoreList_BlankLinesAndComments(t *testing.T) {
	list := newIgnoreList("", "# nothing", "   ")
	assert.False(t, list.Ignored("a.js", false))
}

func TestIgnoreList_SimplePattern(t *testing.T) {
	list := newIgnoreList("*.min.js")
	assert.True(t, list.Ignored("app.min.js", false))
	assert.True(t, list.Ignored("vendor/app.min.js", false))
	assert.False(t, list.Ignored("app.js", false))
}

func TestIgnoreList_DirectoryOnlyPattern(t *testing.T) {
	list := newIgnoreList("node_modules/")
	assert.True(t, list.Ignored("node_modules", true))
	assert.True(t, list.Ignored("node_modules/pkg/index.js", false))
	assert.False(t, list.Ignored("node_modules.txt", false))
}

func TestIgnoreList_AnchoredPattern(t *testing.T) {
	list := newIgnoreList("/build")
	assert.True(t, list.Ignored("build", true))
	assert.False(t, list.Ignored("src/build", true))
}

func TestIgnoreList_EmbeddedSlashAnchors(t *testing.T) {
	list := newIgnoreList("docs/generated")
	assert.True(t, list.Ignored("docs/generated", true))
	assert.False(t, list.Ignored("site/docs/generated", true))
}

func TestIgnoreList_NegationLastMatchWins(t *testing.T) {
	list := newIgnoreList("*.log", "!keep.log")
	assert.True(t, list.Ignored("debug.log", false))
	assert.False(t, list.Ignored("keep.log", false))
}

func TestIgnoreList_NegationOrderMatters(t *testing.T) {
	list := newIgnoreList("!keep.log", "*.log")
	assert.True(t, list.Ignored("keep.log", false))
}
