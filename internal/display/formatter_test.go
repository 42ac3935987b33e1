package display

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/standardbeagle/symdef/internal/search"
)

func TestFormat_WithLineNumber(t *testing.T) {
	f := NewFormatter(true)
	got := f.Format(search.Result{
		FilePath:   "src/a.js",
		LineNumber: 7,
		Text:       "function parseQuery() {",
	})
	assert.Equal(t, "src/a.js:7:function parseQuery() {", got)
}

func TestFormat_WithoutLineNumber(t *testing.T) {
	f := NewFormatter(true)
	got := f.Format(search.Result{
		FilePath: "src/a.js",
		Text:     "function parseQuery() {",
	})
	assert.Equal(t, "src/a.js:function parseQuery() {", got)
}
