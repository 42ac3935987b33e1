// Package display renders search results in the grep output format:
// path:text, or path:line:text when line numbers were requested.
package display

import (
	"github.com/fatih/color"

	"github.com/standardbeagle/symdef/internal/search"
)

var (
	pathColor = color.New(color.FgMagenta)
	lineColor = color.New(color.FgGreen)
)

// Formatter renders Results one line at a time.
type Formatter struct{}

// NewFormatter creates a Formatter. When noColor is set, color is
// disabled process-wide; the color library also honors NO_COLOR on its
// own.
func NewFormatter(noColor bool) *Formatter {
	if noColor {
		color.NoColor = true
	}
	return &Formatter{}
}

// Format renders one result as path:text or path:line:text.
func (f *Formatter) Format(r search.Result) string {
	if r.LineNumber > 0 {
		return pathColor.Sprint(r.FilePath) + ":" + lineColor.Sprintf("%d", r.LineNumber) + ":" + r.Text
	}
	return pathColor.Sprint(r.FilePath) + ":" + r.Text
}
