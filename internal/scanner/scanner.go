// Package scanner decides match/no-match for one file and extracts the
// matching lines. Scanning is two-phase: a cheap pre-scan rejects the
// common case of a file that cannot contain the symbol, and only
// survivors pay for the precise line-by-line pass.
package scanner

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/standardbeagle/symdef/internal/debug"
)

// Method selects the phase-1 pre-scan strategy.
type Method string

const (
	// PrescanRegex reads the whole file and applies the definition
	// pattern against the buffer in one pass.
	PrescanRegex Method = "prescan-regex"

	// PrescanLiteral reads the file in chunks looking for the raw
	// query text. Cheaper per byte than the regex pre-scan; its false
	// positives are discarded by phase 2.
	PrescanLiteral Method = "prescan-literal"

	// NoPrescan sends every candidate file straight to phase 2.
	NoPrescan Method = "no-prescan"
)

// ParseMethod resolves a --search-method argument.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case PrescanRegex, PrescanLiteral, NoPrescan:
		return Method(s), nil
	}
	return "", fmt.Errorf("unknown search method %q (expected %s, %s, or %s)",
		s, PrescanRegex, PrescanLiteral, NoPrescan)
}

// literalChunkSize is the read size for the literal pre-scan.
const literalChunkSize = 2048

// Match is one matching line within a file. Line is 1-based and zero
// when line numbers were not requested.
type Match struct {
	Line int
	Text string
}

// Scanner scans files for definition lines. It is immutable after
// construction and safe to share across workers.
type Scanner struct {
	re          *regexp.Regexp
	query       string
	method      Method
	lineNumbers bool
}

// New builds a Scanner from a compiled definition pattern, the raw
// query (used by the literal pre-scan), the pre-scan method, and
// whether matches should carry line numbers.
func New(re *regexp.Regexp, query string, method Method, lineNumbers bool) *Scanner {
	return &Scanner{
		re:          re,
		query:       query,
		method:      method,
		lineNumbers: lineNumbers,
	}
}

// ScanFile returns the matching lines of one file. Every per-file
// failure (open, read, rewind, non-text content) degrades to zero
// matches; a single unreadable file never aborts the search.
func (s *Scanner) ScanFile(path string) []Match {
	file, err := os.Open(path)
	if err != nil {
		debug.LogScan("cannot open %s: %v", path, err)
		return nil
	}
	defer file.Close()

	switch s.method {
	case PrescanRegex:
		if !s.prescanRegex(file) {
			return nil
		}
	case PrescanLiteral:
		if !s.prescanLiteral(file) {
			return nil
		}
	case NoPrescan:
		// Straight to the line pass.
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		debug.LogScan("cannot rewind %s: %v", path, err)
		return nil
	}
	return s.scanLines(file)
}

// prescanRegex applies the definition pattern to the whole file in one
// pass. Empty files and files that are not valid text cannot match.
func (s *Scanner) prescanRegex(file *os.File) bool {
	data, err := io.ReadAll(file)
	if err != nil || len(data) == 0 {
		return false
	}
	if !utf8.Valid(data) {
		return false
	}
	return s.re.Match(data)
}

// prescanLiteral looks for the raw query text in bounded chunks,
// keeping a trailing overlap of len(query)-1 bytes between reads so a
// match straddling a chunk boundary is always seen.
func (s *Scanner) prescanLiteral(file *os.File) bool {
	query := []byte(s.query)
	overlap := len(query) - 1
	if overlap < 0 {
		overlap = 0
	}

	buf := make([]byte, literalChunkSize)
	window := make([]byte, 0, literalChunkSize+overlap)
	for {
		n, err := file.Read(buf)
		if n > 0 {
			window = append(window, buf[:n]...)
			if bytes.Contains(window, query) {
				return true
			}
			if len(window) > overlap {
				window = append(window[:0], window[len(window)-overlap:]...)
			}
		}
		if err != nil {
			// io.EOF or a read failure: nothing more to see.
			return false
		}
	}
}

// scanLines is the phase-2 precision pass: every line matching the
// definition pattern yields one Match with the line's 1-based ordinal
// and its text trimmed of surrounding whitespace. Lines can be of any
// length; a minified bundle or source-map comment before a definition
// must not hide it. Lines that are not valid text are treated as
// non-matching.
func (s *Scanner) scanLines(file *os.File) []Match {
	r := bufio.NewReaderSize(file, 64*1024)

	var matches []Match
	line := 0
	for {
		text, err := r.ReadString('\n')
		if len(text) > 0 {
			line++
			text = strings.TrimSuffix(text, "\n")
			text = strings.TrimSuffix(text, "\r")
			if utf8.ValidString(text) && s.re.MatchString(text) {
				m := Match{Text: strings.TrimSpace(text)}
				if s.lineNumbers {
					m.Line = line
				}
				matches = append(matches, m)
			}
		}
		if err != nil {
			if err != io.EOF {
				// A read failure ends the pass; matches found before
				// the failure still count.
				debug.LogScan("line scan stopped at line %d: %v", line, err)
			}
			return matches
		}
	}
}
