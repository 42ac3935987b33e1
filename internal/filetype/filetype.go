// Package filetype models the supported source-language families and
// compiles the text patterns that drive the search: an extension pattern
// selecting candidate files, and a per-language definition pattern
// matching the lines where a symbol is plausibly defined.
package filetype

import (
	"fmt"
	"regexp"
	"strings"

	edlib "github.com/hbollon/go-edlib"
)

// FileType is a supported source-language family.
type FileType int

const (
	// JS covers the JavaScript and TypeScript family, including JSX
	// and TSX variants and the .mjs/.cjs module extensions.
	JS FileType = iota

	// PHP covers PHP sources.
	PHP

	// Rust covers Rust sources.
	Rust
)

// All lists the supported types in guessing order.
var All = []FileType{JS, PHP, Rust}

func (ft FileType) String() string {
	switch ft {
	case JS:
		return "js"
	case PHP:
		return "php"
	case Rust:
		return "rs"
	}
	return "unknown"
}

// aliases maps accepted --type spellings to a FileType. The JS aliases
// mirror editor filetype names so the flag can be fed directly from an
// editor's filetype setting.
var aliases = map[string]FileType{
	"js":              JS,
	"ts":              JS,
	"jsx":             JS,
	"tsx":             JS,
	"javascript":      JS,
	"javascript.jsx":  JS,
	"javascriptreact": JS,
	"typescript":      JS,
	"typescript.tsx":  JS,
	"typescriptreact": JS,
	"php":             PHP,
	"rs":              Rust,
	"rust":            Rust,
}

// extensionPatterns matches a candidate file path's suffix per type.
var extensionPatterns = map[FileType]string{
	JS:   `\.(js|jsx|ts|tsx|mjs|cjs)$`,
	PHP:  `\.php$`,
	Rust: `\.rs$`,
}

// definitionPatterns lists, per type, the syntactic forms a symbol
// definition can take. The forms are ORed into one pattern with the
// query substituted for %[1]s; each form anchors the query with word
// boundaries so partial identifiers never match.
var definitionPatterns = map[FileType][]string{
	JS: {
		// Keyword-prefixed declarations.
		`\b(function|var|let|const|class|interface|type)\s+%[1]s\b`,
		// Method or function shorthand up to its opening brace, with an
		// optional TS return-type annotation before the brace.
		`\b%[1]s\([^)]*\)\s*(:[^{]+)?\{`,
		// Object or type property key. A ternary's colon can
		// misfire here; accepted heuristic cost.
		`\b%[1]s:`,
		// JSDoc typedef naming the symbol.
		`@typedef\s*(\{[^}]+\})?\s*%[1]s\b`,
	},
	PHP: {
		`\b(function|class|trait|interface|enum) %[1]s\b`,
	},
	Rust: {
		`\b(fn|struct|enum|trait|type|mod|macro_rules!)\s+%[1]s\b`,
	},
}

// Parse resolves a --type argument to a FileType. Unknown names produce
// an error that suggests the closest known alias when one is close
// enough to look like a typo.
func Parse(s string) (FileType, error) {
	if ft, ok := aliases[strings.ToLower(s)]; ok {
		return ft, nil
	}
	if suggestion := closestAlias(s); suggestion != "" {
		return 0, fmt.Errorf("unknown file type %q (did you mean %q?)", s, suggestion)
	}
	return 0, fmt.Errorf("unknown file type %q", s)
}

// closestAlias returns the known alias most similar to the input, or ""
// when nothing is similar enough to suggest.
func closestAlias(s string) string {
	const threshold = 0.8

	best := ""
	bestScore := float32(0)
	for alias := range aliases {
		score, err := edlib.StringsSimilarity(strings.ToLower(s), alias, edlib.JaroWinkler)
		if err != nil {
			continue
		}
		if score > bestScore {
			bestScore = score
			best = alias
		}
	}
	if bestScore < threshold {
		return ""
	}
	return best
}

// ExtensionPattern compiles the path-suffix pattern for a type.
func ExtensionPattern(ft FileType) (*regexp.Regexp, error) {
	pattern, ok := extensionPatterns[ft]
	if !ok {
		return nil, fmt.Errorf("no extension pattern for file type %s", ft)
	}
	return regexp.Compile(pattern)
}

// QueryPattern compiles the definition-line pattern for a symbol name
// and type. The query is embedded verbatim, so a query containing
// pattern metacharacters can fail to compile; that failure is fatal for
// the invocation rather than recoverable per file.
func QueryPattern(query string, ft FileType) (*regexp.Regexp, error) {
	forms, ok := definitionPatterns[ft]
	if !ok {
		return nil, fmt.Errorf("no definition patterns for file type %s", ft)
	}
	pattern := fmt.Sprintf("("+strings.Join(forms, "|")+")", query)
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("cannot build definition pattern for query %q: %w", query, err)
	}
	return re, nil
}
