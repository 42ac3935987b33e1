// Package config builds the immutable configuration snapshot for one
// search invocation. Raw CLI input is layered over optional .symdef.kdl
// defaults, validated once, and never mutated afterwards, so the
// snapshot is safe to share read-only across worker goroutines.
package config

import (
	stderrors "errors"
	"fmt"

	symerrors "github.com/standardbeagle/symdef/internal/errors"
	"github.com/standardbeagle/symdef/internal/filetype"
	"github.com/standardbeagle/symdef/internal/scanner"
)

// DefaultThreads is the worker count used when neither the CLI nor the
// defaults file sets one.
const DefaultThreads = 5

// Options is the raw, not-yet-validated input gathered from CLI flags.
type Options struct {
	Query      string
	Paths      []string
	TypeName   string // empty means auto-detect
	LineNumber bool
	MethodName string // empty means the configured or built-in default
	Threads    int    // 0 means the configured or built-in default
	NoColor    bool
	Debug      bool
	Excludes   []string
	Ignore     bool // force .gitignore handling on over the defaults file
	NoIgnore   bool
	ConfigPath string // empty means ./.symdef.kdl; a named file must exist
}

// SearchConfig is the validated, immutable snapshot driving one search.
type SearchConfig struct {
	Query            string
	Paths            []string
	Type             filetype.FileType
	LineNumber       bool
	Method           scanner.Method
	Threads          int
	NoColor          bool
	Debug            bool
	Excludes         []string
	RespectGitignore bool
}

// New validates raw options into a SearchConfig, resolving the file
// type (parsing the --type value or guessing from the search paths) and
// merging .symdef.kdl defaults underneath the CLI flags.
func New(opts Options) (*SearchConfig, error) {
	if opts.Query == "" {
		return nil, symerrors.NewConfigError("validate query", stderrors.New("query must not be empty"))
	}

	configPath := opts.ConfigPath
	explicit := configPath != ""
	if !explicit {
		configPath = DefaultsFile
	}
	defaults, err := loadDefaults(configPath, explicit)
	if err != nil {
		return nil, symerrors.NewConfigError("load defaults file", err).WithPath(configPath)
	}

	paths := opts.Paths
	if len(paths) == 0 {
		paths = []string{"."}
	}

	threads := opts.Threads
	if threads == 0 {
		threads = defaults.Threads
	}
	if threads <= 0 {
		return nil, symerrors.NewConfigError("validate threads",
			fmt.Errorf("thread count must be positive, got %d", threads))
	}

	methodName := opts.MethodName
	if methodName == "" {
		methodName = defaults.Method
	}
	method, err := scanner.ParseMethod(methodName)
	if err != nil {
		return nil, symerrors.NewConfigError("validate search method", err)
	}

	// CLI flags win over the defaults file in both directions; when
	// --ignore and --no-ignore are both given --no-ignore wins.
	respectGitignore := defaults.RespectGitignore
	if opts.Ignore {
		respectGitignore = true
	}
	if opts.NoIgnore {
		respectGitignore = false
	}
	excludes := append(append([]string(nil), defaults.Excludes...), opts.Excludes...)

	var ft filetype.FileType
	if opts.TypeName != "" {
		ft, err = filetype.Parse(opts.TypeName)
		if err != nil {
			return nil, symerrors.NewConfigError("resolve file type", err)
		}
	} else {
		ft, err = filetype.Guess(paths, respectGitignore)
		if err != nil {
			return nil, symerrors.NewConfigError("guess file type", err)
		}
	}

	return &SearchConfig{
		Query:            opts.Query,
		Paths:            paths,
		Type:             ft,
		LineNumber:       opts.LineNumber,
		Method:           method,
		Threads:          threads,
		NoColor:          opts.NoColor || defaults.NoColor,
		Debug:            opts.Debug,
		Excludes:         excludes,
		RespectGitignore: respectGitignore,
	}, nil
}
