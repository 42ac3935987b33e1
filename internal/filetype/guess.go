package filetype

import (
	"errors"
	"regexp"

	"github.com/standardbeagle/symdef/internal/debug"
	"github.com/standardbeagle/symdef/internal/walker"
)

// Guess infers a FileType by sampling file paths under the given roots,
// stopping at the first path whose extension matches a known type. The
// walk applies the same ignore rules as the search itself so the guess
// is not fooled by ignored build output.
func Guess(roots []string, respectGitignore bool) (FileType, error) {
	probes := make(map[FileType]*regexp.Regexp, len(All))
	for _, ft := range All {
		re, err := ExtensionPattern(ft)
		if err != nil {
			return 0, err
		}
		probes[ft] = re
	}

	var found FileType
	matched := false

	w := walker.New(walker.Options{RespectGitignore: respectGitignore})
	err := w.WalkAll(roots, func(path string) error {
		for _, ft := range All {
			if probes[ft].MatchString(path) {
				found = ft
				matched = true
				return walker.ErrStop
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if !matched {
		return 0, errors.New("cannot guess file type from search paths; specify one with --type")
	}

	debug.LogSearch("guessed file type %s", found)
	return found, nil
}
