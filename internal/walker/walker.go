// Package walker enumerates candidate files beneath one or more root
// paths. It skips hidden entries, honors root-level .gitignore rules and
// user exclude globs, filters candidates by an extension pattern, and
// visits every distinct file once even when roots overlap.
package walker

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cespare/xxhash/v2"

	"github.com/standardbeagle/symdef/internal/debug"
)

// ErrStop is returned from a visit callback to end the walk early
// without reporting an error.
var ErrStop = errors.New("walker: stop")

// Options controls which files a Walker yields.
type Options struct {
	// Extension filters candidate files by path; nil yields every file.
	Extension *regexp.Regexp

	// Excludes are doublestar globs matched against the path relative
	// to the walked root.
	Excludes []string

	// RespectGitignore loads the .gitignore at each walked root.
	RespectGitignore bool
}

// Walker yields candidate files under root paths. A Walker tracks
// visited files and directories across roots, so it is single-use: make
// a new one per enumeration.
type Walker struct {
	opts        Options
	seenFiles   map[uint64]struct{}
	visitedDirs map[uint64]struct{}
}

// New creates a Walker for one enumeration pass.
func New(opts Options) *Walker {
	return &Walker{
		opts:        opts,
		seenFiles:   make(map[uint64]struct{}),
		visitedDirs: make(map[uint64]struct{}),
	}
}

// WalkAll visits every candidate file under the given roots in order.
// A root may be a file, in which case it is yielded directly (subject
// only to the extension filter). Traversal failures are fatal: the walk
// stops and the error is returned, unlike per-file scan failures which
// the caller tolerates.
func (w *Walker) WalkAll(roots []string, fn func(path string) error) error {
	for _, root := range roots {
		if err := w.walkRoot(root, fn); err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}
			return err
		}
	}
	return nil
}

func (w *Walker) walkRoot(root string, fn func(path string) error) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("cannot read search path %s: %w", root, err)
	}

	// An explicitly named file bypasses ignore rules, matching the
	// behavior of handing a file directly to a recursive walker.
	if !info.IsDir() {
		return w.visitFile(root, fn)
	}

	var ignore *IgnoreList
	if w.opts.RespectGitignore {
		ignore, err = LoadIgnoreFile(root)
		if err != nil {
			return fmt.Errorf("cannot read ignore rules under %s: %w", root, err)
		}
	}

	debug.LogWalk("walking %s", root)

	return filepath.Walk(root, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("cannot traverse %s: %w", path, walkErr)
		}
		if !utf8.ValidString(path) {
			return fmt.Errorf("path under %s is not valid UTF-8", root)
		}
		if path == root {
			return nil
		}

		name := info.Name()
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		if info.IsDir() {
			if strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			if w.excluded(rel) {
				return filepath.SkipDir
			}
			if ignore != nil && ignore.Ignored(rel, true) {
				return filepath.SkipDir
			}
			// Overlapping roots can reach the same directory twice;
			// skip subtrees that have already been walked.
			if !w.markDirVisited(path) {
				debug.LogWalk("already walked %s, skipping", path)
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(name, ".") {
			return nil
		}
		if w.excluded(rel) {
			return nil
		}
		if ignore != nil && ignore.Ignored(rel, false) {
			return nil
		}
		return w.visitFile(path, fn)
	})
}

// visitFile applies the extension filter and duplicate suppression, then
// hands the path to the callback.
func (w *Walker) visitFile(path string, fn func(path string) error) error {
	if w.opts.Extension != nil && !w.opts.Extension.MatchString(path) {
		return nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	key := xxhash.Sum64String(abs)
	if _, dup := w.seenFiles[key]; dup {
		debug.LogWalk("already visited %s, skipping", path)
		return nil
	}
	w.seenFiles[key] = struct{}{}

	return fn(path)
}

// markDirVisited records a directory by its resolved real path and
// reports whether this is the first visit.
func (w *Walker) markDirVisited(path string) bool {
	real, err := filepath.EvalSymlinks(path)
	if err != nil {
		real = path
	}
	key := xxhash.Sum64String(real)
	if _, dup := w.visitedDirs[key]; dup {
		return false
	}
	w.visitedDirs[key] = struct{}{}
	return true
}

// excluded reports whether the relative path matches any exclude glob.
func (w *Walker) excluded(rel string) bool {
	for _, pattern := range w.opts.Excludes {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}
