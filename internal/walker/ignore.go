package walker

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// IgnoreList holds parsed .gitignore rules for one root.
//
// Matching follows gitignore ordering: every rule is consulted in file
// order and the last matching rule wins, so negations can re-include a
// path excluded by an earlier rule.
type IgnoreList struct {
	rules []ignoreRule
}

type ignoreRule struct {
	pattern  string
	negate   bool
	dirOnly  bool
	anchored bool
}

// LoadIgnoreFile reads the .gitignore at root. A missing file is not an
// error; it yields an empty list that ignores nothing.
func LoadIgnoreFile(root string) (*IgnoreList, error) {
	list := &IgnoreList{}

	file, err := os.Open(filepath.Join(root, ".gitignore"))
	if err != nil {
		return list, nil
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		list.AddPattern(strings.TrimSpace(scanner.Text()))
	}
	return list, scanner.Err()
}

// AddPattern parses one gitignore line and appends it to the list.
// Blank lines and comments are dropped.
func (l *IgnoreList) AddPattern(line string) {
	if line == "" || strings.HasPrefix(line, "#") {
		return
	}

	rule := ignoreRule{}
	if strings.HasPrefix(line, "!") {
		rule.negate = true
		line = line[1:]
	}
	if strings.HasSuffix(line, "/") {
		rule.dirOnly = true
		line = strings.TrimSuffix(line, "/")
	}
	if strings.HasPrefix(line, "/") {
		rule.anchored = true
		line = line[1:]
	} else if strings.Contains(line, "/") {
		// A separator anywhere in the pattern anchors it to the root,
		// same as git.
		rule.anchored = true
	}

	rule.pattern = line
	l.rules = append(l.rules, rule)
}

// Ignored reports whether the path (relative to the ignore root, slash
// separated) is excluded by the loaded rules.
func (l *IgnoreList) Ignored(relPath string, isDir bool) bool {
	relPath = filepath.ToSlash(relPath)

	ignored := false
	for _, rule := range l.rules {
		if rule.matches(relPath, isDir) {
			ignored = !rule.negate
		}
	}
	return ignored
}

func (r ignoreRule) matches(path string, isDir bool) bool {
	if r.dirOnly && !isDir {
		// Directory-only rules also exclude everything inside a
		// matching directory.
		parts := strings.Split(path, "/")
		for i := 1; i < len(parts); i++ {
			if r.matchesPath(strings.Join(parts[:i], "/")) {
				return true
			}
		}
		return false
	}
	if r.matchesPath(path) {
		return true
	}
	if !r.dirOnly && !r.anchored {
		// Unanchored rules can also exclude files inside a matching
		// directory component.
		parts := strings.Split(path, "/")
		for i := 1; i < len(parts); i++ {
			if r.matchesPath(strings.Join(parts[:i], "/")) {
				return true
			}
		}
	}
	return false
}

func (r ignoreRule) matchesPath(path string) bool {
	if r.anchored {
		ok, _ := doublestar.Match(r.pattern, path)
		return ok
	}
	// Unanchored patterns match at any depth: the full path, or any
	// trailing sub-path.
	if ok, _ := doublestar.Match(r.pattern, path); ok {
		return true
	}
	parts := strings.Split(path, "/")
	for i := 1; i < len(parts); i++ {
		if ok, _ := doublestar.Match(r.pattern, strings.Join(parts[i:], "/")); ok {
			return true
		}
	}
	return false
}
