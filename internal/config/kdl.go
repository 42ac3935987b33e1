package config

import (
	"fmt"
	"os"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"

	"github.com/standardbeagle/symdef/internal/scanner"
)

// DefaultsFile is the per-project defaults file looked up in the
// working directory when --config is not given.
const DefaultsFile = ".symdef.kdl"

// fileDefaults holds the settings a .symdef.kdl file may provide.
// CLI flags always win over these.
type fileDefaults struct {
	Threads          int
	Method           string
	NoColor          bool
	RespectGitignore bool
	Excludes         []string
}

// loadDefaults reads a .symdef.kdl defaults file. When the file was
// looked up implicitly a missing file is not an error and built-in
// defaults apply; a file named with --config must exist.
//
// Layout:
//
//	search {
//	    threads 8
//	    method "prescan-literal"
//	}
//	output {
//	    no-color true
//	}
//	walk {
//	    respect-gitignore false
//	    exclude "vendor/**" "dist/**"
//	}
func loadDefaults(path string, required bool) (*fileDefaults, error) {
	defaults := &fileDefaults{
		Threads:          DefaultThreads,
		Method:           string(scanner.PrescanRegex),
		RespectGitignore: true,
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return defaults, nil
		}
		return nil, err
	}

	doc, err := kdl.Parse(strings.NewReader(string(content)))
	if err != nil {
		return nil, fmt.Errorf("malformed KDL: %w", err)
	}

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "search":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "threads":
					if v, ok := firstIntArg(cn); ok {
						defaults.Threads = v
					}
				case "method":
					if v, ok := firstStringArg(cn); ok {
						defaults.Method = v
					}
				}
			}
		case "output":
			for _, cn := range n.Children {
				if nodeName(cn) == "no-color" {
					if v, ok := firstBoolArg(cn); ok {
						defaults.NoColor = v
					}
				}
			}
		case "walk":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "respect-gitignore":
					if v, ok := firstBoolArg(cn); ok {
						defaults.RespectGitignore = v
					}
				case "exclude":
					defaults.Excludes = append(defaults.Excludes, collectStringArgs(cn)...)
				}
			}
		}
	}

	return defaults, nil
}

func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func firstIntArg(n *document.Node) (int, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func firstStringArg(n *document.Node) (string, bool) {
	if len(n.Arguments) == 0 {
		return "", false
	}
	if s, ok := n.Arguments[0].Value.(string); ok {
		return s, true
	}
	return "", false
}

func firstBoolArg(n *document.Node) (bool, bool) {
	if len(n.Arguments) == 0 {
		return false, false
	}
	if b, ok := n.Arguments[0].Value.(bool); ok {
		return b, true
	}
	return false, false
}

func collectStringArgs(n *document.Node) []string {
	if n == nil {
		return nil
	}
	out := make([]string, 0, len(n.Arguments))
	for _, a := range n.Arguments {
		if s, ok := a.Value.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
