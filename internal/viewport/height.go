package viewport

import (
	"fmt"
	"strings"

	"todo-cli/internal/cursor"
	"todo-cli/internal/model"
)

// ExpandMode decides which nodes show their children.
type ExpandMode int

const (
	// ExpandPath shows children only for nodes on the cursor path, the
	// selected node included. Everything else renders as a single line.
	ExpandPath ExpandMode = iota
	// ExpandAll shows every subtree in full.
	ExpandAll
)

func (m ExpandMode) String() string {
	switch m {
	case ExpandAll:
		return "all"
	default:
		return "path"
	}
}

func ParseExpandMode(s string) (ExpandMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "path":
		return ExpandPath, nil
	case "all":
		return ExpandAll, nil
	default:
		return ExpandPath, fmt.Errorf("invalid expand mode %q (expected path|all)", s)
	}
}

// Expanded reports whether the node at path shows its children.
func (m ExpandMode) Expanded(path []int, cur *cursor.Path) bool {
	if m == ExpandAll {
		return true
	}
	return cur != nil && cur.HasPrefix(path)
}

// Height is the number of rows n occupies when rendered at path: one for
// itself plus the heights of its children when it is expanded.
func Height(n model.Node, path []int, cur *cursor.Path, mode ExpandMode) int {
	h := 1
	if len(n.Children) == 0 || !mode.Expanded(path, cur) {
		return h
	}
	child := make([]int, len(path)+1)
	copy(child, path)
	for i, ch := range n.Children {
		child[len(path)] = i
		h += Height(ch, child, cur, mode)
	}
	return h
}
