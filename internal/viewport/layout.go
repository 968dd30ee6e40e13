package viewport

import (
	"todo-cli/internal/cursor"
	"todo-cli/internal/model"
)

// Line is one visible row of the outline.
type Line struct {
	Depth       int
	Ticked      bool
	Title       string
	Selected    bool
	HasChildren bool
	Expanded    bool
	Path        []int
}

// Layout emits the visible rows depth-first, starting at top-level item
// offset and stopping after amount rows.
func Layout(roots []model.Node, cur *cursor.Path, offset, amount int, mode ExpandMode) []Line {
	if amount <= 0 || offset >= len(roots) {
		return nil
	}
	if offset < 0 {
		offset = 0
	}
	lines := make([]Line, 0, amount)
	for i := offset; i < len(roots) && len(lines) < amount; i++ {
		lines = emit(lines, roots[i], []int{i}, cur, amount, mode)
	}
	return lines
}

func emit(lines []Line, n model.Node, path []int, cur *cursor.Path, amount int, mode ExpandMode) []Line {
	expanded := n.HasChildren() && mode.Expanded(path, cur)
	p := make([]int, len(path))
	copy(p, path)
	lines = append(lines, Line{
		Depth:       len(path) - 1,
		Ticked:      n.Ticked,
		Title:       n.Title,
		Selected:    cur != nil && cur.Equal(path),
		HasChildren: n.HasChildren(),
		Expanded:    expanded,
		Path:        p,
	})
	if !expanded {
		return lines
	}
	for i, ch := range n.Children {
		if len(lines) >= amount {
			break
		}
		lines = emit(lines, ch, append(path, i), cur, amount, mode)
	}
	return lines
}

// SelectedRow returns the row index of the selected line, or -1.
func SelectedRow(lines []Line) int {
	for i, l := range lines {
		if l.Selected {
			return i
		}
	}
	return -1
}
