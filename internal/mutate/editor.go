package mutate

import (
	"slices"

	"todo-cli/internal/cursor"
	"todo-cli/internal/model"
)

// Editor applies structural edits to a document and keeps the cursor pointing
// at a sensible node afterwards. It holds exclusive access to the tree for the
// duration of one call.
type Editor struct {
	Doc     *model.Document
	Cur     *cursor.Path
	History *Slot
}

// Result reports what an operation did. Changed means document content
// changed; Relayout means the viewport must be recomputed.
type Result struct {
	Changed  bool
	Relayout bool
}

var (
	changed = Result{Changed: true, Relayout: true}
	noop    = Result{}
)

type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

func (e Editor) list() (*[]model.Node, error) {
	return e.Cur.List(&e.Doc.Items)
}

// selected resolves the current list and the selected index, failing when
// there is nothing to act on.
func (e Editor) selected(op string) (*[]model.Node, int, error) {
	list, err := e.list()
	if err != nil {
		return nil, 0, err
	}
	if len(*list) == 0 {
		return nil, 0, NoSelectionError{Op: op}
	}
	i := e.Cur.Last()
	if i < 0 || i >= len(*list) {
		return nil, 0, cursor.DepthError{Depth: e.Cur.Depth() - 1, Index: i, Len: len(*list)}
	}
	return list, i, nil
}

func clampIndex(i, length int) int {
	if i < 0 {
		return 0
	}
	if i > length {
		return length
	}
	return i
}

// InsertBefore inserts a node at the current index; the cursor stays on it.
func (e Editor) InsertBefore(title string) (Result, error) {
	list, err := e.list()
	if err != nil {
		return noop, err
	}
	i := clampIndex(e.Cur.Last(), len(*list))
	*list = slices.Insert(*list, i, model.NewNode(title))
	e.Cur.SetLast(i)
	e.History.forgetOrigin()
	return changed, nil
}

// AppendAfter inserts a node after the current one and selects it.
func (e Editor) AppendAfter(title string) (Result, error) {
	list, err := e.list()
	if err != nil {
		return noop, err
	}
	i := clampIndex(e.Cur.Last()+1, len(*list))
	*list = slices.Insert(*list, i, model.NewNode(title))
	e.Cur.SetLast(i)
	e.History.forgetOrigin()
	return changed, nil
}

// InsertChild appends a node to the selected node's children and descends to it.
func (e Editor) InsertChild(title string) (Result, error) {
	list, i, err := e.selected("insert child")
	if err != nil {
		return noop, err
	}
	parent := &(*list)[i]
	parent.Children = append(parent.Children, model.NewNode(title))
	e.Cur.Push(len(parent.Children) - 1)
	e.History.forgetOrigin()
	return changed, nil
}

// DeleteCurrent moves the selected node into the history slot, replacing
// whatever was there.
func (e Editor) DeleteCurrent() (Result, error) {
	list, i, err := e.selected("delete")
	if err != nil {
		return noop, err
	}
	from := e.Cur.Indices()
	node := (*list)[i]
	*list = slices.Delete(*list, i, i+1)

	if i >= len(*list) {
		if len(*list) == 0 {
			if e.Cur.Depth() > 1 {
				_, _ = e.Cur.Pop()
			}
		} else {
			e.Cur.SetLast(len(*list) - 1)
		}
	}
	e.History.Put(node, from, e.Cur.Indices())
	return changed, nil
}

// RestoreFromHistory re-inserts the buffered node and empties the slot. When
// the cursor has not moved since the delete, the node goes back to its exact
// original position; otherwise it is inserted at the current index.
func (e Editor) RestoreFromHistory() (Result, error) {
	if !e.History.Occupied() {
		return noop, nil
	}
	if len(e.History.from) > 0 && e.Cur.Equal(e.History.after) {
		origin := cursor.FromIndices(e.History.from...)
		if list, err := origin.List(&e.Doc.Items); err == nil {
			node, _ := e.History.Take()
			i := clampIndex(origin.Last(), len(*list))
			*list = slices.Insert(*list, i, node)
			origin.SetLast(i)
			e.Cur.Set(origin.Indices())
			return changed, nil
		}
	}

	list, err := e.list()
	if err != nil {
		return noop, err
	}
	node, _ := e.History.Take()
	i := clampIndex(e.Cur.Last(), len(*list))
	*list = slices.Insert(*list, i, node)
	e.Cur.SetLast(i)
	return changed, nil
}

// MoveSibling swaps the selected node with its neighbour. At either end the
// node rotates to the opposite end of the list instead.
func (e Editor) MoveSibling(dir Direction) (Result, error) {
	list, err := e.list()
	if err != nil {
		return noop, err
	}
	n := len(*list)
	if n < 2 {
		return noop, nil
	}
	i := e.Cur.Last()
	if i < 0 || i >= n {
		return noop, cursor.DepthError{Depth: e.Cur.Depth() - 1, Index: i, Len: n}
	}
	l := *list
	switch dir {
	case Up:
		if i > 0 {
			l[i], l[i-1] = l[i-1], l[i]
			e.Cur.SetLast(i - 1)
		} else {
			node := l[0]
			copy(l, l[1:])
			l[n-1] = node
			e.Cur.SetLast(n - 1)
		}
	case Down:
		if i < n-1 {
			l[i], l[i+1] = l[i+1], l[i]
			e.Cur.SetLast(i + 1)
		} else {
			node := l[n-1]
			copy(l[1:], l[:n-1])
			l[0] = node
			e.Cur.SetLast(0)
		}
	}
	e.History.forgetOrigin()
	return changed, nil
}

// ReparentOut moves the selected node out of its parent, placing it right
// after the parent. It needs an earlier sibling of the parent to exist.
func (e Editor) ReparentOut() (Result, error) {
	depth := e.Cur.Depth()
	if depth <= 1 {
		return noop, nil
	}
	parentIdx, err := e.Cur.At(depth - 2)
	if err != nil {
		return noop, err
	}
	if parentIdx <= 0 {
		return noop, nil
	}
	list, err := e.list()
	if err != nil {
		return noop, err
	}
	if len(*list) == 0 {
		return noop, nil
	}
	i := e.Cur.Last()
	if i < 0 || i >= len(*list) {
		return noop, cursor.DepthError{Depth: depth - 1, Index: i, Len: len(*list)}
	}

	node := (*list)[i]
	*list = slices.Delete(*list, i, i+1)
	_, _ = e.Cur.Pop()
	outer, err := e.list()
	if err != nil {
		return noop, err
	}
	at := parentIdx + 1
	*outer = slices.Insert(*outer, at, node)
	e.Cur.SetLast(at)
	e.History.forgetOrigin()
	return changed, nil
}

// ReparentIn makes the selected node the last child of its preceding sibling.
func (e Editor) ReparentIn() (Result, error) {
	list, err := e.list()
	if err != nil {
		return noop, err
	}
	if len(*list) == 0 {
		return noop, nil
	}
	i := e.Cur.Last()
	if i <= 0 {
		return noop, nil
	}
	if i >= len(*list) {
		return noop, cursor.DepthError{Depth: e.Cur.Depth() - 1, Index: i, Len: len(*list)}
	}

	node := (*list)[i]
	*list = slices.Delete(*list, i, i+1)
	prev := &(*list)[i-1]
	prev.Children = append(prev.Children, node)
	e.Cur.SetLast(i - 1)
	e.Cur.Push(len(prev.Children) - 1)
	e.History.forgetOrigin()
	return changed, nil
}

// Toggle flips the selected node's ticked state.
func (e Editor) Toggle() (Result, error) {
	list, i, err := e.selected("toggle")
	if err != nil {
		return noop, err
	}
	(*list)[i].Ticked = !(*list)[i].Ticked
	return Result{Changed: true}, nil
}

// Rename sets the selected node's title.
func (e Editor) Rename(title string) (Result, error) {
	list, i, err := e.selected("rename")
	if err != nil {
		return noop, err
	}
	if (*list)[i].Title == title {
		return noop, nil
	}
	(*list)[i].Title = title
	return Result{Changed: true}, nil
}

// Selected returns a copy of the selected node.
func (e Editor) Selected() (model.Node, bool) {
	n, err := e.Cur.Node(&e.Doc.Items)
	if err != nil || n == nil {
		return model.Node{}, false
	}
	return *n, true
}

// ListLen is the length of the current list (0 when the path is stale).
func (e Editor) ListLen() int {
	list, err := e.list()
	if err != nil {
		return 0
	}
	return len(*list)
}
