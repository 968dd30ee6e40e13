package cursor

import (
	"strconv"
	"strings"

	"todo-cli/internal/model"
)

// Path is the index stack from the document's top level down to the selected
// node. It always holds at least one entry.
type Path struct {
	idx []int
}

// New returns a path selecting the first top-level node.
func New() *Path {
	return &Path{idx: []int{0}}
}

// FromIndices builds a path from explicit indices; an empty slice yields [0].
func FromIndices(indices ...int) *Path {
	p := New()
	p.Set(indices)
	return p
}

// Depth is the number of entries, 1 for a top-level selection.
func (p *Path) Depth() int { return len(p.idx) }

// Last is the selected index within the current list.
func (p *Path) Last() int { return p.idx[len(p.idx)-1] }

// SetLast moves the selection within the current list.
func (p *Path) SetLast(i int) { p.idx[len(p.idx)-1] = i }

// At returns the entry at depth d (0-based).
func (p *Path) At(d int) (int, error) {
	if d < 0 || d >= len(p.idx) {
		return 0, DepthError{Depth: d, Index: d, Len: len(p.idx)}
	}
	return p.idx[d], nil
}

// Indices returns a copy of the entries.
func (p *Path) Indices() []int {
	out := make([]int, len(p.idx))
	copy(out, p.idx)
	return out
}

// Reset goes back to [0].
func (p *Path) Reset() {
	p.idx = append(p.idx[:0], 0)
}

// Set replaces the entries; an empty slice resets to [0].
func (p *Path) Set(indices []int) {
	p.Reset()
	if len(indices) == 0 {
		return
	}
	p.idx = append(p.idx[:0], indices...)
}

// Push descends one level, selecting index in the child list.
func (p *Path) Push(index int) {
	p.idx = append(p.idx, index)
}

// Pop removes and returns the deepest entry.
func (p *Path) Pop() (int, error) {
	if len(p.idx) <= 1 {
		return 0, MinDepthError{}
	}
	last := p.idx[len(p.idx)-1]
	p.idx = p.idx[:len(p.idx)-1]
	return last, nil
}

// Equal reports whether p designates exactly the node at indices.
func (p *Path) Equal(indices []int) bool {
	if len(indices) != len(p.idx) {
		return false
	}
	for i := range indices {
		if indices[i] != p.idx[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether indices is an ancestor-or-self of the selected node.
func (p *Path) HasPrefix(indices []int) bool {
	if len(indices) > len(p.idx) {
		return false
	}
	for i := range indices {
		if indices[i] != p.idx[i] {
			return false
		}
	}
	return true
}

// List resolves the sibling list the last entry indexes into. The returned
// pointer aliases the tree and is only valid until the next structural change.
func (p *Path) List(roots *[]model.Node) (*[]model.Node, error) {
	list := roots
	for d := 0; d < len(p.idx)-1; d++ {
		i := p.idx[d]
		if i < 0 || i >= len(*list) {
			return nil, DepthError{Depth: d, Index: i, Len: len(*list)}
		}
		list = &(*list)[i].Children
	}
	return list, nil
}

// Node resolves the selected node, or nil when the current list is empty.
func (p *Path) Node(roots *[]model.Node) (*model.Node, error) {
	list, err := p.List(roots)
	if err != nil {
		return nil, err
	}
	last := p.Last()
	if len(*list) == 0 {
		return nil, nil
	}
	if last < 0 || last >= len(*list) {
		return nil, DepthError{Depth: len(p.idx) - 1, Index: last, Len: len(*list)}
	}
	return &(*list)[last], nil
}

// MoveDown advances the last entry by n, wrapping over length.
func (p *Path) MoveDown(n, length int) {
	if length <= 0 {
		return
	}
	p.SetLast(wrap(p.Last()+n%length, length))
}

// MoveUp retreats the last entry by n, wrapping over length.
func (p *Path) MoveUp(n, length int) {
	if length <= 0 {
		return
	}
	p.SetLast(wrap(p.Last()-n%length, length))
}

func wrap(i, length int) int {
	i %= length
	if i < 0 {
		i += length
	}
	return i
}

// Goto moves the last entry to a 1-based position. A '-' in the input counts
// from the end ("-1" is the last item). Anything else is rejected and the path
// is left untouched.
func (p *Path) Goto(input string, length int) error {
	s := strings.TrimSpace(input)
	fromEnd := false
	if i := strings.IndexByte(s, '-'); i >= 0 {
		fromEnd = true
		s = s[:i] + s[i+1:]
	}
	num, err := strconv.Atoi(s)
	if err != nil {
		return InvalidInputError{Input: input, Reason: "not a number"}
	}
	if num <= 0 {
		return InvalidInputError{Input: input, Reason: "positions start at 1"}
	}
	if num > length {
		return InvalidInputError{Input: input, Reason: "out of range (" + strconv.Itoa(length) + " items)"}
	}
	if fromEnd {
		p.SetLast(length - num)
	} else {
		p.SetLast(num - 1)
	}
	return nil
}

func (p *Path) String() string {
	parts := make([]string, len(p.idx))
	for i, v := range p.idx {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Clamp repairs the path against roots after the tree was replaced: each
// entry is clamped to its list and the path is cut where a list is empty.
// The path never drops below depth 1.
func (p *Path) Clamp(roots []model.Node) {
	list := roots
	for d := 0; d < len(p.idx); d++ {
		if len(list) == 0 {
			if d == 0 {
				p.Reset()
			} else {
				p.idx = p.idx[:d]
			}
			return
		}
		if p.idx[d] < 0 {
			p.idx[d] = 0
		}
		if p.idx[d] >= len(list) {
			p.idx[d] = len(list) - 1
		}
		list = list[p.idx[d]].Children
	}
}
