package viewport

import (
	"todo-cli/internal/cursor"
	"todo-cli/internal/model"
)

// Scroller keeps the top-level scroll offset between repaints. The offset is
// only recomputed after Invalidate, on a change of amount, or when the
// selected row would otherwise fall outside the window.
type Scroller struct {
	Mode ExpandMode

	offset int
	amount int
	dirty  bool
}

func NewScroller(mode ExpandMode) *Scroller {
	return &Scroller{Mode: mode, dirty: true}
}

// Invalidate marks the offset stale, typically after a structural change.
func (s *Scroller) Invalidate() { s.dirty = true }

// Offset returns the number of top-level items to skip for a window of
// amount rows.
func (s *Scroller) Offset(roots []model.Node, cur *cursor.Path, amount int) int {
	off, _ := s.Window(roots, cur, amount)
	return off
}

// Window returns the offset together with the rows to paint.
func (s *Scroller) Window(roots []model.Node, cur *cursor.Path, amount int) (int, []Line) {
	if amount != s.amount {
		s.amount = amount
		s.dirty = true
	}
	if s.offset >= len(roots) {
		s.dirty = true
	}
	if !s.dirty {
		lines := Layout(roots, cur, s.offset, amount, s.Mode)
		if SelectedRow(lines) >= 0 || len(roots) == 0 {
			return s.offset, lines
		}
	}

	s.offset = ComputeOffset(roots, cur, amount, s.Mode)
	s.dirty = false
	lines := Layout(roots, cur, s.offset, amount, s.Mode)
	if SelectedRow(lines) < 0 && cur != nil {
		// A very tall item above the selection pushed it out; start at the
		// selected top-level item instead.
		if first, err := cur.At(0); err == nil && first < len(roots) && first != s.offset {
			s.offset = first
			lines = Layout(roots, cur, s.offset, amount, s.Mode)
		}
	}
	return s.offset, lines
}

// ComputeOffset walks back from the selected top-level item, consuming
// whole-item heights while the running total stays under half the window
// minus a small reserve, and skips everything before the last consumed item.
func ComputeOffset(roots []model.Node, cur *cursor.Path, amount int, mode ExpandMode) int {
	if cur == nil || len(roots) == 0 {
		return 0
	}
	first, err := cur.At(0)
	if err != nil || first <= 0 {
		return 0
	}
	if first >= len(roots) {
		first = len(roots) - 1
	}

	total, consumed := 0, 0
	for consumed < first {
		i := first - consumed
		h := Height(roots[i], []int{i}, cur, mode)
		if amount >= h && total < amount/2-h-2 {
			total += h
		} else {
			break
		}
		consumed++
	}
	if consumed >= first {
		return 0
	}
	return first - consumed
}
