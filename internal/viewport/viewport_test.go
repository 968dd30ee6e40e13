package viewport

import (
	"fmt"
	"reflect"
	"testing"

	"todo-cli/internal/cursor"
	"todo-cli/internal/model"
)

func flat(n int) []model.Node {
	out := make([]model.Node, n)
	for i := range out {
		out[i] = model.NewNode(fmt.Sprintf("item %d", i))
	}
	return out
}

func nested() []model.Node {
	return []model.Node{
		{Title: "a", Children: []model.Node{
			{Title: "b"},
			{Title: "c", Children: []model.Node{{Title: "c1"}}},
		}},
		{Title: "d", Children: []model.Node{{Title: "e"}}},
	}
}

func titles(lines []Line) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.Title)
	}
	return out
}

func TestHeight(t *testing.T) {
	t.Parallel()

	roots := nested()
	tests := []struct {
		name string
		mode ExpandMode
		cur  []int
		idx  int
		want int
	}{
		{name: "all mode counts the whole subtree", mode: ExpandAll, cur: []int{1}, idx: 0, want: 4},
		{name: "path mode collapses off-path nodes", mode: ExpandPath, cur: []int{1}, idx: 0, want: 1},
		{name: "path mode expands the selected node", mode: ExpandPath, cur: []int{0}, idx: 0, want: 3},
		{name: "path mode expands along the path", mode: ExpandPath, cur: []int{0, 1}, idx: 0, want: 4},
		{name: "single child", mode: ExpandAll, cur: []int{0}, idx: 1, want: 2},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Height(roots[tt.idx], []int{tt.idx}, cursor.FromIndices(tt.cur...), tt.mode)
			if got != tt.want {
				t.Fatalf("expected height %d; got %d", tt.want, got)
			}
		})
	}
}

func TestLayout_PathExpansion(t *testing.T) {
	t.Parallel()

	cur := cursor.FromIndices(0, 1)
	lines := Layout(nested(), cur, 0, 20, ExpandPath)
	if got, want := titles(lines), []string{"a", "b", "c", "c1", "d"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v; got %v", want, got)
	}
	if row := SelectedRow(lines); row != 2 {
		t.Fatalf("expected c selected at row 2; got %d", row)
	}
	if lines[2].Depth != 1 || !lines[2].Expanded {
		t.Fatalf("expected c at depth 1, expanded; got %+v", lines[2])
	}
	if lines[4].Expanded || !lines[4].HasChildren {
		t.Fatalf("expected d collapsed with children; got %+v", lines[4])
	}
	if !reflect.DeepEqual(lines[3].Path, []int{0, 1, 0}) {
		t.Fatalf("expected c1 path [0 1 0]; got %v", lines[3].Path)
	}
}

func TestLayout_AllAndBudget(t *testing.T) {
	t.Parallel()

	cur := cursor.FromIndices(1)
	lines := Layout(nested(), cur, 0, 20, ExpandAll)
	if got, want := titles(lines), []string{"a", "b", "c", "c1", "d", "e"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v; got %v", want, got)
	}

	lines = Layout(nested(), cur, 0, 3, ExpandAll)
	if got, want := titles(lines), []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected budget to cut at 3 rows; got %v", got)
	}

	lines = Layout(nested(), cur, 1, 20, ExpandAll)
	if got, want := titles(lines), []string{"d", "e"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected offset to skip a; got %v", got)
	}
	if SelectedRow(lines) != 0 {
		t.Fatalf("expected d selected")
	}

	if Layout(nested(), cur, 5, 20, ExpandAll) != nil {
		t.Fatalf("expected nil for offset past the end")
	}
}

func TestComputeOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		roots  []model.Node
		cur    []int
		amount int
		want   int
	}{
		{name: "near the top", roots: flat(20), cur: []int{1}, amount: 10, want: 0},
		{name: "first item", roots: flat(20), cur: []int{0}, amount: 10, want: 0},
		{name: "keeps a few items above", roots: flat(20), cur: []int{15}, amount: 10, want: 13},
		{name: "larger window keeps more above", roots: flat(40), cur: []int{30}, amount: 30, want: 18},
		{name: "tiny window goes negative without wrapping", roots: flat(20), cur: []int{7}, amount: 4, want: 7},
		{name: "empty document", roots: nil, cur: []int{0}, amount: 10, want: 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ComputeOffset(tt.roots, cursor.FromIndices(tt.cur...), tt.amount, ExpandPath)
			if got != tt.want {
				t.Fatalf("expected offset %d; got %d", tt.want, got)
			}
		})
	}
}

func TestComputeOffset_TallItemStopsWalk(t *testing.T) {
	t.Parallel()

	roots := flat(10)
	roots[5].Children = flat(8)
	// With ExpandAll item 5 is 9 rows tall, over the half-window budget.
	got := ComputeOffset(roots, cursor.FromIndices(6), 12, ExpandAll)
	// Item 6 fits (1 < 12/2-1-2), item 5 does not.
	if got != 5 {
		t.Fatalf("expected offset 5; got %d", got)
	}
}

func TestScroller_RecomputesOnlyWhenNeeded(t *testing.T) {
	t.Parallel()

	roots := flat(20)
	cur := cursor.FromIndices(15)
	s := NewScroller(ExpandPath)

	if got := s.Offset(roots, cur, 10); got != 13 {
		t.Fatalf("expected initial offset 13; got %d", got)
	}

	cur.SetLast(16)
	if got := s.Offset(roots, cur, 10); got != 13 {
		t.Fatalf("expected offset to stay 13 while selection is visible; got %d", got)
	}

	cur.SetLast(5)
	if got := s.Offset(roots, cur, 10); got != 3 {
		t.Fatalf("expected recompute to 3 when selection left the window; got %d", got)
	}

	cur.SetLast(6)
	s.Invalidate()
	if got := s.Offset(roots, cur, 10); got != 4 {
		t.Fatalf("expected recompute to 4 after Invalidate; got %d", got)
	}

	if got := s.Offset(roots, cur, 4); got != 6 {
		t.Fatalf("expected recompute to 6 after resize; got %d", got)
	}
}

func TestScroller_WindowAlwaysShowsSelection(t *testing.T) {
	t.Parallel()

	roots := flat(6)
	roots[2].Children = flat(30)
	cur := cursor.FromIndices(3)
	s := NewScroller(ExpandAll)

	_, lines := s.Window(roots, cur, 10)
	if SelectedRow(lines) < 0 {
		t.Fatalf("expected selection visible; got %v", titles(lines))
	}
}

func TestParseExpandMode(t *testing.T) {
	t.Parallel()

	if m, err := ParseExpandMode("ALL"); err != nil || m != ExpandAll {
		t.Fatalf("expected all; got %v, %v", m, err)
	}
	if m, err := ParseExpandMode(""); err != nil || m != ExpandPath {
		t.Fatalf("expected path default; got %v, %v", m, err)
	}
	if _, err := ParseExpandMode("sideways"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}
