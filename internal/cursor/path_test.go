package cursor

import (
	"errors"
	"testing"

	"todo-cli/internal/model"
)

func TestMoveDownUp_WrapInvariant(t *testing.T) {
	t.Parallel()

	for length := 1; length <= 7; length++ {
		for start := 0; start < length; start++ {
			for n := 0; n <= 3*length; n++ {
				p := FromIndices(start)
				p.MoveDown(n, length)
				if got := p.Last(); got < 0 || got >= length {
					t.Fatalf("len=%d start=%d n=%d: move down left range: %d", length, start, n, got)
				}
				p.MoveUp(n, length)
				if got := p.Last(); got != start {
					t.Fatalf("len=%d start=%d n=%d: expected round trip to %d; got %d", length, start, n, start, got)
				}
			}
		}
	}
}

func TestMoveDownUp_Wraps(t *testing.T) {
	t.Parallel()

	p := FromIndices(2)
	p.MoveDown(1, 3)
	if p.Last() != 0 {
		t.Fatalf("expected wrap to 0; got %d", p.Last())
	}
	p.MoveUp(1, 3)
	if p.Last() != 2 {
		t.Fatalf("expected wrap to 2; got %d", p.Last())
	}
}

func TestMoveOnEmptyList_NoOp(t *testing.T) {
	t.Parallel()

	p := FromIndices(0)
	p.MoveDown(1, 0)
	p.MoveUp(5, 0)
	if p.Last() != 0 {
		t.Fatalf("expected no-op on empty list; got %d", p.Last())
	}
}

func TestPushPop(t *testing.T) {
	t.Parallel()

	// a(b, c), cursor at a
	roots := []model.Node{{Title: "a", Children: []model.Node{{Title: "b"}, {Title: "c"}}}}
	p := New()
	p.Push(0)
	if p.Depth() != 2 {
		t.Fatalf("expected depth 2; got %d", p.Depth())
	}
	n, err := p.Node(&roots)
	if err != nil {
		t.Fatalf("Node: %v", err)
	}
	if n == nil || n.Title != "b" {
		t.Fatalf("expected b selected; got %#v", n)
	}

	if _, err := p.Pop(); err != nil {
		t.Fatalf("Pop: %v", err)
	}
	if p.Depth() != 1 {
		t.Fatalf("expected depth 1; got %d", p.Depth())
	}
	n, _ = p.Node(&roots)
	if n == nil || n.Title != "a" {
		t.Fatalf("expected a selected; got %#v", n)
	}

	_, err = p.Pop()
	var minErr MinDepthError
	if !errors.As(err, &minErr) {
		t.Fatalf("expected MinDepthError; got %v", err)
	}
	if p.Depth() != 1 {
		t.Fatalf("expected depth to stay 1; got %d", p.Depth())
	}
}

func TestList_StaleIntermediateIndex(t *testing.T) {
	t.Parallel()

	roots := []model.Node{{Title: "a"}}
	p := FromIndices(3, 0)
	_, err := p.List(&roots)
	var depthErr DepthError
	if !errors.As(err, &depthErr) {
		t.Fatalf("expected DepthError; got %v", err)
	}
	if depthErr.Depth != 0 || depthErr.Index != 3 || depthErr.Len != 1 {
		t.Fatalf("unexpected DepthError fields: %#v", depthErr)
	}
}

func TestList_AliasesTree(t *testing.T) {
	t.Parallel()

	roots := []model.Node{{Title: "a"}}
	p := FromIndices(0, 0)
	list, err := p.List(&roots)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	*list = append(*list, model.NewNode("child"))
	if len(roots[0].Children) != 1 || roots[0].Children[0].Title != "child" {
		t.Fatalf("expected append through resolved list to reach the tree; got %#v", roots)
	}
}

func TestGoto(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		length  int
		start   int
		want    int
		invalid bool
	}{
		{name: "first", input: "1", length: 5, start: 3, want: 0},
		{name: "last", input: "5", length: 5, start: 0, want: 4},
		{name: "minus one is last", input: "-1", length: 5, start: 0, want: 4},
		{name: "minus five is first", input: "-5", length: 5, start: 2, want: 0},
		{name: "surrounding space", input: " 2 ", length: 5, start: 0, want: 1},
		{name: "dash anywhere counts from end", input: "2-", length: 5, start: 0, want: 3},
		{name: "zero", input: "0", length: 5, start: 2, want: 2, invalid: true},
		{name: "too large", input: "6", length: 5, start: 2, want: 2, invalid: true},
		{name: "too large from end", input: "-6", length: 5, start: 2, want: 2, invalid: true},
		{name: "not a number", input: "abc", length: 5, start: 2, want: 2, invalid: true},
		{name: "double dash", input: "--1", length: 5, start: 2, want: 2, invalid: true},
		{name: "empty list", input: "1", length: 0, start: 0, want: 0, invalid: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := FromIndices(tt.start)
			err := p.Goto(tt.input, tt.length)
			var inv InvalidInputError
			if tt.invalid != errors.As(err, &inv) {
				t.Fatalf("Goto(%q) err=%v; invalid=%v", tt.input, err, tt.invalid)
			}
			if got := p.Last(); got != tt.want {
				t.Fatalf("Goto(%q) on %d items: expected index %d; got %d", tt.input, tt.length, tt.want, got)
			}
		})
	}
}

func TestHasPrefixAndEqual(t *testing.T) {
	t.Parallel()

	p := FromIndices(1, 2, 0)
	if !p.HasPrefix([]int{1}) || !p.HasPrefix([]int{1, 2}) || !p.HasPrefix([]int{1, 2, 0}) {
		t.Fatalf("expected ancestors to be prefixes of %s", p)
	}
	if p.HasPrefix([]int{1, 3}) || p.HasPrefix([]int{1, 2, 0, 0}) {
		t.Fatalf("unexpected prefix match for %s", p)
	}
	if !p.Equal([]int{1, 2, 0}) || p.Equal([]int{1, 2}) {
		t.Fatalf("Equal mismatch for %s", p)
	}
}

func TestClamp(t *testing.T) {
	t.Parallel()

	roots := []model.Node{
		{Title: "a", Children: []model.Node{{Title: "b"}, {Title: "c"}}},
		{Title: "d"},
	}
	tests := []struct {
		name  string
		start []int
		roots []model.Node
		want  []int
	}{
		{name: "valid path untouched", start: []int{0, 1}, roots: roots, want: []int{0, 1}},
		{name: "clamps each level", start: []int{0, 9}, roots: roots, want: []int{0, 1}},
		{name: "clamps top level", start: []int{7}, roots: roots, want: []int{1}},
		{name: "cuts where children vanished", start: []int{1, 3, 2}, roots: roots, want: []int{1}},
		{name: "empty document resets", start: []int{2, 1}, roots: nil, want: []int{0}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := FromIndices(tt.start...)
			p.Clamp(tt.roots)
			if !p.Equal(tt.want) {
				t.Fatalf("expected %v; got %s", tt.want, p)
			}
		})
	}
}
