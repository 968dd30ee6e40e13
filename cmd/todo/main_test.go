package main

import (
	"reflect"
	"testing"

	"todo-cli/internal/cli"
)

func TestRewriteOpenArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"todo"},
			want: []string{"todo"},
		},
		{
			name: "list file first token",
			in:   []string{"todo", "groceries.todo"},
			want: []string{"todo", "open", "groceries.todo"},
		},
		{
			name: "list file after value flag",
			in:   []string{"todo", "--glyphs", "ascii", "lists/groceries.todo"},
			want: []string{"todo", "--glyphs", "ascii", "open", "lists/groceries.todo"},
		},
		{
			name: "list file after equals flag",
			in:   []string{"todo", "--lists-dir=/tmp/lists", "groceries.todo"},
			want: []string{"todo", "--lists-dir=/tmp/lists", "open", "groceries.todo"},
		},
		{
			name: "list file after bool flag",
			in:   []string{"todo", "--pretty", "groceries.todo"},
			want: []string{"todo", "--pretty", "open", "groceries.todo"},
		},
		{
			name: "list file after double dash",
			in:   []string{"todo", "--", "groceries.todo"},
			want: []string{"todo", "open", "--", "groceries.todo"},
		},
		{
			name: "open subcommand not rewritten",
			in:   []string{"todo", "open", "groceries.todo"},
			want: []string{"todo", "open", "groceries.todo"},
		},
		{
			name: "show subcommand not rewritten",
			in:   []string{"todo", "show", "groceries.todo"},
			want: []string{"todo", "show", "groceries.todo"},
		},
		{
			name: "bare extension not rewritten",
			in:   []string{"todo", ".todo"},
			want: []string{"todo", ".todo"},
		},
		{
			name: "unknown command not rewritten",
			in:   []string{"todo", "wat"},
			want: []string{"todo", "wat"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteOpenArgs(append([]string(nil), tt.in...))
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("rewriteOpenArgs(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRewriteOpenArgs_ReachesOpenCommand(t *testing.T) {
	t.Parallel()

	for _, in := range [][]string{
		{"todo", "groceries.todo"},
		{"todo", "--glyphs", "ascii", "groceries.todo"},
		{"todo", "--", "groceries.todo"},
		{"todo", "--", "-odd-name.todo"},
	} {
		argv := rewriteOpenArgs(append([]string(nil), in...))
		found, rest, err := cli.NewRootCmd().Find(argv[1:])
		if err != nil {
			t.Fatalf("Find(%q): %v", argv[1:], err)
		}
		if found.Name() != "open" {
			t.Fatalf("expected %q to reach open; got %s with %q", in, found.Name(), rest)
		}
		if last := rest[len(rest)-1]; last != in[len(in)-1] {
			t.Fatalf("expected the file to stay an argument; got %q", rest)
		}
	}
}
