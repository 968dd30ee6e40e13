package tui

import (
	"strings"
	"testing"
)

func TestMarkdownStyle_RespectsTUITheme(t *testing.T) {
	t.Setenv("COLORFGBG", "")

	t.Setenv("TODO_TUI_THEME", "light")
	if got := markdownStyle(); got != "light" {
		t.Fatalf("expected light; got %q", got)
	}

	t.Setenv("TODO_TUI_THEME", "dark")
	if got := markdownStyle(); got != "dark" {
		t.Fatalf("expected dark; got %q", got)
	}
}

func TestRenderMarkdown(t *testing.T) {
	t.Setenv("TODO_TUI_THEME", "dark")

	if got := RenderMarkdown("   \n", 40); got != "" {
		t.Fatalf("expected empty output for blank input; got %q", got)
	}

	out := RenderMarkdown("# Groceries\n\n- [x] milk\n- [ ] eggs\n", 40)
	for _, want := range []string{"Groceries", "milk", "eggs"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in rendered output:\n%s", want, out)
		}
	}
	if strings.HasSuffix(out, "\n") {
		t.Fatalf("expected trailing newlines trimmed")
	}
}
