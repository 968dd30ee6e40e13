package publish

import (
	"bytes"
	"fmt"
	"strings"

	"todo-cli/internal/model"
)

type RenderOptions struct {
	// OmitProgress drops the progress line under the heading.
	OmitProgress bool
	// Indent is the per-level indentation; defaults to two spaces.
	Indent string
}

// RenderMarkdown renders doc as a task list under a level-1 heading, one
// list item per node with nesting preserved.
func RenderMarkdown(doc *model.Document, opt RenderOptions) string {
	if doc == nil {
		return ""
	}
	indent := opt.Indent
	if indent == "" {
		indent = "  "
	}

	var buf bytes.Buffer
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}

	name := strings.TrimSpace(doc.Name)
	if name == "" {
		name = "Untitled"
	}
	writeLn("# " + inline(name))
	writeLn("")
	if !opt.OmitProgress {
		ticked, total := doc.Progress()
		writeLn(fmt.Sprintf("Progress: %d/%d (%d%%)", ticked, total, doc.Percent()))
		writeLn("")
	}
	if len(doc.Items) == 0 {
		writeLn("_(empty)_")
		return buf.String()
	}
	writeNodes(&buf, doc.Items, 0, indent)
	return buf.String()
}

func writeNodes(buf *bytes.Buffer, nodes []model.Node, depth int, indent string) {
	for _, n := range nodes {
		box := "[ ]"
		if n.Ticked {
			box = "[x]"
		}
		buf.WriteString(strings.Repeat(indent, depth))
		buf.WriteString("- " + box + " " + inline(n.Title) + "\n")
		writeNodes(buf, n.Children, depth+1, indent)
	}
}

// inline keeps a title on one line.
func inline(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}
