package publish

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"todo-cli/internal/model"
)

// ImportMarkdown builds a document from the lists in a Markdown source.
// Nested lists become children and "[x]" task boxes become ticked nodes. The
// first level-1 heading names the document unless name is given.
func ImportMarkdown(source []byte, name string) *model.Document {
	md := goldmark.New(goldmark.WithExtensions(extension.TaskList))
	root := md.Parser().Parse(text.NewReader(source))

	doc := model.NewDocument(name, "")
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		switch n := n.(type) {
		case *ast.Heading:
			if doc.Name == "" && n.Level == 1 {
				var b strings.Builder
				inlineText(&b, n, source)
				doc.Name = strings.TrimSpace(b.String())
			}
		case *ast.List:
			doc.Items = append(doc.Items, listNodes(n, source)...)
		}
	}
	return doc
}

func listNodes(list *ast.List, source []byte) []model.Node {
	var out []model.Node
	for li := list.FirstChild(); li != nil; li = li.NextSibling() {
		if _, ok := li.(*ast.ListItem); !ok {
			continue
		}
		var node model.Node
		var title []string
		for c := li.FirstChild(); c != nil; c = c.NextSibling() {
			switch c := c.(type) {
			case *ast.List:
				node.Children = append(node.Children, listNodes(c, source)...)
			default:
				if cb, ok := c.FirstChild().(*extast.TaskCheckBox); ok {
					node.Ticked = cb.IsChecked
				}
				var b strings.Builder
				inlineText(&b, c, source)
				if t := strings.TrimSpace(b.String()); t != "" {
					title = append(title, t)
				}
			}
		}
		node.Title = strings.Join(title, " ")
		out = append(out, node)
	}
	return out
}

// inlineText writes the plain text of n's inline children, leaving out the
// task checkbox.
func inlineText(b *strings.Builder, n ast.Node, source []byte) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *extast.TaskCheckBox:
		case *ast.Text:
			b.Write(c.Segment.Value(source))
			if c.SoftLineBreak() || c.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(c.Value)
		default:
			inlineText(b, c, source)
		}
	}
}
