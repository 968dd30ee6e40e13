package model

import "strings"

// Node is one outline entry. Children are owned by value, so a tree can never
// contain a cycle.
type Node struct {
	Ticked   bool   `toml:"ticked_off" json:"ticked" yaml:"ticked"`
	Title    string `toml:"title" json:"title" yaml:"title"`
	Children []Node `toml:"contents" json:"children,omitempty" yaml:"children,omitempty"`
}

// Document is a named, file-backed forest of nodes. There is no synthetic root:
// the top level of the document is Items.
type Document struct {
	Name string `toml:"name" json:"name" yaml:"name"`
	// Path is re-derived from the file location on load and never serialized.
	Path  string `toml:"-" json:"path,omitempty" yaml:"-"`
	Items []Node `toml:"contents" json:"items" yaml:"items"`
}

func NewNode(title string) Node {
	return Node{Title: title}
}

func NewDocument(name, path string) *Document {
	return &Document{
		Name:  strings.TrimSpace(name),
		Path:  path,
		Items: []Node{},
	}
}

func (n Node) HasChildren() bool { return len(n.Children) > 0 }

// Clone returns a deep copy of n.
func (n Node) Clone() Node {
	out := Node{Ticked: n.Ticked, Title: n.Title}
	if n.Children != nil {
		out.Children = make([]Node, len(n.Children))
		for i, ch := range n.Children {
			out.Children[i] = ch.Clone()
		}
	}
	return out
}

// Count returns the number of nodes in the subtree rooted at n, n included.
func (n Node) Count() int {
	c := 1
	for _, ch := range n.Children {
		c += ch.Count()
	}
	return c
}

// Progress reports ticked/total over the top-level items only.
func (d *Document) Progress() (ticked, total int) {
	if d == nil {
		return 0, 0
	}
	for _, it := range d.Items {
		if it.Ticked {
			ticked++
		}
	}
	return ticked, len(d.Items)
}

// Percent is the rounded-down share of ticked top-level items (0 for an empty document).
func (d *Document) Percent() int {
	ticked, total := d.Progress()
	if total == 0 {
		return 0
	}
	return 100 * ticked / total
}

// Titles returns the titles of a sibling list in order.
func Titles(nodes []Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Title)
	}
	return out
}

// Equal reports whether two sibling lists hold the same trees. A nil child
// list and an empty one are equal.
func Equal(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Ticked != b[i].Ticked || a[i].Title != b[i].Title {
			return false
		}
		if !Equal(a[i].Children, b[i].Children) {
			return false
		}
	}
	return true
}
