package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap is the editor key map. Every binding maps to one engine or session
// command.
type keyMap struct {
	Down        key.Binding
	Up          key.Binding
	Leave       key.Binding
	Enter       key.Binding
	First       key.Binding
	Last        key.Binding
	Goto        key.Binding
	Toggle      key.Binding
	InsertChild key.Binding
	Insert      key.Binding
	Append      key.Binding
	Delete      key.Binding
	Undo        key.Binding
	MoveUp      key.Binding
	MoveDown    key.Binding
	Outdent     key.Binding
	Indent      key.Binding
	EditEnd     key.Binding
	EditStart   key.Binding
	Wipe        key.Binding
	Yank        key.Binding
	Reload      key.Binding
	Save        key.Binding
	SaveAs      key.Binding
	Switch      key.Binding
	DeleteFile  key.Binding
	Rename      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Down:        key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Up:          key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Leave:       key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "to parent")),
		Enter:       key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "into children")),
		First:       key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "first")),
		Last:        key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "last")),
		Goto:        key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "go to #")),
		Toggle:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "tick")),
		InsertChild: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "new child")),
		Insert:      key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "insert before")),
		Append:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "append after")),
		Delete:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Undo:        key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo delete")),
		MoveUp:      key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "move up")),
		MoveDown:    key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "move down")),
		Outdent:     key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "outdent")),
		Indent:      key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "indent")),
		EditEnd:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		EditStart:   key.NewBinding(key.WithKeys("E"), key.WithHelp("E", "edit from start")),
		Wipe:        key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "replace title")),
		Yank:        key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy title")),
		Reload:      key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reload")),
		Save:        key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		SaveAs:      key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "save as")),
		Switch:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "change list")),
		DeleteFile:  key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete file")),
		Rename:      key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "rename list")),
		Help:        key.NewBinding(key.WithKeys("?", "ctrl+h"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("esc", "ctrl+q"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp is the footer line.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Enter, k.Toggle, k.Append, k.Delete, k.Save, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.Leave, k.Enter, k.First, k.Last, k.Goto},
		{k.Toggle, k.InsertChild, k.Insert, k.Append, k.Delete, k.Undo, k.Yank},
		{k.MoveUp, k.MoveDown, k.Outdent, k.Indent, k.EditEnd, k.EditStart, k.Wipe},
		{k.Save, k.SaveAs, k.Reload, k.Rename, k.Switch, k.DeleteFile, k.Quit},
	}
}
