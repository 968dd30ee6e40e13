package tui

import (
	"github.com/charmbracelet/bubbles/list"

	"todo-cli/internal/store"
)

type pickerAction int

const (
	pickOpen pickerAction = iota
	pickNewList
	pickOpenOther
)

// candidateItem is one row of the document picker.
type candidateItem struct {
	action    pickerAction
	candidate store.Candidate
}

func (i candidateItem) FilterValue() string {
	switch i.action {
	case pickNewList:
		return "<New List>"
	case pickOpenOther:
		return "<Open Other List>"
	}
	return i.candidate.Display
}

func (i candidateItem) Title() string { return i.FilterValue() }

func (i candidateItem) Description() string {
	switch i.action {
	case pickNewList:
		return "create an empty list"
	case pickOpenOther:
		return "open a .todo file by path"
	}
	if i.candidate.Scope == store.ScopeRecent {
		return "recent"
	}
	return i.candidate.Path
}

type location int

const (
	locationCwd location = iota
	locationListsDir
	locationElsewhere
)

// locationItem is one choice of where a new list is created.
type locationItem struct {
	where location
	dir   string
}

func (i locationItem) FilterValue() string { return i.Title() }

func (i locationItem) Title() string {
	switch i.where {
	case locationCwd:
		return "Current directory"
	case locationListsDir:
		return "Lists directory"
	default:
		return "Somewhere else…"
	}
}

func (i locationItem) Description() string {
	if i.where == locationElsewhere {
		return "type a directory"
	}
	return store.ContractHome(i.dir)
}

func pickerItems(cands []store.Candidate) []list.Item {
	items := make([]list.Item, 0, len(cands)+2)
	for _, c := range cands {
		items = append(items, candidateItem{action: pickOpen, candidate: c})
	}
	items = append(items,
		candidateItem{action: pickNewList},
		candidateItem{action: pickOpenOther},
	)
	return items
}

func locationItems(cwd, listsDir string) []list.Item {
	return []list.Item{
		locationItem{where: locationCwd, dir: cwd},
		locationItem{where: locationListsDir, dir: listsDir},
		locationItem{where: locationElsewhere},
	}
}

func newList(title string, items []list.Item) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	// The surrounding view draws its own heading.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("list", "lists")
	// esc is "back/cancel" here, not quit.
	l.KeyMap.Quit.SetKeys("q")
	return l
}
