package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type view int

const (
	viewEditor view = iota
	viewPicker
	viewLocation
	viewHelp
)

func viewToString(v view) string {
	switch v {
	case viewEditor:
		return "editor"
	case viewPicker:
		return "picker"
	case viewLocation:
		return "location"
	case viewHelp:
		return "help"
	default:
		return "unknown"
	}
}

type modalKind int

const (
	modalNone modalKind = iota
	modalInsertBefore
	modalAppendAfter
	modalInsertChild
	modalEditTitle
	modalGoto
	modalSaveAs
	modalRenameDocument
	modalNewListName
	modalNewListDir
	modalOpenOther
	modalConfirmQuit
	modalConfirmSwitch
	modalConfirmReload
	modalConfirmDeleteFile
)

func (k modalKind) isConfirm() bool {
	switch k {
	case modalConfirmQuit, modalConfirmSwitch, modalConfirmReload, modalConfirmDeleteFile:
		return true
	}
	return false
}

func (k modalKind) prompt() string {
	switch k {
	case modalInsertBefore:
		return "Insert before: "
	case modalAppendAfter:
		return "Append after: "
	case modalInsertChild:
		return "New child: "
	case modalEditTitle:
		return "Title: "
	case modalGoto:
		return "Go to #: "
	case modalSaveAs:
		return "Save as: "
	case modalRenameDocument:
		return "List name: "
	case modalNewListName:
		return "New list name: "
	case modalNewListDir:
		return "Directory: "
	case modalOpenOther:
		return "Open file: "
	}
	return ""
}

type confirmModalFocus int

const (
	confirmFocusConfirm confirmModalFocus = iota
	confirmFocusCancel
)

// tickMsg drives the minibuffer auto-clear.
type tickMsg struct{}

// bellMsg is what the bell command reports once it has rung.
type bellMsg struct{}

const (
	tickEvery                = 500 * time.Millisecond
	minibufferAutoClearAfter = 4 * time.Second
)

func tick() tea.Cmd {
	return tea.Tick(tickEvery, func(time.Time) tea.Msg { return tickMsg{} })
}
