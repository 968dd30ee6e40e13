package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/glog"

	"todo-cli/internal/cursor"
	"todo-cli/internal/mutate"
	"todo-cli/internal/store"
)

// bellWriter receives the terminal bell; tests silence it.
var bellWriter io.Writer = os.Stderr

func bell() tea.Cmd {
	return func() tea.Msg {
		_, _ = io.WriteString(bellWriter, "\a")
		return bellMsg{}
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(tick(), m.watcher.Next())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tickMsg:
		if m.minibufferText != "" && time.Since(m.minibufferSetAt) > minibufferAutoClearAfter {
			m.minibufferText = ""
			m.minibufferErr = false
		}
		return m, tick()

	case bellMsg:
		return m, nil

	case fileChangedMsg:
		if msg.w != m.watcher {
			return m, nil
		}
		cmd := m.fileChanged(msg)
		return m, tea.Batch(cmd, m.watcher.Next())

	case fileWatcherErrMsg:
		if msg.w != m.watcher {
			return m, nil
		}
		glog.Warningf("watch %s: %v", m.watcher.path, msg.Err)
		return m, m.watcher.Next()

	case tea.MouseMsg:
		if m.view != viewEditor || m.modal != modalNone || msg.Action != tea.MouseActionPress {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelDown:
			return m.apply("move down", func(e mutate.Editor) (mutate.Result, error) { return e.Move(1) })
		case tea.MouseButtonWheelUp:
			return m.apply("move up", func(e mutate.Editor) (mutate.Result, error) { return e.Move(-1) })
		}
		return m, nil

	case tea.KeyMsg:
		if glog.V(3) {
			glog.Infof("key %q view=%s modal=%d", msg.String(), viewToString(m.view), int(m.modal))
		}
		if m.modal.isConfirm() {
			return m.updateConfirm(msg)
		}
		if m.modal != modalNone {
			return m.updatePrompt(msg)
		}
		switch m.view {
		case viewHelp:
			m.view = viewEditor
			return m, nil
		case viewPicker:
			return m.updatePicker(msg)
		case viewLocation:
			return m.updateLocation(msg)
		}
		return m.updateEditor(msg)
	}

	// Filter results and other list-internal messages.
	var cmd tea.Cmd
	switch m.view {
	case viewPicker:
		m.picker, cmd = m.picker.Update(msg)
	case viewLocation:
		m.location, cmd = m.location.Update(msg)
	}
	return m, cmd
}

func (m *appModel) resize() {
	w, h := m.width, m.height-3
	if h < 3 {
		h = 3
	}
	m.picker.SetSize(w, h)
	m.location.SetSize(w, h)
	m.help.Width = w
	m.input.Width = max(10, w-len(m.modal.prompt())-4)
}

// bodyHeight is the number of outline rows that fit under the header and
// above the minibuffer and footer.
func (m appModel) bodyHeight() int {
	return max(1, m.height-3)
}

// apply runs one engine command and maps its outcome onto the UI.
func (m appModel) apply(name string, op func(mutate.Editor) (mutate.Result, error)) (tea.Model, tea.Cmd) {
	res, err := m.set.Apply(name, op)
	if err != nil {
		cmd := m.handleErr(err)
		return m, cmd
	}
	if res.Relayout {
		m.scroll.Invalidate()
	}
	return m, nil
}

// handleErr decides how an error surfaces: broken cursor invariants end the
// program, bad input rings the bell, everything else goes to the minibuffer.
func (m *appModel) handleErr(err error) tea.Cmd {
	var (
		depthErr    cursor.DepthError
		minDepthErr cursor.MinDepthError
		inputErr    cursor.InvalidInputError
		noSelErr    mutate.NoSelectionError
	)
	switch {
	case errors.As(err, &depthErr), errors.As(err, &minDepthErr):
		glog.Errorf("fatal: %v", err)
		m.fatal = err
		return tea.Quit
	case errors.As(err, &inputErr), errors.As(err, &noSelErr):
		m.showError(capitalize(err.Error()))
		return bell()
	default:
		m.showError(capitalize(err.Error()))
		return nil
	}
}

func (m appModel) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Down):
		return m.apply("move down", func(e mutate.Editor) (mutate.Result, error) { return e.Move(1) })
	case key.Matches(msg, k.Up):
		return m.apply("move up", func(e mutate.Editor) (mutate.Result, error) { return e.Move(-1) })
	case key.Matches(msg, k.Leave):
		return m.apply("leave", mutate.Editor.Leave)
	case key.Matches(msg, k.Enter):
		return m.apply("enter", mutate.Editor.Enter)
	case key.Matches(msg, k.First):
		return m.apply("first", mutate.Editor.First)
	case key.Matches(msg, k.Last):
		return m.apply("last", mutate.Editor.LastItem)
	case key.Matches(msg, k.Toggle):
		return m.apply("toggle", mutate.Editor.Toggle)
	case key.Matches(msg, k.Delete):
		return m.apply("delete", mutate.Editor.DeleteCurrent)
	case key.Matches(msg, k.Undo):
		return m.apply("restore", mutate.Editor.RestoreFromHistory)
	case key.Matches(msg, k.MoveUp):
		return m.apply("move sibling up", func(e mutate.Editor) (mutate.Result, error) { return e.MoveSibling(mutate.Up) })
	case key.Matches(msg, k.MoveDown):
		return m.apply("move sibling down", func(e mutate.Editor) (mutate.Result, error) { return e.MoveSibling(mutate.Down) })
	case key.Matches(msg, k.Outdent):
		return m.apply("reparent out", mutate.Editor.ReparentOut)
	case key.Matches(msg, k.Indent):
		return m.apply("reparent in", mutate.Editor.ReparentIn)

	case key.Matches(msg, k.Goto):
		return m.openPrompt(modalGoto, "", false)
	case key.Matches(msg, k.Insert):
		return m.openPrompt(modalInsertBefore, "", false)
	case key.Matches(msg, k.Append):
		return m.openPrompt(modalAppendAfter, "", false)
	case key.Matches(msg, k.InsertChild):
		if m.set.Editor().ListLen() == 0 {
			cmd := m.handleErr(mutate.NoSelectionError{Op: "insert child"})
			return m, cmd
		}
		return m.openPrompt(modalInsertChild, "", false)
	case key.Matches(msg, k.EditEnd), key.Matches(msg, k.EditStart), key.Matches(msg, k.Wipe):
		n, ok := m.set.Editor().Selected()
		if !ok {
			cmd := m.handleErr(mutate.NoSelectionError{Op: "edit"})
			return m, cmd
		}
		switch {
		case key.Matches(msg, k.Wipe):
			return m.openPrompt(modalEditTitle, "", false)
		case key.Matches(msg, k.EditStart):
			return m.openPrompt(modalEditTitle, n.Title, true)
		default:
			return m.openPrompt(modalEditTitle, n.Title, false)
		}
	case key.Matches(msg, k.Yank):
		n, ok := m.set.Editor().Selected()
		if !ok {
			cmd := m.handleErr(mutate.NoSelectionError{Op: "copy"})
			return m, cmd
		}
		if err := copyToClipboard(n.Title); err != nil {
			m.showError("Copy failed: " + err.Error())
			return m, nil
		}
		m.showMinibuffer("Copied: " + n.Title)
		return m, nil

	case key.Matches(msg, k.Save):
		cmd := m.save()
		return m, cmd
	case key.Matches(msg, k.SaveAs):
		return m.openPrompt(modalSaveAs, store.ContractHome(m.set.Active().Path), false)
	case key.Matches(msg, k.Rename):
		return m.openPrompt(modalRenameDocument, m.set.Active().Name, false)
	case key.Matches(msg, k.Reload):
		return m.openConfirm(modalConfirmReload)
	case key.Matches(msg, k.DeleteFile):
		return m.openConfirm(modalConfirmDeleteFile)
	case key.Matches(msg, k.Switch):
		if m.set.Changes {
			return m.openConfirm(modalConfirmSwitch)
		}
		m.openPicker()
		return m, nil
	case key.Matches(msg, k.Help):
		m.view = viewHelp
		return m, nil
	case key.Matches(msg, k.Quit):
		if m.set.Changes {
			return m.openConfirm(modalConfirmQuit)
		}
		return m, tea.Quit
	}

	m.showError(fmt.Sprintf("Unrecognised key: %s", msg.String()))
	return m, nil
}

func (m appModel) openPrompt(kind modalKind, value string, cursorAtStart bool) (tea.Model, tea.Cmd) {
	m.modal = kind
	m.input.Prompt = kind.prompt()
	m.input.SetValue(value)
	if cursorAtStart {
		m.input.CursorStart()
	} else {
		m.input.CursorEnd()
	}
	m.resize()
	cmd := m.input.Focus()
	return m, cmd
}

func (m appModel) openConfirm(kind modalKind) (tea.Model, tea.Cmd) {
	if m.set.Active() == nil {
		return m, nil
	}
	m.modal = kind
	m.confirmFocus = confirmFocusConfirm
	return m, nil
}

func (m *appModel) closeModal() {
	m.modal = modalNone
	m.input.Blur()
	m.input.SetValue("")
}

func (m appModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+g":
		(&m).closeModal()
		return m, nil
	case "enter":
		kind := m.modal
		value := m.input.Value()
		(&m).closeModal()
		return m.submitPrompt(kind, value)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submitPrompt acts on a confirmed prompt. An empty title means nothing is
// inserted or renamed.
func (m appModel) submitPrompt(kind modalKind, value string) (tea.Model, tea.Cmd) {
	blank := strings.TrimSpace(value) == ""
	switch kind {
	case modalInsertBefore, modalAppendAfter, modalInsertChild, modalEditTitle:
		if blank {
			return m, nil
		}
		switch kind {
		case modalInsertBefore:
			return m.apply("insert before", func(e mutate.Editor) (mutate.Result, error) { return e.InsertBefore(value) })
		case modalAppendAfter:
			return m.apply("append after", func(e mutate.Editor) (mutate.Result, error) { return e.AppendAfter(value) })
		case modalInsertChild:
			return m.apply("insert child", func(e mutate.Editor) (mutate.Result, error) { return e.InsertChild(value) })
		default:
			return m.apply("rename", func(e mutate.Editor) (mutate.Result, error) { return e.Rename(value) })
		}

	case modalGoto:
		return m.apply("goto", func(e mutate.Editor) (mutate.Result, error) { return e.Goto(value) })

	case modalSaveAs:
		cmd := m.saveAs(value)
		return m, cmd

	case modalRenameDocument:
		renamed, err := m.set.RenameDocument(value)
		if err != nil {
			cmd := m.handleErr(err)
			return m, cmd
		}
		if renamed {
			m.showMinibuffer("Renamed to " + m.set.Active().Name)
		}
		return m, nil

	case modalNewListName:
		if blank {
			cmd := m.handleErr(cursor.InvalidInputError{Reason: "empty name"})
			return m, cmd
		}
		m.pendingName = strings.TrimSpace(value)
		m.location.SetItems(locationItems(m.cwd, m.cfg.ListsDir))
		m.location.Select(0)
		m.view = viewLocation
		return m, nil

	case modalNewListDir:
		if blank {
			cmd := m.handleErr(cursor.InvalidInputError{Reason: "empty directory"})
			return m, cmd
		}
		cmd, err := m.createList(value)
		if err != nil {
			cmd := m.handleErr(err)
			return m, cmd
		}
		return m, cmd

	case modalOpenOther:
		if blank {
			return m, nil
		}
		cmd, err := m.openPath(value)
		if err != nil {
			cmd := m.handleErr(err)
			return m, cmd
		}
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "left", "right":
		if m.confirmFocus == confirmFocusConfirm {
			m.confirmFocus = confirmFocusCancel
		} else {
			m.confirmFocus = confirmFocusConfirm
		}
		return m, nil
	case "esc", "ctrl+g":
		m.modal = modalNone
		return m, nil
	case "y":
		return m.resolveConfirm(true)
	case "n":
		return m.resolveConfirm(false)
	case "enter":
		return m.resolveConfirm(m.confirmFocus == confirmFocusConfirm)
	}
	return m, nil
}

// resolveConfirm carries out the confirmed action. For the save prompts "no"
// means discard and continue; for the others it just closes the dialog.
func (m appModel) resolveConfirm(yes bool) (tea.Model, tea.Cmd) {
	kind := m.modal
	m.modal = modalNone
	switch kind {
	case modalConfirmQuit:
		if yes {
			if cmd := m.save(); m.set.Changes {
				return m, cmd
			}
		}
		return m, tea.Quit
	case modalConfirmSwitch:
		if yes {
			if cmd := m.save(); m.set.Changes {
				return m, cmd
			}
		} else {
			m.discardChanges()
		}
		m.openPicker()
		return m, nil
	case modalConfirmReload:
		if yes {
			cmd := m.reload()
			return m, cmd
		}
	case modalConfirmDeleteFile:
		if yes {
			cmd := m.deleteFile()
			return m, cmd
		}
	}
	return m, nil
}

func (m appModel) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.picker.FilterState() != list.Filtering {
		switch msg.String() {
		case "esc":
			if m.picker.FilterState() == list.FilterApplied {
				break
			}
			if m.set.Active() != nil {
				m.view = viewEditor
				return m, nil
			}
			return m, tea.Quit
		case "enter":
			it, ok := m.picker.SelectedItem().(candidateItem)
			if !ok {
				return m, nil
			}
			switch it.action {
			case pickNewList:
				return m.openPrompt(modalNewListName, "", false)
			case pickOpenOther:
				return m.openPrompt(modalOpenOther, "", false)
			}
			cmd, err := m.openPath(it.candidate.Path)
			if err != nil {
				cmd = m.handleErr(err)
				m.refreshPicker()
			}
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m appModel) updateLocation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pendingName = ""
		m.view = viewPicker
		return m, nil
	case "enter":
		it, ok := m.location.SelectedItem().(locationItem)
		if !ok {
			return m, nil
		}
		if it.where == locationElsewhere {
			return m.openPrompt(modalNewListDir, store.ContractHome(m.cwd), false)
		}
		cmd, err := m.createList(it.dir)
		if err != nil {
			cmd := m.handleErr(err)
			return m, cmd
		}
		return m, cmd
	}
	var cmd tea.Cmd
	m.location, cmd = m.location.Update(msg)
	return m, cmd
}

// fileChanged reacts to the active file changing on disk. Clean documents
// follow the file; dirty ones keep the user's edits and say so.
func (m *appModel) fileChanged(msg fileChangedMsg) tea.Cmd {
	doc := m.set.Active()
	if doc == nil {
		return nil
	}
	if msg.Removed {
		if m.set.DestructiveChanges {
			// Our own ctrl+d.
			return nil
		}
		m.set.DestructiveChanges = true
		m.showError("File was removed on disk (ctrl+s writes it back)")
		return nil
	}
	if m.isOwnWrite(msg.Path) {
		return nil
	}
	if m.set.Changes {
		m.showError("File changed on disk (ctrl+r reloads it)")
		return nil
	}
	if err := m.set.ReloadActive(); err != nil {
		return m.handleErr(err)
	}
	m.scroll.Invalidate()
	m.ownWrite = stampOf(msg.Path)
	m.showMinibuffer("Reloaded: file changed on disk")
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
