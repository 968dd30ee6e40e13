package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"todo-cli/internal/store"
	"todo-cli/internal/viewport"
)

func (m appModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	var body string
	switch m.view {
	case viewPicker:
		body = m.viewPicker()
	case viewLocation:
		body = m.viewLocation()
	case viewHelp:
		body = m.viewHelp()
	default:
		body = m.viewEditor()
	}
	return strings.Join([]string{body, m.viewStatus(), m.viewFooter()}, "\n")
}

func (m appModel) viewEditor() string {
	doc := m.set.Active()
	if doc == nil {
		return padLines("", m.height-2)
	}
	header := m.viewHeader()
	amount := m.bodyHeight()

	var rows []string
	if len(doc.Items) == 0 {
		rows = append(rows, styleMuted().Render("  (empty list: press a to add an item)"))
	} else {
		_, lines := m.scroll.Window(doc.Items, m.set.Cursor, amount)
		for _, l := range lines {
			rows = append(rows, renderRow(l, m.width))
		}
	}
	body := padLines(strings.Join(rows, "\n"), amount)
	if m.modal.isConfirm() {
		body = lipgloss.Place(m.width, amount, lipgloss.Center, lipgloss.Center, m.viewConfirm())
	}
	return header + "\n" + body
}

// viewHeader renders "== name*! [ticked/total, pct%] ==" centred. The
// percentage counts top-level items only.
func (m appModel) viewHeader() string {
	doc := m.set.Active()
	flags := ""
	if m.set.Changes {
		flags += "*"
	}
	if m.set.DestructiveChanges {
		flags += "!"
	}
	ticked, total := doc.Progress()
	pct := doc.Percent()
	pctText := lipgloss.NewStyle().Foreground(progressColor(pct)).Render(fmt.Sprintf("%d%%", pct))
	title := fmt.Sprintf("== %s%s [%d/%d, %s] ==", doc.Name, flags, ticked, total, pctText)
	return fitWidth(center(lipgloss.NewStyle().Bold(true).Render(title), m.width), m.width)
}

// renderRow draws one outline row: four columns of indent per level, the
// selection arrow, the tick box, the title, and a twisty on collapsed parents.
func renderRow(l viewport.Line, width int) string {
	arrow := "  "
	if l.Selected {
		arrow = glyphArrow() + " "
	}
	tick := " "
	if l.Ticked {
		tick = glyphTick()
	}
	twisty := ""
	if l.HasChildren && !l.Expanded {
		twisty = " " + glyphTwistyCollapsed()
	}
	row := fitWidth(strings.Repeat("    ", l.Depth)+arrow+"["+tick+"] "+l.Title+twisty, width)
	switch {
	case l.Selected:
		return styleSelected().Render(row)
	case l.Ticked:
		return styleMuted().Render(row)
	}
	return row
}

func (m appModel) viewPicker() string {
	title := lipgloss.NewStyle().Bold(true).Render(m.picker.Title)
	return title + "\n" + padLines(m.picker.View(), m.height-3)
}

func (m appModel) viewLocation() string {
	title := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%s (new list %q)", m.location.Title, m.pendingName))
	return title + "\n" + padLines(m.location.View(), m.height-3)
}

func (m appModel) viewHelp() string {
	title := lipgloss.NewStyle().Bold(true).Render("Keys (any key returns)")
	h := m.help
	h.ShowAll = true
	return title + "\n" + padLines(h.View(m.keys), m.height-3)
}

func (m appModel) viewConfirm() string {
	path := ""
	if doc := m.set.Active(); doc != nil {
		path = store.ContractHome(doc.Path)
	}
	var d confirmDialog
	switch m.modal {
	case modalConfirmQuit:
		d = confirmDialog{"Quit", "Save changes to " + path + " before quitting?", "Save (y)", "Discard (n)"}
	case modalConfirmSwitch:
		d = confirmDialog{"Change list", "Save changes to " + path + " first?", "Save (y)", "Discard (n)"}
	case modalConfirmReload:
		d = confirmDialog{"Reload", "Reload " + path + " and lose unsaved changes?", "Reload (y)", "Cancel (n)"}
	case modalConfirmDeleteFile:
		d = confirmDialog{"Delete file", "Delete " + path + " from disk?", "Delete (y)", "Cancel (n)"}
	}
	return d.render(m.width, m.confirmFocus)
}

// viewStatus is the minibuffer line, or the prompt while one is open.
func (m appModel) viewStatus() string {
	if m.modal != modalNone && !m.modal.isConfirm() {
		return renderInputLine(m.width, m.input.View())
	}
	if m.minibufferText == "" {
		return ""
	}
	if m.minibufferErr {
		return styleError().Render(fitWidth(m.minibufferText, m.width))
	}
	return fitWidth(m.minibufferText, m.width)
}

func (m appModel) viewFooter() string {
	switch m.view {
	case viewPicker:
		return styleMuted().Render(fitWidth("enter: open  /: filter  esc: back  q: quit", m.width))
	case viewLocation:
		return styleMuted().Render(fitWidth("enter: choose  esc: back", m.width))
	case viewHelp:
		return ""
	}
	if m.modal != modalNone && !m.modal.isConfirm() {
		return styleMuted().Render(fitWidth("enter: confirm  esc/ctrl+g: cancel", m.width))
	}
	h := m.help
	h.Width = m.width
	return h.View(m.keys)
}
