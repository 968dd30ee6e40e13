package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// confirmDialog is a two-button question shown over the outline.
type confirmDialog struct {
	title string
	body  string
	yes   string
	no    string
}

func (d confirmDialog) render(width int, focus confirmModalFocus) string {
	button := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	focused := button.
		Foreground(colorSelectedFg).
		Background(colorSelectedBg).
		Bold(true)

	yes, no := button, button
	if focus == confirmFocusConfirm {
		yes = focused
	} else {
		no = focused
	}
	gap := lipgloss.NewStyle().Background(colorControlBg).Render("  ")
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, yes.Render(d.yes), gap, no.Render(d.no))

	bodyW := modalBodyWidth(width)
	text := lipgloss.NewStyle().Width(bodyW).Render(d.body)
	hint := styleMuted().Width(bodyW).Render("y/n: answer   tab: switch   enter: pick   esc: cancel")

	return renderModalBox(width, d.title, lipgloss.JoinVertical(lipgloss.Left, text, "", buttons, "", hint))
}
