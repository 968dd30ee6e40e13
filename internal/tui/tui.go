package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"todo-cli/internal/store"
)

type Options struct {
	Config store.Config
	// Files defaults to store.Files.
	Files Persister
	// Recents may be nil.
	Recents *store.Recents
	// Cwd is scanned for lists; defaults to the process working directory.
	Cwd string
}

// Run starts the editor on path, or on the list picker when path is empty.
// It returns once the user quits; a broken cursor invariant is returned as
// an error after the terminal has been restored.
func Run(opts Options, path string) error {
	applyGlyphPreference(opts.Config.Glyphs)
	applyThemePreference()
	applyColorProfilePreference()

	if err := opts.Config.EnsureListsDir(); err != nil {
		return fmt.Errorf("create lists directory: %w", err)
	}

	m := newAppModel(opts)
	if path != "" {
		if _, err := m.openPath(path); err != nil {
			m.close()
			return err
		}
	}

	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	if fm, ok := final.(appModel); ok {
		fm.close()
		if err == nil && fm.fatal != nil {
			err = fm.fatal
		}
	}
	m.close()
	return err
}
