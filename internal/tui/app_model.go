package tui

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/glog"

	"todo-cli/internal/model"
	"todo-cli/internal/session"
	"todo-cli/internal/store"
	"todo-cli/internal/viewport"
)

// Persister is what the TUI needs from the file layer: the session's
// load/save/remove plus creating new, empty lists.
type Persister interface {
	session.Persister
	Create(path, name string) (*model.Document, error)
}

type appModel struct {
	cfg     store.Config
	cwd     string
	files   Persister
	recents *store.Recents

	set    *session.Set
	scroll *viewport.Scroller
	keys   keyMap
	help   help.Model

	width  int
	height int

	view  view
	modal modalKind

	picker   list.Model
	location list.Model

	input        textinput.Model
	confirmFocus confirmModalFocus
	// pendingName is the new list's name while its location is chosen.
	pendingName string

	minibufferText  string
	minibufferErr   bool
	minibufferSetAt time.Time

	watcher *fileWatcher
	// ownWrite identifies the file state produced by our last save or load,
	// so the watcher can ignore the echo of our own writes.
	ownWrite fileStamp

	// fatal is set when the engine reports a broken invariant; the program
	// quits and Run returns it.
	fatal error
}

type fileStamp struct {
	modTime time.Time
	size    int64
}

func stampOf(path string) fileStamp {
	fi, err := os.Stat(path)
	if err != nil {
		return fileStamp{}
	}
	return fileStamp{modTime: fi.ModTime(), size: fi.Size()}
}

func newAppModel(opts Options) appModel {
	mode, err := viewport.ParseExpandMode(opts.Config.Expand)
	if err != nil {
		mode = viewport.ExpandPath
	}
	files := opts.Files
	if files == nil {
		files = store.Files{}
	}
	m := appModel{
		cfg:     opts.Config,
		cwd:     opts.Cwd,
		files:   files,
		recents: opts.Recents,
		set:     session.New(files),
		scroll:  viewport.NewScroller(mode),
		keys:    defaultKeyMap(),
		help:    help.New(),
		view:    viewPicker,
	}
	if strings.TrimSpace(m.cwd) == "" {
		m.cwd, _ = os.Getwd()
	}

	m.picker = newList("Open a list", nil)
	m.location = newList("Where should the new list live?", nil)
	m.location.SetFilteringEnabled(false)

	m.input = textinput.New()
	m.input.CharLimit = 500
	m.input.Width = 40

	m.refreshPicker()
	return m
}

// refreshPicker rescans the lists directory and the working directory and
// merges in recently opened documents.
func (m *appModel) refreshPicker() {
	found, err := store.Discover(m.cfg.ListsDir, m.cwd)
	if err != nil {
		glog.Warningf("discover: %v", err)
	}
	limit := m.cfg.RecentLimit
	if limit <= 0 {
		limit = 10
	}
	recent, err := m.recents.List(context.Background(), limit)
	if err != nil {
		glog.Warningf("recent documents: %v", err)
	}
	m.picker.ResetFilter()
	m.picker.SetItems(pickerItems(store.MergeRecent(recent, found)))
	m.picker.Select(0)
}

func (m *appModel) openPicker() {
	m.refreshPicker()
	m.view = viewPicker
}

// openPath makes path the active document.
func (m *appModel) openPath(path string) (tea.Cmd, error) {
	path = store.ExpandHome(strings.TrimSpace(path))
	doc, err := m.set.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if ferr := m.recents.Forget(context.Background(), path); ferr != nil {
				glog.Warningf("forget %s: %v", path, ferr)
			}
		}
		return nil, err
	}
	return m.activated(doc), nil
}

// createList writes a new empty list named pendingName into dir and opens it.
func (m *appModel) createList(dir string) (tea.Cmd, error) {
	path, err := store.CanonicalPath(dir, m.pendingName)
	if err != nil {
		return nil, err
	}
	doc, err := m.files.Create(path, m.pendingName)
	if err != nil {
		return nil, err
	}
	m.pendingName = ""
	m.set.SwitchTo(doc)
	return m.activated(m.set.Active()), nil
}

// activated switches the UI to the editor after doc became active.
func (m *appModel) activated(doc *model.Document) tea.Cmd {
	m.view = viewEditor
	m.modal = modalNone
	m.scroll.Invalidate()
	if err := m.recents.RecordOpened(context.Background(), doc.Path, doc.Name, time.Now()); err != nil {
		glog.Warningf("record recent %s: %v", doc.Path, err)
	}
	m.ownWrite = stampOf(doc.Path)
	return m.watch(doc.Path)
}

// watch replaces the file watcher with one for path. A watcher that cannot
// be started only costs change notifications.
func (m *appModel) watch(path string) tea.Cmd {
	if m.watcher != nil {
		_ = m.watcher.Close()
		m.watcher = nil
	}
	w, err := newFileWatcher(path)
	if err != nil {
		glog.Warningf("watch %s: %v", path, err)
		return nil
	}
	m.watcher = w
	return w.Next()
}

func (m *appModel) isOwnWrite(path string) bool {
	st := stampOf(path)
	return !st.modTime.IsZero() && st == m.ownWrite
}

func (m *appModel) save() tea.Cmd {
	if err := m.set.Save(); err != nil {
		return m.handleErr(err)
	}
	doc := m.set.Active()
	m.ownWrite = stampOf(doc.Path)
	m.showMinibuffer("Saved " + store.ContractHome(doc.Path))
	return nil
}

func (m *appModel) saveAs(path string) tea.Cmd {
	path = store.ExpandHome(strings.TrimSpace(path))
	if path != "" && filepath.Ext(path) == "" {
		path += store.Extension
	}
	if err := m.set.SaveAs(path); err != nil {
		return m.handleErr(err)
	}
	doc := m.set.Active()
	if err := m.recents.RecordOpened(context.Background(), doc.Path, doc.Name, time.Now()); err != nil {
		glog.Warningf("record recent %s: %v", doc.Path, err)
	}
	m.ownWrite = stampOf(doc.Path)
	m.showMinibuffer("Saved as " + store.ContractHome(doc.Path))
	return m.watch(doc.Path)
}

func (m *appModel) reload() tea.Cmd {
	if err := m.set.ReloadActive(); err != nil {
		return m.handleErr(err)
	}
	m.scroll.Invalidate()
	m.ownWrite = stampOf(m.set.Active().Path)
	m.showMinibuffer("Reloaded")
	return nil
}

func (m *appModel) deleteFile() tea.Cmd {
	doc := m.set.Active()
	if err := m.set.DeleteActiveFile(); err != nil {
		return m.handleErr(err)
	}
	if err := m.recents.Forget(context.Background(), doc.Path); err != nil {
		glog.Warningf("forget %s: %v", doc.Path, err)
	}
	m.showMinibuffer("Deleted " + store.ContractHome(doc.Path) + " (ctrl+s writes it back)")
	return nil
}

// discardChanges drops unsaved edits of the active document so that
// switching back to it later shows the file contents.
func (m *appModel) discardChanges() {
	if m.set.Active() == nil || !m.set.Changes {
		return
	}
	if err := m.set.ReloadActive(); err != nil {
		glog.Warningf("discard changes: %v", err)
	}
}

func (m *appModel) showMinibuffer(text string) {
	m.minibufferText = text
	m.minibufferErr = false
	m.minibufferSetAt = time.Now()
}

func (m *appModel) showError(text string) {
	m.minibufferText = text
	m.minibufferErr = true
	m.minibufferSetAt = time.Now()
}

func (m *appModel) close() {
	if m.watcher != nil {
		_ = m.watcher.Close()
		m.watcher = nil
	}
}
