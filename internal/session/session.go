package session

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/golang/glog"

	"todo-cli/internal/cursor"
	"todo-cli/internal/model"
	"todo-cli/internal/mutate"
)

// Persister reads and writes document files. store.Files implements it.
type Persister interface {
	Load(path string) (*model.Document, error)
	Save(doc *model.Document) error
	Remove(path string) error
}

var ErrNoActiveDocument = errors.New("no active document")

// Set holds the resident documents and the editing state of the active one.
// Exactly one document is active once the first has been switched to.
type Set struct {
	store  Persister
	docs   []*model.Document
	active int

	Cursor  *cursor.Path
	History *mutate.Slot

	// Changes means the active document differs from its file.
	Changes bool
	// DestructiveChanges means the active document's file was removed.
	DestructiveChanges bool
}

func New(p Persister) *Set {
	return &Set{
		store:   p,
		active:  -1,
		Cursor:  cursor.New(),
		History: &mutate.Slot{},
	}
}

// Active returns the active document, or nil before the first switch.
func (s *Set) Active() *model.Document {
	if s.active < 0 || s.active >= len(s.docs) {
		return nil
	}
	return s.docs[s.active]
}

// Documents returns the resident documents in the order they were opened.
func (s *Set) Documents() []*model.Document {
	out := make([]*model.Document, len(s.docs))
	copy(out, s.docs)
	return out
}

// Editor binds the mutation engine to the active document.
func (s *Set) Editor() mutate.Editor {
	return mutate.Editor{Doc: s.Active(), Cur: s.Cursor, History: s.History}
}

// Apply runs one engine command against the active document and records
// whether content changed.
func (s *Set) Apply(name string, op func(mutate.Editor) (mutate.Result, error)) (mutate.Result, error) {
	if s.Active() == nil {
		return mutate.Result{}, ErrNoActiveDocument
	}
	res, err := op(s.Editor())
	if err != nil {
		glog.V(2).Infof("%s failed at %s: %v", name, s.Cursor, err)
		return res, err
	}
	if res.Changed {
		s.Changes = true
	}
	glog.V(2).Infof("%s: changed=%t relayout=%t cursor=%s", name, res.Changed, res.Relayout, s.Cursor)
	return res, nil
}

// Load reads a document without making it resident.
func (s *Set) Load(path string) (*model.Document, error) {
	doc, err := s.store.Load(path)
	if err != nil {
		glog.Errorf("load %s: %v", path, err)
		return nil, err
	}
	return doc, nil
}

// Open loads path and switches to it. A failed load leaves the set as it was.
func (s *Set) Open(path string) (*model.Document, error) {
	if i := s.indexOf(path); i >= 0 {
		s.SwitchTo(s.docs[i])
		return s.docs[i], nil
	}
	doc, err := s.Load(path)
	if err != nil {
		return nil, err
	}
	s.SwitchTo(doc)
	return s.Active(), nil
}

// SwitchTo activates the resident document with the same path as doc, or
// appends doc and activates it. The session flags, the history slot, and the
// cursor are reset either way.
func (s *Set) SwitchTo(doc *model.Document) {
	if doc == nil {
		return
	}
	if i := s.indexOf(doc.Path); i >= 0 {
		s.active = i
	} else {
		s.docs = append(s.docs, doc)
		s.active = len(s.docs) - 1
	}
	s.Changes = false
	s.DestructiveChanges = false
	s.History.Clear()
	s.Cursor.Reset()
	glog.Infof("switched to %q (%s)", s.Active().Name, s.Active().Path)
}

func (s *Set) indexOf(path string) int {
	path = cleanPath(path)
	if path == "" {
		return -1
	}
	for i, d := range s.docs {
		if cleanPath(d.Path) == path {
			return i
		}
	}
	return -1
}

func cleanPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}

// Save writes the active document to its path. On failure Changes is left
// set so unsaved work is never reported as persisted.
func (s *Set) Save() error {
	doc := s.Active()
	if doc == nil {
		return ErrNoActiveDocument
	}
	if err := s.store.Save(doc); err != nil {
		s.Changes = true
		glog.Errorf("save %s: %v", doc.Path, err)
		return err
	}
	s.Changes = false
	s.DestructiveChanges = false
	glog.Infof("saved %q to %s", doc.Name, doc.Path)
	return nil
}

// SaveAs points the active document at path and saves it there. The old
// path is restored if the save fails.
func (s *Set) SaveAs(path string) error {
	doc := s.Active()
	if doc == nil {
		return ErrNoActiveDocument
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return cursor.InvalidInputError{Reason: "empty path"}
	}
	old := doc.Path
	doc.Path = path
	if err := s.Save(); err != nil {
		doc.Path = old
		return err
	}
	return nil
}

// ReloadActive replaces the active document's items with the file contents,
// discarding unsaved edits. The cursor is repaired to fit the new tree.
func (s *Set) ReloadActive() error {
	doc := s.Active()
	if doc == nil {
		return ErrNoActiveDocument
	}
	fresh, err := s.Load(doc.Path)
	if err != nil {
		return err
	}
	doc.Items = fresh.Items
	if fresh.Name != "" {
		doc.Name = fresh.Name
	}
	s.Cursor.Clamp(doc.Items)
	s.History.Clear()
	s.Changes = false
	glog.Infof("reloaded %s", doc.Path)
	return nil
}

// DeleteActiveFile removes the active document's file. The in-memory tree is
// kept, so saving recreates the file.
func (s *Set) DeleteActiveFile() error {
	doc := s.Active()
	if doc == nil {
		return ErrNoActiveDocument
	}
	if err := s.store.Remove(doc.Path); err != nil {
		glog.Errorf("delete %s: %v", doc.Path, err)
		return err
	}
	s.DestructiveChanges = true
	s.Changes = true
	glog.Infof("deleted %s", doc.Path)
	return nil
}

// RenameDocument sets the active document's display name.
func (s *Set) RenameDocument(name string) (bool, error) {
	doc := s.Active()
	if doc == nil {
		return false, ErrNoActiveDocument
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return false, cursor.InvalidInputError{Reason: "empty name"}
	}
	if name == doc.Name {
		return false, nil
	}
	doc.Name = name
	s.Changes = true
	return true, nil
}
