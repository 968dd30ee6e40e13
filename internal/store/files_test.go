package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"todo-cli/internal/model"
)

const sampleTOML = `name = "groceries"

[[contents]]
ticked_off = true
title = "milk"
contents = []

[[contents]]
ticked_off = false
title = "baking"

  [[contents.contents]]
  ticked_off = false
  title = "flour"
  contents = []
`

func TestFilesLoad_ReadsOriginalLayout(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "groceries.todo")
	if err := os.WriteFile(path, []byte(sampleTOML), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	doc, err := Files{}.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.Name != "groceries" || doc.Path != path {
		t.Fatalf("unexpected name/path: %q %q", doc.Name, doc.Path)
	}
	if len(doc.Items) != 2 || !doc.Items[0].Ticked || doc.Items[1].Title != "baking" {
		t.Fatalf("unexpected items: %#v", doc.Items)
	}
	if got := doc.Items[1].Children; len(got) != 1 || got[0].Title != "flour" {
		t.Fatalf("unexpected children: %#v", got)
	}
}

func TestFilesSaveLoad_RoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	doc := model.NewDocument("plans", filepath.Join(dir, "nested", "plans.todo"))
	doc.Items = []model.Node{
		{Title: "a", Children: []model.Node{{Title: "b", Ticked: true}}},
		{Title: `quotes "and" \ slashes`},
	}

	if err := (Files{}).Save(doc); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Files{}.Load(doc.Path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Name != doc.Name || !model.Equal(got.Items, doc.Items) {
		t.Fatalf("round trip mismatch:\nwant: %#v\ngot:  %#v", doc.Items, got.Items)
	}

	b, _ := os.ReadFile(doc.Path)
	if strings.Contains(string(b), "path") {
		t.Fatalf("path must not be serialized:\n%s", b)
	}
	ents, _ := os.ReadDir(filepath.Dir(doc.Path))
	if len(ents) != 1 {
		t.Fatalf("expected temp files to be cleaned up; got %d entries", len(ents))
	}
}

func TestFilesLoad_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := Files{}.Load(filepath.Join(dir, "missing.todo"))
	var le *LoadError
	if !errors.As(err, &le) || !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected LoadError wrapping ErrNotExist; got %v", err)
	}

	bad := filepath.Join(dir, "bad.todo")
	if err := os.WriteFile(bad, []byte("name = \n[[contents"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err = Files{}.Load(bad)
	if !errors.As(err, &le) || le.Path != bad {
		t.Fatalf("expected LoadError for malformed TOML; got %v", err)
	}
}

func TestFilesLoad_NameFallsBackToStem(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "errands.todo")
	if err := os.WriteFile(path, []byte("contents = []\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	doc, err := Files{}.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.Name != "errands" || doc.Items == nil {
		t.Fatalf("expected name from stem and non-nil items; got %#v", doc)
	}
}

func TestFilesSave_FailureIsIoError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	doc := model.NewDocument("x", filepath.Join(blocker, "x.todo"))
	err := Files{}.Save(doc)
	var ioe *IoError
	if !errors.As(err, &ioe) || ioe.Op != "save" {
		t.Fatalf("expected IoError; got %v", err)
	}
}

func TestFilesCreate_RefusesOverwrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "new.todo")
	doc, err := Files{}.Create(path, "new")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if doc.Name != "new" || len(doc.Items) != 0 {
		t.Fatalf("unexpected doc: %#v", doc)
	}

	_, err = Files{}.Create(path, "again")
	if !errors.Is(err, fs.ErrExist) {
		t.Fatalf("expected ErrExist; got %v", err)
	}
	loaded, err := Files{}.Load(path)
	if err != nil || loaded.Name != "new" {
		t.Fatalf("expected original file intact; got %#v, %v", loaded, err)
	}
}

func TestFilesRemove(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "gone.todo")
	if err := os.WriteFile(path, []byte(sampleTOML), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := (Files{}).Remove(path); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	var ioe *IoError
	if err := (Files{}).Remove(path); !errors.As(err, &ioe) {
		t.Fatalf("expected IoError on second remove; got %v", err)
	}
}

func TestCanonicalPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	got, err := CanonicalPath(dir, "  shopping ")
	if err != nil {
		t.Fatalf("CanonicalPath: %v", err)
	}
	if want := filepath.Join(dir, "shopping.todo"); got != want {
		t.Fatalf("expected %s; got %s", want, got)
	}
	if got, _ := CanonicalPath(dir, "x.todo"); filepath.Base(got) != "x.todo" {
		t.Fatalf("expected extension not doubled; got %s", got)
	}
	if _, err := CanonicalPath(dir, ""); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if _, err := CanonicalPath(dir, "a/b"); err == nil {
		t.Fatalf("expected error for name with separator")
	}
}
