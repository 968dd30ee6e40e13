package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("name = \"x\"\ncontents = []\n"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestDiscover_BothScopes(t *testing.T) {
	t.Parallel()

	lists := t.TempDir()
	cwd := t.TempDir()
	touch(t, filepath.Join(lists, "work.todo"))
	touch(t, filepath.Join(lists, "home.todo"))
	touch(t, filepath.Join(lists, "notes.txt"))
	touch(t, filepath.Join(cwd, "project.todo"))
	if err := os.Mkdir(filepath.Join(cwd, "dir.todo"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := Discover(lists, cwd)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	var displays []string
	for _, c := range got {
		displays = append(displays, filepath.Base(c.Display)+":"+string(c.Scope))
	}
	want := []string{"home:user", "work:user", "project:cwd"}
	if !reflect.DeepEqual(displays, want) {
		t.Fatalf("expected %v; got %v", want, displays)
	}
	if got[2].Display != "./project" || got[2].Path != filepath.Join(cwd, "project.todo") {
		t.Fatalf("unexpected cwd candidate: %#v", got[2])
	}
}

func TestDiscover_SameDirectoryListedOnce(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.todo"))
	got, err := Discover(dir, dir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(got) != 1 || got[0].Scope != ScopeUser {
		t.Fatalf("expected a single user-scope candidate; got %#v", got)
	}
}

func TestDiscover_MissingListsDirIsEmpty(t *testing.T) {
	t.Parallel()

	got, err := Discover(filepath.Join(t.TempDir(), "nope"), "")
	if err != nil || len(got) != 0 {
		t.Fatalf("expected no candidates and no error; got %#v, %v", got, err)
	}
}

func TestMergeRecent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := filepath.Join(dir, "a.todo")
	b := filepath.Join(dir, "b.todo")
	touch(t, a)
	touch(t, b)

	recent := []RecentDocument{
		{Path: b, Name: "b", OpenedAt: time.Now()},
		{Path: filepath.Join(dir, "deleted.todo"), Name: "deleted"},
	}
	discovered := []Candidate{
		{Display: "./a", Path: a, Scope: ScopeCwd},
		{Display: "./b", Path: b, Scope: ScopeCwd},
	}
	got := MergeRecent(recent, discovered)
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates; got %#v", got)
	}
	if got[0].Path != b || got[0].Scope != ScopeRecent {
		t.Fatalf("expected recent b first; got %#v", got[0])
	}
	if got[1].Path != a {
		t.Fatalf("expected a second; got %#v", got[1])
	}
}
