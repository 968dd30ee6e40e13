package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestRecents_RecordListForget(t *testing.T) {
	ctx := context.Background()
	r, err := OpenRecents(ctx, filepath.Join(t.TempDir(), "idx", "recent.sqlite"))
	if err != nil {
		t.Fatalf("OpenRecents: %v", err)
	}
	defer r.Close()

	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := r.RecordOpened(ctx, "/a.todo", "a", t0); err != nil {
		t.Fatalf("record a: %v", err)
	}
	if err := r.RecordOpened(ctx, "/b.todo", "b", t0.Add(time.Minute)); err != nil {
		t.Fatalf("record b: %v", err)
	}
	// Reopening a moves it to the front and updates its name.
	if err := r.RecordOpened(ctx, "/a.todo", "a2", t0.Add(2*time.Minute)); err != nil {
		t.Fatalf("record a again: %v", err)
	}

	got, err := r.List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].Path != "/a.todo" || got[0].Name != "a2" || got[1].Path != "/b.todo" {
		t.Fatalf("unexpected order: %#v", got)
	}
	if !got[0].OpenedAt.Equal(t0.Add(2 * time.Minute)) {
		t.Fatalf("unexpected time: %v", got[0].OpenedAt)
	}

	limited, err := r.List(ctx, 1)
	if err != nil || len(limited) != 1 {
		t.Fatalf("expected limit 1; got %#v, %v", limited, err)
	}

	if err := r.Forget(ctx, "/a.todo"); err != nil {
		t.Fatalf("Forget: %v", err)
	}
	got, _ = r.List(ctx, 0)
	if len(got) != 1 || got[0].Path != "/b.todo" {
		t.Fatalf("expected only b after forget; got %#v", got)
	}
}

func TestRecents_NilIsNoop(t *testing.T) {
	var r *Recents
	if err := r.RecordOpened(context.Background(), "/x", "x", time.Now()); err != nil {
		t.Fatalf("expected nil recents to be a no-op; got %v", err)
	}
	if got, err := r.List(context.Background(), 5); err != nil || got != nil {
		t.Fatalf("expected empty list; got %#v, %v", got, err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
