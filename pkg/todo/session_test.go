package todo

import (
	"errors"
	"testing"

	"github.com/jys9049/RN-TodoList/pkg/entry"
	"github.com/jys9049/RN-TodoList/pkg/store"
)

func TestBeginOrCancelEditToggles(t *testing.T) {
	s := newLoaded(t, store.NewMemory())
	e := mustCreate(t, s, "pack bags")

	session, err := s.BeginOrCancelEdit(e.ID)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if session.ActiveID != e.ID || session.Draft != "pack bags" {
		t.Fatalf("expected session seeded with entry text, got %+v", session)
	}

	session, err = s.BeginOrCancelEdit(e.ID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if session.Active() || s.Session().Active() {
		t.Fatalf("expected no session after second call, got %+v", s.Session())
	}
	if got, _ := s.Get(e.ID); got.Text != "pack bags" {
		t.Fatalf("cancel must not change the entry, got %q", got.Text)
	}
}

func TestBeginOrCancelEditSwitches(t *testing.T) {
	s := newLoaded(t, store.NewMemory())
	a := mustCreate(t, s, "a")
	b := mustCreate(t, s, "b")

	if _, err := s.BeginOrCancelEdit(a.ID); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := s.UpdateDraftText("a changed"); err != nil {
		t.Fatalf("draft: %v", err)
	}
	session, err := s.BeginOrCancelEdit(b.ID)
	if err != nil {
		t.Fatalf("switch: %v", err)
	}
	if session.ActiveID != b.ID || session.Draft != "b" {
		t.Fatalf("expected session on b, got %+v", session)
	}
	if got, _ := s.Get(a.ID); got.Text != "a" {
		t.Fatalf("switching must not save the abandoned draft, got %q", got.Text)
	}
}

func TestBeginOrCancelEditNotFound(t *testing.T) {
	s := newLoaded(t, store.NewMemory())
	e := mustCreate(t, s, "a")
	if _, err := s.BeginOrCancelEdit(e.ID); err != nil {
		t.Fatalf("begin: %v", err)
	}
	session, err := s.BeginOrCancelEdit("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if session.ActiveID != e.ID {
		t.Fatalf("failed call must leave the session alone, got %+v", session)
	}
}

func TestDraftWithoutSession(t *testing.T) {
	s := newLoaded(t, store.NewMemory())
	if err := s.UpdateDraftText("x"); !errors.Is(err, ErrNoSession) {
		t.Fatalf("draft: expected ErrNoSession, got %v", err)
	}
	if _, _, err := s.CommitEdit(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("commit: expected ErrNoSession, got %v", err)
	}
}

func TestUpdateDraftTextDoesNotPersist(t *testing.T) {
	backend := store.NewMemory()
	s := newLoaded(t, backend)
	e := mustCreate(t, s, "a")
	writes := backend.Writes()

	if _, err := s.BeginOrCancelEdit(e.ID); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := s.UpdateDraftText("b"); err != nil {
		t.Fatalf("draft: %v", err)
	}
	if s.Session().Draft != "b" {
		t.Fatalf("expected draft b, got %q", s.Session().Draft)
	}
	if backend.Writes() != writes {
		t.Fatalf("draft changes must not be written, writes went %d -> %d", writes, backend.Writes())
	}
}

func TestCommitEditUpdatesOnlyTarget(t *testing.T) {
	s := newLoaded(t, store.NewMemory())
	x := mustCreate(t, s, "draft A")
	mustCreate(t, s, "other")
	wait(t, mustSave(s.SetCategoryFilter(entry.Travel)))
	mustCreate(t, s, "Paris")
	before, _ := s.Snapshot()

	if _, err := s.BeginOrCancelEdit(x.ID); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := s.UpdateDraftText("final A"); err != nil {
		t.Fatalf("draft: %v", err)
	}
	updated, save, err := s.CommitEdit()
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	wait(t, save)

	if updated.Text != "final A" {
		t.Fatalf("expected final A, got %q", updated.Text)
	}
	if s.Session().Active() {
		t.Fatalf("expected no session after commit, got %+v", s.Session())
	}

	after, _ := s.Snapshot()
	for id, was := range before {
		now := after[id]
		if id == x.ID {
			if now.Text != "final A" {
				t.Fatalf("target text = %q", now.Text)
			}
			continue
		}
		if *now != *was {
			t.Fatalf("entry %s changed: %+v -> %+v", id, was, now)
		}
	}
}

func TestCommitEditBlankDiscards(t *testing.T) {
	backend := store.NewMemory()
	s := newLoaded(t, backend)
	e := mustCreate(t, s, "keep me")
	writes := backend.Writes()

	if _, err := s.BeginOrCancelEdit(e.ID); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := s.UpdateDraftText("  "); err != nil {
		t.Fatalf("draft: %v", err)
	}
	updated, save, err := s.CommitEdit()
	if err != nil || updated != nil || save != nil {
		t.Fatalf("expected silent discard, got %v, %v, %v", updated, save, err)
	}
	if s.Session().Active() {
		t.Fatal("expected session cleared")
	}
	if got, _ := s.Get(e.ID); got.Text != "keep me" {
		t.Fatalf("entry changed to %q", got.Text)
	}
	if backend.Writes() != writes {
		t.Fatal("discard must not write")
	}
}

func TestApplyDeleteClearsTargetSession(t *testing.T) {
	s := newLoaded(t, store.NewMemory())
	y := mustCreate(t, s, "temp")
	other := mustCreate(t, s, "stay")

	if _, err := s.BeginOrCancelEdit(y.ID); err != nil {
		t.Fatalf("begin: %v", err)
	}
	save, err := s.ApplyDelete(y.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	wait(t, save)

	if _, ok := s.Get(y.ID); ok {
		t.Fatal("expected entry removed")
	}
	if s.Len() != 1 {
		t.Fatalf("expected exactly one entry removed, %d left", s.Len())
	}
	if _, ok := s.Get(other.ID); !ok {
		t.Fatal("unrelated entry removed")
	}
	if s.Session().Active() {
		t.Fatalf("expected session cleared, got %+v", s.Session())
	}
	if _, _, err := s.ToggleComplete(y.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.ApplyDelete(y.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}
}

func TestApplyDeleteKeepsOtherSession(t *testing.T) {
	s := newLoaded(t, store.NewMemory())
	a := mustCreate(t, s, "a")
	b := mustCreate(t, s, "b")

	if _, err := s.BeginOrCancelEdit(a.ID); err != nil {
		t.Fatalf("begin: %v", err)
	}
	wait(t, mustSave(s.ApplyDelete(b.ID)))
	if s.Session().ActiveID != a.ID {
		t.Fatalf("expected session on a to survive, got %+v", s.Session())
	}
}

func TestSetCategoryFilterLeavesCollection(t *testing.T) {
	s := newLoaded(t, store.NewMemory())
	milk := mustCreate(t, s, "buy milk")

	wait(t, mustSave(s.SetCategoryFilter(entry.Travel)))

	work := collect(s, entry.Work)
	if len(work) != 1 || work[0].ID != milk.ID || work[0].Category != entry.Work || work[0].Complete {
		t.Fatalf("unexpected work entries: %+v", work)
	}
	if travel := collect(s, entry.Travel); len(travel) != 0 {
		t.Fatalf("expected no travel entries, got %+v", travel)
	}
}
