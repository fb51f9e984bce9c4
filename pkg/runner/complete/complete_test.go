package complete

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/jys9049/RN-TodoList/pkg/store"
	"github.com/jys9049/RN-TodoList/pkg/todo"
)

func init() {
	color.NoColor = true
}

func TestCompleteTogglesByPrefix(t *testing.T) {
	ctx := context.Background()
	s := todo.New(store.NewMemory(), todo.WithIDs(func() string { return "abc123" }))
	t.Cleanup(func() { _ = s.Close(ctx) })
	if err := s.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, _, err := s.CreateEntry("water plants"); err != nil {
		t.Fatalf("create: %v", err)
	}

	var out bytes.Buffer
	c := Complete{ID: "abc", Todos: s, Out: &out}
	if err := c.Do(ctx); err != nil {
		t.Fatalf("do: %v", err)
	}
	if e, _ := s.Get("abc123"); !e.Complete {
		t.Fatal("expected entry to be complete")
	}
	if !strings.Contains(out.String(), "water plants") {
		t.Fatalf("expected the list to be printed, got %q", out.String())
	}

	if err := c.Do(ctx); err != nil {
		t.Fatalf("second do: %v", err)
	}
	if e, _ := s.Get("abc123"); e.Complete {
		t.Fatal("expected the second toggle to reopen the entry")
	}
}

func TestCompleteUnknown(t *testing.T) {
	ctx := context.Background()
	s := todo.New(store.NewMemory())
	t.Cleanup(func() { _ = s.Close(ctx) })
	if err := s.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	c := Complete{ID: "missing", Todos: s, Out: &bytes.Buffer{}}
	if err := c.Do(ctx); !errors.Is(err, todo.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
