package printers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/jys9049/RN-TodoList/pkg/entry"
	"github.com/jys9049/RN-TodoList/pkg/glyph"
)

func init() {
	color.NoColor = true
}

func TestCollectionShowsBoxesAndIDs(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{ShowID: true, Out: &buf}
	pp.Collection(
		entry.Entry{ID: "0123456789abcdef", Text: "buy milk"},
		entry.Entry{ID: "fedcba9876543210", Text: "call mom", Complete: true},
	)

	out := buf.String()
	for _, want := range []string{"01234567", "fedcba98", glyph.Open.Symbol + " buy milk", glyph.Done.Symbol + " call mom"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "0123456789abcdef") {
		t.Fatalf("expected ids to be shortened, got:\n%s", out)
	}
}

func TestCollectionMarksEditing(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Editing: "a", Out: &buf}
	pp.Collection(entry.Entry{ID: "a", Text: "draft"})
	if !strings.Contains(buf.String(), glyph.Edit.Symbol) {
		t.Fatalf("expected edit marker, got:\n%s", buf.String())
	}
}

func TestCollectionEmpty(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Collection()
	if !strings.Contains(buf.String(), "none") {
		t.Fatalf("expected none marker, got %q", buf.String())
	}
}

func TestTitleWithCount(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.TitleWithCount("Work", 1)
	pp.TitleWithCount("Travel", 3)
	out := buf.String()
	if !strings.Contains(out, "Work - 1 entry") || !strings.Contains(out, "Travel - 3 entries") {
		t.Fatalf("unexpected titles:\n%s", out)
	}
}

func TestTabs(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Tabs(entry.Travel)
	if got := strings.TrimSpace(buf.String()); got != "Work    Travel" {
		t.Fatalf("unexpected tabs %q", got)
	}
}
