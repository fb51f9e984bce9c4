package key

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/jys9049/RN-TodoList/pkg/glyph"
)

func init() {
	color.NoColor = true
}

func TestKeyListsEveryGlyph(t *testing.T) {
	var out bytes.Buffer
	k := Key{Out: &out}
	if err := k.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	for _, g := range glyph.DefaultGlyphs() {
		if !strings.Contains(out.String(), g.Symbol) || !strings.Contains(out.String(), g.Meaning) {
			t.Errorf("legend missing %s %q", g.Symbol, g.Meaning)
		}
	}
}
