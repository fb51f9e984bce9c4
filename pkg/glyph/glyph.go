// Package glyph holds the symbols used when printing entries.
package glyph

import "fmt"

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
	strikeCode    = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

var (
	Open = Glyph{Key: "open", Symbol: "☐", Meaning: "to do"}
	Done = Glyph{Key: "done", Symbol: "☑", Meaning: "done, struck through"}
	Edit = Glyph{Key: "edit", Symbol: "✎", Meaning: "being edited"}
)

// DefaultGlyphs lists every glyph in legend order.
func DefaultGlyphs() []Glyph {
	return []Glyph{Open, Done, Edit}
}

// ForComplete picks the checkbox for an entry's completion state.
func ForComplete(complete bool) Glyph {
	if complete {
		return Done
	}
	return Open
}

func (g Glyph) String() string {
	return g.Symbol
}
