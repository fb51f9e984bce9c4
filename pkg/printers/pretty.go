package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/jys9049/RN-TodoList/pkg/entry"
	"github.com/jys9049/RN-TodoList/pkg/glyph"
)

// ShortIDLen is how much of an id is shown with --show-id.
const ShortIDLen = 8

type PrettyPrint struct {
	ShowID bool
	// Editing marks the entry with an edit in progress.
	Editing string
	Out     io.Writer
}

var (
	spacing = strings.Repeat(" ", ShortIDLen+2)
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

// Tabs prints the two list names with the active one highlighted.
func (pp *PrettyPrint) Tabs(active entry.Category) {
	on := color.New(color.Bold)
	off := color.New(color.Faint)

	names := make([]string, 0, 2)
	for _, c := range entry.Categories() {
		if c == active {
			names = append(names, on.Sprint(c.String()))
		} else {
			names = append(names, off.Sprint(c.String()))
		}
	}
	_, _ = fmt.Fprintln(pp.out(), strings.Join(names, "    "))
}

func (pp *PrettyPrint) Collection(entries ...entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Fprint(pp.out(), spacing)
		}
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	done := color.New(color.CrossedOut, color.Faint)

	tbl := uitable.New()
	tbl.Separator = " "
	for _, e := range entries {
		box := glyph.ForComplete(e.Complete).String()
		if e.ID == pp.Editing {
			box = glyph.Edit.String()
		}
		text := e.Text
		if e.Complete {
			text = done.Sprint(text)
		}
		if pp.ShowID {
			tbl.AddRow(y.Sprint(ShortID(e.ID)), box, text)
		} else {
			tbl.AddRow(box, text)
		}
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = fmt.Fprintln(pp.out(), "")
}

func ShortID(id string) string {
	if len(id) <= ShortIDLen {
		return id
	}
	return id[:ShortIDLen]
}
