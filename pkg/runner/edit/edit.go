// Package edit provides the runner logic for rewriting an entry's text.
package edit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/fatih/color"

	"github.com/jys9049/RN-TodoList/pkg/printers"
	"github.com/jys9049/RN-TodoList/pkg/todo"
)

// Edit runs one full edit session: begin on ID, replace the draft with Text,
// commit. Blank text leaves the entry as it was.
type Edit struct {
	ID    string
	Text  string
	Todos *todo.Store
	Out   io.Writer
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Todos == nil {
		return errors.New("can not edit, no store")
	}

	id, err := n.Todos.Resolve(n.ID)
	if err != nil {
		return err
	}
	session, err := n.Todos.BeginOrCancelEdit(id)
	if err != nil {
		return err
	}
	if !session.Editing(id) {
		// Something else already had this entry open; that toggle closed it.
		return fmt.Errorf("edit: %s was already being edited", printers.ShortID(id))
	}
	if err := n.Todos.UpdateDraftText(n.Text); err != nil {
		return err
	}
	e, save, err := n.Todos.CommitEdit()
	if err != nil {
		return err
	}
	if err := save.Wait(ctx); err != nil {
		return err
	}

	current, _ := n.Todos.Get(id)
	if e == nil {
		_, _ = fmt.Fprintln(n.out(), "nothing to change, text is blank")
	}
	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}
	pp.NewLine()
	pp.Title(current.Category.String())
	pp.Collection(slices.Collect(n.Todos.Query(current.Category))...)
	return nil
}

func (n *Edit) out() io.Writer {
	if n.Out == nil {
		return color.Output
	}
	return n.Out
}
