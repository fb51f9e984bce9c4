// Package remove provides the runner logic for deleting entries.
package remove

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/fatih/color"

	"github.com/jys9049/RN-TodoList/pkg/entry"
	"github.com/jys9049/RN-TodoList/pkg/printers"
	"github.com/jys9049/RN-TodoList/pkg/todo"
)

// Remove deletes an entry once Confirm agrees.
type Remove struct {
	ID      string
	Confirm func(e entry.Entry) (bool, error)
	Todos   *todo.Store
	Out     io.Writer
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Todos == nil {
		return errors.New("can not remove, no store")
	}
	if n.Confirm == nil {
		return errors.New("can not remove, no confirmation")
	}

	id, err := n.Todos.Resolve(n.ID)
	if err != nil {
		return err
	}
	e, ok := n.Todos.Get(id)
	if !ok {
		return todo.ErrNotFound
	}

	sure, err := n.Confirm(e)
	if err != nil {
		return err
	}
	if !sure {
		_, _ = fmt.Fprintln(n.out(), "kept", e.Text)
		return nil
	}

	save, err := n.Todos.ApplyDelete(id)
	if err != nil {
		return err
	}
	if err := save.Wait(ctx); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}
	pp.NewLine()
	pp.Title(e.Category.String())
	pp.Collection(slices.Collect(n.Todos.Query(e.Category))...)
	return nil
}

func (n *Remove) out() io.Writer {
	if n.Out == nil {
		return color.Output
	}
	return n.Out
}
