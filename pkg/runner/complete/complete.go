// Package complete provides the runner logic for marking entries complete.
package complete

import (
	"context"
	"errors"
	"io"
	"slices"

	"github.com/jys9049/RN-TodoList/pkg/printers"
	"github.com/jys9049/RN-TodoList/pkg/todo"
)

// Complete toggles an entry between open and done.
type Complete struct {
	ID    string
	Todos *todo.Store
	Out   io.Writer
}

// Do executes the toggle for the configured entry ID or unique prefix.
func (n *Complete) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}

	if n.Todos == nil {
		return errors.New("can not complete, no store")
	}

	id, err := n.Todos.Resolve(n.ID)
	if err != nil {
		return err
	}
	e, save, err := n.Todos.ToggleComplete(id)
	if err != nil {
		return err
	}
	if err := save.Wait(ctx); err != nil {
		return err
	}

	pp.NewLine()
	pp.Title(e.Category.String())
	pp.Collection(slices.Collect(n.Todos.Query(e.Category))...)
	return nil
}
