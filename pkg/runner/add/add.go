// Package add provides the runner logic for creating entries.
package add

import (
	"context"
	"errors"
	"io"
	"slices"

	"github.com/jys9049/RN-TodoList/pkg/entry"
	"github.com/jys9049/RN-TodoList/pkg/printers"
	"github.com/jys9049/RN-TodoList/pkg/todo"
)

// Add creates an entry in the active list, switching lists first when
// Category is set.
type Add struct {
	Text     string
	Category *entry.Category
	ShowID   bool

	Todos *todo.Store
	Out   io.Writer
}

func (n *Add) Do(ctx context.Context) error {
	if n.Todos == nil {
		return errors.New("can not add, no store")
	}

	if n.Category != nil && *n.Category != n.Todos.Filter() {
		save, err := n.Todos.SetCategoryFilter(*n.Category)
		if err != nil {
			return err
		}
		if err := save.Wait(ctx); err != nil {
			return err
		}
	}

	_, save, err := n.Todos.CreateEntry(n.Text)
	if err != nil {
		return err
	}
	if err := save.Wait(ctx); err != nil {
		return err
	}

	active := n.Todos.Filter()
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.Title(active.String())
	pp.Collection(slices.Collect(n.Todos.Query(active))...)
	return nil
}
