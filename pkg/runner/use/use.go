// Package use provides the runner logic for switching the active list.
package use

import (
	"context"
	"errors"
	"io"
	"slices"

	"github.com/jys9049/RN-TodoList/pkg/entry"
	"github.com/jys9049/RN-TodoList/pkg/printers"
	"github.com/jys9049/RN-TodoList/pkg/todo"
)

type Use struct {
	Category entry.Category
	Todos    *todo.Store
	Out      io.Writer
}

func (n *Use) Do(ctx context.Context) error {
	if n.Todos == nil {
		return errors.New("can not switch lists, no store")
	}
	save, err := n.Todos.SetCategoryFilter(n.Category)
	if err != nil {
		return err
	}
	if err := save.Wait(ctx); err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.Tabs(n.Category)
	pp.NewLine()
	pp.Collection(slices.Collect(n.Todos.Query(n.Category))...)
	return nil
}
