package get

import (
	"context"
	"errors"
	"io"
	"slices"

	log "github.com/sirupsen/logrus"

	"github.com/jys9049/RN-TodoList/pkg/entry"
	"github.com/jys9049/RN-TodoList/pkg/printers"
	"github.com/jys9049/RN-TodoList/pkg/store"
	"github.com/jys9049/RN-TodoList/pkg/todo"
)

// Get lists one list, or both with All. Category nil means the active list.
type Get struct {
	ShowID   bool
	All      bool
	Category *entry.Category
	Todos    *todo.Store
	Out      io.Writer

	// Watcher and Reload are only needed to keep printing after outside
	// changes.
	Watcher store.Watcher
	Reload  func(ctx context.Context) (*todo.Store, error)
}

func (n *Get) Do(ctx context.Context) error {
	if n.Todos == nil {
		return errors.New("can not get, no store")
	}
	n.print(n.Todos)
	if n.Watcher == nil {
		return nil
	}
	if n.Reload == nil {
		return errors.New("can not watch, no reload")
	}

	events, err := n.Watcher.Watch(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			log.WithField("key", ev.Key).Debug("reloading after change")
			s, err := n.Reload(ctx)
			if err != nil {
				return err
			}
			n.print(s)
		}
	}
}

func (n *Get) print(s *todo.Store) {
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out, Editing: s.Session().ActiveID}
	active := s.Filter()

	pp.NewLine()
	pp.Tabs(active)
	pp.NewLine()

	cats := []entry.Category{active}
	switch {
	case n.All:
		cats = entry.Categories()
	case n.Category != nil:
		cats = []entry.Category{*n.Category}
	}
	for _, c := range cats {
		all := slices.Collect(s.Query(c))
		pp.TitleWithCount(c.String(), len(all))
		pp.Collection(all...)
	}
}
