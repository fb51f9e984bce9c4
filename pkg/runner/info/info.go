package info

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/jys9049/RN-TodoList/pkg/entry"
	"github.com/jys9049/RN-TodoList/pkg/store"
	"github.com/jys9049/RN-TodoList/pkg/todo"
)

// Info reports where entries are kept and how many each list holds.
type Info struct {
	Config store.Config
	Todos  *todo.Store
	Out    io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("TODOS_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "TODOS_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "TODOS_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("backend:", n.Config.Backend())
	switch n.Config.Backend() {
	case store.BackendRedis:
		tbl.AddRow("redis:", fmt.Sprintf("%s/%d", n.Config.RedisAddr(), n.Config.RedisDB()))
	case store.BackendMemory:
	default:
		tbl.AddRow("path:", n.Config.BasePath())
	}
	if p := n.Config.Prefix(); p != "" {
		tbl.AddRow("prefix:", p)
	}

	if n.Todos == nil {
		_, _ = fmt.Fprintln(out, tbl)
		return fmt.Errorf("failed to open the store")
	}
	tbl.AddRow("active:", n.Todos.Filter().String())
	for _, c := range entry.Categories() {
		all := slices.Collect(n.Todos.Query(c))
		done := 0
		for _, e := range all {
			if e.Complete {
				done++
			}
		}
		tbl.AddRow(c.String()+":", fmt.Sprintf("%d entries, %d done", len(all), done))
	}
	_, _ = fmt.Fprintln(out, tbl)
	return nil
}
