package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jys9049/RN-TodoList/pkg/commands/options"
	"github.com/jys9049/RN-TodoList/pkg/runner/get"
	"github.com/jys9049/RN-TodoList/pkg/store"
)

func addList(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}
	io := &options.IDOptions{}
	wo := &options.WatchOptions{}

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list", "get"},
		Short:   "List the active list, or both",
		Example: `
todos ls
todos ls --category travel
todos ls --all --show-id
todos ls --watch
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			category, err := co.Get()
			if err != nil {
				return output.HandleError(err)
			}
			return run(cmd, func(ctx context.Context, o *opened) error {
				s := get.Get{
					ShowID:   io.ShowID,
					All:      co.All,
					Category: category,
					Todos:    o.Todos,
					Out:      cmd.OutOrStdout(),
				}
				if wo.Watch {
					w, ok := o.Backend.(store.Watcher)
					if !ok {
						return errWatchUnsupported
					}
					var stop context.CancelFunc
					ctx, stop = signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
					defer stop()
					s.Watcher = w
					s.Reload = o.reload
				}
				return s.Do(ctx)
			})
		},
	}

	options.AddCategoryArgs(cmd, co)
	options.AddAllCategoriesArg(cmd, co)
	options.AddShowIDArgs(cmd, io)
	options.AddWatchArgs(cmd, wo)
	registerCategoryCompletion(cmd)

	topLevel.AddCommand(cmd)
}
