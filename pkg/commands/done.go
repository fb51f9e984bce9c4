package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/jys9049/RN-TodoList/pkg/commands/options"
	"github.com/jys9049/RN-TodoList/pkg/runner/complete"
)

func addDone(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "done <entry id>",
		Aliases: []string{"complete", "undo"},
		Short:   "Toggle a to-do between open and done",
		Example: `
todos done 3f2a9c1b
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires an entry id")
			}
			io.ID = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, o *opened) error {
				s := complete.Complete{
					ID:    io.ID,
					Todos: o.Todos,
					Out:   cmd.OutOrStdout(),
				}
				return s.Do(ctx)
			})
		},
	}

	topLevel.AddCommand(cmd)
}
