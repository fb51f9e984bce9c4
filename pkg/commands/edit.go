package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jys9049/RN-TodoList/pkg/commands/options"
	"github.com/jys9049/RN-TodoList/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var text string

	cmd := &cobra.Command{
		Use:   "edit <entry id> <text...>",
		Short: "Replace the text of a to-do",
		Example: `
todos edit 3f2a9c1b buy oat milk
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires an entry id and the new text")
			}
			io.ID = args[0]
			text = strings.Join(args[1:], " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, o *opened) error {
				s := edit.Edit{
					ID:    io.ID,
					Text:  text,
					Todos: o.Todos,
					Out:   cmd.OutOrStdout(),
				}
				return s.Do(ctx)
			})
		},
	}

	topLevel.AddCommand(cmd)
}
