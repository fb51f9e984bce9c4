package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jys9049/RN-TodoList/pkg/commands/options"
	"github.com/jys9049/RN-TodoList/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}
	io := &options.IDOptions{}
	var text string

	cmd := &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a to-do to the active list",
		Example: `
todos add buy milk
todos add --category travel Lisbon
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires the to-do text")
			}
			text = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			category, err := co.Get()
			if err != nil {
				return output.HandleError(err)
			}
			return run(cmd, func(ctx context.Context, o *opened) error {
				s := add.Add{
					Text:     text,
					Category: category,
					ShowID:   io.ShowID,
					Todos:    o.Todos,
					Out:      cmd.OutOrStdout(),
				}
				return s.Do(ctx)
			})
		},
	}

	options.AddCategoryArgs(cmd, co)
	options.AddShowIDArgs(cmd, io)
	registerCategoryCompletion(cmd)

	topLevel.AddCommand(cmd)
}
