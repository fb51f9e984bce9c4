package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/jys9049/RN-TodoList/pkg/entry"
	"github.com/jys9049/RN-TodoList/pkg/runner/use"
)

func addUse(topLevel *cobra.Command) {
	var category entry.Category

	cmd := &cobra.Command{
		Use:       "use <work|travel>",
		Short:     "Switch the active list",
		ValidArgs: []string{"work", "travel"},
		Example: `
todos use travel
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a list name, work or travel")
			}
			var err error
			category, err = entry.ParseCategory(args[0])
			return err
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, o *opened) error {
				s := use.Use{
					Category: category,
					Todos:    o.Todos,
					Out:      cmd.OutOrStdout(),
				}
				return s.Do(ctx)
			})
		},
	}

	topLevel.AddCommand(cmd)
}
