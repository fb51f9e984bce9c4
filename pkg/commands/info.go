package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jys9049/RN-TodoList/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Where the lists are stored and how big they are.",
		Example: `
todos info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, o *opened) error {
				s := info.Info{
					Config: o.Config,
					Todos:  o.Todos,
					Out:    cmd.OutOrStdout(),
				}
				return s.Do(ctx)
			})
		},
	}

	topLevel.AddCommand(cmd)
}
