package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/jys9049/RN-TodoList/pkg/commands/options"
	"github.com/jys9049/RN-TodoList/pkg/entry"
	"github.com/jys9049/RN-TodoList/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	ido := &options.IDOptions{}
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:     "rm <entry id>",
		Aliases: []string{"delete"},
		Short:   "Delete a to-do after asking",
		Example: `
todos rm 3f2a9c1b
todos rm 3f2a9c1b --yes
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires an entry id")
			}
			ido.ID = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			confirm := promptConfirm(cmd)
			if co.Yes {
				confirm = func(entry.Entry) (bool, error) { return true, nil }
			}
			return run(cmd, func(ctx context.Context, o *opened) error {
				s := remove.Remove{
					ID:      ido.ID,
					Confirm: confirm,
					Todos:   o.Todos,
					Out:     cmd.OutOrStdout(),
				}
				return s.Do(ctx)
			})
		},
	}

	options.AddConfirmArgs(cmd, co)
	topLevel.AddCommand(cmd)
}

func promptConfirm(cmd *cobra.Command) func(entry.Entry) (bool, error) {
	return func(e entry.Entry) (bool, error) {
		prompt := promptui.Prompt{
			Label:     fmt.Sprintf("Delete %q? Are you sure", e.Text),
			IsConfirm: true,
			Stdin:     io.NopCloser(cmd.InOrStdin()),
			Stdout:    nopWriteCloser{cmd.OutOrStdout()},
		}
		_, err := prompt.Run()
		switch {
		case err == nil:
			return true, nil
		case errors.Is(err, promptui.ErrAbort):
			return false, nil
		default:
			return false, err
		}
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
