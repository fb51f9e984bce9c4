package commands

import (
	"context"
	"errors"
	"io"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jys9049/RN-TodoList/pkg/commands/options"
	"github.com/jys9049/RN-TodoList/pkg/store"
	"github.com/jys9049/RN-TodoList/pkg/todo"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "todos",
		Short: base.Wrap80("Work and travel to-do lists on the command line."),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetLevel(log.WarnLevel)
			if output.Verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddOutputArg(cmd, output)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addList(topLevel)
	addDone(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addUse(topLevel)
	addInfo(topLevel)
	addKey(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// opened is a loaded store plus the backend it has to release.
type opened struct {
	Config  store.Config
	Backend store.Backend
	Todos   *todo.Store
}

func open(ctx context.Context) (*opened, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	backend, err := store.Open(cfg)
	if err != nil {
		return nil, err
	}
	todos := todo.New(backend)
	if err := todos.Load(ctx); err != nil {
		return nil, errors.Join(err, todos.Close(ctx), closeBackend(backend))
	}
	return &opened{Config: cfg, Backend: backend, Todos: todos}, nil
}

func (o *opened) Close(ctx context.Context) error {
	return errors.Join(o.Todos.Close(ctx), closeBackend(o.Backend))
}

// reload opens a second store on the same backend, for printing after an
// outside change.
func (o *opened) reload(ctx context.Context) (*todo.Store, error) {
	fresh := todo.New(o.Backend)
	if err := fresh.Load(ctx); err != nil {
		return nil, err
	}
	return fresh, fresh.Close(ctx)
}

func closeBackend(b store.Backend) error {
	if c, ok := b.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// run opens the store, hands it to fn, and always closes it so queued saves
// land before the process exits.
func run(cmd *cobra.Command, fn func(ctx context.Context, o *opened) error) error {
	cmd.SilenceUsage = true
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	o, err := open(ctx)
	if err != nil {
		return output.HandleError(err)
	}
	err = fn(ctx, o)
	if cerr := o.Close(ctx); err == nil {
		err = cerr
	}
	return output.HandleError(err)
}

var errWatchUnsupported = errors.New("watch needs the diskv backend")
