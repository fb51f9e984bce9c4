package options

import (
	"github.com/spf13/cobra"

	"github.com/jys9049/RN-TodoList/pkg/entry"
)

// CategoryOptions selects which list a command works on.
type CategoryOptions struct {
	Category string
	All      bool
}

func AddCategoryArgs(cmd *cobra.Command, o *CategoryOptions) {
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Specify the list, work or travel. Defaults to the active list.")
}

func AddAllCategoriesArg(cmd *cobra.Command, o *CategoryOptions) {
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Show both lists.")
}

// Get returns the chosen category, or nil when the flag was not set.
func (o *CategoryOptions) Get() (*entry.Category, error) {
	if o.Category == "" {
		return nil, nil
	}
	c, err := entry.ParseCategory(o.Category)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
