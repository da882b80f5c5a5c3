package main

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/Veraticus/catalog/internal/catalog"
	"github.com/Veraticus/catalog/internal/cli"
	"github.com/Veraticus/catalog/internal/common"
	"github.com/Veraticus/catalog/internal/config"
	"github.com/spf13/cobra"
)

type listOptions struct {
	query        string
	sort         string
	state        string
	format       string
	categories   []string
	owner        int
	noCategories bool
	desc         bool
	permalink    bool
}

func listCmd() *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the products matching a set of filters",
		Long: `Print the visible products without opening the browser.

Filters start from the browser's initial view (every owner, every category,
sorted by ID) or from --state, and each flag given adjusts that view.`,
		Example: `  catalog list --owner 2 --sort name --desc
  catalog list --query milk --format json
  catalog list --category Drinks --category Clothes
  catalog list --state 'owner=1&sort=category'`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listProducts(cmd.Context(), cmd.OutOrStdout(), settings, opts, cmd.Flags().Changed)
		},
	}

	cmd.Flags().IntVar(&opts.owner, "owner", 0, "only products owned by this user ID (0 for all)")
	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "case-insensitive product name search")
	cmd.Flags().StringArrayVarP(&opts.categories, "category", "c", nil, "category title to include (repeatable)")
	cmd.Flags().BoolVar(&opts.noCategories, "no-categories", false, "deselect every category")
	cmd.Flags().StringVarP(&opts.sort, "sort", "s", "", "sort column (id, name, category, owner, none)")
	cmd.Flags().BoolVar(&opts.desc, "desc", false, "sort descending")
	cmd.Flags().StringVar(&opts.state, "state", "", "start from this permalink")
	cmd.Flags().StringVarP(&opts.format, "format", "f", cli.FormatTable, "output format (table, json)")
	cmd.Flags().BoolVar(&opts.permalink, "permalink", false, "print the permalink of the resulting view instead of products")

	return cmd
}

func listProducts(ctx context.Context, w io.Writer, s config.Settings, opts listOptions, changed func(string) bool) error {
	c, err := loadCatalog(ctx, s)
	if err != nil {
		return err
	}

	state, err := buildState(c, opts, changed)
	if err != nil {
		return err
	}

	if opts.permalink {
		_, err := fmt.Fprintln(w, c.Permalink(state))
		return err
	}

	return cli.WriteProducts(w, c.Visible(state), opts.format)
}

// buildState applies the flags that were set, in the browser's order of
// controls, on top of the initial or permalinked state.
func buildState(c *catalog.Catalog, opts listOptions, changed func(string) bool) (catalog.State, error) {
	state := c.InitialState()
	if opts.state != "" {
		parsed, err := c.ParsePermalink(opts.state)
		if err != nil {
			return catalog.State{}, common.NewUserError("invalid --state value", err)
		}
		state = parsed
	}

	if changed("owner") {
		state = c.Reduce(state, catalog.SetOwner{ID: opts.owner})
	}
	if changed("query") {
		state = c.Reduce(state, catalog.SetQuery{Text: opts.query})
	}

	switch {
	case opts.noCategories:
		state = c.Reduce(state, catalog.ClearCategories{})
	case len(opts.categories) > 0:
		titles := c.Titles()
		state = c.Reduce(state, catalog.ClearCategories{})
		for _, title := range opts.categories {
			if !slices.Contains(titles, title) {
				return catalog.State{}, common.NewUserError(
					fmt.Sprintf("unknown category %q", title),
					fmt.Errorf("%w: category %q", common.ErrNotFound, title),
				)
			}
			if !state.Selected(title) {
				state = c.Reduce(state, catalog.ToggleCategory{Title: title})
			}
		}
	}

	direction := catalog.Ascending
	if opts.desc {
		direction = catalog.Descending
	}

	switch {
	case changed("sort"):
		key, err := catalog.ParseSortKey(opts.sort)
		if err != nil {
			return catalog.State{}, common.NewUserError(fmt.Sprintf("unknown sort column %q", opts.sort), err)
		}
		state = c.Reduce(state, catalog.SetSort{Key: key, Direction: direction})
	case changed("desc"):
		state = c.Reduce(state, catalog.SetSort{Key: state.SortKey, Direction: direction})
	}

	return state, nil
}
