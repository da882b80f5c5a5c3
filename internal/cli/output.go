package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/Veraticus/catalog/internal/catalog"
	"github.com/Veraticus/catalog/internal/model"
	"github.com/bytedance/sonic"
)

// Output formats for headless listings.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// WriteProducts writes items to w in the given format.
func WriteProducts(w io.Writer, items []model.Item, format string) error {
	switch format {
	case FormatTable, "":
		return WriteTable(w, items)
	case FormatJSON:
		return WriteJSON(w, items)
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", format, FormatTable, FormatJSON)
	}
}

// WriteTable writes items as aligned columns, or the empty message when
// there are none.
func WriteTable(w io.Writer, items []model.Item) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, SubtleStyle.Render(catalog.EmptyMessage))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		HeaderStyle.Render("ID"),
		HeaderStyle.Render("Product"),
		HeaderStyle.Render("Category"),
		HeaderStyle.Render("User"),
	); err != nil {
		return err
	}

	for _, item := range items {
		category := ""
		if item.Category != nil {
			category = item.Category.Label()
		}

		owner := ""
		if item.User != nil {
			owner = OwnerStyle(item.User.IsFemale(), item.User.IsMale()).Render(item.User.Name)
		}

		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", strconv.Itoa(item.ID), item.Name, category, owner); err != nil {
			return err
		}
	}

	return tw.Flush()
}

// WriteJSON writes items as an indented JSON array.
func WriteJSON(w io.Writer, items []model.Item) error {
	if items == nil {
		items = []model.Item{}
	}

	data, err := sonic.ConfigStd.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode products: %w", err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return err
	}
	return nil
}
