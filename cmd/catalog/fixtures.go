package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/catalog/internal/cli"
	"github.com/Veraticus/catalog/internal/config"
	"github.com/Veraticus/catalog/internal/fixtures"
	"github.com/Veraticus/catalog/internal/model"
	"github.com/Veraticus/catalog/internal/storage"
	"github.com/spf13/cobra"
)

func fixturesCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "fixtures",
		Short: "Show the users and categories of the configured dataset",
		Long: `Show the users and categories of the configured dataset along with any
referential problems (duplicate IDs, dangling references).

--format yaml prints the whole dataset in the format the yaml source reads,
which makes a convenient starting point for a custom fixture file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return showFixtures(cmd.Context(), cmd.OutOrStdout(), settings, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", cli.FormatTable, "output format (table, yaml)")

	return cmd
}

func showFixtures(ctx context.Context, w io.Writer, s config.Settings, format string) error {
	fx, err := loadFixtures(ctx, s)
	if err != nil {
		return err
	}

	switch format {
	case "yaml":
		data, err := fixtures.Encode(fx)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case cli.FormatTable, "":
	default:
		return fmt.Errorf("unknown output format %q (want table or yaml)", format)
	}

	users, categories, products := fx.Counts()
	fmt.Fprintln(w, cli.FormatTitle(fmt.Sprintf("%d users, %d categories, %d products", users, categories, products)))

	if err := writeUsers(w, fx.Users); err != nil {
		return err
	}
	fmt.Fprintln(w)
	if err := writeCategories(w, fx); err != nil {
		return err
	}

	problems := fixtures.Validate(fx)
	if len(problems) == 0 {
		fmt.Fprintln(w, "\n"+cli.FormatSuccess("No referential problems"))
		return nil
	}

	lines := make([]string, 0, len(problems))
	for _, p := range problems {
		lines = append(lines, p.String())
	}
	fmt.Fprintln(w, "\n"+cli.FormatWarning(fmt.Sprintf("%d problems", len(problems))))
	fmt.Fprintln(w, cli.RenderBox("Problems", strings.Join(lines, "\n")))

	return nil
}

func writeUsers(w io.Writer, users []model.User) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		cli.HeaderStyle.Render("ID"),
		cli.HeaderStyle.Render("User"),
		cli.HeaderStyle.Render("Sex"),
	)
	for _, u := range users {
		name := cli.OwnerStyle(u.IsFemale(), u.IsMale()).Render(u.Name)
		fmt.Fprintf(tw, "%d\t%s\t%s\n", u.ID, name, string(u.Sex))
	}
	return tw.Flush()
}

func writeCategories(w io.Writer, fx model.Fixtures) error {
	owners := make(map[int]string, len(fx.Users))
	for _, u := range fx.Users {
		if _, ok := owners[u.ID]; !ok {
			owners[u.ID] = u.Name
		}
	}

	products := make(map[int]int, len(fx.Categories))
	for _, p := range fx.Products {
		products[p.CategoryID]++
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		cli.HeaderStyle.Render("ID"),
		cli.HeaderStyle.Render("Category"),
		cli.HeaderStyle.Render("Owner"),
		cli.HeaderStyle.Render("Products"),
	)
	for _, c := range fx.Categories {
		owner, ok := owners[c.OwnerID]
		if !ok {
			owner = cli.SubtleStyle.Render("(missing " + strconv.Itoa(c.OwnerID) + ")")
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", c.ID, c.Label(), owner, products[c.ID])
	}
	return tw.Flush()
}

func seedCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the configured dataset into a SQLite database",
		Long: `Write the configured dataset into a SQLite database, creating the schema
if needed and replacing any dataset already stored there. The result can be
browsed with --source sqlite --fixtures <db>.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return seedDatabase(cmd.Context(), cmd.OutOrStdout(), settings, dbPath)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "database file to write (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func seedDatabase(ctx context.Context, w io.Writer, s config.Settings, dbPath string) error {
	fx, err := loadFixtures(ctx, s)
	if err != nil {
		return err
	}

	store, err := storage.NewSQLiteStorage(config.ExpandPath(dbPath))
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Error("failed to close storage", "error", closeErr)
		}
	}()

	progress := cli.NewStepProgress(w, 3, "Seeding")

	progress.Step("Migrating schema")
	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	progress.Step("Saving fixtures")
	if err := store.SaveFixtures(ctx, fx); err != nil {
		return fmt.Errorf("failed to save fixtures: %w", err)
	}

	progress.Step("Verifying")
	stored, err := store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to verify seeded fixtures: %w", err)
	}
	progress.Finish()

	if !equalCounts(fx, stored) {
		return fmt.Errorf("seeded database does not match the source dataset")
	}

	users, categories, products := fx.Counts()
	fmt.Fprintln(w, cli.FormatSuccess(fmt.Sprintf("Seeded %s with %d users, %d categories, %d products",
		store.Path(), users, categories, products)))

	return nil
}

func equalCounts(a, b model.Fixtures) bool {
	au, ac, ap := a.Counts()
	bu, bc, bp := b.Counts()
	return au == bu && ac == bc && ap == bp
}
