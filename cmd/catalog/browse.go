package main

import (
	"fmt"

	"github.com/Veraticus/catalog/internal/tui"
	"github.com/Veraticus/catalog/internal/tui/themes"
	"github.com/spf13/cobra"
)

type browseOptions struct {
	state       string
	noAltScreen bool
}

func browseCmd() *cobra.Command {
	var opts browseOptions

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive catalog browser",
		Long: `Open the interactive browser.

Use --state with a permalink copied from the status bar (or printed by
'catalog list --permalink') to start from a saved view.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.state, "state", "", "start from this permalink")
	cmd.Flags().BoolVar(&opts.noAltScreen, "no-alt-screen", false, "render inline instead of in the alternate screen")

	return cmd
}

func runBrowse(cmd *cobra.Command, opts browseOptions) error {
	s := settings

	// The browser owns the terminal, so logs go to a file or nowhere.
	logOutput, closeLog, err := openLogFile(s)
	if err != nil {
		return err
	}
	defer closeLog()
	if err := setupLogging(s, logOutput); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	loader, cleanup, err := openLoader(s)
	if err != nil {
		return err
	}
	defer cleanup()

	return tui.Run(cmd.Context(),
		tui.WithLoader(loader),
		tui.WithTheme(themes.GetTheme(s.UI.Theme)),
		tui.WithLocale(s.UI.Locale),
		tui.WithPermalink(opts.state),
		tui.WithAltScreen(s.UI.AltScreen && !opts.noAltScreen),
	)
}
