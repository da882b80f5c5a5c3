package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Veraticus/catalog/internal/cli"
	"github.com/Veraticus/catalog/internal/common"
	"github.com/Veraticus/catalog/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	version  = "dev"
	settings config.Settings
	rootCmd  = &cobra.Command{
		Use:   "catalog",
		Short: "🛒 Browse the product catalog",
		Long: `catalog: a terminal browser for a small product catalog.

Products are joined with their category and the category's owner, then
filtered by owner, name and category and sorted by any column.
Run without a subcommand to open the interactive browser.`,
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd, browseOptions{})
		},
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/catalog/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().String("log-file", "", "write logs here while the browser is open")
	rootCmd.PersistentFlags().String("source", config.SourceEmbedded, "fixture source (embedded, yaml, sqlite)")
	rootCmd.PersistentFlags().String("fixtures", "", "fixture file for the yaml and sqlite sources")
	rootCmd.PersistentFlags().String("locale", "en", "collation language for sorting")
	rootCmd.PersistentFlags().String("theme", "default", "color theme (default, light)")

	// Bind flags to viper
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("logging.file", rootCmd.PersistentFlags().Lookup("log-file"))
	_ = viper.BindPFlag("fixtures.source", rootCmd.PersistentFlags().Lookup("source"))
	_ = viper.BindPFlag("fixtures.path", rootCmd.PersistentFlags().Lookup("fixtures"))
	_ = viper.BindPFlag("ui.locale", rootCmd.PersistentFlags().Lookup("locale"))
	_ = viper.BindPFlag("ui.theme", rootCmd.PersistentFlags().Lookup("theme"))

	// Add commands
	rootCmd.AddCommand(browseCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(fixturesCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	interrupts := cli.NewInterruptHandler(os.Stderr)
	ctx, cancel := context.WithCancel(context.Background())
	ctx = interrupts.HandleInterrupts(ctx)

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(common.UserMessage(err)))
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		viper.AddConfigPath(fmt.Sprintf("%s/.config/catalog", home))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("CATALOG")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	loaded, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	settings = loaded

	if err := setupLogging(settings, nil); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "catalog %s\n", version)
		},
	}
}
