package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Veraticus/catalog/internal/catalog"
	"github.com/Veraticus/catalog/internal/common"
	"github.com/Veraticus/catalog/internal/config"
	"github.com/Veraticus/catalog/internal/fixtures"
	"github.com/Veraticus/catalog/internal/model"
	"github.com/Veraticus/catalog/internal/service"
	"github.com/Veraticus/catalog/internal/storage"
)

// setupLogging points the global logger at w, or stderr when w is nil.
func setupLogging(s config.Settings, w io.Writer) error {
	level, err := common.ParseLevel(s.Logging.Level)
	if err != nil {
		return err
	}
	return common.SetupLogger(level, s.Logging.Format, w)
}

// openLogFile opens the configured log file for appending, or returns
// io.Discard when none is configured.
func openLogFile(s config.Settings) (io.Writer, func(), error) {
	if s.Logging.File == "" {
		return io.Discard, func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(s.Logging.File), 0750); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(s.Logging.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return f, func() {
		if closeErr := f.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", closeErr)
		}
	}, nil
}

// reportingLoader logs referential problems in whatever its inner loader
// returns. Problems never fail the load.
type reportingLoader struct {
	inner  service.FixtureLoader
	source string
}

func (l reportingLoader) Load(ctx context.Context) (model.Fixtures, error) {
	fx, err := l.inner.Load(ctx)
	if err != nil {
		return model.Fixtures{}, err
	}
	fixtures.Report(l.source, fixtures.Validate(fx))
	return fx, nil
}

// openLoader returns the loader for the configured fixture source and a
// function releasing whatever it holds open.
func openLoader(s config.Settings) (service.FixtureLoader, func(), error) {
	var (
		inner   service.FixtureLoader
		cleanup = func() {}
	)

	switch s.Fixtures.Source {
	case config.SourceEmbedded:
		inner = fixtures.Embedded()
	case config.SourceYAML:
		inner = fixtures.NewFileLoader(s.Fixtures.Path)
	case config.SourceSQLite:
		store, err := storage.OpenReadOnly(s.Fixtures.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open fixture database: %w", err)
		}
		inner = store
		cleanup = func() {
			if closeErr := store.Close(); closeErr != nil {
				slog.Error("failed to close storage", "error", closeErr)
			}
		}
	default:
		return nil, nil, fmt.Errorf("%w: %q", common.ErrUnknownSource, s.Fixtures.Source)
	}

	return reportingLoader{inner: inner, source: s.Fixtures.Source}, cleanup, nil
}

// loadFixtures reads the configured dataset.
func loadFixtures(ctx context.Context, s config.Settings) (model.Fixtures, error) {
	loader, cleanup, err := openLoader(s)
	if err != nil {
		return model.Fixtures{}, err
	}
	defer cleanup()

	fx, err := loader.Load(ctx)
	if err != nil {
		return model.Fixtures{}, fmt.Errorf("failed to load fixtures: %w", err)
	}
	return fx, nil
}

// loadCatalog reads the configured dataset and joins it.
func loadCatalog(ctx context.Context, s config.Settings) (*catalog.Catalog, error) {
	fx, err := loadFixtures(ctx, s)
	if err != nil {
		return nil, err
	}
	return catalog.New(fx, catalog.WithLocale(s.UI.Locale)), nil
}
