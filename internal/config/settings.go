package config

import (
	"fmt"
	"strings"

	"github.com/Veraticus/catalog/internal/common"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// Fixture sources.
const (
	SourceEmbedded = "embedded"
	SourceYAML     = "yaml"
	SourceSQLite   = "sqlite"
)

// Settings is the validated application configuration.
type Settings struct {
	Logging  LoggingSettings
	Fixtures FixtureSettings
	UI       UISettings
}

// LoggingSettings controls the slog handler.
type LoggingSettings struct {
	Level  string
	Format string
	// File receives log output while the TUI owns the terminal. Empty discards it.
	File string
}

// FixtureSettings selects where the dataset comes from.
type FixtureSettings struct {
	Source string
	Path   string
}

// UISettings controls presentation.
type UISettings struct {
	Locale    language.Tag
	Theme     string
	AltScreen bool
}

// SetDefaults registers default values for every known key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", "")
	v.SetDefault("fixtures.source", SourceEmbedded)
	v.SetDefault("fixtures.path", "")
	v.SetDefault("ui.locale", "en")
	v.SetDefault("ui.theme", "default")
	v.SetDefault("ui.alt_screen", true)
}

// Load reads settings from v and validates them.
func Load(v *viper.Viper) (Settings, error) {
	SetDefaults(v)

	s := Settings{
		Logging: LoggingSettings{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
			File:   ExpandPath(v.GetString("logging.file")),
		},
		Fixtures: FixtureSettings{
			Source: strings.ToLower(v.GetString("fixtures.source")),
			Path:   ExpandPath(v.GetString("fixtures.path")),
		},
		UI: UISettings{
			Theme:     strings.ToLower(v.GetString("ui.theme")),
			AltScreen: v.GetBool("ui.alt_screen"),
		},
	}

	tag, err := language.Parse(v.GetString("ui.locale"))
	if err != nil {
		return Settings{}, fmt.Errorf("%w: ui.locale %q: %v", common.ErrInvalidConfig, v.GetString("ui.locale"), err)
	}
	s.UI.Locale = tag

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}

	return s, nil
}

// Validate checks that the settings are usable.
func (s Settings) Validate() error {
	if _, err := common.ParseLevel(s.Logging.Level); err != nil {
		return err
	}

	switch s.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logging.format %q", common.ErrInvalidConfig, s.Logging.Format)
	}

	switch s.Fixtures.Source {
	case SourceEmbedded:
	case SourceYAML, SourceSQLite:
		if s.Fixtures.Path == "" {
			return fmt.Errorf("%w: fixtures.path is required for source %q", common.ErrMissingConfig, s.Fixtures.Source)
		}
	default:
		return fmt.Errorf("%w: %q", common.ErrUnknownSource, s.Fixtures.Source)
	}

	switch s.UI.Theme {
	case "default", "light":
	default:
		return fmt.Errorf("%w: ui.theme %q", common.ErrInvalidConfig, s.UI.Theme)
	}

	return nil
}
