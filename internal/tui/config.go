package tui

import (
	"io"

	"github.com/Veraticus/catalog/internal/service"
	"github.com/Veraticus/catalog/internal/tui/themes"
	"golang.org/x/text/language"
)

// Config holds TUI configuration.
type Config struct {
	Theme     themes.Theme
	Loader    service.FixtureLoader
	Input     io.Reader
	Output    io.Writer
	Locale    language.Tag
	Permalink string
	Width     int
	Height    int
	AltScreen bool
	ShowHelp  bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:     themes.Default,
		Locale:    language.English,
		Width:     100,
		Height:    30,
		AltScreen: true,
	}
}

// WithLoader sets the fixture source.
func WithLoader(loader service.FixtureLoader) Option {
	return func(c *Config) {
		c.Loader = loader
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithLocale sets the collation language for sorting.
func WithLocale(tag language.Tag) Option {
	return func(c *Config) {
		c.Locale = tag
	}
}

// WithPermalink starts the session from an encoded state.
func WithPermalink(permalink string) Option {
	return func(c *Config) {
		c.Permalink = permalink
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithAltScreen toggles the alternate screen buffer.
func WithAltScreen(enabled bool) Option {
	return func(c *Config) {
		c.AltScreen = enabled
	}
}

// WithIO overrides the terminal input and output.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(c *Config) {
		c.Input = in
		c.Output = out
	}
}
