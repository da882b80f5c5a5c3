package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Normal      lipgloss.Style
	Bold        lipgloss.Style
	Selected    lipgloss.Style
	Highlighted lipgloss.Style
	Header      lipgloss.Style
	Cell        lipgloss.Style
	Tab         lipgloss.Style
	TabActive   lipgloss.Style
	Chip        lipgloss.Style
	ChipOn      lipgloss.Style
	ChipAllDim  lipgloss.Style
	Cursor      lipgloss.Style
	Box         lipgloss.Style
	BorderedBox lipgloss.Style
	StatusInfo  lipgloss.Style
	StatusError lipgloss.Style
	Empty       lipgloss.Style
	Primary     lipgloss.Color
	Secondary   lipgloss.Color
	Muted       lipgloss.Color
	Border      lipgloss.Color
	Foreground  lipgloss.Color
	Background  lipgloss.Color
	Info        lipgloss.Color
	Error       lipgloss.Color
}

// Theme names accepted by GetTheme.
const (
	NameDefault = "default"
	NameLight   = "light"
)

// Default is the default dark theme.
var Default = Theme{
	// Colors
	Primary:    lipgloss.Color("#7c3aed"),
	Secondary:  lipgloss.Color("#a78bfa"),
	Error:      lipgloss.Color("#ef4444"),
	Info:       lipgloss.Color("#3b82f6"),
	Background: lipgloss.Color("#1a1a1a"),
	Foreground: lipgloss.Color("#fafafa"),
	Border:     lipgloss.Color("#404040"),
	Muted:      lipgloss.Color("#737373"),

	// Text styles
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#7c3aed")).
		Foreground(lipgloss.Color("#fafafa")).
		Bold(true),
	Highlighted: lipgloss.NewStyle().
		Background(lipgloss.Color("#404040")).
		Foreground(lipgloss.Color("#fafafa")),

	// Table
	Header: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#a78bfa")).
		Padding(0, 1),
	Cell: lipgloss.NewStyle().
		Padding(0, 1),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")).
		Italic(true).
		Padding(1, 2),

	// Filter panel
	Tab: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")).
		Padding(0, 1),
	TabActive: lipgloss.NewStyle().
		Background(lipgloss.Color("#7c3aed")).
		Foreground(lipgloss.Color("#fafafa")).
		Bold(true).
		Padding(0, 1),
	Chip: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")).
		Padding(0, 1),
	ChipOn: lipgloss.NewStyle().
		Background(lipgloss.Color("#404040")).
		Foreground(lipgloss.Color("#fafafa")).
		Padding(0, 1),
	ChipAllDim: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")).
		Underline(true).
		Padding(0, 1),
	Cursor: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7c3aed")).
		Bold(true),

	// Containers
	Box: lipgloss.NewStyle().
		Padding(0, 1),
	BorderedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(0, 1),

	// Status styles
	StatusInfo: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#3b82f6")).
		Bold(true),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ef4444")).
		Bold(true),
}

// Light is a theme for light terminal backgrounds.
var Light = Theme{
	// Colors
	Primary:    lipgloss.Color("#6d28d9"),
	Secondary:  lipgloss.Color("#7c3aed"),
	Error:      lipgloss.Color("#b91c1c"),
	Info:       lipgloss.Color("#1d4ed8"),
	Background: lipgloss.Color("#ffffff"),
	Foreground: lipgloss.Color("#171717"),
	Border:     lipgloss.Color("#d4d4d4"),
	Muted:      lipgloss.Color("#737373"),

	// Text styles
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#171717")),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#525252")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#171717")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#171717")),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#6d28d9")).
		Foreground(lipgloss.Color("#ffffff")).
		Bold(true),
	Highlighted: lipgloss.NewStyle().
		Background(lipgloss.Color("#e5e5e5")).
		Foreground(lipgloss.Color("#171717")),

	// Table
	Header: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#6d28d9")).
		Padding(0, 1),
	Cell: lipgloss.NewStyle().
		Padding(0, 1),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")).
		Italic(true).
		Padding(1, 2),

	// Filter panel
	Tab: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#525252")).
		Padding(0, 1),
	TabActive: lipgloss.NewStyle().
		Background(lipgloss.Color("#6d28d9")).
		Foreground(lipgloss.Color("#ffffff")).
		Bold(true).
		Padding(0, 1),
	Chip: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")).
		Padding(0, 1),
	ChipOn: lipgloss.NewStyle().
		Background(lipgloss.Color("#e5e5e5")).
		Foreground(lipgloss.Color("#171717")).
		Padding(0, 1),
	ChipAllDim: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")).
		Underline(true).
		Padding(0, 1),
	Cursor: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6d28d9")).
		Bold(true),

	// Containers
	Box: lipgloss.NewStyle().
		Padding(0, 1),
	BorderedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#d4d4d4")).
		Padding(0, 1),

	// Status styles
	StatusInfo: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#1d4ed8")).
		Bold(true),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#b91c1c")).
		Bold(true),
}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case NameLight:
		return Light
	default:
		return Default
	}
}

// OwnerStyle colors an owner's name by tone: error for female owners, info
// for male owners, and no styling otherwise.
func (t Theme) OwnerStyle(female, male bool) lipgloss.Style {
	switch {
	case female:
		return lipgloss.NewStyle().Foreground(t.Error)
	case male:
		return lipgloss.NewStyle().Foreground(t.Info)
	default:
		return lipgloss.NewStyle()
	}
}
