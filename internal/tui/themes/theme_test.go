package themes

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestGetTheme(t *testing.T) {
	assert.Equal(t, Light.Primary, GetTheme(NameLight).Primary)
	assert.Equal(t, Default.Primary, GetTheme(NameDefault).Primary)
	assert.Equal(t, Default.Primary, GetTheme("unknown").Primary)
}

func TestTheme_OwnerStyle(t *testing.T) {
	for _, theme := range []Theme{Default, Light} {
		assert.Equal(t, lipgloss.TerminalColor(theme.Error), theme.OwnerStyle(true, false).GetForeground())
		assert.Equal(t, lipgloss.TerminalColor(theme.Info), theme.OwnerStyle(false, true).GetForeground())
		assert.Equal(t, lipgloss.TerminalColor(lipgloss.NoColor{}), theme.OwnerStyle(false, false).GetForeground())
	}
}
