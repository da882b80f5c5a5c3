package tui

import (
	"strings"

	"github.com/Veraticus/catalog/internal/common"
	"github.com/charmbracelet/lipgloss"
)

// renderLoading renders the loading screen.
func (m Model) renderLoading() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.Title.Render("Loading catalog..."),
		"",
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Reading products, categories and users"),
	)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}

// renderError renders a loading failure.
func (m Model) renderError() string {
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.StatusError.Render("Could not load the catalog"),
		"",
		m.theme.Normal.Render(common.UserMessage(m.lastError)),
		"",
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Press q to quit"),
	)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.theme.BorderedBox.Render(content),
	)
}

// renderBrowser renders the filters, the table and the status bar.
func (m Model) renderBrowser() string {
	header := lipgloss.JoinHorizontal(
		lipgloss.Bottom,
		m.theme.Title.Render("Product catalog"),
		"  ",
		m.theme.Subtitle.Render(m.view.CountLabel()),
	)

	body := m.table.View()
	if m.width >= wideLayout {
		body = lipgloss.JoinHorizontal(
			lipgloss.Top,
			body,
			m.theme.Normal.Render(" │ "),
			m.summary.View(),
		)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, body, m.summary.View())
	}

	sections := []string{
		header,
		m.filters.View(m.view, m.focus),
		body,
		m.renderStatusBar(),
	}
	if m.status != "" {
		sections = append(sections, m.theme.StatusInfo.Render(m.status))
	}
	sections = append(sections, m.help.View(m.keymap))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHelp renders the help screen.
func (m Model) renderHelp() string {
	full := m.help
	full.ShowAll = true
	full.Width = 0

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("Product catalog - Help"),
		"",
		full.View(m.keymap),
		"",
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Press ? or Esc to close help"),
	)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.theme.BorderedBox.Render(content),
	)
}

// renderStatusBar renders the bottom status bar.
func (m Model) renderStatusBar() string {
	left := m.focus.String()
	center := "?" + m.view.Permalink
	right := "? Help"

	spacing := max(2, m.width-lipgloss.Width(left)-lipgloss.Width(center)-lipgloss.Width(right))
	leftPad := spacing / 2
	rightPad := spacing - leftPad

	status := m.theme.StatusInfo.Render(left) +
		strings.Repeat(" ", leftPad) +
		m.theme.Normal.Render(center) +
		strings.Repeat(" ", rightPad) +
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render(right)

	return lipgloss.NewStyle().MaxWidth(m.width).Render(status)
}
