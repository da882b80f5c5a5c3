package components

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/Veraticus/catalog/internal/tui/themes"
	"github.com/Veraticus/catalog/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

const (
	maxBarWidth   = 15
	maxGroupLines = 5
)

// SummaryPanelModel shows how much of the catalog is visible and how the
// visible products split across categories and owners.
type SummaryPanelModel struct {
	theme       themes.Theme
	progressBar progress.Model
	categories  []groupCount
	owners      []groupCount
	visible     int
	total       int
	width       int
	compact     bool
}

type groupCount struct {
	name  string
	count int
}

// NewSummaryPanel creates a new summary panel.
func NewSummaryPanel(theme themes.Theme) SummaryPanelModel {
	prog := progress.New(progress.WithDefaultGradient())
	prog.ShowPercentage = false

	return SummaryPanelModel{
		theme:       theme,
		progressBar: prog,
	}
}

// SetView recounts the panel from view.
func (m *SummaryPanelModel) SetView(view viewmodel.CatalogView) {
	m.visible = len(view.Rows)
	m.total = view.Total

	categories := make(map[string]int)
	owners := make(map[string]int)
	for _, row := range view.Rows {
		categories[row.Category]++
		owners[row.Owner]++
	}
	m.categories = rank(categories)
	m.owners = rank(owners)
}

// View renders the summary panel.
func (m SummaryPanelModel) View() string {
	content := m.renderFull()
	if m.compact {
		content = m.renderCompact()
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(content)
}

func (m SummaryPanelModel) renderCompact() string {
	return m.theme.Box.Render(fmt.Sprintf("Showing %d/%d (%.0f%%)", m.visible, m.total, m.ratio()*100))
}

func (m SummaryPanelModel) renderFull() string {
	sections := []string{m.renderProgress()}
	if len(m.categories) > 0 {
		sections = append(sections, "", m.renderGroups("By category", m.categories))
		sections = append(sections, "", m.renderGroups("By owner", m.owners))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m SummaryPanelModel) renderProgress() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Subtitle.Render("Visible"),
		m.progressBar.ViewAs(m.ratio()),
		m.theme.Normal.Render(fmt.Sprintf("%d/%d products (%.0f%%)", m.visible, m.total, m.ratio()*100)),
	)
}

func (m SummaryPanelModel) renderGroups(title string, groups []groupCount) string {
	lines := []string{m.theme.Subtitle.Render(title)}

	largest := groups[0].count
	for _, group := range groups[:min(maxGroupLines, len(groups))] {
		name := group.name
		if name == "" {
			name = "-"
		}
		barLen := group.count * maxBarWidth / largest
		lines = append(lines, fmt.Sprintf("%s %s %d",
			viewmodel.PadRight(viewmodel.TruncateString(name, 18), 18),
			lipgloss.NewStyle().Foreground(m.theme.Primary).Render(strings.Repeat("█", barLen)),
			group.count,
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m SummaryPanelModel) ratio() float64 {
	if m.total == 0 {
		return 0
	}
	return float64(m.visible) / float64(m.total)
}

// SetCompact sets compact mode.
func (m *SummaryPanelModel) SetCompact(compact bool) {
	m.compact = compact
}

// Resize updates the component size.
func (m *SummaryPanelModel) Resize(width int) {
	m.width = width
	m.progressBar.Width = max(10, min(width-4, 40))
}

func rank(counts map[string]int) []groupCount {
	groups := make([]groupCount, 0, len(counts))
	for name, count := range counts {
		groups = append(groups, groupCount{name: name, count: count})
	}
	slices.SortFunc(groups, func(a, b groupCount) int {
		if c := cmp.Compare(b.count, a.count); c != 0 {
			return c
		}
		return strings.Compare(a.name, b.name)
	})
	return groups
}
