package components

import (
	"strings"

	"github.com/Veraticus/catalog/internal/tui/themes"
	"github.com/Veraticus/catalog/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AllChip is the chip index of the "All" category chip.
const AllChip = 0

// FilterPanelModel renders the owner tabs, the search box and the category
// chips. It owns the search input and the chip cursor; the selection itself
// lives in the catalog state.
type FilterPanelModel struct {
	theme      themes.Theme
	search     textinput.Model
	chipCursor int
	width      int
}

// NewFilterPanel creates a filter panel with an empty search box.
func NewFilterPanel(theme themes.Theme) FilterPanelModel {
	search := textinput.New()
	search.Placeholder = "Search products..."
	search.Prompt = "Search: "
	search.CharLimit = 0

	return FilterPanelModel{
		theme:  theme,
		search: search,
		width:  80,
	}
}

// FocusSearch focuses the search input.
func (m *FilterPanelModel) FocusSearch() tea.Cmd {
	return m.search.Focus()
}

// BlurSearch removes focus from the search input.
func (m *FilterPanelModel) BlurSearch() {
	m.search.Blur()
}

// SearchFocused reports whether the search input has focus.
func (m FilterPanelModel) SearchFocused() bool {
	return m.search.Focused()
}

// Query returns the text in the search input.
func (m FilterPanelModel) Query() string {
	return m.search.Value()
}

// SetQuery replaces the text in the search input.
func (m *FilterPanelModel) SetQuery(query string) {
	m.search.SetValue(query)
}

// UpdateSearch forwards a message to the search input.
func (m FilterPanelModel) UpdateSearch(msg tea.Msg) (FilterPanelModel, tea.Cmd) {
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// MoveChip moves the chip cursor by delta, wrapping over the "All" chip and
// count category chips.
func (m *FilterPanelModel) MoveChip(delta, count int) {
	total := count + 1
	m.chipCursor = ((m.chipCursor+delta)%total + total) % total
}

// ChipCursor returns the chip under the cursor: AllChip or 1 + category index.
func (m FilterPanelModel) ChipCursor() int {
	return m.chipCursor
}

// Resize updates the component width.
func (m *FilterPanelModel) Resize(width int) {
	m.width = width
	m.search.Width = max(10, width-len(m.search.Prompt)-20)
}

// View renders the panel for view with the given focus.
func (m FilterPanelModel) View(view viewmodel.CatalogView, focus viewmodel.Focus) string {
	return lipgloss.NewStyle().MaxWidth(m.width).Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderOwners(view),
		m.renderSearch(view),
		m.renderCategories(view, focus),
	))
}

func (m FilterPanelModel) renderOwners(view viewmodel.CatalogView) string {
	tabs := make([]string, 0, len(view.Owners)+1)
	tabs = append(tabs, m.theme.Subtitle.Render("Owner:"))
	for _, tab := range view.Owners {
		if tab.Active {
			tabs = append(tabs, m.theme.TabActive.Render(tab.Label))
		} else {
			tabs = append(tabs, m.theme.Tab.Render(tab.Label))
		}
	}
	return strings.Join(tabs, " ")
}

func (m FilterPanelModel) renderSearch(view viewmodel.CatalogView) string {
	line := m.search.View()
	if view.ShowClearHint() {
		line += "  " + lipgloss.NewStyle().Foreground(m.theme.Muted).Render("[ctrl+u] clear")
	}
	return line
}

func (m FilterPanelModel) renderCategories(view viewmodel.CatalogView, focus viewmodel.Focus) string {
	chips := make([]string, 0, len(view.Categories)+2)
	chips = append(chips, m.theme.Subtitle.Render("Categories:"))

	allStyle := m.theme.ChipOn
	if !view.AllCategories {
		allStyle = m.theme.ChipAllDim
	}
	chips = append(chips, m.chip(AllChip, allStyle.Render("All"), focus))

	for i, category := range view.Categories {
		mark := "[ ]"
		style := m.theme.Chip
		if category.Selected {
			mark = "[x]"
			style = m.theme.ChipOn
		}
		label := strings.TrimSpace(mark + " " + category.Icon + " " + category.Title)
		chips = append(chips, m.chip(i+1, style.Render(label), focus))
	}

	return strings.Join(chips, " ")
}

func (m FilterPanelModel) chip(index int, rendered string, focus viewmodel.Focus) string {
	if focus == viewmodel.FocusCategories && index == m.chipCursor {
		return m.theme.Cursor.Render("›") + rendered
	}
	return " " + rendered
}
