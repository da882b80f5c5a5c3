package components

import (
	"strconv"

	"github.com/Veraticus/catalog/internal/tui/themes"
	"github.com/Veraticus/catalog/internal/tui/viewmodel"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Column indexes of the product table.
const (
	ColumnID = iota
	ColumnName
	ColumnCategory
	ColumnOwner
)

const (
	nameWidth     = 24
	categoryWidth = 30
	ownerWidth    = 16
	// top border, header, header separator, bottom border
	tableChrome = 4
)

// ProductTableModel renders the visible products and tracks the cursor.
type ProductTableModel struct {
	theme   themes.Theme
	columns []viewmodel.ColumnHeader
	rows    []viewmodel.RowView
	cursor  int
	offset  int
	width   int
	height  int
}

// NewProductTable creates an empty product table.
func NewProductTable(theme themes.Theme) ProductTableModel {
	return ProductTableModel{
		theme:  theme,
		width:  80,
		height: 16,
	}
}

// SetView replaces the headers and rows, keeping the cursor in range.
func (m *ProductTableModel) SetView(view viewmodel.CatalogView) {
	m.columns = view.Columns
	m.rows = view.Rows
	m.cursor = min(m.cursor, max(0, len(m.rows)-1))
	m.ensureVisible()
}

// Update handles navigation keys.
func (m ProductTableModel) Update(msg tea.Msg) (ProductTableModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "j", "down":
		m.cursor = min(m.cursor+1, max(0, len(m.rows)-1))
	case "k", "up":
		m.cursor = max(m.cursor-1, 0)
	case "pgdown", "ctrl+f":
		m.cursor = min(m.cursor+m.pageSize(), max(0, len(m.rows)-1))
	case "pgup", "ctrl+b":
		m.cursor = max(m.cursor-m.pageSize(), 0)
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = max(0, len(m.rows)-1)
	case "enter":
		if row, ok := m.SelectedRow(); ok {
			index := m.cursor
			return m, func() tea.Msg {
				return ProductSelectedMsg{Row: row, Index: index}
			}
		}
	}

	m.ensureVisible()
	return m, nil
}

// View renders the table, or the empty message when there are no rows.
func (m ProductTableModel) View() string {
	headers := make([]string, 0, len(m.columns))
	for _, column := range m.columns {
		headers = append(headers, column.Label())
	}

	if len(m.rows) == 0 {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.theme.Header.Render(lipgloss.JoinHorizontal(lipgloss.Top, joinHeaders(headers)...)),
			m.theme.Empty.Render(viewmodel.EmptyMessage),
		)
	}

	end := min(m.offset+m.pageSize(), len(m.rows))
	window := m.rows[m.offset:end]

	cells := make([][]string, 0, len(window))
	for _, row := range window {
		cells = append(cells, []string{
			strconv.Itoa(row.ID),
			viewmodel.TruncateString(row.Name, nameWidth),
			viewmodel.TruncateString(row.Category, categoryWidth),
			viewmodel.TruncateString(row.Owner, ownerWidth),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(m.theme.Border)).
		BorderRow(false).
		Headers(headers...).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return m.theme.Header
			}
			style := m.theme.Cell
			if row+m.offset == m.cursor {
				style = m.theme.Selected.Padding(0, 1)
			}
			if col == ColumnOwner && row < len(window) {
				switch window[row].Tone {
				case viewmodel.ToneFemale:
					style = style.Foreground(m.theme.Error)
				case viewmodel.ToneMale:
					style = style.Foreground(m.theme.Info)
				}
			}
			return style
		})

	return lipgloss.NewStyle().MaxWidth(m.width).Render(t.String())
}

// Resize updates the component size.
func (m *ProductTableModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.ensureVisible()
}

// Cursor returns the index of the highlighted row.
func (m ProductTableModel) Cursor() int {
	return m.cursor
}

// SelectedRow returns the highlighted row.
func (m ProductTableModel) SelectedRow() (viewmodel.RowView, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return viewmodel.RowView{}, false
	}
	return m.rows[m.cursor], true
}

func (m ProductTableModel) pageSize() int {
	return max(1, m.height-tableChrome)
}

func (m *ProductTableModel) ensureVisible() {
	page := m.pageSize()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+page {
		m.offset = m.cursor - page + 1
	}
	m.offset = max(0, min(m.offset, max(0, len(m.rows)-page)))
}

func joinHeaders(headers []string) []string {
	out := make([]string, 0, len(headers)*2)
	for i, h := range headers {
		if i > 0 {
			out = append(out, "  ")
		}
		out = append(out, h)
	}
	return out
}
