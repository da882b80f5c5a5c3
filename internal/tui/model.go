package tui

import (
	"context"
	"fmt"

	"github.com/Veraticus/catalog/internal/catalog"
	"github.com/Veraticus/catalog/internal/common"
	"github.com/Veraticus/catalog/internal/model"
	"github.com/Veraticus/catalog/internal/tui/components"
	"github.com/Veraticus/catalog/internal/tui/themes"
	"github.com/Veraticus/catalog/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// wideLayout is the width from which the summary panel sits beside the table.
const wideLayout = 120

// Model holds the main TUI state.
type Model struct {
	ctx       context.Context
	lastError error
	catalog   *catalog.Catalog
	theme     themes.Theme
	status    string
	help      help.Model
	keymap    KeyMap
	visible   []model.Item
	view      viewmodel.CatalogView
	state     catalog.State
	config    Config
	filters   components.FilterPanelModel
	table     components.ProductTableModel
	summary   components.SummaryPanelModel
	focus     viewmodel.Focus
	width     int
	height    int
	showHelp  bool
	ready     bool
	quitting  bool
}

// newModel creates a new model with the given configuration.
func newModel(ctx context.Context, cfg Config) Model {
	m := Model{
		ctx:     ctx,
		config:  cfg,
		theme:   cfg.Theme,
		keymap:  DefaultKeyMap(),
		help:    help.New(),
		filters: components.NewFilterPanel(cfg.Theme),
		table:   components.NewProductTable(cfg.Theme),
		summary: components.NewSummaryPanel(cfg.Theme),
		focus:   viewmodel.FocusTable,
		width:   cfg.Width,
		height:  cfg.Height,
	}
	m.handleResize()
	return m
}

// Init starts loading the fixtures.
func (m Model) Init() tea.Cmd {
	return m.loadFixtures()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case fixturesLoadedMsg:
		m.handleFixturesLoaded(msg)
		return m, nil

	case components.ProductSelectedMsg:
		m.status = describeRow(msg.Row)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.ready {
		return m.renderLoading()
	}

	if m.lastError != nil {
		return m.renderError()
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderBrowser()
}

// State returns the current browser state.
func (m Model) State() catalog.State {
	return m.state
}

// Visible returns the products currently shown, in display order.
func (m Model) Visible() []model.Item {
	return m.visible
}

// Focus returns the part of the screen receiving keys.
func (m Model) Focus() viewmodel.Focus {
	return m.focus
}

// Err returns the loading error, if any.
func (m Model) Err() error {
	return m.lastError
}

func (m *Model) handleFixturesLoaded(msg fixturesLoadedMsg) {
	m.ready = true
	if msg.err != nil {
		m.lastError = msg.err
		return
	}

	m.catalog = catalog.New(msg.fixtures, catalog.WithLocale(m.config.Locale))
	m.state = m.catalog.InitialState()

	if m.config.Permalink != "" {
		s, err := m.catalog.ParsePermalink(m.config.Permalink)
		if err != nil {
			common.LogWarn("ignoring permalink", common.Fields{"error": err.Error()})
			m.status = common.UserMessage(common.NewUserError("Ignored invalid permalink", err))
		} else {
			m.state = s
		}
	}

	m.refresh()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.catalog == nil {
		if key.Matches(msg, m.keymap.Quit) || msg.Type == tea.KeyEsc {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if m.showHelp {
		if key.Matches(msg, m.keymap.Help, m.keymap.Quit) || msg.Type == tea.KeyEsc {
			m.showHelp = false
		}
		return m, nil
	}

	switch m.focus {
	case viewmodel.FocusSearch:
		return m.handleSearchKey(msg)
	case viewmodel.FocusCategories:
		return m.handleCategoryKey(msg)
	default:
		return m.handleTableKey(msg)
	}
}

func (m Model) handleTableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Help):
		m.showHelp = true
	case key.Matches(msg, m.keymap.Search):
		m.focus = viewmodel.FocusSearch
		return m, m.filters.FocusSearch()
	case key.Matches(msg, m.keymap.Categories):
		m.focus = viewmodel.FocusCategories
	case key.Matches(msg, m.keymap.SortID):
		m.dispatch(catalog.ToggleSort{Key: catalog.SortID})
	case key.Matches(msg, m.keymap.SortName):
		m.dispatch(catalog.ToggleSort{Key: catalog.SortName})
	case key.Matches(msg, m.keymap.SortCategory):
		m.dispatch(catalog.ToggleSort{Key: catalog.SortCategory})
	case key.Matches(msg, m.keymap.SortOwner):
		m.dispatch(catalog.ToggleSort{Key: catalog.SortOwner})
	case key.Matches(msg, m.keymap.NextOwner):
		m.dispatch(catalog.SetOwner{ID: m.cycleOwner(1)})
	case key.Matches(msg, m.keymap.PrevOwner):
		m.dispatch(catalog.SetOwner{ID: m.cycleOwner(-1)})
	case key.Matches(msg, m.keymap.AllOwners):
		m.dispatch(catalog.SetOwner{ID: 0})
	case key.Matches(msg, m.keymap.AllCategories):
		m.dispatch(catalog.SelectAllCategories{})
	case key.Matches(msg, m.keymap.ClearQuery):
		m.dispatch(catalog.ClearQuery{})
	case key.Matches(msg, m.keymap.Reset):
		m.dispatch(catalog.Reset{})
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.ClearQuery):
		m.dispatch(catalog.ClearQuery{})
	case key.Matches(msg, m.keymap.Back):
		m.filters.BlurSearch()
		m.focus = viewmodel.FocusTable
	default:
		var cmd tea.Cmd
		m.filters, cmd = m.filters.UpdateSearch(msg)
		if query := m.filters.Query(); query != m.state.Query {
			m.dispatch(catalog.SetQuery{Text: query})
		}
		return m, cmd
	}

	return m, nil
}

func (m Model) handleCategoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	titles := m.catalog.Titles()

	switch {
	case key.Matches(msg, m.keymap.ForceQuit, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Help):
		m.showHelp = true
	case key.Matches(msg, m.keymap.Left):
		m.filters.MoveChip(-1, len(titles))
	case key.Matches(msg, m.keymap.Right):
		m.filters.MoveChip(1, len(titles))
	case key.Matches(msg, m.keymap.ToggleChip):
		chip := m.filters.ChipCursor()
		if chip == components.AllChip {
			m.dispatch(catalog.SelectAllCategories{})
		} else {
			m.dispatch(catalog.ToggleCategory{Title: titles[chip-1]})
		}
	case key.Matches(msg, m.keymap.AllCategories):
		m.dispatch(catalog.SelectAllCategories{})
	case key.Matches(msg, m.keymap.Back):
		m.focus = viewmodel.FocusTable
	}

	return m, nil
}

// dispatch applies an action and recomputes the visible products.
func (m *Model) dispatch(action catalog.Action) {
	m.state = m.catalog.Reduce(m.state, action)
	m.status = ""
	m.refresh()
	common.LogDebug("state changed", common.Fields{
		"action":    fmt.Sprintf("%T", action),
		"permalink": m.view.Permalink,
		"visible":   len(m.visible),
	})
}

func (m *Model) refresh() {
	m.visible = m.catalog.Visible(m.state)
	m.view = viewmodel.BuildCatalogView(m.catalog, m.state, m.visible)
	m.table.SetView(m.view)
	m.summary.SetView(m.view)
	if m.filters.Query() != m.state.Query {
		m.filters.SetQuery(m.state.Query)
	}
}

// cycleOwner returns the owner ID step tabs away from the active one.
func (m Model) cycleOwner(step int) int {
	tabs := m.view.Owners
	if len(tabs) == 0 {
		return 0
	}
	next := ((m.view.ActiveOwner()+step)%len(tabs) + len(tabs)) % len(tabs)
	return tabs[next].ID
}

// handleResize adjusts component sizes when terminal resizes.
func (m *Model) handleResize() {
	// title, filter panel (3), status bar and help line
	const chrome = 8

	tableWidth := m.width
	if m.width >= wideLayout {
		tableWidth = m.width * 2 / 3
		m.summary.SetCompact(false)
		m.summary.Resize(m.width - tableWidth - 3)
	} else {
		m.summary.SetCompact(true)
		m.summary.Resize(m.width)
	}

	m.table.Resize(tableWidth, max(5, m.height-chrome))
	m.filters.Resize(m.width)
	m.help.Width = m.width
}

func describeRow(row viewmodel.RowView) string {
	parts := fmt.Sprintf("#%d %s", row.ID, row.Name)
	if row.Category != "" {
		parts += " · " + row.Category
	}
	if row.Owner != "" {
		parts += " · " + row.Owner
	}
	return parts
}
