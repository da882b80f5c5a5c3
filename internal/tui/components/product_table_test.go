package components

import (
	"testing"

	"github.com/Veraticus/catalog/internal/catalog"
	tuitest "github.com/Veraticus/catalog/internal/tui/testing"
	"github.com/Veraticus/catalog/internal/tui/themes"
	"github.com/Veraticus/catalog/internal/tui/viewmodel"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductTable_View(t *testing.T) {
	m := NewProductTable(themes.Default)
	m.SetView(testView(t))

	out := tuitest.StripANSI(m.View())

	assert.True(t, tuitest.ContainsInOrder(out, "ID ▲", "Product ↕", "Category ↕", "User ↕"))
	assert.True(t, tuitest.ContainsInOrder(out, "Milk", "Bread", "Eggs", "Coca-Cola", "Sugar"))
	assert.Contains(t, out, "🍺 - Drinks")
	assert.Contains(t, out, "Anna")
	assert.NotContains(t, out, viewmodel.EmptyMessage)
}

func TestProductTable_Cells(t *testing.T) {
	m := NewProductTable(themes.Default)
	m.SetView(testView(t, catalog.SetOwner{ID: 1}))

	view := m.View()
	err := tuitest.NewTableMatcher().
		RowCount(view, 2).
		CellContains(view, 0, 0, "1").
		CellContains(view, 0, 1, "Milk").
		CellContains(view, 1, 1, "Coca-Cola").
		CellContains(view, 1, 3, "Roma").
		Check()
	require.NoError(t, err)
}

func TestProductTable_FollowsSortedRows(t *testing.T) {
	m := NewProductTable(themes.Default)
	m.SetView(testView(t, catalog.ToggleSort{Key: catalog.SortName}))

	out := tuitest.StripANSI(m.View())

	assert.True(t, tuitest.ContainsInOrder(out, "Bread", "Coca-Cola", "Eggs", "Milk", "Sugar"))
	assert.Contains(t, out, "Product ▲")
	assert.Contains(t, out, "ID ↕")
}

func TestProductTable_EmptyMessage(t *testing.T) {
	m := NewProductTable(themes.Default)
	m.SetView(testView(t, catalog.ClearCategories{}))

	out := tuitest.StripANSI(m.View())

	assert.Contains(t, out, "No products matching selected criteria")
	assert.Contains(t, out, "Product ↕")

	_, ok := m.SelectedRow()
	assert.False(t, ok)
}

func TestProductTable_Navigation(t *testing.T) {
	m := NewProductTable(themes.Default)
	m.SetView(testView(t))

	keys := []struct {
		msg  tea.KeyMsg
		want int
	}{
		{tuitest.KeyDown(), 1},
		{tuitest.KeyPress("j"), 2},
		{tuitest.KeyPress("G"), 4},
		{tuitest.KeyDown(), 4},
		{tuitest.KeyPress("k"), 3},
		{tuitest.KeyPress("g"), 0},
		{tuitest.KeyUp(), 0},
	}

	for _, k := range keys {
		m, _ = m.Update(k.msg)
		assert.Equal(t, k.want, m.Cursor(), "after %s", k.msg.String())
	}
}

func TestProductTable_EnterSelectsRow(t *testing.T) {
	m := NewProductTable(themes.Default)
	m.SetView(testView(t))

	m, _ = m.Update(tuitest.KeyDown())
	_, cmd := m.Update(tuitest.KeyEnter())
	require.NotNil(t, cmd)

	msg, ok := cmd().(ProductSelectedMsg)
	require.True(t, ok)
	assert.Equal(t, 1, msg.Index)
	assert.Equal(t, "Bread", msg.Row.Name)
}

func TestProductTable_ScrollsWithCursor(t *testing.T) {
	m := NewProductTable(themes.Default)
	m.Resize(80, 6) // two body rows
	m.SetView(testView(t))

	out := tuitest.StripANSI(m.View())
	assert.Contains(t, out, "Milk")
	assert.Contains(t, out, "Bread")
	assert.NotContains(t, out, "Sugar")

	m, _ = m.Update(tuitest.KeyPress("G"))
	out = tuitest.StripANSI(m.View())
	assert.Contains(t, out, "Sugar")
	assert.Contains(t, out, "Coca-Cola")
	assert.NotContains(t, out, "Milk")
}

func TestProductTable_CursorClampedWhenRowsShrink(t *testing.T) {
	m := NewProductTable(themes.Default)
	m.SetView(testView(t))
	m, _ = m.Update(tuitest.KeyPress("G"))
	require.Equal(t, 4, m.Cursor())

	m.SetView(testView(t, catalog.SetQuery{Text: "milk"}))

	assert.Equal(t, 0, m.Cursor())
	row, ok := m.SelectedRow()
	require.True(t, ok)
	assert.Equal(t, "Milk", row.Name)
}
