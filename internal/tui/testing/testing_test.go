package testing

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct {
	keys []string
}

func (c counter) Init() tea.Cmd { return nil }

func (c counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		c.keys = append(c.keys, k.String())
		if k.String() == "q" {
			return c, tea.Quit
		}
	}
	return c, nil
}

func (c counter) View() string {
	return "\x1b[1mkeys:\x1b[0m " + NormalizeWhitespace(joinKeys(c.keys))
}

func joinKeys(keys []string) string {
	out := ""
	for _, k := range keys {
		out += k + "  "
	}
	return out
}

func TestInputSequence_Apply(t *testing.T) {
	r := NewTestRenderer()
	seq := NewInputSequence(KeyDown()).Type("ab").Add(KeyCtrl("u")).Add(KeyPress("q"))

	result := seq.Apply(counter{}, r)

	assert.Equal(t, 5, r.UpdateCount)
	assert.Len(t, r.Messages, 5)
	assert.Equal(t, "keys: down a b ctrl+u q", r.StripANSI())
	assert.Equal(t, []string{"down", "a", "b", "ctrl+u", "q"}, result.(counter).keys)

	cmd := r.LastCommand()
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestKeyCtrl_Unsupported(t *testing.T) {
	assert.Panics(t, func() { KeyCtrl("z") })
}

func TestTableMatcher(t *testing.T) {
	view := "╭────┬───────╮\n" +
		"│ ID │ Name  │\n" +
		"├────┼───────┤\n" +
		"│ 1  │ Milk  │\n" +
		"│ 2  │ Bread │\n" +
		"╰────┴───────╯"

	assert.NoError(t, NewTableMatcher().RowCount(view, 2).CellContains(view, 1, 1, "Bread").Check())
	assert.Error(t, NewTableMatcher().RowCount(view, 3).Check())
	assert.Error(t, NewTableMatcher().CellContains(view, 0, 5, "Milk").Check())
	assert.Error(t, NewTableMatcher().CellContains(view, 0, 1, "Eggs").Check())
}

func TestStateMatcher(t *testing.T) {
	view := "\x1b[31mNo products matching selected criteria\x1b[0m"

	assert.NoError(t, NewStateMatcher().ViewContains(view, "No products").ViewNotContains(view, "Milk").Check())
	assert.Error(t, NewStateMatcher().ViewContains(view, "Milk").Check())
}

func TestContainsInOrder(t *testing.T) {
	assert.True(t, ContainsInOrder("ID Product Category User", "ID", "Category", "User"))
	assert.False(t, ContainsInOrder("ID Product Category User", "User", "ID"))
}
