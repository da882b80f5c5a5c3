package testing

import (
	"fmt"
	"strings"
)

// StateMatcher collects view assertions and reports them together.
type StateMatcher struct {
	failures []string
}

// NewStateMatcher creates a new state matcher.
func NewStateMatcher() *StateMatcher {
	return &StateMatcher{
		failures: make([]string, 0),
	}
}

// ViewContains asserts that the view contains the expected string.
func (m *StateMatcher) ViewContains(view, expected string) *StateMatcher {
	if !strings.Contains(StripANSI(view), expected) {
		m.failures = append(m.failures, fmt.Sprintf("view does not contain '%s'", expected))
	}
	return m
}

// ViewNotContains asserts that the view does not contain the unexpected string.
func (m *StateMatcher) ViewNotContains(view, unexpected string) *StateMatcher {
	if strings.Contains(StripANSI(view), unexpected) {
		m.failures = append(m.failures, fmt.Sprintf("view contains unexpected '%s'", unexpected))
	}
	return m
}

// Check returns an error if any assertions failed.
func (m *StateMatcher) Check() error {
	if len(m.failures) > 0 {
		return fmt.Errorf("state assertions failed:\n%s", strings.Join(m.failures, "\n"))
	}
	return nil
}

// TableMatcher provides assertions for bordered tables whose cells are
// separated by │.
type TableMatcher struct {
	*StateMatcher
}

// NewTableMatcher creates a new table matcher.
func NewTableMatcher() *TableMatcher {
	return &TableMatcher{
		StateMatcher: NewStateMatcher(),
	}
}

// RowCount verifies the number of body rows, not counting the header.
func (m *TableMatcher) RowCount(view string, expected int) *TableMatcher {
	rows := tableRows(view)
	actual := max(0, len(rows)-1)

	if actual != expected {
		m.failures = append(m.failures, fmt.Sprintf("table row count mismatch: got %d, want %d", actual, expected))
	}
	return m
}

// CellContains verifies that a body cell contains the expected text.
func (m *TableMatcher) CellContains(view string, row, col int, expected string) *TableMatcher {
	rows := tableRows(view)
	if len(rows) > 0 {
		rows = rows[1:]
	}

	if row < 0 || row >= len(rows) {
		m.failures = append(m.failures, fmt.Sprintf("table row %d out of bounds (total rows: %d)", row, len(rows)))
		return m
	}

	// Leading and trailing borders produce empty fields.
	cells := strings.Split(rows[row], "│")
	if col < 0 || col >= len(cells)-2 {
		m.failures = append(m.failures, fmt.Sprintf("table column %d out of bounds (total columns: %d)", col, len(cells)-2))
		return m
	}

	cell := strings.TrimSpace(cells[col+1])
	if !strings.Contains(cell, expected) {
		m.failures = append(m.failures, fmt.Sprintf("table cell [%d,%d] does not contain '%s': '%s'", row, col, expected, cell))
	}
	return m
}

func tableRows(view string) []string {
	var rows []string
	for _, line := range strings.Split(StripANSI(view), "\n") {
		if strings.Contains(line, "│") && !strings.Contains(line, "─") {
			rows = append(rows, strings.TrimSpace(line))
		}
	}
	return rows
}
