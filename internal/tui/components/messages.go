package components

import "github.com/Veraticus/catalog/internal/tui/viewmodel"

// ProductSelectedMsg is sent when the user presses enter on a table row.
type ProductSelectedMsg struct {
	Row   viewmodel.RowView
	Index int
}
