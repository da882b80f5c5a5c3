package tui

import "github.com/Veraticus/catalog/internal/model"

// Data loading messages.
type fixturesLoadedMsg struct {
	err      error
	fixtures model.Fixtures
}
