package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/Veraticus/catalog/internal/common"
	tea "github.com/charmbracelet/bubbletea"
)

const loadTimeout = 30 * time.Second

// loadFixtures loads the dataset from the configured source.
func (m Model) loadFixtures() tea.Cmd {
	loader := m.config.Loader
	parent := m.ctx

	return func() tea.Msg {
		if loader == nil {
			return fixturesLoadedMsg{err: fmt.Errorf("fixture loader not configured")}
		}

		ctx, cancel := context.WithTimeout(parent, loadTimeout)
		defer cancel()

		fx, err := loader.Load(ctx)
		if err != nil {
			return fixturesLoadedMsg{err: fmt.Errorf("failed to load fixtures: %w", err)}
		}

		users, categories, products := fx.Counts()
		common.LogDebug("fixtures loaded", common.Fields{
			"users":      users,
			"categories": categories,
			"products":   products,
		})

		return fixturesLoadedMsg{fixtures: fx}
	}
}
