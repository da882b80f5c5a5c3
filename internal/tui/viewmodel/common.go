package viewmodel

// AppState represents the overall application state.
type AppState int

const (
	// StateLoading indicates the fixtures are still loading.
	StateLoading AppState = iota
	// StateBrowsing indicates the catalog is ready for interaction.
	StateBrowsing
	// StateError indicates loading failed.
	StateError
)

// Focus identifies which part of the screen receives key presses.
type Focus int

const (
	// FocusTable routes keys to the product table and global shortcuts.
	FocusTable Focus = iota
	// FocusSearch routes keys to the search input.
	FocusSearch
	// FocusCategories routes keys to the category chips.
	FocusCategories
)

// AppView represents the entire application view model.
type AppView struct {
	Catalog     *CatalogView
	Error       string
	KeyBindings []KeyBinding
	State       AppState
	Focus       Focus
	Width       int
	Height      int
	ShowHelp    bool
}

// KeyBinding represents a keyboard shortcut.
type KeyBinding struct {
	Key         string
	Description string
	IsActive    bool
}

// IsReady returns true if the application is ready for user interaction.
func (av AppView) IsReady() bool {
	return av.State == StateBrowsing && av.Catalog != nil
}

// HasError returns true if the application has a global error.
func (av AppView) HasError() bool {
	return av.Error != ""
}

// GetActiveKeyBindings returns only the currently active key bindings.
func (av AppView) GetActiveKeyBindings() []KeyBinding {
	var active []KeyBinding
	for _, kb := range av.KeyBindings {
		if kb.IsActive {
			active = append(active, kb)
		}
	}
	return active
}
