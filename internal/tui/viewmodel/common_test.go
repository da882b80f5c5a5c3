package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppView_IsReady(t *testing.T) {
	tests := []struct {
		name string
		view AppView
		want bool
	}{
		{
			name: "browsing with catalog",
			view: AppView{State: StateBrowsing, Catalog: &CatalogView{}},
			want: true,
		},
		{
			name: "browsing without catalog",
			view: AppView{State: StateBrowsing},
			want: false,
		},
		{
			name: "loading",
			view: AppView{State: StateLoading},
			want: false,
		},
		{
			name: "error",
			view: AppView{State: StateError, Catalog: &CatalogView{}},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.view.IsReady())
		})
	}
}

func TestAppView_HasError(t *testing.T) {
	assert.False(t, AppView{}.HasError())
	assert.True(t, AppView{Error: "boom"}.HasError())
}

func TestAppView_GetActiveKeyBindings(t *testing.T) {
	view := AppView{
		KeyBindings: []KeyBinding{
			{Key: "/", Description: "search", IsActive: true},
			{Key: "a", Description: "all categories", IsActive: false},
			{Key: "q", Description: "quit", IsActive: true},
		},
	}

	active := view.GetActiveKeyBindings()

	assert.Len(t, active, 2)
	assert.Equal(t, "/", active[0].Key)
	assert.Equal(t, "q", active[1].Key)
	assert.Nil(t, AppView{}.GetActiveKeyBindings())
}
