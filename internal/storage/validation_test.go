package storage

import (
	"context"
	"testing"

	"github.com/Veraticus/catalog/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateContext(t *testing.T) {
	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		ctx     context.Context
		wantErr error
		name    string
	}{
		{name: "valid context", ctx: context.Background()},
		{name: "nil context", ctx: nil, wantErr: ErrNilContext},
		{name: "canceled context", ctx: canceled, wantErr: context.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateContext(tt.ctx)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateString(t *testing.T) {
	tests := []struct {
		name    string
		str     string
		wantErr bool
	}{
		{name: "valid string", str: "test"},
		{name: "empty string", str: "", wantErr: true},
		{name: "whitespace only", str: "   ", wantErr: true},
		{name: "string with spaces", str: "  test  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateString(tt.str, "param")
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrEmptyString)
			assert.Contains(t, err.Error(), "param")
		})
	}
}

func TestValidateFixtures(t *testing.T) {
	valid := model.Fixtures{
		Users:      []model.User{{ID: 1, Name: "Roma", Sex: model.SexMale}},
		Categories: []model.Category{{ID: 1, Title: "Drinks", Icon: "🍺", OwnerID: 1}},
		Products:   []model.Product{{ID: 1, Name: "Milk", CategoryID: 1}},
	}

	tests := []struct {
		mutate  func(*model.Fixtures)
		wantErr error
		name    string
		param   string
	}{
		{name: "valid", mutate: func(*model.Fixtures) {}},
		{
			name:   "dangling references are allowed",
			mutate: func(fx *model.Fixtures) { fx.Products[0].CategoryID = 42 },
		},
		{
			name:    "no products",
			mutate:  func(fx *model.Fixtures) { fx.Products = nil },
			wantErr: ErrEmptySlice,
			param:   "products",
		},
		{
			name:    "blank category title",
			mutate:  func(fx *model.Fixtures) { fx.Categories[0].Title = " " },
			wantErr: ErrEmptyString,
			param:   "categories[0].title",
		},
		{
			name:    "blank user name",
			mutate:  func(fx *model.Fixtures) { fx.Users[0].Name = "" },
			wantErr: ErrEmptyString,
			param:   "users[0].name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := model.Fixtures{
				Users:      append([]model.User(nil), valid.Users...),
				Categories: append([]model.Category(nil), valid.Categories...),
				Products:   append([]model.Product(nil), valid.Products...),
			}
			tt.mutate(&fx)

			err := validateFixtures(fx)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.param)
		})
	}
}
