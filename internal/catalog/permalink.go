package catalog

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Veraticus/catalog/internal/common"
	"github.com/gorilla/schema"
)

type permalink struct {
	Query        string   `schema:"q,omitempty"`
	Sort         string   `schema:"sort"`
	Categories   []string `schema:"cat,omitempty"`
	Owner        int      `schema:"owner,omitempty"`
	NoCategories bool     `schema:"nocat,omitempty"`
	Desc         bool     `schema:"desc,omitempty"`
}

// Permalink encodes s as a query string. A full category selection is
// omitted, an empty one is written as nocat.
func (c *Catalog) Permalink(s State) string {
	p := permalink{
		Owner: s.OwnerID,
		Query: s.Query,
		Sort:  string(s.SortKey),
		Desc:  s.SortKey != SortNone && s.Direction == Descending,
	}
	switch {
	case len(s.Categories) == 0:
		p.NoCategories = true
	case !s.AllSelected(c.titles):
		p.Categories = s.Categories
	}
	if p.Sort == "" {
		p.Sort = string(SortNone)
	}

	values := url.Values{}
	encoder := schema.NewEncoder()
	if err := encoder.Encode(&p, values); err != nil {
		common.LogWarn("failed to encode permalink", common.Fields{"error": err.Error()})
		return ""
	}
	return values.Encode()
}

// ParsePermalink decodes a query string produced by Permalink. Missing fields
// take their initial values and unknown category titles are dropped.
func (c *Catalog) ParsePermalink(raw string) (State, error) {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "?")

	values, err := url.ParseQuery(raw)
	if err != nil {
		return State{}, fmt.Errorf("%w: %w", common.ErrBadPermalink, err)
	}

	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	var p permalink
	if err := decoder.Decode(&p, values); err != nil {
		return State{}, fmt.Errorf("%w: %w", common.ErrBadPermalink, err)
	}

	s := c.InitialState()
	s.OwnerID = p.Owner
	s.Query = p.Query

	if values.Has("sort") {
		key, err := ParseSortKey(p.Sort)
		if err != nil {
			return State{}, fmt.Errorf("%w: %w", common.ErrBadPermalink, err)
		}
		direction := Ascending
		if p.Desc {
			direction = Descending
		}
		s = c.Reduce(s, SetSort{Key: key, Direction: direction})
	}

	switch {
	case p.NoCategories:
		s = c.Reduce(s, ClearCategories{})
	case len(p.Categories) > 0:
		s = c.Reduce(s, ClearCategories{})
		for _, title := range p.Categories {
			if !s.Selected(title) {
				s = c.Reduce(s, ToggleCategory{Title: title})
			}
		}
	}

	return s, nil
}
