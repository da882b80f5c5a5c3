package model

import "strings"

// TitleSeparator splits a structured category title into its leading segment and the rest.
const TitleSeparator = " - "

// Category groups products and belongs to a single owner.
type Category struct {
	Title   string `json:"title" yaml:"title" db:"title"`
	Icon    string `json:"icon" yaml:"icon" db:"icon"`
	ID      int    `json:"id" yaml:"id" db:"id"`
	OwnerID int    `json:"ownerId" yaml:"ownerId" db:"owner_id"`
}

// LeadingSegment returns the part of the title before the first TitleSeparator.
// Titles without a separator are returned whole.
func (c Category) LeadingSegment() string {
	segment, _, _ := strings.Cut(c.Title, TitleSeparator)
	return segment
}

// Label renders the category the way the product table shows it: "<icon> - <title>".
func (c Category) Label() string {
	return c.Icon + TitleSeparator + c.Title
}
