package entry

import (
	"fmt"
	"strings"
)

// Category partitions entries into the two independent lists.
type Category int

const (
	// Work is the default list.
	Work Category = iota
	// Travel holds places to go.
	Travel
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{Work, Travel}
}

func (c Category) String() string {
	switch c {
	case Work:
		return "Work"
	case Travel:
		return "Travel"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c == Work || c == Travel
}

// ParseCategory resolves a category name or alias, ignoring case.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "work", "w":
		return Work, nil
	case "travel", "t":
		return Travel, nil
	}
	return Work, fmt.Errorf("entry: unknown category %q", s)
}

func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("entry: unknown category %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText accepts only the exact names MarshalText writes.
func (c *Category) UnmarshalText(b []byte) error {
	switch string(b) {
	case Work.String():
		*c = Work
	case Travel.String():
		*c = Travel
	default:
		return fmt.Errorf("entry: unknown category %q", string(b))
	}
	return nil
}
