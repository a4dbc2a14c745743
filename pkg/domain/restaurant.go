package domain

import (
	"fmt"
	"strings"
)

// Category is a coarse price tier used to filter roll candidates
type Category string

// supported categories
const (
	CategoryCheap  Category = "Cheap"
	CategoryNormal Category = "Normal"
)

// Categories lists all known categories in display order
var Categories = []Category{CategoryCheap, CategoryNormal}

// ParseCategory normalizes a case-insensitive category name.
// Returns ErrInvalidInput for anything other than cheap or normal.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(strings.TrimSpace(s), string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown category %q", ErrInvalidInput, s)
}

// String returns category name
func (c Category) String() string {
	return string(c)
}

// Restaurant is a named lunch place, identified by its name
type Restaurant struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
}
