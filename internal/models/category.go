package models

import (
	"errors"
	"strings"

	"golang.org/x/exp/slices"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category classifies an expense. It is either one of the predefined
// categories or a custom, user supplied lowercase string.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryEntertainment Category = "entertainment"
	CategoryUtilities     Category = "utilities"
	CategoryShopping      Category = "shopping"

	// CategoryOther is only valid as form input. It selects the custom
	// category value and is never stored.
	CategoryOther Category = "other"
)

var (
	ErrCategoryEmpty       = errors.New("please choose a category")
	ErrCustomCategoryEmpty = errors.New("please enter a custom category")
)

// PredefinedCategories lists the categories offered by the forms, in display order.
var PredefinedCategories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryEntertainment,
	CategoryUtilities,
	CategoryShopping,
}

var categoryIcons = map[Category]string{
	CategoryFood:          "🍔",
	CategoryTransport:     "🚗",
	CategoryEntertainment: "🎬",
	CategoryUtilities:     "💡",
	CategoryShopping:      "🛍️",
}

const customCategoryIcon = "📝"

// ParseCategory resolves the category form fields into the stored category.
//
// selected is the value of the category selector, custom the free text field
// that is only evaluated when selected is "other". Values that are neither
// predefined nor "other" are treated as custom categories.
func ParseCategory(selected, custom string) (Category, error) {
	s := Category(strings.ToLower(strings.TrimSpace(selected)))
	if s == "" {
		return "", ErrCategoryEmpty
	}

	if s == CategoryOther {
		c := strings.ToLower(strings.TrimSpace(custom))
		if c == "" {
			return "", ErrCustomCategoryEmpty
		}
		return Category(c), nil
	}

	return s, nil
}

// IsPredefined reports whether c is one of the predefined categories.
func (c Category) IsPredefined() bool {
	return slices.Contains(PredefinedCategories, c)
}

// IsCustom reports whether c is a user supplied category.
func (c Category) IsCustom() bool {
	return c != "" && !c.IsPredefined()
}

// FormValues splits the category into the values an edit form is
// pre-populated with: the selector value and the custom text.
func (c Category) FormValues() (selected Category, custom string) {
	if c.IsCustom() {
		return CategoryOther, string(c)
	}
	return c, ""
}

// Label is the human readable name of the category.
func (c Category) Label() string {
	return cases.Title(language.English).String(string(c))
}

// Icon returns the icon shown next to the category.
func (c Category) Icon() string {
	if icon, ok := categoryIcons[c]; ok {
		return icon
	}
	return customCategoryIcon
}
