// =============================================================================
// Purchases Manager - Product Categories
// =============================================================================
//
// This file defines the fixed vocabulary of product categories and the parsing
// rules for the category token of a product line.
//
// CATEGORY VOCABULARY:
//   gym, technology, tablegames, videogames, television, tables
//
// Tokens are matched case-insensitively. Any token outside the vocabulary
// (including an absent one) maps to CategoryNone rather than failing, so an
// unrecognized category never invalidates an otherwise well-formed line.
//
// =============================================================================

package catalog

import "strings"

// Category is the enumerated product category.
type Category uint8

const (
	CategoryNone Category = iota
	CategoryGym
	CategoryTechnology
	CategoryTablegames
	CategoryVideogames
	CategoryTelevision
	CategoryTables
)

// categoryNames maps each category to its textual name, indexed by value.
var categoryNames = [...]string{
	CategoryNone:       "None",
	CategoryGym:        "Gym",
	CategoryTechnology: "Technology",
	CategoryTablegames: "Tablegames",
	CategoryVideogames: "Videogames",
	CategoryTelevision: "Television",
	CategoryTables:     "Tables",
}

// categoryTokens maps lowercase input tokens to categories.
var categoryTokens = map[string]Category{
	"gym":        CategoryGym,
	"technology": CategoryTechnology,
	"tablegames": CategoryTablegames,
	"videogames": CategoryVideogames,
	"television": CategoryTelevision,
	"tables":     CategoryTables,
}

// ParseCategory matches a token against the category vocabulary,
// case-insensitively. Unknown tokens map to CategoryNone.
func ParseCategory(token string) Category {
	if c, ok := categoryTokens[strings.ToLower(token)]; ok {
		return c
	}
	return CategoryNone
}

// String returns the textual name of the category, as used in reports.
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return categoryNames[CategoryNone]
}

// Categories returns all categories in declaration order. Iterating this
// slice gives reports a stable ordering across runs.
func Categories() []Category {
	return []Category{
		CategoryNone,
		CategoryGym,
		CategoryTechnology,
		CategoryTablegames,
		CategoryVideogames,
		CategoryTelevision,
		CategoryTables,
	}
}
