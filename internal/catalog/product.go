// =============================================================================
// Purchases Manager - Product Entity and Line Parser
// =============================================================================
//
// This file defines the immutable Product catalog record and the parser for
// the line-oriented products source.
//
// LINE FORMAT (whitespace-separated fields):
//   id name category price [label1,label2,...]
//
// PARSING RULES:
//   - Fewer than 4 fields        -> line is rejected
//   - Unknown category token     -> CategoryNone (never a rejection)
//   - Non-numeric price          -> line is rejected
//   - 5th field, when present    -> split on commas into lowercase labels
//   - No 5th field               -> empty label list
//
// A rejected line never reaches the aggregation store.
//
// =============================================================================

package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// productFieldCount is the minimum number of fields a product line must have.
const productFieldCount = 4

// Product is a single catalog record. Products are immutable after
// construction: the aggregation store hands out shared pointers to one
// canonical copy, so nothing may write to these fields after parsing.
// Identity is defined solely by ID.
type Product struct {
	// ID is the unique key of the product.
	ID string

	// Name is the product display name.
	Name string

	// Category is the product category, CategoryNone when unrecognized.
	Category Category

	// Price is the unit price. Non-negative by convention, not enforced.
	Price float64

	// Labels are the lowercase labels attached to the product, in the
	// order they appeared on the source line. May be empty.
	Labels []string
}

// ParseProduct parses one line of the products source. The boolean result is
// false when the line is malformed (fewer than 4 fields, or a price that does
// not parse); such lines must be discarded by the caller. Blank lines fall
// out naturally through the field-count check.
func ParseProduct(line string) (Product, bool) {
	return ParseProductRecord(strings.Fields(line))
}

// ParseProductRecord parses an already-tokenized product record. This is the
// shared entry point for the plain-text and XLSX ingestion paths.
func ParseProductRecord(fields []string) (Product, bool) {
	if len(fields) < productFieldCount {
		return Product{}, false
	}

	price, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return Product{}, false
	}

	// A 5th field carries the comma-separated labels. Fields beyond the
	// 5th are ignored.
	var labels []string
	if len(fields) > productFieldCount {
		for _, label := range strings.Split(fields[4], ",") {
			labels = append(labels, strings.ToLower(label))
		}
	}

	return Product{
		ID:       fields[0],
		Name:     fields[1],
		Category: ParseCategory(fields[2]),
		Price:    price,
		Labels:   labels,
	}, true
}

// String renders the product display contract used by every report.
func (p Product) String() string {
	return fmt.Sprintf(
		"Product with id: %s, name: %s, category: %s, and price: $%s",
		p.ID, p.Name, p.Category, FormatPrice(p.Price),
	)
}

// FormatPrice renders a price in its shortest decimal form, so whole prices
// print without a decimal point ("20") and fractional ones keep only the
// digits they need ("10.5").
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
