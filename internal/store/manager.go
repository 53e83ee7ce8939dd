// =============================================================================
// Purchases Manager - Aggregation Store
// =============================================================================
//
// The Manager owns every product and purchase and keeps three derived
// aggregates consistent as records arrive:
//
//   - per-product cumulative purchased units
//   - per-category cumulative purchased units
//   - a by-label index over the catalog
//
// OWNERSHIP MODEL:
//   Products live in one canonical arena (the insertion-ordered product
//   slice). Every other structure holds either a pointer into that arena or
//   a product id that is resolved through the arena at read time, so no
//   product data is ever duplicated.
//
// CONSISTENCY:
//   AddProductToPurchase applies the cart append and both counter increments
//   in a single call. Ingestion is single-threaded and strictly precedes the
//   read-only render phase, so no caller can observe a partial update.
//
// =============================================================================

package store

import (
	"errors"
	"fmt"
	"sort"

	"github.com/martinAleB/purchases-manager/internal/catalog"
)

// Sentinel errors for the recoverable, skip-and-continue failure modes.
// Callers are expected to log these and move on to the next record.
var (
	// ErrDuplicateProduct is returned when a product's id is already in
	// the catalog. Product ids are a uniqueness constraint: the first
	// insert wins and later ones are rejected.
	ErrDuplicateProduct = errors.New("duplicate product id")

	// ErrProductNotFound is returned when a purchase line references a
	// product id that is not in the catalog.
	ErrProductNotFound = errors.New("product not found")

	// ErrPurchaseNotFound is returned when a ticket is requested for a
	// purchase id that was never recorded.
	ErrPurchaseNotFound = errors.New("purchase not found")
)

// ProductUnits pairs a catalog product with its cumulative purchased units.
type ProductUnits struct {
	Product *catalog.Product
	Units   uint64
}

// CategoryUnits pairs a category with its cumulative purchased units.
type CategoryUnits struct {
	Category catalog.Category
	Units    uint64
}

// Manager is the aggregation store.
type Manager struct {
	// products is the canonical arena, in insertion order.
	products []*catalog.Product

	// productsByID resolves a product id to its arena entry.
	productsByID map[string]*catalog.Product

	// productUnits counts purchased units per product id.
	productUnits map[string]uint64

	// labelIndex maps a label to the ids of the products carrying it,
	// in catalog insertion order.
	labelIndex map[string][]string

	// categoryUnits counts purchased units per category.
	categoryUnits map[catalog.Category]uint64

	// purchases maps a purchase id to its accumulated cart.
	purchases map[string]*Purchase
}

// New creates an empty Manager.
func New() *Manager {
	return &Manager{
		productsByID:  make(map[string]*catalog.Product),
		productUnits:  make(map[string]uint64),
		labelIndex:    make(map[string][]string),
		categoryUnits: make(map[catalog.Category]uint64),
		purchases:     make(map[string]*Purchase),
	}
}

// =============================================================================
// INGESTION OPERATIONS
// =============================================================================

// AddProduct installs a parsed product into the catalog: it is appended to
// the product arena, indexed by id and filed under each of its labels.
// A product whose id is already present is rejected with ErrDuplicateProduct
// and leaves the store untouched.
func (m *Manager) AddProduct(product catalog.Product) error {
	if _, exists := m.productsByID[product.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateProduct, product.ID)
	}

	canonical := &product
	m.products = append(m.products, canonical)
	m.productsByID[product.ID] = canonical
	for _, label := range product.Labels {
		m.labelIndex[label] = append(m.labelIndex[label], product.ID)
	}

	return nil
}

// AddProductToPurchase records one purchase line. The product id is resolved
// against the catalog first; an unknown id yields ErrProductNotFound and no
// state changes at all. On success the purchase is created on first
// reference, the line item is appended to its cart, and the product and
// category unit counters are incremented, all in this one call.
func (m *Manager) AddProductToPurchase(purchaseID, productID string, quantity uint32) error {
	product, ok := m.productsByID[productID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	}

	purchase, ok := m.purchases[purchaseID]
	if !ok {
		purchase = NewPurchase(purchaseID)
		m.purchases[purchaseID] = purchase
	}
	purchase.addItem(product, quantity)
	m.productUnits[product.ID] += uint64(quantity)
	m.categoryUnits[product.Category] += uint64(quantity)

	return nil
}

// =============================================================================
// READ-ONLY ACCESSORS
// =============================================================================
// These back the renderers. None of them mutate the store, and every ordered
// result is deterministic across runs.

// Product resolves a product id against the catalog.
func (m *Manager) Product(id string) (*catalog.Product, bool) {
	p, ok := m.productsByID[id]
	return p, ok
}

// Products returns the catalog in insertion order.
func (m *Manager) Products() []*catalog.Product {
	return m.products
}

// Labels returns every label in the by-label index, sorted ascending.
func (m *Manager) Labels() []string {
	labels := make([]string, 0, len(m.labelIndex))
	for label := range m.labelIndex {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// ProductsByLabel resolves a label's bucket to catalog products, in catalog
// insertion order. Unknown labels yield an empty slice.
func (m *Manager) ProductsByLabel(label string) []*catalog.Product {
	ids := m.labelIndex[label]
	products := make([]*catalog.Product, 0, len(ids))
	for _, id := range ids {
		products = append(products, m.productsByID[id])
	}
	return products
}

// ProductUnits returns the per-product purchased-unit counters, ordered by
// product id ascending.
func (m *Manager) ProductUnits() []ProductUnits {
	ids := make([]string, 0, len(m.productUnits))
	for id := range m.productUnits {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	units := make([]ProductUnits, 0, len(ids))
	for _, id := range ids {
		units = append(units, ProductUnits{
			Product: m.productsByID[id],
			Units:   m.productUnits[id],
		})
	}
	return units
}

// CategoryUnits returns the per-category purchased-unit counters for every
// category with a recorded counter, in category declaration order.
func (m *Manager) CategoryUnits() []CategoryUnits {
	var units []CategoryUnits
	for _, category := range catalog.Categories() {
		if n, ok := m.categoryUnits[category]; ok {
			units = append(units, CategoryUnits{Category: category, Units: n})
		}
	}
	return units
}

// Purchase resolves a purchase id.
func (m *Manager) Purchase(id string) (*Purchase, bool) {
	p, ok := m.purchases[id]
	return p, ok
}

// PurchaseIDs returns every recorded purchase id, sorted ascending.
func (m *Manager) PurchaseIDs() []string {
	ids := make([]string, 0, len(m.purchases))
	for id := range m.purchases {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
