// =============================================================================
// Purchases Manager - Purchase Entity
// =============================================================================
//
// A Purchase is a named cart of (product, quantity) line items. Purchases are
// created lazily by the Manager on the first purchase line referencing their
// id; later lines with the same id accumulate into the same cart, in the
// order they were processed.
//
// =============================================================================

package store

import "github.com/martinAleB/purchases-manager/internal/catalog"

// LineItem is one cart entry: a reference to a canonical catalog product and
// the purchased quantity.
type LineItem struct {
	Product  *catalog.Product
	Quantity uint32
}

// Purchase is a named cart of line items.
type Purchase struct {
	id   string
	cart []LineItem
}

// NewPurchase creates an empty purchase with the given id.
func NewPurchase(id string) *Purchase {
	return &Purchase{id: id}
}

// ID returns the purchase id as supplied by the purchases source.
func (p *Purchase) ID() string {
	return p.id
}

// Cart returns the line items in processing order. The returned slice is
// owned by the purchase and must not be modified.
func (p *Purchase) Cart() []LineItem {
	return p.cart
}

// addItem appends a line item to the cart. Only the Manager calls this, as
// part of its single atomic update per purchase line.
func (p *Purchase) addItem(product *catalog.Product, quantity uint32) {
	p.cart = append(p.cart, LineItem{Product: product, Quantity: quantity})
}

// TotalPrice is the quantity-weighted sum of unit prices over the cart,
// accumulated in cart order.
func (p *Purchase) TotalPrice() float64 {
	var total float64
	for _, item := range p.cart {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}
