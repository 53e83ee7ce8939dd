// =============================================================================
// Purchases Manager - Report Renderers
// =============================================================================
//
// Pure, read-only functions that turn the aggregation store's current state
// into the text blobs written under response/. Each renderer materializes
// its whole artifact in memory; none of them mutate the store.
//
// ARTIFACTS:
//   - by-label listing of the catalog
//   - per-product purchased-unit counts
//   - per-category purchased-unit counts
//   - one ticket (receipt) per purchase
//
// =============================================================================

package report

import (
	"fmt"
	"strings"

	"github.com/martinAleB/purchases-manager/internal/catalog"
	"github.com/martinAleB/purchases-manager/internal/store"
)

// Separator is the banner delimiting report sections and ticket blocks.
const Separator = "================================\n"

// ProductsByLabel renders the by-label report: each label followed by the
// display line of every product in its bucket, delimited by banners. Labels
// are emitted in ascending order so the artifact is stable across runs.
func ProductsByLabel(m *store.Manager) string {
	var b strings.Builder
	b.WriteString(Separator)
	for _, label := range m.Labels() {
		fmt.Fprintf(&b, "LABEL '%s'\n", label)
		for _, product := range m.ProductsByLabel(label) {
			fmt.Fprintf(&b, "%s\n", product)
		}
		b.WriteString(Separator)
	}
	return b.String()
}

// ProductPurchases renders one line per counted product, ascending by id.
func ProductPurchases(m *store.Manager) string {
	var b strings.Builder
	for _, pu := range m.ProductUnits() {
		fmt.Fprintf(&b, "%s bought %d units\n", pu.Product, pu.Units)
	}
	return b.String()
}

// CategoryPurchases renders one line per recorded category.
func CategoryPurchases(m *store.Manager) string {
	var b strings.Builder
	for _, cu := range m.CategoryUnits() {
		fmt.Fprintf(&b, "%s bought %d units\n", cu.Category, cu.Units)
	}
	return b.String()
}

// Ticket renders the receipt for one purchase: a banner, a header row, one
// row per cart line item in processing order, and a quantity-weighted total.
// An unknown purchase id yields store.ErrPurchaseNotFound so the caller can
// skip it without aborting the rest of the run.
func Ticket(m *store.Manager, purchaseID string) (string, error) {
	purchase, ok := m.Purchase(purchaseID)
	if !ok {
		return "", fmt.Errorf("%w: %s", store.ErrPurchaseNotFound, purchaseID)
	}

	var b strings.Builder
	b.WriteString(Separator)
	fmt.Fprintf(&b, "TICKET FOR PURCHASE ID %s\n", purchase.ID())
	b.WriteString(Separator)
	fmt.Fprintf(&b, "%-15s%-10s%-15s\n", "PRODUCT", "QUANTITY", "PRICE")
	for _, item := range purchase.Cart() {
		fmt.Fprintf(&b, "%-15s%-10d%-15s\n",
			item.Product.Name, item.Quantity, formatAmount(item.Product.Price))
	}
	b.WriteString(Separator)
	fmt.Fprintf(&b, "%-25s%-15s\n", "TOTAL", formatAmount(purchase.TotalPrice()))
	b.WriteString(Separator)
	return b.String(), nil
}

// TicketFileName builds the output file name for a purchase's ticket.
func TicketFileName(purchaseID string) string {
	return fmt.Sprintf("ticket_%s.txt", purchaseID)
}

func formatAmount(amount float64) string {
	// Shortest decimal form, same as the product display contract.
	return catalog.FormatPrice(amount)
}
