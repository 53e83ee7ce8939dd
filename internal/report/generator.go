// =============================================================================
// Purchases Manager - Report Generation
// =============================================================================
//
// The Generator binds the pure renderers to the output tree. It runs
// strictly after ingestion has completed, reads the store without mutating
// it, and writes every artifact through the FileManager.
//
// =============================================================================

package report

import (
	"fmt"

	"github.com/martinAleB/purchases-manager/internal/store"
	"github.com/martinAleB/purchases-manager/pkg/utils"
)

// Query report file names under the querys directory.
const (
	ProductsByLabelFile   = "products_by_label.txt"
	ProductPurchasesFile  = "product_purchases_number.txt"
	CategoryPurchasesFile = "category_purchases_number.txt"
)

// Generator writes report artifacts for one aggregation store.
type Generator struct {
	mgr   *store.Manager
	files *utils.FileManager
}

// NewGenerator creates a Generator over the given store and output tree.
func NewGenerator(mgr *store.Manager, files *utils.FileManager) *Generator {
	return &Generator{mgr: mgr, files: files}
}

// WriteQueryReports renders and writes the three query reports. Any
// filesystem failure is returned immediately; these are fatal for the run.
func (g *Generator) WriteQueryReports() error {
	reports := []struct {
		name    string
		content string
	}{
		{ProductsByLabelFile, ProductsByLabel(g.mgr)},
		{ProductPurchasesFile, ProductPurchases(g.mgr)},
		{CategoryPurchasesFile, CategoryPurchases(g.mgr)},
	}

	for _, r := range reports {
		if err := g.files.WriteQueryFile(r.name, r.content); err != nil {
			return fmt.Errorf("failed to generate %s: %w", r.name, err)
		}
	}

	return nil
}

// WriteTicket renders and writes the ticket for one purchase. An unknown
// purchase id surfaces store.ErrPurchaseNotFound, which callers treat as
// skip-and-continue; filesystem failures are fatal as usual.
func (g *Generator) WriteTicket(purchaseID string) error {
	content, err := Ticket(g.mgr, purchaseID)
	if err != nil {
		return err
	}
	return g.files.WriteTicketFile(TicketFileName(purchaseID), content)
}

// WriteAllTickets writes one ticket per recorded purchase, walking purchase
// ids in sorted order. Returns the number of tickets written.
func (g *Generator) WriteAllTickets() (int, error) {
	written := 0
	for _, id := range g.mgr.PurchaseIDs() {
		if err := g.WriteTicket(id); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}
