// =============================================================================
// Purchases Manager - Source Ingestion
// =============================================================================
//
// This module feeds the aggregation store from the two input sources: the
// product catalog and the purchase log. Sources are consumed as a whole-file
// read split by line; an unreadable source is fatal, while malformed records
// inside a readable source are logged and skipped.
//
// INPUT FORMATS:
//   - Plain text (default): whitespace-separated fields, one record per line.
//   - XLSX (.xlsx extension): one record per sheet row, same field semantics.
//
// PURCHASE LINE FORMAT:
//   purchase_id product_id quantity
//
//   Lines with fewer than 3 fields or a quantity that does not parse as a
//   non-negative integer are discarded; fields beyond the third are ignored.
//
// =============================================================================

package ingest

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/martinAleB/purchases-manager/internal/catalog"
	"github.com/martinAleB/purchases-manager/internal/store"
)

// purchaseFieldCount is the number of fields a purchase line must have.
const purchaseFieldCount = 3

// ProductStats summarizes one catalog ingestion pass.
type ProductStats struct {
	// Added is the number of products installed into the store.
	Added int

	// Malformed is the number of non-blank records that failed the
	// product parser and were discarded.
	Malformed int

	// Duplicates is the number of records rejected because their id was
	// already in the catalog.
	Duplicates int
}

// PurchaseStats summarizes one purchase-log ingestion pass.
type PurchaseStats struct {
	// Recorded is the number of purchase lines applied to the store.
	Recorded int

	// Malformed is the number of non-blank records discarded before the
	// store was consulted (missing fields or a bad quantity).
	Malformed int

	// UnknownProducts is the number of lines dropped because they
	// referenced a product id not present in the catalog.
	UnknownProducts int
}

// PurchaseLine is one parsed record of the purchase log.
type PurchaseLine struct {
	PurchaseID string
	ProductID  string
	Quantity   uint32
}

// ParsePurchaseLine parses one line of the purchases source. The boolean
// result is false for discarded lines.
func ParsePurchaseLine(line string) (PurchaseLine, bool) {
	return ParsePurchaseRecord(strings.Fields(line))
}

// ParsePurchaseRecord parses an already-tokenized purchase record. Shared by
// the plain-text and XLSX paths.
func ParsePurchaseRecord(fields []string) (PurchaseLine, bool) {
	if len(fields) < purchaseFieldCount {
		return PurchaseLine{}, false
	}

	quantity, err := strconv.ParseUint(fields[2], 10, 32)
	if err != nil {
		return PurchaseLine{}, false
	}

	return PurchaseLine{
		PurchaseID: fields[0],
		ProductID:  fields[1],
		Quantity:   uint32(quantity),
	}, true
}

// LoadProducts reads the products source and feeds every valid record into
// the store. Malformed records and duplicate ids are logged and skipped; a
// source that cannot be read at all returns an error.
func LoadProducts(path string, mgr *store.Manager) (ProductStats, error) {
	var stats ProductStats

	records, err := readRecords(path)
	if err != nil {
		return stats, fmt.Errorf("failed to read products file %s: %w", path, err)
	}

	for _, fields := range records {
		if len(fields) == 0 {
			continue
		}

		product, ok := catalog.ParseProductRecord(fields)
		if !ok {
			stats.Malformed++
			log.Warn().Strs("record", fields).Msg("discarding malformed product record")
			continue
		}

		if err := mgr.AddProduct(product); err != nil {
			if errors.Is(err, store.ErrDuplicateProduct) {
				stats.Duplicates++
				log.Warn().Str("productId", product.ID).Msg("discarding product with duplicate id")
				continue
			}
			return stats, err
		}
		stats.Added++
	}

	return stats, nil
}

// LoadPurchases reads the purchases source and applies every valid record to
// the store. Malformed lines and lines referencing unknown products are
// logged and skipped.
func LoadPurchases(path string, mgr *store.Manager) (PurchaseStats, error) {
	var stats PurchaseStats

	records, err := readRecords(path)
	if err != nil {
		return stats, fmt.Errorf("failed to read purchases file %s: %w", path, err)
	}

	for _, fields := range records {
		if len(fields) == 0 {
			continue
		}

		line, ok := ParsePurchaseRecord(fields)
		if !ok {
			stats.Malformed++
			log.Warn().Strs("record", fields).Msg("discarding malformed purchase record")
			continue
		}

		if err := mgr.AddProductToPurchase(line.PurchaseID, line.ProductID, line.Quantity); err != nil {
			if errors.Is(err, store.ErrProductNotFound) {
				stats.UnknownProducts++
				log.Warn().
					Str("purchaseId", line.PurchaseID).
					Str("productId", line.ProductID).
					Msg("purchase line references unknown product")
				continue
			}
			return stats, err
		}
		stats.Recorded++
	}

	return stats, nil
}

// readRecords reads a source into tokenized records. XLSX sources are read
// sheet-row-wise; everything else is a whole-file read split by line.
func readRecords(path string) ([][]string, error) {
	if isXLSX(path) {
		return readXLSXRecords(path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(string(content), "\n")
	records := make([][]string, 0, len(lines))
	for _, line := range lines {
		records = append(records, strings.Fields(line))
	}
	return records, nil
}
