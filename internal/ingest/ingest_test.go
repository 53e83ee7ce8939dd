package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinAleB/purchases-manager/internal/report"
	"github.com/martinAleB/purchases-manager/internal/store"
	"github.com/martinAleB/purchases-manager/pkg/utils"
)

func writeTempFile(t *testing.T, name string, lines []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644))
	return path
}

func TestParsePurchaseLine(t *testing.T) {
	line, ok := ParsePurchaseLine("T1 P1 2")
	require.True(t, ok)
	assert.Equal(t, PurchaseLine{PurchaseID: "T1", ProductID: "P1", Quantity: 2}, line)
}

func TestParsePurchaseLineExtraFieldsIgnored(t *testing.T) {
	line, ok := ParsePurchaseLine("T1 P1 2 ignored also-ignored")
	require.True(t, ok)
	assert.Equal(t, uint32(2), line.Quantity)
}

func TestParsePurchaseLineDiscards(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"empty", ""},
		{"one field", "T1"},
		{"two fields", "T1 P1"},
		{"non-numeric quantity", "T1 P1 two"},
		{"negative quantity", "T1 P1 -3"},
		{"fractional quantity", "T1 P1 1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ParsePurchaseLine(tt.line)
			assert.False(t, ok)
		})
	}
}

func TestLoadProducts(t *testing.T) {
	path := writeTempFile(t, "products.txt", []string{
		"P1 Widget gym 10.5 sale,new",
		"P2 Gadget technology 20 ",
		"bad line",
		"P3 Pad tablegames oops",
		"",
		"P1 Impostor tables 99",
	})

	mgr := store.New()
	stats, err := LoadProducts(path, mgr)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Added)
	assert.Equal(t, 2, stats.Malformed)
	assert.Equal(t, 1, stats.Duplicates)
	assert.Len(t, mgr.Products(), 2)
}

func TestLoadProductsMissingFile(t *testing.T) {
	mgr := store.New()
	_, err := LoadProducts(filepath.Join(t.TempDir(), "nope.txt"), mgr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.txt")
}

func TestLoadPurchasesMissingFile(t *testing.T) {
	mgr := store.New()
	_, err := LoadPurchases(filepath.Join(t.TempDir(), "nope.txt"), mgr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.txt")
}

// TestEndToEnd runs the whole pipeline over temp files: catalog and log
// ingestion, aggregation, and report/ticket generation.
func TestEndToEnd(t *testing.T) {
	productsPath := writeTempFile(t, "products.txt", []string{
		"P1 Widget gym 10.5 sale,new",
		"P2 Gadget technology 20 ",
	})
	purchasesPath := writeTempFile(t, "purchases.txt", []string{
		"T1 P1 2",
		"T1 P2 1",
		"T2 P1 3",
		"T3 P9 5",
	})

	mgr := store.New()

	productStats, err := LoadProducts(productsPath, mgr)
	require.NoError(t, err)
	assert.Equal(t, 2, productStats.Added)

	purchaseStats, err := LoadPurchases(purchasesPath, mgr)
	require.NoError(t, err)
	assert.Equal(t, 3, purchaseStats.Recorded)
	assert.Equal(t, 1, purchaseStats.UnknownProducts)

	// Aggregates: P1 -> 5, P2 -> 1; Gym -> 5, Technology -> 1.
	units := mgr.ProductUnits()
	require.Len(t, units, 2)
	assert.Equal(t, uint64(5), units[0].Units)
	assert.Equal(t, uint64(1), units[1].Units)

	byCategory := mgr.CategoryUnits()
	require.Len(t, byCategory, 2)
	assert.Equal(t, uint64(5), byCategory[0].Units)
	assert.Equal(t, uint64(1), byCategory[1].Units)

	// T2 holds 3 units of P1.
	purchase, ok := mgr.Purchase("T2")
	require.True(t, ok)
	assert.InDelta(t, 31.5, purchase.TotalPrice(), 1e-9)

	// The discarded line for the unknown product P9 never created T3.
	_, ok = mgr.Purchase("T3")
	assert.False(t, ok)

	// P1 is listed under both of its labels.
	assert.Equal(t, []string{"new", "sale"}, mgr.Labels())

	outDir := t.TempDir()
	files := utils.NewFileManager(outDir, "querys", "tickets")
	require.NoError(t, files.EnsureDirectories())

	g := report.NewGenerator(mgr, files)
	require.NoError(t, g.WriteQueryReports())
	written, err := g.WriteAllTickets()
	require.NoError(t, err)
	assert.Equal(t, 2, written)

	productReport, err := os.ReadFile(filepath.Join(files.QuerysDir, report.ProductPurchasesFile))
	require.NoError(t, err)
	assert.Contains(t, string(productReport), "id: P1")
	assert.Contains(t, string(productReport), "bought 5 units")

	categoryReport, err := os.ReadFile(filepath.Join(files.QuerysDir, report.CategoryPurchasesFile))
	require.NoError(t, err)
	assert.Contains(t, string(categoryReport), "Gym bought 5 units")
	assert.Contains(t, string(categoryReport), "Technology bought 1 units")

	labelReport, err := os.ReadFile(filepath.Join(files.QuerysDir, report.ProductsByLabelFile))
	require.NoError(t, err)
	assert.Contains(t, string(labelReport), "LABEL 'sale'")
	assert.Contains(t, string(labelReport), "LABEL 'new'")

	_, statErr := os.Stat(filepath.Join(files.TicketsDir, "ticket_T3.txt"))
	assert.True(t, os.IsNotExist(statErr), "T3 was never recorded, so it gets no ticket")
}
