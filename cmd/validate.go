// =============================================================================
// Purchases Manager - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which runs the full ingestion
// pass without writing anything to disk. It is the dry-run counterpart of
// 'process': the same parsers and the same aggregation store are exercised,
// and the command reports how many records were valid, malformed, duplicated
// or unresolvable.
//
// COMMAND USAGE:
//   purchases-manager validate <products-file> <purchases-file>
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/martinAleB/purchases-manager/internal/config"
	"github.com/martinAleB/purchases-manager/internal/ingest"
	"github.com/martinAleB/purchases-manager/internal/store"
)

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate <products-file> <purchases-file>",
	Short: "Check both input files without generating any output",
	Long: `The validate command parses the product catalog and the purchase log with
the exact rules used by 'process', but writes no reports and no tickets.
It prints a breakdown of valid and discarded records, which makes it easy to
check new input files before a real run.`,

	Args: cobra.ExactArgs(2),

	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(args[0], args[1])
	},
}

// init registers the validate command with the root command.
func init() {
	rootCmd.AddCommand(validateCmd)
}

// runValidate ingests both sources into a throwaway store and reports what
// would be kept and what would be discarded.
func runValidate(productsPath, purchasesPath string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyLogLevel(cfg.Level())

	mgr := store.New()

	productStats, err := ingest.LoadProducts(productsPath, mgr)
	if err != nil {
		return err
	}

	purchaseStats, err := ingest.LoadPurchases(purchasesPath, mgr)
	if err != nil {
		return err
	}

	fmt.Println("=== Validation Report ===")
	fmt.Printf("Products file:       %s\n", productsPath)
	fmt.Printf("  valid:             %d\n", productStats.Added)
	fmt.Printf("  malformed:         %d\n", productStats.Malformed)
	fmt.Printf("  duplicate ids:     %d\n", productStats.Duplicates)
	fmt.Printf("Purchases file:      %s\n", purchasesPath)
	fmt.Printf("  valid:             %d\n", purchaseStats.Recorded)
	fmt.Printf("  malformed:         %d\n", purchaseStats.Malformed)
	fmt.Printf("  unknown products:  %d\n", purchaseStats.UnknownProducts)
	fmt.Printf("Purchases recorded:  %d\n", len(mgr.PurchaseIDs()))

	return nil
}
