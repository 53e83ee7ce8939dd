// =============================================================================
// Purchases Manager - Process Command
// =============================================================================
//
// This file defines the 'process' command, which runs the full pipeline.
//
// COMMAND USAGE:
//   purchases-manager process <products-file> <purchases-file>
//
// PROCESSING PIPELINE:
//   1. Load configuration (optional config.yaml, defaults otherwise)
//   2. Create the output tree (response/querys, response/tickets)
//   3. Ingest the product catalog into the aggregation store
//   4. Ingest the purchase log, updating all derived aggregates
//   5. Write the three query reports
//   6. Write one ticket per recorded purchase
//   7. Print a run summary
//
// Ingestion is strictly sequential and completes before any rendering
// starts, so the render phase only ever sees a fully settled store.
//
// Malformed or unresolvable records are logged and skipped; an unreadable
// input file or any output tree failure aborts the run.
//
// =============================================================================

package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/martinAleB/purchases-manager/internal/config"
	"github.com/martinAleB/purchases-manager/internal/ingest"
	"github.com/martinAleB/purchases-manager/internal/report"
	"github.com/martinAleB/purchases-manager/internal/store"
	"github.com/martinAleB/purchases-manager/pkg/utils"
)

// processCmd represents the 'process' command.
var processCmd = &cobra.Command{
	Use:   "process <products-file> <purchases-file>",
	Short: "Ingest the catalog and purchase log and generate all reports",
	Long: `The process command reads the product catalog and the purchase log, builds
the in-memory aggregation store, and writes every report artifact:

  - the by-label catalog listing
  - the per-product purchased-unit counts
  - the per-category purchased-unit counts
  - one ticket per recorded purchase

Sources are plain text by default; a file with an .xlsx extension is read
sheet-row-wise with the same record semantics.

Malformed records never abort the run: they are logged and skipped, and the
summary reports how many were discarded.`,

	Args: cobra.ExactArgs(2),

	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess(args[0], args[1])
	},
}

// init registers the process command with the root command.
func init() {
	rootCmd.AddCommand(processCmd)
}

// runProcess orchestrates the full pipeline.
func runProcess(productsPath, purchasesPath string) error {
	startTime := time.Now()
	runID := uuid.New().String()
	logger := log.With().Str("runId", runID).Logger()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyLogLevel(cfg.Level())

	files := utils.NewFileManager(cfg.OutputDir, cfg.QuerysSubdir, cfg.TicketsSubdir)
	if err := files.EnsureDirectories(); err != nil {
		return err
	}

	// Ingestion: catalog first, then the purchase log against it.
	mgr := store.New()

	logger.Info().Str("path", productsPath).Msg("loading product catalog")
	productStats, err := ingest.LoadProducts(productsPath, mgr)
	if err != nil {
		return err
	}

	logger.Info().Str("path", purchasesPath).Msg("loading purchase log")
	purchaseStats, err := ingest.LoadPurchases(purchasesPath, mgr)
	if err != nil {
		return err
	}

	// Rendering: read-only over the settled store.
	generator := report.NewGenerator(mgr, files)
	if err := generator.WriteQueryReports(); err != nil {
		return err
	}
	tickets, err := generator.WriteAllTickets()
	if err != nil {
		return err
	}

	elapsed := time.Since(startTime)
	fmt.Println("=== Processing Complete ===")
	fmt.Printf("Products loaded:     %d\n", productStats.Added)
	fmt.Printf("Products skipped:    %d\n", productStats.Malformed+productStats.Duplicates)
	fmt.Printf("Purchase lines:      %d\n", purchaseStats.Recorded)
	fmt.Printf("Lines skipped:       %d\n", purchaseStats.Malformed+purchaseStats.UnknownProducts)
	fmt.Printf("Tickets written:     %d\n", tickets)
	fmt.Printf("Time elapsed:        %s\n", elapsed)
	fmt.Println("Finished!")

	return nil
}
