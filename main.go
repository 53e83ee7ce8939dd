// =============================================================================
// Purchases Manager - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Purchases Manager CLI application.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   purchases-manager process <products> <purchases>  - Generate all reports
//   purchases-manager validate <products> <purchases> - Check inputs only
//   purchases-manager version                         - Display the version
//
// ARCHITECTURE:
//   - cmd/              : CLI command definitions (Cobra)
//   - internal/catalog/ : Product entity, category enum, line parser
//   - internal/store/   : Purchase entity and the aggregation store
//   - internal/report/  : Report renderers and output generation
//   - internal/ingest/  : Text and XLSX source readers
//   - internal/config/  : YAML configuration with defaults
//   - pkg/utils/        : Output tree file management
//
// =============================================================================

package main

import (
	"github.com/martinAleB/purchases-manager/cmd"
)

// main is the entry point of the application.
func main() {
	cmd.Execute()
}
