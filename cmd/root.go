// =============================================================================
// Purchases Manager - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that the other commands ('process', 'validate',
// 'version') are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (purchases-manager)
//   ├── processCmd  (purchases-manager process <products> <purchases>)
//   ├── validateCmd (purchases-manager validate <products> <purchases>)
//   └── versionCmd  (purchases-manager version)
//
// The root command owns the global flags (--config, --verbose) and the
// logging setup shared by every subcommand.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// cfgFile holds the path to the main configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "purchases-manager",
	Short: "Purchases Manager - Aggregate a product catalog and a purchase log into reports",

	Long: `Purchases Manager is a CLI tool that ingests a product catalog and a log of
purchases from two flat sources, aggregates purchase statistics in memory,
and writes human-readable reports and per-purchase tickets to a filesystem
output tree.

Generated artifacts:
  response/querys/products_by_label.txt
  response/querys/product_purchases_number.txt
  response/querys/category_purchases_number.txt
  response/tickets/ticket_<purchase_id>.txt

Example Usage:
  purchases-manager process products.txt purchases.txt
  purchases-manager validate products.txt purchases.txt
  purchases-manager process --config ./my.yaml catalog.xlsx purchases.txt`,

	// Without a subcommand there is nothing to do but print the help.
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogging()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// initLogging configures the global zerolog logger. The configured log level
// is applied later, once the configuration file has been loaded; --verbose
// always forces debug.
func initLogging() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// applyLogLevel applies the configured log level unless --verbose already
// forced debug output.
func applyLogLevel(level zerolog.Level) {
	if !verbose {
		zerolog.SetGlobalLevel(level)
	}
}

// init sets up the global flags.
func init() {
	// --config flag: Allows the user to specify a custom configuration file.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the main configuration file (default is config.yaml)",
	)

	// --verbose flag: Enables debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
