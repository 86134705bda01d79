package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "atogen",
	Short: "atogen - Generate atopile projects from KiCad netlists",
	Long: `atogen converts a KiCad netlist export (.net) into an atopile project:
one component file per library part, one module per schematic sheet, and a
root module wiring the sheets together.

Examples:
  atogen convert -n board.net -o ~/projects/board   # Convert a netlist
  atogen info board.net                             # Show netlist summary
  atogen inspect board.net                          # Dump raw parse structure`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
