package cmd

import (
	"fmt"
	"os"

	"github.com/atogen/atogen/pkg/kicad/netlist"
	"github.com/chewxy/sexp"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <netlist_file>",
	Short: "Inspect the raw structure of a netlist file",
	Long: `Parse a netlist file at the s-expression level and dump the decoded
records. Useful when a netlist fails to convert and the raw structure needs
checking.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	filename := args[0]

	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}
	fmt.Printf("File size: %d bytes\n", info.Size())

	sexps, err := sexp.Parse(file)
	if err != nil {
		return fmt.Errorf("s-expression parse failed: %w", err)
	}

	fmt.Printf("Parsed %d top-level s-expressions\n", len(sexps))
	if len(sexps) > 0 && !sexps[0].IsLeaf() {
		fmt.Printf("Root leaf count: %d\n", sexps[0].LeafCount())
	}
	fmt.Println()

	nl, err := netlist.ParseFile(filename)
	if err != nil {
		return fmt.Errorf("netlist decode failed: %w", err)
	}

	fmt.Println("Decoded records:")
	spew.Dump(nl)

	return nil
}
