package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atogen/atogen/pkg/kicad/netlist"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <netlist_file>",
	Short: "Show netlist information",
	Long:  `Display a summary of a KiCad netlist export (.net): design provenance, part and component counts, and net statistics.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]
	nl, err := netlist.ParseFile(filename)
	if err != nil {
		return fmt.Errorf("error parsing netlist: %w", err)
	}

	fmt.Printf("Netlist: %s\n", filename)
	fmt.Printf("Version: %s\n", nl.Version)
	if nl.Design.Source != "" {
		fmt.Printf("Source: %s\n", nl.Design.Source)
	}
	if nl.Design.Date != "" {
		fmt.Printf("Date: %s\n", nl.Design.Date)
	}
	if nl.Design.Tool != "" {
		fmt.Printf("Tool: %s\n", nl.Design.Tool)
	}
	fmt.Println()

	fmt.Println("Statistics:")
	fmt.Printf("  Library parts: %d\n", len(nl.LibParts))
	fmt.Printf("  Components: %d\n", len(nl.Components))
	fmt.Printf("  Nets: %d\n", len(nl.Nets))
	fmt.Println()

	if len(nl.Components) > 0 {
		fmt.Println("Components:")

		// Group by reference prefix
		byPrefix := make(map[string][]string)
		for _, component := range nl.Components {
			prefix := refPrefix(component.Ref)
			byPrefix[prefix] = append(byPrefix[prefix], component.Ref)
		}

		var prefixes []string
		for p := range byPrefix {
			prefixes = append(prefixes, p)
		}
		sort.Strings(prefixes)

		for _, prefix := range prefixes {
			refs := byPrefix[prefix]
			sort.Strings(refs)
			fmt.Printf("  %s: %s\n", prefix, strings.Join(refs, ", "))
		}
		fmt.Println()
	}

	if verbose && len(nl.Nets) > 0 {
		fmt.Println("Nets:")
		for _, net := range nl.Nets {
			fmt.Printf("  %s (%d nodes)\n", net.Name, len(net.Nodes))
		}
	}

	return nil
}

func refPrefix(ref string) string {
	for i, r := range ref {
		if r >= '0' && r <= '9' {
			return ref[:i]
		}
	}
	return ref
}
