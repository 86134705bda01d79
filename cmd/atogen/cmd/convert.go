package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/atogen/atogen/pkg/atopile"
	"github.com/atogen/atogen/pkg/kicad/netlist"
	"github.com/spf13/cobra"
)

var (
	convertNetlist   string
	convertOutputDir string
	convertForce     bool
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a KiCad netlist into an atopile project",
	Long: `Convert a KiCad netlist export (.net) into an atopile project.

The project is named after the base name of the output directory. If the
output directory does not exist yet, it is scaffolded via 'ato create'.
Generated source files land under <output-dir>/elec/src/.`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertNetlist, "netlist", "n", "", "path to the KiCad netlist file (.net) to be converted")
	convertCmd.Flags().StringVarP(&convertOutputDir, "output-dir", "o", "", "directory where the converted output will be saved")
	convertCmd.Flags().BoolVarP(&convertForce, "force", "f", false, "force overwrite of existing files in the output directory")
	convertCmd.MarkFlagRequired("netlist")
	convertCmd.MarkFlagRequired("output-dir")
}

func runConvert(cmd *cobra.Command, args []string) error {
	projectName := filepath.Base(filepath.Clean(convertOutputDir))

	if _, err := os.Stat(convertOutputDir); err == nil {
		if !convertForce {
			return fmt.Errorf("directory already exists: %q (pass --force to overwrite)", convertOutputDir)
		}
	} else if os.IsNotExist(err) {
		if err := scaffoldProject(projectName, convertOutputDir); err != nil {
			return err
		}
	} else {
		return fmt.Errorf("failed to stat output directory: %w", err)
	}

	nl, err := netlist.ParseFile(convertNetlist)
	if err != nil {
		return fmt.Errorf("error parsing netlist: %w", err)
	}

	sch, err := netlist.ToSchematic(nl)
	if err != nil {
		return fmt.Errorf("error interpreting netlist: %w", err)
	}

	if err := sch.Normalize(atopile.Normalizer{}); err != nil {
		return fmt.Errorf("error normalizing names: %w", err)
	}

	project, err := atopile.FromSchematic(projectName, sch)
	if err != nil {
		return fmt.Errorf("error building project: %w", err)
	}

	if err := project.GenerateToDirectory(convertOutputDir); err != nil {
		return fmt.Errorf("error writing project: %w", err)
	}

	fmt.Println("Conversion completed successfully!")
	return nil
}

// scaffoldProject creates the output directory by spawning 'ato create' in
// its parent, so the generated sources drop into a ready-made project.
func scaffoldProject(projectName, outputDir string) error {
	fmt.Println("Output does not exist, calling `ato create`...")

	create := exec.Command("ato", "create", projectName)
	create.Dir = filepath.Dir(filepath.Clean(outputDir))
	create.Stdin = os.Stdin
	create.Stdout = os.Stdout
	create.Stderr = os.Stderr

	if err := create.Run(); err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	fmt.Println("Created project!")
	return nil
}
