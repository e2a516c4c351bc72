package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information - will be set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mhp",
		Short: "Synthetic polymer structure generator",
		Long: `MHP assembles synthetic polymer structures from monomer fragments written
in SMILES-like line notation with attachment markers, and exports them as
structure files (.mol, .sdf, .xyz, .pdb, .smi) for downstream chemistry tools.`,
	}

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(enumerateCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(settingsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
