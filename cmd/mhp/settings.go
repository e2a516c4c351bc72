package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/CAREERS-Cyberteam/MHP/chem/monomers"
	"github.com/CAREERS-Cyberteam/MHP/internal/cli/config"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the effective settings and monomer dictionaries",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "default_format: %s\n", cfg.DefaultFormat)
		fmt.Fprintf(out, "max_variants:   %d\n", cfg.MaxVariants)
		fmt.Fprintf(out, "initiator:      %s\n", cfg.Initiator)
		fmt.Fprintf(out, "terminator:     %s\n", cfg.Terminator)
		fmt.Fprintf(out, "keep_open_ends: %t\n", cfg.KeepOpenEnds)
		fmt.Fprintf(out, "quiet:          %t\n", cfg.Quiet)

		fmt.Fprintln(out, "\nbuilt-in monomers:")
		for _, name := range monomers.Names() {
			smi, _ := monomers.Monomer(name)
			fmt.Fprintf(out, "  %-22s %s\n", name, smi)
		}
		fmt.Fprintln(out, "\nbuilt-in end groups:")
		for _, name := range monomers.EndGroupNames() {
			smi, _ := monomers.EndGroup(name)
			fmt.Fprintf(out, "  %-22s %s\n", name, smi)
		}

		if len(cfg.Monomers) > 0 {
			fmt.Fprintln(out, "\nuser monomers:")
			keys := make([]string, 0, len(cfg.Monomers))
			for k := range cfg.Monomers {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(out, "  %-22s %s\n", k, cfg.Monomers[k])
			}
		}
		return nil
	},
}
