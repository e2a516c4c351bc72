package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CAREERS-Cyberteam/MHP/chem/assemble"
	"github.com/CAREERS-Cyberteam/MHP/chem/export"
	"github.com/CAREERS-Cyberteam/MHP/internal/cli/ui"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input.mol> <output>",
	Short: "Convert a structure file to another format",
	Long: `Convert reads a molfile (.mol or single-record .sdf) back into a
molecular graph and re-exports it in the format implied by the output
file's extension.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, out := args[0], args[1]
		switch strings.ToLower(ext(in)) {
		case "mol", "sdf":
		default:
			return fmt.Errorf("unsupported input extension %q: use .mol or .sdf", ext(in))
		}

		data, err := os.ReadFile(in)
		if err != nil {
			return err
		}
		m, err := export.ReadMol(data)
		if err != nil {
			ui.Error(cmd.ErrOrStderr(), err)
			return fmt.Errorf("could not read %s", in)
		}
		g, err := assemble.FromMolecule(m)
		if err != nil {
			ui.Error(cmd.ErrOrStderr(), err)
			return fmt.Errorf("structure in %s is not exportable", in)
		}
		format, err := export.ParseFormat(ext(out))
		if err != nil {
			return err
		}
		return emit(cmd, g, out, format)
	},
}
