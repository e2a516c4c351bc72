package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CAREERS-Cyberteam/MHP/chem/assemble"
	"github.com/CAREERS-Cyberteam/MHP/chem/enumerate"
	"github.com/CAREERS-Cyberteam/MHP/chem/export"
	"github.com/CAREERS-Cyberteam/MHP/chem/monomers"
	"github.com/CAREERS-Cyberteam/MHP/chem/parser"
	"github.com/CAREERS-Cyberteam/MHP/internal/cli/config"
	"github.com/CAREERS-Cyberteam/MHP/internal/cli/ui"
)

var buildFlags struct {
	n          int
	monomer    string
	super      []string
	initiator  string
	terminator string
	file       string
	format     string
	runFile    string
	sweep      bool
	keepOpen   bool
	quiet      bool
	verbose    bool
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Assemble a polymer from a monomer sequence",
	Long: `Build repeats a monomer (or weighted super-monomer sequence) n times,
attaches the configured end groups, and writes the resulting structure file.
Monomers are given as dictionary keys or raw fragment notation.`,
	RunE: runBuild,
}

func init() {
	f := buildCmd.Flags()
	f.IntVarP(&buildFlags.n, "n", "n", 1, "number of monomer or super-monomer units")
	f.StringVarP(&buildFlags.monomer, "monomer", "m", "", "single monomer key or fragment notation")
	f.StringSliceVarP(&buildFlags.super, "super", "s", nil, "super-monomer terms, e.g. -s 2 -s Ethylene -s Styrene for AAB")
	f.StringVarP(&buildFlags.initiator, "initiator", "i", "", "initiator end group (default from settings)")
	f.StringVarP(&buildFlags.terminator, "terminator", "t", "", "terminator end group (default from settings)")
	f.StringVarP(&buildFlags.file, "file", "f", "", "output file; format inferred from extension")
	f.StringVar(&buildFlags.format, "format", "", "output format when no file is given")
	f.StringVarP(&buildFlags.runFile, "json", "j", "", "JSON run file; flags fill unspecified fields")
	f.BoolVarP(&buildFlags.sweep, "sweep", "p", false, "build every size from 1 to n")
	f.BoolVar(&buildFlags.keepOpen, "keep-open", false, "leave chain-end valences open instead of hydrogen capping")
	f.BoolVarP(&buildFlags.quiet, "quiet", "q", false, "skip the structure confirmation prompt")
	f.BoolVarP(&buildFlags.verbose, "verbose", "v", false, "verbose logging")
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := zap.NewNop()
	if buildFlags.verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer logger.Sync()
	}

	base := config.Run{
		N:            buildFlags.n,
		Monomer:      buildFlags.monomer,
		SuperMonomer: buildFlags.super,
		Initiator:    firstOf(buildFlags.initiator, cfg.Initiator),
		Terminator:   firstOf(buildFlags.terminator, cfg.Terminator),
		File:         buildFlags.file,
		Format:       firstOf(buildFlags.format, cfg.DefaultFormat),
		KeepOpenEnds: buildFlags.keepOpen || cfg.KeepOpenEnds,
		Sweep:        buildFlags.sweep,
	}
	runs := []config.Run{base}
	if buildFlags.runFile != "" {
		runs, err = config.LoadRuns(buildFlags.runFile, base)
		if err != nil {
			return err
		}
	}

	quiet := buildFlags.quiet || cfg.Quiet
	for i, run := range runs {
		if len(runs) > 1 {
			ui.Info(cmd.OutOrStdout(), "run %d of %d", i+1, len(runs))
		}
		if err := executeRun(cmd, cfg, run, quiet, logger); err != nil {
			ui.Error(cmd.ErrOrStderr(), err)
			return fmt.Errorf("run %d failed", i+1)
		}
	}
	return nil
}

func executeRun(cmd *cobra.Command, cfg *config.Config, run config.Run, quiet bool, logger *zap.Logger) error {
	if run.N < 1 {
		return fmt.Errorf("n must be at least 1")
	}
	if run.Monomer != "" && len(run.SuperMonomer) > 0 {
		return fmt.Errorf("cannot specify both a single monomer and a super-monomer")
	}
	terms := run.SuperMonomer
	if run.Monomer != "" {
		terms = []string{run.Monomer}
	}
	if len(terms) == 0 {
		return fmt.Errorf("no monomer specified; use -m or -s")
	}

	unit, policy, mpn, err := resolveBuildingBlocks(cfg, terms, run)
	if err != nil {
		return err
	}
	logger.Debug("resolved repeat unit",
		zap.Int("fragments", len(unit)),
		zap.Int("monomers_per_unit", mpn))

	if !quiet {
		ok, err := confirmStructure(unit, policy)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("aborted; adjust the input and try again")
		}
	}

	format, err := export.ParseFormat(outputFormat(run))
	if err != nil {
		return err
	}

	if run.Sweep {
		return sweepRun(cmd, unit, policy, run, format, logger)
	}

	sequence := repeatUnit(unit, run.N)
	g, err := assemble.Assemble(sequence, policy)
	if err != nil {
		return err
	}
	logger.Debug("assembled polymer",
		zap.Int("atoms", len(g.Mol.Atoms)),
		zap.Int("bonds", len(g.Mol.Bonds)),
		zap.String("formula", g.Mol.Formula()))
	return emit(cmd, g, run.File, format)
}

// resolveBuildingBlocks turns dictionary keys and notation into parsed
// fragments and an assembly policy carrying the end groups.
func resolveBuildingBlocks(cfg *config.Config, terms []string, run config.Run) ([]*parser.Fragment, assemble.Policy, int, error) {
	resolved := make([]string, len(terms))
	for i, t := range terms {
		resolved[i] = cfg.ResolveMonomer(t)
	}
	notations, mpn, err := monomers.ExpandSuperMonomer(resolved)
	if err != nil {
		return nil, assemble.Policy{}, 0, err
	}
	unit := make([]*parser.Fragment, len(notations))
	for i, smi := range notations {
		unit[i], err = parser.Parse(smi)
		if err != nil {
			return nil, assemble.Policy{}, 0, err
		}
	}

	policy := assemble.Policy{KeepOpenEnds: run.KeepOpenEnds}
	policy.Initiator, err = parseEndGroup(cfg, run.Initiator)
	if err != nil {
		return nil, assemble.Policy{}, 0, err
	}
	policy.Terminator, err = parseEndGroup(cfg, run.Terminator)
	if err != nil {
		return nil, assemble.Policy{}, 0, err
	}
	return unit, policy, mpn, nil
}

// parseEndGroup resolves an end-group key. The Hydrogen key (or empty)
// means a plain hydrogen cap, handled by freezing rather than a fragment.
func parseEndGroup(cfg *config.Config, key string) (*parser.Fragment, error) {
	if key == "" || key == monomers.Hydrogen {
		return nil, nil
	}
	return parser.ParseEndGroup(monomers.LookupEnd(cfg.ResolveEndGroup(key)))
}

// confirmStructure previews the single-unit structure and asks to proceed,
// so end-group mistakes surface before a long batch.
func confirmStructure(unit []*parser.Fragment, policy assemble.Policy) (bool, error) {
	preview, err := assemble.Assemble(unit, policy)
	if err != nil {
		return false, err
	}
	smi, err := export.Export(preview, export.FormatSMILES)
	if err != nil {
		return false, err
	}
	ok := true
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Structure with n=1 is %s — does this look right?",
			strings.TrimSpace(string(smi))),
		Default: true,
	}
	if err := survey.AskOne(prompt, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

// sweepRun builds sizes 1..n, writing numbered files from the base name
func sweepRun(cmd *cobra.Command, unit []*parser.Fragment, policy assemble.Policy, run config.Run, format export.Format, logger *zap.Logger) error {
	indices := make([]int, len(unit))
	for i := range indices {
		indices[i] = i
	}
	stream, err := enumerate.New(unit, enumerate.Constraint{
		Kind:     enumerate.LengthSweep,
		Sequence: indices,
		Length:   run.N,
	}, policy)
	if err != nil {
		return err
	}
	i := 0
	for stream.Next() {
		i++
		g := stream.Polymer()
		logger.Debug("assembled sweep member", zap.Int("size", i), zap.String("formula", g.Mol.Formula()))
		name := ""
		if run.File != "" {
			name = numberedName(run.File, i)
		}
		if err := emit(cmd, g, name, format); err != nil {
			return err
		}
	}
	return stream.Err()
}

// Shared helpers

func repeatUnit(unit []*parser.Fragment, n int) []*parser.Fragment {
	out := make([]*parser.Fragment, 0, n*len(unit))
	for i := 0; i < n; i++ {
		out = append(out, unit...)
	}
	return out
}

// emit writes the exported structure to a file, or prints it when no file
// name is given.
func emit(cmd *cobra.Command, g *assemble.Polymer, file string, format export.Format) error {
	if file != "" {
		if f, err := export.ParseFormat(ext(file)); err == nil {
			format = f
		}
	}
	data, err := export.Export(g, format)
	if err != nil {
		return err
	}
	if file == "" {
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	}
	if err := os.WriteFile(file, data, 0o644); err != nil {
		return err
	}
	ui.Success(cmd.OutOrStdout(), "wrote %s (%s, %s)", file, format, g.Mol.Formula())
	return nil
}

func outputFormat(run config.Run) string {
	if run.File != "" {
		if e := ext(run.File); e != "" {
			return e
		}
	}
	if run.Format != "" {
		return run.Format
	}
	return "mol"
}

func ext(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return ""
}

func numberedName(name string, i int) string {
	if j := strings.LastIndex(name, "."); j >= 0 {
		return fmt.Sprintf("%s_%d%s", name[:j], i, name[j:])
	}
	return fmt.Sprintf("%s_%d", name, i)
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
