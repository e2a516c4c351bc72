package export

import (
	"strings"

	"github.com/CAREERS-Cyberteam/MHP/chem/assemble"
	chemerr "github.com/CAREERS-Cyberteam/MHP/chem/errors"
)

// Format identifies an output structure-file format
type Format int

const (
	FormatMol Format = iota
	FormatSDF
	FormatXYZ
	FormatPDB
	FormatSMILES
)

// String returns the conventional file extension for the format
func (f Format) String() string {
	switch f {
	case FormatMol:
		return "mol"
	case FormatSDF:
		return "sdf"
	case FormatXYZ:
		return "xyz"
	case FormatPDB:
		return "pdb"
	case FormatSMILES:
		return "smi"
	default:
		return "unknown"
	}
}

// ParseFormat resolves a format name or file extension
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "mol", "mdl":
		return FormatMol, nil
	case "sdf", "sd":
		return FormatSDF, nil
	case "xyz":
		return FormatXYZ, nil
	case "pdb":
		return FormatPDB, nil
	case "smi", "smiles":
		return FormatSMILES, nil
	default:
		return 0, chemerr.Newf(chemerr.UnsupportedFormat, "exporter", chemerr.CodeUnknownFormat,
			"unsupported format %q", name)
	}
}

// saturated reports whether the format requires every valence resolved.
// SMILES renders open stubs as [*] atoms, so it tolerates them.
func (f Format) saturated() bool {
	return f != FormatSMILES
}

// Export serializes a frozen polymer graph into the requested format.
// The graph must be finalized; formats demanding full saturation reject
// polymers with open attachment points.
func Export(g *assemble.Polymer, format Format) ([]byte, error) {
	switch format {
	case FormatMol, FormatSDF, FormatXYZ, FormatPDB, FormatSMILES:
	default:
		return nil, chemerr.Newf(chemerr.UnsupportedFormat, "exporter", chemerr.CodeUnknownFormat,
			"unsupported format %d", int(format))
	}
	if !g.Frozen() {
		return nil, chemerr.New(chemerr.IncompleteStructure, "exporter", chemerr.CodeNotFrozen,
			"polymer graph is not finalized")
	}
	if format.saturated() && len(g.Open()) > 0 {
		return nil, chemerr.Newf(chemerr.IncompleteStructure, "exporter", chemerr.CodeOpenValences,
			"%d open attachment points remain but %s requires full saturation", len(g.Open()), format)
	}

	switch format {
	case FormatMol:
		return writeMol(g, false)
	case FormatSDF:
		return writeMol(g, true)
	case FormatXYZ:
		return writeXYZ(g)
	case FormatPDB:
		return writePDB(g)
	default:
		return writeSMILES(g)
	}
}
