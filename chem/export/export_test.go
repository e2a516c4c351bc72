package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CAREERS-Cyberteam/MHP/chem/assemble"
	chemerr "github.com/CAREERS-Cyberteam/MHP/chem/errors"
	"github.com/CAREERS-Cyberteam/MHP/chem/parser"
)

func buildPolymer(t *testing.T, policy assemble.Policy, sources ...string) *assemble.Polymer {
	t.Helper()
	fragments := make([]*parser.Fragment, len(sources))
	for i, src := range sources {
		f, err := parser.Parse(src)
		require.NoError(t, err, "parse %q", src)
		fragments[i] = f
	}
	g, err := assemble.Assemble(fragments, policy)
	require.NoError(t, err)
	return g
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name string
		want Format
	}{
		{"mol", FormatMol},
		{"mdl", FormatMol},
		{".mol", FormatMol},
		{"sdf", FormatSDF},
		{"sd", FormatSDF},
		{"XYZ", FormatXYZ},
		{"pdb", FormatPDB},
		{"smi", FormatSMILES},
		{"smiles", FormatSMILES},
	}
	for _, tt := range tests {
		f, err := ParseFormat(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, f, tt.name)
	}

	_, err := ParseFormat("cif")
	require.Error(t, err)
	assert.True(t, errors.Is(err, chemerr.ErrUnsupportedFormat))
}

func TestExport_RequiresFrozen(t *testing.T) {
	_, err := Export(assemble.NewPolymer(), FormatMol)
	require.Error(t, err)
	assert.True(t, errors.Is(err, chemerr.ErrIncompleteStructure))

	var be *chemerr.BuildError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, chemerr.CodeNotFrozen, be.Code)
}

func TestExport_OpenValencesRejected(t *testing.T) {
	g := buildPolymer(t, assemble.Policy{KeepOpenEnds: true}, "[*:1]CC[*:2]")

	for _, f := range []Format{FormatMol, FormatSDF, FormatXYZ, FormatPDB} {
		_, err := Export(g, f)
		require.Error(t, err, f.String())
		assert.True(t, errors.Is(err, chemerr.ErrIncompleteStructure), f.String())
	}
}

func TestExport_SMILESRendersOpenStubs(t *testing.T) {
	g := buildPolymer(t, assemble.Policy{KeepOpenEnds: true}, "[*:1]CC[*:2]")

	data, err := Export(g, FormatSMILES)
	require.NoError(t, err)
	assert.Equal(t, "C(C[*:2])[*:1]\n", string(data))
}

func TestExport_UnknownFormat(t *testing.T) {
	g := buildPolymer(t, assemble.Policy{}, "CCO")

	_, err := Export(g, Format(99))
	require.Error(t, err)
	assert.True(t, errors.Is(err, chemerr.ErrUnsupportedFormat))
}

func TestExport_MolDeterministic(t *testing.T) {
	g := buildPolymer(t, assemble.Policy{}, "[*:1]CC[*:2]", "[*:1]CC[*:2]", "[*:1]CC[*:2]")

	a, err := Export(g, FormatMol)
	require.NoError(t, err)
	b, err := Export(g, FormatMol)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(a, b))
}

func TestExport_MolRoundTrip(t *testing.T) {
	g := buildPolymer(t, assemble.Policy{}, "[*:1]CC[*:2]", "[*:1]CC[*:2]", "[*:1]CC[*:2]")

	data, err := Export(g, FormatMol)
	require.NoError(t, err)

	m, err := ReadMol(data)
	require.NoError(t, err)
	assert.Len(t, m.Atoms, 6)
	assert.Len(t, m.Bonds, 5)
	assert.Equal(t, "C6H14", m.Formula())

	// writing the read-back graph reproduces the file byte for byte
	h, err := assemble.FromMolecule(m)
	require.NoError(t, err)
	again, err := Export(h, FormatMol)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(data, again))
}

func TestExport_MolChargeProperty(t *testing.T) {
	g := buildPolymer(t, assemble.Policy{}, "[NH4+]")

	data, err := Export(g, FormatMol)
	require.NoError(t, err)
	assert.Contains(t, string(data), "M  CHG  1   1   1")

	m, err := ReadMol(data)
	require.NoError(t, err)
	require.Len(t, m.Atoms, 1)
	assert.Equal(t, 1, m.Atoms[0].Charge)
}

func TestExport_SDFTerminator(t *testing.T) {
	g := buildPolymer(t, assemble.Policy{}, "CCO")

	data, err := Export(g, FormatSDF)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "$$$$\n"))

	// the record body is a plain molfile
	m, err := ReadMol(data)
	require.NoError(t, err)
	assert.Equal(t, "C2H6O", m.Formula())
}

func TestExport_XYZExpandsHydrogens(t *testing.T) {
	g := buildPolymer(t, assemble.Policy{}, "C(=O)[*:1]", "[*:1]N")

	data, err := Export(g, FormatXYZ)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	// CH3NO: 3 heavy atoms + 3 hydrogens
	assert.Equal(t, "6", lines[0])
	assert.Equal(t, "CH3NO", lines[1])
	assert.Len(t, lines, 8)
}

func TestExport_PDB(t *testing.T) {
	g := buildPolymer(t, assemble.Policy{}, "CCO")

	data, err := Export(g, FormatPDB)
	require.NoError(t, err)
	text := string(data)
	assert.Equal(t, 3, strings.Count(text, "HETATM"))
	assert.Equal(t, 4, strings.Count(text, "CONECT"))
	assert.True(t, strings.HasSuffix(text, "END\n"))
}

func TestExport_SMILESSaturated(t *testing.T) {
	g := buildPolymer(t, assemble.Policy{}, "C(=O)[*:1]", "[*:1]N")

	data, err := Export(g, FormatSMILES)
	require.NoError(t, err)
	assert.Equal(t, "C(=O)N\n", string(data))
}

func TestReadMol_Malformed(t *testing.T) {
	_, err := ReadMol([]byte("not a molfile"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, chemerr.ErrMalformedFragment))
}
