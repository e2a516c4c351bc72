// Package monomers provides the built-in lookup tables mapping friendly
// monomer and end-group names to fragment line notation. Keys not found in
// a table are passed through untouched and assumed to be raw notation.
package monomers

import (
	"sort"
	"strconv"

	chemerr "github.com/CAREERS-Cyberteam/MHP/chem/errors"
)

// Hydrogen is the end-group key meaning a plain hydrogen cap: no fragment
// is attached and the open valence is saturated at freeze time.
const Hydrogen = "Hydrogen"

// monomerDict maps monomer names to repeat-unit notation. Class 1 marks the
// head, class 2 the tail.
var monomerDict = map[string]string{
	"Ethylene":              "[*:1]CC[*:2]",
	"Propylene":             "[*:1]CC(C)[*:2]",
	"Styrene":               "[*:1]CC([*:2])c1ccccc1",
	"VinylChloride":         "[*:1]CC([*:2])Cl",
	"VinylAlcohol":          "[*:1]CC([*:2])O",
	"Acrylonitrile":         "[*:1]CC([*:2])C#N",
	"MethylMethacrylate":    "[*:1]CC([*:2])(C)C(=O)OC",
	"MethylAcrylate":        "[*:1]CC([*:2])C(=O)OC",
	"EthyleneOxide":         "[*:1]CCO[*:2]",
	"Caprolactam":           "[*:1]NCCCCC(=O)[*:2]",
	"LacticAcid":            "[*:1]OC(C)C(=O)[*:2]",
	"GlycolicAcid":          "[*:1]OCC(=O)[*:2]",
	"Tetrafluoroethylene":   "[*:1]C(F)(F)C(F)(F)[*:2]",
	"DimethylSiloxane":      "[*:1]O[Si](C)(C)[*:2]",
	"EthyleneTerephthalate": "[*:1]OCCOC(=O)c1ccc(C(=O)[*:2])cc1",
}

// initDict maps end-group names (initiators and terminators) to notation.
// A single unclassed marker lets the group face either chain end.
var initDict = map[string]string{
	"Methyl":   "C[*]",
	"Ethyl":    "CC[*]",
	"Propyl":   "CCC[*]",
	"Butyl":    "CCCC[*]",
	"Hydroxyl": "O[*]",
	"Amine":    "N[*]",
	"Phenyl":   "c1ccccc1[*]",
	"Benzyl":   "C(c1ccccc1)[*]",
	"Carboxyl": "OC(=O)[*]",
	"Methoxy":  "CO[*]",
}

// Monomer looks up a monomer key, reporting whether it was found
func Monomer(key string) (string, bool) {
	smi, ok := monomerDict[key]
	return smi, ok
}

// EndGroup looks up an end-group key, reporting whether it was found
func EndGroup(key string) (string, bool) {
	smi, ok := initDict[key]
	return smi, ok
}

// Lookup resolves a monomer key to notation, passing unknown keys through
func Lookup(key string) string {
	if smi, ok := monomerDict[key]; ok {
		return smi
	}
	return key
}

// LookupEnd resolves an end-group key to notation, passing unknown keys
// through
func LookupEnd(key string) string {
	if smi, ok := initDict[key]; ok {
		return smi
	}
	return key
}

// Names returns the built-in monomer names, sorted
func Names() []string {
	out := make([]string, 0, len(monomerDict))
	for name := range monomerDict {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// EndGroupNames returns the built-in end-group names, sorted
func EndGroupNames() []string {
	out := make([]string, 0, len(initDict))
	for name := range initDict {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// ExpandSuperMonomer expands a weighted repeat-unit declaration into an
// explicit notation sequence. Each term is a monomer key or raw notation; an
// integer term repeats the following monomer that many times, so
// ["2", "A", "B"] expands to [A, A, B]. Returns the expanded sequence and
// the number of monomers per repeat unit.
func ExpandSuperMonomer(terms []string) ([]string, int, error) {
	if len(terms) == 0 {
		return nil, 0, chemerr.New(chemerr.ConstraintUnsatisfiable, "enumerator", chemerr.CodeInvalidConstraint,
			"empty repeat-unit declaration")
	}
	var out []string
	coef := 1
	pendingCoef := false
	for _, term := range terms {
		if n, err := strconv.Atoi(term); err == nil {
			if pendingCoef {
				return nil, 0, chemerr.Newf(chemerr.ConstraintUnsatisfiable, "enumerator", chemerr.CodeInvalidConstraint,
					"consecutive coefficients in repeat unit near %q", term)
			}
			if n < 1 {
				return nil, 0, chemerr.Newf(chemerr.ConstraintUnsatisfiable, "enumerator", chemerr.CodeInvalidConstraint,
					"repeat coefficient must be positive, got %d", n)
			}
			coef = n
			pendingCoef = true
			continue
		}
		smi := Lookup(term)
		for i := 0; i < coef; i++ {
			out = append(out, smi)
		}
		coef = 1
		pendingCoef = false
	}
	if pendingCoef {
		return nil, 0, chemerr.New(chemerr.ConstraintUnsatisfiable, "enumerator", chemerr.CodeInvalidConstraint,
			"repeat unit ends with a dangling coefficient")
	}
	return out, len(out), nil
}
