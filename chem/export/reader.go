package export

import (
	"strconv"
	"strings"

	chemerr "github.com/CAREERS-Cyberteam/MHP/chem/errors"
	"github.com/CAREERS-Cyberteam/MHP/chem/mol"
)

// ReadMol parses an MDL molfile (V2000) back into a molecular graph,
// recomputing implicit hydrogens from the connection table. It reads a
// single record; SD-file terminators are ignored. This is the inverse of
// the mol/sdf writers and exists for format conversion round-trips.
func ReadMol(data []byte) (*mol.Molecule, error) {
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")

	countsAt := -1
	for i, line := range lines {
		if len(line) >= 39 && strings.Contains(line[34:39], "V2000") {
			countsAt = i
			break
		}
	}
	if countsAt < 0 {
		return nil, chemerr.New(chemerr.MalformedFragment, "reader", chemerr.CodeEmptyFragment,
			"molfile has no V2000 counts line")
	}
	counts := lines[countsAt]
	numAtoms, err1 := strconv.Atoi(strings.TrimSpace(counts[0:3]))
	numBonds, err2 := strconv.Atoi(strings.TrimSpace(counts[3:6]))
	if err1 != nil || err2 != nil || numAtoms < 0 || numBonds < 0 {
		return nil, chemerr.New(chemerr.MalformedFragment, "reader", chemerr.CodeEmptyFragment,
			"molfile counts line is malformed")
	}
	body := lines[countsAt+1:]
	if len(body) < numAtoms+numBonds {
		return nil, chemerr.Newf(chemerr.MalformedFragment, "reader", chemerr.CodeEmptyFragment,
			"molfile truncated: %d lines for %d atoms and %d bonds", len(body), numAtoms, numBonds)
	}

	m := &mol.Molecule{}
	for i := 0; i < numAtoms; i++ {
		line := body[i]
		if len(line) < 34 {
			return nil, chemerr.Newf(chemerr.MalformedFragment, "reader", chemerr.CodeEmptyFragment,
				"atom line %d too short", i+1)
		}
		x, _ := strconv.ParseFloat(strings.TrimSpace(line[0:10]), 64)
		y, _ := strconv.ParseFloat(strings.TrimSpace(line[10:20]), 64)
		m.AddAtom(mol.Atom{
			Element: strings.TrimSpace(line[31:34]),
			X:       x,
			Y:       y,
		})
	}
	for i := 0; i < numBonds; i++ {
		line := body[numAtoms+i]
		if len(line) < 9 {
			return nil, chemerr.Newf(chemerr.MalformedFragment, "reader", chemerr.CodeEmptyFragment,
				"bond line %d too short", i+1)
		}
		from, _ := strconv.Atoi(strings.TrimSpace(line[0:3]))
		to, _ := strconv.Atoi(strings.TrimSpace(line[3:6]))
		order, _ := strconv.Atoi(strings.TrimSpace(line[6:9]))
		if err := m.AddBond(mol.Bond{
			From:  from - 1,
			To:    to - 1,
			Order: mol.BondOrder(order),
		}); err != nil {
			return nil, chemerr.Newf(chemerr.MalformedFragment, "reader", chemerr.CodeDuplicateRingBond, "%s", err)
		}
	}

	// property block: formal charges
	for _, line := range body[numAtoms+numBonds:] {
		if strings.TrimSpace(line) == "M  END" {
			break
		}
		if strings.HasPrefix(line, "M  CHG") {
			fields := strings.Fields(line)
			// M CHG count atom charge [atom charge ...]
			for k := 3; k+1 < len(fields); k += 2 {
				idx, err := strconv.Atoi(fields[k])
				chg, err2 := strconv.Atoi(fields[k+1])
				if err == nil && err2 == nil && idx >= 1 && idx <= len(m.Atoms) {
					m.Atoms[idx-1].Charge = chg
				}
			}
		}
	}

	m.FillHydrogens(nil)
	return m, nil
}
