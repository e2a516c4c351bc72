package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/CAREERS-Cyberteam/MHP/chem/assemble"
	"github.com/CAREERS-Cyberteam/MHP/chem/mol"
)

// writeMol renders an MDL molfile (V2000 connection table), optionally
// terminated as a single-record SD file.
func writeMol(g *assemble.Polymer, sdf bool) ([]byte, error) {
	m := layout(g.Mol)
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", m.Formula())
	b.WriteString("  MHP             2D\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "%3d%3d  0  0  0  0  0  0  0  0999 V2000\n", len(m.Atoms), len(m.Bonds))

	for _, a := range m.Atoms {
		fmt.Fprintf(&b, "%10.4f%10.4f%10.4f %-3s 0  0  0  0  0  0  0  0  0  0  0  0\n",
			a.X, a.Y, 0.0, a.Element)
	}
	for _, bd := range m.Bonds {
		order := int(bd.Order)
		fmt.Fprintf(&b, "%3d%3d%3d  0  0  0  0\n", bd.From+1, bd.To+1, order)
	}
	for i, a := range m.Atoms {
		if a.Charge != 0 {
			fmt.Fprintf(&b, "M  CHG  1 %3d %3d\n", i+1, a.Charge)
		}
	}
	b.WriteString("M  END\n")
	if sdf {
		b.WriteString("$$$$\n")
	}
	return []byte(b.String()), nil
}

// writeXYZ renders an XYZ coordinate file. Implicit hydrogens become
// explicit atoms ringed around their host so the atom count matches the
// formula.
func writeXYZ(g *assemble.Polymer) ([]byte, error) {
	m := layout(g.Mol)

	type coord struct {
		element string
		x, y    float64
	}
	atoms := make([]coord, 0, len(m.Atoms))
	for _, a := range m.Atoms {
		atoms = append(atoms, coord{element: a.Element, x: a.X, y: a.Y})
	}
	for i, a := range m.Atoms {
		for h := 0; h < a.Hydrogens; h++ {
			angle := 2 * math.Pi * float64(h+1) / float64(a.Hydrogens+1)
			atoms = append(atoms, coord{
				element: "H",
				x:       m.Atoms[i].X + 0.6*math.Cos(angle),
				y:       m.Atoms[i].Y + 0.6*math.Sin(angle),
			})
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d\n", len(atoms))
	fmt.Fprintf(&b, "%s\n", m.Formula())
	for _, a := range atoms {
		fmt.Fprintf(&b, "%-3s %12.6f %12.6f %12.6f\n", a.element, a.x, a.y, 0.0)
	}
	return []byte(b.String()), nil
}

// writePDB renders heavy atoms as HETATM records with CONECT connectivity
func writePDB(g *assemble.Polymer) ([]byte, error) {
	m := layout(g.Mol)
	var b strings.Builder

	for i, a := range m.Atoms {
		name := fmt.Sprintf("%s%d", a.Element, i+1)
		if len(name) > 4 {
			name = name[:4]
		}
		fmt.Fprintf(&b, "HETATM%5d %-4s UNL     1    %8.3f%8.3f%8.3f  1.00  0.00          %2s\n",
			i+1, name, a.X, a.Y, 0.0, strings.ToUpper(a.Element))
	}
	for _, bd := range m.Bonds {
		fmt.Fprintf(&b, "CONECT%5d%5d\n", bd.From+1, bd.To+1)
		fmt.Fprintf(&b, "CONECT%5d%5d\n", bd.To+1, bd.From+1)
	}
	b.WriteString("END\n")
	return []byte(b.String()), nil
}

// writeSMILES renders the polymer as a SMILES line. Open attachment points
// reappear as [*] stubs carrying their original atom-map class.
func writeSMILES(g *assemble.Polymer) ([]byte, error) {
	m := g.Mol.Clone()
	for _, p := range g.Open() {
		stub := m.AddAtom(mol.Atom{Element: "*", Class: p.Class})
		order := mol.Single
		switch p.Capacity {
		case 2:
			order = mol.Double
		case 3:
			order = mol.Triple
		}
		if err := m.AddBond(mol.Bond{From: p.Atom, To: stub, Order: order}); err != nil {
			return nil, err
		}
	}
	return []byte(m.SMILES() + "\n"), nil
}
