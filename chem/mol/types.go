package mol

import "fmt"

// BondOrder represents the order of a bond between two atoms
type BondOrder int

const (
	Single   BondOrder = 1
	Double   BondOrder = 2
	Triple   BondOrder = 3
	Aromatic BondOrder = 4
)

// Valence returns the contribution of the bond order to an atom's valence
// sum. Aromatic bonds contribute one unit; the delocalized remainder is
// accounted for per-atom (see ImplicitHydrogens).
func (o BondOrder) Valence() int {
	if o == Aromatic {
		return 1
	}
	return int(o)
}

// String returns the string representation of the bond order
func (o BondOrder) String() string {
	switch o {
	case Single:
		return "single"
	case Double:
		return "double"
	case Triple:
		return "triple"
	case Aromatic:
		return "aromatic"
	default:
		return fmt.Sprintf("order(%d)", int(o))
	}
}

// Parity is the tetrahedral stereo-parity flag of an atom
type Parity int

const (
	ParityNone         Parity = iota
	ParityClockwise           // @@
	ParityCounterclock        // @
)

// BondStereo is the cis/trans marker on a directional single bond
type BondStereo int

const (
	StereoNone BondStereo = iota
	StereoUp              // "/"
	StereoDown            // "\"
)

// Atom is a single atom in a molecular graph. Atoms are value types; once
// placed in a Molecule they are addressed by index and never re-identified.
type Atom struct {
	Element   string
	Charge    int
	Isotope   int // 0 means natural abundance
	Hydrogens int // implicit hydrogen count
	Aromatic  bool
	Parity    Parity
	Class     int     // atom-map class from [X:n] notation, 0 means none
	X, Y      float64 // 2-D coordinates, zero until a layout runs
}

// Bond connects two atoms by index. The pair ordering records declaration
// order; the graph itself is undirected.
type Bond struct {
	From, To int
	Order    BondOrder
	Stereo   BondStereo
}

// Molecule is a molecular graph: atoms addressed by insertion index, bonds
// by atom-index pairs. The zero value is an empty, usable molecule.
type Molecule struct {
	Atoms []Atom
	Bonds []Bond
}

// AddAtom appends an atom and returns its index
func (m *Molecule) AddAtom(a Atom) int {
	m.Atoms = append(m.Atoms, a)
	return len(m.Atoms) - 1
}

// AddBond appends a bond between two existing atoms.
// Self-bonds and duplicate bonds between the same atom pair are rejected.
func (m *Molecule) AddBond(b Bond) error {
	if b.From == b.To {
		return fmt.Errorf("self-bond on atom %d", b.From)
	}
	if b.From < 0 || b.From >= len(m.Atoms) || b.To < 0 || b.To >= len(m.Atoms) {
		return fmt.Errorf("bond references nonexistent atom (%d-%d)", b.From, b.To)
	}
	for _, existing := range m.Bonds {
		if (existing.From == b.From && existing.To == b.To) ||
			(existing.From == b.To && existing.To == b.From) {
			return fmt.Errorf("duplicate bond between atoms %d and %d", b.From, b.To)
		}
	}
	m.Bonds = append(m.Bonds, b)
	return nil
}

// BondOrderSum returns the summed valence contribution of all bonds touching
// the atom at index i, plus one unit for aromatic ring membership.
func (m *Molecule) BondOrderSum(i int) int {
	sum := 0
	aromatic := false
	for _, b := range m.Bonds {
		if b.From == i || b.To == i {
			sum += b.Order.Valence()
			if b.Order == Aromatic {
				aromatic = true
			}
		}
	}
	if aromatic {
		sum++
	}
	return sum
}

// Neighbors returns the indices of atoms bonded to atom i, in bond
// declaration order.
func (m *Molecule) Neighbors(i int) []int {
	var out []int
	for _, b := range m.Bonds {
		if b.From == i {
			out = append(out, b.To)
		} else if b.To == i {
			out = append(out, b.From)
		}
	}
	return out
}

// BondBetween returns the bond connecting atoms i and j, if any
func (m *Molecule) BondBetween(i, j int) (Bond, bool) {
	for _, b := range m.Bonds {
		if (b.From == i && b.To == j) || (b.From == j && b.To == i) {
			return b, true
		}
	}
	return Bond{}, false
}

// Connected reports whether the graph is a single component.
// The empty molecule is considered connected.
func (m *Molecule) Connected() bool {
	if len(m.Atoms) == 0 {
		return true
	}
	seen := make([]bool, len(m.Atoms))
	stack := []int{0}
	seen[0] = true
	count := 1
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range m.Neighbors(cur) {
			if !seen[n] {
				seen[n] = true
				count++
				stack = append(stack, n)
			}
		}
	}
	return count == len(m.Atoms)
}

// Clone returns a deep copy of the molecule
func (m *Molecule) Clone() *Molecule {
	dup := &Molecule{
		Atoms: make([]Atom, len(m.Atoms)),
		Bonds: make([]Bond, len(m.Bonds)),
	}
	copy(dup.Atoms, m.Atoms)
	copy(dup.Bonds, m.Bonds)
	return dup
}

// Merge copies every atom and bond of other into m under fresh indices and
// returns the index offset applied to other's atoms.
func (m *Molecule) Merge(other *Molecule) int {
	offset := len(m.Atoms)
	m.Atoms = append(m.Atoms, other.Atoms...)
	for _, b := range other.Bonds {
		m.Bonds = append(m.Bonds, Bond{
			From:   b.From + offset,
			To:     b.To + offset,
			Order:  b.Order,
			Stereo: b.Stereo,
		})
	}
	return offset
}

// Formula returns the Hill-order molecular formula including implicit
// hydrogens, e.g. "C2H5NO".
func (m *Molecule) Formula() string {
	counts := map[string]int{}
	for _, a := range m.Atoms {
		counts[a.Element]++
		counts["H"] += a.Hydrogens
	}
	return hillFormula(counts)
}
