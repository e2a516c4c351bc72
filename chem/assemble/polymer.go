package assemble

import (
	chemerr "github.com/CAREERS-Cyberteam/MHP/chem/errors"
	"github.com/CAREERS-Cyberteam/MHP/chem/mol"
	"github.com/CAREERS-Cyberteam/MHP/chem/parser"
)

// OpenPoint is an unconsumed attachment point within the growing polymer.
// Atom indices refer to the polymer graph, not the source fragment.
type OpenPoint struct {
	ID       int // stable handle for the bonding resolver
	Atom     int
	Capacity int
	Role     parser.Role
	Class    int // atom-map class carried over from the fragment marker
	Fragment int // sequence index of the fragment that contributed the point
	Index    int // declaration order within that fragment
}

// Polymer is the macromolecule under assembly. It moves through the
// lifecycle empty -> grown -> validated -> frozen; only the assembly engine
// mutates it, and a frozen polymer never changes again.
type Polymer struct {
	Mol *mol.Molecule

	open      []OpenPoint
	nextID    int
	frozen    bool
	signature string
	monomers  int
}

// NewPolymer returns an empty polymer graph
func NewPolymer() *Polymer {
	return &Polymer{Mol: &mol.Molecule{}}
}

// FromMolecule wraps an existing molecular graph as a frozen single-unit
// polymer so structures read back from files can pass through the
// exporters. The graph must already satisfy the valence and connectivity
// invariants.
func FromMolecule(m *mol.Molecule) (*Polymer, error) {
	g := NewPolymer()
	g.Mol = m.Clone()
	if err := g.freeze(g.Mol.SMILES(), 1, false); err != nil {
		return nil, err
	}
	return g, nil
}

// Open returns the unconsumed attachment points in declaration order
func (g *Polymer) Open() []OpenPoint {
	out := make([]OpenPoint, len(g.open))
	copy(out, g.open)
	return out
}

// Frozen reports whether the polymer has been finalized
func (g *Polymer) Frozen() bool {
	return g.frozen
}

// Signature returns the canonical fragment-sequence signature used for
// duplicate detection. Empty until the polymer is frozen.
func (g *Polymer) Signature() string {
	return g.signature
}

// Monomers returns the number of monomer units assembled into the polymer
func (g *Polymer) Monomers() int {
	return g.monomers
}

// addFragment copies a fragment's atoms and bonds into the graph under fresh
// indices and registers its attachment points as open, returning the point
// handles in declaration order.
func (g *Polymer) addFragment(f *parser.Fragment, seqIndex int) []int {
	offset := g.Mol.Merge(f.Mol)
	ids := make([]int, 0, len(f.Points))
	for _, pt := range f.Points {
		g.nextID++
		g.open = append(g.open, OpenPoint{
			ID:       g.nextID,
			Atom:     pt.Atom + offset,
			Capacity: pt.Capacity,
			Role:     pt.Role,
			Class:    pt.Class,
			Fragment: seqIndex,
			Index:    pt.Index,
		})
		ids = append(ids, g.nextID)
	}
	return ids
}

// point returns the open point with the given handle
func (g *Polymer) point(id int) (OpenPoint, bool) {
	for _, p := range g.open {
		if p.ID == id {
			return p, true
		}
	}
	return OpenPoint{}, false
}

// spend decrements a point's capacity, dropping it from the open set once
// exhausted.
func (g *Polymer) spend(id, amount int) {
	for i := range g.open {
		if g.open[i].ID != id {
			continue
		}
		g.open[i].Capacity -= amount
		if g.open[i].Capacity <= 0 {
			g.open = append(g.open[:i], g.open[i+1:]...)
		}
		return
	}
}

// freeze finalizes the polymer: remaining open points are capped with
// hydrogen unless keepOpen stubs are requested, then the graph invariants
// are checked one last time.
func (g *Polymer) freeze(signature string, monomers int, keepOpen bool) error {
	if !keepOpen {
		for _, p := range g.open {
			g.Mol.Atoms[p.Atom].Hydrogens += p.Capacity
		}
		g.open = nil
	}
	if bad := g.Mol.CheckValence(); bad >= 0 {
		return chemerr.Newf(chemerr.ValenceExceeded, "assembler", chemerr.CodeCapacityExhausted,
			"atom %d exceeds its maximum valence after capping", bad).WithAtom(bad)
	}
	if !g.Mol.Connected() {
		return chemerr.New(chemerr.MalformedFragment, "assembler", chemerr.CodeDisconnected,
			"assembled graph is not connected")
	}
	g.signature = signature
	g.monomers = monomers
	g.frozen = true
	return nil
}
