package mol

import (
	"fmt"
	"strings"
)

// organicSubset lists elements writable without brackets when unexceptional
var organicSubset = map[string]bool{
	"B": true, "C": true, "N": true, "O": true, "P": true,
	"S": true, "F": true, "Cl": true, "Br": true, "I": true,
}

// SMILES renders the molecule as a SMILES string. Output is deterministic:
// depth-first from atom 0, neighbors in bond declaration order, ring-closure
// digits assigned in discovery order. Disconnected components are joined
// with '.'.
func (m *Molecule) SMILES() string {
	w := &smilesWriter{
		m:       m,
		visited: make([]bool, len(m.Atoms)),
		ringAt:  make(map[int][]ringRef),
	}
	first := true
	for i := range m.Atoms {
		if w.visited[i] {
			continue
		}
		if !first {
			w.b.WriteByte('.')
		}
		first = false
		w.findRings(i, -1)
		w.reset()
		w.write(i, -1)
	}
	return w.b.String()
}

type ringRef struct {
	digit int
	order BondOrder
}

type smilesWriter struct {
	m        *Molecule
	visited  []bool
	ringAt   map[int][]ringRef
	ringSeen map[int]bool  // bond index -> closure already numbered
	treeKids map[int][]int // atom -> spanning-tree child bond indices
	next     int
	b        strings.Builder
}

// findRings walks the spanning tree and assigns a closure digit to every
// back edge, recorded at both endpoints.
func (w *smilesWriter) findRings(u, fromBond int) {
	w.visited[u] = true
	if w.ringSeen == nil {
		w.ringSeen = make(map[int]bool)
		w.treeKids = make(map[int][]int)
	}
	for bi, b := range w.m.Bonds {
		if b.From != u && b.To != u {
			continue
		}
		if bi == fromBond {
			continue
		}
		v := b.From
		if v == u {
			v = b.To
		}
		if w.visited[v] {
			if !w.ringSeen[bi] {
				w.ringSeen[bi] = true
				w.next++
				ref := ringRef{digit: w.next, order: b.Order}
				w.ringAt[u] = append(w.ringAt[u], ref)
				w.ringAt[v] = append(w.ringAt[v], ref)
			}
			continue
		}
		w.treeKids[u] = append(w.treeKids[u], bi)
		w.findRings(v, bi)
	}
}

// reset clears the visited marks between the ring pass and the write pass
// while keeping ring assignments.
func (w *smilesWriter) reset() {
	for i := range w.visited {
		w.visited[i] = false
	}
}

func (w *smilesWriter) write(u, fromBond int) {
	w.visited[u] = true
	if fromBond >= 0 {
		w.writeBond(w.m.Bonds[fromBond], u)
	}
	w.writeAtom(u)
	for _, ref := range w.ringAt[u] {
		if ref.order == Double {
			w.b.WriteByte('=')
		} else if ref.order == Triple {
			w.b.WriteByte('#')
		}
		if ref.digit > 9 {
			fmt.Fprintf(&w.b, "%%%d", ref.digit)
		} else {
			fmt.Fprintf(&w.b, "%d", ref.digit)
		}
	}

	children := w.treeKids[u]
	for ci, bi := range children {
		b := w.m.Bonds[bi]
		v := b.From
		if v == u {
			v = b.To
		}
		if ci < len(children)-1 {
			w.b.WriteByte('(')
			w.write(v, bi)
			w.b.WriteByte(')')
		} else {
			w.write(v, bi)
		}
	}
}

// writeBond emits the bond symbol preceding atom `to`
func (w *smilesWriter) writeBond(b Bond, to int) {
	switch b.Order {
	case Double:
		w.b.WriteByte('=')
	case Triple:
		w.b.WriteByte('#')
	case Aromatic:
		// implied between aromatic atoms
	default:
		switch b.Stereo {
		case StereoUp:
			w.b.WriteByte('/')
		case StereoDown:
			w.b.WriteByte('\\')
		}
	}
}

func (w *smilesWriter) writeAtom(i int) {
	a := w.m.Atoms[i]
	sym := a.Element
	if a.Aromatic {
		sym = strings.ToLower(sym)
	}

	plain := organicSubset[a.Element] &&
		a.Charge == 0 && a.Isotope == 0 && a.Class == 0 &&
		a.Parity == ParityNone &&
		a.Hydrogens == normalHydrogens(w.m, i)
	if plain {
		w.b.WriteString(sym)
		return
	}

	w.b.WriteByte('[')
	if a.Isotope > 0 {
		fmt.Fprintf(&w.b, "%d", a.Isotope)
	}
	w.b.WriteString(sym)
	switch a.Parity {
	case ParityCounterclock:
		w.b.WriteByte('@')
	case ParityClockwise:
		w.b.WriteString("@@")
	}
	if a.Hydrogens == 1 {
		w.b.WriteByte('H')
	} else if a.Hydrogens > 1 {
		fmt.Fprintf(&w.b, "H%d", a.Hydrogens)
	}
	if a.Charge > 0 {
		if a.Charge == 1 {
			w.b.WriteByte('+')
		} else {
			fmt.Fprintf(&w.b, "+%d", a.Charge)
		}
	} else if a.Charge < 0 {
		if a.Charge == -1 {
			w.b.WriteByte('-')
		} else {
			fmt.Fprintf(&w.b, "-%d", -a.Charge)
		}
	}
	if a.Class > 0 {
		fmt.Fprintf(&w.b, ":%d", a.Class)
	}
	w.b.WriteByte(']')
}

// normalHydrogens is the count an unbracketed atom would receive
func normalHydrogens(m *Molecule, i int) int {
	free := MaxValence(m.Atoms[i]) - m.BondOrderSum(i)
	if free < 0 {
		return 0
	}
	return free
}
