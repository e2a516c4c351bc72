package mol

import (
	"fmt"
	"sort"
	"strings"
)

// defaultValence maps element symbols to their standard bonding capacity.
// Covers the organic subset plus the elements the parser accepts in brackets.
var defaultValence = map[string]int{
	"H":  1,
	"B":  3,
	"C":  4,
	"N":  3,
	"O":  2,
	"F":  1,
	"Si": 4,
	"P":  3,
	"S":  2,
	"Cl": 1,
	"Br": 1,
	"I":  1,
}

// MaxValence returns the maximum total bond order the atom may support,
// adjusted for formal charge (N+ supports 4, O- supports 1, and so on).
// Elements outside the table get zero implicit capacity; explicit bonds on
// them are still accepted.
func MaxValence(a Atom) int {
	base, ok := defaultValence[a.Element]
	if !ok {
		return 0
	}
	v := base + a.Charge
	if v < 0 {
		return 0
	}
	return v
}

// KnownElement reports whether the element symbol carries a valence entry
func KnownElement(symbol string) bool {
	_, ok := defaultValence[symbol]
	return ok
}

// FillHydrogens computes the implicit hydrogen count for every atom that has
// none assigned explicitly: the unused remainder of its maximum valence.
// Pass explicit=true for atoms whose hydrogen count was written in brackets;
// those are left untouched.
func (m *Molecule) FillHydrogens(explicit []bool) {
	for i := range m.Atoms {
		if explicit != nil && explicit[i] {
			continue
		}
		free := MaxValence(m.Atoms[i]) - m.BondOrderSum(i)
		if free < 0 {
			free = 0
		}
		m.Atoms[i].Hydrogens = free
	}
}

// CheckValence verifies that every atom's summed bond order plus hydrogens
// stays within its maximum valence. Returns the index of the first violating
// atom, or -1.
func (m *Molecule) CheckValence() int {
	for i, a := range m.Atoms {
		max := MaxValence(a)
		if max == 0 {
			continue
		}
		if m.BondOrderSum(i)+a.Hydrogens > max {
			return i
		}
	}
	return -1
}

// hillFormula renders element counts in Hill order: carbon, hydrogen, then
// the rest alphabetically.
func hillFormula(counts map[string]int) string {
	var b strings.Builder
	write := func(sym string) {
		n := counts[sym]
		if n <= 0 {
			return
		}
		b.WriteString(sym)
		if n > 1 {
			fmt.Fprintf(&b, "%d", n)
		}
	}
	write("C")
	write("H")
	rest := make([]string, 0, len(counts))
	for sym := range counts {
		if sym != "C" && sym != "H" {
			rest = append(rest, sym)
		}
	}
	sort.Strings(rest)
	for _, sym := range rest {
		write(sym)
	}
	return b.String()
}
