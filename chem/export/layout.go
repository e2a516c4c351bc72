package export

import (
	"math"

	"github.com/CAREERS-Cyberteam/MHP/chem/mol"
)

const bondLength = 1.0

// layout assigns deterministic 2-D coordinates on a copy of the molecule:
// a zig-zag backbone with branches fanned away from the chain. It is a
// sketch placement sufficient for structure files, not a depiction engine;
// callers wanting publication geometry should post-process with an external
// geometry tool.
func layout(src *mol.Molecule) *mol.Molecule {
	m := src.Clone()
	if len(m.Atoms) == 0 {
		return m
	}
	placed := make([]bool, len(m.Atoms))
	var walk func(u int, from int, angle float64, depth int)
	walk = func(u int, from int, angle float64, depth int) {
		placed[u] = true
		branch := 0
		for _, v := range m.Neighbors(u) {
			if placed[v] {
				continue
			}
			a := angle
			if depth%2 == 0 {
				a += math.Pi / 6
			} else {
				a -= math.Pi / 6
			}
			// fan additional branches away from the backbone
			a += float64(branch) * 2 * math.Pi / 3
			m.Atoms[v].X = m.Atoms[u].X + bondLength*math.Cos(a)
			m.Atoms[v].Y = m.Atoms[u].Y + bondLength*math.Sin(a)
			walk(v, u, a, depth+1)
			branch++
		}
	}
	for i := range m.Atoms {
		if !placed[i] {
			m.Atoms[i].X = 0
			m.Atoms[i].Y = float64(i) * 3 * bondLength
			walk(i, -1, 0, 0)
		}
	}
	return m
}
