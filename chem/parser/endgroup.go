package parser

import (
	"strings"

	chemerr "github.com/CAREERS-Cyberteam/MHP/chem/errors"
)

// ParseEndGroup parses end-group notation. A marker fixes the attachment
// direction explicitly. A markerless body is accepted only when its notation
// reads the same in both directions, so either end may face the chain; the
// first atom then donates one hydrogen as the attachment point. Markerless
// bodies that read differently are ambiguous and rejected.
func ParseEndGroup(source string) (*Fragment, error) {
	f, err := Parse(source)
	if err != nil {
		return nil, err
	}
	if len(f.Points) > 0 {
		return f, nil
	}
	if !palindromic(source) {
		return nil, chemerr.New(chemerr.InvalidAttachment, "parser", chemerr.CodeEndGroupAmbiguous,
			"markerless end group reads differently in each direction; add a [*] marker")
	}
	host := &f.Mol.Atoms[0]
	if host.Hydrogens < 1 {
		return nil, chemerr.Newf(chemerr.InvalidAttachment, "parser", chemerr.CodeMarkerCapacity,
			"end group %s atom has no free valence to attach", host.Element).WithAtom(0)
	}
	host.Hydrogens--
	f.Points = append(f.Points, AttachmentPoint{Atom: 0, Capacity: 1, Role: RoleAny})
	return f, nil
}

// palindromic reports whether the notation is its own reverse
func palindromic(source string) bool {
	runes := []rune(strings.TrimSpace(source))
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}
