package parser

import (
	"github.com/CAREERS-Cyberteam/MHP/chem/mol"
)

// Role tags an attachment point with its position in head-to-tail assembly
type Role int

const (
	// RoleAny points may serve either end of a link
	RoleAny Role = iota
	// RoleHead points face the preceding fragment
	RoleHead
	// RoleTail points face the following fragment
	RoleTail
)

// String returns the string representation of the role
func (r Role) String() string {
	switch r {
	case RoleHead:
		return "head"
	case RoleTail:
		return "tail"
	default:
		return "any"
	}
}

// AttachmentPoint is a designated atom with remaining bonding capacity.
// It exists on a Fragment until the bonding resolver consumes it.
type AttachmentPoint struct {
	Atom     int // host atom index within the fragment's molecule
	Capacity int // remaining bond order available
	Role     Role
	Class    int // atom-map class carried by the marker, 0 when absent
	Index    int // declaration order within the fragment
}

// Fragment is a connected molecular graph plus its open attachment points.
// Fragments are immutable after parsing; the assembly engine copies their
// atoms and bonds into the growing polymer and never mutates them.
type Fragment struct {
	Source string // the notation the fragment was parsed from
	Mol    *mol.Molecule
	Points []AttachmentPoint

	signature string
}

// Signature returns the canonical signature used for cheap duplicate
// detection across enumerated variants.
func (f *Fragment) Signature() string {
	return f.signature
}

// Head returns the preferred head-facing point: the earliest-declared point
// tagged head, falling back to the earliest untagged point.
func (f *Fragment) Head() (AttachmentPoint, bool) {
	return f.pointFor(RoleHead)
}

// Tail returns the preferred tail-facing point, preferring points not chosen
// as the head when the fragment has more than one.
func (f *Fragment) Tail() (AttachmentPoint, bool) {
	if len(f.Points) > 1 {
		head, hasHead := f.Head()
		for _, p := range f.Points {
			if p.Role == RoleTail {
				return p, true
			}
		}
		for _, p := range f.Points {
			if p.Role == RoleAny && (!hasHead || p.Index != head.Index) {
				return p, true
			}
		}
		return AttachmentPoint{}, false
	}
	return f.pointFor(RoleTail)
}

// pointFor picks the earliest-declared point with the role, then the
// earliest untagged one. Points are already sorted by declaration; the
// secondary lowest-atom-index tie-break is implied because declaration order
// follows atom insertion order.
func (f *Fragment) pointFor(role Role) (AttachmentPoint, bool) {
	for _, p := range f.Points {
		if p.Role == role {
			return p, true
		}
	}
	for _, p := range f.Points {
		if p.Role == RoleAny {
			return p, true
		}
	}
	return AttachmentPoint{}, false
}
