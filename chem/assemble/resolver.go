package assemble

import (
	chemerr "github.com/CAREERS-Cyberteam/MHP/chem/errors"
	"github.com/CAREERS-Cyberteam/MHP/chem/mol"
	"github.com/CAREERS-Cyberteam/MHP/chem/parser"
)

// Resolve bonds two open attachment points of the polymer at the given
// order. Both points must be unconsumed with remaining capacity >= order,
// and their roles must be compatible under head-to-tail policy. On success
// each point's capacity is decremented, with exhausted points leaving the
// open set.
func (g *Polymer) Resolve(a, b int, order mol.BondOrder) (mol.Bond, error) {
	if g.frozen {
		return mol.Bond{}, chemerr.New(chemerr.ValenceExceeded, "resolver", chemerr.CodePointConsumed,
			"polymer is frozen")
	}
	pa, ok := g.point(a)
	if !ok {
		return mol.Bond{}, chemerr.Newf(chemerr.ValenceExceeded, "resolver", chemerr.CodePointConsumed,
			"attachment point %d already consumed", a)
	}
	pb, ok := g.point(b)
	if !ok {
		return mol.Bond{}, chemerr.Newf(chemerr.ValenceExceeded, "resolver", chemerr.CodePointConsumed,
			"attachment point %d already consumed", b)
	}
	need := order.Valence()
	if pa.Capacity < need {
		return mol.Bond{}, chemerr.Newf(chemerr.ValenceExceeded, "resolver", chemerr.CodeCapacityExhausted,
			"%s bond exceeds remaining capacity %d of point %d", order, pa.Capacity, a).WithAtom(pa.Atom)
	}
	if pb.Capacity < need {
		return mol.Bond{}, chemerr.Newf(chemerr.ValenceExceeded, "resolver", chemerr.CodeCapacityExhausted,
			"%s bond exceeds remaining capacity %d of point %d", order, pb.Capacity, b).WithAtom(pb.Atom)
	}
	if pa.Role != parser.RoleAny && pa.Role == pb.Role {
		return mol.Bond{}, chemerr.Newf(chemerr.IncompatibleRole, "resolver", chemerr.CodeRoleConflict,
			"two %s points cannot bond under head-to-tail assembly", pa.Role)
	}
	if pa.Atom == pb.Atom {
		return mol.Bond{}, chemerr.Newf(chemerr.IncompatibleRole, "resolver", chemerr.CodeSelfBond,
			"points %d and %d share atom %d", a, b, pa.Atom).WithAtom(pa.Atom)
	}

	bond := mol.Bond{From: pa.Atom, To: pb.Atom, Order: order}
	if err := g.Mol.AddBond(bond); err != nil {
		return mol.Bond{}, chemerr.Newf(chemerr.IncompatibleRole, "resolver", chemerr.CodeDuplicateBond,
			"%s", err)
	}
	g.spend(a, need)
	g.spend(b, need)
	return bond, nil
}
