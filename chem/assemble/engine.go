package assemble

import (
	"strings"

	chemerr "github.com/CAREERS-Cyberteam/MHP/chem/errors"
	"github.com/CAREERS-Cyberteam/MHP/chem/mol"
	"github.com/CAREERS-Cyberteam/MHP/chem/parser"
)

// Sequence indices reported for end-group bonding failures
const (
	initiatorIndex  = -1
	terminatorIndex = -2
)

// Policy configures how fragments are linked into a chain. The zero value
// links with single bonds, caps leftover valences with hydrogen and attaches
// no end groups.
type Policy struct {
	// Order is the bond order used between consecutive fragments.
	// Zero means single.
	Order mol.BondOrder

	// KeepOpenEnds leaves unconsumed attachment points open instead of
	// hydrogen-capping them, producing a polymer stub for further extension.
	KeepOpenEnds bool

	// Initiator, when set, bonds to the chain's first open head-facing
	// point before finalization. Terminator bonds to the last open
	// tail-facing point. Both mirror the end groups of the classic
	// initiator/monomer/terminator build.
	Initiator  *parser.Fragment
	Terminator *parser.Fragment
}

// order returns the effective linking bond order
func (p Policy) order() mol.BondOrder {
	if p.Order == 0 {
		return mol.Single
	}
	return p.Order
}

// Assemble grows a polymer from an ordered fragment sequence under the
// given policy. The build is atomic: any bonding failure rejects the whole
// sequence and the returned error carries the offending fragment index.
// Output ordering is fully reproducible for a given sequence and policy.
func Assemble(fragments []*parser.Fragment, policy Policy) (*Polymer, error) {
	if len(fragments) == 0 {
		return nil, chemerr.New(chemerr.ConstraintUnsatisfiable, "assembler", chemerr.CodeEmptySequence,
			"no fragments to assemble")
	}

	g := NewPolymer()
	g.addFragment(fragments[0], 0)

	for i := 1; i < len(fragments); i++ {
		tailID, ok := g.openFor(i-1, parser.RoleTail)
		if !ok {
			return nil, chemerr.New(chemerr.ValenceExceeded, "assembler", chemerr.CodeNoOpenPoint,
				"preceding fragment has no open attachment point").WithFragment(i)
		}

		f := fragments[i]
		head, ok := f.Head()
		if !ok {
			return nil, chemerr.New(chemerr.ValenceExceeded, "assembler", chemerr.CodeNoOpenPoint,
				"fragment declares no usable head point").WithFragment(i)
		}
		ids := g.addFragment(f, i)
		if _, err := g.Resolve(tailID, ids[head.Index], policy.order()); err != nil {
			return nil, tagFragment(err, i)
		}
	}

	if policy.Initiator != nil {
		if err := g.attachEndGroup(policy.Initiator, 0, parser.RoleHead, initiatorIndex, policy.order()); err != nil {
			return nil, err
		}
	}
	if policy.Terminator != nil {
		if err := g.attachEndGroup(policy.Terminator, len(fragments)-1, parser.RoleTail, terminatorIndex, policy.order()); err != nil {
			return nil, err
		}
	}

	if err := g.freeze(sequenceSignature(fragments, policy), len(fragments), policy.KeepOpenEnds); err != nil {
		return nil, err
	}
	return g, nil
}

// attachEndGroup bonds an end-group fragment to the chain's remaining open
// point on the given sequence position.
func (g *Polymer) attachEndGroup(end *parser.Fragment, chainFrag int, chainRole parser.Role, seqIndex int, order mol.BondOrder) error {
	chainID, ok := g.openFor(chainFrag, chainRole)
	if !ok {
		return chemerr.Newf(chemerr.ValenceExceeded, "assembler", chemerr.CodeNoOpenPoint,
			"chain has no open %s point for end group", chainRole).WithFragment(seqIndex)
	}
	pt, ok := end.Tail()
	if !ok {
		pt, ok = end.Head()
	}
	if !ok {
		return chemerr.New(chemerr.ValenceExceeded, "assembler", chemerr.CodeNoOpenPoint,
			"end group declares no attachment point").WithFragment(seqIndex)
	}
	ids := g.addFragment(end, seqIndex)
	if _, err := g.Resolve(chainID, ids[pt.Index], order); err != nil {
		return tagFragment(err, seqIndex)
	}
	return nil
}

// openFor picks the open point contributed by sequence position fragIdx,
// preferring the requested role, then untagged points, in declaration order.
func (g *Polymer) openFor(fragIdx int, role parser.Role) (int, bool) {
	for _, p := range g.open {
		if p.Fragment == fragIdx && p.Role == role {
			return p.ID, true
		}
	}
	for _, p := range g.open {
		if p.Fragment == fragIdx && p.Role == parser.RoleAny {
			return p.ID, true
		}
	}
	return 0, false
}

// sequenceSignature joins the fragment signatures in assembly order.
// Two builds over the same normalized sequence compare equal in O(n).
func sequenceSignature(fragments []*parser.Fragment, policy Policy) string {
	parts := make([]string, 0, len(fragments)+2)
	if policy.Initiator != nil {
		parts = append(parts, "^"+policy.Initiator.Signature())
	}
	for _, f := range fragments {
		parts = append(parts, f.Signature())
	}
	if policy.Terminator != nil {
		parts = append(parts, "$"+policy.Terminator.Signature())
	}
	return strings.Join(parts, "|")
}

// tagFragment annotates a build error with the fragment sequence index
func tagFragment(err error, index int) error {
	if be, ok := err.(*chemerr.BuildError); ok {
		return be.WithFragment(index)
	}
	return err
}
