package parser

import (
	chemerr "github.com/CAREERS-Cyberteam/MHP/chem/errors"
	"github.com/CAREERS-Cyberteam/MHP/chem/lexer"
	"github.com/CAREERS-Cyberteam/MHP/chem/mol"
)

// Parser transforms a token stream into a Fragment
type Parser struct {
	tokens   []lexer.Token
	current  int
	m        *mol.Molecule
	explicit []bool // bracket atoms keep their written hydrogen count
	prev     int    // index of the atom a new bond attaches from, -1 at start
	pending  *lexer.BondSpec
	branches []int
	rings    map[int]ringOpen
	dummies  []int // '*' atom indices in declaration order
}

type ringOpen struct {
	atom int
	bond *lexer.BondSpec
	pos  int
}

// Parse converts fragment line notation into a Fragment. It is a pure
// function: no state survives the call. The returned error is always a
// *errors.BuildError carrying the offending position or atom.
func Parse(source string) (*Fragment, error) {
	tokens, lexErrors := lexer.New(source).ScanTokens()
	if len(lexErrors) > 0 {
		first := lexErrors[0]
		return nil, chemerr.New(chemerr.MalformedFragment, "lexer",
			first.Code, first.Message).WithPosition(first.Position)
	}

	p := &Parser{
		tokens: tokens,
		m:      &mol.Molecule{},
		prev:   -1,
		rings:  make(map[int]ringOpen),
	}
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.finish(source)
}

// parse consumes the token stream, growing the working molecule
func (p *Parser) parse() error {
	for !p.isAtEnd() {
		tok := p.advance()
		switch tok.Type {
		case lexer.TOKEN_ATOM, lexer.TOKEN_BRACKET_ATOM:
			spec := tok.Literal.(lexer.AtomSpec)
			if err := p.placeAtom(spec, tok); err != nil {
				return err
			}
		case lexer.TOKEN_BOND:
			if p.prev < 0 {
				return p.errorf(chemerr.MalformedFragment, chemerr.CodeLeadingBond, tok,
					"bond symbol %q before any atom", tok.Lexeme)
			}
			if p.pending != nil {
				return p.errorf(chemerr.MalformedFragment, chemerr.CodeDanglingBond, tok,
					"consecutive bond symbols")
			}
			spec := tok.Literal.(lexer.BondSpec)
			p.pending = &spec
		case lexer.TOKEN_LPAREN:
			if p.prev < 0 {
				return p.errorf(chemerr.MalformedFragment, chemerr.CodeUnmatchedParen, tok,
					"branch before any atom")
			}
			p.branches = append(p.branches, p.prev)
		case lexer.TOKEN_RPAREN:
			if len(p.branches) == 0 {
				return p.errorf(chemerr.MalformedFragment, chemerr.CodeUnmatchedParen, tok,
					"unmatched ')'")
			}
			if p.pending != nil {
				return p.errorf(chemerr.MalformedFragment, chemerr.CodeDanglingBond, tok,
					"bond symbol before ')'")
			}
			p.prev = p.branches[len(p.branches)-1]
			p.branches = p.branches[:len(p.branches)-1]
		case lexer.TOKEN_RING:
			if err := p.closeOrOpenRing(tok); err != nil {
				return err
			}
		case lexer.TOKEN_DOT:
			return p.errorf(chemerr.MalformedFragment, chemerr.CodeDisconnected, tok,
				"fragment must be a single connected component")
		}
	}

	if p.pending != nil {
		return p.errorAt(chemerr.MalformedFragment, chemerr.CodeDanglingBond,
			len(p.tokens), "dangling bond at end of input")
	}
	if len(p.branches) > 0 {
		return p.errorAt(chemerr.MalformedFragment, chemerr.CodeUnmatchedParen,
			len(p.tokens), "unclosed '('")
	}
	for digit := range p.rings {
		return chemerr.Newf(chemerr.MalformedFragment, "parser", chemerr.CodeUnclosedRing,
			"ring bond %d never closed", digit)
	}
	if len(p.m.Atoms) == 0 {
		return chemerr.New(chemerr.MalformedFragment, "parser", chemerr.CodeEmptyFragment,
			"empty fragment")
	}
	return nil
}

// placeAtom appends an atom and bonds it to the previous one
func (p *Parser) placeAtom(spec lexer.AtomSpec, tok lexer.Token) error {
	a := mol.Atom{
		Element:  spec.Symbol,
		Charge:   spec.Charge,
		Isotope:  spec.Isotope,
		Aromatic: spec.Aromatic,
		Class:    spec.Class,
	}
	switch spec.Parity {
	case 1:
		a.Parity = mol.ParityClockwise
	case 2:
		a.Parity = mol.ParityCounterclock
	}
	bracket := tok.Type == lexer.TOKEN_BRACKET_ATOM
	if bracket && spec.HCount > 0 {
		a.Hydrogens = spec.HCount
	}

	idx := p.m.AddAtom(a)
	p.explicit = append(p.explicit, bracket)

	if p.prev >= 0 {
		order, stereo := p.takeBond(p.prev, idx)
		if err := p.m.AddBond(mol.Bond{From: p.prev, To: idx, Order: order, Stereo: stereo}); err != nil {
			return p.errorf(chemerr.MalformedFragment, chemerr.CodeDuplicateRingBond, tok, "%s", err)
		}
	}
	p.prev = idx
	if spec.Symbol == "*" {
		p.dummies = append(p.dummies, idx)
	}
	return nil
}

// closeOrOpenRing handles a ring-closure digit on the previous atom
func (p *Parser) closeOrOpenRing(tok lexer.Token) error {
	if p.prev < 0 {
		return p.errorf(chemerr.MalformedFragment, chemerr.CodeInvalidRingBond, tok,
			"ring closure before any atom")
	}
	digit := tok.Literal.(int)
	open, exists := p.rings[digit]
	if !exists {
		p.rings[digit] = ringOpen{atom: p.prev, bond: p.pending, pos: tok.Start}
		p.pending = nil
		return nil
	}
	delete(p.rings, digit)
	if open.atom == p.prev {
		return p.errorf(chemerr.MalformedFragment, chemerr.CodeInvalidRingBond, tok,
			"ring bond %d closes on its own atom", digit)
	}

	// Bond symbols may appear on either side of the closure; they must agree.
	closing := p.pending
	p.pending = nil
	if open.bond != nil && closing != nil && open.bond.Symbol != closing.Symbol {
		return p.errorf(chemerr.MalformedFragment, chemerr.CodeBondOrderConflict, tok,
			"ring bond %d declared %q and %q", digit, string(open.bond.Symbol), string(closing.Symbol))
	}
	use := closing
	if use == nil {
		use = open.bond
	}
	saved := p.pending
	p.pending = use
	order, stereo := p.takeBond(open.atom, p.prev)
	p.pending = saved

	if err := p.m.AddBond(mol.Bond{From: open.atom, To: p.prev, Order: order, Stereo: stereo}); err != nil {
		return p.errorf(chemerr.MalformedFragment, chemerr.CodeDuplicateRingBond, tok, "%s", err)
	}
	return nil
}

// takeBond resolves the pending bond symbol (if any) into an order/stereo
// pair for a bond between atoms a and b, and clears it.
func (p *Parser) takeBond(a, b int) (mol.BondOrder, mol.BondStereo) {
	spec := p.pending
	p.pending = nil
	if spec == nil {
		if p.m.Atoms[a].Aromatic && p.m.Atoms[b].Aromatic {
			return mol.Aromatic, mol.StereoNone
		}
		return mol.Single, mol.StereoNone
	}
	switch spec.Symbol {
	case '=':
		return mol.Double, mol.StereoNone
	case '#':
		return mol.Triple, mol.StereoNone
	case ':':
		return mol.Aromatic, mol.StereoNone
	case '/':
		return mol.Single, mol.StereoUp
	case '\\':
		return mol.Single, mol.StereoDown
	default:
		return mol.Single, mol.StereoNone
	}
}

// finish validates the working molecule, strips the attachment markers and
// produces the immutable Fragment.
func (p *Parser) finish(source string) (*Fragment, error) {
	isDummy := make([]bool, len(p.m.Atoms))
	for _, d := range p.dummies {
		isDummy[d] = true
	}

	// Every marker must reserve capacity on exactly one real atom.
	hostOf := make(map[int]int, len(p.dummies))
	dummyAdjacent := make([]bool, len(p.m.Atoms))
	for _, d := range p.dummies {
		neighbors := p.m.Neighbors(d)
		if len(neighbors) == 0 {
			return nil, chemerr.New(chemerr.InvalidAttachment, "parser", chemerr.CodeMarkerNoHost,
				"attachment marker is not bonded to any atom").WithAtom(d)
		}
		if len(neighbors) > 1 {
			return nil, chemerr.Newf(chemerr.InvalidAttachment, "parser", chemerr.CodeMarkerNoHost,
				"attachment marker bonds %d atoms, expected one", len(neighbors)).WithAtom(d)
		}
		if isDummy[neighbors[0]] {
			return nil, chemerr.New(chemerr.InvalidAttachment, "parser", chemerr.CodeMarkerNoHost,
				"attachment marker bonded to another marker").WithAtom(d)
		}
		hostOf[d] = neighbors[0]
		dummyAdjacent[neighbors[0]] = true
	}

	// Valence: bare organic-subset atoms may not exceed their standard
	// capacity. Bracketed atoms are taken as written (hypervalent sulfur
	// and friends stay legal). A violation caused by the marker's reserved
	// slot is an attachment error, not a notation error.
	for i := range p.m.Atoms {
		if isDummy[i] || p.explicit[i] {
			continue
		}
		if !mol.KnownElement(p.m.Atoms[i].Element) {
			continue
		}
		if p.m.BondOrderSum(i) > mol.MaxValence(p.m.Atoms[i]) {
			if dummyAdjacent[i] {
				return nil, chemerr.Newf(chemerr.InvalidAttachment, "parser", chemerr.CodeMarkerCapacity,
					"attachment marker exceeds remaining valence of %s atom", p.m.Atoms[i].Element).WithAtom(i)
			}
			return nil, chemerr.Newf(chemerr.MalformedFragment, "parser", chemerr.CodeOverValence,
				"%s atom exceeds maximum valence", p.m.Atoms[i].Element).WithAtom(i)
		}
	}

	p.m.FillHydrogens(p.explicit)
	signature := p.m.SMILES()

	// Strip markers into attachment points. Bond sums above already include
	// the marker bond, so the host atom's hydrogens leave the reserved slot
	// free.
	remap := make([]int, len(p.m.Atoms))
	stripped := &mol.Molecule{}
	for i, a := range p.m.Atoms {
		if isDummy[i] {
			remap[i] = -1
			continue
		}
		remap[i] = stripped.AddAtom(a)
	}
	for _, b := range p.m.Bonds {
		if isDummy[b.From] || isDummy[b.To] {
			continue
		}
		if err := stripped.AddBond(mol.Bond{
			From: remap[b.From], To: remap[b.To], Order: b.Order, Stereo: b.Stereo,
		}); err != nil {
			return nil, chemerr.Newf(chemerr.MalformedFragment, "parser", chemerr.CodeDuplicateRingBond, "%s", err)
		}
	}

	var points []AttachmentPoint
	for n, d := range p.dummies {
		bond, _ := p.m.BondBetween(d, hostOf[d])
		points = append(points, AttachmentPoint{
			Atom:     remap[hostOf[d]],
			Capacity: bond.Order.Valence(),
			Role:     roleForClass(p.m.Atoms[d].Class, len(p.dummies)),
			Class:    p.m.Atoms[d].Class,
			Index:    n,
		})
	}

	if !stripped.Connected() {
		return nil, chemerr.New(chemerr.MalformedFragment, "parser", chemerr.CodeDisconnected,
			"fragment graph is not connected")
	}

	return &Fragment{
		Source:    source,
		Mol:       stripped,
		Points:    points,
		signature: signature,
	}, nil
}

// roleForClass maps a marker's atom-map class to a role. A fragment with a
// single point may serve either end of a link, so class tags only
// disambiguate fragments with two or more points.
func roleForClass(class, total int) Role {
	if total < 2 {
		return RoleAny
	}
	switch class {
	case 1:
		return RoleHead
	case 2:
		return RoleTail
	default:
		return RoleAny
	}
}

// Token stream helpers

func (p *Parser) isAtEnd() bool {
	return p.current >= len(p.tokens) || p.tokens[p.current].Type == lexer.TOKEN_EOF
}

func (p *Parser) advance() lexer.Token {
	tok := p.tokens[p.current]
	p.current++
	return tok
}

func (p *Parser) errorf(kind chemerr.Kind, code string, tok lexer.Token, format string, args ...interface{}) error {
	return chemerr.Newf(kind, "parser", code, format, args...).WithPosition(tok.Start)
}

func (p *Parser) errorAt(kind chemerr.Kind, code string, pos int, message string) error {
	return chemerr.New(kind, "parser", code, message).WithPosition(pos)
}
