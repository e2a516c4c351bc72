package lexer

import "fmt"

// TokenType represents the type of token in fragment line notation
type TokenType int

const (
	// Special tokens
	TOKEN_EOF TokenType = iota
	TOKEN_ERROR

	// Atoms
	TOKEN_ATOM         // organic-subset atom written bare: C, N, Cl, c, n ...
	TOKEN_BRACKET_ATOM // bracketed atom: [13CH3+], [*:1], [nH] ...

	// Bonds
	TOKEN_BOND // - = # : / \

	// Structure
	TOKEN_LPAREN // (
	TOKEN_RPAREN // )
	TOKEN_RING   // ring-closure digit or %nn
	TOKEN_DOT    // component separator
)

// String returns the string representation of the token type
func (t TokenType) String() string {
	switch t {
	case TOKEN_EOF:
		return "EOF"
	case TOKEN_ERROR:
		return "ERROR"
	case TOKEN_ATOM:
		return "ATOM"
	case TOKEN_BRACKET_ATOM:
		return "BRACKET_ATOM"
	case TOKEN_BOND:
		return "BOND"
	case TOKEN_LPAREN:
		return "LPAREN"
	case TOKEN_RPAREN:
		return "RPAREN"
	case TOKEN_RING:
		return "RING"
	case TOKEN_DOT:
		return "DOT"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// AtomSpec is the literal payload of an atom token
type AtomSpec struct {
	Symbol   string // element symbol, "*" for an attachment wildcard
	Aromatic bool
	Isotope  int
	Charge   int
	HCount   int // -1 when not written explicitly
	Class    int // atom-map class, 0 when absent
	Parity   int // 0 none, 1 clockwise (@@), 2 counterclockwise (@)
}

// BondSpec is the literal payload of a bond token
type BondSpec struct {
	Symbol rune // '-', '=', '#', ':', '/', '\\'
}

// Token is a single lexical unit of a fragment string
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal interface{}
	Start   int // rune offset of the token in the input
	End     int
}

// LexError is an error produced during tokenization, tagged with the error
// code of its failure mode
type LexError struct {
	Code     string
	Message  string
	Position int
}

// Error implements the error interface
func (e LexError) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Position, e.Message)
}
