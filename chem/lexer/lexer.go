package lexer

import (
	"strconv"
	"strings"

	chemerr "github.com/CAREERS-Cyberteam/MHP/chem/errors"
)

// twoLetterOrganic lists organic-subset symbols written bare with two letters
var twoLetterOrganic = map[string]bool{
	"Cl": true,
	"Br": true,
}

// oneLetterOrganic lists organic-subset symbols written bare with one letter
var oneLetterOrganic = map[rune]bool{
	'B': true, 'C': true, 'N': true, 'O': true, 'P': true,
	'S': true, 'F': true, 'I': true,
}

// aromaticOrganic lists lowercase aromatic forms accepted outside brackets
var aromaticOrganic = map[rune]bool{
	'b': true, 'c': true, 'n': true, 'o': true, 'p': true, 's': true,
}

// Lexer tokenizes fragment line notation
type Lexer struct {
	source  []rune
	start   int
	current int
	tokens  []Token
	errors  []LexError
}

// New creates a new Lexer for the given fragment string
func New(source string) *Lexer {
	return &Lexer{
		source: []rune(source),
		tokens: make([]Token, 0, len(source)),
		errors: make([]LexError, 0),
	}
}

// ScanTokens scans all tokens from the source and returns them with any errors
func (l *Lexer) ScanTokens() ([]Token, []LexError) {
	for !l.isAtEnd() {
		l.start = l.current
		l.scanToken()
	}

	l.tokens = append(l.tokens, Token{
		Type:  TOKEN_EOF,
		Start: l.current,
		End:   l.current,
	})

	return l.tokens, l.errors
}

// scanToken scans a single token
func (l *Lexer) scanToken() {
	r := l.advance()

	switch r {
	case '(':
		l.addToken(TOKEN_LPAREN, nil)
	case ')':
		l.addToken(TOKEN_RPAREN, nil)
	case '.':
		l.addToken(TOKEN_DOT, nil)
	case '-', '=', '#', ':', '/', '\\':
		l.addToken(TOKEN_BOND, BondSpec{Symbol: r})
	case '[':
		l.scanBracketAtom()
	case '%':
		l.scanTwoDigitRing()
	case ' ', '\t':
		// Ignore whitespace
	default:
		if r >= '0' && r <= '9' {
			l.addToken(TOKEN_RING, int(r-'0'))
			return
		}
		if l.scanOrganicAtom(r) {
			return
		}
		l.addError(chemerr.CodeUnexpectedCharacter, "unexpected character: "+string(r))
	}
}

// scanOrganicAtom scans a bare organic-subset atom starting at r.
// Returns false when r cannot start one.
func (l *Lexer) scanOrganicAtom(r rune) bool {
	if aromaticOrganic[r] {
		l.addToken(TOKEN_ATOM, AtomSpec{
			Symbol:   strings.ToUpper(string(r)),
			Aromatic: true,
			HCount:   -1,
		})
		return true
	}
	if !oneLetterOrganic[r] {
		return false
	}
	// Cl and Br take a second letter
	two := string(r) + string(l.peek())
	if twoLetterOrganic[two] {
		l.advance()
		l.addToken(TOKEN_ATOM, AtomSpec{Symbol: two, HCount: -1})
		return true
	}
	l.addToken(TOKEN_ATOM, AtomSpec{Symbol: string(r), HCount: -1})
	return true
}

// scanBracketAtom scans a bracketed atom expression after the opening '['
func (l *Lexer) scanBracketAtom() {
	spec := AtomSpec{HCount: -1}

	// isotope
	if l.isDigit(l.peek()) {
		spec.Isotope = l.scanNumber()
	}

	// element symbol or wildcard
	r := l.peek()
	switch {
	case r == '*':
		l.advance()
		spec.Symbol = "*"
	case r >= 'A' && r <= 'Z':
		l.advance()
		sym := string(r)
		if l.peek() >= 'a' && l.peek() <= 'z' {
			sym += string(l.advance())
		}
		spec.Symbol = sym
	case aromaticOrganic[r]:
		l.advance()
		spec.Symbol = strings.ToUpper(string(r))
		spec.Aromatic = true
	default:
		l.addError(chemerr.CodeInvalidElement, "expected element symbol in bracket atom")
		l.recoverBracket()
		return
	}

	// chirality
	if l.peek() == '@' {
		l.advance()
		if l.peek() == '@' {
			l.advance()
			spec.Parity = 1
		} else {
			spec.Parity = 2
		}
	}

	// explicit hydrogen count
	if l.peek() == 'H' {
		l.advance()
		spec.HCount = 1
		if l.isDigit(l.peek()) {
			spec.HCount = l.scanNumber()
		}
	}

	// formal charge
	switch l.peek() {
	case '+':
		l.advance()
		spec.Charge = 1
		if l.isDigit(l.peek()) {
			spec.Charge = l.scanNumber()
		} else {
			for l.peek() == '+' {
				l.advance()
				spec.Charge++
			}
		}
	case '-':
		l.advance()
		spec.Charge = -1
		if l.isDigit(l.peek()) {
			spec.Charge = -l.scanNumber()
		} else {
			for l.peek() == '-' {
				l.advance()
				spec.Charge--
			}
		}
	}

	// atom-map class
	if l.peek() == ':' {
		l.advance()
		if !l.isDigit(l.peek()) {
			l.addError(chemerr.CodeInvalidAtomClass, "expected atom-map class after ':'")
			l.recoverBracket()
			return
		}
		spec.Class = l.scanNumber()
	}

	if l.peek() != ']' {
		l.addError(chemerr.CodeUnterminatedBracket, "unterminated bracket atom")
		l.recoverBracket()
		return
	}
	l.advance()
	l.addToken(TOKEN_BRACKET_ATOM, spec)
}

// scanTwoDigitRing scans a %nn ring-closure label after the '%'
func (l *Lexer) scanTwoDigitRing() {
	if !l.isDigit(l.peek()) || !l.isDigit(l.peekNext()) {
		l.addError(chemerr.CodeInvalidRingBond, "expected two digits after '%'")
		return
	}
	d1 := l.advance()
	d2 := l.advance()
	n, _ := strconv.Atoi(string([]rune{d1, d2}))
	l.addToken(TOKEN_RING, n)
}

// scanNumber consumes consecutive digits and returns their value
func (l *Lexer) scanNumber() int {
	n := 0
	for l.isDigit(l.peek()) {
		n = n*10 + int(l.advance()-'0')
	}
	return n
}

// recoverBracket skips to the closing ']' so later tokens still scan
func (l *Lexer) recoverBracket() {
	for !l.isAtEnd() && l.peek() != ']' {
		l.advance()
	}
	if !l.isAtEnd() {
		l.advance()
	}
}

// Helper methods

// isAtEnd checks if we've reached the end of the source
func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

// advance consumes and returns the current character
func (l *Lexer) advance() rune {
	if l.isAtEnd() {
		return 0
	}
	r := l.source[l.current]
	l.current++
	return r
}

// peek returns the current character without consuming it
func (l *Lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.current]
}

// peekNext returns the next character without consuming it
func (l *Lexer) peekNext() rune {
	if l.current+1 >= len(l.source) {
		return 0
	}
	return l.source[l.current+1]
}

// isDigit checks if a rune is a digit
func (l *Lexer) isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// addToken adds a token to the token list
func (l *Lexer) addToken(tokenType TokenType, literal interface{}) {
	l.tokens = append(l.tokens, Token{
		Type:    tokenType,
		Lexeme:  string(l.source[l.start:l.current]),
		Literal: literal,
		Start:   l.start,
		End:     l.current,
	})
}

// addError adds an error to the error list
func (l *Lexer) addError(code, message string) {
	l.errors = append(l.errors, LexError{
		Code:     code,
		Message:  message,
		Position: l.start,
	})
}
