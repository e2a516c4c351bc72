package lexer

import (
	"testing"

	chemerr "github.com/CAREERS-Cyberteam/MHP/chem/errors"
)

// TestOrganicAtoms tests tokenization of bare organic-subset atoms
func TestOrganicAtoms(t *testing.T) {
	tests := []struct {
		input    string
		symbol   string
		aromatic bool
	}{
		{"C", "C", false},
		{"N", "N", false},
		{"O", "O", false},
		{"S", "S", false},
		{"P", "P", false},
		{"B", "B", false},
		{"F", "F", false},
		{"I", "I", false},
		{"Cl", "Cl", false},
		{"Br", "Br", false},
		{"c", "C", true},
		{"n", "N", true},
		{"o", "O", true},
		{"s", "S", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, errors := New(tt.input).ScanTokens()

			if len(errors) > 0 {
				t.Fatalf("Unexpected errors: %v", errors)
			}

			if len(tokens) != 2 { // atom + EOF
				t.Fatalf("Expected 2 tokens, got %d", len(tokens))
			}

			if tokens[0].Type != TOKEN_ATOM {
				t.Fatalf("Expected ATOM, got %v", tokens[0].Type)
			}

			spec := tokens[0].Literal.(AtomSpec)
			if spec.Symbol != tt.symbol {
				t.Errorf("Expected symbol %q, got %q", tt.symbol, spec.Symbol)
			}
			if spec.Aromatic != tt.aromatic {
				t.Errorf("Expected aromatic=%t, got %t", tt.aromatic, spec.Aromatic)
			}
			if spec.HCount != -1 {
				t.Errorf("Expected implicit HCount -1, got %d", spec.HCount)
			}
		})
	}
}

// TestBracketAtoms tests the bracket atom grammar: isotope, symbol,
// chirality, hydrogen count, charge and atom-map class
func TestBracketAtoms(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected AtomSpec
	}{
		{"wildcard", "[*]", AtomSpec{Symbol: "*", HCount: -1}},
		{"classed_wildcard", "[*:1]", AtomSpec{Symbol: "*", HCount: -1, Class: 1}},
		{"two_digit_class", "[*:12]", AtomSpec{Symbol: "*", HCount: -1, Class: 12}},
		{"isotope", "[13C]", AtomSpec{Symbol: "C", HCount: -1, Isotope: 13}},
		{"explicit_h", "[CH4]", AtomSpec{Symbol: "C", HCount: 4}},
		{"single_h", "[NH]", AtomSpec{Symbol: "N", HCount: 1}},
		{"cation", "[N+]", AtomSpec{Symbol: "N", HCount: -1, Charge: 1}},
		{"anion", "[O-]", AtomSpec{Symbol: "O", HCount: -1, Charge: -1}},
		{"numbered_charge", "[Fe+3]", AtomSpec{Symbol: "Fe", HCount: -1, Charge: 3}},
		{"stacked_charge", "[O--]", AtomSpec{Symbol: "O", HCount: -1, Charge: -2}},
		{"two_letter", "[Si]", AtomSpec{Symbol: "Si", HCount: -1}},
		{"aromatic_n_h", "[nH]", AtomSpec{Symbol: "N", Aromatic: true, HCount: 1}},
		{"clockwise", "[C@@H]", AtomSpec{Symbol: "C", HCount: 1, Parity: 1}},
		{"counterclockwise", "[C@H]", AtomSpec{Symbol: "C", HCount: 1, Parity: 2}},
		{"everything", "[13CH3+]", AtomSpec{Symbol: "C", HCount: 3, Charge: 1, Isotope: 13}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, errors := New(tt.input).ScanTokens()

			if len(errors) > 0 {
				t.Fatalf("Unexpected errors: %v", errors)
			}

			if len(tokens) != 2 {
				t.Fatalf("Expected 2 tokens, got %d", len(tokens))
			}

			if tokens[0].Type != TOKEN_BRACKET_ATOM {
				t.Fatalf("Expected BRACKET_ATOM, got %v", tokens[0].Type)
			}

			spec := tokens[0].Literal.(AtomSpec)
			if spec != tt.expected {
				t.Errorf("Expected %+v, got %+v", tt.expected, spec)
			}
		})
	}
}

// TestBonds tests bond symbol tokenization
func TestBonds(t *testing.T) {
	tests := []struct {
		input  string
		symbol rune
	}{
		{"C-C", '-'},
		{"C=C", '='},
		{"C#C", '#'},
		{"C:C", ':'},
		{"C/C", '/'},
		{`C\C`, '\\'},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, errors := New(tt.input).ScanTokens()

			if len(errors) > 0 {
				t.Fatalf("Unexpected errors: %v", errors)
			}

			if len(tokens) != 4 { // atom bond atom EOF
				t.Fatalf("Expected 4 tokens, got %d", len(tokens))
			}

			if tokens[1].Type != TOKEN_BOND {
				t.Fatalf("Expected BOND, got %v", tokens[1].Type)
			}

			spec := tokens[1].Literal.(BondSpec)
			if spec.Symbol != tt.symbol {
				t.Errorf("Expected bond %q, got %q", string(tt.symbol), string(spec.Symbol))
			}
		})
	}
}

// TestStructureTokens tests branches, rings and the component separator
func TestStructureTokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []TokenType
	}{
		{
			"branch",
			"CC(C)C",
			[]TokenType{TOKEN_ATOM, TOKEN_ATOM, TOKEN_LPAREN, TOKEN_ATOM, TOKEN_RPAREN, TOKEN_ATOM, TOKEN_EOF},
		},
		{
			"ring",
			"C1CCC1",
			[]TokenType{TOKEN_ATOM, TOKEN_RING, TOKEN_ATOM, TOKEN_ATOM, TOKEN_ATOM, TOKEN_RING, TOKEN_EOF},
		},
		{
			"dot",
			"C.C",
			[]TokenType{TOKEN_ATOM, TOKEN_DOT, TOKEN_ATOM, TOKEN_EOF},
		},
		{
			"marker_chain",
			"[*:1]CC[*:2]",
			[]TokenType{TOKEN_BRACKET_ATOM, TOKEN_ATOM, TOKEN_ATOM, TOKEN_BRACKET_ATOM, TOKEN_EOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, errors := New(tt.input).ScanTokens()

			if len(errors) > 0 {
				t.Fatalf("Unexpected errors: %v", errors)
			}

			if len(tokens) != len(tt.expected) {
				t.Fatalf("Expected %d tokens, got %d", len(tt.expected), len(tokens))
			}

			for i, want := range tt.expected {
				if tokens[i].Type != want {
					t.Errorf("Token %d: expected %v, got %v", i, want, tokens[i].Type)
				}
			}
		})
	}
}

// TestRingClosureLabels tests single-digit and %nn ring labels
func TestRingClosureLabels(t *testing.T) {
	tokens, errors := New("C%12CCC%12").ScanTokens()
	if len(errors) > 0 {
		t.Fatalf("Unexpected errors: %v", errors)
	}
	if tokens[1].Type != TOKEN_RING {
		t.Fatalf("Expected RING, got %v", tokens[1].Type)
	}
	if tokens[1].Literal.(int) != 12 {
		t.Errorf("Expected ring label 12, got %d", tokens[1].Literal.(int))
	}
}

// TestTokenPositions tests that tokens carry their rune offsets
func TestTokenPositions(t *testing.T) {
	tokens, errors := New("C[*:1]").ScanTokens()
	if len(errors) > 0 {
		t.Fatalf("Unexpected errors: %v", errors)
	}
	if tokens[0].Start != 0 || tokens[0].End != 1 {
		t.Errorf("Expected atom at [0,1), got [%d,%d)", tokens[0].Start, tokens[0].End)
	}
	if tokens[1].Start != 1 || tokens[1].End != 6 {
		t.Errorf("Expected bracket atom at [1,6), got [%d,%d)", tokens[1].Start, tokens[1].End)
	}
}

// TestWhitespaceIgnored tests that spaces and tabs are skipped
func TestWhitespaceIgnored(t *testing.T) {
	tokens, errors := New(" C C ").ScanTokens()
	if len(errors) > 0 {
		t.Fatalf("Unexpected errors: %v", errors)
	}
	if len(tokens) != 3 {
		t.Fatalf("Expected 3 tokens, got %d", len(tokens))
	}
}

// TestLexErrors tests malformed input reporting
func TestLexErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		code     string
		position int
	}{
		{"unexpected_character", "C$C", chemerr.CodeUnexpectedCharacter, 1},
		{"unknown_letter", "X", chemerr.CodeUnexpectedCharacter, 0},
		{"unterminated_bracket", "[C", chemerr.CodeUnterminatedBracket, 0},
		{"empty_bracket", "[]", chemerr.CodeInvalidElement, 0},
		{"bad_ring_label", "C%1C", chemerr.CodeInvalidRingBond, 1},
		{"class_without_digits", "[C:]", chemerr.CodeInvalidAtomClass, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errors := New(tt.input).ScanTokens()

			if len(errors) == 0 {
				t.Fatal("Expected at least one error, got none")
			}
			if errors[0].Code != tt.code {
				t.Errorf("Expected code %s, got %s", tt.code, errors[0].Code)
			}
			if errors[0].Position != tt.position {
				t.Errorf("Expected error at %d, got %d", tt.position, errors[0].Position)
			}
		})
	}
}

// TestErrorRecovery tests that a bad bracket atom does not poison the rest
// of the input
func TestErrorRecovery(t *testing.T) {
	tokens, errors := New("[?]CC").ScanTokens()
	if len(errors) == 0 {
		t.Fatal("Expected an error for the malformed bracket")
	}
	atoms := 0
	for _, tok := range tokens {
		if tok.Type == TOKEN_ATOM {
			atoms++
		}
	}
	if atoms != 2 {
		t.Errorf("Expected 2 atoms after recovery, got %d", atoms)
	}
}
