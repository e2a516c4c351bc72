package monomers

import (
	"testing"

	"github.com/CAREERS-Cyberteam/MHP/chem/parser"
)

// TestBuiltinMonomersParse verifies every dictionary entry is valid notation
// with a head and a tail marker
func TestBuiltinMonomersParse(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			smi, ok := Monomer(name)
			if !ok {
				t.Fatalf("Names() listed %q but Monomer() misses it", name)
			}
			f, err := parser.Parse(smi)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", smi, err)
			}
			if len(f.Points) != 2 {
				t.Errorf("Expected 2 attachment points, got %d", len(f.Points))
			}
			if _, ok := f.Head(); !ok {
				t.Error("Expected a usable head point")
			}
			if _, ok := f.Tail(); !ok {
				t.Error("Expected a usable tail point")
			}
		})
	}
}

// TestBuiltinEndGroupsParse verifies every end group has exactly one marker
func TestBuiltinEndGroupsParse(t *testing.T) {
	for _, name := range EndGroupNames() {
		t.Run(name, func(t *testing.T) {
			smi, ok := EndGroup(name)
			if !ok {
				t.Fatalf("EndGroupNames() listed %q but EndGroup() misses it", name)
			}
			f, err := parser.Parse(smi)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", smi, err)
			}
			if len(f.Points) != 1 {
				t.Errorf("Expected 1 attachment point, got %d", len(f.Points))
			}
		})
	}
}

func TestLookup_Passthrough(t *testing.T) {
	if got := Lookup("Ethylene"); got != "[*:1]CC[*:2]" {
		t.Errorf("Expected dictionary hit, got %q", got)
	}
	raw := "[*:1]OC(C)[*:2]"
	if got := Lookup(raw); got != raw {
		t.Errorf("Expected raw notation passthrough, got %q", got)
	}
}

func TestHydrogenIsNotAFragment(t *testing.T) {
	// the Hydrogen key means a freeze-time cap, never a dictionary entry
	if _, ok := EndGroup(Hydrogen); ok {
		t.Error("Hydrogen must not resolve to an end-group fragment")
	}
}

func TestExpandSuperMonomer(t *testing.T) {
	tests := []struct {
		name  string
		terms []string
		want  []string
	}{
		{
			"plain",
			[]string{"Ethylene", "Styrene"},
			[]string{monomerDict["Ethylene"], monomerDict["Styrene"]},
		},
		{
			"coefficient",
			[]string{"2", "Ethylene", "Styrene"},
			[]string{monomerDict["Ethylene"], monomerDict["Ethylene"], monomerDict["Styrene"]},
		},
		{
			"raw_notation",
			[]string{"3", "[*:1]CO[*:2]"},
			[]string{"[*:1]CO[*:2]", "[*:1]CO[*:2]", "[*:1]CO[*:2]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, n, err := ExpandSuperMonomer(tt.terms)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if n != len(tt.want) {
				t.Errorf("Expected %d monomers per unit, got %d", len(tt.want), n)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %d terms, got %d", len(tt.want), len(got))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Term %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestExpandSuperMonomer_Errors(t *testing.T) {
	tests := []struct {
		name  string
		terms []string
	}{
		{"empty", nil},
		{"dangling_coefficient", []string{"Ethylene", "2"}},
		{"consecutive_coefficients", []string{"2", "3", "Ethylene"}},
		{"zero_coefficient", []string{"0", "Ethylene"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := ExpandSuperMonomer(tt.terms); err == nil {
				t.Errorf("ExpandSuperMonomer(%v) succeeded, expected an error", tt.terms)
			}
		})
	}
}
