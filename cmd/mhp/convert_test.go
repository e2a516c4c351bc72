package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/CAREERS-Cyberteam/MHP/chem/assemble"
	"github.com/CAREERS-Cyberteam/MHP/chem/export"
	"github.com/CAREERS-Cyberteam/MHP/chem/parser"
)

// writeMolFile exports a parsed structure to a molfile at the given path
func writeMolFile(t *testing.T, path, notation string) {
	t.Helper()
	f, err := parser.Parse(notation)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", notation, err)
	}
	g, err := assemble.Assemble([]*parser.Fragment{f}, assemble.Policy{})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	data, err := export.Export(g, export.FormatMol)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

// Input extensions match case-insensitively, so files named .MOL convert too
func TestConvert_UppercaseInputExtension(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "ethanol.MOL")
	out := filepath.Join(dir, "ethanol.smi")
	writeMolFile(t, in, "CCO")

	if err := convertCmd.RunE(convertCmd, []string{in, out}); err != nil {
		t.Fatalf("convert failed: %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "CCO\n" {
		t.Errorf("Expected CCO, got %q", string(got))
	}
}

func TestConvert_RejectsUnknownInputExtension(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "ethanol.xyz")
	out := filepath.Join(dir, "ethanol.smi")

	if err := convertCmd.RunE(convertCmd, []string{in, out}); err == nil {
		t.Fatal("Expected an error for a non-molfile input extension")
	}
}
