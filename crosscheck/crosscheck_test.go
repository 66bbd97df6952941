package crosscheck

import (
	"testing"

	"github.com/Protocol-Lattice/sdl/internal/fixture"
	"github.com/Protocol-Lattice/sdl/parser"
)

func TestCompare_SampleAgrees(t *testing.T) {
	doc, err := parser.ParseSchema(fixture.SDL)
	if err != nil {
		t.Fatalf("ParseSchema failed: %v", err)
	}
	mismatches, err := Compare("sample.graphql", fixture.SDL, doc)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	for _, m := range mismatches {
		t.Errorf("unexpected mismatch: %s", m)
	}
}

func TestCompare_ReportsDifferences(t *testing.T) {
	doc, err := parser.ParseSchema("type A { id: String } scalar Extra")
	if err != nil {
		t.Fatalf("ParseSchema failed: %v", err)
	}
	mismatches, err := Compare("a.graphql", "type A { id: ID } enum Only { X }", doc)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	want := []Mismatch{
		{Name: "A.id", Detail: "type String, reference has ID"},
		{Name: "Extra", Detail: "missing in reference"},
		{Name: "Only", Detail: "only in reference (ENUM)"},
	}
	if len(mismatches) != len(want) {
		t.Fatalf("expected %d mismatches, got %v", len(want), mismatches)
	}
	for i := range want {
		if mismatches[i] != want[i] {
			t.Errorf("mismatch %d: got %s, want %s", i, mismatches[i], want[i])
		}
	}
}

func TestCompare_ReferenceRejects(t *testing.T) {
	doc, err := parser.ParseSchema("type A { id: ID }")
	if err != nil {
		t.Fatalf("ParseSchema failed: %v", err)
	}
	if _, err := Compare("bad.graphql", "type A { id: }", doc); err == nil {
		t.Error("expected an error from the reference parser")
	}
}
