package organizer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sethks/ground-item-organizer/internal/host"
)

func testSlots() []Slot {
	return []Slot{
		{Name: "Food", Color: host.RGB{R: 255, G: 170}, Items: "shark, lobster"},
		{Name: "   ", Color: host.RGB{R: 1}, Items: "ignored"},
		{Name: "Runes", Color: host.RGB{R: 170, G: 120, B: 255}, Items: "fire rune, law rune"},
		{Name: "", Items: ""},
		{Name: "Herbs", Color: host.RGB{G: 200}, Items: "ranarr"},
	}
}

func TestBuildRegistrySkipsBlankSlots(t *testing.T) {
	r := BuildRegistry(testSlots())
	if r.Len() != 3 {
		t.Fatalf("expected 3 sections, got %d", r.Len())
	}
	names := []string{"Food", "Runes", "Herbs"}
	for i, section := range r.Sections() {
		if section.Name != names[i] {
			t.Fatalf("section %d = %q, want %q", i, section.Name, names[i])
		}
	}
}

func TestBuildRegistryIdempotent(t *testing.T) {
	a := BuildRegistry(testSlots())
	b := BuildRegistry(testSlots())
	if diff := cmp.Diff(a.Sections(), b.Sections()); diff != "" {
		t.Fatalf("identical input produced different registries (-a +b):\n%s", diff)
	}
}

func TestBuildRegistryCapsAtMaxSections(t *testing.T) {
	slots := make([]Slot, 0, MaxSections+3)
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		slots = append(slots, Slot{Name: name, Items: name})
	}
	r := BuildRegistry(slots)
	if r.Len() != MaxSections {
		t.Fatalf("expected %d sections, got %d", MaxSections, r.Len())
	}
}

func TestBuildRegistryEmpty(t *testing.T) {
	if !BuildRegistry(nil).Empty() {
		t.Fatalf("nil slots should build an empty registry")
	}
	if !BuildRegistry([]Slot{{Name: "  "}}).Empty() {
		t.Fatalf("all-blank slots should build an empty registry")
	}
}

func TestRegistryMatchFirstSectionWins(t *testing.T) {
	r := BuildRegistry([]Slot{
		{Name: "A", Items: "rune"},
		{Name: "B", Items: "fire rune"},
	})
	section, idx, ok := r.Match("Fire rune")
	if !ok {
		t.Fatalf("expected a match")
	}
	if idx != 0 || section.Name != "A" {
		t.Fatalf("expected first-configured section to claim the item, got %q at %d", section.Name, idx)
	}
}

func TestRegistryMatchMisses(t *testing.T) {
	r := BuildRegistry([]Slot{{Name: "Food", Items: "shark"}})
	if _, _, ok := r.Match("Bones"); ok {
		t.Fatalf("unexpected match for unrelated name")
	}
	if _, _, ok := r.Match(""); ok {
		t.Fatalf("empty name must never match")
	}
}
