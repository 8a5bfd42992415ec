package organizer

import (
	"strings"

	"github.com/sethks/ground-item-organizer/internal/host"
)

// MaxSections caps how many categories a registry holds.
const MaxSections = 5

// Slot is one raw section definition in configured order. A slot whose
// trimmed name is blank is disabled and contributes nothing.
type Slot struct {
	Name  string
	Color host.RGB
	Items string
}

// Registry holds the enabled sections in slot order. Order is semantic: it is
// both matching priority (first match wins) and final on-screen stacking
// order. A registry is never mutated after construction; configuration
// changes always produce a fresh one.
type Registry struct {
	sections []Section
}

// BuildRegistry interprets the configured slots in order, skipping disabled
// ones. Building twice from the same slots yields value-equal registries.
func BuildRegistry(slots []Slot) *Registry {
	sections := make([]Section, 0, MaxSections)
	for _, slot := range slots {
		if len(sections) == MaxSections {
			break
		}
		if strings.TrimSpace(slot.Name) == "" {
			continue
		}
		sections = append(sections, NewSection(slot.Name, slot.Color, slot.Items))
	}
	return &Registry{sections: sections}
}

// Sections returns the enabled sections in priority order.
func (r *Registry) Sections() []Section {
	return r.sections
}

// Len returns the number of enabled sections.
func (r *Registry) Len() int {
	return len(r.sections)
}

// Empty reports whether no sections are enabled.
func (r *Registry) Empty() bool {
	return len(r.sections) == 0
}

// Match scans sections in registry order and returns the first whose keywords
// match the supplied clean item name, along with its index. Registry order is
// the tie-break when an item would satisfy several sections.
func (r *Registry) Match(itemName string) (Section, int, bool) {
	if itemName == "" {
		return Section{}, -1, false
	}
	for i, section := range r.sections {
		if section.Matches(itemName) {
			return section, i, true
		}
	}
	return Section{}, -1, false
}
