package organizer

import (
	"strings"

	"github.com/sethks/ground-item-organizer/internal/host"
)

// Section is one user-defined category. Constructed fresh on every registry
// rebuild and immutable afterwards.
type Section struct {
	Name     string
	Color    host.RGB
	Keywords []string
}

// NewSection builds a section from a raw slot definition. The items string is
// split on commas; fragments are trimmed, lowercased and dropped when empty.
// Order is preserved and duplicates are kept as-is.
func NewSection(name string, color host.RGB, items string) Section {
	s := Section{Name: strings.TrimSpace(name), Color: color}
	if strings.TrimSpace(items) == "" {
		return s
	}
	for _, fragment := range strings.Split(items, ",") {
		keyword := strings.ToLower(strings.TrimSpace(fragment))
		if keyword == "" {
			continue
		}
		s.Keywords = append(s.Keywords, keyword)
	}
	return s
}

// Matches reports whether any keyword appears anywhere in the item name.
// Matching is case-insensitive substring containment, so "shark" matches
// "Raw shark" and "sharkskin" alike.
func (s Section) Matches(itemName string) bool {
	if itemName == "" {
		return false
	}
	lower := strings.ToLower(itemName)
	for _, keyword := range s.Keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// ColorTag returns the opening markup for this section's color.
func (s Section) ColorTag() string {
	return host.ColorTag(s.Color)
}

// SeparatorText returns the color-wrapped label rendered above the section's
// entries, e.g. "-- Food --".
func (s Section) SeparatorText() string {
	return host.Colorize(s.Color, "-- "+s.Name+" --")
}
