package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sethks/ground-item-organizer/internal/host"
)

// MaxSections caps the number of configurable section slots.
const MaxSections = 5

// Organizer mirrors the plugin's configuration group: the master toggle, the
// display flags, and up to five section slots in priority order.
type Organizer struct {
	Enabled        bool          `yaml:"enabled"`
	ShowSeparators bool          `yaml:"show_separators"`
	QuickPickup    bool          `yaml:"quick_pickup"`
	Sections       []SectionSlot `yaml:"sections"`
}

// SectionSlot is one raw section definition. A slot with a blank name is
// disabled; its color and items are ignored.
type SectionSlot struct {
	Name  string `yaml:"name"`
	Color Color  `yaml:"color"`
	Items string `yaml:"items"`
}

// Color is an RGB value encoded as rrggbb hex in profiles, with an optional
// leading '#'.
type Color struct {
	host.RGB
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	rgb, err := ParseColor(raw)
	if err != nil {
		return err
	}
	c.RGB = rgb
	return nil
}

func (c Color) MarshalYAML() (interface{}, error) {
	return c.Hex(), nil
}

// ParseColor decodes "rrggbb" or "#rrggbb" into an RGB value.
func ParseColor(raw string) (host.RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(raw), "#")
	if len(hex) != 6 {
		return host.RGB{}, fmt.Errorf("color %q: want 6 hex digits", raw)
	}
	var rgb host.RGB
	if _, err := fmt.Sscanf(strings.ToLower(hex), "%02x%02x%02x", &rgb.R, &rgb.G, &rgb.B); err != nil {
		return host.RGB{}, fmt.Errorf("color %q: %w", raw, err)
	}
	return rgb, nil
}

// Default returns the built-in organizer settings used when no profile is
// supplied: organizer on, separators on, quick pickup off, and four example
// sections.
func Default() Organizer {
	return Organizer{
		Enabled:        true,
		ShowSeparators: true,
		Sections: []SectionSlot{
			{Name: "Food", Color: Color{host.RGB{R: 255, G: 170, B: 0}}, Items: "garden pie, shark, lobster"},
			{Name: "Runes", Color: Color{host.RGB{R: 170, G: 120, B: 255}}, Items: "fire rune, water rune, air rune, earth rune, law rune, nature rune, cosmic rune"},
			{Name: "Burst Nechryael", Color: Color{host.RGB{R: 255, G: 80, B: 80}}, Items: "Rune full helm, Rune boots, Rune chainbody"},
			{Name: "Construction", Color: Color{host.RGB{R: 100, G: 220, B: 100}}, Items: "Oak plank, Teak plank, hammer"},
		},
	}
}

// profileDoc separates "flag omitted" from "flag false" so that a sparse
// profile inherits the defaults.
type profileDoc struct {
	Enabled        *bool         `yaml:"enabled"`
	ShowSeparators *bool         `yaml:"show_separators"`
	QuickPickup    *bool         `yaml:"quick_pickup"`
	Sections       []SectionSlot `yaml:"sections"`
}

// LoadProfile reads the organizer group from a YAML profile on disk.
func LoadProfile(path string) (Organizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Organizer{}, fmt.Errorf("read profile: %w", err)
	}
	org, err := ParseProfile(data)
	if err != nil {
		return Organizer{}, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return org, nil
}

// ParseProfile decodes a YAML profile, applying built-in defaults for any
// omitted setting. Profiles listing more than MaxSections slots are rejected.
func ParseProfile(data []byte) (Organizer, error) {
	var doc profileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Organizer{}, err
	}
	if len(doc.Sections) > MaxSections {
		return Organizer{}, fmt.Errorf("%d sections configured; at most %d are supported", len(doc.Sections), MaxSections)
	}

	org := Default()
	if doc.Enabled != nil {
		org.Enabled = *doc.Enabled
	}
	if doc.ShowSeparators != nil {
		org.ShowSeparators = *doc.ShowSeparators
	}
	if doc.QuickPickup != nil {
		org.QuickPickup = *doc.QuickPickup
	}
	if doc.Sections != nil {
		org.Sections = doc.Sections
	}
	return org, nil
}
