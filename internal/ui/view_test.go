package ui

import (
	"strings"
	"testing"
)

func TestViewShowsHeaderAndEntries(t *testing.T) {
	m := NewModel(testConfig(), nil)
	out := m.View()
	if !strings.Contains(out, "organizer on") {
		t.Fatalf("header missing from view:\n%s", out)
	}
	if !strings.Contains(out, "Walk here") {
		t.Fatalf("expected pass-through entry in view:\n%s", out)
	}
	if !strings.Contains(out, "-- Food --") {
		t.Fatalf("expected section label in view:\n%s", out)
	}
}

func TestViewTopmostLineIsFirst(t *testing.T) {
	m := NewModel(testConfig(), nil)
	lines := strings.Split(m.View(), "\n")
	if len(lines) < 2 {
		t.Fatalf("view too short:\n%s", m.View())
	}
	// Header first, then the topmost menu entry: the first section's label.
	if !strings.Contains(lines[1], "-- Food --") {
		t.Fatalf("expected the Food label on the top row, got %q", lines[1])
	}
}

func TestViewTruncatesToWidth(t *testing.T) {
	cfg := testConfig()
	cfg.UI.Width = 12
	m := NewModel(cfg, nil)
	for _, line := range strings.Split(m.View(), "\n") {
		if len([]rune(stripANSI(line))) > 13 {
			t.Fatalf("line exceeds width: %q", line)
		}
	}
}

func TestRenderMarkup(t *testing.T) {
	plain := renderMarkup("no tags")
	if plain != "no tags" {
		t.Fatalf("plain text altered: %q", plain)
	}
	colored := renderMarkup("<col=ffaa00>Shark</col> x3")
	if !strings.Contains(colored, "Shark") || !strings.Contains(colored, " x3") {
		t.Fatalf("markup text lost: %q", colored)
	}
	if strings.Contains(colored, "<col=") {
		t.Fatalf("markup tag leaked into output: %q", colored)
	}
	if got := renderMarkup("<lt>hi<gt>"); got != "<hi>" {
		t.Fatalf("escape handling broken: %q", got)
	}
}

// stripANSI removes CSI color sequences for width assertions.
func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && s[j] != 'm' {
				j++
			}
			i = j + 1
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}
