package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sethks/ground-item-organizer/internal/config"
	"github.com/sethks/ground-item-organizer/internal/host"
)

var errTest = errors.New("watch failed")

func testConfig() config.Config {
	return config.Config{Organizer: config.Default()}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func hasSeparator(entries []*host.Entry) bool {
	for _, e := range entries {
		if e.Type == host.ActionCancel && strings.Contains(e.Option, "--") {
			return true
		}
	}
	return false
}

func TestNewModelOrganizesInitialPile(t *testing.T) {
	m := NewModel(testConfig(), nil)
	entries := m.menu.Entries()
	if len(entries) == 0 {
		t.Fatalf("expected entries in the initial menu")
	}
	top := entries[len(entries)-1]
	if !strings.Contains(top.Option, "-- Food --") {
		t.Fatalf("expected Food separator topmost, got %q", top.Option)
	}
}

func TestToggleOrganizerRestoresPlainMenu(t *testing.T) {
	m := NewModel(testConfig(), nil)
	m.Update(keyMsg("o"))
	if hasSeparator(m.menu.Entries()) {
		t.Fatalf("disabled organizer should leave the raw pile menu")
	}
	m.Update(keyMsg("o"))
	if !hasSeparator(m.menu.Entries()) {
		t.Fatalf("re-enabling should organize again")
	}
}

func TestToggleSeparators(t *testing.T) {
	m := NewModel(testConfig(), nil)
	m.Update(keyMsg("s"))
	if hasSeparator(m.menu.Entries()) {
		t.Fatalf("separators should be suppressed after toggle")
	}
}

func TestPileCycling(t *testing.T) {
	m := NewModel(testConfig(), nil)
	first := m.piles[m.pileIdx].name
	m.Update(keyMsg("p"))
	if m.piles[m.pileIdx].name == first {
		t.Fatalf("expected a different pile after cycling")
	}
}

func TestFilterKeepsPassthroughEntries(t *testing.T) {
	m := NewModel(testConfig(), nil)
	m.filter.SetValue("shark")
	m.reopen()
	var walkSeen bool
	for _, e := range m.menu.Entries() {
		if e.Type == host.ActionWalk {
			walkSeen = true
		}
		if host.IsGroundItemTake(e) && !strings.Contains(strings.ToLower(host.RemoveTags(e.Target)), "shark") {
			t.Fatalf("filter leaked entry %q", e.Target)
		}
	}
	if !walkSeen {
		t.Fatalf("pass-through entries must survive filtering")
	}
}

func TestQuickPickupMessage(t *testing.T) {
	cfg := testConfig()
	cfg.Organizer.QuickPickup = true
	m := NewModel(cfg, nil)
	m.Update(keyMsg("g"))
	if !strings.HasPrefix(m.infoMsg, "picked up ") {
		t.Fatalf("expected a pickup message, got %q", m.infoMsg)
	}
}

func TestQuickPickupDisabledMessage(t *testing.T) {
	m := NewModel(testConfig(), nil)
	m.Update(keyMsg("g"))
	if m.infoMsg != "quick pickup is disabled" {
		t.Fatalf("unexpected message %q", m.infoMsg)
	}
}

func TestProfileEventRebuildsSections(t *testing.T) {
	m := NewModel(testConfig(), nil)
	changed := config.Default()
	changed.Sections = []config.SectionSlot{
		{Name: "Bones", Color: config.Color{RGB: host.RGB{R: 1}}, Items: "bones"},
	}
	m.handleProfileEvent(config.Event{Group: config.Group, Organizer: changed})
	r := m.plugin.Registry()
	if r == nil || r.Len() != 1 || r.Sections()[0].Name != "Bones" {
		t.Fatalf("profile event did not rebuild the registry")
	}
}

func TestProfileEventErrorIsSurfaced(t *testing.T) {
	m := NewModel(testConfig(), nil)
	m.handleProfileEvent(config.Event{Group: config.Group, Err: errTest})
	if m.errMsg == "" {
		t.Fatalf("expected error message after watch failure")
	}
}
