package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/sethks/ground-item-organizer/internal/config"
	"github.com/sethks/ground-item-organizer/internal/host"
	"github.com/sethks/ground-item-organizer/internal/logging/events"
	"github.com/sethks/ground-item-organizer/internal/plugin"
	"github.com/sethks/ground-item-organizer/internal/theme"
)

var styles = theme.Default()

type profileEventMsg struct {
	event config.Event
}

type profileClosedMsg struct{}

// Model drives the simulator: a canned loot pile rendered as the client
// would, with the organizer pass applied on every reopen.
type Model struct {
	plugin *plugin.Plugin
	client *simClient
	org    config.Organizer

	piles   []pile
	pileIdx int
	menu    *host.FakeMenu
	cursor  int

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	filter    textinput.Model
	filtering bool

	infoMsg string
	errMsg  string

	watcher *config.Watcher
}

// NewModel initialises the simulator with the first sample pile.
func NewModel(cfg config.Config, watcher *config.Watcher) *Model {
	client := newSimClient()
	p := plugin.New(client)
	p.Start(cfg.Organizer)

	filter := textinput.New()
	filter.Prompt = "/"
	filter.Placeholder = "filter items"
	if styles.FilterPrompt != nil {
		filter.PromptStyle = *styles.FilterPrompt
	}
	if styles.Filter != nil {
		filter.TextStyle = *styles.Filter
	}

	m := &Model{
		plugin:     p,
		client:     client,
		org:        cfg.Organizer,
		piles:      samplePiles(),
		showFooter: cfg.UI.ShowFooter,
		verbose:    cfg.UI.Verbose,
		filter:     filter,
		watcher:    watcher,
	}
	if cfg.UI.Width > 0 {
		m.width = cfg.UI.Width
		m.fixedWidth = true
	}
	if cfg.UI.Height > 0 {
		m.height = cfg.UI.Height
		m.fixedHeight = true
	}
	m.reopen()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.watcher != nil {
		return waitForProfileEvent(m.watcher)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !m.fixedWidth {
			m.width = msg.Width
		}
		if !m.fixedHeight {
			m.height = msg.Height
		}
	case profileEventMsg:
		m.handleProfileEvent(msg.event)
		if m.watcher != nil {
			return m, waitForProfileEvent(m.watcher)
		}
	case profileClosedMsg:
		m.watcher = nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.filtering {
		return m.handleFilterKey(msg)
	}
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return tea.Quit
	case "o":
		m.org.Enabled = !m.org.Enabled
		m.applyConfig()
	case "s":
		m.org.ShowSeparators = !m.org.ShowSeparators
		m.applyConfig()
	case "p", "tab":
		m.pileIdx = (m.pileIdx + 1) % len(m.piles)
		m.cursor = 0
		m.filter.SetValue("")
		m.reopen()
	case "/":
		m.filtering = true
		return m.filter.Focus()
	case "g":
		m.quickPickup()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.menu.Entries())-1 {
			m.cursor++
		}
	}
	return nil
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.filtering = false
		m.filter.SetValue("")
		m.filter.Blur()
		m.reopen()
		return nil
	case "enter":
		m.filtering = false
		m.filter.Blur()
		return nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.cursor = 0
	m.reopen()
	return cmd
}

// applyConfig feeds the edited settings back through the plugin's own
// configuration-change path, exactly as a host config event would.
func (m *Model) applyConfig() {
	m.plugin.OnConfigChanged(config.Group, m.org)
	m.reopen()
}

// reopen rebuilds the menu for the current pile and runs the organizer pass,
// mirroring a fresh right-click in the client.
func (m *Model) reopen() {
	current := m.piles[m.pileIdx]
	entries := m.filteredEntries(current.entries())
	m.client.setPile(entries)
	menu := host.NewFakeMenu(entries)
	m.plugin.OnMenuOpened(menu)
	m.menu = menu
	if n := len(menu.Entries()); m.cursor >= n && n > 0 {
		m.cursor = n - 1
	}
}

func (m *Model) filteredEntries(entries []*host.Entry) []*host.Entry {
	query := strings.TrimSpace(m.filter.Value())
	if query == "" {
		return entries
	}
	kept := make([]*host.Entry, 0, len(entries))
	for _, entry := range entries {
		if !host.IsGroundItemTake(entry) {
			kept = append(kept, entry)
			continue
		}
		if fuzzy.MatchNormalizedFold(query, host.RemoveTags(entry.Target)) {
			kept = append(kept, entry)
		}
	}
	return kept
}

func (m *Model) quickPickup() {
	current := m.piles[m.pileIdx]
	m.plugin.SetModifierHeld(true)
	m.plugin.OnTileClicked(current.sceneX, current.sceneY)
	m.plugin.SetModifierHeld(false)
	if item, ok := m.client.lastInvoked(); ok {
		name, err := m.client.ItemName(item.ItemID)
		if err != nil {
			name = fmt.Sprintf("item %d", item.ItemID)
		}
		m.infoMsg = "picked up " + name
		m.reopen()
		return
	}
	if m.org.QuickPickup {
		m.infoMsg = "nothing to pick up"
	} else {
		m.infoMsg = "quick pickup is disabled"
	}
}

func (m *Model) handleProfileEvent(evt config.Event) {
	if evt.Err != nil {
		events.Config.WatchError(evt.Err)
		m.errMsg = evt.Err.Error()
		return
	}
	m.errMsg = ""
	if m.verbose {
		m.infoMsg = "profile reloaded"
	}
	m.org = evt.Organizer
	m.plugin.OnConfigChanged(evt.Group, m.org)
	m.reopen()
}

func waitForProfileEvent(w *config.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return profileClosedMsg{}
		}
		return profileEventMsg{event: evt}
	}
}
