package plugin

import (
	"sync/atomic"

	"github.com/sethks/ground-item-organizer/internal/config"
	"github.com/sethks/ground-item-organizer/internal/host"
	"github.com/sethks/ground-item-organizer/internal/logging/events"
	"github.com/sethks/ground-item-organizer/internal/organizer"
)

// Plugin owns every piece of state the organizer keeps between callbacks: the
// current settings snapshot and the modifier-key flag. It is created on
// start-up, fed host callbacks, and cleared on Stop.
//
// Menu callbacks arrive on the client thread; the profile watcher may call
// OnConfigChanged from its own goroutine. The snapshot is therefore published
// wholesale through an atomic pointer so a classification pass never observes
// a partially rebuilt registry.
type Plugin struct {
	client host.Client

	state        atomic.Pointer[snapshot]
	modifierHeld atomic.Bool
}

// snapshot bundles the settings derived from one configuration generation.
type snapshot struct {
	opts     organizer.Options
	quick    bool
	registry *organizer.Registry
}

// New creates a stopped plugin. client may be nil; quick pickup is then
// unavailable and silently skips.
func New(client host.Client) *Plugin {
	return &Plugin{client: client}
}

// Start builds the initial snapshot from configuration.
func (p *Plugin) Start(cfg config.Organizer) {
	p.apply(cfg)
}

// Stop drops all cached state. Callbacks arriving afterwards are no-ops.
func (p *Plugin) Stop() {
	p.state.Store(nil)
	p.modifierHeld.Store(false)
	events.App.Stop()
}

// OnConfigChanged rebuilds the snapshot when the changed group is ours.
func (p *Plugin) OnConfigChanged(group string, cfg config.Organizer) {
	if group != config.Group {
		events.Config.Ignored(group)
		return
	}
	if p.state.Load() == nil {
		return
	}
	p.apply(cfg)
}

func (p *Plugin) apply(cfg config.Organizer) {
	slots := make([]organizer.Slot, 0, len(cfg.Sections))
	for _, section := range cfg.Sections {
		slots = append(slots, organizer.Slot{
			Name:  section.Name,
			Color: section.Color.RGB,
			Items: section.Items,
		})
	}
	registry := organizer.BuildRegistry(slots)
	p.state.Store(&snapshot{
		opts: organizer.Options{
			Enabled:        cfg.Enabled,
			ShowSeparators: cfg.ShowSeparators,
		},
		quick:    cfg.QuickPickup,
		registry: registry,
	})
	events.Config.Rebuilt(registry.Len())
}

// OnMenuOpened runs the classification pass and applies the replacement
// ordering. The host menu is only touched when the pass actually changed
// something.
func (p *Plugin) OnMenuOpened(menu host.Menu) {
	state := p.state.Load()
	if state == nil || menu == nil {
		return
	}
	entries := menu.Entries()
	events.Menu.Opened(len(entries))

	res := organizer.Classify(entries, state.registry, state.opts)
	if !res.Changed {
		events.Menu.Unchanged(len(entries))
		return
	}
	menu.SetEntries(res.Entries)
	events.Menu.Organized(len(entries), res.Matched, len(res.Entries))
}

// SetModifierHeld records whether the pickup modifier key is currently down.
func (p *Plugin) SetModifierHeld(held bool) {
	p.modifierHeld.Store(held)
}

// ModifierHeld reports the recorded modifier-key state.
func (p *Plugin) ModifierHeld() bool {
	return p.modifierHeld.Load()
}

// Registry returns the current section registry, or nil when stopped.
func (p *Plugin) Registry() *organizer.Registry {
	state := p.state.Load()
	if state == nil {
		return nil
	}
	return state.registry
}
