package plugin

import (
	"github.com/sethks/ground-item-organizer/internal/host"
	"github.com/sethks/ground-item-organizer/internal/logging/events"
)

// OnTileClicked implements quick pickup: with the feature on and the modifier
// key held, re-invoke the take action for the topmost organized item on the
// clicked tile. Scene lookups must run on the client thread, so the work is
// handed off through the client; when the handoff is unavailable the gesture
// is skipped silently. Any host failure degrades to "no match".
func (p *Plugin) OnTileClicked(sceneX, sceneY int) {
	state := p.state.Load()
	if state == nil || !state.quick {
		events.Pickup.Skipped(events.PickupReasonDisabled)
		return
	}
	if !p.modifierHeld.Load() {
		events.Pickup.Skipped(events.PickupReasonNoModifier)
		return
	}
	if p.client == nil {
		events.Pickup.Skipped(events.PickupReasonNoInvoker)
		return
	}

	registry := state.registry
	ok := p.client.InvokeOnClientThread(func() {
		for _, item := range p.client.ItemsAt(sceneX, sceneY) {
			name := item.Name
			if name == "" {
				looked, err := p.client.ItemName(item.ItemID)
				if err != nil {
					events.Pickup.LookupFailed(item.ItemID, err)
					continue
				}
				name = looked
			}
			if _, _, matched := registry.Match(host.RemoveTags(name)); !matched {
				continue
			}
			if err := p.client.InvokeTake(item); err != nil {
				events.Pickup.LookupFailed(item.ItemID, err)
				continue
			}
			events.Pickup.Invoked(item.ItemID, sceneX, sceneY)
			return
		}
		events.Pickup.Skipped(events.PickupReasonNoMatch)
	})
	if !ok {
		events.Pickup.Skipped(events.PickupReasonNoInvoker)
	}
}
