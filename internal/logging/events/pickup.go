package events

import "github.com/sethks/ground-item-organizer/internal/logging"

type PickupTracer struct{}

type pickupReason string

const (
	PickupReasonDisabled   pickupReason = "disabled"
	PickupReasonNoModifier pickupReason = "no_modifier"
	PickupReasonNoInvoker  pickupReason = "no_invoker"
	PickupReasonNoMatch    pickupReason = "no_match"
)

var Pickup = PickupTracer{}

func (PickupTracer) Invoked(itemID, sceneX, sceneY int) {
	logging.Trace("pickup.invoked", map[string]interface{}{
		"itemId": itemID,
		"sceneX": sceneX,
		"sceneY": sceneY,
	})
}

func (PickupTracer) Skipped(reason pickupReason) {
	logging.Trace("pickup.skipped", map[string]interface{}{"reason": string(reason)})
}

func (PickupTracer) LookupFailed(itemID int, err error) {
	payload := map[string]interface{}{"itemId": itemID}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("pickup.lookup_failed", payload)
}
