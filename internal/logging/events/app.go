package events

import "github.com/sethks/ground-item-organizer/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Stop() {
	logging.Trace("app.stop", nil)
}
