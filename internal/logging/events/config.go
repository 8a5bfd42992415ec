package events

import "github.com/sethks/ground-item-organizer/internal/logging"

type ConfigTracer struct{}

var Config = ConfigTracer{}

func (ConfigTracer) Rebuilt(sections int) {
	logging.Trace("config.rebuilt", map[string]interface{}{"sections": sections})
}

func (ConfigTracer) Ignored(group string) {
	logging.Trace("config.ignored", map[string]interface{}{"group": group})
}

func (ConfigTracer) WatchError(err error) {
	if err == nil {
		return
	}
	logging.Trace("config.watch_error", map[string]interface{}{"error": err.Error()})
}
