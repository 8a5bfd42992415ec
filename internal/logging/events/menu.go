package events

import "github.com/sethks/ground-item-organizer/internal/logging"

type MenuTracer struct{}

var Menu = MenuTracer{}

func (MenuTracer) Opened(entries int) {
	logging.Trace("menu.opened", map[string]interface{}{"entries": entries})
}

func (MenuTracer) Organized(entries, matched, total int) {
	logging.Trace("menu.organized", map[string]interface{}{
		"entries": entries,
		"matched": matched,
		"total":   total,
	})
}

func (MenuTracer) Unchanged(entries int) {
	logging.Trace("menu.unchanged", map[string]interface{}{"entries": entries})
}
