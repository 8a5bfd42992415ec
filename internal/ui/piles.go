package ui

import "github.com/sethks/ground-item-organizer/internal/host"

// pile is a canned loot scenario. Entries are listed in host array order:
// first entry renders at the bottom of the menu, last entry topmost.
type pile struct {
	name    string
	sceneX  int
	sceneY  int
	entries func() []*host.Entry
}

func takeEntry(name string, itemID, x, y int) *host.Entry {
	return &host.Entry{
		Type:       host.ActionGroundItemThird,
		Option:     "Take",
		Target:     name,
		Identifier: itemID,
		ItemID:     itemID,
		Param0:     x,
		Param1:     y,
	}
}

func baseEntries(x, y int) []*host.Entry {
	return []*host.Entry{
		{Type: host.ActionCancel, Option: "Cancel"},
		{Type: host.ActionWalk, Option: "Walk here", Param0: x, Param1: y},
	}
}

func samplePiles() []pile {
	return []pile{
		{
			name:   "Fishing spot",
			sceneX: 52, sceneY: 49,
			entries: func() []*host.Entry {
				entries := baseEntries(52, 49)
				entries = append(entries,
					takeEntry("Burnt fish", 343, 52, 49),
					takeEntry("Raw lobster", 377, 52, 49),
					takeEntry("Raw shark", 383, 52, 49),
					takeEntry("Shark", 385, 52, 49),
				)
				return entries
			},
		},
		{
			name:   "Slayer task",
			sceneX: 33, sceneY: 61,
			entries: func() []*host.Entry {
				entries := baseEntries(33, 61)
				entries = append(entries,
					takeEntry("Bones", 526, 33, 61),
					takeEntry("Prune", 1503, 33, 61),
					takeEntry("Rune full helm", 1163, 33, 61),
					takeEntry("Law rune", 563, 33, 61),
					takeEntry("Fire rune", 554, 33, 61),
				)
				return entries
			},
		},
		{
			name:   "Workshop",
			sceneX: 12, sceneY: 20,
			entries: func() []*host.Entry {
				entries := baseEntries(12, 20)
				entries = append(entries,
					takeEntry("Hammer", 2347, 12, 20),
					takeEntry("Oak plank", 8778, 12, 20),
					takeEntry("Steel bar", 2353, 12, 20),
				)
				return entries
			},
		},
		{
			name:   "Empty clearing",
			sceneX: 5, sceneY: 5,
			entries: func() []*host.Entry {
				return baseEntries(5, 5)
			},
		},
	}
}
