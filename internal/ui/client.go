package ui

import (
	"fmt"

	"github.com/sethks/ground-item-organizer/internal/host"
)

// simClient satisfies host.Client over the currently displayed pile. The
// simulator has no real client thread, so handoffs run inline.
type simClient struct {
	items   []host.TileItem
	names   map[int]string
	invoked *host.TileItem
}

func newSimClient() *simClient {
	return &simClient{names: make(map[int]string)}
}

// setPile repopulates the tile from the pile's take entries. Item names are
// kept in the lookup table rather than on the tile items so quick pickup
// exercises the name-resolution path.
func (c *simClient) setPile(entries []*host.Entry) {
	c.items = c.items[:0]
	c.names = make(map[int]string, len(entries))
	for _, entry := range entries {
		if !host.IsGroundItemTake(entry) {
			continue
		}
		c.items = append(c.items, host.TileItem{
			ItemID: entry.ItemID,
			SceneX: entry.Param0,
			SceneY: entry.Param1,
		})
		c.names[entry.ItemID] = host.RemoveTags(entry.Target)
	}
}

func (c *simClient) ItemsAt(sceneX, sceneY int) []host.TileItem {
	matching := make([]host.TileItem, 0, len(c.items))
	for _, item := range c.items {
		if item.SceneX == sceneX && item.SceneY == sceneY {
			matching = append(matching, item)
		}
	}
	return matching
}

func (c *simClient) ItemName(itemID int) (string, error) {
	name, ok := c.names[itemID]
	if !ok {
		return "", fmt.Errorf("unknown item %d", itemID)
	}
	return name, nil
}

func (c *simClient) InvokeTake(item host.TileItem) error {
	taken := item
	c.invoked = &taken
	return nil
}

func (c *simClient) InvokeOnClientThread(fn func()) bool {
	fn()
	return true
}

// lastInvoked returns and clears the most recent pickup.
func (c *simClient) lastInvoked() (host.TileItem, bool) {
	if c.invoked == nil {
		return host.TileItem{}, false
	}
	item := *c.invoked
	c.invoked = nil
	return item, true
}
