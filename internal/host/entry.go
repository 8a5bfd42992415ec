package host

import "strings"

// Action identifies what a menu entry does when activated. Values mirror the
// client's opcode groups; only the ones the organizer needs to tell apart are
// modeled here.
type Action int

const (
	ActionCancel Action = iota
	ActionWalk
	ActionGroundItemFirst
	ActionGroundItemSecond
	ActionGroundItemThird
	ActionGroundItemFourth
	ActionGroundItemFifth
	ActionNPCFirst
	ActionObjectFirst
	ActionWidget
	ActionExamine
)

// IsGroundItem reports whether the action operates on an item lying on the
// ground. The client exposes five option slots per ground item.
func (a Action) IsGroundItem() bool {
	switch a {
	case ActionGroundItemFirst, ActionGroundItemSecond, ActionGroundItemThird,
		ActionGroundItemFourth, ActionGroundItemFifth:
		return true
	}
	return false
}

// Entry is one row of the client's right-click menu. The client renders the
// last entry of the menu slice topmost. Identifier, Param0, Param1 and ItemID
// are opaque to the organizer and must survive any reordering unchanged; the
// client needs them to re-invoke the action later.
type Entry struct {
	Type       Action
	Option     string
	Target     string
	Identifier int
	Param0     int // scene x for ground items
	Param1     int // scene y for ground items
	ItemID     int
}

// IsGroundItemTake reports whether the entry picks an item up off the ground.
// Only ground-item actions whose visible option reads "Take" qualify;
// everything else passes through the organizer untouched.
func IsGroundItemTake(e *Entry) bool {
	if e == nil || !e.Type.IsGroundItem() {
		return false
	}
	return strings.EqualFold(e.Option, "Take")
}

// NewSeparator returns a non-interactive label entry. Cancel entries are
// resolved client-side and do nothing when clicked.
func NewSeparator(text string) *Entry {
	return &Entry{Type: ActionCancel, Option: text, Target: ""}
}

// Menu is the slice of the client's menu API the organizer touches.
type Menu interface {
	Entries() []*Entry
	SetEntries([]*Entry)
}

// TileItem describes one item stack observed on a tile, as returned by the
// client's scene lookup.
type TileItem struct {
	ItemID int
	Name   string
	SceneX int
	SceneY int
}

// Client is the side channel used by quick pickup. InvokeOnClientThread
// reports false when the handoff thread is unavailable; callers must treat
// that as a silent skip.
type Client interface {
	ItemsAt(sceneX, sceneY int) []TileItem
	ItemName(itemID int) (string, error)
	InvokeTake(item TileItem) error
	InvokeOnClientThread(fn func()) bool
}
