package host

// FakeMenu is an in-memory Menu used by the simulator and by tests.
type FakeMenu struct {
	entries  []*Entry
	SetCalls int
}

func NewFakeMenu(entries []*Entry) *FakeMenu {
	return &FakeMenu{entries: entries}
}

func (m *FakeMenu) Entries() []*Entry {
	return m.entries
}

func (m *FakeMenu) SetEntries(entries []*Entry) {
	m.entries = entries
	m.SetCalls++
}
