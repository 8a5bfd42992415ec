package organizer

import "github.com/sethks/ground-item-organizer/internal/host"

// Options control a single classification pass.
type Options struct {
	Enabled        bool
	ShowSeparators bool
}

// Result is the outcome of one pass. When Changed is false the host menu must
// be left exactly as it was given; Entries is nil in that case. When Changed
// is true, Entries is the full replacement ordering: the original entries
// relocated (matched ones with rewritten display text) plus any synthetic
// separator labels.
type Result struct {
	Changed bool
	Entries []*host.Entry
	Matched int
}

var unchanged = Result{}

// Classify partitions the menu entries, groups take actions under the first
// section whose keywords match their stripped target text, and produces the
// replacement ordering. Entries are appended bottom-up because the client
// renders the last entry topmost: pass-through entries first, then each
// non-empty section in reverse registry order so the first-configured section
// lands at the top, each optionally capped with a separator label.
//
// Matched entries have their target rewritten in place to the stripped name
// wrapped in the section color. Anything unmatched, empty-targeted or
// non-classifiable passes through in its original relative order, untouched.
func Classify(entries []*host.Entry, registry *Registry, opts Options) Result {
	if !opts.Enabled || registry == nil || registry.Empty() || len(entries) == 0 {
		return unchanged
	}

	passthrough := make([]*host.Entry, 0, len(entries))
	buckets := make([][]*host.Entry, registry.Len())
	matched := 0

	for _, entry := range entries {
		section, idx, ok := classifyEntry(entry, registry)
		if !ok {
			passthrough = append(passthrough, entry)
			continue
		}
		entry.Target = host.Colorize(section.Color, host.RemoveTags(entry.Target))
		buckets[idx] = append(buckets[idx], entry)
		matched++
	}

	// Nothing matched: the caller must see its original menu untouched.
	if matched == 0 {
		return unchanged
	}

	out := make([]*host.Entry, 0, len(entries)+registry.Len())
	out = append(out, passthrough...)

	sections := registry.Sections()
	for i := len(sections) - 1; i >= 0; i-- {
		bucket := buckets[i]
		if len(bucket) == 0 {
			continue
		}
		out = append(out, bucket...)
		if opts.ShowSeparators {
			out = append(out, host.NewSeparator(sections[i].SeparatorText()))
		}
	}

	return Result{Changed: true, Entries: out, Matched: matched}
}

// classifyEntry resolves which section, if any, claims the entry. Entries
// that are not take actions, or have no target text, are never claimed.
func classifyEntry(entry *host.Entry, registry *Registry) (Section, int, bool) {
	if !host.IsGroundItemTake(entry) {
		return Section{}, -1, false
	}
	if entry.Target == "" {
		return Section{}, -1, false
	}
	return registry.Match(host.RemoveTags(entry.Target))
}
