package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/sethks/ground-item-organizer/internal/host"
)

const ellipsis = "…"

// View implements tea.Model. The menu is drawn the way the client renders
// it: the last entry of the host array at the top.
func (m *Model) View() string {
	lines := make([]string, 0, 16)
	lines = append(lines, m.renderLine(m.header(), styles.Header))

	entries := m.menu.Entries()
	if len(entries) == 0 {
		lines = append(lines, m.renderLine("(no entries)", styles.Info))
	}
	for i := len(entries) - 1; i >= 0; i-- {
		row := len(entries) - 1 - i
		lines = append(lines, m.entryLine(entries[i], row == m.cursor))
	}

	if m.filtering || m.filter.Value() != "" {
		lines = append(lines, m.filter.View())
	}
	if m.errMsg != "" {
		lines = append(lines, m.renderLine(m.errMsg, styles.Error))
	} else if m.infoMsg != "" {
		lines = append(lines, m.renderLine(m.infoMsg, styles.Info))
	}
	if m.showFooter {
		lines = append(lines, m.renderLine(footerHint, styles.Footer))
	}
	return strings.Join(lines, "\n")
}

const footerHint = "o organizer · s separators · p pile · / filter · g pickup · q quit"

func (m *Model) header() string {
	state := "off"
	if m.org.Enabled {
		state = "on"
	}
	return m.piles[m.pileIdx].name + " — organizer " + state
}

func (m *Model) entryLine(entry *host.Entry, selected bool) string {
	indicator := "  "
	indicatorStyle := styles.ItemIndicator
	textStyle := styles.Item
	if selected {
		indicator = "> "
		indicatorStyle = styles.SelectedItemIndicator
		textStyle = styles.SelectedItem
	}

	text := entry.Option
	if entry.Target != "" {
		text += " " + entry.Target
	}
	var rendered string
	if strings.Contains(text, "<") {
		// Markup carries its own colors; skip style wrapping like any raw
		// ANSI line.
		rendered = renderMarkup(text)
	} else {
		rendered = applyStyle(text, textStyle)
	}
	line := applyStyle(indicator, indicatorStyle) + rendered
	return m.truncateLine(line)
}

func (m *Model) renderLine(text string, style *lipgloss.Style) string {
	return m.truncateLine(applyStyle(text, style))
}

func (m *Model) truncateLine(line string) string {
	if m.width <= 0 {
		return line
	}
	return truncate.StringWithTail(line, uint(m.width), ellipsis)
}

func applyStyle(text string, style *lipgloss.Style) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}

// renderMarkup converts the client's <col=rrggbb> runs into terminal colors.
// Unknown tags are dropped, matching how the client hides them.
func renderMarkup(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	var b strings.Builder
	var current *lipgloss.Style
	flush := func(text string) {
		if text == "" {
			return
		}
		if current != nil {
			b.WriteString(current.Render(text))
			return
		}
		b.WriteString(text)
	}
	for i := 0; i < len(s); {
		if s[i] != '<' {
			next := strings.IndexByte(s[i:], '<')
			if next < 0 {
				flush(s[i:])
				break
			}
			flush(s[i : i+next])
			i += next
			continue
		}
		end := strings.IndexByte(s[i:], '>')
		if end < 0 {
			flush(s[i:])
			break
		}
		tag := s[i : i+end+1]
		switch {
		case strings.HasPrefix(tag, "<col="):
			hex := strings.TrimSuffix(strings.TrimPrefix(tag, "<col="), ">")
			style := lipgloss.NewStyle().Foreground(lipgloss.Color("#" + hex))
			current = &style
		case tag == host.CloseTag:
			current = nil
		case tag == "<lt>":
			flush("<")
		case tag == "<gt>":
			flush(">")
		}
		i += end + 1
	}
	return b.String()
}
