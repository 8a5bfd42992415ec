package host

import (
	"fmt"
	"strings"
)

// RGB is a display color without alpha.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// Hex returns the color as a lowercase rrggbb string.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// CloseTag terminates a color run in client markup.
const CloseTag = "</col>"

// ColorTag returns the opening markup that colors subsequent text.
func ColorTag(c RGB) string {
	return "<col=" + c.Hex() + ">"
}

// Colorize wraps text in the markup for the given color.
func Colorize(c RGB, text string) string {
	return ColorTag(c) + text + CloseTag
}

// RemoveTags strips client markup from a display string so it can be compared
// against plain item names. The escapes <lt> and <gt> decode to literal angle
// brackets; every other tag is dropped. An unterminated tag is kept verbatim
// rather than swallowing the rest of the string.
func RemoveTags(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '<' {
			b.WriteByte(s[i])
			i++
			continue
		}
		end := strings.IndexByte(s[i:], '>')
		if end < 0 {
			b.WriteString(s[i:])
			break
		}
		switch s[i : i+end+1] {
		case "<lt>":
			b.WriteByte('<')
		case "<gt>":
			b.WriteByte('>')
		}
		i += end + 1
	}
	return b.String()
}
