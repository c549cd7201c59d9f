package scroll

import "strings"

// Offset is the first visible line of content taller than the screen.
type Offset int

// MaxOffset is the largest offset that still fills a screen of height lines.
func MaxOffset(content string, height int) int {
	lines := strings.Count(content, "\n") + 1
	if height <= 0 || lines <= height {
		return 0
	}
	return lines - height
}

func (o *Offset) Up() {
	if *o > 0 {
		*o--
	}
}

// Down moves one line further, stopping at the last full screen of content.
func (o *Offset) Down(content string, height int) {
	*o = Offset(min(int(*o)+1, MaxOffset(content, height)))
}

// Clip returns at most height lines of content starting at offset. The offset
// is clamped so the last page stays full.
func Clip(content string, offset Offset, height int) string {
	if height <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	if len(lines) <= height {
		return content
	}
	start := min(max(int(offset), 0), len(lines)-height)
	return strings.Join(lines[start:start+height], "\n")
}
