package output

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/uelog/uelog/internal/logparse"
)

type tokenSpan struct {
	start, end int
	style      lipgloss.Style
}

// DecorateTokens styles embedded Windows paths, UUIDs and numbers in a
// message. Candidates are collected on the unstyled text first so earlier
// replacements cannot shift or corrupt later matches; overlaps resolve
// path, then UUID, then number.
func DecorateTokens(msg string) string {
	var spans []tokenSpan
	add := func(locs [][]int, style lipgloss.Style) {
		for _, loc := range locs {
			spans = append(spans, tokenSpan{start: loc[0], end: loc[1], style: style})
		}
	}
	add(logparse.HighlightPath.FindAllStringIndex(msg, -1), Styles.Path)
	add(logparse.HighlightUUID.FindAllStringIndex(msg, -1), Styles.UUID)
	add(logparse.HighlightNumber.FindAllStringIndex(msg, -1), Styles.Number)
	if len(spans) == 0 {
		return msg
	}

	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].start < spans[j].start
	})

	var b strings.Builder
	pos := 0
	for _, s := range spans {
		if s.start < pos {
			continue // inside a higher-precedence span
		}
		b.WriteString(msg[pos:s.start])
		b.WriteString(s.style.Render(msg[s.start:s.end]))
		pos = s.end
	}
	b.WriteString(msg[pos:])
	return b.String()
}
