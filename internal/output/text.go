package output

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/uelog/uelog/internal/domain"
)

// TextWriter writes entries and results as styled text for humans
type TextWriter struct {
	w     io.Writer
	color bool
}

// NewTextWriter creates a text writer. With color off, styled output is
// rendered plain (stdout is not a TTY, or --quiet pipelines).
func NewTextWriter(w io.Writer, color bool) *TextWriter {
	return &TextWriter{w: w, color: color}
}

// WriteEntry outputs one parsed log line
func (t *TextWriter) WriteEntry(entry *domain.LogEntry) error {
	lineNum := fmt.Sprintf("%7d", entry.LineNumber)

	if !t.color {
		_, err := fmt.Fprintf(t.w, "%s  %s\n", lineNum, entry.Raw)
		return err
	}

	line := Styles.LineNumber.Render(lineNum) + "  "

	if entry.IsContinuation {
		line += Styles.Unknown.Render(entry.Raw)
		_, err := io.WriteString(t.w, line+"\n")
		return err
	}

	if entry.Timestamp != "" {
		line += Styles.Timestamp.Render("["+entry.Timestamp+"]") + " "
	}
	if entry.Frame != nil {
		line += Styles.Frame.Render(fmt.Sprintf("[%3d]", *entry.Frame)) + " "
	}
	if entry.Category != "" {
		line += Styles.Category.Render(entry.Category) + " "
	}
	line += LevelIndicator(string(entry.Level)) + " "

	msg := entry.Message
	if msg == "" {
		msg = entry.Raw
	}
	switch entry.Level {
	case domain.LogLevelError, domain.LogLevelWarning:
		line += LevelStyle(string(entry.Level)).Render(msg)
	default:
		line += DecorateTokens(msg)
	}

	_, err := io.WriteString(t.w, line+"\n")
	return err
}

// WriteMatch outputs one search result, highlighting the matched range
// when the full line is available
func (t *TextWriter) WriteMatch(result *domain.SearchResult, line string) error {
	lineNum := fmt.Sprintf("%7d", result.LineNumber)

	if line == "" {
		if !t.color {
			_, err := fmt.Fprintf(t.w, "%s  %s [%d-%d]\n", lineNum, result.MatchedText, result.Start, result.End)
			return err
		}
		out := Styles.LineNumber.Render(lineNum) + "  " + Styles.Match.Render(result.MatchedText) +
			" " + Styles.Label.Render(fmt.Sprintf("[%d-%d]", result.Start, result.End))
		_, err := io.WriteString(t.w, out+"\n")
		return err
	}

	if !t.color {
		_, err := fmt.Fprintf(t.w, "%s  %s\n", lineNum, line)
		return err
	}

	runes := []rune(line)
	start, end := result.Start, result.End
	if start > len(runes) {
		start = len(runes)
	}
	if end > len(runes) {
		end = len(runes)
	}
	highlighted := string(runes[:start]) + Styles.Match.Render(string(runes[start:end])) + string(runes[end:])

	_, err := io.WriteString(t.w, Styles.LineNumber.Render(lineNum)+"  "+highlighted+"\n")
	return err
}

// WriteIndex outputs an index summary with category and level tables
func (t *TextWriter) WriteIndex(idx *domain.FileIndex) error {
	header := "Index of " + idx.FilePath
	if t.color {
		header = Styles.Header.Render(header)
	}
	fmt.Fprintln(t.w, header)
	fmt.Fprintf(t.w, "Lines: %d  Size: %d bytes  Checkpoints: %d (every %d lines)\n\n",
		idx.TotalLines, idx.FileSize, len(idx.LineOffsets), idx.IndexInterval)

	if len(idx.LevelCounts) > 0 {
		levels := tablewriter.NewTable(t.w)
		levels.Header("Level", "Count")
		for _, level := range []domain.LogLevel{
			domain.LogLevelError,
			domain.LogLevelWarning,
			domain.LogLevelDisplay,
			domain.LogLevelVerbose,
			domain.LogLevelVeryVerbose,
			domain.LogLevelUnknown,
		} {
			if count, ok := idx.LevelCounts[level]; ok {
				levels.Append(string(level), strconv.Itoa(count))
			}
		}
		if err := levels.Render(); err != nil {
			return err
		}
		fmt.Fprintln(t.w)
	}

	if len(idx.Categories) > 0 {
		names := make([]string, 0, len(idx.Categories))
		for name := range idx.Categories {
			names = append(names, name)
		}
		// Busiest categories first
		sort.Slice(names, func(i, j int) bool {
			if idx.Categories[names[i]] != idx.Categories[names[j]] {
				return idx.Categories[names[i]] > idx.Categories[names[j]]
			}
			return names[i] < names[j]
		})

		categories := tablewriter.NewTable(t.w)
		categories.Header("Category", "Count")
		for _, name := range names {
			categories.Append(name, strconv.Itoa(idx.Categories[name]))
		}
		if err := categories.Render(); err != nil {
			return err
		}
	}

	return nil
}

// WriteError outputs a styled coded error
func (t *TextWriter) WriteError(code, message string) error {
	if !t.color {
		_, err := fmt.Fprintf(t.w, "Error [%s]: %s\n", code, message)
		return err
	}
	line := Styles.Danger.Render("Error") + " " + Styles.Warning.Render("["+code+"]") + ": " + message + "\n"
	_, err := io.WriteString(t.w, line)
	return err
}
