// Package logparse classifies raw Unreal Engine log lines into structured
// entries. Classification is total: every input maps to some entry.
package logparse

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/uelog/uelog/internal/domain"
)

const headerPrefix = "Log file open, "

// ParseLine classifies a single raw line. Resolution order: continuation,
// standard format, simple format, file-open header, raw fallback.
func ParseLine(lineNumber int, content string) domain.LogEntry {
	trimmed := strings.TrimRightFunc(content, unicode.IsSpace)

	if isContinuation(trimmed) {
		return domain.LogEntry{
			LineNumber:     lineNumber,
			Raw:            trimmed,
			Level:          domain.LogLevelUnknown,
			Message:        trimmed,
			IsContinuation: true,
		}
	}

	if caps := patternStandard.FindStringSubmatch(trimmed); caps != nil {
		entry := domain.LogEntry{
			LineNumber: lineNumber,
			Raw:        trimmed,
			Timestamp:  caps[1],
			Category:   caps[3],
			Level:      domain.ParseLogLevel(caps[4]),
			Message:    caps[5],
		}
		if frame, err := strconv.Atoi(caps[2]); err == nil {
			entry.Frame = &frame
		}
		return entry
	}

	if caps := patternSimple.FindStringSubmatch(trimmed); caps != nil {
		return domain.LogEntry{
			LineNumber: lineNumber,
			Raw:        trimmed,
			Category:   caps[1],
			Level:      domain.ParseLogLevel(caps[2]),
			Message:    caps[3],
		}
	}

	if patternHeader.MatchString(trimmed) {
		return domain.LogEntry{
			LineNumber: lineNumber,
			Raw:        trimmed,
			Timestamp:  strings.TrimPrefix(trimmed, headerPrefix),
			Category:   "LogFile",
			Level:      domain.LogLevelDisplay,
			Message:    "Log file opened",
		}
	}

	return domain.NewRawEntry(lineNumber, trimmed)
}

// isContinuation reports whether a line belongs to the previous entry's
// multi-line message
func isContinuation(line string) bool {
	return line == "" || strings.HasPrefix(line, " ") || strings.HasPrefix(line, ">")
}

// ExtractLevel finds a verbosity token preceded by a colon anywhere in the
// line, without running the full classifier
func ExtractLevel(line string) (domain.LogLevel, bool) {
	caps := extractLevel.FindStringSubmatch(line)
	if caps == nil {
		return domain.LogLevelUnknown, false
	}
	return domain.ParseLogLevel(caps[1]), true
}

// ExtractCategory finds the leading category of a line, with or without a
// timestamp/frame prefix, without running the full classifier
func ExtractCategory(line string) (string, bool) {
	caps := extractCategory.FindStringSubmatch(line)
	if caps == nil {
		return "", false
	}
	if caps[1] != "" {
		return caps[1], true
	}
	if caps[2] != "" {
		return caps[2], true
	}
	return "", false
}

// ParseLines classifies consecutive lines starting at startLine
func ParseLines(startLine int, lines []string) []domain.LogEntry {
	entries := make([]domain.LogEntry, 0, len(lines))
	for i, content := range lines {
		entries = append(entries, ParseLine(startLine+i, content))
	}
	return entries
}
