package domain

import "strings"

// LogLevel represents an Unreal Engine verbosity level
type LogLevel string

const (
	LogLevelError       LogLevel = "Error"
	LogLevelWarning     LogLevel = "Warning"
	LogLevelDisplay     LogLevel = "Display"
	LogLevelVerbose     LogLevel = "Verbose"
	LogLevelVeryVerbose LogLevel = "VeryVerbose"
	LogLevelUnknown     LogLevel = "Unknown"
)

// Priority returns the priority of a log level (higher = more severe)
func (l LogLevel) Priority() int {
	switch l {
	case LogLevelVeryVerbose:
		return 0
	case LogLevelVerbose:
		return 1
	case LogLevelDisplay:
		return 2
	case LogLevelWarning:
		return 3
	case LogLevelError:
		return 4
	default:
		return 2
	}
}

// ParseLogLevel converts verbosity text to a LogLevel. Unrecognized text
// maps to Unknown, never an error.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(s) {
	case "error":
		return LogLevelError
	case "warning":
		return LogLevelWarning
	case "display":
		return LogLevelDisplay
	case "verbose":
		return LogLevelVerbose
	case "veryverbose":
		return LogLevelVeryVerbose
	default:
		return LogLevelUnknown
	}
}

// LogEntry represents one parsed log line
type LogEntry struct {
	LineNumber     int      `json:"line_number"` // 1-based
	Raw            string   `json:"raw"`
	Timestamp      string   `json:"timestamp,omitempty"`
	Frame          *int     `json:"frame,omitempty"`
	Category       string   `json:"category,omitempty"`
	Level          LogLevel `json:"level"`
	Message        string   `json:"message,omitempty"`
	IsContinuation bool     `json:"is_continuation,omitempty"`
}

// NewRawEntry creates an entry for a line that matched no known format
func NewRawEntry(lineNumber int, content string) LogEntry {
	return LogEntry{
		LineNumber: lineNumber,
		Raw:        content,
		Level:      LogLevelUnknown,
	}
}

// FilterOptions narrows entries by category and level
type FilterOptions struct {
	Categories        []string   `json:"categories,omitempty"`
	Levels            []LogLevel `json:"levels,omitempty"`
	ExcludeCategories []string   `json:"exclude_categories,omitempty"`
}

// Match reports whether an entry passes the filter. Empty include lists
// pass everything; exclusions win over inclusions.
func (f *FilterOptions) Match(entry *LogEntry) bool {
	for _, c := range f.ExcludeCategories {
		if entry.Category == c {
			return false
		}
	}
	if len(f.Categories) > 0 {
		found := false
		for _, c := range f.Categories {
			if entry.Category == c {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if len(f.Levels) > 0 {
		found := false
		for _, l := range f.Levels {
			if entry.Level == l {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
