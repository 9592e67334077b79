package output

import (
	"io"

	"github.com/bytedance/sonic"

	"github.com/uelog/uelog/internal/domain"
)

// SchemaVersion is bumped when the NDJSON output shape changes
const SchemaVersion = 1

// NDJSONWriter writes entries, results and markers as NDJSON
type NDJSONWriter struct {
	w io.Writer
}

// NewNDJSONWriter creates a new NDJSON writer
func NewNDJSONWriter(w io.Writer) *NDJSONWriter {
	return &NDJSONWriter{w: w}
}

// EntryOutput is one parsed log line in NDJSON form
type EntryOutput struct {
	Type          string `json:"type"` // Always "entry"
	SchemaVersion int    `json:"schemaVersion"`
	LineNumber    int    `json:"line_number"`
	Timestamp     string `json:"timestamp,omitempty"`
	Frame         *int   `json:"frame,omitempty"`
	Category      string `json:"category,omitempty"`
	Level         string `json:"level"`
	Message       string `json:"message,omitempty"`
	Continuation  bool   `json:"continuation,omitempty"`
	Raw           string `json:"raw"`
}

// MatchOutput is one search match in NDJSON form
type MatchOutput struct {
	Type          string `json:"type"` // Always "match"
	SchemaVersion int    `json:"schemaVersion"`
	LineNumber    int    `json:"line_number"`
	MatchedText   string `json:"matched_text"`
	Start         int    `json:"start"`
	End           int    `json:"end"`
	Line          string `json:"line,omitempty"`
}

// IndexOutput summarizes a built file index
type IndexOutput struct {
	Type          string                  `json:"type"` // Always "index"
	SchemaVersion int                     `json:"schemaVersion"`
	FilePath      string                  `json:"file_path"`
	TotalLines    int                     `json:"total_lines"`
	FileSize      int64                   `json:"file_size"`
	Checkpoints   int                     `json:"checkpoints"`
	IndexInterval int                     `json:"index_interval"`
	Categories    map[string]int          `json:"categories"`
	LevelCounts   map[domain.LogLevel]int `json:"level_counts"`
}

// InfoOutput represents an informational message
type InfoOutput struct {
	Type          string `json:"type"` // Always "info"
	SchemaVersion int    `json:"schemaVersion"`
	Message       string `json:"message"`
	File          string `json:"file,omitempty"`
}

// WriteEntry outputs a single parsed log line
func (w *NDJSONWriter) WriteEntry(entry *domain.LogEntry) error {
	return w.encode(EntryOutput{
		Type:          "entry",
		SchemaVersion: SchemaVersion,
		LineNumber:    entry.LineNumber,
		Timestamp:     entry.Timestamp,
		Frame:         entry.Frame,
		Category:      entry.Category,
		Level:         string(entry.Level),
		Message:       entry.Message,
		Continuation:  entry.IsContinuation,
		Raw:           entry.Raw,
	})
}

// WriteMatch outputs a single search result, optionally with the full
// matched line resolved through the reader
func (w *NDJSONWriter) WriteMatch(result *domain.SearchResult, line string) error {
	return w.encode(MatchOutput{
		Type:          "match",
		SchemaVersion: SchemaVersion,
		LineNumber:    result.LineNumber,
		MatchedText:   result.MatchedText,
		Start:         result.Start,
		End:           result.End,
		Line:          line,
	})
}

// WriteIndex outputs an index summary
func (w *NDJSONWriter) WriteIndex(idx *domain.FileIndex) error {
	return w.encode(IndexOutput{
		Type:          "index",
		SchemaVersion: SchemaVersion,
		FilePath:      idx.FilePath,
		TotalLines:    idx.TotalLines,
		FileSize:      idx.FileSize,
		Checkpoints:   len(idx.LineOffsets),
		IndexInterval: idx.IndexInterval,
		Categories:    idx.Categories,
		LevelCounts:   idx.LevelCounts,
	})
}

// WriteInfo outputs an informational message
func (w *NDJSONWriter) WriteInfo(message, file string) error {
	return w.encode(InfoOutput{
		Type:          "info",
		SchemaVersion: SchemaVersion,
		Message:       message,
		File:          file,
	})
}

// WriteError outputs a coded error
func (w *NDJSONWriter) WriteError(code, message string, hint ...string) error {
	out := domain.NewErrorOutput(code, message)
	out.SchemaVersion = SchemaVersion
	if len(hint) > 0 {
		out.Hint = hint[0]
	}
	return w.encode(out)
}

// WriteRaw outputs an arbitrary value as one NDJSON line
func (w *NDJSONWriter) WriteRaw(v interface{}) error {
	return w.encode(v)
}

func (w *NDJSONWriter) encode(v interface{}) error {
	data, err := sonic.Marshal(v)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.w.Write(data)
	return err
}
