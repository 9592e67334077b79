package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uelog/uelog/internal/domain"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	line := strings.TrimRight(buf.String(), "\n")
	require.NotContains(t, line, "\n", "expected exactly one NDJSON line")

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(line), &m))
	return m
}

func TestNDJSONWriter_WriteEntry(t *testing.T) {
	buf := &bytes.Buffer{}
	frame := 12
	entry := &domain.LogEntry{
		LineNumber: 42,
		Raw:        "[2026.02.14-03.33.56:070][ 12]LogNet: Warning: timeout",
		Timestamp:  "2026.02.14-03.33.56:070",
		Frame:      &frame,
		Category:   "LogNet",
		Level:      domain.LogLevelWarning,
		Message:    "timeout",
	}

	require.NoError(t, NewNDJSONWriter(buf).WriteEntry(entry))

	m := decodeLine(t, buf)
	assert.Equal(t, "entry", m["type"])
	assert.Equal(t, float64(SchemaVersion), m["schemaVersion"])
	assert.Equal(t, float64(42), m["line_number"])
	assert.Equal(t, float64(12), m["frame"])
	assert.Equal(t, "LogNet", m["category"])
	assert.Equal(t, "Warning", m["level"])
	assert.Equal(t, "timeout", m["message"])
	assert.Equal(t, entry.Raw, m["raw"])
	assert.NotContains(t, m, "continuation")
}

func TestNDJSONWriter_WriteMatch(t *testing.T) {
	t.Run("without resolved line", func(t *testing.T) {
		buf := &bytes.Buffer{}
		result := &domain.SearchResult{LineNumber: 7, MatchedText: "Error: boom", Start: 10, End: 21}

		require.NoError(t, NewNDJSONWriter(buf).WriteMatch(result, ""))

		m := decodeLine(t, buf)
		assert.Equal(t, "match", m["type"])
		assert.Equal(t, float64(7), m["line_number"])
		assert.Equal(t, "Error: boom", m["matched_text"])
		assert.Equal(t, float64(10), m["start"])
		assert.Equal(t, float64(21), m["end"])
		assert.NotContains(t, m, "line")
	})

	t.Run("with resolved line", func(t *testing.T) {
		buf := &bytes.Buffer{}
		result := &domain.SearchResult{LineNumber: 7, MatchedText: "boom", Start: 0, End: 4}

		require.NoError(t, NewNDJSONWriter(buf).WriteMatch(result, "boom happened"))

		m := decodeLine(t, buf)
		assert.Equal(t, "boom happened", m["line"])
	})
}

func TestNDJSONWriter_WriteIndex(t *testing.T) {
	buf := &bytes.Buffer{}
	idx := domain.NewFileIndex("/tmp/x.log", 2048)
	idx.TotalLines = 1500
	idx.LineOffsets = append(idx.LineOffsets, 1024)
	idx.Categories["LogTemp"] = 9
	idx.LevelCounts[domain.LogLevelError] = 3

	require.NoError(t, NewNDJSONWriter(buf).WriteIndex(idx))

	m := decodeLine(t, buf)
	assert.Equal(t, "index", m["type"])
	assert.Equal(t, "/tmp/x.log", m["file_path"])
	assert.Equal(t, float64(1500), m["total_lines"])
	assert.Equal(t, float64(2048), m["file_size"])
	assert.Equal(t, float64(2), m["checkpoints"])
	assert.Equal(t, float64(domain.IndexInterval), m["index_interval"])
}

func TestNDJSONWriter_WriteError(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, NewNDJSONWriter(buf).WriteError(domain.ErrCodePattern, "bad regex", "check bracket balance"))

	m := decodeLine(t, buf)
	assert.Equal(t, "error", m["type"])
	assert.Equal(t, domain.ErrCodePattern, m["code"])
	assert.Equal(t, "bad regex", m["message"])
	assert.Equal(t, "check bracket balance", m["hint"])
}

func TestTextWriter_Plain(t *testing.T) {
	t.Run("entry shows line number and raw text", func(t *testing.T) {
		buf := &bytes.Buffer{}
		entry := &domain.LogEntry{LineNumber: 3, Raw: "LogInit: Display: up"}

		require.NoError(t, NewTextWriter(buf, false).WriteEntry(entry))
		assert.Equal(t, "      3  LogInit: Display: up\n", buf.String())
	})

	t.Run("match without line shows offsets", func(t *testing.T) {
		buf := &bytes.Buffer{}
		result := &domain.SearchResult{LineNumber: 5, MatchedText: "boom", Start: 2, End: 6}

		require.NoError(t, NewTextWriter(buf, false).WriteMatch(result, ""))
		assert.Contains(t, buf.String(), "boom [2-6]")
	})

	t.Run("index summary includes tables", func(t *testing.T) {
		buf := &bytes.Buffer{}
		idx := domain.NewFileIndex("/tmp/x.log", 100)
		idx.TotalLines = 10
		idx.Categories["LogCore"] = 4
		idx.Categories["LogNet"] = 6
		idx.LevelCounts[domain.LogLevelError] = 1

		require.NoError(t, NewTextWriter(buf, false).WriteIndex(idx))

		out := buf.String()
		assert.Contains(t, out, "Index of /tmp/x.log")
		assert.Contains(t, out, "Lines: 10")
		assert.Contains(t, out, "LogNet")
		assert.Contains(t, out, "Error")
	})

	t.Run("error line", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, NewTextWriter(buf, false).WriteError("IO_ERROR", "disk gone"))
		assert.Equal(t, "Error [IO_ERROR]: disk gone\n", buf.String())
	})
}
