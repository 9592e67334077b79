package search

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uelog/uelog/internal/domain"
	"github.com/uelog/uelog/internal/index"
)

func writeIndexed(t *testing.T, content string) (string, *domain.FileIndex) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.log")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	idx, err := index.Build(path, nil)
	require.NoError(t, err)
	return path, idx
}

func TestNewEngine(t *testing.T) {
	t.Run("invalid regex wraps ErrInvalidPattern", func(t *testing.T) {
		_, err := NewEngine(domain.SearchOptions{Pattern: "[unclosed", UseRegex: true})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidPattern))
	})

	t.Run("literal mode never fails on metacharacters", func(t *testing.T) {
		_, err := NewEngine(domain.SearchOptions{Pattern: "[unclosed (", UseRegex: false})
		assert.NoError(t, err)
	})
}

func TestSearchInString(t *testing.T) {
	t.Run("regex with groups", func(t *testing.T) {
		e, err := NewEngine(domain.SearchOptions{Pattern: `Error:\s*(\w+)`, UseRegex: true})
		require.NoError(t, err)

		results := e.SearchInString("LogNet: Error: timeout after retry Error: again", 12)
		require.Len(t, results, 2)
		assert.Equal(t, 12, results[0].LineNumber)
		assert.Equal(t, "Error: timeout", results[0].MatchedText)
		assert.Equal(t, "Error: again", results[1].MatchedText)
	})

	t.Run("case insensitive", func(t *testing.T) {
		e, err := NewEngine(domain.SearchOptions{Pattern: "error", UseRegex: true, CaseInsensitive: true})
		require.NoError(t, err)

		results := e.SearchInString("ERROR Error error", 1)
		assert.Len(t, results, 3)
	})

	t.Run("literal windows path matches verbatim", func(t *testing.T) {
		e, err := NewEngine(domain.SearchOptions{Pattern: `C:\Path\File.txt`, UseRegex: false})
		require.NoError(t, err)

		results := e.SearchInString(`failed to open C:\Path\File.txt for writing`, 1)
		require.Len(t, results, 1)
		assert.Equal(t, `C:\Path\File.txt`, results[0].MatchedText)
	})

	t.Run("offsets are character positions", func(t *testing.T) {
		e, err := NewEngine(domain.SearchOptions{Pattern: "abc", UseRegex: false})
		require.NoError(t, err)

		// Two three-byte runes precede the match
		results := e.SearchInString("日本abc", 1)
		require.Len(t, results, 1)
		assert.Equal(t, 2, results[0].Start)
		assert.Equal(t, 5, results[0].End)
	})

	t.Run("no match returns nil", func(t *testing.T) {
		e, err := NewEngine(domain.SearchOptions{Pattern: "zzz", UseRegex: false})
		require.NoError(t, err)
		assert.Nil(t, e.SearchInString("nothing here", 1))
	})
}

func TestSearchInFile(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 2500; i++ {
		level := "Display"
		if i%500 == 0 {
			level = "Error"
		}
		fmt.Fprintf(&b, "[2026.02.14-03.33.56:070][  0]LogTemp: %s: line %d\n", level, i)
	}
	path, idx := writeIndexed(t, b.String())

	t.Run("whole file", func(t *testing.T) {
		e, err := NewEngine(domain.SearchOptions{Pattern: "Error:", UseRegex: false})
		require.NoError(t, err)

		results, err := e.SearchInFile(path, idx, domain.SearchOptions{})
		require.NoError(t, err)
		require.Len(t, results, 5)
		assert.Equal(t, 500, results[0].LineNumber)
		assert.Equal(t, 2500, results[4].LineNumber)
	})

	t.Run("bounded range excludes outside hits", func(t *testing.T) {
		e, err := NewEngine(domain.SearchOptions{Pattern: "Error:", UseRegex: false})
		require.NoError(t, err)

		results, err := e.SearchInFile(path, idx, domain.SearchOptions{StartLine: 600, EndLine: 2100})
		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, 1000, results[0].LineNumber)
		assert.Equal(t, 2000, results[2].LineNumber)
	})

	t.Run("range starting past a checkpoint multiple", func(t *testing.T) {
		e, err := NewEngine(domain.SearchOptions{Pattern: `line 1001\b`, UseRegex: true})
		require.NoError(t, err)

		results, err := e.SearchInFile(path, idx, domain.SearchOptions{StartLine: 1001, EndLine: 1001})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, 1001, results[0].LineNumber)
	})
}

func TestSearchNextPage(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 25000; i++ {
		level := "Display"
		if i%100 == 0 {
			level = "Warning"
		}
		fmt.Fprintf(&b, "LogCore: %s: line %d\n", level, i)
	}
	path, idx := writeIndexed(t, b.String())

	e, err := NewEngine(domain.SearchOptions{Pattern: "Warning:", UseRegex: false})
	require.NoError(t, err)

	t.Run("stops at maxResults", func(t *testing.T) {
		results, err := e.SearchNextPage(path, idx, 1, 10)
		require.NoError(t, err)
		require.Len(t, results, 10)
		assert.Equal(t, 100, results[0].LineNumber)
		assert.Equal(t, 1000, results[9].LineNumber)
	})

	t.Run("window bound caps the scan", func(t *testing.T) {
		// Lines 1..10001 hold 100 hits, fewer than maxResults
		results, err := e.SearchNextPage(path, idx, 1, 1000)
		require.NoError(t, err)
		require.Len(t, results, 100)
		assert.Equal(t, 10000, results[99].LineNumber)
	})

	t.Run("paging never repeats or skips hits", func(t *testing.T) {
		seen := make(map[int]bool)
		fromLine := 1
		for fromLine <= idx.TotalLines {
			results, err := e.SearchNextPage(path, idx, fromLine, 50)
			require.NoError(t, err)
			if len(results) == 0 {
				fromLine += domain.SearchPageWindow + 1
				continue
			}
			for _, r := range results {
				assert.False(t, seen[r.LineNumber], "line %d returned twice", r.LineNumber)
				seen[r.LineNumber] = true
			}
			fromLine = results[len(results)-1].LineNumber + 1
		}
		assert.Len(t, seen, 250)
	})

	t.Run("multi-match line truncates to maxResults", func(t *testing.T) {
		path, idx := writeIndexed(t, "x x x x x\n")
		e, err := NewEngine(domain.SearchOptions{Pattern: "x", UseRegex: false})
		require.NoError(t, err)

		results, err := e.SearchNextPage(path, idx, 1, 3)
		require.NoError(t, err)
		assert.Len(t, results, 3)
	})
}

func BenchmarkSearchInString(b *testing.B) {
	e, err := NewEngine(domain.SearchOptions{Pattern: `Error:\s*\w+`, UseRegex: true, CaseInsensitive: true})
	if err != nil {
		b.Fatal(err)
	}
	line := "[2026.02.14-03.33.56:070][  0]LogWindows: Error: something went wrong"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		e.SearchInString(line, i)
	}
}
