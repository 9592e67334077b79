package output

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzer(t *testing.T) {
	t.Run("aggregates entries and matches", func(t *testing.T) {
		a := NewAnalyzer()
		a.Feed([]byte(`{"type":"entry","level":"Error","category":"LogNet"}`))
		a.Feed([]byte(`{"type":"entry","level":"Error","category":"LogNet"}`))
		a.Feed([]byte(`{"type":"entry","level":"Warning","category":"LogCore"}`))
		a.Feed([]byte(`{"type":"entry","level":"Display"}`))
		a.Feed([]byte(`{"type":"match","matched_text":"timeout"}`))
		a.Feed([]byte(`{"type":"match","matched_text":"timeout"}`))
		a.Feed([]byte(`{"type":"match","matched_text":"refused"}`))

		s := a.Summary()
		assert.Equal(t, "summary", s.Type)
		assert.Equal(t, 7, s.TotalLines)
		assert.Equal(t, 4, s.Entries)
		assert.Equal(t, 3, s.Matches)
		assert.Equal(t, 2, s.ErrorCount)
		assert.Equal(t, 1, s.WarningCount)
		assert.Equal(t, 2, s.LevelCounts["Error"])
		assert.Equal(t, 2, s.Categories["LogNet"])

		require.Len(t, s.TopMatches, 2)
		assert.Equal(t, MatchCount{Text: "timeout", Count: 2}, s.TopMatches[0])
		assert.Equal(t, MatchCount{Text: "refused", Count: 1}, s.TopMatches[1])
	})

	t.Run("skips garbage and unknown types", func(t *testing.T) {
		a := NewAnalyzer()
		a.Feed([]byte(`not json at all`))
		a.Feed([]byte(``))
		a.Feed([]byte(`{"type":"heartbeat"}`))
		a.Feed([]byte(`{"type":"entry","level":"Display"}`))

		s := a.Summary()
		assert.Equal(t, 3, s.Skipped)
		assert.Equal(t, 1, s.Entries)
	})

	t.Run("top matches capped at ten", func(t *testing.T) {
		a := NewAnalyzer()
		for i := 0; i < 15; i++ {
			for j := 0; j <= i; j++ {
				a.Feed([]byte(fmt.Sprintf(`{"type":"match","matched_text":"t%02d"}`, i)))
			}
		}

		s := a.Summary()
		require.Len(t, s.TopMatches, 10)
		assert.Equal(t, "t14", s.TopMatches[0].Text)
		assert.Equal(t, 15, s.TopMatches[0].Count)
		// Descending by count
		for i := 1; i < len(s.TopMatches); i++ {
			assert.GreaterOrEqual(t, s.TopMatches[i-1].Count, s.TopMatches[i].Count)
		}
	})
}

func BenchmarkAnalyzerFeed(b *testing.B) {
	a := NewAnalyzer()
	line := []byte(`{"type":"entry","level":"Warning","category":"LogStreaming","message":"slow load"}`)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		a.Feed(line)
	}
}
