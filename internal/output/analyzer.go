package output

import (
	"sort"

	"github.com/tidwall/gjson"
)

// StreamSummary aggregates a previously exported NDJSON stream
type StreamSummary struct {
	Type          string         `json:"type"` // Always "summary"
	SchemaVersion int            `json:"schemaVersion"`
	TotalLines    int            `json:"total_lines"`
	Entries       int            `json:"entries"`
	Matches       int            `json:"matches"`
	Skipped       int            `json:"skipped"`
	LevelCounts   map[string]int `json:"level_counts,omitempty"`
	Categories    map[string]int `json:"categories,omitempty"`
	TopMatches    []MatchCount   `json:"top_matches,omitempty"`
	ErrorCount    int            `json:"error_count"`
	WarningCount  int            `json:"warning_count"`
}

// MatchCount is one repeated matched text and how often it occurred
type MatchCount struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

// Analyzer summarizes NDJSON streams produced by the read and search
// commands. Field access goes through gjson so unknown record types are
// skipped rather than failing the run.
type Analyzer struct {
	matchTexts map[string]int
	summary    *StreamSummary
}

// NewAnalyzer creates an empty analyzer
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		matchTexts: make(map[string]int),
		summary: &StreamSummary{
			Type:          "summary",
			SchemaVersion: SchemaVersion,
			LevelCounts:   make(map[string]int),
			Categories:    make(map[string]int),
		},
	}
}

// Feed consumes one NDJSON line
func (a *Analyzer) Feed(line []byte) {
	if len(line) == 0 || !gjson.ValidBytes(line) {
		a.summary.Skipped++
		return
	}
	a.summary.TotalLines++

	switch gjson.GetBytes(line, "type").String() {
	case "entry":
		a.summary.Entries++
		if level := gjson.GetBytes(line, "level").String(); level != "" {
			a.summary.LevelCounts[level]++
			switch level {
			case "Error":
				a.summary.ErrorCount++
			case "Warning":
				a.summary.WarningCount++
			}
		}
		if category := gjson.GetBytes(line, "category").String(); category != "" {
			a.summary.Categories[category]++
		}
	case "match":
		a.summary.Matches++
		if text := gjson.GetBytes(line, "matched_text").String(); text != "" {
			a.matchTexts[text]++
		}
	default:
		a.summary.Skipped++
	}
}

// Summary finalizes and returns the aggregate, including the ten most
// frequent matched texts
func (a *Analyzer) Summary() *StreamSummary {
	texts := make([]MatchCount, 0, len(a.matchTexts))
	for text, count := range a.matchTexts {
		texts = append(texts, MatchCount{Text: text, Count: count})
	}
	sort.Slice(texts, func(i, j int) bool {
		if texts[i].Count != texts[j].Count {
			return texts[i].Count > texts[j].Count
		}
		return texts[i].Text < texts[j].Text
	})
	if len(texts) > 10 {
		texts = texts[:10]
	}
	a.summary.TopMatches = texts
	return a.summary
}
