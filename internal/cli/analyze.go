package cli

import (
	"bufio"
	"fmt"
	"os"
	"sort"

	"github.com/uelog/uelog/internal/output"
)

// AnalyzeCmd summarizes a previously exported NDJSON stream
type AnalyzeCmd struct {
	File string `arg:"" required:"" help:"NDJSON stream to analyze"`
}

// Run executes the analyze command
func (c *AnalyzeCmd) Run(globals *Globals) error {
	file, err := os.Open(c.File)
	if err != nil {
		return outputError(globals, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			globals.Debug("Failed to close file: %v", err)
		}
	}()

	analyzer := output.NewAnalyzer()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		analyzer.Feed(scanner.Bytes())
	}
	if err := scanner.Err(); err != nil {
		return outputError(globals, err)
	}

	summary := analyzer.Summary()

	if globals.Format == "ndjson" {
		return output.NewNDJSONWriter(globals.Stdout).WriteRaw(summary)
	}

	if _, err := fmt.Fprintf(globals.Stdout, "Analysis of %s\n", c.File); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(globals.Stdout, "Records: %d (%d entries, %d matches, %d skipped)\n",
		summary.TotalLines, summary.Entries, summary.Matches, summary.Skipped); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(globals.Stdout, "Errors: %d  Warnings: %d\n",
		summary.ErrorCount, summary.WarningCount); err != nil {
		return err
	}

	if len(summary.LevelCounts) > 0 {
		if _, err := fmt.Fprintln(globals.Stdout, "\nLevels:"); err != nil {
			return err
		}
		for _, level := range sortedKeys(summary.LevelCounts) {
			if _, err := fmt.Fprintf(globals.Stdout, "  %-12s %d\n", level, summary.LevelCounts[level]); err != nil {
				return err
			}
		}
	}

	if len(summary.Categories) > 0 {
		if _, err := fmt.Fprintln(globals.Stdout, "\nCategories:"); err != nil {
			return err
		}
		for _, category := range sortedKeys(summary.Categories) {
			if _, err := fmt.Fprintf(globals.Stdout, "  %-24s %d\n", category, summary.Categories[category]); err != nil {
				return err
			}
		}
	}

	if len(summary.TopMatches) > 0 {
		if _, err := fmt.Fprintln(globals.Stdout, "\nTop matches:"); err != nil {
			return err
		}
		for _, m := range summary.TopMatches {
			if _, err := fmt.Fprintf(globals.Stdout, "  (%dx) %s\n", m.Count, m.Text); err != nil {
				return err
			}
		}
	}

	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
