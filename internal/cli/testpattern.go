package cli

import (
	"github.com/uelog/uelog/internal/output"
	"github.com/uelog/uelog/internal/session"
)

// TestCmd tests a regex pattern against a text snippet without touching
// any file
type TestCmd struct {
	Pattern string `arg:"" required:"" help:"Regex pattern to test"`
	Text    string `arg:"" required:"" help:"Text to match against"`

	CaseSensitive bool `help:"Match case-sensitively"`
}

// Run executes the test command
func (c *TestCmd) Run(globals *Globals) error {
	results, err := session.TestPattern(c.Pattern, c.Text, !c.CaseSensitive)
	if err != nil {
		return outputError(globals, err)
	}

	if globals.Format == "ndjson" {
		writer := output.NewNDJSONWriter(globals.Stdout)
		for i := range results {
			if err := writer.WriteMatch(&results[i], c.Text); err != nil {
				return err
			}
		}
		return nil
	}

	writer := output.NewTextWriter(globals.Stdout, globals.colorEnabled())
	for i := range results {
		if err := writer.WriteMatch(&results[i], c.Text); err != nil {
			return err
		}
	}
	if len(results) == 0 && !globals.Quiet {
		globals.Debug("pattern %q did not match", c.Pattern)
	}
	return nil
}
