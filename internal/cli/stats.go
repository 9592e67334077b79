package cli

import (
	"github.com/uelog/uelog/internal/index"
	"github.com/uelog/uelog/internal/output"
)

// StatsCmd builds the index for a log file and reports aggregates
type StatsCmd struct {
	File string `arg:"" required:"" help:"Log file to index"`
}

// Run executes the stats command
func (c *StatsCmd) Run(globals *Globals) error {
	idx, err := index.Build(c.File, globals.Log)
	if err != nil {
		return outputError(globals, err)
	}

	if globals.Format == "ndjson" {
		return output.NewNDJSONWriter(globals.Stdout).WriteIndex(idx)
	}
	return output.NewTextWriter(globals.Stdout, globals.colorEnabled()).WriteIndex(idx)
}
