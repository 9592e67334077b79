package cli

import (
	"github.com/uelog/uelog/internal/domain"
	"github.com/uelog/uelog/internal/output"
	"github.com/uelog/uelog/internal/session"
)

// ReadCmd reads a parsed line range from a log file
type ReadCmd struct {
	File string `arg:"" required:"" help:"Log file to read"`
	From int    `help:"First line of the range (1-based)" default:"1"`
	To   int    `help:"Last line of the range (default: preview length)"`
	Line int    `help:"Read a single line (overrides --from/--to)"`

	Category        []string `help:"Only show these categories"`
	ExcludeCategory []string `help:"Hide these categories"`
	Level           []string `help:"Only show these verbosity levels"`
}

// Run executes the read command
func (c *ReadCmd) Run(globals *Globals) error {
	sess := session.New(globals.Log)
	defer sess.Close()

	if _, err := sess.Open(c.File); err != nil {
		return outputError(globals, err)
	}

	from, to := c.From, c.To
	if c.Line > 0 {
		from, to = c.Line, c.Line
	} else if to == 0 {
		to = from + globals.Config.Defaults.PreviewLines - 1
	}

	chunk, err := sess.Chunk(from, to)
	if err != nil {
		return outputError(globals, err)
	}

	filter := c.filter(globals)

	if globals.Format == "ndjson" {
		writer := output.NewNDJSONWriter(globals.Stdout)
		for i := range chunk.Entries {
			if !filter.Match(&chunk.Entries[i]) {
				continue
			}
			if err := writer.WriteEntry(&chunk.Entries[i]); err != nil {
				return err
			}
		}
		return nil
	}

	writer := output.NewTextWriter(globals.Stdout, globals.colorEnabled())
	for i := range chunk.Entries {
		if !filter.Match(&chunk.Entries[i]) {
			continue
		}
		if err := writer.WriteEntry(&chunk.Entries[i]); err != nil {
			return err
		}
	}
	return nil
}

// filter combines command-line filters with configured defaults
func (c *ReadCmd) filter(globals *Globals) *domain.FilterOptions {
	opts := &domain.FilterOptions{
		Categories:        c.Category,
		ExcludeCategories: c.ExcludeCategory,
	}
	if len(opts.Categories) == 0 {
		opts.Categories = globals.Config.Defaults.Categories
	}
	if len(opts.ExcludeCategories) == 0 {
		opts.ExcludeCategories = globals.Config.Defaults.ExcludeCategories
	}
	for _, l := range c.Level {
		opts.Levels = append(opts.Levels, domain.ParseLogLevel(l))
	}
	return opts
}
