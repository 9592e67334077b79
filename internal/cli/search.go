package cli

import (
	"golang.org/x/sync/errgroup"

	"github.com/uelog/uelog/internal/domain"
	"github.com/uelog/uelog/internal/output"
	"github.com/uelog/uelog/internal/session"
)

// SearchCmd searches a log file by regex or literal pattern
type SearchCmd struct {
	File    string `arg:"" required:"" help:"Log file to search"`
	Pattern string `arg:"" required:"" help:"Regex (default) or literal pattern"`

	Literal       bool `help:"Match the pattern as an exact substring"`
	CaseSensitive bool `help:"Match case-sensitively"`
	From          int  `help:"First line of the search range"`
	To            int  `help:"Last line of the search range"`
	Max           int  `help:"Stop after this many results (0 = config default)"`
	Paged         bool `help:"Stream results in bounded pages instead of one pass"`
	ShowLines     bool `help:"Resolve full matching lines through the reader"`
}

// Run executes the search command
func (c *SearchCmd) Run(globals *Globals) error {
	sess := session.New(globals.Log)
	defer sess.Close()

	if _, err := sess.Open(c.File); err != nil {
		return outputError(globals, err)
	}

	opts := domain.SearchOptions{
		Pattern:         c.Pattern,
		UseRegex:        !c.Literal,
		CaseInsensitive: !c.CaseSensitive,
		StartLine:       c.From,
		EndLine:         c.To,
	}

	if c.Paged {
		return c.runPaged(globals, sess, opts)
	}

	results, err := sess.Search(opts)
	if err != nil {
		return outputError(globals, err)
	}
	if c.Max > 0 && len(results) > c.Max {
		results = results[:c.Max]
	}
	return c.emit(globals, sess, results)
}

// runPaged streams bounded pages through a producer/consumer pair so very
// large files emit results as they are found
func (c *SearchCmd) runPaged(globals *Globals, sess *session.Session, opts domain.SearchOptions) error {
	idx, ok := sess.Index()
	if !ok {
		return outputError(globals, session.ErrNoFileOpen)
	}

	max := c.Max
	if max <= 0 {
		max = globals.Config.Defaults.MaxResults
	}
	pageSize := globals.Config.Defaults.PageSize

	pages := make(chan []domain.SearchResult, 1)

	var g errgroup.Group
	g.Go(func() error {
		defer close(pages)

		fromLine := opts.StartLine
		if fromLine < 1 {
			fromLine = 1
		}
		endLine := opts.EndLine
		if endLine < 1 || endLine > idx.TotalLines {
			endLine = idx.TotalLines
		}

		remaining := max
		for fromLine <= endLine && remaining > 0 {
			want := pageSize
			if want > remaining {
				want = remaining
			}

			results, err := sess.SearchNext(fromLine, want, opts)
			if err != nil {
				return err
			}
			// A page window can run past the caller's --to bound
			for len(results) > 0 && results[len(results)-1].LineNumber > endLine {
				results = results[:len(results)-1]
			}
			if len(results) > 0 {
				pages <- results
				remaining -= len(results)
				fromLine = results[len(results)-1].LineNumber + 1
			} else {
				// No hits in this window; advance past it
				fromLine += domain.SearchPageWindow + 1
			}
		}
		return nil
	})

	var emitErr error
	for page := range pages {
		if emitErr != nil {
			continue // drain so the producer can finish
		}
		emitErr = c.emit(globals, sess, page)
	}

	if err := g.Wait(); err != nil {
		return outputError(globals, err)
	}
	return emitErr
}

// emit writes one batch of results in the selected format
func (c *SearchCmd) emit(globals *Globals, sess *session.Session, results []domain.SearchResult) error {
	ndjson := output.NewNDJSONWriter(globals.Stdout)
	text := output.NewTextWriter(globals.Stdout, globals.colorEnabled())

	for i := range results {
		line := ""
		if c.ShowLines {
			entry, err := sess.Line(results[i].LineNumber)
			if err != nil {
				return outputError(globals, err)
			}
			if entry != nil {
				line = entry.Raw
			}
		}

		var err error
		if globals.Format == "ndjson" {
			err = ndjson.WriteMatch(&results[i], line)
		} else {
			err = text.WriteMatch(&results[i], line)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
