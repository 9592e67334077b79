// Package search compiles a pattern once and streams matches out of an
// indexed log file. It uses the same checkpoint-seek strategy as the
// reader but opens its own file handle per call and shares no cache.
package search

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/uelog/uelog/internal/domain"
)

// ErrInvalidPattern marks pattern compilation failures so callers can
// distinguish them from I/O errors
var ErrInvalidPattern = errors.New("invalid search pattern")

// Engine is a compiled search. Case sensitivity and regex-vs-literal are
// fixed at construction and apply uniformly to every operation.
type Engine struct {
	re *regexp.Regexp
}

// NewEngine compiles the pattern from the options. Literal mode escapes
// all metacharacters first, so only regex mode can fail on syntax.
func NewEngine(opts domain.SearchOptions) (*Engine, error) {
	pattern := opts.Pattern
	if !opts.UseRegex {
		pattern = regexp.QuoteMeta(pattern)
	}
	if opts.CaseInsensitive {
		pattern = "(?i)" + pattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return &Engine{re: re}, nil
}

// SearchInString finds all non-overlapping matches in one line. Offsets
// are character positions, not byte positions.
func (e *Engine) SearchInString(text string, lineNumber int) []domain.SearchResult {
	locs := e.re.FindAllStringIndex(text, -1)
	if locs == nil {
		return nil
	}

	results := make([]domain.SearchResult, 0, len(locs))
	for _, loc := range locs {
		start := utf8.RuneCountInString(text[:loc[0]])
		matched := text[loc[0]:loc[1]]
		results = append(results, domain.SearchResult{
			LineNumber:  lineNumber,
			MatchedText: matched,
			Start:       start,
			End:         start + utf8.RuneCountInString(matched),
		})
	}
	return results
}

// SearchInFile streams the file and collects every match in the option
// range (defaulting to the whole file). Result size is unbounded; the
// caller scopes the range for very large files.
func (e *Engine) SearchInFile(path string, index *domain.FileIndex, opts domain.SearchOptions) ([]domain.SearchResult, error) {
	startLine := opts.StartLine
	if startLine < 1 {
		startLine = 1
	}
	endLine := opts.EndLine
	if endLine < 1 || endLine > index.TotalLines {
		endLine = index.TotalLines
	}

	var results []domain.SearchResult
	err := e.scan(path, index, startLine, endLine, func(lineNumber int, line string) bool {
		results = append(results, e.SearchInString(line, lineNumber)...)
		return true
	})
	return results, err
}

// SearchNextPage is the bounded continuation for incremental search: it
// scans at most SearchPageWindow lines starting at fromLine and stops as
// soon as maxResults results are collected. The caller advances fromLine
// past the last consumed result to page through a file.
func (e *Engine) SearchNextPage(path string, index *domain.FileIndex, fromLine, maxResults int) ([]domain.SearchResult, error) {
	if fromLine < 1 {
		fromLine = 1
	}
	endLine := fromLine + domain.SearchPageWindow
	if endLine > index.TotalLines {
		endLine = index.TotalLines
	}

	var results []domain.SearchResult
	err := e.scan(path, index, fromLine, endLine, func(lineNumber int, line string) bool {
		results = append(results, e.SearchInString(line, lineNumber)...)
		return len(results) < maxResults
	})
	if err != nil {
		return nil, err
	}
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results, nil
}

// scan seeks to the checkpoint at or before startLine and feeds each line
// in [startLine, endLine] to fn until fn returns false
func (e *Engine) scan(path string, index *domain.FileIndex, startLine, endLine int, fn func(int, string) bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	chunkID := index.ChunkID(startLine)
	if _, err := f.Seek(index.CheckpointOffset(chunkID), 0); err != nil {
		return err
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNumber := chunkID * index.IndexInterval
	for scanner.Scan() {
		lineNumber++
		if lineNumber > endLine {
			break
		}
		if lineNumber < startLine {
			continue
		}

		line := strings.TrimSuffix(scanner.Text(), "\r")
		if !fn(lineNumber, line) {
			break
		}
	}
	return scanner.Err()
}
