// Package session holds the one-file-at-a-time state the command layer
// operates on: the current path, its immutable index, and the active
// reader. Lifecycle is create-on-open, replace-on-reopen, clear-on-close.
package session

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/uelog/uelog/internal/domain"
	"github.com/uelog/uelog/internal/index"
	"github.com/uelog/uelog/internal/reader"
	"github.com/uelog/uelog/internal/search"
)

// PreviewLines is the number of parsed lines returned on open
const PreviewLines = 100

// ErrNoFileOpen is returned when an operation requires an open file
var ErrNoFileOpen = errors.New("no file open")

// Session is the explicit session object owned by the host layer. All
// operations are serialized through its mutex; the reader's file handle
// is stateful under seeks.
type Session struct {
	mu     sync.Mutex
	path   string
	index  *domain.FileIndex
	reader *reader.Reader
	log    *zap.SugaredLogger
}

// New creates an empty session
func New(log *zap.SugaredLogger) *Session {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Session{log: log}
}

// Open indexes the file, constructs a reader, and returns the index plus
// a preview of the first lines. An already-open file is replaced.
func (s *Session) Open(path string) (*domain.OpenResult, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s: %w", path, os.ErrNotExist)
		}
		return nil, err
	}

	idx, err := index.Build(path, s.log)
	if err != nil {
		return nil, fmt.Errorf("failed to index file: %w", err)
	}

	rd, err := reader.FromIndex(path, idx, reader.WithLogger(s.log))
	if err != nil {
		return nil, fmt.Errorf("failed to create reader: %w", err)
	}

	preview, err := rd.ReadPreview(PreviewLines)
	if err != nil {
		rd.Close()
		return nil, fmt.Errorf("failed to read preview: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.reader != nil {
		s.reader.Close()
	}
	s.path = path
	s.index = idx
	s.reader = rd

	s.log.Debugw("file opened", "path", path, "lines", idx.TotalLines)

	return &domain.OpenResult{Index: idx, Preview: preview}, nil
}

// Chunk delegates a range read to the active reader
func (s *Session) Chunk(startLine, endLine int) (*domain.LogChunk, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.reader == nil {
		return nil, ErrNoFileOpen
	}
	return s.reader.ReadRange(startLine, endLine)
}

// Line reads a single line through the active reader
func (s *Session) Line(lineNumber int) (*domain.LogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.reader == nil {
		return nil, ErrNoFileOpen
	}
	return s.reader.ReadLine(lineNumber)
}

// Index returns the most recently built index, or false when no file is
// open
func (s *Session) Index() (*domain.FileIndex, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index, s.index != nil
}

// Path returns the currently open file path
func (s *Session) Path() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path, s.path != ""
}

// Search runs a full-range or bounded search over the active file. The
// engine opens its own file handle and shares nothing with the reader.
func (s *Session) Search(opts domain.SearchOptions) ([]domain.SearchResult, error) {
	path, idx, err := s.activeFile()
	if err != nil {
		return nil, err
	}

	engine, err := search.NewEngine(opts)
	if err != nil {
		return nil, err
	}
	return engine.SearchInFile(path, idx, opts)
}

// SearchNext runs one bounded continuation page of an incremental search
func (s *Session) SearchNext(fromLine, maxResults int, opts domain.SearchOptions) ([]domain.SearchResult, error) {
	path, idx, err := s.activeFile()
	if err != nil {
		return nil, err
	}

	engine, err := search.NewEngine(opts)
	if err != nil {
		return nil, err
	}
	return engine.SearchNextPage(path, idx, fromLine, maxResults)
}

// Close releases the file, index and reader. Idempotent.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.reader != nil {
		s.reader.Close()
	}
	s.path = ""
	s.index = nil
	s.reader = nil
}

func (s *Session) activeFile() (string, *domain.FileIndex, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index == nil {
		return "", nil, ErrNoFileOpen
	}
	return s.path, s.index, nil
}

// TestPattern is the stateless pattern tester: always regex mode, applied
// to the given text only. Results carry line number 0.
func TestPattern(pattern, text string, caseInsensitive bool) ([]domain.SearchResult, error) {
	engine, err := search.NewEngine(domain.SearchOptions{
		Pattern:         pattern,
		UseRegex:        true,
		CaseInsensitive: caseInsensitive,
	})
	if err != nil {
		return nil, err
	}
	return engine.SearchInString(text, 0), nil
}
