// Package reader answers random-access line range requests over an
// indexed log file. It seeks to the nearest checkpoint at or before the
// requested start, parses forward, and caches whole checkpoint-aligned
// chunks in a bounded evicting store.
package reader

import (
	"bufio"
	"os"
	"strings"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/uelog/uelog/internal/domain"
	"github.com/uelog/uelog/internal/logparse"
)

// Reader reads line ranges from one open file. Calls against the same
// Reader must be serialized externally: seeking is stateful on the
// handle. The cache tolerates concurrent probes.
type Reader struct {
	file  *os.File
	index *domain.FileIndex
	cache *chunkCache
	log   *zap.SugaredLogger
}

// Option configures a Reader
type Option func(*Reader)

// WithClock injects the clock used for cache insertion timestamps
func WithClock(clk clock.Clock) Option {
	return func(r *Reader) {
		r.cache = newChunkCache(clk)
	}
}

// WithLogger attaches a debug logger
func WithLogger(log *zap.SugaredLogger) Option {
	return func(r *Reader) {
		r.log = log
	}
}

// FromIndex opens the indexed file and creates a reader over it
func FromIndex(path string, index *domain.FileIndex, opts ...Option) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	r := &Reader{
		file:  f,
		index: index,
		cache: newChunkCache(nil),
		log:   zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Close releases the underlying file handle
func (r *Reader) Close() error {
	return r.file.Close()
}

// Index returns the immutable index the reader was built from
func (r *Reader) Index() *domain.FileIndex {
	return r.index
}

// ReadRange returns the parsed entries for lines [startLine, endLine].
// Out-of-range bounds are clamped, never an error; a range that is empty
// after clamping yields an empty chunk.
func (r *Reader) ReadRange(startLine, endLine int) (*domain.LogChunk, error) {
	if startLine < 1 {
		startLine = 1
	}
	if endLine > r.index.TotalLines {
		endLine = r.index.TotalLines
	}

	if startLine > endLine {
		return &domain.LogChunk{StartLine: startLine, EndLine: startLine}, nil
	}

	chunkID := r.index.ChunkID(startLine)

	// Cache probe. A cached partial chunk can satisfy a wider request
	// with fewer lines; the caller sees whatever overlaps.
	if entries, ok := r.cache.get(chunkID, startLine, endLine); ok && len(entries) > 0 {
		return &domain.LogChunk{
			StartLine: startLine,
			EndLine:   endLine,
			Entries:   entries,
		}, nil
	}

	offset := r.index.CheckpointOffset(chunkID)
	if _, err := r.file.Seek(offset, 0); err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(r.file)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	currentLine := chunkID * r.index.IndexInterval
	currentChunk := chunkID
	var entries []domain.LogEntry
	var chunkBuf []domain.LogEntry

	for scanner.Scan() {
		currentLine++
		line := strings.TrimSuffix(scanner.Text(), "\r")

		entry := logparse.ParseLine(currentLine, line)

		// Every parsed line lands in the rolling chunk buffer, whether or
		// not it falls inside the caller's window
		chunkBuf = append(chunkBuf, entry)

		if currentLine >= startLine && currentLine <= endLine {
			entries = append(entries, entry)
		}

		if currentLine >= endLine {
			break
		}

		if len(chunkBuf) >= r.index.IndexInterval {
			r.cache.put(currentChunk, chunkBuf)
			chunkBuf = nil
			currentChunk++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// A partial tail buffer is still worth caching
	if len(chunkBuf) > 0 {
		r.cache.put(currentChunk, chunkBuf)
	}

	end := currentLine
	if end > endLine {
		end = endLine
	}

	r.log.Debugw("range read",
		"start", startLine,
		"end", endLine,
		"entries", len(entries),
		"cached_chunks", r.cache.len(),
	)

	return &domain.LogChunk{
		StartLine: startLine,
		EndLine:   end,
		Entries:   entries,
	}, nil
}

// ReadLine returns a single parsed line, or nil when out of range
func (r *Reader) ReadLine(lineNumber int) (*domain.LogEntry, error) {
	chunk, err := r.ReadRange(lineNumber, lineNumber)
	if err != nil {
		return nil, err
	}
	if len(chunk.Entries) == 0 {
		return nil, nil
	}
	return &chunk.Entries[0], nil
}

// ReadPreview returns the first count parsed lines
func (r *Reader) ReadPreview(count int) ([]domain.LogEntry, error) {
	end := count
	if end > r.index.TotalLines {
		end = r.index.TotalLines
	}
	chunk, err := r.ReadRange(1, end)
	if err != nil {
		return nil, err
	}
	return chunk.Entries, nil
}

// ClearCache drops all cached chunks
func (r *Reader) ClearCache() {
	r.cache.clear()
}
