// Package index builds a compact structural index over a log file: total
// line count, byte-offset checkpoints every IndexInterval lines, and
// aggregate category/level counts. The file is memory-mapped and scanned
// once, byte by byte.
package index

import (
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/uelog/uelog/internal/domain"
	"github.com/uelog/uelog/internal/logparse"
)

// Indexer holds an open, mapped file while its index is built
type Indexer struct {
	path string
	file *os.File
	data []byte
	log  *zap.SugaredLogger

	unmap func() error
}

// Open opens and maps a file for indexing
func Open(path string, log *zap.SugaredLogger) (*Indexer, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	data, unmap, err := mapFile(f, info.Size())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}

	return &Indexer{
		path:  path,
		file:  f,
		data:  data,
		log:   log,
		unmap: unmap,
	}, nil
}

// Close unmaps and closes the underlying file
func (ix *Indexer) Close() error {
	if err := ix.unmap(); err != nil {
		ix.file.Close()
		return err
	}
	return ix.file.Close()
}

// Size returns the mapped file size in bytes
func (ix *Indexer) Size() int64 {
	return int64(len(ix.data))
}

// BuildIndex scans the mapped bytes and produces the file index.
// Checkpoint k records the byte offset of the first byte of line
// k*interval + 1; checkpoint 0 is seeded before the scan. A final line
// without a trailing newline is still counted. Lines holding invalid
// UTF-8 are counted but contribute no category/level aggregates.
func (ix *Indexer) BuildIndex() *domain.FileIndex {
	start := time.Now()
	idx := domain.NewFileIndex(ix.path, ix.Size())

	data := ix.data
	lineStart := 0
	lineCount := 0

	for i, b := range data {
		if b != '\n' {
			continue
		}
		lineCount++

		if lineStart < i {
			line := data[lineStart:i]
			if utf8.Valid(line) {
				s := string(line)
				if category, ok := logparse.ExtractCategory(s); ok {
					idx.Categories[category]++
				}
				if level, ok := logparse.ExtractLevel(s); ok {
					idx.LevelCounts[level]++
				}
			}
		}

		if lineCount%domain.IndexInterval == 0 {
			idx.LineOffsets = append(idx.LineOffsets, int64(i+1))
		}

		lineStart = i + 1
	}

	// Trailing content without a final newline is one more line
	if lineStart < len(data) {
		lineCount++
	}

	idx.TotalLines = lineCount

	ix.log.Debugw("index built",
		"path", ix.path,
		"lines", lineCount,
		"size", ix.Size(),
		"checkpoints", len(idx.LineOffsets),
		"duration", time.Since(start),
	)

	return idx
}

// Build opens, indexes and closes a file in one step
func Build(path string, log *zap.SugaredLogger) (*domain.FileIndex, error) {
	ix, err := Open(path, log)
	if err != nil {
		return nil, err
	}
	defer ix.Close()
	return ix.BuildIndex(), nil
}
