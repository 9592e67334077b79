package domain

// IndexInterval is the number of lines between byte-offset checkpoints.
// A 1,000,000-line file yields 1,000 checkpoints, bounding any random
// access to a re-parse of at most 1,000 lines.
const IndexInterval = 1000

// FileIndex is the structural summary of one log file. It is built once
// per open and treated as immutable afterwards; the reader and the search
// engine share it without synchronization.
type FileIndex struct {
	FilePath      string           `json:"file_path"`
	TotalLines    int              `json:"total_lines"`
	FileSize      int64            `json:"file_size"`
	LineOffsets   []int64          `json:"line_offsets"`
	IndexInterval int              `json:"index_interval"`
	Categories    map[string]int   `json:"categories"`
	LevelCounts   map[LogLevel]int `json:"level_counts"`
}

// NewFileIndex creates an empty index for a file. The first checkpoint
// (offset 0 for line 1) is seeded before scanning begins.
func NewFileIndex(path string, size int64) *FileIndex {
	return &FileIndex{
		FilePath:      path,
		FileSize:      size,
		LineOffsets:   []int64{0},
		IndexInterval: IndexInterval,
		Categories:    make(map[string]int),
		LevelCounts:   make(map[LogLevel]int),
	}
}

// ChunkID returns the checkpoint index of the chunk containing the given
// 1-based line, i.e. the nearest checkpoint at or before it.
func (idx *FileIndex) ChunkID(line int) int {
	if line <= 1 {
		return 0
	}
	return (line - 1) / idx.IndexInterval
}

// CheckpointOffset returns the byte offset to seek to for the given chunk,
// falling back to the start of the file when the checkpoint is missing.
func (idx *FileIndex) CheckpointOffset(chunkID int) int64 {
	if chunkID >= 0 && chunkID < len(idx.LineOffsets) {
		return idx.LineOffsets[chunkID]
	}
	return 0
}

// LogChunk is a contiguous slice of parsed lines
type LogChunk struct {
	StartLine int        `json:"start_line"`
	EndLine   int        `json:"end_line"`
	Entries   []LogEntry `json:"entries"`
}

// OpenResult is returned when a file is opened: the freshly built index
// plus a parsed preview of the first lines
type OpenResult struct {
	Index   *FileIndex `json:"index"`
	Preview []LogEntry `json:"preview"`
}
