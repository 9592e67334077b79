package index

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uelog/uelog/internal/domain"
)

// writeLog writes content to a temp file and returns its path
func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.log")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestBuild_Counts(t *testing.T) {
	t.Run("counts lines and aggregates", func(t *testing.T) {
		content := strings.Join([]string{
			"[2026.02.14-03.33.56:070][  0]LogWindows: Error: first failure",
			"[2026.02.14-03.33.56:071][  0]LogWindows: Error: second failure",
			"LogInit: Warning: config missing",
			"plain text line",
			"",
		}, "\n")
		path := writeLog(t, content)

		idx, err := Build(path, nil)
		require.NoError(t, err)

		assert.Equal(t, 4, idx.TotalLines)
		assert.Equal(t, path, idx.FilePath)
		assert.Equal(t, int64(len(content)), idx.FileSize)
		assert.Equal(t, 2, idx.Categories["LogWindows"])
		assert.Equal(t, 1, idx.Categories["LogInit"])
		assert.Equal(t, 2, idx.LevelCounts[domain.LogLevelError])
		assert.Equal(t, 1, idx.LevelCounts[domain.LogLevelWarning])
	})

	t.Run("final line without newline is counted", func(t *testing.T) {
		path := writeLog(t, "line one\nline two without newline")

		idx, err := Build(path, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, idx.TotalLines)
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeLog(t, "")

		idx, err := Build(path, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, idx.TotalLines)
		assert.Equal(t, []int64{0}, idx.LineOffsets)
	})

	t.Run("invalid utf8 lines are counted but not aggregated", func(t *testing.T) {
		path := writeLog(t, "LogTemp: Error: ok\n\xff\xfe\xfd\n")

		idx, err := Build(path, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, idx.TotalLines)
		assert.Equal(t, 1, idx.Categories["LogTemp"])
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Build(filepath.Join(t.TempDir(), "nope.log"), nil)
		assert.Error(t, err)
	})
}

func TestBuild_Checkpoints(t *testing.T) {
	// 2500 lines yields checkpoints for lines 1, 1001 and 2001
	var b strings.Builder
	for i := 1; i <= 2500; i++ {
		fmt.Fprintf(&b, "LogTemp: Display: line %d\n", i)
	}
	path := writeLog(t, b.String())

	idx, err := Build(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 2500, idx.TotalLines)
	require.Len(t, idx.LineOffsets, 3)
	assert.Equal(t, int64(0), idx.LineOffsets[0])

	// Offsets are strictly increasing and each checkpoint lands exactly on
	// the first byte of line k*1000+1
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	for k := 1; k < len(idx.LineOffsets); k++ {
		assert.Greater(t, idx.LineOffsets[k], idx.LineOffsets[k-1])
		assert.Equal(t, byte('\n'), data[idx.LineOffsets[k]-1])

		line := string(data[idx.LineOffsets[k] : idx.LineOffsets[k]+40])
		assert.Contains(t, line, fmt.Sprintf("line %d", k*1000+1))
	}

	// ChunkID and CheckpointOffset agree at the boundaries
	assert.Equal(t, 0, idx.ChunkID(1000))
	assert.Equal(t, 1, idx.ChunkID(1001))
	assert.Equal(t, idx.LineOffsets[1], idx.CheckpointOffset(idx.ChunkID(1001)))
}

func TestIndexer_OpenClose(t *testing.T) {
	path := writeLog(t, "LogTemp: Display: hello\n")

	ix, err := Open(path, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(24), ix.Size())

	idx := ix.BuildIndex()
	assert.Equal(t, 1, idx.TotalLines)

	require.NoError(t, ix.Close())
}

func BenchmarkBuildIndex(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 10000; i++ {
		fmt.Fprintf(&sb, "[2026.02.14-03.33.56:070][%3d]LogTemp: Display: benchmark line %d\n", i%1000, i)
	}
	path := filepath.Join(b.TempDir(), "bench.log")
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ix, err := Open(path, nil)
		if err != nil {
			b.Fatal(err)
		}
		ix.BuildIndex()
		ix.Close()
	}
}
