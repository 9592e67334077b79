//go:build !unix

package index

import (
	"io"
	"os"
)

// mapFile falls back to reading the whole file on platforms without
// unix mmap support
func mapFile(f *os.File, size int64) ([]byte, func() error, error) {
	if size == 0 {
		return nil, func() error { return nil }, nil
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, nil, err
	}
	return data, func() error { return nil }, nil
}
