package reader

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/uelog/uelog/internal/domain"
)

// cacheSize is the fixed chunk capacity of the reader cache
const cacheSize = 100

// cacheItem is one cached chunk of parsed entries
type cacheItem struct {
	entries    []domain.LogEntry
	accessTime time.Time
}

// chunkCache is a bounded store of parsed chunks keyed by checkpoint
// index. Readers proceed in parallel; insertion and eviction take the
// write lock. Eviction removes the entry with the oldest insertion time;
// probe hits do not refresh it, so a chunk that is hit repeatedly is not
// protected from eviction by read recency alone.
type chunkCache struct {
	mu    sync.RWMutex
	items map[int]*cacheItem
	clk   clock.Clock
}

func newChunkCache(clk clock.Clock) *chunkCache {
	if clk == nil {
		clk = clock.New()
	}
	return &chunkCache{
		items: make(map[int]*cacheItem),
		clk:   clk,
	}
}

// get returns the cached entries of a chunk, filtered to the requested
// line window
func (c *chunkCache) get(chunkID, startLine, endLine int) ([]domain.LogEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[chunkID]
	if !ok {
		return nil, false
	}

	var entries []domain.LogEntry
	for _, e := range item.entries {
		if e.LineNumber >= startLine && e.LineNumber <= endLine {
			entries = append(entries, e)
		}
	}
	return entries, true
}

// put inserts a chunk, evicting the oldest insertion when full
func (c *chunkCache) put(chunkID int, entries []domain.LogEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[chunkID]; !exists && len(c.items) >= cacheSize {
		oldestKey := 0
		var oldestTime time.Time
		first := true
		for k, v := range c.items {
			if first || v.accessTime.Before(oldestTime) {
				oldestKey = k
				oldestTime = v.accessTime
				first = false
			}
		}
		delete(c.items, oldestKey)
	}

	c.items[chunkID] = &cacheItem{
		entries:    entries,
		accessTime: c.clk.Now(),
	}
}

func (c *chunkCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[int]*cacheItem)
}

func (c *chunkCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
