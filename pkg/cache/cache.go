// Package cache memoizes built reports by workbook content.
package cache

import (
	"crypto/sha256"
	"fmt"
	"sync"

	"github.com/inventario26/cronograma-go/pkg/cronograma/models"
)

// DefaultMaxEntries bounds the cache before a wholesale eviction.
const DefaultMaxEntries = 64

// Cache memoizes reports keyed by workbook bytes and sheet name, so
// repeated loads of the same file skip both decode passes. Summaries are
// not cached: they are cheap and depend on the reference date.
type Cache struct {
	mu      sync.Mutex
	max     int
	entries map[string]*models.Report
}

// New returns a Cache bounded to max entries. Non-positive max selects
// DefaultMaxEntries.
func New(max int) *Cache {
	if max <= 0 {
		max = DefaultMaxEntries
	}
	return &Cache{
		max:     max,
		entries: make(map[string]*models.Report),
	}
}

// Get returns the cached report for the exact bytes and sheet, if present.
func (c *Cache) Get(data []byte, sheetName string) (*models.Report, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.entries[key(data, sheetName)]
	return r, ok
}

// Put stores a built report. When the entry cap is reached the whole
// cache is dropped before storing.
func (c *Cache) Put(data []byte, sheetName string, r *models.Report) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= c.max {
		c.entries = make(map[string]*models.Report, c.max)
	}
	c.entries[key(data, sheetName)] = r
}

// Len reports the number of cached reports.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func key(data []byte, sheetName string) string {
	return fmt.Sprintf("%x:%s", sha256.Sum256(data), sheetName)
}
