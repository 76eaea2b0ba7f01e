// Result caching for the analysis pipeline. Results are keyed by a content
// hash of the source text, so re-analyzing unchanged input is a lookup.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/tokflow/tokflow/pkg/cfg"
	"github.com/tokflow/tokflow/pkg/paths"
)

// DefaultCacheFile is the filename used for persisted results.
const DefaultCacheFile = "results.msgpack"

// Result is one cached analysis outcome: the full pipeline output for one
// source text.
type Result struct {
	Labels     []string       `msgpack:"labels" json:"labels"`
	Nodes      []string       `msgpack:"nodes" json:"nodes"`
	Edges      []cfg.Edge     `msgpack:"edges" json:"edges"`
	Paths      []paths.Path   `msgpack:"paths" json:"paths"`
	BranchHits map[string]int `msgpack:"branch_hits" json:"branch_hits,omitempty"`
	Complexity int            `msgpack:"complexity" json:"complexity"`
	CreatedAt  int64          `msgpack:"created_at" json:"-"`
}

// estimateSize approximates the in-memory footprint of the result.
func (r *Result) estimateSize() int {
	if r == nil {
		return 0
	}
	size := 0
	for _, l := range r.Labels {
		size += len(l)
	}
	for _, n := range r.Nodes {
		size += len(n)
	}
	for _, e := range r.Edges {
		size += len(e.From) + len(e.To)
	}
	for _, p := range r.Paths {
		for _, n := range p {
			size += len(n)
		}
	}
	for k := range r.BranchHits {
		size += len(k) + 8
	}
	return size + 64
}

// HashSource returns the cache key for a source text: the hex-encoded
// SHA256 of its bytes.
func HashSource(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

// Stats summarizes the state of a result cache.
type Stats struct {
	Entries int    `json:"entries"`
	Bytes   int64  `json:"bytes"`
	Path    string `json:"path"`
}

// ResultCache wraps an LRU cache with a persistence location on disk.
type ResultCache struct {
	mu   sync.Mutex
	lru  *LRUCache
	path string
}

// OpenResults opens (creating if needed) the result cache rooted at dir.
// Previously persisted results are loaded; a missing cache file is fine.
func OpenResults(dir string, maxEntries int) (*ResultCache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache dir %s: %w", dir, err)
	}

	rc := &ResultCache{
		lru:  New(Options{MaxSize: maxEntries}),
		path: filepath.Join(dir, DefaultCacheFile),
	}

	if err := LoadFromFile(rc.lru, rc.path); err != nil {
		return nil, fmt.Errorf("failed to load result cache: %w", err)
	}
	return rc, nil
}

// Get returns the cached result for a source hash.
func (rc *ResultCache) Get(sourceHash string) (*Result, bool) {
	return rc.lru.Get(sourceHash)
}

// Put stores a result under a source hash.
func (rc *ResultCache) Put(sourceHash string, r *Result) {
	if r.CreatedAt == 0 {
		r.CreatedAt = time.Now().Unix()
	}
	rc.lru.Set(sourceHash, r)
}

// Flush persists the cache to its backing file.
func (rc *ResultCache) Flush() error {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return PersistToFile(rc.lru, rc.path)
}

// Clear drops all cached results and removes the backing file.
func (rc *ResultCache) Clear() error {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	rc.lru.Clear()
	if err := os.Remove(rc.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove cache file: %w", err)
	}
	return nil
}

// Stats reports the current cache state.
func (rc *ResultCache) Stats() Stats {
	return Stats{
		Entries: rc.lru.Len(),
		Bytes:   rc.lru.CurrentBytes(),
		Path:    rc.path,
	}
}
