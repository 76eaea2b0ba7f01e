// Package cache provides an LRU cache for analysis results with disk
// persistence.
package cache

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Entry represents a cache entry with metadata.
type Entry struct {
	Key        string    `msgpack:"key"`
	Value      *Result   `msgpack:"value"`
	AccessedAt time.Time `msgpack:"accessed_at"`
	CreatedAt  time.Time `msgpack:"created_at"`
	Size       int       `msgpack:"size"` // estimated size in bytes
}

// LRUCache is an in-memory LRU cache of analysis results with optional
// disk persistence.
type LRUCache struct {
	mu           sync.RWMutex
	items        map[string]*listItem
	lru          *list // doubly-linked list (most recent at front)
	maxSize      int
	maxBytes     int64
	currentBytes int64
	onEvict      func(key string, value *Result)
}

// listItem is an item in the doubly-linked list.
type listItem struct {
	Entry
	prev *listItem
	next *listItem
}

// list is a doubly-linked list ordered by recency of access.
type list struct {
	head *listItem // most recently accessed
	tail *listItem // least recently accessed
	len  int
}

func newList() *list {
	return &list{}
}

// moveToFront moves an item to the front (most recently used).
func (l *list) moveToFront(item *listItem) {
	if item == l.head {
		return
	}

	if item.prev != nil {
		item.prev.next = item.next
	}
	if item.next != nil {
		item.next.prev = item.prev
	}
	if item == l.tail {
		l.tail = item.prev
	}

	item.prev = nil
	item.next = l.head
	if l.head != nil {
		l.head.prev = item
	}
	l.head = item

	if l.tail == nil {
		l.tail = item
	}
}

// removeBack removes and returns the least recently used item.
func (l *list) removeBack() *listItem {
	if l.tail == nil {
		return nil
	}

	item := l.tail
	l.tail = item.prev
	if l.tail != nil {
		l.tail.next = nil
	} else {
		l.head = nil
	}
	l.len--
	return item
}

// pushFront adds an item to the front of the list.
func (l *list) pushFront(item *listItem) {
	item.next = l.head
	item.prev = nil
	if l.head != nil {
		l.head.prev = item
	}
	l.head = item
	if l.tail == nil {
		l.tail = item
	}
	l.len++
}

// Options configures the LRU cache.
type Options struct {
	// MaxSize is the maximum number of entries.
	// 0 means unlimited.
	MaxSize int

	// MaxBytes is the approximate maximum size in bytes.
	// 0 means unlimited.
	MaxBytes int64

	// OnEvict is called when an entry is evicted.
	OnEvict func(key string, value *Result)
}

// New creates a new LRU cache with the given options.
func New(opts Options) *LRUCache {
	return &LRUCache{
		items:    make(map[string]*listItem),
		lru:      newList(),
		maxSize:  opts.MaxSize,
		maxBytes: opts.MaxBytes,
		onEvict:  opts.OnEvict,
	}
}

// Get retrieves a result from the cache.
func (c *LRUCache) Get(key string) (*Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, found := c.items[key]
	if !found {
		return nil, false
	}

	item.AccessedAt = time.Now()
	c.lru.moveToFront(item)
	return item.Value, true
}

// Set stores a result in the cache, evicting least recently used entries
// when a limit is exceeded.
func (c *LRUCache) Set(key string, value *Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	size := value.estimateSize()

	if item, exists := c.items[key]; exists {
		c.currentBytes -= int64(item.Size)
		item.Value = value
		item.Size = size
		item.AccessedAt = time.Now()
		c.currentBytes += int64(size)
		c.lru.moveToFront(item)
		c.evictIfNeeded()
		return
	}

	item := &listItem{
		Entry: Entry{
			Key:        key,
			Value:      value,
			AccessedAt: time.Now(),
			CreatedAt:  time.Now(),
			Size:       size,
		},
	}

	c.items[key] = item
	c.lru.pushFront(item)
	c.currentBytes += int64(size)

	c.evictIfNeeded()
}

// Delete removes a key from the cache.
func (c *LRUCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, found := c.items[key]
	if !found {
		return
	}

	if item.prev != nil {
		item.prev.next = item.next
	} else {
		c.lru.head = item.next
	}
	if item.next != nil {
		item.next.prev = item.prev
	} else {
		c.lru.tail = item.prev
	}
	c.lru.len--

	delete(c.items, key)
	c.currentBytes -= int64(item.Size)

	if c.onEvict != nil {
		c.onEvict(key, item.Value)
	}
}

// Clear removes all entries from the cache.
func (c *LRUCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*listItem)
	c.lru = newList()
	c.currentBytes = 0
}

// Len returns the number of entries in the cache.
func (c *LRUCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// CurrentBytes returns the approximate current size in bytes.
func (c *LRUCache) CurrentBytes() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentBytes
}

// evictIfNeeded evicts entries while the cache exceeds its limits.
func (c *LRUCache) evictIfNeeded() {
	for c.shouldEvict() {
		item := c.lru.removeBack()
		if item == nil {
			break
		}
		delete(c.items, item.Key)
		c.currentBytes -= int64(item.Size)

		if c.onEvict != nil {
			c.onEvict(item.Key, item.Value)
		}
	}
}

func (c *LRUCache) shouldEvict() bool {
	if c.maxSize > 0 && c.lru.len > c.maxSize {
		return true
	}
	if c.maxBytes > 0 && c.currentBytes >= c.maxBytes {
		return true
	}
	return false
}

// Save persists the cache to a writer using msgpack.
func (c *LRUCache) Save(w io.Writer) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entries := make([]Entry, 0, len(c.items))
	for item := c.lru.head; item != nil; item = item.next {
		entries = append(entries, item.Entry)
	}

	enc := msgpack.NewEncoder(w)
	return enc.Encode(entries)
}

// Load restores the cache from a reader using msgpack. Entries are
// restored in recency order.
func (c *LRUCache) Load(r io.Reader) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var entries []Entry
	dec := msgpack.NewDecoder(r)
	if err := dec.Decode(&entries); err != nil {
		return fmt.Errorf("failed to decode cache: %w", err)
	}

	c.items = make(map[string]*listItem)
	c.lru = newList()
	c.currentBytes = 0

	for i := len(entries) - 1; i >= 0; i-- {
		entry := entries[i]
		item := &listItem{Entry: entry}
		c.items[entry.Key] = item
		c.lru.pushFront(item)
		c.currentBytes += int64(entry.Size)
	}

	return nil
}

// PersistToFile saves the cache to a file.
func PersistToFile(c *LRUCache, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create cache file: %w", err)
	}
	defer f.Close()

	return c.Save(f)
}

// LoadFromFile loads the cache from a file. A missing file is not an
// error.
func LoadFromFile(c *LRUCache, path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open cache file: %w", err)
	}
	defer f.Close()

	return c.Load(f)
}
