package cache

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tokflow/tokflow/pkg/cfg"
	"github.com/tokflow/tokflow/pkg/paths"
)

func testResult(labels ...string) *Result {
	return &Result{
		Labels:     labels,
		Nodes:      labels,
		Edges:      []cfg.Edge{{From: "start", To: "end"}},
		Paths:      []paths.Path{{"start", "end"}},
		Complexity: 1,
	}
}

func TestLRUCache_Basic(t *testing.T) {
	c := New(Options{MaxSize: 3})

	c.Set("a", testResult("start", "if1", "end"))
	c.Set("b", testResult("start", "while1", "end"))
	c.Set("c", testResult("start", "end"))

	assert.Equal(t, 3, c.Len())

	val, found := c.Get("a")
	require.True(t, found)
	assert.Equal(t, []string{"start", "if1", "end"}, val.Labels)

	val, found = c.Get("b")
	require.True(t, found)
	assert.Equal(t, []string{"start", "while1", "end"}, val.Labels)
}

func TestLRUCache_LRU_Eviction(t *testing.T) {
	c := New(Options{MaxSize: 3})

	c.Set("a", testResult("start", "end"))
	c.Set("b", testResult("start", "end"))
	c.Set("c", testResult("start", "end"))

	// Access 'a' to make it most recently used
	c.Get("a")

	// Add new item - should evict 'b' (least recently used)
	c.Set("d", testResult("start", "end"))

	assert.Equal(t, 3, c.Len())

	_, found := c.Get("b")
	assert.False(t, found, "b should have been evicted")

	_, found = c.Get("a")
	assert.True(t, found, "a should still be present")

	_, found = c.Get("c")
	assert.True(t, found, "c should still be present")

	_, found = c.Get("d")
	assert.True(t, found, "d should be present")
}

func TestLRUCache_Delete(t *testing.T) {
	c := New(Options{MaxSize: 10})

	c.Set("a", testResult("start", "end"))
	c.Delete("a")

	assert.Equal(t, 0, c.Len())
	_, found := c.Get("a")
	assert.False(t, found)
}

func TestLRUCache_Clear(t *testing.T) {
	c := New(Options{MaxSize: 10})

	c.Set("a", testResult("start", "end"))
	c.Set("b", testResult("start", "end"))
	c.Clear()

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, int64(0), c.CurrentBytes())
}

func TestLRUCache_SaveLoad(t *testing.T) {
	c := New(Options{MaxSize: 10})
	c.Set("a", testResult("start", "if1", "ifexp1", "end"))
	c.Set("b", testResult("start", "end"))

	var buf bytes.Buffer
	require.NoError(t, c.Save(&buf))

	restored := New(Options{MaxSize: 10})
	require.NoError(t, restored.Load(&buf))

	assert.Equal(t, 2, restored.Len())

	val, found := restored.Get("a")
	require.True(t, found)
	assert.Equal(t, []string{"start", "if1", "ifexp1", "end"}, val.Labels)
	assert.Equal(t, []cfg.Edge{{From: "start", To: "end"}}, val.Edges)
	assert.Equal(t, []paths.Path{{"start", "end"}}, val.Paths)
}

func TestHashSource(t *testing.T) {
	h1 := HashSource("if x:\n    print(x)\n")
	h2 := HashSource("if x:\n    print(x)\n")
	h3 := HashSource("if y:\n    print(y)\n")

	assert.Equal(t, h1, h2, "identical source must hash identically")
	assert.NotEqual(t, h1, h3, "different source must hash differently")
	assert.Len(t, h1, 64)
}

func TestResultCache_Roundtrip(t *testing.T) {
	dir := t.TempDir()

	rc, err := OpenResults(dir, 16)
	require.NoError(t, err)

	key := HashSource("while x:\n    print(x)\n")
	rc.Put(key, testResult("start", "while1", "end"))
	require.NoError(t, rc.Flush())

	// Reopen from disk
	rc2, err := OpenResults(dir, 16)
	require.NoError(t, err)

	val, found := rc2.Get(key)
	require.True(t, found)
	assert.Equal(t, []string{"start", "while1", "end"}, val.Labels)

	stats := rc2.Stats()
	assert.Equal(t, 1, stats.Entries)
	assert.Equal(t, filepath.Join(dir, DefaultCacheFile), stats.Path)
}

func TestResultCache_Clear(t *testing.T) {
	dir := t.TempDir()

	rc, err := OpenResults(dir, 16)
	require.NoError(t, err)

	rc.Put(HashSource("x = 1\n"), testResult("start", "end"))
	require.NoError(t, rc.Flush())
	require.NoError(t, rc.Clear())

	assert.Equal(t, 0, rc.Stats().Entries)

	// Reopening after clear starts empty
	rc2, err := OpenResults(dir, 16)
	require.NoError(t, err)
	assert.Equal(t, 0, rc2.Stats().Entries)
}
