package fonts

import (
	"container/list"
	"hash/fnv"
	"sync"
	"sync/atomic"
)

// DefaultFaceCacheSize is the number of loaded faces a registry keeps.
const DefaultFaceCacheSize = 32

// CacheStats reports face cache activity.
type CacheStats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// HitRate returns hits / (hits + misses), or 0 before the first lookup.
func (s CacheStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

type faceKey struct {
	backend string
	sum     uint64
	size    int
}

func newFaceKey(backend string, data []byte) faceKey {
	h := fnv.New64a()
	_, _ = h.Write(data) // fnv.Write never returns an error
	return faceKey{backend: backend, sum: h.Sum64(), size: len(data)}
}

// faceCache is an LRU of loaded faces keyed by backend and font data.
type faceCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[faceKey]*list.Element
	lru      *list.List // front is most recent; values are *faceEntry

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type faceEntry struct {
	key  faceKey
	face Face
}

func newFaceCache(capacity int) *faceCache {
	if capacity <= 0 {
		capacity = DefaultFaceCacheSize
	}
	return &faceCache{
		capacity: capacity,
		entries:  make(map[faceKey]*list.Element),
		lru:      list.New(),
	}
}

// getOrLoad returns the cached face for key or calls load. Failed loads
// are not cached. load runs without the lock held, so two concurrent
// misses for one key may both load; the first stored face wins.
func (c *faceCache) getOrLoad(key faceKey, load func() (Face, error)) (Face, error) {
	c.mu.Lock()
	if el, ok := c.entries[key]; ok {
		c.lru.MoveToFront(el)
		face := el.Value.(*faceEntry).face
		c.mu.Unlock()
		c.hits.Add(1)
		return face, nil
	}
	c.mu.Unlock()
	c.misses.Add(1)

	face, err := load()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.entries[key]; ok {
		c.lru.MoveToFront(el)
		return el.Value.(*faceEntry).face, nil
	}
	for c.lru.Len() >= c.capacity {
		oldest := c.lru.Back()
		c.lru.Remove(oldest)
		delete(c.entries, oldest.Value.(*faceEntry).key)
		c.evictions.Add(1)
	}
	c.entries[key] = c.lru.PushFront(&faceEntry{key: key, face: face})
	return face, nil
}

func (c *faceCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[faceKey]*list.Element)
	c.lru.Init()
}

func (c *faceCache) stats() CacheStats {
	c.mu.Lock()
	n := c.lru.Len()
	c.mu.Unlock()
	return CacheStats{
		Len:       n,
		Capacity:  c.capacity,
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}
