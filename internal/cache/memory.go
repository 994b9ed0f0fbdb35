package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

type entryKey struct {
	ns  Namespace
	key string
}

type memoryEntry struct {
	key       entryKey
	value     []byte
	expiresAt time.Time
}

// MemoryBackend is a thread-safe LRU with per-entry expiry. It never fails.
type MemoryBackend struct {
	mu       sync.Mutex
	capacity int
	cache    map[entryKey]*list.Element
	order    *list.List
	now      func() time.Time
}

var _ Backend = (*MemoryBackend)(nil)

// NewMemoryBackend creates an LRU holding at most capacity entries.
func NewMemoryBackend(capacity int) *MemoryBackend {
	return &MemoryBackend{
		capacity: capacity,
		cache:    make(map[entryKey]*list.Element),
		order:    list.New(),
		now:      time.Now,
	}
}

func (c *MemoryBackend) Get(_ context.Context, ns Namespace, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, exists := c.cache[entryKey{ns, key}]
	if !exists {
		return nil, false, nil
	}

	entry := elem.Value.(*memoryEntry)
	if !c.now().Before(entry.expiresAt) {
		c.remove(elem)
		return nil, false, nil
	}

	c.order.MoveToFront(elem)
	return append([]byte(nil), entry.value...), true, nil
}

func (c *MemoryBackend) Set(_ context.Context, ns Namespace, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	k := entryKey{ns, key}
	expiresAt := c.now().Add(ttl)
	stored := append([]byte(nil), value...)

	if elem, exists := c.cache[k]; exists {
		c.order.MoveToFront(elem)
		entry := elem.Value.(*memoryEntry)
		entry.value = stored
		entry.expiresAt = expiresAt
		return nil
	}

	if c.order.Len() >= c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			c.remove(oldest)
		}
	}

	elem := c.order.PushFront(&memoryEntry{key: k, value: stored, expiresAt: expiresAt})
	c.cache[k] = elem
	return nil
}

func (c *MemoryBackend) EvictNamespace(_ context.Context, ns Namespace) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for k, elem := range c.cache {
		if k.ns == ns {
			c.remove(elem)
		}
	}
	return nil
}

func (c *MemoryBackend) EvictAll(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache = make(map[entryKey]*list.Element)
	c.order = list.New()
	return nil
}

func (c *MemoryBackend) Close() error { return nil }

// Len returns the number of stored entries, expired or not.
func (c *MemoryBackend) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// remove must be called with mu held.
func (c *MemoryBackend) remove(elem *list.Element) {
	entry := elem.Value.(*memoryEntry)
	delete(c.cache, entry.key)
	c.order.Remove(elem)
}
