package cache

import (
	"sync"
	"time"
)

// KV is the storage contract the typed repositories in this package sit on.
type KV interface {
	Put(key string, v any)
	Get(key string) (any, bool)
	Delete(key string)
	Snapshot() map[string]any
}

type entry struct {
	v       any
	expires time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expires.IsZero() && now.After(e.expires)
}

// Cache is a single-map KV with an optional TTL. Expired keys disappear on read
// and are swept by a janitor running at half the TTL.
type Cache struct {
	mu   sync.RWMutex
	data map[string]entry

	ttl  time.Duration
	now  func() time.Time
	stop chan struct{}
	once sync.Once
}

type Option func(*Cache)

func WithTTL(ttl time.Duration) Option { return func(c *Cache) { c.ttl = ttl } }

func WithClock(now func() time.Time) Option { return func(c *Cache) { c.now = now } }

func NewCache(opts ...Option) *Cache {
	c := &Cache{
		data: make(map[string]entry),
		now:  time.Now,
		stop: make(chan struct{}),
	}
	for _, o := range opts {
		o(c)
	}
	if c.ttl > 0 {
		go janitor(c.ttl/2, c.stop, c.purge)
	}
	return c
}

func janitor(every time.Duration, stop <-chan struct{}, sweep func()) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			sweep()
		case <-stop:
			return
		}
	}
}

func (c *Cache) Close() {
	c.once.Do(func() { close(c.stop) })
}

func (c *Cache) Put(key string, v any) {
	e := entry{v: v}
	if c.ttl > 0 {
		e.expires = c.now().Add(c.ttl)
	}
	c.mu.Lock()
	c.data[key] = e
	c.mu.Unlock()
}

func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if e.expired(c.now()) {
		c.mu.Lock()
		if cur, ok := c.data[key]; ok && cur.expires.Equal(e.expires) {
			delete(c.data, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return e.v, true
}

func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.data, key)
	c.mu.Unlock()
}

func (c *Cache) Snapshot() map[string]any {
	now := c.now()
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]any, len(c.data))
	for k, e := range c.data {
		if !e.expired(now) {
			out[k] = e.v
		}
	}
	return out
}

func (c *Cache) purge() {
	now := c.now()
	c.mu.Lock()
	for k, e := range c.data {
		if e.expired(now) {
			delete(c.data, k)
		}
	}
	c.mu.Unlock()
}
