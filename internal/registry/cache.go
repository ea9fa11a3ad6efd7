package registry

import (
	"sync"

	"github.com/rs/zerolog/log"
)

type entry struct {
	data  any
	tags  []Tag
	stale bool
}

// KeySub delivers a signal on C whenever the subscribed cache key is
// invalidated or the cache is reset.
type KeySub struct {
	C   chan struct{}
	key string
}

// Cache is the in-memory store for query results and their tag bookkeeping.
// Invalidation marks entries stale rather than evicting them: a stale entry
// is ignored by reads but its subscribers are told to refetch. Concurrent
// refetches race and the last response to land wins; the cache is eventually
// consistent by design.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
	subs    map[string]map[*KeySub]bool
}

func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]*entry),
		subs:    make(map[string]map[*KeySub]bool),
	}
}

// Put stores data under key with its providing tags, clearing any stale mark.
func (c *Cache) Put(key string, data any, tags []Tag) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = &entry{data: data, tags: tags}
}

// Get returns the cached value for key. The second return is false when the
// key is absent or stale.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || e.stale {
		return nil, false
	}
	return e.data, true
}

// Invalidate marks every entry carrying any of the given tags stale and
// notifies its subscribers.
func (c *Cache) Invalidate(tags ...Tag) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, e := range c.entries {
		if e.stale || !carriesAny(e.tags, tags) {
			continue
		}
		e.stale = true
		c.notifyLocked(key)
	}
}

// Reset drops every entry and notifies every subscriber. Used on session
// teardown: no consumer may keep reading a cache entry created before it.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*entry)
	for key := range c.subs {
		c.notifyLocked(key)
	}
	log.Debug().Msg("registry: cache reset")
}

// Subscribe registers interest in invalidations of key.
func (c *Cache) Subscribe(key string) *KeySub {
	c.mu.Lock()
	defer c.mu.Unlock()

	sub := &KeySub{C: make(chan struct{}, 1), key: key}
	if c.subs[key] == nil {
		c.subs[key] = make(map[*KeySub]bool)
	}
	c.subs[key][sub] = true
	return sub
}

func (c *Cache) Unsubscribe(sub *KeySub) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if subs, ok := c.subs[sub.key]; ok {
		delete(subs, sub)
		if len(subs) == 0 {
			delete(c.subs, sub.key)
		}
	}
}

func (c *Cache) notifyLocked(key string) {
	for sub := range c.subs[key] {
		select {
		case sub.C <- struct{}{}:
		default:
			// A pending signal already queues a refetch.
		}
	}
}

func carriesAny(have, want []Tag) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}
