// SPDX-License-Identifier: LGPL-3.0-or-later

package identity

import (
	"container/list"
	"crypto/ed25519"
)

// lruKeyCache memoizes base64-encoded public keys to their decoded form,
// per spec.md section 4.1 "bounded keyCache". Not safe for concurrent use;
// callers serialize access (see Identity.mu).
type lruKeyCache struct {
	capacity int
	entries  map[string]*list.Element
	order    *list.List
}

type lruEntry struct {
	key   string
	value ed25519.PublicKey
}

func newLRUKeyCache(capacity int) *lruKeyCache {
	return &lruKeyCache{
		capacity: capacity,
		entries:  make(map[string]*list.Element, capacity),
		order:    list.New(),
	}
}

func (c *lruKeyCache) get(key string) (ed25519.PublicKey, bool) {
	el, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*lruEntry).value, true
}

func (c *lruKeyCache) put(key string, value ed25519.PublicKey) {
	if el, ok := c.entries[key]; ok {
		el.Value.(*lruEntry).value = value
		c.order.MoveToFront(el)
		return
	}
	el := c.order.PushFront(&lruEntry{key: key, value: value})
	c.entries[key] = el
	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*lruEntry).key)
		}
	}
}
