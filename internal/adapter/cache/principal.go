// Package cache provides in-process caches for resolved auth principals.
package cache

import (
	"encoding/hex"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/crypto/blake2b"

	"github.com/pathpiper/pathpiper-backend/internal/domain"
)

// PrincipalCache maps access tokens to resolved principals.
// It is bounded by size and entries live for ttl, or until the token
// itself expires if that comes first. Raw tokens are never stored: keys
// are BLAKE2b-256 digests.
type PrincipalCache struct {
	lru *expirable.LRU[string, entry]
	now func() time.Time
}

type entry struct {
	principal domain.Principal
	expiresAt time.Time // zero when the token has no exp
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// NewPrincipalCache creates a cache holding at most size entries for ttl each.
func NewPrincipalCache(size int, ttl time.Duration) *PrincipalCache {
	return &PrincipalCache{
		lru: expirable.NewLRU[string, entry](size, nil, ttl),
		now: time.Now,
	}
}

// Get returns the cached principal for token. An entry whose token has
// expired is dropped and reported as a miss.
func (c *PrincipalCache) Get(token string) (domain.Principal, bool) {
	k := key(token)
	e, ok := c.lru.Get(k)
	if !ok {
		return domain.Principal{}, false
	}
	if e.expired(c.now()) {
		c.lru.Remove(k)
		return domain.Principal{}, false
	}
	return e.principal, true
}

// Add caches the principal for token until min(ttl, expiresAt). Tokens that
// are already expired are not cached.
func (c *PrincipalCache) Add(token string, p domain.Principal, expiresAt time.Time) {
	e := entry{principal: p, expiresAt: expiresAt}
	if e.expired(c.now()) {
		return
	}
	c.lru.Add(key(token), e)
}

// Invalidate drops the entry for token, if any.
func (c *PrincipalCache) Invalidate(token string) {
	c.lru.Remove(key(token))
}

// Len returns the number of live entries.
func (c *PrincipalCache) Len() int {
	return c.lru.Len()
}

func key(token string) string {
	sum := blake2b.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
