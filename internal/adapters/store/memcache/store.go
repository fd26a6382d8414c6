// Package memcache backs the location memory with an in-process cache.
package memcache

import (
	"github.com/patrickmn/go-cache"

	"github.com/bnema/wttrbot/internal/domain"
	"github.com/bnema/wttrbot/internal/ports"
)

// Store keeps each nick's last resolved query for the process lifetime.
// Entries never expire and are never evicted.
type Store struct {
	cache *cache.Cache
}

var _ ports.LocationStore = (*Store)(nil)

func New() *Store {
	// No default expiration, no janitor.
	return &Store{cache: cache.New(cache.NoExpiration, 0)}
}

func (s *Store) Get(nick string) (domain.Query, bool) {
	v, found := s.cache.Get(nick)
	if !found {
		return "", false
	}
	query, ok := v.(domain.Query)
	return query, ok
}

func (s *Store) Put(nick string, query domain.Query) {
	s.cache.Set(nick, query, cache.NoExpiration)
}
