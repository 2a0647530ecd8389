// Package registry holds the process-wide mapping from issued refresh tokens
// to user ids. Entries live as long as the refresh token they mirror: they
// expire with it, are revoked on logout, and the map is capped so a long-lived
// process cannot grow without bound.
package registry

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/CasualJavaUser/FlashcardApi/internal/auth/domain"
)

var _ domain.RefreshTokenRegistry = (*InMemoryRegistry)(nil)

const defaultSweepInterval = 5 * time.Minute

type entry struct {
	id        string
	userID    int64
	expiresAt time.Time
}

type InMemoryRegistry struct {
	mu         sync.RWMutex
	tokens     map[string]entry
	ttl        time.Duration
	maxEntries int

	now  func() time.Time
	done chan struct{}
	once sync.Once
}

func NewInMemoryRegistry(ttl time.Duration, maxEntries int) *InMemoryRegistry {
	if maxEntries <= 0 {
		maxEntries = 10000
	}

	r := &InMemoryRegistry{
		tokens:     make(map[string]entry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
		done:       make(chan struct{}),
	}

	go r.sweep(defaultSweepInterval)

	return r
}

// WithNow replaces the clock, for deterministic tests.
func (r *InMemoryRegistry) WithNow(now func() time.Time) *InMemoryRegistry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = now
	return r
}

// Save records the token for the given user, overwriting any previous entry.
// When the registry is full, the entry closest to expiry is evicted to make
// room.
func (r *InMemoryRegistry) Save(token string, userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tokens[token]; !ok && len(r.tokens) >= r.maxEntries {
		r.evictOldestLocked()
	}

	r.tokens[token] = entry{
		id:        uuid.NewString(),
		userID:    userID,
		expiresAt: r.now().Add(r.ttl),
	}
}

// FindID returns the user id the token was issued for. Expired entries are
// treated as absent and dropped.
func (r *InMemoryRegistry) FindID(token string) (int64, bool) {
	r.mu.RLock()
	e, ok := r.tokens[token]
	now := r.now()
	r.mu.RUnlock()

	if !ok {
		return 0, false
	}

	if now.After(e.expiresAt) {
		r.mu.Lock()
		if cur, ok := r.tokens[token]; ok && cur.id == e.id {
			delete(r.tokens, token)
		}
		r.mu.Unlock()

		return 0, false
	}

	return e.userID, true
}

// Revoke drops the token. Revoking an unknown token is a no-op.
func (r *InMemoryRegistry) Revoke(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, token)
}

// Len reports the number of live entries, counting ones not yet swept.
func (r *InMemoryRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tokens)
}

// Close stops the background sweeper.
func (r *InMemoryRegistry) Close() {
	r.once.Do(func() { close(r.done) })
}

func (r *InMemoryRegistry) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.done:
			return
		case <-ticker.C:
			r.removeExpired()
		}
	}
}

func (r *InMemoryRegistry) removeExpired() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for token, e := range r.tokens {
		if now.After(e.expiresAt) {
			delete(r.tokens, token)
		}
	}
}

func (r *InMemoryRegistry) evictOldestLocked() {
	var oldestToken string
	var oldestExpiry time.Time

	for token, e := range r.tokens {
		if oldestToken == "" || e.expiresAt.Before(oldestExpiry) {
			oldestToken = token
			oldestExpiry = e.expiresAt
		}
	}

	if oldestToken != "" {
		delete(r.tokens, oldestToken)
	}
}
