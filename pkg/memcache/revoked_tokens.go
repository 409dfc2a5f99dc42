package mem

import (
	"sync"
	"time"
)

// RevokedTokenStore remembers logged-out tokens until they would have expired
// anyway.
type RevokedTokenStore interface {
	Revoke(token string, ttl time.Duration)

	// IsRevoked reports whether token was revoked and the revocation is still live.
	IsRevoked(token string) bool

	// Sweep drops expired entries and returns how many were removed.
	Sweep() int
}

type RevokedTokens struct {
	mu   sync.RWMutex
	data map[string]time.Time
	now  func() time.Time
}

func NewRevokedTokens() *RevokedTokens {
	return &RevokedTokens{
		data: make(map[string]time.Time),
		now:  time.Now,
	}
}

func (s *RevokedTokens) Revoke(token string, ttl time.Duration) {
	if token == "" || ttl <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[token] = s.now().Add(ttl)
}

func (s *RevokedTokens) IsRevoked(token string) bool {
	s.mu.RLock()
	expiresAt, ok := s.data[token]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	if s.now().After(expiresAt) {
		s.mu.Lock()
		delete(s.data, token)
		s.mu.Unlock()
		return false
	}
	return true
}

func (s *RevokedTokens) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for token, expiresAt := range s.data {
		if now.After(expiresAt) {
			delete(s.data, token)
			removed++
		}
	}
	return removed
}
