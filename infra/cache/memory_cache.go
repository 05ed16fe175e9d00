package cache

import (
	"context"
	"sync"
	"time"

	"github.com/amirasaad/market/pkg/cache"
)

// MemoryTokenStore implements cache.TokenStore in process memory. Revocations
// are lost on restart and not shared between instances.
type MemoryTokenStore struct {
	revoked map[string]time.Time
	mu      sync.RWMutex
	stop    chan struct{}
	once    sync.Once
}

// NewMemoryTokenStore creates the store and starts a goroutine that drops
// expired entries every interval. Call Close to stop it.
func NewMemoryTokenStore(interval time.Duration) *MemoryTokenStore {
	s := &MemoryTokenStore{
		revoked: make(map[string]time.Time),
		stop:    make(chan struct{}),
	}
	go s.cleanup(interval)
	return s
}

func (s *MemoryTokenStore) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[tokenID] = time.Now().Add(ttl)
	return nil
}

func (s *MemoryTokenStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	expiresAt, ok := s.revoked[tokenID]
	return ok && time.Now().Before(expiresAt), nil
}

// Close stops the cleanup goroutine.
func (s *MemoryTokenStore) Close() error {
	s.once.Do(func() { close(s.stop) })
	return nil
}

func (s *MemoryTokenStore) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for id, expiresAt := range s.revoked {
				if now.After(expiresAt) {
					delete(s.revoked, id)
				}
			}
			s.mu.Unlock()
		}
	}
}

// size is the number of entries currently held, expired or not.
func (s *MemoryTokenStore) size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.revoked)
}

var _ cache.TokenStore = (*MemoryTokenStore)(nil)
