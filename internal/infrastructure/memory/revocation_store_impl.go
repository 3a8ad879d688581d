package memory

import (
	"context"
	"sync"
	"time"

	"github.com/oksasatya/wil-portal/internal/domain/repository"
)

// RevocationStore is the single-process fallback used when Redis is not
// configured. Entries are purged lazily once their expiry passes.
type RevocationStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewRevocationStore() *RevocationStore {
	return &RevocationStore{revoked: make(map[string]time.Time), now: time.Now}
}

func (s *RevocationStore) Revoke(_ context.Context, tokenID string, until time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()
	if until.After(s.now()) {
		s.revoked[tokenID] = until
	}
	return nil
}

func (s *RevocationStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	until, ok := s.revoked[tokenID]
	if !ok {
		return false, nil
	}
	if !until.After(s.now()) {
		delete(s.revoked, tokenID)
		return false, nil
	}
	return true, nil
}

func (s *RevocationStore) purgeLocked() {
	now := s.now()
	for id, until := range s.revoked {
		if !until.After(now) {
			delete(s.revoked, id)
		}
	}
}

var _ repository.RevocationStore = (*RevocationStore)(nil)
