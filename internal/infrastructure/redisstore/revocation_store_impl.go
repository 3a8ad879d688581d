package redisstore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/wil-portal/internal/domain/repository"
)

func keyRevokedToken(jti string) string { return "auth:revoked:" + jti }

// RevocationStore shares revoked token ids across API instances. Keys carry
// a TTL equal to the remaining token lifetime, so Redis expires them itself.
type RevocationStore struct {
	rdb *redis.Client
	now func() time.Time
}

func NewRevocationStore(rdb *redis.Client) *RevocationStore {
	return &RevocationStore{rdb: rdb, now: time.Now}
}

func (s *RevocationStore) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := until.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	return s.rdb.Set(ctx, keyRevokedToken(tokenID), "1", ttl).Err()
}

func (s *RevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.rdb.Exists(ctx, keyRevokedToken(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

var _ repository.RevocationStore = (*RevocationStore)(nil)
