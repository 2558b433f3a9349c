// Package session maps gateway session ids to record-store credentials in
// redis. Logging out or an upstream 401 deletes the mapping.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrNotFound = errors.New("session not found")

type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func (s *Store) key(jti string) string { return "adminsession:" + jti }

// Save binds jti to the record store's opaque token for the session TTL.
func (s *Store) Save(ctx context.Context, jti, upstreamToken string) error {
	return s.rdb.Set(ctx, s.key(jti), upstreamToken, s.ttl).Err()
}

// Get returns the record-store token for jti, or ErrNotFound once the
// session expired or was deleted.
func (s *Store) Get(ctx context.Context, jti string) (string, error) {
	token, err := s.rdb.Get(ctx, s.key(jti)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", err
	}
	return token, nil
}

func (s *Store) Delete(ctx context.Context, jti string) error {
	return s.rdb.Del(ctx, s.key(jti)).Err()
}
