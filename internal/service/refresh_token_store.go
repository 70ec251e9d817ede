package service

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RefreshTokenStore persiste refresh tokens emitidos para que un flujo de
// intercambio externo pueda validarlos. La clave es el hash del token,
// nunca el token en claro; el valor es el claim set serializado que el
// intercambio necesita para reemitir un access token.
type RefreshTokenStore interface {
	Store(token, claimSet string, ttl time.Duration) error
	Exists(token string) (bool, error)
	Revoke(token string) error
}

func hashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawStdEncoding.EncodeToString(sum[:])
}

type memoryRefreshTokenStore struct {
	mu    sync.Mutex
	items map[string]time.Time
}

func NewMemoryRefreshTokenStore() RefreshTokenStore {
	return &memoryRefreshTokenStore{
		items: make(map[string]time.Time),
	}
}

func (s *memoryRefreshTokenStore) Store(token, _ string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if strings.TrimSpace(token) == "" {
		return nil
	}
	s.items[hashRefreshToken(token)] = time.Now().UTC().Add(ttl)
	return nil
}

func (s *memoryRefreshTokenStore) Exists(token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := hashRefreshToken(token)
	exp, ok := s.items[key]
	if !ok {
		return false, nil
	}
	if time.Now().UTC().After(exp) {
		delete(s.items, key)
		return false, nil
	}
	return true, nil
}

func (s *memoryRefreshTokenStore) Revoke(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, hashRefreshToken(token))
	return nil
}

// redisKVClient es el subconjunto de go-redis que usa el store.
type redisKVClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type redisRefreshTokenStore struct {
	client redisKVClient
	prefix string
}

func NewRedisRefreshTokenStore(client *redis.Client) RefreshTokenStore {
	if client == nil {
		return nil
	}
	return &redisRefreshTokenStore{
		client: client,
		prefix: "identity:refresh:",
	}
}

func (s *redisRefreshTokenStore) Store(token, claimSet string, ttl time.Duration) error {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	return s.client.Set(ctx, s.prefix+hashRefreshToken(token), claimSet, ttl).Err()
}

func (s *redisRefreshTokenStore) Exists(token string) (bool, error) {
	if strings.TrimSpace(token) == "" {
		return false, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	n, err := s.client.Exists(ctx, s.prefix+hashRefreshToken(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *redisRefreshTokenStore) Revoke(token string) error {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	return s.client.Del(ctx, s.prefix+hashRefreshToken(token)).Err()
}
