package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type mockRedisKVClient struct {
	lastSetKey string
	lastSetVal interface{}
	lastSetTTL time.Duration
	lastExists []string
	lastDel    []string

	setErr    error
	existsErr error
	existsN   int64
}

func (m *mockRedisKVClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	m.lastSetKey = key
	m.lastSetVal = value
	m.lastSetTTL = expiration
	cmd := redis.NewStatusCmd(ctx)
	if m.setErr != nil {
		cmd.SetErr(m.setErr)
		return cmd
	}
	cmd.SetVal("OK")
	return cmd
}

func (m *mockRedisKVClient) Exists(ctx context.Context, keys ...string) *redis.IntCmd {
	m.lastExists = keys
	cmd := redis.NewIntCmd(ctx)
	if m.existsErr != nil {
		cmd.SetErr(m.existsErr)
		return cmd
	}
	cmd.SetVal(m.existsN)
	return cmd
}

func (m *mockRedisKVClient) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	m.lastDel = keys
	cmd := redis.NewIntCmd(ctx)
	cmd.SetVal(1)
	return cmd
}

func TestMemoryRefreshTokenStore_Basics(t *testing.T) {
	store := NewMemoryRefreshTokenStore()

	ok, err := store.Exists("missing")
	if err != nil || ok {
		t.Fatalf("expected missing token false,nil; got %v,%v", ok, err)
	}

	if err := store.Store("tok-1", "acc-1", 50*time.Millisecond); err != nil {
		t.Fatalf("store failed: %v", err)
	}
	ok, err = store.Exists("tok-1")
	if err != nil || !ok {
		t.Fatalf("expected token exists, got %v,%v", ok, err)
	}

	time.Sleep(70 * time.Millisecond)
	ok, err = store.Exists("tok-1")
	if err != nil || ok {
		t.Fatalf("expected token expired, got %v,%v", ok, err)
	}
}

func TestMemoryRefreshTokenStore_RevokeAndEmptyToken(t *testing.T) {
	store := NewMemoryRefreshTokenStore()
	if err := store.Store("", "acc-1", time.Minute); err != nil {
		t.Fatalf("empty token store should be no-op, got %v", err)
	}
	if err := store.Store("tok-2", "acc-1", time.Minute); err != nil {
		t.Fatalf("store failed: %v", err)
	}
	if err := store.Revoke("tok-2"); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	ok, err := store.Exists("tok-2")
	if err != nil || ok {
		t.Fatalf("expected revoked token absent, got %v,%v", ok, err)
	}
}

func TestRedisRefreshTokenStore_HashesKeys(t *testing.T) {
	mock := &mockRedisKVClient{existsN: 1}
	store := &redisRefreshTokenStore{
		client: mock,
		prefix: "identity:refresh:",
	}

	if err := store.Store("tok-1", "acc-1", time.Minute); err != nil {
		t.Fatalf("store failed: %v", err)
	}
	if !strings.HasPrefix(mock.lastSetKey, "identity:refresh:") {
		t.Fatalf("unexpected key prefix: %q", mock.lastSetKey)
	}
	if strings.Contains(mock.lastSetKey, "tok-1") {
		t.Fatalf("raw token must never reach redis: %q", mock.lastSetKey)
	}
	if mock.lastSetVal != "acc-1" {
		t.Fatalf("unexpected value: %v", mock.lastSetVal)
	}
	if mock.lastSetTTL != time.Minute {
		t.Fatalf("unexpected TTL: %v", mock.lastSetTTL)
	}

	ok, err := store.Exists("tok-1")
	if err != nil || !ok {
		t.Fatalf("expected exists true,nil; got %v,%v", ok, err)
	}
	if len(mock.lastExists) != 1 || mock.lastExists[0] != mock.lastSetKey {
		t.Fatalf("exists must use the same hashed key: %+v", mock.lastExists)
	}

	if err := store.Revoke("tok-1"); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	if len(mock.lastDel) != 1 || mock.lastDel[0] != mock.lastSetKey {
		t.Fatalf("del must use the same hashed key: %+v", mock.lastDel)
	}
}

func TestRedisRefreshTokenStore_ErrorsAndEmptyToken(t *testing.T) {
	mock := &mockRedisKVClient{
		setErr:    errors.New("set failed"),
		existsErr: errors.New("exists failed"),
	}
	store := &redisRefreshTokenStore{
		client: mock,
		prefix: "identity:refresh:",
	}

	if err := store.Store("tok-1", "acc-1", time.Minute); err == nil {
		t.Fatalf("expected set error")
	}
	if _, err := store.Exists("tok-1"); err == nil {
		t.Fatalf("expected exists error")
	}

	if err := store.Store("   ", "acc-1", time.Minute); err != nil {
		t.Fatalf("blank token store should be no-op, got %v", err)
	}
	if ok, err := store.Exists("   "); err != nil || ok {
		t.Fatalf("blank token exists should be false,nil; got %v,%v", ok, err)
	}
	if err := store.Revoke("   "); err != nil {
		t.Fatalf("blank token revoke should be no-op, got %v", err)
	}
}
