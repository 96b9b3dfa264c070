// Package session stores login sessions as explicit records with explicit
// expiry, backed by Redis. This replaces what the old agenda kept as an
// ambient "internal_auth" flag in browser storage.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned for unknown, revoked or expired session tokens.
var ErrNotFound = errors.New("session not found")

// Session is one refresh-token session.
type Session struct {
	Token     string    `json:"token"`
	UserID    uint      `json:"user_id"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Store struct {
	client *redis.Client
}

// NewClient connects to REDIS_ADDR (default localhost:6379) and verifies the
// connection.
func NewClient() (*redis.Client, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

func key(token string) string {
	return "session:" + token
}

// Save stores the session with a TTL matching its expiry.
func (s *Store) Save(ctx context.Context, sess Session) error {
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return errors.New("session already expired")
	}

	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key(sess.Token), payload, ttl).Err()
}

// Get returns the session for token, or ErrNotFound once it expired or was
// revoked.
func (s *Store) Get(ctx context.Context, token string) (*Session, error) {
	payload, err := s.client.Get(ctx, key(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return nil, err
	}
	if time.Now().After(sess.ExpiresAt) {
		return nil, ErrNotFound
	}
	return &sess, nil
}

// Revoke deletes the session. Revoking an unknown token is a no-op.
func (s *Store) Revoke(ctx context.Context, token string) error {
	return s.client.Del(ctx, key(token)).Err()
}
