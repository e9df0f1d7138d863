package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// ErrSessionNotFound is returned when a session id has no live record.
var ErrSessionNotFound = errors.New("session not found")

// SessionData is the identity payload a session resolves to.
type SessionData struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
}

// SessionStoreInterface defines server-side session operations. The store is
// authoritative: deleting a record ends the session even while the cookie
// token is still signature-valid.
type SessionStoreInterface interface {
	Create(ctx context.Context, userID uint, username string) (sessionID string, err error)
	Get(ctx context.Context, sessionID string) (*SessionData, error)
	Delete(ctx context.Context, sessionID string) error
}

// SessionStore keeps sessions in Redis with a TTL. Unlike the fail-safe
// cache wrapper, errors here are real: a session write that did not happen
// must not look like one that did.
type SessionStore struct {
	client *redis.Client
}

var _ SessionStoreInterface = (*SessionStore)(nil)

// NewSessionStore creates a Redis-backed session store.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Create stores a new session and returns its opaque id.
func (s *SessionStore) Create(ctx context.Context, userID uint, username string) (string, error) {
	sessionID := uuid.New().String()
	payload, err := json.Marshal(SessionData{UserID: userID, Username: username})
	if err != nil {
		return "", fmt.Errorf("marshal session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKeyPrefix+sessionID, payload, SessionTTL).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return sessionID, nil
}

// Get resolves a session id to its identity payload.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (*SessionData, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Bytes()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	var sd SessionData
	if err := json.Unmarshal(data, &sd); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &sd, nil
}

// Delete removes a session. Deleting an absent session is not an error so
// logout stays idempotent.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
