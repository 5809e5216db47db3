package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"storefront/models"
	"storefront/utils"
)

var ErrSessionNotFound = errors.New("session not found")

// Session is one authenticated browser session: the user record plus the
// upstream token pair. The whole record is overwritten on profile refresh and
// deleted on logout.
type Session struct {
	ID           string             `json:"id"`
	User         models.SessionUser `json:"user"`
	AccessToken  string             `json:"accessToken"`
	RefreshToken string             `json:"refreshToken,omitempty"`
	CreatedAt    time.Time          `json:"createdAt"`
}

type SessionStore interface {
	Save(ctx context.Context, sess *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// NewSessionStore prefers Redis and falls back to process memory when the
// gateway runs without it.
func NewSessionStore(ttl time.Duration) SessionStore {
	if models.RedisClient != nil {
		return &redisSessionStore{client: models.RedisClient, ttl: ttl}
	}
	return newMemorySessionStore(ttl)
}

type redisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func sessionKey(id string) string { return "session:" + id }

func (s *redisSessionStore) Save(ctx context.Context, sess *Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(sess.ID), payload, s.ttl).Err()
}

func (s *redisSessionStore) Get(ctx context.Context, id string) (*Session, error) {
	payload, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var sess Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}

type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	expiry   map[string]time.Time
	ttl      time.Duration
}

func newMemorySessionStore(ttl time.Duration) *memorySessionStore {
	return &memorySessionStore{
		sessions: map[string]*Session{},
		expiry:   map[string]time.Time{},
		ttl:      ttl,
	}
}

func (s *memorySessionStore) Save(_ context.Context, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *sess
	s.sessions[sess.ID] = &copied
	s.expiry[sess.ID] = time.Now().Add(s.ttl)
	return nil
}

func (s *memorySessionStore) Get(_ context.Context, id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	deadline := s.expiry[id]
	s.mu.RUnlock()
	if !ok || time.Now().After(deadline) {
		return nil, ErrSessionNotFound
	}
	copied := *sess
	return &copied, nil
}

func (s *memorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	delete(s.expiry, id)
	return nil
}

type SessionService struct {
	store SessionStore
}

func NewSessionService(store SessionStore) *SessionService {
	return &SessionService{store: store}
}

// Create mints a new session and the gateway token the storefront carries on
// every subsequent request.
func (s *SessionService) Create(ctx context.Context, user models.SessionUser, accessToken, refreshToken string) (*Session, string, error) {
	sess := &Session{
		ID:           uuid.NewString(),
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		CreatedAt:    time.Now(),
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateSessionToken(sess.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return sess, token, nil
}

func (s *SessionService) Get(ctx context.Context, id string) (*Session, error) {
	return s.store.Get(ctx, id)
}

// ReplaceUser overwrites the stored user record wholesale, keeping the token
// pair.
func (s *SessionService) ReplaceUser(ctx context.Context, id string, user models.SessionUser) (*Session, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.User = user
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *SessionService) Destroy(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
