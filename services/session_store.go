package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrSessionNotFound is returned when a session id has no stored state.
var ErrSessionNotFound = errors.New("session not found")

// Store keeps per-browser session state between requests.
type Store interface {
	Get(ctx context.Context, id string) (*SessionState, error)
	Save(ctx context.Context, id string, state *SessionState) error
	Delete(ctx context.Context, id string) error
}

// RedisStore keeps session state in Redis as JSON with a TTL, so an
// abandoned session expires on its own.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(id string) string { return "session:" + id }

func (s *RedisStore) Get(ctx context.Context, id string) (*SessionState, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodeState([]byte(data))
}

func (s *RedisStore) Save(ctx context.Context, id string, state *SessionState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(id), data, s.ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}

// MemoryStore keeps session state in process memory. Used when no Redis
// address is configured and in tests. States are stored serialized so the
// semantics match the Redis store exactly.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: map[string][]byte{}}
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*SessionState, error) {
	s.mu.Lock()
	data, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return decodeState(data)
}

func (s *MemoryStore) Save(ctx context.Context, id string, state *SessionState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.sessions[id] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

func decodeState(data []byte) (*SessionState, error) {
	var state SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	if state.Answers == nil {
		state.Answers = map[int]int{}
	}
	return &state, nil
}
