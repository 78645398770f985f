package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/withoutsultang/Interview-agent-aivle/internal/interview"
	"github.com/withoutsultang/Interview-agent-aivle/models"
)

const sessionKeyPrefix = "interview:session:"

// Conn opens and pings a redis client.
func Conn(ctx context.Context, host, port, pass string, db int, timeout time.Duration) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        fmt.Sprintf("%s:%s", host, port),
		DialTimeout: timeout,
		Password:    pass,
		DB:          db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}

// Store keeps JSON session snapshots in redis, one key per session, expiring
// with the configured TTL.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a redis-backed session store.
func New(client *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Store{client: client, ttl: ttl}
}

func (s *Store) Create(ctx context.Context, st *interview.State) error {
	if st.ID == "" {
		st.ID = uuid.NewString()
	}
	return s.put(ctx, st)
}

func (s *Store) Get(ctx context.Context, id string) (*interview.State, error) {
	val, err := s.client.Get(ctx, sessionKeyPrefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, models.ErrSessionNotFound
		}
		return nil, err
	}

	var st interview.State
	if err := json.Unmarshal([]byte(val), &st); err != nil {
		return nil, fmt.Errorf("corrupt session snapshot: %w", err)
	}
	return &st, nil
}

func (s *Store) Save(ctx context.Context, st *interview.State) error {
	return s.put(ctx, st)
}

func (s *Store) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKeyPrefix+id).Err()
}

func (s *Store) put(ctx context.Context, st *interview.State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKeyPrefix+st.ID, data, s.ttl).Err()
}
