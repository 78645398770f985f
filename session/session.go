package session

import (
	"context"
	"fmt"
	"time"

	"github.com/withoutsultang/Interview-agent-aivle/config"
	"github.com/withoutsultang/Interview-agent-aivle/internal/interview"
	"github.com/withoutsultang/Interview-agent-aivle/session/inmemory"
	"github.com/withoutsultang/Interview-agent-aivle/session/redisstore"
)

// Store parks interview state between turns so a surface can resume a
// session on the next request. Core correctness does not depend on it;
// losing a snapshot loses only resumability.
type Store interface {
	// Create assigns an id to the state (when empty) and stores it.
	Create(ctx context.Context, st *interview.State) error
	// Get loads a snapshot, or models.ErrSessionNotFound.
	Get(ctx context.Context, id string) (*interview.State, error)
	// Save overwrites an existing snapshot and refreshes its TTL.
	Save(ctx context.Context, st *interview.State) error
	// Delete discards a snapshot. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error
}

// NewStore creates the configured session store.
func NewStore(ctx context.Context, cfg config.StorageConfig, ttl time.Duration) (Store, error) {
	switch cfg.Store {
	case "", "inmemory":
		return inmemory.New(ttl), nil
	case "redis":
		client, err := redisstore.Conn(ctx, cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.Timeout)
		if err != nil {
			return nil, fmt.Errorf("redis session store: %w", err)
		}
		return redisstore.New(client, ttl), nil
	default:
		return nil, fmt.Errorf("unsupported session store type: %s", cfg.Store)
	}
}
