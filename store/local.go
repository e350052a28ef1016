package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/silvergames/braingym/daily"
)

// localTTL keeps the cache copy around long enough to bridge a remote outage
// across a day boundary, then lets it expire.
const localTTL = 48 * time.Hour

// Local keeps a per-user JSON blob in redis, keyed with the user id suffix so
// records never bleed between accounts.
type Local struct {
	rdb *redis.Client
}

// NewLocal creates the cache store.
func NewLocal(rdb *redis.Client) *Local {
	return &Local{rdb: rdb}
}

func localKey(userID uint) string {
	return fmt.Sprintf("daily:progress:%d", userID)
}

// LoadLocal returns the cached record or nil on a miss.
func (l *Local) LoadLocal(ctx context.Context, userID uint) (*daily.Record, error) {
	b, err := l.rdb.Get(ctx, localKey(userID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("load cached progress: %w", err)
	}
	var rec daily.Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, fmt.Errorf("decode cached progress: %w", err)
	}
	return &rec, nil
}

// SaveLocal stores the record with the cache TTL.
func (l *Local) SaveLocal(ctx context.Context, userID uint, rec daily.Record) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode cached progress: %w", err)
	}
	if err := l.rdb.Set(ctx, localKey(userID), b, localTTL).Err(); err != nil {
		return fmt.Errorf("save cached progress: %w", err)
	}
	return nil
}
