package roster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const snapshotKeyPrefix = "roster:snapshot:"

// SnapshotCache keeps a per-course roster snapshot in Redis so repeated
// roster reads during a session do not hit Postgres. Entries expire on their
// own; writers call Invalidate after any roster change.
type SnapshotCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewSnapshotCache(client redis.UniversalClient, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{client: client, ttl: ttl}
}

// Store replaces the cached snapshot for the course.
func (c *SnapshotCache) Store(ctx context.Context, courseID string, records []Record) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal roster snapshot for %s: %w", courseID, err)
	}
	if err := c.client.Set(ctx, snapshotKeyPrefix+courseID, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("store roster snapshot for %s: %w", courseID, err)
	}
	return nil
}

// Fetch returns the cached snapshot and whether one was present.
func (c *SnapshotCache) Fetch(ctx context.Context, courseID string) ([]Record, bool, error) {
	data, err := c.client.Get(ctx, snapshotKeyPrefix+courseID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("fetch roster snapshot for %s: %w", courseID, err)
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, false, fmt.Errorf("decode roster snapshot for %s: %w", courseID, err)
	}
	return records, true, nil
}

// Invalidate drops the cached snapshot for the course.
func (c *SnapshotCache) Invalidate(ctx context.Context, courseID string) error {
	if err := c.client.Del(ctx, snapshotKeyPrefix+courseID).Err(); err != nil {
		return fmt.Errorf("invalidate roster snapshot for %s: %w", courseID, err)
	}
	return nil
}
