package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/aaronzipp/find-the-imposter/internal/game"
	"github.com/aaronzipp/find-the-imposter/internal/models"
)

const redisKeyPrefix = "imposter:room:"

// RedisPersister stores one JSON snapshot per room. Keys expire after ttl so
// abandoned rooms disappear even if the sweeper never runs.
type RedisPersister struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisPersister connects to url and verifies the connection
func NewRedisPersister(ctx context.Context, url string, ttl time.Duration) (*RedisPersister, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return &RedisPersister{client: client, ttl: ttl}, nil
}

func redisKey(code string) string {
	return redisKeyPrefix + game.NormalizeCode(code)
}

// Save writes the snapshot and refreshes its expiry
func (p *RedisPersister) Save(ctx context.Context, snap models.Snapshot) error {
	data, err := encodeSnapshot(snap)
	if err != nil {
		return err
	}
	if err := p.client.Set(ctx, redisKey(snap.Room.Code), data, p.ttl).Err(); err != nil {
		return fmt.Errorf("saving room %s: %w", snap.Room.Code, err)
	}
	return nil
}

// Delete removes the room's key
func (p *RedisPersister) Delete(ctx context.Context, code string) error {
	if err := p.client.Del(ctx, redisKey(code)).Err(); err != nil {
		return fmt.Errorf("deleting room %s: %w", code, err)
	}
	return nil
}

// LoadAll scans every room key. Keys that expire between SCAN and GET are
// skipped.
func (p *RedisPersister) LoadAll(ctx context.Context) ([]models.Snapshot, error) {
	var snaps []models.Snapshot
	iter := p.client.Scan(ctx, 0, redisKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		data, err := p.client.Get(ctx, iter.Val()).Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", iter.Val(), err)
		}
		snap, err := decodeSnapshot(data)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", iter.Val(), err)
		}
		snaps = append(snaps, snap)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scanning rooms: %w", err)
	}
	return snaps, nil
}

// Close closes the client
func (p *RedisPersister) Close() error {
	return p.client.Close()
}
