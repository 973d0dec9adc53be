package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aaronzipp/find-the-imposter/internal/models"
)

// Persister keeps room snapshots outside the process so a restart can pick
// up the current sessions
type Persister interface {
	Save(ctx context.Context, snap models.Snapshot) error
	Delete(ctx context.Context, code string) error
	LoadAll(ctx context.Context) ([]models.Snapshot, error)
	Close() error
}

// NopPersister keeps nothing. It backs the pure in-memory mode.
type NopPersister struct{}

func (NopPersister) Save(context.Context, models.Snapshot) error { return nil }
func (NopPersister) Delete(context.Context, string) error { return nil }
func (NopPersister) LoadAll(context.Context) ([]models.Snapshot, error) { return nil, nil }
func (NopPersister) Close() error { return nil }

func encodeSnapshot(snap models.Snapshot) ([]byte, error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot %s: %w", snap.Room.Code, err)
	}
	return data, nil
}

func decodeSnapshot(data []byte) (models.Snapshot, error) {
	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return models.Snapshot{}, fmt.Errorf("decoding snapshot: %w", err)
	}
	return snap, nil
}
