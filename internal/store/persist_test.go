package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/find-the-imposter/internal/models"
)

func sampleSnapshot(code string) models.Snapshot {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return models.Snapshot{
		Room: models.Room{
			Code:                code,
			HostID:              "p0",
			Status:              models.StatusRound2,
			Mode:                models.ModeOnline,
			Visibility:          models.VisibilityPublic,
			Word:                "PIZZA",
			Category:            models.CategoryFood,
			CategoryPreference:  models.CategoryRandom,
			UsedWords:           []string{"PIZZA"},
			ImposterIDs:         []string{"p1"},
			ImposterCount:       1,
			CreatedAt:           at,
			LastActivityAt:      at,
			CurrentRound:        2,
			TurnOrder:           []string{"p1", "p0", "p2"},
			CurrentTurnPlayerID: "p0",
		},
		Players: []models.Player{
			{GameCode: code, PlayerID: "p0", PlayerName: "Host", IsHost: true, IsReady: true, JoinedAt: at},
			{GameCode: code, PlayerID: "p1", PlayerName: "Ana", IsReady: true, HasSubmittedWord: true, JoinedAt: at},
			{GameCode: code, PlayerID: "p2", PlayerName: "Bo", IsReady: true, JoinedAt: at},
		},
		Clues: []models.ClueEntry{
			{ID: "c1", GameCode: code, PlayerID: "p1", PlayerName: "Ana", Word: "CHEESE", Round: 1, Timestamp: at},
		},
		Messages: []models.Message{
			{ID: "m1", GameCode: code, PlayerID: "p2", PlayerName: "Bo", Text: "hi", Timestamp: at},
		},
	}
}

func TestSnapshotCodecPreservesAggregate(t *testing.T) {
	want := sampleSnapshot("ABCD12")
	data, err := encodeSnapshot(want)
	require.NoError(t, err)

	got, err := decodeSnapshot(data)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}

	_, err = decodeSnapshot([]byte("{"))
	assert.Error(t, err)
}

func TestLobbyFromSnapshotRestoresRoster(t *testing.T) {
	snap := sampleSnapshot("ABCD12")
	l := models.LobbyFromSnapshot(snap)

	require.Equal(t, 3, l.PlayerCount())
	p, idx := l.Player("p1")
	require.NotNil(t, p)
	assert.Equal(t, 1, idx)
	assert.True(t, p.HasSubmittedWord)

	if diff := cmp.Diff(snap, l.Snapshot()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	p.PlayerName = "changed"
	assert.Equal(t, "Ana", snap.Players[1].PlayerName, "lobby does not alias the snapshot")
}

func TestNopPersister(t *testing.T) {
	var p Persister = NopPersister{}
	ctx := context.Background()
	require.NoError(t, p.Save(ctx, sampleSnapshot("ABCD12")))
	snaps, err := p.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, snaps)
	assert.NoError(t, p.Delete(ctx, "ABCD12"))
	assert.NoError(t, p.Close())
}

// exercisePersister runs the same save/load/delete cycle against any backend
func exercisePersister(t *testing.T, p Persister) {
	t.Helper()
	ctx := context.Background()
	code := "TESTQQ"
	snap := sampleSnapshot(code)
	t.Cleanup(func() { _ = p.Delete(ctx, code) })

	require.NoError(t, p.Save(ctx, snap))
	snap.Room.Status = models.StatusVoting
	require.NoError(t, p.Save(ctx, snap), "saving twice upserts")

	snaps, err := p.LoadAll(ctx)
	require.NoError(t, err)
	var found *models.Snapshot
	for i := range snaps {
		if snaps[i].Room.Code == code {
			found = &snaps[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, models.StatusVoting, found.Room.Status)
	assert.Len(t, found.Players, 3)

	require.NoError(t, p.Delete(ctx, code))
	snaps, err = p.LoadAll(ctx)
	require.NoError(t, err)
	for _, s := range snaps {
		assert.NotEqual(t, code, s.Room.Code)
	}
}

func TestRedisPersister(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}
	p, err := NewRedisPersister(context.Background(), url, time.Minute)
	require.NoError(t, err)
	defer p.Close()
	exercisePersister(t, p)
}

func TestPostgresPersister(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	p, err := NewPostgresPersister(dsn)
	require.NoError(t, err)
	defer p.Close()
	exercisePersister(t, p)
}
