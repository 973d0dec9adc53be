package game

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/find-the-imposter/internal/models"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestEngine(seed int64) *Engine {
	return NewEngine(WithSeed(seed), WithClock(func() time.Time { return testNow }))
}

// newTestLobby seats a host "p0" and n-1 further players "p1".."pN-1"
func newTestLobby(t *testing.T, e *Engine, mode models.GameMode, n int) *models.Lobby {
	t.Helper()
	room := e.NewRoom("ABCD12", "p0", mode, models.VisibilityPublic)
	l := e.NewLobby(room, "Host")
	for i := 1; i < n; i++ {
		_, err := e.Join(l, fmt.Sprintf("p%d", i), fmt.Sprintf("Player %d", i))
		require.NoError(t, err)
	}
	return l
}

func readyAll(t *testing.T, e *Engine, l *models.Lobby) {
	t.Helper()
	for _, p := range append([]*models.Player(nil), l.Players...) {
		_, err := e.SetReady(l, p.PlayerID, true)
		require.NoError(t, err)
	}
}

// playRounds submits a valid clue for every turn until voting
func playRounds(t *testing.T, e *Engine, l *models.Lobby) {
	t.Helper()
	for l.Room.Status.IsRound() {
		_, err := e.SubmitWord(l, l.Room.CurrentTurnPlayerID, "clue")
		require.NoError(t, err)
	}
	require.Equal(t, models.StatusVoting, l.Room.Status)
}

func nonImposters(l *models.Lobby) []string {
	var ids []string
	for _, p := range l.Players {
		if !l.Room.IsImposter(p.PlayerID) {
			ids = append(ids, p.PlayerID)
		}
	}
	return ids
}

func hostCount(l *models.Lobby) int {
	n := 0
	for _, p := range l.Players {
		if p.IsHost {
			n++
		}
	}
	return n
}
