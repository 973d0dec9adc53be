package render

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/find-the-imposter/internal/game"
	"github.com/aaronzipp/find-the-imposter/internal/models"
)

func startedLobby(t *testing.T) (*game.Engine, *models.Lobby) {
	t.Helper()
	e := game.NewEngine(game.WithSeed(4), game.WithClock(func() time.Time {
		return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	}))
	l := e.NewLobby(e.NewRoom("ABCD12", "p0", models.ModeOnline, models.VisibilityPublic), "Host")
	for _, id := range []string{"p1", "p2"} {
		_, err := e.Join(l, id, "Player "+id)
		require.NoError(t, err)
	}
	for _, p := range append([]*models.Player(nil), l.Players...) {
		_, err := e.SetReady(l, p.PlayerID, true)
		require.NoError(t, err)
	}
	require.Equal(t, models.StatusRound1, l.Room.Status)
	return e, l
}

func TestGameHidesSecretsUntilResults(t *testing.T) {
	_, l := startedLobby(t)

	v := Game(l.Room)
	assert.Empty(t, v.Word)
	assert.Empty(t, v.ImposterIDs)
	assert.Equal(t, l.Room.Category, v.Category)

	raw := JSON(v)
	assert.NotContains(t, raw, l.Room.Word)
	assert.NotContains(t, raw, "usedWords")

	l.Room.Status = models.StatusResults
	v = Game(l.Room)
	assert.Equal(t, l.Room.Word, v.Word)
	assert.Equal(t, l.Room.ImposterIDs, v.ImposterIDs)
}

func TestGameHidesCategoryBeforeStart(t *testing.T) {
	e := game.NewEngine(game.WithSeed(1))
	room := e.NewRoom("ABCD12", "p0", models.ModeInPerson, "")
	require.NotEmpty(t, room.Category)

	assert.Empty(t, Game(room).Category)
}

func TestRoomIsPersonalised(t *testing.T) {
	e, l := startedLobby(t)
	imposter := l.Room.ImposterIDs[0]
	var innocent string
	for _, p := range l.Players {
		if p.PlayerID != imposter {
			innocent = p.PlayerID
			break
		}
	}

	_, err := e.SubmitWord(l, l.Room.CurrentTurnPlayerID, "first")
	require.NoError(t, err)

	mine := Room(l, imposter)
	require.NotNil(t, mine.You)
	assert.True(t, mine.You.IsImposter)
	assert.Nil(t, mine.You.Word)

	theirs := Room(l, innocent)
	require.NotNil(t, theirs.You)
	require.NotNil(t, theirs.You.Word)
	assert.Equal(t, l.Room.Word, *theirs.You.Word)

	assert.Equal(t, Progress{Count: 3, Total: 3}, theirs.Ready)
	assert.Equal(t, Progress{Count: 0, Total: 3}, theirs.Voted)
	assert.Len(t, theirs.Clues, 1)
	assert.Len(t, theirs.Players, 3)
	assert.Equal(t, "p0", theirs.Players[0].PlayerID)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(RoomUpdate(l, imposter)), &decoded))
	assert.Nil(t, decoded["you"].(map[string]any)["word"])
}

func TestRoomForStrangerHasNoWord(t *testing.T) {
	_, l := startedLobby(t)
	assert.Nil(t, Room(l, "stranger").You)
}
