package game

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/aaronzipp/find-the-imposter/internal/errors"
	"github.com/aaronzipp/find-the-imposter/internal/models"
)

func TestJoin(t *testing.T) {
	e := newTestEngine(1)
	l := newTestLobby(t, e, models.ModeInPerson, 2)

	res, err := e.Join(l, "p9", "  Zoe  ")
	require.NoError(t, err)
	assert.True(t, res.Joined)

	p, _ := l.Player("p9")
	require.NotNil(t, p)
	assert.Equal(t, "Zoe", p.PlayerName)
	assert.False(t, p.IsHost)
	assert.False(t, p.IsReady)
	assert.Equal(t, "ABCD12", p.GameCode)
	assert.Equal(t, testNow, p.JoinedAt)
}

func TestJoinIsIdempotent(t *testing.T) {
	e := newTestEngine(1)
	l := newTestLobby(t, e, models.ModeInPerson, 3)

	res, err := e.Join(l, "p1", "Someone Else")
	require.NoError(t, err)
	assert.False(t, res.Joined)
	assert.Equal(t, 3, l.PlayerCount())
}

func TestJoinErrors(t *testing.T) {
	e := newTestEngine(1)

	t.Run("room full", func(t *testing.T) {
		l := newTestLobby(t, e, models.ModeInPerson, MaxPlayers)
		_, err := e.Join(l, "late", "Late")
		assert.True(t, apperrors.Is(err, apperrors.CodeRoomFull))
		assert.Equal(t, MaxPlayers, l.PlayerCount())
	})

	t.Run("already started", func(t *testing.T) {
		l := newTestLobby(t, e, models.ModeInPerson, 3)
		readyAll(t, e, l)
		_, err := e.Join(l, "late", "Late")
		assert.True(t, apperrors.Is(err, apperrors.CodeAlreadyStarted))
	})

	t.Run("name too long", func(t *testing.T) {
		l := newTestLobby(t, e, models.ModeInPerson, 1)
		_, err := e.Join(l, "p1", "abcdefghijklmnopqrstu")
		assert.True(t, apperrors.Is(err, apperrors.CodeValidation))
	})

	t.Run("blank name", func(t *testing.T) {
		l := newTestLobby(t, e, models.ModeInPerson, 1)
		_, err := e.Join(l, "p1", "   ")
		assert.True(t, apperrors.Is(err, apperrors.CodeValidation))
	})
}

func TestLeaveReassignsHost(t *testing.T) {
	e := newTestEngine(1)
	l := newTestLobby(t, e, models.ModeInPerson, 3)

	res := e.Leave(l, "p0")

	assert.True(t, res.Removed)
	assert.Equal(t, "p1", res.NewHost)
	assert.Equal(t, "p1", l.Room.HostID)
	assert.Equal(t, 1, hostCount(l))
	p, _ := l.Player("p1")
	assert.True(t, p.IsHost)
}

func TestLeaveAbsentPlayerIsNoOp(t *testing.T) {
	e := newTestEngine(1)
	l := newTestLobby(t, e, models.ModeInPerson, 3)

	res := e.Leave(l, "ghost")

	assert.False(t, res.Removed)
	assert.False(t, res.Empty)
	assert.Equal(t, 3, l.PlayerCount())
	assert.Equal(t, "p0", l.Room.HostID)
}

func TestLeaveLastPlayerEmptiesRoom(t *testing.T) {
	e := newTestEngine(1)
	l := newTestLobby(t, e, models.ModeInPerson, 1)

	res := e.Leave(l, "p0")

	assert.True(t, res.Removed)
	assert.True(t, res.Empty)
}

func TestLeaveCanCompleteReadiness(t *testing.T) {
	e := newTestEngine(1)
	l := newTestLobby(t, e, models.ModeInPerson, 4)
	for _, id := range []string{"p0", "p1", "p2"} {
		_, err := e.SetReady(l, id, true)
		require.NoError(t, err)
	}
	require.Equal(t, models.StatusWaiting, l.Room.Status)

	res := e.Leave(l, "p3")

	assert.True(t, res.Started)
	assert.Equal(t, models.StatusPlaying, l.Room.Status)
}

func TestKick(t *testing.T) {
	e := newTestEngine(1)

	t.Run("removes target", func(t *testing.T) {
		l := newTestLobby(t, e, models.ModeInPerson, 3)
		_, err := e.Kick(l, "p0", "p2")
		require.NoError(t, err)
		p, _ := l.Player("p2")
		assert.Nil(t, p)
	})

	t.Run("errors", func(t *testing.T) {
		tests := []struct {
			name   string
			caller string
			target string
			start  bool
			code   apperrors.Code
		}{
			{"not host", "p1", "p2", false, apperrors.CodeForbidden},
			{"self kick", "p0", "p0", false, apperrors.CodeInvalidTarget},
			{"unknown target", "p0", "ghost", false, apperrors.CodeNotFound},
			{"in game", "p0", "p2", true, apperrors.CodeInvalidState},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				l := newTestLobby(t, e, models.ModeInPerson, 3)
				if tt.start {
					readyAll(t, e, l)
				}
				_, err := e.Kick(l, tt.caller, tt.target)
				assert.True(t, apperrors.Is(err, tt.code), "got %v", err)
			})
		}
	})
}

func TestSetReadyUnknownPlayer(t *testing.T) {
	e := newTestEngine(1)
	l := newTestLobby(t, e, models.ModeInPerson, 3)

	_, err := e.SetReady(l, "ghost", true)
	assert.True(t, apperrors.Is(err, apperrors.CodeNotFound))
}

func TestAutoStartNeedsThreePlayers(t *testing.T) {
	e := newTestEngine(1)
	l := newTestLobby(t, e, models.ModeInPerson, 2)

	readyAll(t, e, l)

	assert.Equal(t, models.StatusWaiting, l.Room.Status)
}

func TestAutoStartThreeReadyPlayers(t *testing.T) {
	e := newTestEngine(7)
	l := newTestLobby(t, e, models.ModeInPerson, 3)

	readyAll(t, e, l)

	assert.Equal(t, models.StatusPlaying, l.Room.Status)
	assert.Len(t, l.Room.ImposterIDs, 1)
	_, ok := CategoryOf(l.Room.Word)
	assert.True(t, ok)
	assert.True(t, IsKnownCategory(l.Room.Category))
	assert.Contains(t, Words(l.Room.Category), l.Room.Word)
}

// Random join/leave/kick/ready sequences keep roster invariants and only
// start a game when everyone is ready with at least three players.
func TestRosterProperties(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		e := newTestEngine(seed)
		r := rand.New(rand.NewSource(seed))
		l := newTestLobby(t, e, models.ModeOnline, 1)
		next := 1

		for step := 0; step < 60 && l.PlayerCount() > 0; step++ {
			before := l.Room.Status
			wasReady := canAutoStart(l)
			ids := make([]string, 0, l.PlayerCount())
			for _, p := range l.Players {
				ids = append(ids, p.PlayerID)
			}
			pick := ids[r.Intn(len(ids))]

			switch r.Intn(4) {
			case 0:
				_, _ = e.Join(l, fmt.Sprintf("n%d", next), "New")
				next++
			case 1:
				e.Leave(l, pick)
			case 2:
				_, _ = e.Kick(l, l.Room.HostID, pick)
			default:
				_, err := e.SetReady(l, pick, r.Intn(3) > 0)
				require.NoError(t, err)
			}

			require.LessOrEqual(t, l.PlayerCount(), MaxPlayers)
			if l.PlayerCount() > 0 {
				require.Equal(t, 1, hostCount(l), "seed %d step %d", seed, step)
				host, _ := l.Player(l.Room.HostID)
				require.NotNil(t, host)
				require.True(t, host.IsHost)
			}
			if before.IsPreGame() && !l.Room.Status.IsPreGame() {
				require.False(t, wasReady, "guard must fire in the transaction that satisfied it")
				require.GreaterOrEqual(t, l.PlayerCount(), MinPlayers)
				require.True(t, l.AllPlayers(func(p *models.Player) bool { return p.IsReady }))
				require.LessOrEqual(t, len(l.Room.ImposterIDs), l.PlayerCount()-MinNonImposters)
				break
			}
			if l.Room.Status.IsPreGame() {
				require.False(t, canAutoStart(l), "all ready but not started")
			}
		}
	}
}
