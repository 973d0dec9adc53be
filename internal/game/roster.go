package game

import (
	"strings"
	"unicode/utf8"

	apperrors "github.com/aaronzipp/find-the-imposter/internal/errors"
	"github.com/aaronzipp/find-the-imposter/internal/models"
)

// JoinResult reports what Join did
type JoinResult struct {
	Joined  bool // false when the player was already in the room
	Started bool
}

// Join adds a non-host, not-ready player. Re-joining with a known player ID
// succeeds without touching the roster.
func (e *Engine) Join(l *models.Lobby, playerID, name string) (JoinResult, error) {
	if !l.Room.Status.IsPreGame() {
		return JoinResult{}, apperrors.New(apperrors.CodeAlreadyStarted, "game has already started")
	}
	if _, idx := l.Player(playerID); idx >= 0 {
		return JoinResult{}, nil
	}
	if l.PlayerCount() >= MaxPlayers {
		return JoinResult{}, apperrors.Newf(apperrors.CodeRoomFull, "game is full (max %d players)", MaxPlayers)
	}
	name, err := ValidatePlayer(playerID, name)
	if err != nil {
		return JoinResult{}, err
	}

	l.Players = append(l.Players, &models.Player{
		GameCode:   l.Room.Code,
		PlayerID:   playerID,
		PlayerName: name,
		JoinedAt:   e.now(),
	})
	return JoinResult{Joined: true, Started: e.autoStart(l)}, nil
}

// ValidatePlayer checks a self-declared identity and returns the trimmed name
func ValidatePlayer(playerID, name string) (string, error) {
	if strings.TrimSpace(playerID) == "" {
		return "", apperrors.New(apperrors.CodeValidation, "player id is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperrors.New(apperrors.CodeValidation, "player name is required")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return "", apperrors.Newf(apperrors.CodeValidation, "player name must be at most %d characters", MaxNameLength)
	}
	return name, nil
}

// LeaveResult reports what Leave did
type LeaveResult struct {
	Removed bool
	NewHost string // set when host passed to another player
	Empty   bool   // the room has no players left and must be deleted
	Started bool
}

// Leave removes a player if present. Leaving twice is not an error.
func (e *Engine) Leave(l *models.Lobby, playerID string) LeaveResult {
	var res LeaveResult
	if _, idx := l.Player(playerID); idx >= 0 {
		l.Players = append(l.Players[:idx], l.Players[idx+1:]...)
		res.Removed = true
	}

	if l.PlayerCount() == 0 {
		res.Empty = true
		return res
	}
	if l.Room.HostID == playerID {
		next := l.Players[0]
		next.IsHost = true
		l.Room.HostID = next.PlayerID
		res.NewHost = next.PlayerID
	}
	if res.Removed {
		res.Started = e.autoStart(l)
	}
	return res
}

// Kick removes target from the lobby on the host's behalf
func (e *Engine) Kick(l *models.Lobby, hostID, targetID string) (started bool, err error) {
	if l.Room.HostID != hostID {
		return false, apperrors.New(apperrors.CodeForbidden, "only the host can kick players")
	}
	if !l.Room.Status.IsPreGame() {
		return false, apperrors.New(apperrors.CodeInvalidState, "players can only be kicked in the lobby")
	}
	if targetID == hostID {
		return false, apperrors.New(apperrors.CodeInvalidTarget, "the host cannot kick themselves")
	}
	_, idx := l.Player(targetID)
	if idx < 0 {
		return false, apperrors.New(apperrors.CodeNotFound, "player not found")
	}
	l.Players = append(l.Players[:idx], l.Players[idx+1:]...)
	return e.autoStart(l), nil
}

// SetReady updates a player's ready flag and starts the game when the
// lobby becomes fully ready
func (e *Engine) SetReady(l *models.Lobby, playerID string, ready bool) (started bool, err error) {
	p, _ := l.Player(playerID)
	if p == nil {
		return false, apperrors.New(apperrors.CodeNotFound, "player not found")
	}
	p.IsReady = ready
	return e.autoStart(l), nil
}

// canAutoStart is the readiness guard checked after every roster change
func canAutoStart(l *models.Lobby) bool {
	return l.Room.Status.IsPreGame() &&
		l.PlayerCount() >= MinPlayers &&
		l.AllPlayers(func(p *models.Player) bool { return p.IsReady })
}

func (e *Engine) autoStart(l *models.Lobby) bool {
	if !canAutoStart(l) {
		return false
	}
	e.start(l)
	return true
}
