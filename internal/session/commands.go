package session

import (
	"context"

	apperrors "github.com/aaronzipp/find-the-imposter/internal/errors"
	"github.com/aaronzipp/find-the-imposter/internal/game"
	"github.com/aaronzipp/find-the-imposter/internal/models"
)

// CreateGame opens an in-person room with hostID seated as host
func (m *Manager) CreateGame(ctx context.Context, hostID, hostName string) (models.Room, error) {
	return m.create(ctx, hostID, hostName, models.ModeInPerson, "")
}

// CreateOnlineGame opens an online room. An empty visibility means public.
func (m *Manager) CreateOnlineGame(ctx context.Context, hostID, hostName string, visibility models.Visibility) (models.Room, error) {
	if visibility == "" {
		visibility = models.VisibilityPublic
	}
	if !visibility.Valid() {
		return models.Room{}, apperrors.WithMetadata(apperrors.CodeValidation, "invalid visibility",
			map[string]string{"visibility": string(visibility)})
	}
	return m.create(ctx, hostID, hostName, models.ModeOnline, visibility)
}

func (m *Manager) create(ctx context.Context, hostID, hostName string, mode models.GameMode, visibility models.Visibility) (models.Room, error) {
	name, err := game.ValidatePlayer(hostID, hostName)
	if err != nil {
		return models.Room{}, err
	}
	l, err := m.store.Create(func(code string) *models.Lobby {
		return m.engine.NewLobby(m.engine.NewRoom(code, hostID, mode, visibility), name)
	})
	if err != nil {
		return models.Room{}, err
	}

	l.Lock()
	m.save(ctx, l)
	room := l.Room.Clone()
	l.Unlock()

	m.log.Info().Str("room", room.Code).Str("host", hostID).Str("mode", string(mode)).Msg("room created")
	return room, nil
}

// Join seats playerID in the room. Joining again with the same ID is a no-op.
func (m *Manager) Join(ctx context.Context, code, playerID, name string) (game.JoinResult, error) {
	var res game.JoinResult
	err := m.mutate(ctx, code, func(l *models.Lobby) (change, error) {
		var err error
		res, err = m.engine.Join(l, playerID, name)
		if err != nil {
			return change{}, err
		}
		m.logStart(l, res.Started)
		return change{quiet: !res.Joined}, nil
	})
	return res, err
}

// Leave removes playerID. An absent player is not an error. The room is
// deleted when its last player leaves.
func (m *Manager) Leave(ctx context.Context, code, playerID string) (game.LeaveResult, error) {
	var res game.LeaveResult
	err := m.mutate(ctx, code, func(l *models.Lobby) (change, error) {
		res = m.engine.Leave(l, playerID)
		if res.Empty {
			return change{deleted: true, reason: "empty"}, nil
		}
		if res.NewHost != "" {
			m.log.Info().Str("room", l.Room.Code).Str("host", res.NewHost).Msg("host reassigned")
		}
		m.logStart(l, res.Started)
		return change{quiet: !res.Removed}, nil
	})
	return res, err
}

// Kick removes targetID on the host's behalf
func (m *Manager) Kick(ctx context.Context, code, hostID, targetID string) error {
	return m.mutate(ctx, code, func(l *models.Lobby) (change, error) {
		started, err := m.engine.Kick(l, hostID, targetID)
		if err != nil {
			return change{}, err
		}
		m.logStart(l, started)
		return change{kicked: targetID}, nil
	})
}

// SetReady updates the player's ready flag and reports whether that started
// the game
func (m *Manager) SetReady(ctx context.Context, code, playerID string, ready bool) (bool, error) {
	var started bool
	err := m.mutate(ctx, code, func(l *models.Lobby) (change, error) {
		var err error
		started, err = m.engine.SetReady(l, playerID, ready)
		if err != nil {
			return change{}, err
		}
		m.logStart(l, started)
		return change{}, nil
	})
	return started, err
}

// StartGame is the host's explicit start
func (m *Manager) StartGame(ctx context.Context, code, hostID string) error {
	return m.mutate(ctx, code, func(l *models.Lobby) (change, error) {
		if err := m.engine.StartGame(l, hostID); err != nil {
			return change{}, err
		}
		m.logStart(l, true)
		return change{}, nil
	})
}

// SubmitWord records the current player's clue
func (m *Manager) SubmitWord(ctx context.Context, code, playerID, word string) (models.ClueEntry, error) {
	var entry models.ClueEntry
	err := m.mutate(ctx, code, func(l *models.Lobby) (change, error) {
		var err error
		entry, err = m.engine.SubmitWord(l, playerID, word)
		if err != nil {
			return change{}, err
		}
		m.log.Debug().Str("room", l.Room.Code).Str("player", playerID).Str("status", string(l.Room.Status)).Msg("clue submitted")
		return change{}, nil
	})
	return entry, err
}

// SubmitVote records voterID's ballot
func (m *Manager) SubmitVote(ctx context.Context, code, voterID, targetID string) (models.Vote, error) {
	var vote models.Vote
	err := m.mutate(ctx, code, func(l *models.Lobby) (change, error) {
		var err error
		vote, err = m.engine.SubmitVote(l, voterID, targetID)
		if err != nil {
			return change{}, err
		}
		if l.Room.Status != models.StatusVoting {
			m.log.Info().Str("room", l.Room.Code).Str("votedOut", l.Room.VotedOutPlayerID).
				Str("status", string(l.Room.Status)).Msg("vote resolved")
		}
		return change{}, nil
	})
	return vote, err
}

// SubmitImposterGuess takes the voted-out imposter's guess and reports
// whether it was right
func (m *Manager) SubmitImposterGuess(ctx context.Context, code, playerID, guess string) (bool, error) {
	var correct bool
	err := m.mutate(ctx, code, func(l *models.Lobby) (change, error) {
		var err error
		correct, err = m.engine.SubmitImposterGuess(l, playerID, guess)
		if err != nil {
			return change{}, err
		}
		m.log.Info().Str("room", l.Room.Code).Bool("correct", correct).Str("winner", string(l.Room.GameWinner)).Msg("imposter guessed")
		return change{}, nil
	})
	return correct, err
}

// ReturnToLobby resets a finished online game
func (m *Manager) ReturnToLobby(ctx context.Context, code, hostID string) error {
	return m.mutate(ctx, code, func(l *models.Lobby) (change, error) {
		return change{}, m.engine.ReturnToLobby(l, hostID)
	})
}

// Restart sends an in-person game back to waiting
func (m *Manager) Restart(ctx context.Context, code, hostID string) error {
	return m.mutate(ctx, code, func(l *models.Lobby) (change, error) {
		return change{}, m.engine.Restart(l, hostID)
	})
}

// SetCategoryPreference changes the category for the next start
func (m *Manager) SetCategoryPreference(ctx context.Context, code, hostID string, pref models.Category) error {
	return m.mutate(ctx, code, func(l *models.Lobby) (change, error) {
		return change{}, m.engine.SetCategoryPreference(l, hostID, pref)
	})
}

// SetImposterCount changes the preferred number of imposters
func (m *Manager) SetImposterCount(ctx context.Context, code, hostID string, count int) error {
	return m.mutate(ctx, code, func(l *models.Lobby) (change, error) {
		return change{}, m.engine.SetImposterCount(l, hostID, count)
	})
}

// SendMessage posts a lobby chat message
func (m *Manager) SendMessage(ctx context.Context, code, playerID, text string) (models.Message, error) {
	var msg models.Message
	err := m.mutate(ctx, code, func(l *models.Lobby) (change, error) {
		var err error
		msg, err = m.engine.SendMessage(l, playerID, text)
		if err != nil {
			return change{}, err
		}
		return change{message: &msg}, nil
	})
	return msg, err
}

func (m *Manager) logStart(l *models.Lobby, started bool) {
	if !started {
		return
	}
	m.log.Info().Str("room", l.Room.Code).Str("status", string(l.Room.Status)).
		Int("players", l.PlayerCount()).Int("imposters", len(l.Room.ImposterIDs)).Msg("game started")
}
