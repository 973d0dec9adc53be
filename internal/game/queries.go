package game

import "github.com/aaronzipp/find-the-imposter/internal/models"

// PlayerWord returns what playerID may see of the secret, or nil outside play
// statuses and for non-members
func PlayerWord(l *models.Lobby, playerID string) *models.PlayerWord {
	if !l.Room.Status.IsPlay() {
		return nil
	}
	if p, _ := l.Player(playerID); p == nil {
		return nil
	}
	if l.Room.IsImposter(playerID) {
		return &models.PlayerWord{Category: l.Room.Category, IsImposter: true}
	}
	word := l.Room.Word
	return &models.PlayerWord{Category: l.Room.Category, Word: &word}
}

// ImposterCountOptions returns the valid imposter count range for the roster
func ImposterCountOptions(l *models.Lobby) models.ImposterCountOptions {
	return models.ImposterCountOptions{
		Min:         1,
		Max:         MaxImposterCount(l.PlayerCount()),
		PlayerCount: l.PlayerCount(),
	}
}

// IsListedPublicly reports whether the room belongs in the public lobby list
func IsListedPublicly(l *models.Lobby) bool {
	return l.Room.Mode == models.ModeOnline &&
		l.Room.Visibility == models.VisibilityPublic &&
		l.Room.Status == models.StatusLobby &&
		l.PlayerCount() < MaxPlayers
}

// NewRoom builds the record for a freshly created room
func (e *Engine) NewRoom(code, hostID string, mode models.GameMode, visibility models.Visibility) models.Room {
	word, category, _ := e.PickWord(models.CategoryRandom, nil)
	now := e.now()
	room := models.Room{
		Code:               code,
		HostID:             hostID,
		Mode:               mode,
		Word:               word,
		Category:           category,
		CategoryPreference: models.CategoryRandom,
		UsedWords:          []string{},
		ImposterCount:      1,
		CreatedAt:          now,
		LastActivityAt:     now,
	}
	if mode == models.ModeOnline {
		room.Status = models.StatusLobby
		room.Visibility = visibility
	} else {
		room.Status = models.StatusWaiting
	}
	return room
}

// NewLobby creates the aggregate for a new room with the host seated
func (e *Engine) NewLobby(room models.Room, hostName string) *models.Lobby {
	l := models.NewLobby(room)
	l.Players = []*models.Player{{
		GameCode:   room.Code,
		PlayerID:   room.HostID,
		PlayerName: hostName,
		IsHost:     true,
		JoinedAt:   room.CreatedAt,
	}}
	return l
}
